// Package vocab holds the closed vocabularies shared across profile
// entities. Values arriving from the outside (API payloads, upstream
// sync data) are validated by membership test through the Parse
// functions; anything unknown is rejected by the caller, never stored.
package vocab

// Tool is a technology or technique a user can attach to profile
// entries (and the vocabulary upstream skill tags are matched against).
type Tool string

const (
	ToolPython             Tool = "python"
	ToolJava               Tool = "java"
	ToolC                  Tool = "c"
	ToolCPP                Tool = "cpp"
	ToolGo                 Tool = "go"
	ToolRust               Tool = "rust"
	ToolJavaScript         Tool = "javascript"
	ToolTypeScript         Tool = "typescript"
	ToolSQL                Tool = "sql"
	ToolMySQL              Tool = "mysql"
	ToolPostgreSQL         Tool = "postgresql"
	ToolMongoDB            Tool = "mongodb"
	ToolRedis              Tool = "redis"
	ToolReact              Tool = "react"
	ToolNodeJS             Tool = "nodejs"
	ToolDjango             Tool = "django"
	ToolFlask              Tool = "flask"
	ToolSpring             Tool = "spring"
	ToolDocker             Tool = "docker"
	ToolKubernetes         Tool = "kubernetes"
	ToolAWS                Tool = "aws"
	ToolGCP                Tool = "gcp"
	ToolAzure              Tool = "azure"
	ToolDynamicProgramming Tool = "dynamic-programming"
	ToolGraphTheory        Tool = "graph-theory"
	ToolDataStructures     Tool = "data-structures"
	ToolMachineLearning    Tool = "machine-learning"
)

var tools = map[string]Tool{}

func init() {
	for _, t := range []Tool{
		ToolPython, ToolJava, ToolC, ToolCPP, ToolGo, ToolRust,
		ToolJavaScript, ToolTypeScript, ToolSQL, ToolMySQL,
		ToolPostgreSQL, ToolMongoDB, ToolRedis, ToolReact, ToolNodeJS,
		ToolDjango, ToolFlask, ToolSpring, ToolDocker, ToolKubernetes,
		ToolAWS, ToolGCP, ToolAzure, ToolDynamicProgramming,
		ToolGraphTheory, ToolDataStructures, ToolMachineLearning,
	} {
		tools[string(t)] = t
	}
}

// ParseTool validates s against the closed tool vocabulary.
func ParseTool(s string) (Tool, bool) {
	t, ok := tools[s]
	return t, ok
}

// ParseTools maps raw strings through the vocabulary, dropping unknown
// values. A fully-unknown (or empty) input yields nil, not an empty
// slice: nil means "nothing valid to record".
func ParseTools(raw []string) []Tool {
	var out []Tool
	for _, s := range raw {
		if t, ok := ParseTool(s); ok {
			out = append(out, t)
		}
	}
	return out
}

func ToolsToStrings(ts []Tool) []string {
	if ts == nil {
		return nil
	}
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}

// ToolsFromStrings converts stored column values back to the typed
// form without re-validating; the database only ever holds values that
// passed ParseTool on the way in.
func ToolsFromStrings(ss []string) []Tool {
	if len(ss) == 0 {
		return nil
	}
	out := make([]Tool, len(ss))
	for i, s := range ss {
		out[i] = Tool(s)
	}
	return out
}

// TagCategory partitions LeetCode problem tags by depth.
type TagCategory string

const (
	TagCategoryFundamental  TagCategory = "fundamental"
	TagCategoryIntermediate TagCategory = "intermediate"
	TagCategoryAdvanced     TagCategory = "advanced"
)

func ParseTagCategory(s string) (TagCategory, bool) {
	switch TagCategory(s) {
	case TagCategoryFundamental, TagCategoryIntermediate, TagCategoryAdvanced:
		return TagCategory(s), true
	}
	return "", false
}

type Rank string

const (
	RankUnranked Rank = "unranked"
	RankBronze   Rank = "bronze"
	RankSilver   Rank = "silver"
	RankGold     Rank = "gold"
	RankPlatinum Rank = "platinum"
)

func ParseRank(s string) (Rank, bool) {
	switch Rank(s) {
	case RankUnranked, RankBronze, RankSilver, RankGold, RankPlatinum:
		return Rank(s), true
	}
	return "", false
}

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentFreelance  EmploymentType = "freelance"
)

func ParseEmploymentType(s string) (EmploymentType, bool) {
	switch EmploymentType(s) {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract,
		EmploymentInternship, EmploymentFreelance:
		return EmploymentType(s), true
	}
	return "", false
}

type WorkLocationType string

const (
	WorkLocationOnSite WorkLocationType = "on_site"
	WorkLocationRemote WorkLocationType = "remote"
	WorkLocationHybrid WorkLocationType = "hybrid"
)

func ParseWorkLocationType(s string) (WorkLocationType, bool) {
	switch WorkLocationType(s) {
	case WorkLocationOnSite, WorkLocationRemote, WorkLocationHybrid:
		return WorkLocationType(s), true
	}
	return "", false
}

type CertificationType string

const (
	CertificationProfessional CertificationType = "professional"
	CertificationAcademic     CertificationType = "academic"
	CertificationCourse       CertificationType = "course"
)

func ParseCertificationType(s string) (CertificationType, bool) {
	switch CertificationType(s) {
	case CertificationProfessional, CertificationAcademic, CertificationCourse:
		return CertificationType(s), true
	}
	return "", false
}

type Cause string

const (
	CauseEducation   Cause = "education"
	CauseEnvironment Cause = "environment"
	CauseHealth      Cause = "health"
	CauseHumanRights Cause = "human_rights"
	CauseAnimals     Cause = "animals"
	CauseTechnology  Cause = "technology"
	CauseCommunity   Cause = "community"
)

func ParseCause(s string) (Cause, bool) {
	switch Cause(s) {
	case CauseEducation, CauseEnvironment, CauseHealth, CauseHumanRights,
		CauseAnimals, CauseTechnology, CauseCommunity:
		return Cause(s), true
	}
	return "", false
}

// Domain is the engineering area an entry belongs to.
type Domain string

const (
	DomainWeb      Domain = "web"
	DomainMobile   Domain = "mobile"
	DomainBackend  Domain = "backend"
	DomainFrontend Domain = "frontend"
	DomainData     Domain = "data"
	DomainML       Domain = "ml"
	DomainDevOps   Domain = "devops"
	DomainSystems  Domain = "systems"
	DomainSecurity Domain = "security"
)

func ParseDomain(s string) (Domain, bool) {
	switch Domain(s) {
	case DomainWeb, DomainMobile, DomainBackend, DomainFrontend,
		DomainData, DomainML, DomainDevOps, DomainSystems, DomainSecurity:
		return Domain(s), true
	}
	return "", false
}

// ParseDomains drops unknown values the same way ParseTools does.
func ParseDomains(raw []string) []Domain {
	var out []Domain
	for _, s := range raw {
		if d, ok := ParseDomain(s); ok {
			out = append(out, d)
		}
	}
	return out
}

func DomainsToStrings(ds []Domain) []string {
	if ds == nil {
		return nil
	}
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = string(d)
	}
	return out
}

func DomainsFromStrings(ss []string) []Domain {
	if len(ss) == 0 {
		return nil
	}
	out := make([]Domain, len(ss))
	for i, s := range ss {
		out[i] = Domain(s)
	}
	return out
}

type SchoolType string

const (
	SchoolUniversity SchoolType = "university"
	SchoolCollege    SchoolType = "college"
	SchoolSchool     SchoolType = "school"
	SchoolOnline     SchoolType = "online"
)

func ParseSchoolType(s string) (SchoolType, bool) {
	switch SchoolType(s) {
	case SchoolUniversity, SchoolCollege, SchoolSchool, SchoolOnline:
		return SchoolType(s), true
	}
	return "", false
}

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
	CurrencyAUD Currency = "AUD"
	CurrencySGD Currency = "SGD"
)

func ParseCurrency(s string) (Currency, bool) {
	switch Currency(s) {
	case CurrencyINR, CurrencyUSD, CurrencyEUR, CurrencyGBP,
		CurrencyCHF, CurrencyAUD, CurrencySGD:
		return Currency(s), true
	}
	return "", false
}
