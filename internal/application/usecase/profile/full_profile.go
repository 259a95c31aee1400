package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dijkstra-edu/dataforge/internal/domain/certification"
	"github.com/dijkstra-edu/dataforge/internal/domain/education"
	"github.com/dijkstra-edu/dataforge/internal/domain/location"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/project"
	"github.com/dijkstra-edu/dataforge/internal/domain/publication"
	"github.com/dijkstra-edu/dataforge/internal/domain/volunteering"
	"github.com/dijkstra-edu/dataforge/internal/domain/workexperience"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

// collectionLimit bounds each dependent collection in one composite
// read. Profiles do not accumulate hundreds of rows per section.
const collectionLimit = 100

// FullProfileUseCase assembles the composite view: the base profile
// plus six dependent collections, fetched independently. A failed
// collection degrades to an empty slice instead of failing the whole
// read; only a missing base profile is an error. LeetCode data is
// deliberately left out of this path and served separately.
type FullProfileUseCase struct {
	profileRepo       profile.Repository
	educationRepo     education.Repository
	workRepo          workexperience.Repository
	certificationRepo certification.Repository
	publicationRepo   publication.Repository
	volunteeringRepo  volunteering.Repository
	projectRepo       project.Repository
	locationRepo      location.Repository
	logger            logger.Logger
}

func NewFullProfileUseCase(
	pRepo profile.Repository,
	eRepo education.Repository,
	wRepo workexperience.Repository,
	cRepo certification.Repository,
	pubRepo publication.Repository,
	vRepo volunteering.Repository,
	prjRepo project.Repository,
	locRepo location.Repository,
	log logger.Logger,
) *FullProfileUseCase {
	return &FullProfileUseCase{
		profileRepo:       pRepo,
		educationRepo:     eRepo,
		workRepo:          wRepo,
		certificationRepo: cRepo,
		publicationRepo:   pubRepo,
		volunteeringRepo:  vRepo,
		projectRepo:       prjRepo,
		locationRepo:      locRepo,
		logger:            log,
	}
}

type EducationItem struct {
	Entry    *education.Education
	Location *location.Location
}

type WorkExperienceItem struct {
	Entry    *workexperience.WorkExperience
	Location *location.Location
}

type FullProfileOutput struct {
	Profile        *profile.Profile
	Education      []EducationItem
	WorkExperience []WorkExperienceItem
	Certifications []*certification.Certification
	Publications   []*publication.Publication
	Volunteering   []*volunteering.Volunteering
	Projects       []*project.Project
}

func (uc *FullProfileUseCase) Execute(ctx context.Context, profileID uuid.UUID) (*FullProfileOutput, error) {
	p, err := uc.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	out := &FullProfileOutput{Profile: p}

	// Each collection is fetched on its own; the error is logged and
	// discarded so one broken section cannot take down the rest.
	eduRows, err := uc.educationRepo.ListByProfile(ctx, profileID, collectionLimit, 0)
	if err != nil {
		uc.logger.Warn("Skipping education in composite profile", zap.String("profile_id", profileID.String()), zap.Error(err))
		eduRows = nil
	}
	out.Education = make([]EducationItem, 0, len(eduRows))
	for _, e := range eduRows {
		out.Education = append(out.Education, EducationItem{
			Entry:    e,
			Location: uc.resolveLocation(ctx, &e.LocationID),
		})
	}

	workRows, err := uc.workRepo.ListByProfile(ctx, profileID, collectionLimit, 0)
	if err != nil {
		uc.logger.Warn("Skipping work experience in composite profile", zap.String("profile_id", profileID.String()), zap.Error(err))
		workRows = nil
	}
	out.WorkExperience = make([]WorkExperienceItem, 0, len(workRows))
	for _, w := range workRows {
		out.WorkExperience = append(out.WorkExperience, WorkExperienceItem{
			Entry:    w,
			Location: uc.resolveLocation(ctx, w.LocationID),
		})
	}

	out.Certifications, err = uc.certificationRepo.ListByProfile(ctx, profileID, collectionLimit, 0)
	if err != nil {
		uc.logger.Warn("Skipping certifications in composite profile", zap.String("profile_id", profileID.String()), zap.Error(err))
		out.Certifications = nil
	}
	if out.Certifications == nil {
		out.Certifications = make([]*certification.Certification, 0)
	}

	out.Publications, err = uc.publicationRepo.ListByProfile(ctx, profileID, collectionLimit, 0)
	if err != nil {
		uc.logger.Warn("Skipping publications in composite profile", zap.String("profile_id", profileID.String()), zap.Error(err))
		out.Publications = nil
	}
	if out.Publications == nil {
		out.Publications = make([]*publication.Publication, 0)
	}

	out.Volunteering, err = uc.volunteeringRepo.ListByProfile(ctx, profileID, collectionLimit, 0)
	if err != nil {
		uc.logger.Warn("Skipping volunteering in composite profile", zap.String("profile_id", profileID.String()), zap.Error(err))
		out.Volunteering = nil
	}
	if out.Volunteering == nil {
		out.Volunteering = make([]*volunteering.Volunteering, 0)
	}

	out.Projects, err = uc.projectRepo.ListByProfile(ctx, profileID, collectionLimit, 0)
	if err != nil {
		uc.logger.Warn("Skipping projects in composite profile", zap.String("profile_id", profileID.String()), zap.Error(err))
		out.Projects = nil
	}
	if out.Projects == nil {
		out.Projects = make([]*project.Project, 0)
	}

	return out, nil
}

// resolveLocation is best effort: a broken location reference nils the
// sub-object without dropping the owning row.
func (uc *FullProfileUseCase) resolveLocation(ctx context.Context, id *uuid.UUID) *location.Location {
	if id == nil {
		return nil
	}
	loc, err := uc.locationRepo.FindByID(ctx, *id)
	if err != nil {
		uc.logger.Warn("Failed to resolve location for composite profile", zap.String("location_id", id.String()), zap.Error(err))
		return nil
	}
	return loc
}
