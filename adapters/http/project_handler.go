package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	careerUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/career"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type ProjectHandler struct {
	useCase *careerUC.ProjectUseCase
	logger  logger.Logger
}

func NewProjectHandler(uc *careerUC.ProjectUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{useCase: uc, logger: log}
}

type ProjectRequest struct {
	ProfileID               uuid.UUID `json:"profile_id" binding:"required"`
	Name                    string    `json:"name" binding:"required"`
	Organization            *string   `json:"organization"`
	Owner                   string    `json:"owner" binding:"required"`
	Private                 bool      `json:"private"`
	GithubStars             int       `json:"github_stars"`
	GithubAbout             *string   `json:"github_about"`
	GithubOpenIssues        int       `json:"github_open_issues"`
	GithubForks             int       `json:"github_forks"`
	Description             string    `json:"description" binding:"required"`
	Domain                  string    `json:"domain" binding:"required"`
	Topics                  []string  `json:"topics"`
	Tools                   []string  `json:"tools"`
	Readme                  bool      `json:"readme"`
	License                 bool      `json:"license"`
	LandingPage             bool      `json:"landing_page"`
	LandingPageLink         *string   `json:"landing_page_link"`
	DocsPage                bool      `json:"docs_page"`
	DocsPageLink            *string   `json:"docs_page_link"`
	OwnDomainName           bool      `json:"own_domain_name"`
	DomainName              *string   `json:"domain_name"`
	TotalLinesContributed   *int      `json:"total_lines_contributed"`
	ImproperUploads         *bool     `json:"improper_uploads"`
	ComplexityRating        *float64  `json:"complexity_rating"`
	TestingFrameworkPresent bool      `json:"testing_framework_present"`
	TestingFramework        *string   `json:"testing_framework"`
	ProjectOrganizationLogo *string   `json:"project_organization_logo"`
}

func (req *ProjectRequest) toInput() careerUC.ProjectInput {
	return careerUC.ProjectInput{
		ProfileID:               req.ProfileID,
		Name:                    req.Name,
		Organization:            req.Organization,
		Owner:                   req.Owner,
		Private:                 req.Private,
		GithubStars:             req.GithubStars,
		GithubAbout:             req.GithubAbout,
		GithubOpenIssues:        req.GithubOpenIssues,
		GithubForks:             req.GithubForks,
		Description:             req.Description,
		Domain:                  req.Domain,
		Topics:                  req.Topics,
		Tools:                   req.Tools,
		Readme:                  req.Readme,
		License:                 req.License,
		LandingPage:             req.LandingPage,
		LandingPageLink:         req.LandingPageLink,
		DocsPage:                req.DocsPage,
		DocsPageLink:            req.DocsPageLink,
		OwnDomainName:           req.OwnDomainName,
		DomainName:              req.DomainName,
		TotalLinesContributed:   req.TotalLinesContributed,
		ImproperUploads:         req.ImproperUploads,
		ComplexityRating:        req.ComplexityRating,
		TestingFrameworkPresent: req.TestingFrameworkPresent,
		TestingFramework:        req.TestingFramework,
		ProjectOrganizationLogo: req.ProjectOrganizationLogo,
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	p, err := h.useCase.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	p, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) ListByProfile(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("profileId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	projects, err := h.useCase.ListByProfile(c.Request.Context(), profileID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	p, err := h.useCase.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
