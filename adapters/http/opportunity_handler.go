package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	opportunityUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/opportunity"
	"github.com/dijkstra-edu/dataforge/internal/domain/opportunity"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type OrganizationHandler struct {
	useCase *opportunityUC.OrganizationUseCase
	logger  logger.Logger
}

func NewOrganizationHandler(uc *opportunityUC.OrganizationUseCase, log logger.Logger) *OrganizationHandler {
	return &OrganizationHandler{useCase: uc, logger: log}
}

type OrganizationRequest struct {
	Name     *string `json:"name"`
	Image    *string `json:"image"`
	RepoLink *string `json:"repo_link"`
}

func (req *OrganizationRequest) toInput() opportunityUC.OrganizationInput {
	return opportunityUC.OrganizationInput{
		Name:     req.Name,
		Image:    req.Image,
		RepoLink: req.RepoLink,
	}
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var req OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	o, err := h.useCase.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid organization ID", err))
		return
	}

	o, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrganizationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orgs, err := h.useCase.List(c.Request.Context(), page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orgs)
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid organization ID", err))
		return
	}

	var req OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	o, err := h.useCase.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid organization ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

type JobHandler struct {
	useCase *opportunityUC.JobUseCase
	logger  logger.Logger
}

func NewJobHandler(uc *opportunityUC.JobUseCase, log logger.Logger) *JobHandler {
	return &JobHandler{useCase: uc, logger: log}
}

type JobRequest struct {
	Title           *string    `json:"title"`
	Department      *string    `json:"department"`
	CompanyName     *string    `json:"company_name"`
	CompanyLogo     *string    `json:"company_logo"`
	HeroImage       *string    `json:"hero_image"`
	Location        *string    `json:"location"`
	LocationType    *string    `json:"location_type"`
	EmploymentType  *string    `json:"employment_type"`
	ExperienceLevel *string    `json:"experience_level"`
	ExperienceYOE   *float64   `json:"experience_yoe"`
	PostedDate      *time.Time `json:"posted_date"`
	SalaryAnnualMin *int       `json:"salary_annual_min"`
	SalaryAnnualMax *int       `json:"salary_annual_max"`
	SalaryCurrency  *string    `json:"salary_currency"`
	Description     *string    `json:"description"`
	Featured        *bool      `json:"featured"`
	Highlight       *string    `json:"highlight"`
	Category        *string    `json:"category"`
	Perks           []string   `json:"perks"`
	OrganizationID  *uuid.UUID `json:"organization"`
}

func (req *JobRequest) toInput() opportunityUC.JobInput {
	return opportunityUC.JobInput{
		Title:           req.Title,
		Department:      req.Department,
		CompanyName:     req.CompanyName,
		CompanyLogo:     req.CompanyLogo,
		HeroImage:       req.HeroImage,
		Location:        req.Location,
		LocationType:    req.LocationType,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		ExperienceYOE:   req.ExperienceYOE,
		PostedDate:      req.PostedDate,
		SalaryAnnualMin: req.SalaryAnnualMin,
		SalaryAnnualMax: req.SalaryAnnualMax,
		SalaryCurrency:  req.SalaryCurrency,
		Description:     req.Description,
		Featured:        req.Featured,
		Highlight:       req.Highlight,
		Category:        req.Category,
		Perks:           req.Perks,
		OrganizationID:  req.OrganizationID,
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	j, err := h.useCase.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, j)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid job ID", err))
		return
	}

	j, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *JobHandler) List(c *gin.Context) {
	filter, err := parseJobListFilter(c)
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.useCase.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func parseJobListFilter(c *gin.Context) (opportunity.JobListFilter, error) {
	var filter opportunity.JobListFilter

	if v := c.Query("title"); v != "" {
		filter.Title = &v
	}
	if v := c.Query("company_name"); v != "" {
		filter.CompanyName = &v
	}
	if v := c.Query("employment_type"); v != "" {
		et, ok := vocab.ParseEmploymentType(v)
		if !ok {
			return filter, apperror.NewInvalidInput("unknown employment type: "+v, nil)
		}
		filter.EmploymentType = &et
	}
	if v := c.Query("location_type"); v != "" {
		lt, ok := vocab.ParseWorkLocationType(v)
		if !ok {
			return filter, apperror.NewInvalidInput("unknown location type: "+v, nil)
		}
		filter.LocationType = &lt
	}
	if v := c.Query("min_salary"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperror.NewInvalidInput("invalid min_salary", err)
		}
		filter.MinSalary = &n
	}
	if v := c.Query("max_salary"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperror.NewInvalidInput("invalid max_salary", err)
		}
		filter.MaxSalary = &n
	}
	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, apperror.NewInvalidInput("invalid featured flag", err)
		}
		filter.Featured = &b
	}
	if v := c.Query("organization"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, apperror.NewInvalidInput("invalid organization ID", err)
		}
		filter.OrganizationID = &id
	}

	filter.SortBy = c.Query("sort_by")
	filter.Order = c.Query("order")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	return filter, nil
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid job ID", err))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	j, err := h.useCase.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid job ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
