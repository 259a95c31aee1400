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

type WorkExperienceHandler struct {
	useCase *careerUC.WorkExperienceUseCase
	logger  logger.Logger
}

func NewWorkExperienceHandler(uc *careerUC.WorkExperienceUseCase, log logger.Logger) *WorkExperienceHandler {
	return &WorkExperienceHandler{useCase: uc, logger: log}
}

type WorkExperienceRequest struct {
	ProfileID           uuid.UUID  `json:"profile_id" binding:"required"`
	Title               string     `json:"title" binding:"required"`
	EmploymentType      string     `json:"employment_type" binding:"required"`
	Domains             []string   `json:"domain"`
	CompanyName         string     `json:"company_name" binding:"required"`
	CompanyLogo         *string    `json:"company_logo"`
	CurrentlyWorking    bool       `json:"currently_working"`
	LocationID          *uuid.UUID `json:"location"`
	LocationType        string     `json:"location_type" binding:"required"`
	StartDateMonth      int        `json:"start_date_month" binding:"required"`
	StartDateYear       int        `json:"start_date_year" binding:"required"`
	EndDateMonth        *int       `json:"end_date_month"`
	EndDateYear         *int       `json:"end_date_year"`
	DescriptionGeneral  string     `json:"description_general"`
	DescriptionDetailed *string    `json:"description_detailed"`
	DescriptionLess     *string    `json:"description_less"`
	WorkDone            *string    `json:"work_done"`
	CompanyScore        *float64   `json:"company_score"`
	TimeSpentMultiplier *float64   `json:"time_spent_multiplier"`
	WorkDoneMultiplier  *float64   `json:"work_done_multiplier"`
	ToolsUsed           []string   `json:"tools_used"`
}

func (req *WorkExperienceRequest) toInput() careerUC.WorkExperienceInput {
	return careerUC.WorkExperienceInput{
		ProfileID:           req.ProfileID,
		Title:               req.Title,
		EmploymentType:      req.EmploymentType,
		Domains:             req.Domains,
		CompanyName:         req.CompanyName,
		CompanyLogo:         req.CompanyLogo,
		CurrentlyWorking:    req.CurrentlyWorking,
		LocationID:          req.LocationID,
		LocationType:        req.LocationType,
		StartDateMonth:      req.StartDateMonth,
		StartDateYear:       req.StartDateYear,
		EndDateMonth:        req.EndDateMonth,
		EndDateYear:         req.EndDateYear,
		DescriptionGeneral:  req.DescriptionGeneral,
		DescriptionDetailed: req.DescriptionDetailed,
		DescriptionLess:     req.DescriptionLess,
		WorkDone:            req.WorkDone,
		CompanyScore:        req.CompanyScore,
		TimeSpentMultiplier: req.TimeSpentMultiplier,
		WorkDoneMultiplier:  req.WorkDoneMultiplier,
		ToolsUsed:           req.ToolsUsed,
	}
}

func (h *WorkExperienceHandler) Create(c *gin.Context) {
	var req WorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	w, err := h.useCase.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *WorkExperienceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid work experience ID", err))
		return
	}

	w, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkExperienceHandler) ListByProfile(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("profileId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, err := h.useCase.ListByProfile(c.Request.Context(), profileID, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *WorkExperienceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid work experience ID", err))
		return
	}

	var req WorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	w, err := h.useCase.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkExperienceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid work experience ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
