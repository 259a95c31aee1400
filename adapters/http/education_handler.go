package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	careerUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/career"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type EducationHandler struct {
	useCase *careerUC.EducationUseCase
	logger  logger.Logger
}

func NewEducationHandler(uc *careerUC.EducationUseCase, log logger.Logger) *EducationHandler {
	return &EducationHandler{useCase: uc, logger: log}
}

type EducationRequest struct {
	ProfileID             uuid.UUID  `json:"profile_id" binding:"required"`
	School                string     `json:"school" binding:"required"`
	SchoolType            string     `json:"school_type" binding:"required"`
	Degree                string     `json:"degree" binding:"required"`
	Field                 string     `json:"field" binding:"required"`
	CurrentlyStudying     bool       `json:"currently_studying"`
	LocationID            uuid.UUID  `json:"location" binding:"required"`
	LocationType          string     `json:"location_type" binding:"required"`
	StartDate             time.Time  `json:"start_date" binding:"required"`
	EndDate               *time.Time `json:"end_date"`
	DescriptionGeneral    string     `json:"description_general"`
	DescriptionDetailed   *string    `json:"description_detailed"`
	DescriptionLess       *string    `json:"description_less"`
	WorkDone              *string    `json:"work_done"`
	SchoolScoreMultiplier *float64   `json:"school_score_multiplier"`
	ToolsUsed             []string   `json:"tools_used"`
}

func (req *EducationRequest) toInput() careerUC.EducationInput {
	return careerUC.EducationInput{
		ProfileID:             req.ProfileID,
		School:                req.School,
		SchoolType:            req.SchoolType,
		Degree:                req.Degree,
		Field:                 req.Field,
		CurrentlyStudying:     req.CurrentlyStudying,
		LocationID:            req.LocationID,
		LocationType:          req.LocationType,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		DescriptionGeneral:    req.DescriptionGeneral,
		DescriptionDetailed:   req.DescriptionDetailed,
		DescriptionLess:       req.DescriptionLess,
		WorkDone:              req.WorkDone,
		SchoolScoreMultiplier: req.SchoolScoreMultiplier,
		ToolsUsed:             req.ToolsUsed,
	}
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	e, err := h.useCase.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EducationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	e, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EducationHandler) ListByProfile(c *gin.Context) {
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

func (h *EducationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	e, err := h.useCase.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
