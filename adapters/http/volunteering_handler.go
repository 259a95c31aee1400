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

type VolunteeringHandler struct {
	useCase *careerUC.VolunteeringUseCase
	logger  logger.Logger
}

func NewVolunteeringHandler(uc *careerUC.VolunteeringUseCase, log logger.Logger) *VolunteeringHandler {
	return &VolunteeringHandler{useCase: uc, logger: log}
}

type VolunteeringRequest struct {
	ProfileID             uuid.UUID  `json:"profile_id" binding:"required"`
	Organization          string     `json:"organization" binding:"required"`
	Role                  string     `json:"role" binding:"required"`
	Cause                 string     `json:"cause" binding:"required"`
	StartDate             time.Time  `json:"start_date" binding:"required"`
	EndDate               *time.Time `json:"end_date"`
	CurrentlyVolunteering bool       `json:"currently_volunteering"`
	Description           *string    `json:"description"`
	Tools                 []string   `json:"tools"`
}

func (req *VolunteeringRequest) toInput() careerUC.VolunteeringInput {
	return careerUC.VolunteeringInput{
		ProfileID:             req.ProfileID,
		Organization:          req.Organization,
		Role:                  req.Role,
		Cause:                 req.Cause,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		CurrentlyVolunteering: req.CurrentlyVolunteering,
		Description:           req.Description,
		Tools:                 req.Tools,
	}
}

func (h *VolunteeringHandler) Create(c *gin.Context) {
	var req VolunteeringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	v, err := h.useCase.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *VolunteeringHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid volunteering ID", err))
		return
	}

	v, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VolunteeringHandler) ListByProfile(c *gin.Context) {
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

func (h *VolunteeringHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid volunteering ID", err))
		return
	}

	var req VolunteeringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	v, err := h.useCase.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VolunteeringHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid volunteering ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
