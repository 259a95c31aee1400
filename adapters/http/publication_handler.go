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

type PublicationHandler struct {
	useCase *careerUC.PublicationUseCase
	logger  logger.Logger
}

func NewPublicationHandler(uc *careerUC.PublicationUseCase, log logger.Logger) *PublicationHandler {
	return &PublicationHandler{useCase: uc, logger: log}
}

type PublicationRequest struct {
	ProfileID       uuid.UUID `json:"profile_id" binding:"required"`
	Title           string    `json:"title" binding:"required"`
	Publisher       string    `json:"publisher" binding:"required"`
	Authors         []string  `json:"authors"`
	PublicationDate time.Time `json:"publication_date" binding:"required"`
	PublicationURL  string    `json:"publication_url"`
	Description     string    `json:"description"`
	Tools           []string  `json:"tools"`
}

func (req *PublicationRequest) toInput() careerUC.PublicationInput {
	return careerUC.PublicationInput{
		ProfileID:       req.ProfileID,
		Title:           req.Title,
		Publisher:       req.Publisher,
		Authors:         req.Authors,
		PublicationDate: req.PublicationDate,
		PublicationURL:  req.PublicationURL,
		Description:     req.Description,
		Tools:           req.Tools,
	}
}

func (h *PublicationHandler) Create(c *gin.Context) {
	var req PublicationRequest
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

func (h *PublicationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid publication ID", err))
		return
	}

	p, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PublicationHandler) ListByProfile(c *gin.Context) {
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

func (h *PublicationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid publication ID", err))
		return
	}

	var req PublicationRequest
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

func (h *PublicationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid publication ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
