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

type LocationHandler struct {
	useCase *careerUC.LocationUseCase
	logger  logger.Logger
}

func NewLocationHandler(uc *careerUC.LocationUseCase, log logger.Logger) *LocationHandler {
	return &LocationHandler{useCase: uc, logger: log}
}

type LocationRequest struct {
	City      string   `json:"city" binding:"required"`
	State     *string  `json:"state"`
	Country   string   `json:"country" binding:"required"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

func (req *LocationRequest) toInput() careerUC.LocationInput {
	return careerUC.LocationInput{
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		Longitude: req.Longitude,
		Latitude:  req.Latitude,
	}
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	l, err := h.useCase.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *LocationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid location ID", err))
		return
	}

	l, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LocationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	locations, err := h.useCase.List(c.Request.Context(), page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid location ID", err))
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	l, err := h.useCase.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LocationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid location ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
