package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	careerUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/career"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type LinksHandler struct {
	useCase *careerUC.LinksUseCase
	logger  logger.Logger
}

func NewLinksHandler(uc *careerUC.LinksUseCase, log logger.Logger) *LinksHandler {
	return &LinksHandler{useCase: uc, logger: log}
}

type LinksRequest struct {
	UserID           uuid.UUID `json:"user_id" binding:"required"`
	GithubUserName   *string   `json:"github_user_name"`
	LinkedinUserName *string   `json:"linkedin_user_name"`
	LeetcodeUserName *string   `json:"leetcode_user_name"`
	OrcidID          *string   `json:"orcid_id"`
	PrimaryEmail     *string   `json:"primary_email"`
	SecondaryEmail   *string   `json:"secondary_email"`
	SchoolEmail      *string   `json:"school_email"`
	WorkEmail        *string   `json:"work_email"`
}

func (req *LinksRequest) toInput() careerUC.LinksInput {
	return careerUC.LinksInput{
		UserID:           req.UserID,
		GithubUserName:   req.GithubUserName,
		LinkedinUserName: req.LinkedinUserName,
		LeetcodeUserName: req.LeetcodeUserName,
		OrcidID:          req.OrcidID,
		PrimaryEmail:     req.PrimaryEmail,
		SecondaryEmail:   req.SecondaryEmail,
		SchoolEmail:      req.SchoolEmail,
		WorkEmail:        req.WorkEmail,
	}
}

func (h *LinksHandler) Create(c *gin.Context) {
	var req LinksRequest
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

func (h *LinksHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid links ID", err))
		return
	}

	l, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LinksHandler) GetByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	l, err := h.useCase.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LinksHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid links ID", err))
		return
	}

	var req LinksRequest
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

func (h *LinksHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid links ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
