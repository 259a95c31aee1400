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

type CertificationHandler struct {
	useCase *careerUC.CertificationUseCase
	logger  logger.Logger
}

func NewCertificationHandler(uc *careerUC.CertificationUseCase, log logger.Logger) *CertificationHandler {
	return &CertificationHandler{useCase: uc, logger: log}
}

type CertificationRequest struct {
	ProfileID               uuid.UUID  `json:"profile_id" binding:"required"`
	Name                    string     `json:"name" binding:"required"`
	Type                    string     `json:"type" binding:"required"`
	IssuingOrganization     string     `json:"issuing_organization" binding:"required"`
	IssueDate               time.Time  `json:"issue_date" binding:"required"`
	ExpiryDate              *time.Time `json:"expiry_date"`
	CredentialID            string     `json:"credential_id"`
	CredentialURL           string     `json:"credential_url"`
	Tools                   []string   `json:"tools"`
	IssuingOrganizationLogo *string    `json:"issuing_organization_logo"`
}

func (req *CertificationRequest) toInput() careerUC.CertificationInput {
	return careerUC.CertificationInput{
		ProfileID:               req.ProfileID,
		Name:                    req.Name,
		Type:                    req.Type,
		IssuingOrganization:     req.IssuingOrganization,
		IssueDate:               req.IssueDate,
		ExpiryDate:              req.ExpiryDate,
		CredentialID:            req.CredentialID,
		CredentialURL:           req.CredentialURL,
		Tools:                   req.Tools,
		IssuingOrganizationLogo: req.IssuingOrganizationLogo,
	}
}

func (h *CertificationHandler) Create(c *gin.Context) {
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	cert, err := h.useCase.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

func (h *CertificationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}

	cert, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificationHandler) ListByProfile(c *gin.Context) {
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

func (h *CertificationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}

	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	cert, err := h.useCase.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
