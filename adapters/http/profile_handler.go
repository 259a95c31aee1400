package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/profile"
	userUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/user"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase     *profileUC.ProfileUseCase
	fullProfileUseCase *profileUC.FullProfileUseCase
	resolveUseCase     *userUC.ResolveProfileUseCase
	logger             logger.Logger
}

func NewProfileHandler(
	pUC *profileUC.ProfileUseCase,
	fullUC *profileUC.FullProfileUseCase,
	resolveUC *userUC.ResolveProfileUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase:     pUC,
		fullProfileUseCase: fullUC,
		resolveUseCase:     resolveUC,
		logger:             log,
	}
}

type CreateProfileRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	p, err := h.profileUseCase.Create(c.Request.Context(), req.UserID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}

	p, err := h.profileUseCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) GetProfileByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	p, err := h.profileUseCase.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	filter := profile.ListFilter{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	if v := c.Query("user_id"); v != "" {
		userID, err := uuid.Parse(v)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid user_id filter", err))
			return
		}
		filter.UserID = &userID
	}

	profiles, err := h.profileUseCase.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}

	if err := h.profileUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetFullProfile serves the composite view for a profile id.
func (h *ProfileHandler) GetFullProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}

	out, err := h.fullProfileUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToFullProfileDTO(out))
}

// GetProfileByGithubUsername resolves a GitHub username to a profile.
// With all_data=true the composite view is assembled; otherwise only
// the bare profile row is returned.
func (h *ProfileHandler) GetProfileByGithubUsername(c *gin.Context) {
	resolved, err := h.resolveUseCase.Execute(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}

	allData, _ := strconv.ParseBool(c.DefaultQuery("all_data", "false"))
	if !allData {
		c.JSON(http.StatusOK, resolved.Profile)
		return
	}

	out, err := h.fullProfileUseCase.Execute(c.Request.Context(), resolved.Profile.ID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToFullProfileDTO(out))
}
