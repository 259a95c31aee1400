package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	userUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/user"
	"github.com/dijkstra-edu/dataforge/internal/domain/user"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type UserHandler struct {
	userUseCase *userUC.UserUseCase
	logger      logger.Logger
}

func NewUserHandler(uc *userUC.UserUseCase, log logger.Logger) *UserHandler {
	return &UserHandler{userUseCase: uc, logger: log}
}

type CreateOrUpdateUserRequest struct {
	GithubUserName string  `json:"github_user_name" binding:"required"`
	FirstName      string  `json:"first_name" binding:"required"`
	MiddleName     *string `json:"middle_name"`
	LastName       string  `json:"last_name" binding:"required"`
	Rank           string  `json:"rank" binding:"required"`
	Streak         *int    `json:"streak"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateOrUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	u, err := h.userUseCase.Create(c.Request.Context(), userUC.CreateUserInput{
		GithubUserName: req.GithubUserName,
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		Rank:           req.Rank,
		Streak:         req.Streak,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	u, err := h.userUseCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) GetUserByGithubUsername(c *gin.Context) {
	u, err := h.userUseCase.GetByGithubUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	filter := user.ListFilter{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	if v := c.Query("first_name"); v != "" {
		filter.FirstName = &v
	}
	if v := c.Query("last_name"); v != "" {
		filter.LastName = &v
	}
	if v := c.Query("github_user_name"); v != "" {
		filter.GithubUserName = &v
	}
	if v := c.Query("rank"); v != "" {
		rank, ok := vocab.ParseRank(v)
		if !ok {
			c.Error(apperror.NewInvalidInput("unknown rank filter: "+v, nil))
			return
		}
		filter.Rank = &rank
	}
	if v := c.Query("min_streak"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MinStreak = &n
		}
	}
	if v := c.Query("max_streak"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MaxStreak = &n
		}
	}

	users, err := h.userUseCase.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) AutocompleteUsers(c *gin.Context) {
	query := c.Query("q")
	field := c.DefaultQuery("field", "github_user_name")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	users, err := h.userUseCase.Autocomplete(c.Request.Context(), query, field, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	var req CreateOrUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	u, err := h.userUseCase.Update(c.Request.Context(), userUC.UpdateUserInput{
		ID:             id,
		GithubUserName: req.GithubUserName,
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		Rank:           req.Rank,
		Streak:         req.Streak,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid user ID", err))
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
