package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	leetcodeUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/leetcode"
	"github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type LeetcodeHandler struct {
	syncUseCase   *leetcodeUC.SyncUseCase
	recordUseCase *leetcodeUC.RecordUseCase
	badgeUseCase  *leetcodeUC.BadgeUseCase
	tagUseCase    *leetcodeUC.TagUseCase
	logger        logger.Logger
}

func NewLeetcodeHandler(
	syncUC *leetcodeUC.SyncUseCase,
	recordUC *leetcodeUC.RecordUseCase,
	badgeUC *leetcodeUC.BadgeUseCase,
	tagUC *leetcodeUC.TagUseCase,
	log logger.Logger,
) *LeetcodeHandler {
	return &LeetcodeHandler{
		syncUseCase:   syncUC,
		recordUseCase: recordUC,
		badgeUseCase:  badgeUC,
		tagUseCase:    tagUC,
		logger:        log,
	}
}

func (h *LeetcodeHandler) Sync(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("profileId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}

	output, err := h.syncUseCase.Execute(c.Request.Context(), leetcodeUC.SyncInput{
		ProfileID: profileID,
		Username:  c.Param("username"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	c.JSON(status, output.Record)
}

func (h *LeetcodeHandler) GetRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid record ID", err))
		return
	}

	record, err := h.recordUseCase.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *LeetcodeHandler) GetRecordByProfile(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("profileId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile ID", err))
		return
	}

	record, err := h.recordUseCase.GetByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *LeetcodeHandler) ListRecords(c *gin.Context) {
	filter := leetcode.ListFilter{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	if v := c.Query("username"); v != "" {
		filter.Username = &v
	}
	if v := c.Query("country"); v != "" {
		filter.Country = &v
	}
	if v := c.Query("company"); v != "" {
		filter.Company = &v
	}
	if v := c.Query("min_total_solved"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MinTotalSolved = &n
		}
	}
	if v := c.Query("max_total_solved"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MaxTotalSolved = &n
		}
	}
	if v := c.Query("min_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = &f
		}
	}
	if v := c.Query("max_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxRating = &f
		}
	}

	records, err := h.recordUseCase.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *LeetcodeHandler) DeleteRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid record ID", err))
		return
	}

	if err := h.recordUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

type AddBadgeRequest struct {
	Name      *string `json:"name"`
	Icon      *string `json:"icon"`
	HoverText *string `json:"hover_text"`
}

func (h *LeetcodeHandler) AddBadge(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid record ID", err))
		return
	}

	var req AddBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	badge, err := h.badgeUseCase.Add(c.Request.Context(), leetcodeUC.AddBadgeInput{
		RecordID:  recordID,
		Name:      req.Name,
		Icon:      req.Icon,
		HoverText: req.HoverText,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, badge)
}

func (h *LeetcodeHandler) ListBadges(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid record ID", err))
		return
	}

	badges, err := h.badgeUseCase.List(c.Request.Context(), recordID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, badges)
}

func (h *LeetcodeHandler) DeleteBadge(c *gin.Context) {
	id, err := uuid.Parse(c.Param("badgeId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid badge ID", err))
		return
	}

	if err := h.badgeUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

type AddTagRequest struct {
	TagCategory    *string `json:"tag_category"`
	TagName        *string `json:"tag_name"`
	ProblemsSolved *int    `json:"problems_solved"`
}

func (h *LeetcodeHandler) AddTag(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid record ID", err))
		return
	}

	var req AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	input := leetcodeUC.AddTagInput{
		RecordID:       recordID,
		TagName:        req.TagName,
		ProblemsSolved: req.ProblemsSolved,
	}
	if req.TagCategory != nil {
		category, ok := vocab.ParseTagCategory(*req.TagCategory)
		if !ok {
			c.Error(apperror.NewInvalidInput("unknown tag_category: "+*req.TagCategory, nil))
			return
		}
		input.TagCategory = &category
	}

	tag, err := h.tagUseCase.Add(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *LeetcodeHandler) ListTags(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid record ID", err))
		return
	}

	tags, err := h.tagUseCase.List(c.Request.Context(), recordID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *LeetcodeHandler) DeleteTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("tagId"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid tag ID", err))
		return
	}

	if err := h.tagUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
