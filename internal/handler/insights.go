package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/joypop/joypop-api/internal/insights"
	"github.com/joypop/joypop-api/internal/middleware"
	"github.com/joypop/joypop-api/internal/model"
	"github.com/joypop/joypop-api/internal/repository"
)

// topHashtagLimit caps how many hashtags the insights view returns.
const topHashtagLimit = 3

// InsightsHandler computes per-category statistics on demand.
type InsightsHandler struct {
	Stars *repository.StarRepo
}

func NewInsightsHandler(stars *repository.StarRepo) *InsightsHandler {
	return &InsightsHandler{Stars: stars}
}

type insightsResp struct {
	Type        model.StarType      `json:"type"`
	Total       int                 `json:"total"`
	Streak      int                 `json:"streak"`
	TopHashtags []insights.TagCount `json:"top_hashtags"`
}

// Get returns the total, current day streak and top hashtags for one star
// type.
func (h *InsightsHandler) Get(c echo.Context) error {
	t, ok := model.ParseStarType(c.Param("type"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown star type"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stars, err := h.Stars.StarsByType(ctx, middleware.UserID(c), t)
	if err != nil {
		return writeRepoError(c, err, "fetch insights failed")
	}

	tags := insights.TopHashtags(stars, topHashtagLimit)
	if tags == nil {
		tags = []insights.TagCount{}
	}
	return c.JSON(http.StatusOK, insightsResp{
		Type:        t,
		Total:       len(stars),
		Streak:      insights.Streak(stars, time.Now()),
		TopHashtags: tags,
	})
}
