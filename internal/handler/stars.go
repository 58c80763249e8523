package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/joypop/joypop-api/internal/middleware"
	"github.com/joypop/joypop-api/internal/model"
	"github.com/joypop/joypop-api/internal/queue"
	"github.com/joypop/joypop-api/internal/repository"
	queue_publisher "github.com/joypop/joypop-api/internal/service"
)

// StarHandler exposes the star CRUD endpoints.
type StarHandler struct {
	Stars *repository.StarRepo
	Log   zerolog.Logger
}

func NewStarHandler(stars *repository.StarRepo, log zerolog.Logger) *StarHandler {
	return &StarHandler{Stars: stars, Log: log}
}

type createStarReq struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// List returns the user's stars, newest first. An optional ?type= filter
// narrows to one category.
func (h *StarHandler) List(c echo.Context) error {
	userID := middleware.UserID(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var (
		stars []model.StarEntry
		err   error
	)
	if raw := c.QueryParam("type"); raw != "" {
		t, ok := model.ParseStarType(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown star type"})
		}
		stars, err = h.Stars.StarsByType(ctx, userID, t)
	} else {
		stars, err = h.Stars.UserStars(ctx, userID)
	}
	if err != nil {
		return writeRepoError(c, err, "fetch stars failed")
	}
	if stars == nil {
		stars = []model.StarEntry{}
	}
	return c.JSON(http.StatusOK, echo.Map{"stars": stars})
}

// Create records one star. Content may be empty; the type must be valid.
func (h *StarHandler) Create(c echo.Context) error {
	var req createStarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	t, ok := model.ParseStarType(req.Type)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown star type"})
	}

	userID := middleware.UserID(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	star, err := h.Stars.Create(ctx, userID, t, req.Content)
	if err != nil {
		return writeRepoError(c, err, "create star failed")
	}

	// Best effort: the star exists whether or not downstream hears about it.
	_ = queue_publisher.PublishStarCreated(ctx, h.Log, queue.StarCreatedEvent{
		StarID:    star.ID,
		UserID:    star.UserID,
		Type:      string(star.Type),
		CreatedAt: star.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, star)
}

// Delete removes one star by id.
func (h *StarHandler) Delete(c echo.Context) error {
	starID := c.Param("id")
	if starID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "star id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Stars.Delete(ctx, middleware.UserID(c), starID); err != nil {
		return writeRepoError(c, err, "delete star failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// Count returns the star total, optionally filtered with ?type=.
func (h *StarHandler) Count(c echo.Context) error {
	userID := middleware.UserID(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var (
		n   int
		err error
	)
	if raw := c.QueryParam("type"); raw != "" {
		t, ok := model.ParseStarType(raw)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown star type"})
		}
		n, err = h.Stars.CountByType(ctx, userID, t)
	} else {
		n, err = h.Stars.Count(ctx, userID)
	}
	if err != nil {
		return writeRepoError(c, err, "count stars failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"count": n})
}

// Remaining reports how many stars can still be created in the current
// window.
func (h *StarHandler) Remaining(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	remaining := h.Stars.Remaining(ctx, middleware.UserID(c))
	return c.JSON(http.StatusOK, echo.Map{"remaining": remaining})
}
