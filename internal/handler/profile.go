package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/joypop/joypop-api/internal/middleware"
	"github.com/joypop/joypop-api/internal/prefs"
	"github.com/joypop/joypop-api/internal/repository"
)

// ProfileHandler serves the profile read and the account-deletion flow.
type ProfileHandler struct {
	Profiles *repository.ProfileRepo
	Prefs    *prefs.RedisStore
	Log      zerolog.Logger
}

func NewProfileHandler(profiles *repository.ProfileRepo, p *prefs.RedisStore, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Prefs: p, Log: log}
}

// Get returns the authenticated user's profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Profiles.Profile(ctx, middleware.UserID(c))
	if err != nil {
		return writeRepoError(c, err, "fetch profile failed")
	}
	if p == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteAccount removes the account and everything attached to it. The
// repository handles server-side data, caches and sessions; stored
// preferences are cleaned up best effort afterwards.
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	userID := middleware.UserID(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Profiles.DeleteAccount(ctx, userID); err != nil {
		return writeRepoError(c, err, "delete account failed")
	}
	if err := h.Prefs.Delete(ctx, userID); err != nil {
		h.Log.Warn().Err(err).Str("user_id", userID).Msg("delete preferences after account deletion failed")
	}
	return c.NoContent(http.StatusNoContent)
}
