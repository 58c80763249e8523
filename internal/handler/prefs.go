package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/joypop/joypop-api/internal/middleware"
	"github.com/joypop/joypop-api/internal/prefs"
)

// PrefsHandler reads and writes per-user UI preferences.
type PrefsHandler struct {
	Store *prefs.RedisStore
}

func NewPrefsHandler(store *prefs.RedisStore) *PrefsHandler {
	return &PrefsHandler{Store: store}
}

// Get returns the user's preferences, falling back to defaults.
func (h *PrefsHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Store.Get(ctx, middleware.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load preferences failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Put replaces the user's preferences after validation.
func (h *PrefsHandler) Put(c echo.Context) error {
	var p prefs.Preferences
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Set(ctx, middleware.UserID(c), p); err != nil {
		if errors.Is(err, prefs.ErrInvalidPreferences) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store preferences failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Skins lists the available jar skins.
func (h *PrefsHandler) Skins(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"skins": prefs.Skins})
}
