package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/joypop/joypop-api/internal/jarfill"
	"github.com/joypop/joypop-api/internal/middleware"
	"github.com/joypop/joypop-api/internal/model"
	"github.com/joypop/joypop-api/internal/queue"
	"github.com/joypop/joypop-api/internal/repository"
	queue_publisher "github.com/joypop/joypop-api/internal/service"
)

// JarHandler serves the live jar view and the save-and-reset flow.
type JarHandler struct {
	Jars  *repository.JarRepo
	Stars *repository.StarRepo
	Log   zerolog.Logger
}

func NewJarHandler(jars *repository.JarRepo, stars *repository.StarRepo, log zerolog.Logger) *JarHandler {
	return &JarHandler{Jars: jars, Stars: stars, Log: log}
}

type saveJarReq struct {
	Name string `json:"name"`
}

type jarStateResp struct {
	Filled   int               `json:"filled"`
	Empty    int               `json:"empty"`
	Capacity int               `json:"capacity"`
	Percent  float64           `json:"percent"`
	Full     bool              `json:"full"`
	Quote    string            `json:"quote"`
	Slots    []model.StarEntry `json:"slots"`
}

// State returns the current jar: fill counts, the quote for this level and
// the displayed slots ordered bottom-up.
func (h *JarHandler) State(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stars, err := h.Stars.UserStars(ctx, middleware.UserID(c))
	if err != nil {
		return writeRepoError(c, err, "fetch jar failed")
	}

	state := jarfill.Fill(stars)
	return c.JSON(http.StatusOK, jarStateResp{
		Filled:   state.Filled,
		Empty:    state.Empty,
		Capacity: state.Capacity,
		Percent:  state.Percent(),
		Full:     state.Full(),
		Quote:    state.Quote(),
		Slots:    jarfill.BottomUp(stars, state.Capacity),
	})
}

// List returns the user's archived jars, newest first.
func (h *JarHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	jars, err := h.Jars.Jars(ctx, middleware.UserID(c))
	if err != nil {
		return writeRepoError(c, err, "fetch jars failed")
	}
	if jars == nil {
		jars = []model.Jar{}
	}
	return c.JSON(http.StatusOK, echo.Map{"jars": jars})
}

// Save archives the current jar under a name, then clears the active
// stars. The two steps are separate writes: if the clear fails after the
// jar was created, the response carries the jar id so the client can
// retry the reset without creating a duplicate jar.
func (h *JarHandler) Save(c echo.Context) error {
	var req saveJarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	userID := middleware.UserID(c)
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	starCount, err := h.Stars.Count(ctx, userID)
	if err != nil {
		return writeRepoError(c, err, "count stars failed")
	}

	jar, err := h.Jars.Create(ctx, userID, req.Name)
	if err != nil {
		return writeRepoError(c, err, "save jar failed")
	}

	if err := h.Stars.DeleteAll(ctx, userID); err != nil {
		h.Log.Error().Err(err).Str("jar_id", jar.ID).Msg("jar saved but stars were not cleared")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":  "jar saved but current stars were not cleared",
			"jar_id": jar.ID,
		})
	}

	_ = queue_publisher.PublishJarSaved(ctx, h.Log, queue.JarSavedEvent{
		JarID:     jar.ID,
		UserID:    jar.UserID,
		Name:      jar.Name,
		StarCount: starCount,
		SavedAt:   jar.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, jar)
}
