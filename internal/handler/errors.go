package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joypop/joypop-api/internal/repository"
)

// writeRepoError maps repository errors onto HTTP responses. The rate
// limit case carries its structured payload through so clients can show
// the remaining quota and reset time.
func writeRepoError(c echo.Context, err error, fallback string) error {
	var rle *repository.RateLimitError
	switch {
	case errors.Is(err, repository.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	case errors.As(err, &rle):
		return c.JSON(http.StatusTooManyRequests, echo.Map{
			"error":      "rate_limited",
			"message":    rle.Message,
			"remaining":  rle.Remaining,
			"reset_time": rle.ResetTime,
		})
	case errors.Is(err, repository.ErrContentTooLong),
		errors.Is(err, repository.ErrEmptyJarName),
		errors.Is(err, repository.ErrJarNameTooLong):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
	}
}
