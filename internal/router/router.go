// Package router wires HTTP routes to their handlers. Unauthenticated
// operations live under /v1/auth; everything else under /v1 requires a
// valid access token.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/joypop/joypop-api/internal/handler"
	"github.com/joypop/joypop-api/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Stars    *handler.StarHandler
	Jars     *handler.JarHandler
	Profile  *handler.ProfileHandler
	Insights *handler.InsightsHandler
	Prefs    *handler.PrefsHandler
}

// Register mounts all routes on the Echo instance.
func Register(e *echo.Echo, h Handlers, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1/auth")
	g.POST("/otp/request", h.Auth.RequestOTP)
	g.POST("/otp/verify", h.Auth.VerifyOTP)
	g.POST("/refresh", h.Auth.Refresh)
	g.POST("/logout", h.Auth.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))

	auth.GET("/me", h.Auth.Me)

	auth.GET("/stars", h.Stars.List)
	auth.POST("/stars", h.Stars.Create)
	auth.DELETE("/stars/:id", h.Stars.Delete)
	auth.GET("/stars/count", h.Stars.Count)
	auth.GET("/stars/remaining", h.Stars.Remaining)

	auth.GET("/jar", h.Jars.State)
	auth.GET("/jars", h.Jars.List)
	auth.POST("/jars", h.Jars.Save)

	auth.GET("/insights/:type", h.Insights.Get)

	auth.GET("/profile", h.Profile.Get)
	auth.DELETE("/account", h.Profile.DeleteAccount)

	auth.GET("/preferences", h.Prefs.Get)
	auth.PUT("/preferences", h.Prefs.Put)
	auth.GET("/jar-skins", h.Prefs.Skins)
}
