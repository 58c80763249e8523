package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/joypop/joypop-api/internal/auth"
	"github.com/joypop/joypop-api/internal/config"
	"github.com/joypop/joypop-api/internal/middleware"
	"github.com/joypop/joypop-api/internal/model"
	"github.com/joypop/joypop-api/internal/store"
)

// AuthHandler bundles dependencies for the OTP login endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Store    store.Store
	Sessions *auth.Sessions
	OTP      *auth.OTP
	Log      zerolog.Logger
}

func NewAuthHandler(cfg config.Config, st store.Store, sessions *auth.Sessions, otp *auth.OTP, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: st, Sessions: sessions, OTP: otp, Log: log}
}

type otpRequestReq struct {
	Email string `json:"email"`
}
type otpVerifyReq struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User    model.Profile `json:"user"`
	Access  tokenPart     `json:"access"`
	Refresh tokenPart     `json:"refresh"`
}

// RequestOTP issues a login code for an email address. Accounts are
// provisioned lazily on verification, so this always reports success for
// a well-formed address.
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req otpRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.OTP.Request(ctx, email); err != nil {
		h.Log.Error().Err(err).Msg("otp request failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "send code failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "code sent"})
}

// VerifyOTP exchanges a valid code for a token pair, creating the profile
// on first login.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req otpVerifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Code) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/code required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.OTP.Verify(ctx, email, req.Code); err != nil {
		if errors.Is(err, auth.ErrInvalidCode) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired code"})
		}
		h.Log.Error().Err(err).Msg("otp verify failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "verify failed"})
	}

	profile, err := h.Store.EnsureProfile(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "provision profile failed"})
	}
	return h.issueTokens(ctx, c, profile)
}

// Refresh validates a refresh token by hash, revokes it and issues a new
// pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := auth.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userID, err := h.Sessions.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	_ = h.Sessions.RevokeByHash(ctx, hash)

	profile, err := h.Store.ProfileByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	return h.issueTokens(ctx, c, profile)
}

// Logout revokes one session identified by its refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := auth.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Sessions.ValidateRefresh(ctx, hash); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	if err := h.Sessions.RevokeByHash(ctx, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated principal id.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"user_id": middleware.UserID(c)})
}

func (h *AuthHandler) issueTokens(ctx context.Context, c echo.Context, profile model.Profile) error {
	access, err := auth.NewAccessToken(h.Cfg.JWTSecret, profile.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := auth.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Sessions.StoreRefresh(ctx, profile.ID, auth.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:    profile,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	})
}
