package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicalcanvas/practice-api/internal/api/metrics"
	"github.com/clinicalcanvas/practice-api/internal/core/domain"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// AuthHandler handles registration and login. Login is throttled per
// email+IP through the limiter; a Redis outage fails open so an infra
// problem cannot lock every therapist out.
type AuthHandler struct {
	authService ports.AuthService
	limiter     ports.LoginLimiter
	logger      zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter, logger: logger}
}

// Register creates a new therapist account and returns a token with it.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrUserExists), errors.Is(err, domain.ErrInvalidCredentials):
			status = http.StatusBadRequest
		default:
			h.logger.Error().Err(err).Msg("register failed")
			return c.JSON(status, errorResponse{Error: "internal server error"})
		}
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	key := req.Email + "|" + c.RealIP()
	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request().Context(), key)
		if err != nil {
			h.logger.Warn().Err(err).Msg("login limiter unavailable, failing open")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: domain.ErrTooManyAttempts.Error()})
		}
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		h.logger.Error().Err(err).Msg("login failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	if h.limiter != nil {
		if err := h.limiter.Reset(c.Request().Context(), key); err != nil {
			h.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
