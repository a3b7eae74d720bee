package httpd

import (
	"errors"
	"net/http"
	"time"

	"github.com/alecxander567/Course-Tracker-Api/internal/models"
	"github.com/alecxander567/Course-Tracker-Api/internal/service"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	user, err := h.authService.Register(ctx, &req)
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(w, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.authService.Logout(ctx, h.sessionToken(r)); err != nil {
		h.handleAuthError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	writeSuccess(w, map[string]interface{}{
		"message": "Logged out successfully",
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := h.userService.GetUser(ctx, userIDFromContext(ctx))
	if err != nil {
		h.handleUserError(w, err)
		return
	}

	writeSuccess(w, user)
}

func (h *Handler) handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionInvalid):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error().Err(err).Msg("Auth service error")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
