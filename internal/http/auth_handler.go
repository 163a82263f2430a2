package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kranthi-07/Dab/internal/domain"
	"github.com/kranthi-07/Dab/internal/service"
	"github.com/kranthi-07/Dab/internal/session"
)

type AuthHandler struct {
	auth          *service.AuthService
	sessions      session.Store
	sessionTTL    time.Duration
	secureCookies bool
	log           *logrus.Entry
}

func NewAuthHandler(auth *service.AuthService, sessions session.Store, sessionTTL time.Duration, secureCookies bool, log *logrus.Entry) *AuthHandler {
	return &AuthHandler{
		auth:          auth,
		sessions:      sessions,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
		log:           log,
	}
}

type signupRequestDTO struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type signinRequestDTO struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type updateProfileRequestDTO struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type userSummaryDTO struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	account, err := h.auth.Register(r.Context(), req.Name, req.Mobile, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.log.WithField("user_id", account.ID).Info("user registered")
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Signup successful!",
	})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	account, err := h.auth.Verify(r.Context(), req.Mobile, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.sessions.Create(r.Context(), account.ID)
	if err != nil {
		h.log.WithError(err).Error("session create failed")
		handleServiceError(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, h.sessionTTL))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful!",
		"user":    userSummaryDTO{Name: account.Name, Mobile: account.Mobile},
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	account, err := h.auth.Profile(r.Context(), identity.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]*domain.UserAccount{"user": account})
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
		return
	}

	var req updateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	account, err := h.auth.UpdateProfile(r.Context(), identity.UserID, req.Name, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile updated",
		"user":    account,
	})
}

// Logout destroys the session if one exists and clears the cookie either
// way. It always succeeds from the client's perspective.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			h.log.WithError(err).Warn("session destroy failed")
		}
	}

	http.SetCookie(w, h.sessionCookie("", -time.Second))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out",
	})
}

func (h *AuthHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
