package handlers

import (
	"net/http"
	"time"

	"github.com/mindwell/wellness-backend/internal/api/httpx"
	"github.com/mindwell/wellness-backend/internal/auth"
	"github.com/mindwell/wellness-backend/internal/models"
	"github.com/mindwell/wellness-backend/internal/services"
)

type AuthHandler struct {
	TM    *auth.TokenManager
	Users *services.UserService
}

func NewAuthHandler(tm *auth.TokenManager, users *services.UserService) *AuthHandler {
	return &AuthHandler{TM: tm, Users: users}
}

type tokenResp struct {
	User         models.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"` // seconds until access expiry
}

func (h *AuthHandler) issueTokens(w http.ResponseWriter, status int, u models.User) {
	access, refresh, exp, err := h.TM.GeneratePair(u.ID, u.Role)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "token generation failed", nil)
		return
	}
	httpx.WriteJSON(w, status, tokenResp{
		User:         u,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(time.Until(exp).Seconds()),
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if err := httpx.Decode(r, &in); err != nil {
		writeBadRequest(w)
		return
	}
	u, err := h.Users.Register(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.issueTokens(w, http.StatusCreated, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := httpx.Decode(r, &req); err != nil || req.Username == "" || req.Password == "" {
		writeBadRequest(w)
		return
	}
	u, err := h.Users.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.issueTokens(w, http.StatusOK, u)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := httpx.Decode(r, &req); err != nil || req.RefreshToken == "" {
		writeBadRequest(w)
		return
	}
	claims, isRefresh, err := h.TM.ParseAny(req.RefreshToken)
	if err != nil || !isRefresh {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid refresh token", nil)
		return
	}
	u, err := h.Users.Get(claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.issueTokens(w, http.StatusOK, u)
}

// Logout is stateless: the client discards its tokens.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "logout successful"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := currentUser(w, r)
	if !ok {
		return
	}
	u, err := h.Users.Get(uid)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"user": u})
}
