// internal/api/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(us *services.UserService) *AuthHandler {
	return &AuthHandler{Users: us}
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Message  string          `json:"message"`
	UserInfo models.UserInfo `json:"userInfo"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Users.Register(r.Context(), req.Username, req.Password); err != nil {
		httpx.WriteErr(w, r, "register", err, "Registration failed")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Registration successful")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	info, err := h.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.WriteErr(w, r, "login", err, "Login failed")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, loginResp{Message: "Login successful", UserInfo: info})
}
