package handlers

import (
	"net/http"

	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type SubscribeHandler struct {
	Subs *services.SubscriptionService
}

func NewSubscribeHandler(ss *services.SubscriptionService) *SubscribeHandler {
	return &SubscribeHandler{Subs: ss}
}

type subscribeReq struct {
	Email string `json:"email"`
}

func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Subs.Subscribe(r.Context(), req.Email); err != nil {
		httpx.WriteErr(w, r, "subscribe", err, "Error subscribing, please try again")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Thank you for subscribing!")
}
