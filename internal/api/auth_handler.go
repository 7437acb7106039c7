package api

import (
	"encoding/json"
	"net/http"

	"threadline-be/internal/user"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	userSvc user.Service
}

func NewAuthHandler(userSvc user.Service) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	token, u, err := h.userSvc.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusCreated, authResponse{Token: token, User: u})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	token, u, err := h.userSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		RespondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, authResponse{Token: token, User: u})
}
