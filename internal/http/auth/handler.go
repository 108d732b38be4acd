package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acmecorp/invoiceboard/internal/user"
)

type Handler struct {
	svc      *user.Service
	sessions *user.Sessions
}

func NewHandler(svc *user.Service, sessions *user.Sessions) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/register", h.register)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}

	u, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Invalid credentials."})
			return
		}

		slog.Error("authentication failed unexpectedly", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Something went wrong."})

		return
	}

	token, err := h.sessions.Issue(u)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Something went wrong."})

		return
	}

	writeJSON(w, http.StatusOK, struct {
		Token string `json:"token"`
	}{Token: token})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body."})
		return
	}

	err := h.svc.Register(r.Context(), user.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var vErr *user.ValidationError
		if errors.As(err, &vErr) {
			// Recoverable: the client redisplays the form with the message.
			writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Message: vErr.Message})
			return
		}

		slog.Error("failed to register user", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "Something went wrong."})

		return
	}

	w.WriteHeader(http.StatusCreated)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
