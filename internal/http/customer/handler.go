package customer

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acmecorp/invoiceboard/internal/customer"
)

type Handler struct {
	svc *customer.Service
}

func NewHandler(svc *customer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/filtered", h.filtered)
}

type fieldResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	fields, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list customers", "error", err)
		http.Error(w, "failed to fetch customers", http.StatusInternalServerError)

		return
	}

	out := make([]fieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldResponse{ID: f.ID, Name: f.Name})
	}

	writeJSON(w, http.StatusOK, out)
}

type summaryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

func (h *Handler) filtered(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	summaries, err := h.svc.Filtered(r.Context(), query)
	if err != nil {
		slog.Error("failed to fetch customer table", "error", err)
		http.Error(w, "failed to fetch customers", http.StatusInternalServerError)

		return
	}

	out := make([]summaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, summaryResponse{
			ID:            s.ID,
			Name:          s.Name,
			Email:         s.Email,
			ImageURL:      s.ImageURL,
			TotalInvoices: s.TotalInvoices,
			TotalPending:  s.TotalPending,
			TotalPaid:     s.TotalPaid,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
