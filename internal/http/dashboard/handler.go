package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acmecorp/invoiceboard/internal/dashboard"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/revenue", h.revenue)
	r.Get("/cards", h.cards)
}

type revenueResponse struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.svc.Revenue(r.Context())
	if err != nil {
		slog.Error("failed to fetch revenue", "error", err)
		http.Error(w, "failed to fetch revenue", http.StatusInternalServerError)

		return
	}

	out := make([]revenueResponse, 0, len(revenue))
	for _, rev := range revenue {
		out = append(out, revenueResponse{Month: rev.Month, Revenue: rev.Revenue})
	}

	writeJSON(w, http.StatusOK, out)
}

type cardsResponse struct {
	NumberOfInvoices  int64  `json:"number_of_invoices"`
	NumberOfCustomers int64  `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid"`
	TotalPending      string `json:"total_pending"`
}

func (h *Handler) cards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.svc.Cards(r.Context())
	if err != nil {
		slog.Error("failed to fetch card data", "error", err)
		http.Error(w, "failed to fetch card data", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, cardsResponse{
		NumberOfInvoices:  cards.NumberOfInvoices,
		NumberOfCustomers: cards.NumberOfCustomers,
		TotalPaid:         cards.TotalPaid,
		TotalPending:      cards.TotalPending,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
