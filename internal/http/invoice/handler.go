package invoice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/acmecorp/invoiceboard/internal/invoice"
	"github.com/acmecorp/invoiceboard/internal/pagination"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/latest", h.latest)
	r.Get("/{id}", h.get)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	page := 1
	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			page = n
		}
	}

	totalPages, err := h.svc.Pages(r.Context(), query)
	if err != nil {
		slog.Error("failed to count invoice pages", "error", err)
		http.Error(w, "failed to fetch invoices", http.StatusInternalServerError)

		return
	}

	// Clamp before generating the display sequence; the generator expects
	// an in-range current page.
	if page < 1 {
		page = 1
	}

	if page > totalPages {
		page = totalPages
	}

	rows, err := h.svc.Filtered(r.Context(), query, page)
	if err != nil {
		slog.Error("failed to fetch invoices", "error", err)
		http.Error(w, "failed to fetch invoices", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Invoices:   toRowResponses(rows),
		TotalPages: totalPages,
		Pagination: toPaginationStrings(pagination.Generate(totalPages, page)),
	})
}

func (h *Handler) latest(w http.ResponseWriter, r *http.Request) {
	latest, err := h.svc.Latest(r.Context())
	if err != nil {
		slog.Error("failed to fetch latest invoices", "error", err)
		http.Error(w, "failed to fetch latest invoices", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toLatestResponses(latest))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	form, err := h.svc.Get(r.Context(), id.String())
	if err != nil {
		slog.Error("failed to fetch invoice", "error", err, "id", id)
		http.Error(w, "failed to fetch invoice", http.StatusInternalServerError)

		return
	}

	if form == nil {
		http.Error(w, "invoice not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toFormResponse(form))
}

type invoiceRequest struct {
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Status:     invoice.Status(req.Status),
	})
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to create invoice", "error", err)
		http.Error(w, "failed to create invoice", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, struct {
		ID string `json:"id"`
	}{ID: inv.ID})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.svc.Update(r.Context(), id.String(), invoice.CreateParams{
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Status:     invoice.Status(req.Status),
	})
	if err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		slog.Error("failed to update invoice", "error", err, "id", id)
		http.Error(w, "failed to update invoice", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id.String()); err != nil {
		slog.Error("failed to delete invoice", "error", err, "id", id)
		http.Error(w, "failed to delete invoice", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
