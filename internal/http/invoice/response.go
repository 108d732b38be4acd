package invoice

import (
	"github.com/acmecorp/invoiceboard/internal/format"
	"github.com/acmecorp/invoiceboard/internal/invoice"
	"github.com/acmecorp/invoiceboard/internal/pagination"
)

type listResponse struct {
	Invoices   []rowResponse `json:"invoices"`
	TotalPages int           `json:"total_pages"`
	Pagination []string      `json:"pagination"`
}

type rowResponse struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

func toRowResponses(rows []invoice.Row) []rowResponse {
	out := make([]rowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowResponse{
			ID:       r.ID,
			Amount:   format.Currency(r.AmountCents),
			Date:     format.Date(r.Date),
			Status:   string(r.Status),
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
		})
	}

	return out
}

type latestResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

func toLatestResponses(latest []invoice.Latest) []latestResponse {
	out := make([]latestResponse, 0, len(latest))
	for _, l := range latest {
		out = append(out, latestResponse{
			ID:       l.ID,
			Name:     l.Name,
			Email:    l.Email,
			ImageURL: l.ImageURL,
			Amount:   l.Amount,
		})
	}

	return out
}

type formResponse struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

func toFormResponse(f *invoice.Form) formResponse {
	return formResponse{
		ID:         f.ID,
		CustomerID: f.CustomerID,
		Amount:     f.Amount,
		Status:     string(f.Status),
	}
}

func toPaginationStrings(items []pagination.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.String())
	}

	return out
}
