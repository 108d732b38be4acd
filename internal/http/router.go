package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/acmecorp/invoiceboard/internal/http/auth"
	"github.com/acmecorp/invoiceboard/internal/http/customer"
	"github.com/acmecorp/invoiceboard/internal/http/dashboard"
	"github.com/acmecorp/invoiceboard/internal/http/invoice"
	"github.com/acmecorp/invoiceboard/internal/user"
)

func New(
	authV1 *auth.Handler,
	dashboardV1 *dashboard.Handler,
	invoicesV1 *invoice.Handler,
	customersV1 *customer.Handler,
	sessions *user.Sessions,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSession(sessions))

			r.Route("/dashboard", dashboardV1.Routes)

			r.Route("/invoices", func(r chi.Router) {
				invoicesV1.Routes(r)
			})

			r.Route("/customers", customersV1.Routes)
		})
	})

	return router
}
