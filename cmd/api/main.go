package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/acmecorp/invoiceboard/internal/config"
	"github.com/acmecorp/invoiceboard/internal/customer"
	customerStore "github.com/acmecorp/invoiceboard/internal/customer/store"
	"github.com/acmecorp/invoiceboard/internal/dashboard"
	dashboardStore "github.com/acmecorp/invoiceboard/internal/dashboard/store"
	"github.com/acmecorp/invoiceboard/internal/database"
	boardHttp "github.com/acmecorp/invoiceboard/internal/http"
	authHandler "github.com/acmecorp/invoiceboard/internal/http/auth"
	customerHandler "github.com/acmecorp/invoiceboard/internal/http/customer"
	dashboardHandler "github.com/acmecorp/invoiceboard/internal/http/dashboard"
	invoiceHandler "github.com/acmecorp/invoiceboard/internal/http/invoice"
	"github.com/acmecorp/invoiceboard/internal/invoice"
	invoiceStore "github.com/acmecorp/invoiceboard/internal/invoice/store"
	"github.com/acmecorp/invoiceboard/internal/user"
	userStore "github.com/acmecorp/invoiceboard/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	connStr, err := cfg.ConnectionString()
	if err != nil {
		slog.Error("failed to resolve database url", "error", err)
		os.Exit(1)
	}

	db, err := database.New(connStr)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		invoiceService   = invoice.NewService(invoiceStore.New(db))
		customerService  = customer.NewService(customerStore.New(db))
		dashboardService = dashboard.NewService(dashboardStore.New(db))
		userService      = user.NewService(userStore.New(db))
		sessions         = user.NewSessions(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	)

	var (
		authH      = authHandler.NewHandler(userService, sessions)
		dashboardH = dashboardHandler.NewHandler(dashboardService)
		invoiceH   = invoiceHandler.NewHandler(invoiceService)
		customerH  = customerHandler.NewHandler(customerService)
	)

	router := boardHttp.New(authH, dashboardH, invoiceH, customerH, sessions)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
