// Package main — Handler katmanı başlatma.
package main

import (
	"github.com/teklifgo/server/database"
	"github.com/teklifgo/server/handlers"
	"github.com/teklifgo/server/pkg/ratelimit"
	"github.com/teklifgo/server/ws"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Customer  *handlers.CustomerHandler
	Product   *handlers.ProductHandler
	Quotation *handlers.QuotationHandler
	Reminder  *handlers.ReminderHandler
	Stats     *handlers.StatsHandler
	Health    *handlers.HealthHandler
	WS        *ws.Handler
}

// initHandlers, tüm handler'ları service dependency'leri ile oluşturur.
func initHandlers(svcs *Services, db *database.DB, loginLimiter *ratelimit.LoginRateLimiter, hub *ws.Hub) *Handlers {
	return &Handlers{
		Auth:      handlers.NewAuthHandler(svcs.Auth, loginLimiter),
		Customer:  handlers.NewCustomerHandler(svcs.Customer),
		Product:   handlers.NewProductHandler(svcs.Product),
		Quotation: handlers.NewQuotationHandler(svcs.Quotation),
		Reminder:  handlers.NewReminderHandler(svcs.Reminder),
		Stats:     handlers.NewStatsHandler(svcs.Stats),
		Health:    handlers.NewHealthHandler(db),
		WS:        ws.NewHandler(hub, svcs.Auth),
	}
}
