// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Route sıralama kuralı: literal path'ler parametrik path'lerden önce
// tanımlanmalı — "/api/payments/statistics", "/api/payments/{status}"
// öncesinde, yoksa router "statistics" kelimesini status sanır.
package main

import (
	"net/http"

	"github.com/teklifgo/server/middleware"
	"github.com/teklifgo/server/repository"
	"github.com/teklifgo/server/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
) {
	authMw := middleware.NewAuthMiddleware(authService, userRepo)

	// auth helper — JWT zorunlu endpoint'leri sarar
	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}

	// Root + health — public, monitoring araçları için.
	// "/{$}" yalnızca root'u eşler; "GET /" tüm bilinmeyen path'leri yutardı.
	mux.HandleFunc("GET /{$}", h.Health.Root)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth — public endpoint'ler (token gerekmez)
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	// Auth — protected
	mux.Handle("GET /api/auth/me", auth(h.Auth.Me))
	mux.Handle("PUT /api/auth/settings", auth(h.Auth.UpdateSettings))

	// Customers
	mux.Handle("GET /api/customers", auth(h.Customer.List))
	mux.Handle("POST /api/customers", auth(h.Customer.Create))
	mux.Handle("GET /api/customers/{id}", auth(h.Customer.Get))
	mux.Handle("PUT /api/customers/{id}", auth(h.Customer.Update))
	mux.Handle("DELETE /api/customers/{id}", auth(h.Customer.Delete))

	// Products
	mux.Handle("GET /api/products", auth(h.Product.List))
	mux.Handle("POST /api/products", auth(h.Product.Create))
	mux.Handle("GET /api/products/{id}", auth(h.Product.Get))
	mux.Handle("PUT /api/products/{id}", auth(h.Product.Update))
	mux.Handle("DELETE /api/products/{id}", auth(h.Product.Delete))

	// Catalog — kategori listesi (ürünler ∪ kullanıcı tanımlı)
	mux.Handle("GET /api/catalog/categories", auth(h.Product.ListCategories))
	mux.Handle("POST /api/catalog/categories", auth(h.Product.CreateCategory))

	// Quotations
	mux.Handle("GET /api/quotations", auth(h.Quotation.List))
	mux.Handle("POST /api/quotations", auth(h.Quotation.Create))
	mux.Handle("GET /api/quotations/{id}", auth(h.Quotation.Get))
	mux.Handle("PUT /api/quotations/{id}", auth(h.Quotation.Update))
	mux.Handle("DELETE /api/quotations/{id}", auth(h.Quotation.Delete))
	mux.Handle("PUT /api/quotations/{id}/payment", auth(h.Quotation.UpdatePayment))
	mux.Handle("GET /api/quotations/{id}/pdf", auth(h.Quotation.DownloadPDF))

	// Payments — literal "statistics" parametrik {status}'tan önce
	mux.Handle("GET /api/payments/statistics", auth(h.Stats.PaymentSummary))
	mux.Handle("GET /api/payments/{status}", auth(h.Quotation.ListByPaymentStatus))

	// Reminders
	mux.Handle("GET /api/reminders", auth(h.Reminder.List))
	mux.Handle("POST /api/reminders", auth(h.Reminder.Create))
	mux.Handle("DELETE /api/reminders/{id}", auth(h.Reminder.Delete))
	mux.Handle("POST /api/reminders/{id}/send", auth(h.Reminder.Send))

	// Statistics — dashboard
	mux.Handle("GET /api/statistics", auth(h.Stats.Dashboard))

	// WebSocket — token query parameter ile authenticate edilir.
	// Tarayıcılar WS upgrade sırasında custom header gönderemez,
	// handler token'ı kendi doğrular: ws://server/ws?token=JWT
	mux.HandleFunc("GET /ws", h.WS.HandleConnection)
}
