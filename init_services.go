// Package main — Service katmanı başlatma.
package main

import (
	"time"

	"github.com/teklifgo/server/config"
	"github.com/teklifgo/server/pkg/email"
	"github.com/teklifgo/server/services"
	"github.com/teklifgo/server/ws"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth      services.AuthService
	Customer  services.CustomerService
	Product   services.ProductService
	Quotation services.QuotationService
	Reminder  services.ReminderService
	Stats     services.StatsService
}

// initServices, tüm service'leri repository ve hub dependency'leri ile oluşturur.
//
// Email sender yalnızca RESEND_API_KEY tanımlıysa kurulur; aksi halde
// nil geçilir ve hatırlatma email'leri atlanır (WS bildirimi çalışmaya
// devam eder).
func initServices(repos *Repositories, hub *ws.Hub, cfg *config.Config) *Services {
	var sender email.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail)
	}

	statsService := services.NewStatsService(
		repos.Customer,
		repos.Product,
		repos.Quotation,
		30*time.Second,
	)

	return &Services{
		Auth:     services.NewAuthService(repos.User, cfg.JWT.Secret, cfg.JWT.ExpiryDays),
		Customer: services.NewCustomerService(repos.Customer, statsService),
		Product:  services.NewProductService(repos.Product, repos.Category, statsService),
		Quotation: services.NewQuotationService(
			repos.Quotation,
			repos.Customer,
			repos.User,
			hub,
			statsService,
		),
		Reminder: services.NewReminderService(
			repos.Reminder,
			repos.Quotation,
			repos.User,
			hub,
			sender,
			time.Duration(cfg.Reminder.CheckIntervalSeconds)*time.Second,
		),
		Stats: statsService,
	}
}
