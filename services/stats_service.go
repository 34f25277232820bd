package services

import (
	"context"
	"time"

	"github.com/teklifgo/server/pkg/cache"
	"github.com/teklifgo/server/repository"
)

// DashboardStats, GET /api/statistics response'u.
type DashboardStats struct {
	TotalCustomers  int     `json:"total_customers"`
	TotalProducts   int     `json:"total_products"`
	TotalQuotations int     `json:"total_quotations"`
	TotalRevenue    float64 `json:"total_revenue"`
	PendingPayments float64 `json:"pending_payments"`
}

// PaymentSummary, GET /api/payments/statistics response'u.
type PaymentSummary struct {
	TotalExpected float64 `json:"total_expected"`
	TotalReceived float64 `json:"total_received"`
	TotalPending  float64 `json:"total_pending"`
	OverdueCount  int     `json:"overdue_count"`
}

// StatsService, dashboard ve ödeme istatistikleri.
//
// Sonuçlar kullanıcı başına TTL cache'te tutulur — dashboard sık
// yenilenir ama veriler saniyede bir değişmez. Teklif/müşteri/ürün
// yazan service'ler Invalidate() çağırır, stale okuma olmaz.
type StatsService interface {
	Dashboard(ctx context.Context, userID string) (*DashboardStats, error)
	PaymentSummary(ctx context.Context, userID string) (*PaymentSummary, error)
	Invalidate(userID string)
	Close()
}

type statsService struct {
	customerRepo  repository.CustomerRepository
	productRepo   repository.ProductRepository
	quotationRepo repository.QuotationRepository

	dashboardCache *cache.TTLCache[string, *DashboardStats]
	paymentCache   *cache.TTLCache[string, *PaymentSummary]
}

// NewStatsService, constructor. ttl, cache'lenen istatistiklerin ömrüdür.
func NewStatsService(
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	quotationRepo repository.QuotationRepository,
	ttl time.Duration,
) StatsService {
	return &statsService{
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		quotationRepo:  quotationRepo,
		dashboardCache: cache.New[string, *DashboardStats](ttl, 5*time.Minute),
		paymentCache:   cache.New[string, *PaymentSummary](ttl, 5*time.Minute),
	}
}

func (s *statsService) Dashboard(ctx context.Context, userID string) (*DashboardStats, error) {
	if stats, ok := s.dashboardCache.Get(userID); ok {
		return stats, nil
	}

	customers, err := s.customerRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	qStats, err := s.quotationRepo.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalCustomers:  customers,
		TotalProducts:   products,
		TotalQuotations: qStats.TotalQuotations,
		TotalRevenue:    qStats.TotalRevenue,
		PendingPayments: qStats.PendingPayments,
	}
	s.dashboardCache.Set(userID, stats)

	return stats, nil
}

func (s *statsService) PaymentSummary(ctx context.Context, userID string) (*PaymentSummary, error) {
	if summary, ok := s.paymentCache.Get(userID); ok {
		return summary, nil
	}

	qStats, err := s.quotationRepo.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &PaymentSummary{
		TotalExpected: qStats.TotalExpected,
		TotalReceived: qStats.TotalReceived,
		TotalPending:  qStats.PendingPayments,
		OverdueCount:  qStats.OverdueCount,
	}
	s.paymentCache.Set(userID, summary)

	return summary, nil
}

// Invalidate, kullanıcının cache'lenmiş istatistiklerini düşürür.
// Teklif, müşteri veya ürün değiştiğinde çağrılır.
func (s *statsService) Invalidate(userID string) {
	s.dashboardCache.Delete(userID)
	s.paymentCache.Delete(userID)
}

// Close, cache cleanup goroutine'lerini durdurur.
func (s *statsService) Close() {
	s.dashboardCache.Close()
	s.paymentCache.Close()
}
