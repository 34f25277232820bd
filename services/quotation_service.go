package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/pkg/pdf"
	"github.com/teklifgo/server/repository"
	"github.com/teklifgo/server/ws"
)

// QuotationService, teklif iş kuralları.
//
// Para alanları her yazmada sunucuda yeniden hesaplanır — client'tan
// gelen subtotal/tax/total değerlerine güvenilmez.
type QuotationService interface {
	Create(ctx context.Context, userID string, req *models.CreateQuotationRequest) (*models.Quotation, error)
	Get(ctx context.Context, userID, id string) (*models.Quotation, error)
	List(ctx context.Context, userID string) ([]models.Quotation, error)
	Update(ctx context.Context, userID, id string, req *models.CreateQuotationRequest) (*models.Quotation, error)
	Delete(ctx context.Context, userID, id string) error
	UpdatePayment(ctx context.Context, userID, id string, req *models.PaymentUpdateRequest) (*models.Quotation, error)
	ListByPaymentStatus(ctx context.Context, userID, status string) ([]models.Quotation, error)
	// GeneratePDF, teklifin PDF çıktısını üretir. Dosya adı
	// teklif_<numara>.pdf formatındadır.
	GeneratePDF(ctx context.Context, userID, id string) (filename string, content []byte, err error)
}

type quotationService struct {
	quotationRepo repository.QuotationRepository
	customerRepo  repository.CustomerRepository
	userRepo      repository.UserRepository
	hub           ws.EventPublisher
	statsCache    StatsInvalidator
}

// StatsInvalidator, teklif verisi değiştiğinde istatistik cache'ini
// düşürmek için kullanılır. StatsService bunu implicit karşılar.
type StatsInvalidator interface {
	Invalidate(userID string)
}

// NewQuotationService, constructor.
// statsCache nil olabilir (testlerde) — nil ise invalidation atlanır.
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	hub ws.EventPublisher,
	statsCache StatsInvalidator,
) QuotationService {
	return &quotationService{
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		userRepo:      userRepo,
		hub:           hub,
		statsCache:    statsCache,
	}
}

// Create, yeni teklif oluşturur.
//
// Akış:
// 1. Validation + müşteri sahiplik kontrolü
// 2. Kalem toplamları ve teklif tutarları sunucuda hesaplanır
// 3. Teklif numarası üretilir (Q-YYYYMMDDHHMMSS-NNNN)
// 4. Teklif + kalemler tek transaction'da yazılır
func (s *quotationService) Create(ctx context.Context, userID string, req *models.CreateQuotationRequest) (*models.Quotation, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	// Müşteri bu kullanıcıya mı ait? Değilse 404.
	customer, err := s.customerRepo.GetByID(ctx, userID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	quotation := &models.Quotation{
		UserID:          userID,
		CustomerID:      req.CustomerID,
		QuotationNumber: generateQuotationNumber(),
		DiscountAmount:  req.DiscountAmount,
		TaxRate:         req.TaxRate,
		Notes:           req.Notes,
		Status:          models.QuotationStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
		Items:           req.Items,
	}
	computeTotals(quotation)

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}
	quotation.Customer = customer

	s.invalidateStats(userID)
	s.hub.BroadcastToUser(userID, ws.Event{Op: ws.OpQuotationCreate, Data: quotation})

	return quotation, nil
}

func (s *quotationService) Get(ctx context.Context, userID, id string) (*models.Quotation, error) {
	return s.quotationRepo.GetByID(ctx, userID, id)
}

func (s *quotationService) List(ctx context.Context, userID string) ([]models.Quotation, error) {
	return s.quotationRepo.ListByUser(ctx, userID)
}

// Update, teklifi günceller. Kalem listesi komple değiştirilir
// (replace semantics), tutarlar yeniden hesaplanır. Teklif numarası,
// durum ve ödeme alanları korunur.
func (s *quotationService) Update(ctx context.Context, userID, id string, req *models.CreateQuotationRequest) (*models.Quotation, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	existing, err := s.quotationRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != existing.CustomerID {
		if _, err := s.customerRepo.GetByID(ctx, userID, req.CustomerID); err != nil {
			return nil, err
		}
	}

	existing.CustomerID = req.CustomerID
	existing.DiscountAmount = req.DiscountAmount
	existing.TaxRate = req.TaxRate
	existing.Notes = req.Notes
	existing.Items = req.Items
	computeTotals(existing)

	if err := s.quotationRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	// Müşteri değişmiş olabilir — güncel halini join'li oku
	updated, err := s.quotationRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(userID)
	s.hub.BroadcastToUser(userID, ws.Event{Op: ws.OpQuotationUpdate, Data: updated})

	return updated, nil
}

func (s *quotationService) Delete(ctx context.Context, userID, id string) error {
	if err := s.quotationRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.invalidateStats(userID)
	s.hub.BroadcastToUser(userID, ws.Event{
		Op:   ws.OpQuotationDelete,
		Data: map[string]string{"id": id},
	})

	return nil
}

// UpdatePayment, teklifin ödeme durumunu günceller.
func (s *quotationService) UpdatePayment(ctx context.Context, userID, id string, req *models.PaymentUpdateRequest) (*models.Quotation, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	quotation, err := s.quotationRepo.UpdatePayment(ctx, userID, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidateStats(userID)
	s.hub.BroadcastToUser(userID, ws.Event{Op: ws.OpPaymentUpdate, Data: quotation})

	return quotation, nil
}

func (s *quotationService) ListByPaymentStatus(ctx context.Context, userID, status string) ([]models.Quotation, error) {
	switch status {
	case models.PaymentStatusUnpaid, models.PaymentStatusPaid, models.PaymentStatusPartial:
	default:
		return nil, fmt.Errorf("%w: invalid payment status: %s", pkg.ErrBadRequest, status)
	}

	return s.quotationRepo.ListByPaymentStatus(ctx, userID, status)
}

// GeneratePDF, teklifin PDF çıktısını üretir.
func (s *quotationService) GeneratePDF(ctx context.Context, userID, id string) (string, []byte, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, userID, id)
	if err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	content, err := pdf.BuildQuotation(user, quotation)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	filename := fmt.Sprintf("teklif_%s.pdf", quotation.QuotationNumber)
	return filename, content, nil
}

func (s *quotationService) invalidateStats(userID string) {
	if s.statsCache != nil {
		s.statsCache.Invalidate(userID)
	}
}

// computeTotals, kalem ve teklif tutarlarını hesaplar:
//
//	item.Total = quantity × unit_price
//	Subtotal   = Σ item.Total
//	TaxAmount  = (Subtotal - Discount) × TaxRate / 100
//	Total      = Subtotal - Discount + TaxAmount
//
// Sonuçlar kuruşa yuvarlanır.
func computeTotals(q *models.Quotation) {
	subtotal := 0.0
	for i := range q.Items {
		item := &q.Items[i]
		item.Total = round2(float64(item.Quantity) * item.UnitPrice)
		subtotal += item.Total
	}

	q.Subtotal = round2(subtotal)
	taxBase := q.Subtotal - q.DiscountAmount
	if taxBase < 0 {
		taxBase = 0
	}
	q.TaxAmount = round2(taxBase * float64(q.TaxRate) / 100)
	q.Total = round2(q.Subtotal - q.DiscountAmount + q.TaxAmount)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// generateQuotationNumber, Q-YYYYMMDDHHMMSS-NNNN formatında numara üretir.
// Rastgele son ek, aynı saniyede oluşturulan teklifleri ayırır.
func generateQuotationNumber() string {
	return fmt.Sprintf("Q-%s-%04d", time.Now().Format("20060102150405"), rand.Intn(10000))
}
