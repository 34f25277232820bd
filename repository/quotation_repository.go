package repository

import (
	"context"

	"github.com/teklifgo/server/models"
)

// QuotationStats, dashboard ve ödeme istatistikleri için SQL'de hesaplanan
// aggregate değerler. Orijinal sistem tüm satırları çekip uygulamada
// topluyordu — burada tek bir aggregate sorgu kullanılır.
type QuotationStats struct {
	TotalQuotations int     // Toplam teklif sayısı
	TotalRevenue    float64 // payment_status = paid tekliflerin toplamı
	PendingPayments float64 // payment_status = unpaid tekliflerin toplamı
	TotalExpected   float64 // Tüm tekliflerin toplamı
	TotalReceived   float64 // paid tekliflerde payment_amount (yoksa total)
	OverdueCount    int     // unpaid teklif sayısı
}

// QuotationRepository, teklif veritabanı işlemleri için interface.
//
// Create ve Update, teklif + kalemlerini tek transaction'da yazar —
// kalemler yazılamazsa teklif de kalmaz (atomicity).
type QuotationRepository interface {
	Create(ctx context.Context, quotation *models.Quotation) error
	// GetByID, teklifi müşteri bilgisi ve kalemleriyle birlikte döner.
	GetByID(ctx context.Context, userID, id string) (*models.Quotation, error)
	// ListByUser, kullanıcının tüm tekliflerini (müşteri + kalemler dahil)
	// oluşturma tarihine göre yeniden eskiye döner.
	ListByUser(ctx context.Context, userID string) ([]models.Quotation, error)
	// Update, teklif alanlarını günceller ve kalem listesini komple değiştirir.
	Update(ctx context.Context, quotation *models.Quotation) error
	Delete(ctx context.Context, userID, id string) error
	// UpdatePayment, ödeme alanlarını günceller (partial update).
	UpdatePayment(ctx context.Context, userID, id string, req *models.PaymentUpdateRequest) (*models.Quotation, error)
	// ListByPaymentStatus, verilen ödeme durumundaki teklifleri müşteri
	// bilgisiyle (kalemler hariç) döner.
	ListByPaymentStatus(ctx context.Context, userID, status string) ([]models.Quotation, error)
	Stats(ctx context.Context, userID string) (*QuotationStats, error)
}
