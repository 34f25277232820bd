package models

import (
	"fmt"
	"strings"
	"time"
)

// QuotationStatus değerleri.
const (
	QuotationStatusPending  = "pending"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
)

// PaymentStatus değerleri.
const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
)

// Quotation, bir fiyat teklifini temsil eder.
//
// Para alanlarındaki invariant (service katmanı her yazmada yeniden hesaplar):
//
//	Subtotal  = Σ Items[i].Total
//	TaxAmount = (Subtotal - DiscountAmount) * TaxRate / 100
//	Total     = Subtotal - DiscountAmount + TaxAmount
//
// Client'tan gelen subtotal/tax/total değerlerine GÜVENİLMEZ.
type Quotation struct {
	ID              string          `json:"id"`
	UserID          string          `json:"-"`
	CustomerID      string          `json:"customer_id"`
	QuotationNumber string          `json:"quotation_number"`
	Subtotal        float64         `json:"subtotal"`
	DiscountAmount  float64         `json:"discount_amount"`
	TaxRate         int             `json:"tax_rate"`
	TaxAmount       float64         `json:"tax_amount"`
	Total           float64         `json:"total"`
	Notes           *string         `json:"notes"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentDate     *time.Time      `json:"payment_date"`
	PaymentAmount   *float64        `json:"payment_amount"`
	PaymentNotes    *string         `json:"payment_notes"`
	Items           []QuotationItem `json:"items"`
	Customer        *Customer       `json:"customer,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// QuotationItem, teklifin bir satırıdır.
// Ürün adı/fiyatı teklife kopyalanır — ürün sonradan silinse veya fiyatı
// değişse bile teklif o günkü haliyle kalır.
type QuotationItem struct {
	ID             string  `json:"id,omitempty"`
	QuotationID    string  `json:"-"`
	ProductName    string  `json:"product_name"`
	Specifications *string `json:"specifications"`
	Quantity       int     `json:"quantity"`
	Unit           string  `json:"unit"`
	UnitPrice      float64 `json:"unit_price"`
	Total          float64 `json:"total"`
}

// CreateQuotationRequest, teklif oluşturma/güncelleme isteği.
// Create ve update aynı body'yi kullanır; update'te item listesi
// komple değiştirilir (replace semantics).
type CreateQuotationRequest struct {
	CustomerID     string          `json:"customer_id"`
	Items          []QuotationItem `json:"items"`
	DiscountAmount float64         `json:"discount_amount"`
	TaxRate        int             `json:"tax_rate"`
	Notes          *string         `json:"notes"`
}

// Validate, isteğin geçerli olup olmadığını kontrol eder.
func (r *CreateQuotationRequest) Validate() error {
	if strings.TrimSpace(r.CustomerID) == "" {
		return fmt.Errorf("customer_id is required")
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}
	if r.DiscountAmount < 0 {
		return fmt.Errorf("discount_amount cannot be negative")
	}
	if r.TaxRate < 0 || r.TaxRate > 100 {
		return fmt.Errorf("tax_rate must be between 0 and 100")
	}

	for i := range r.Items {
		item := &r.Items[i]
		item.ProductName = strings.TrimSpace(item.ProductName)
		if item.ProductName == "" {
			return fmt.Errorf("item %d: product_name is required", i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i+1)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("item %d: unit_price cannot be negative", i+1)
		}
		if item.Unit = strings.TrimSpace(item.Unit); item.Unit == "" {
			item.Unit = DefaultUnit
		}
	}

	return nil
}

// PaymentUpdateRequest, teklif ödeme durumu güncellemesi.
// payment_status zorunlu, kalan field'lar opsiyoneldir (partial update).
type PaymentUpdateRequest struct {
	PaymentStatus string     `json:"payment_status"`
	PaymentDate   *time.Time `json:"payment_date"`
	PaymentAmount *float64   `json:"payment_amount"`
	PaymentNotes  *string    `json:"payment_notes"`
}

// Validate, isteğin geçerli olup olmadığını kontrol eder.
func (r *PaymentUpdateRequest) Validate() error {
	switch r.PaymentStatus {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusPartial:
	default:
		return fmt.Errorf("payment_status must be one of: unpaid, paid, partial")
	}
	if r.PaymentAmount != nil && *r.PaymentAmount < 0 {
		return fmt.Errorf("payment_amount cannot be negative")
	}
	return nil
}
