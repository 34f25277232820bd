package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teklifgo/server/models"
)

func strPtr(s string) *string { return &s }

func TestBuildQuotation(t *testing.T) {
	company := "Örnek İnşaat Ltd. Şti."
	user := &models.User{
		Email:    "firma@example.com",
		FullName: "Ahmet Yılmaz",
		Company:  &company,
		Phone:    strPtr("+90 555 111 2233"),
	}

	quotation := &models.Quotation{
		QuotationNumber: "Q-20260825120000-0001",
		Subtotal:        1234.56,
		TaxRate:         20,
		TaxAmount:       246.91,
		Total:           1481.47,
		Notes:           strPtr("Teklif 30 gün geçerlidir."),
		CreatedAt:       time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		Customer: &models.Customer{
			Name:    "Müşteri A.Ş.",
			Address: strPtr("İstanbul"),
		},
		Items: []models.QuotationItem{
			{ProductName: "Şantiye Güvenlik Ağı", Quantity: 10, Unit: "metre", UnitPrice: 123.456, Total: 1234.56},
		},
	}

	content, err := BuildQuotation(user, quotation)
	require.NoError(t, err)
	require.NotEmpty(t, content)
	require.Equal(t, "%PDF-", string(content[:5]))
}

func TestBuildQuotation_RequiresCustomer(t *testing.T) {
	user := &models.User{Email: "firma@example.com", FullName: "Ahmet"}
	quotation := &models.Quotation{QuotationNumber: "Q-1"}

	_, err := BuildQuotation(user, quotation)
	require.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	require.Equal(t, "0,00 TL", formatMoney(0))
	require.Equal(t, "12,50 TL", formatMoney(12.5))
	require.Equal(t, "1.234,56 TL", formatMoney(1234.56))
	require.Equal(t, "1.234.567,89 TL", formatMoney(1234567.89))
	require.Equal(t, "-1.000,00 TL", formatMoney(-1000))
}
