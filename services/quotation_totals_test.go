package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teklifgo/server/models"
)

func TestComputeTotals(t *testing.T) {
	q := &models.Quotation{
		DiscountAmount: 50,
		TaxRate:        20,
		Items: []models.QuotationItem{
			{Quantity: 10, UnitPrice: 10},  // 100
			{Quantity: 2, UnitPrice: 100},  // 200
			{Quantity: 3, UnitPrice: 33.4}, // 100.20
		},
	}
	computeTotals(q)

	require.Equal(t, 100.0, q.Items[0].Total)
	require.Equal(t, 200.0, q.Items[1].Total)
	require.Equal(t, 100.2, q.Items[2].Total)

	require.Equal(t, 400.2, q.Subtotal)
	// (400.20 - 50) * 0.20 = 70.04
	require.Equal(t, 70.04, q.TaxAmount)
	// 400.20 - 50 + 70.04 = 420.24
	require.Equal(t, 420.24, q.Total)
}

func TestComputeTotals_ZeroTax(t *testing.T) {
	q := &models.Quotation{
		TaxRate: 0,
		Items: []models.QuotationItem{
			{Quantity: 1, UnitPrice: 99.99},
		},
	}
	computeTotals(q)

	require.Equal(t, 99.99, q.Subtotal)
	require.Equal(t, 0.0, q.TaxAmount)
	require.Equal(t, 99.99, q.Total)
}

func TestComputeTotals_DiscountExceedsSubtotal(t *testing.T) {
	// İndirim ara toplamı aşarsa KDV matrahı negatife düşmez
	q := &models.Quotation{
		DiscountAmount: 200,
		TaxRate:        20,
		Items: []models.QuotationItem{
			{Quantity: 1, UnitPrice: 100},
		},
	}
	computeTotals(q)

	require.Equal(t, 100.0, q.Subtotal)
	require.Equal(t, 0.0, q.TaxAmount)
	require.Equal(t, -100.0, q.Total)
}

func TestComputeTotals_Rounding(t *testing.T) {
	// 3 × 0.335 = 1.005 → kuruşa yuvarlanır
	q := &models.Quotation{
		TaxRate: 0,
		Items: []models.QuotationItem{
			{Quantity: 3, UnitPrice: 0.335},
		},
	}
	computeTotals(q)

	require.Equal(t, 1.01, q.Items[0].Total)
	require.Equal(t, 1.01, q.Subtotal)
}

func TestRound2(t *testing.T) {
	require.Equal(t, 1.23, round2(1.2349))
	require.Equal(t, 1.24, round2(1.235))
	require.Equal(t, 0.0, round2(0))
	require.Equal(t, -1.24, round2(-1.235))
}

func TestGenerateQuotationNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^Q-\d{14}-\d{4}$`)

	for i := 0; i < 10; i++ {
		number := generateQuotationNumber()
		require.Regexp(t, pattern, number)
	}
}
