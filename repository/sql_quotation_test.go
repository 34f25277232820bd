package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/repository"
	"github.com/teklifgo/server/repository/testutil"
)

func seedQuotation(t *testing.T, repo repository.QuotationRepository, userID, customerID, number string, total float64, paymentStatus string) *models.Quotation {
	t.Helper()

	q := &models.Quotation{
		UserID:          userID,
		CustomerID:      customerID,
		QuotationNumber: number,
		Subtotal:        total,
		TaxRate:         0,
		Total:           total,
		PaymentStatus:   paymentStatus,
		Items: []models.QuotationItem{
			{ProductName: "Ürün", Quantity: 1, Unit: "adet", UnitPrice: total, Total: total},
		},
	}
	require.NoError(t, repo.Create(context.Background(), q))
	return q
}

func TestQuotationRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLQuotationRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")

	q := &models.Quotation{
		UserID:          userID,
		CustomerID:      customerID,
		QuotationNumber: "Q-20260825120000-0001",
		Subtotal:        300,
		DiscountAmount:  50,
		TaxRate:         20,
		TaxAmount:       50,
		Total:           300,
		Items: []models.QuotationItem{
			{ProductName: "Kablo", Quantity: 10, Unit: "metre", UnitPrice: 10, Total: 100},
			{ProductName: "Montaj", Quantity: 2, Unit: "saat", UnitPrice: 100, Total: 200},
		},
	}
	require.NoError(t, repo.Create(ctx, q))
	require.NotEmpty(t, q.ID)
	require.Equal(t, models.QuotationStatusPending, q.Status)
	require.Equal(t, models.PaymentStatusUnpaid, q.PaymentStatus)

	fetched, err := repo.GetByID(ctx, userID, q.ID)
	require.NoError(t, err)
	require.Equal(t, "Q-20260825120000-0001", fetched.QuotationNumber)
	require.Len(t, fetched.Items, 2)
	require.NotNil(t, fetched.Customer)
	require.Equal(t, "Müşteri", fetched.Customer.Name)
	require.Equal(t, 300.0, fetched.Total)
}

func TestQuotationRepo_Update_ReplacesItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLQuotationRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")

	q := seedQuotation(t, repo, userID, customerID, "Q-1", 100, models.PaymentStatusUnpaid)

	q.Items = []models.QuotationItem{
		{ProductName: "Yeni Kalem A", Quantity: 1, Unit: "adet", UnitPrice: 40, Total: 40},
		{ProductName: "Yeni Kalem B", Quantity: 1, Unit: "adet", UnitPrice: 60, Total: 60},
		{ProductName: "Yeni Kalem C", Quantity: 1, Unit: "adet", UnitPrice: 80, Total: 80},
	}
	q.Subtotal = 180
	q.Total = 180
	require.NoError(t, repo.Update(ctx, q))

	fetched, err := repo.GetByID(ctx, userID, q.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 3)
	require.Equal(t, 180.0, fetched.Total)

	names := []string{fetched.Items[0].ProductName, fetched.Items[1].ProductName, fetched.Items[2].ProductName}
	require.Contains(t, names, "Yeni Kalem A")
	require.NotContains(t, names, "Ürün")
}

func TestQuotationRepo_Delete_CascadesItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLQuotationRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")

	q := seedQuotation(t, repo, userID, customerID, "Q-1", 100, models.PaymentStatusUnpaid)
	require.NoError(t, repo.Delete(ctx, userID, q.ID))

	_, err := repo.GetByID(ctx, userID, q.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	// Kalemler CASCADE ile silinmiş olmalı
	var count int
	err = db.Conn.QueryRow(
		`SELECT COUNT(*) FROM quotation_items WHERE quotation_id = $1`, q.ID).Scan(&count)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestQuotationRepo_UpdatePayment(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLQuotationRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")

	q := seedQuotation(t, repo, userID, customerID, "Q-1", 500, models.PaymentStatusUnpaid)

	paymentDate := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	amount := 500.0
	updated, err := repo.UpdatePayment(ctx, userID, q.ID, &models.PaymentUpdateRequest{
		PaymentStatus: models.PaymentStatusPaid,
		PaymentDate:   &paymentDate,
		PaymentAmount: &amount,
	})
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)
	require.Equal(t, 500.0, *updated.PaymentAmount)
	require.NotNil(t, updated.PaymentDate)
}

func TestQuotationRepo_ListByPaymentStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLQuotationRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")

	seedQuotation(t, repo, userID, customerID, "Q-1", 100, models.PaymentStatusUnpaid)
	seedQuotation(t, repo, userID, customerID, "Q-2", 200, models.PaymentStatusPaid)
	seedQuotation(t, repo, userID, customerID, "Q-3", 300, models.PaymentStatusPaid)

	paid, err := repo.ListByPaymentStatus(ctx, userID, models.PaymentStatusPaid)
	require.NoError(t, err)
	require.Len(t, paid, 2)

	unpaid, err := repo.ListByPaymentStatus(ctx, userID, models.PaymentStatusUnpaid)
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	require.Equal(t, "Q-1", unpaid[0].QuotationNumber)
}

func TestQuotationRepo_Stats(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLQuotationRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")

	seedQuotation(t, repo, userID, customerID, "Q-1", 100, models.PaymentStatusUnpaid)
	seedQuotation(t, repo, userID, customerID, "Q-2", 200, models.PaymentStatusPaid)
	seedQuotation(t, repo, userID, customerID, "Q-3", 300, models.PaymentStatusUnpaid)

	// Başka kullanıcının verisi istatistiklere karışmaz
	other := testutil.SeedUser(t, db, "other@example.com")
	otherCustomer := testutil.SeedCustomer(t, db, other, "Diğer")
	seedQuotation(t, repo, other, otherCustomer, "Q-X", 999, models.PaymentStatusPaid)

	stats, err := repo.Stats(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalQuotations)
	require.Equal(t, 200.0, stats.TotalRevenue)
	require.Equal(t, 400.0, stats.PendingPayments)
	require.Equal(t, 600.0, stats.TotalExpected)
	require.Equal(t, 200.0, stats.TotalReceived)
	require.Equal(t, 2, stats.OverdueCount)
}

func TestQuotationRepo_ListByUser_IncludesItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLQuotationRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")

	seedQuotation(t, repo, userID, customerID, "Q-1", 100, models.PaymentStatusUnpaid)
	seedQuotation(t, repo, userID, customerID, "Q-2", 200, models.PaymentStatusUnpaid)

	quotations, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, quotations, 2)
	for _, q := range quotations {
		require.Len(t, q.Items, 1)
		require.NotNil(t, q.Customer)
	}
}
