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

func seedReminder(t *testing.T, repo repository.ReminderRepository, userID, quotationID string, due time.Time) *models.Reminder {
	t.Helper()

	reminder := &models.Reminder{
		UserID:       userID,
		QuotationID:  quotationID,
		ReminderDate: due,
		Message:      "Ödeme hatırlatması",
	}
	require.NoError(t, repo.Create(context.Background(), reminder))
	return reminder
}

func TestReminderRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	quotationRepo := repository.NewSQLQuotationRepo(db.Conn)
	repo := repository.NewSQLReminderRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")
	q := seedQuotation(t, quotationRepo, userID, customerID, "Q-1", 100, models.PaymentStatusUnpaid)

	due := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	reminder := seedReminder(t, repo, userID, q.ID, due)
	require.NotEmpty(t, reminder.ID)

	fetched, err := repo.GetByID(ctx, userID, reminder.ID)
	require.NoError(t, err)
	require.Equal(t, "Ödeme hatırlatması", fetched.Message)
	require.False(t, fetched.Sent)

	// Join'lenen alanlar: teklif numarası ve müşteri
	require.NotNil(t, fetched.QuotationNumber)
	require.Equal(t, "Q-1", *fetched.QuotationNumber)
	require.NotNil(t, fetched.Customer)
	require.Equal(t, "Müşteri", fetched.Customer.Name)
}

func TestReminderRepo_ListByUser_OrderedByDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	quotationRepo := repository.NewSQLQuotationRepo(db.Conn)
	repo := repository.NewSQLReminderRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")
	q := seedQuotation(t, quotationRepo, userID, customerID, "Q-1", 100, models.PaymentStatusUnpaid)

	later := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	seedReminder(t, repo, userID, q.ID, later)
	seedReminder(t, repo, userID, q.ID, earlier)

	reminders, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	require.True(t, reminders[0].ReminderDate.Before(reminders[1].ReminderDate))
}

func TestReminderRepo_MarkSentAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	quotationRepo := repository.NewSQLQuotationRepo(db.Conn)
	repo := repository.NewSQLReminderRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Müşteri")
	q := seedQuotation(t, quotationRepo, userID, customerID, "Q-1", 100, models.PaymentStatusUnpaid)

	reminder := seedReminder(t, repo, userID, q.ID, time.Now().UTC())

	require.NoError(t, repo.MarkSent(ctx, userID, reminder.ID))
	fetched, err := repo.GetByID(ctx, userID, reminder.ID)
	require.NoError(t, err)
	require.True(t, fetched.Sent)

	// Başka kullanıcı silemez
	other := testutil.SeedUser(t, db, "other@example.com")
	require.ErrorIs(t, repo.Delete(ctx, other, reminder.ID), pkg.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, userID, reminder.ID))
	_, err = repo.GetByID(ctx, userID, reminder.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestReminderRepo_ListDue(t *testing.T) {
	db := testutil.NewTestDB(t)
	quotationRepo := repository.NewSQLQuotationRepo(db.Conn)
	repo := repository.NewSQLReminderRepo(db.Conn)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice@example.com")
	bob := testutil.SeedUser(t, db, "bob@example.com")
	aliceCustomer := testutil.SeedCustomer(t, db, alice, "Alice Müşteri")
	bobCustomer := testutil.SeedCustomer(t, db, bob, "Bob Müşteri")
	aliceQ := seedQuotation(t, quotationRepo, alice, aliceCustomer, "Q-A", 100, models.PaymentStatusUnpaid)
	bobQ := seedQuotation(t, quotationRepo, bob, bobCustomer, "Q-B", 200, models.PaymentStatusUnpaid)

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	// Vadesi geçmiş: scheduler bunları alır — kullanıcıdan bağımsız
	duePast := seedReminder(t, repo, alice, aliceQ.ID, now.Add(-time.Hour))
	dueBob := seedReminder(t, repo, bob, bobQ.ID, now.Add(-2*time.Hour))

	// Vadesi gelmemiş
	seedReminder(t, repo, alice, aliceQ.ID, now.Add(time.Hour))

	// Vadesi geçmiş ama zaten gönderilmiş
	alreadySent := seedReminder(t, repo, alice, aliceQ.ID, now.Add(-3*time.Hour))
	require.NoError(t, repo.MarkSent(ctx, alice, alreadySent.ID))

	due, err := repo.ListDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)

	// reminder_date ASC: en eski önce
	require.Equal(t, dueBob.ID, due[0].ID)
	require.Equal(t, duePast.ID, due[1].ID)
}
