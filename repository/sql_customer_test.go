package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/repository"
	"github.com/teklifgo/server/repository/testutil"
)

func strPtr(s string) *string { return &s }

func TestCustomerRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLCustomerRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")

	customer := &models.Customer{
		UserID:  userID,
		Name:    "Acme İnşaat",
		Email:   strPtr("info@acme.example"),
		Company: strPtr("Acme Ltd. Şti."),
	}
	require.NoError(t, repo.Create(ctx, customer))
	require.NotEmpty(t, customer.ID)
	require.False(t, customer.CreatedAt.IsZero())

	fetched, err := repo.GetByID(ctx, userID, customer.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme İnşaat", fetched.Name)
	require.Equal(t, "info@acme.example", *fetched.Email)
	require.Nil(t, fetched.Phone)
}

func TestCustomerRepo_TenantIsolation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLCustomerRepo(db.Conn)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "alice@example.com")
	bob := testutil.SeedUser(t, db, "bob@example.com")

	customerID := testutil.SeedCustomer(t, db, alice, "Alice's Customer")

	// Bob, Alice'in müşterisini göremez — varlığı bile sızmaz
	_, err := repo.GetByID(ctx, bob, customerID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	// Bob silemez de
	err = repo.Delete(ctx, bob, customerID)
	require.ErrorIs(t, err, pkg.ErrNotFound)

	// Liste de boş
	customers, err := repo.ListByUser(ctx, bob)
	require.NoError(t, err)
	require.Empty(t, customers)

	// Alice kendi müşterisini görür
	customers, err = repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, customers, 1)
}

func TestCustomerRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLCustomerRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	customerID := testutil.SeedCustomer(t, db, userID, "Old Name")

	customer, err := repo.GetByID(ctx, userID, customerID)
	require.NoError(t, err)

	customer.Name = "New Name"
	customer.Phone = strPtr("+90 555 000 0000")
	require.NoError(t, repo.Update(ctx, customer))

	fetched, err := repo.GetByID(ctx, userID, customerID)
	require.NoError(t, err)
	require.Equal(t, "New Name", fetched.Name)
	require.Equal(t, "+90 555 000 0000", *fetched.Phone)

	require.NoError(t, repo.Delete(ctx, userID, customerID))
	_, err = repo.GetByID(ctx, userID, customerID)
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestCustomerRepo_CountByUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLCustomerRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")
	testutil.SeedCustomer(t, db, userID, "C1")
	testutil.SeedCustomer(t, db, userID, "C2")

	count, err := repo.CountByUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
