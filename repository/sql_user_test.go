package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/repository"
	"github.com/teklifgo/server/repository/testutil"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLUserRepo(db.Conn)
	ctx := context.Background()

	user := &models.User{
		Email:              "test@example.com",
		PasswordHash:       "hash",
		FullName:           "Test Kullanıcı",
		SubscriptionPlan:   models.PlanFree,
		SubscriptionStatus: models.SubscriptionActive,
		DefaultTaxRate:     20,
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "test@example.com", byID.Email)
	require.Equal(t, 20, byID.DefaultTaxRate)

	byEmail, err := repo.GetByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLUserRepo(db.Conn)
	ctx := context.Background()

	testutil.SeedUser(t, db, "dup@example.com")

	err := repo.Create(ctx, &models.User{
		Email:              "dup@example.com",
		PasswordHash:       "hash",
		FullName:           "Other",
		SubscriptionPlan:   models.PlanFree,
		SubscriptionStatus: models.SubscriptionActive,
	})
	require.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestUserRepo_UpdateSettings_Partial(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLUserRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "settings@example.com")

	company := "Yeni Firma A.Ş."
	taxRate := 10
	design := json.RawMessage(`{"theme":"dark"}`)

	updated, err := repo.UpdateSettings(ctx, userID, &models.UpdateSettingsRequest{
		Company:        &company,
		DefaultTaxRate: &taxRate,
		DesignSettings: design,
	})
	require.NoError(t, err)
	require.Equal(t, "Yeni Firma A.Ş.", *updated.Company)
	require.Equal(t, 10, updated.DefaultTaxRate)
	require.JSONEq(t, `{"theme":"dark"}`, string(updated.DesignSettings))

	// Dokunulmayan alanlar korunur
	require.Equal(t, "Test User", updated.FullName)
}
