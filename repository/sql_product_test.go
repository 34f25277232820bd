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

func TestProductRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLProductRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")

	product := &models.Product{
		UserID:   userID,
		Name:     "Bakır Kablo",
		Category: strPtr("Elektrik"),
		Price:    45.90,
		Stock:    120,
	}
	require.NoError(t, repo.Create(ctx, product))
	require.NotEmpty(t, product.ID)
	require.Equal(t, models.DefaultUnit, product.Unit)

	fetched, err := repo.GetByID(ctx, userID, product.ID)
	require.NoError(t, err)
	require.Equal(t, "Bakır Kablo", fetched.Name)
	require.Equal(t, 45.90, fetched.Price)
	require.Equal(t, "Elektrik", *fetched.Category)
}

func TestProductRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLProductRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")

	product := &models.Product{UserID: userID, Name: "Eski Ad", Price: 10}
	require.NoError(t, repo.Create(ctx, product))

	product.Name = "Yeni Ad"
	product.Price = 15
	require.NoError(t, repo.Update(ctx, product))

	fetched, err := repo.GetByID(ctx, userID, product.ID)
	require.NoError(t, err)
	require.Equal(t, "Yeni Ad", fetched.Name)
	require.Equal(t, 15.0, fetched.Price)

	require.NoError(t, repo.Delete(ctx, userID, product.ID))
	_, err = repo.GetByID(ctx, userID, product.ID)
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestProductRepo_ListCategories_DistinctNonEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLProductRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")

	require.NoError(t, repo.Create(ctx, &models.Product{UserID: userID, Name: "P1", Category: strPtr("Elektrik")}))
	require.NoError(t, repo.Create(ctx, &models.Product{UserID: userID, Name: "P2", Category: strPtr("Elektrik")}))
	require.NoError(t, repo.Create(ctx, &models.Product{UserID: userID, Name: "P3", Category: strPtr("Hırdavat")}))
	require.NoError(t, repo.Create(ctx, &models.Product{UserID: userID, Name: "P4"})) // kategorisiz

	categories, err := repo.ListCategories(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, []string{"Elektrik", "Hırdavat"}, categories)
}

func TestCategoryRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLCategoryRepo(db.Conn)
	ctx := context.Background()

	userID := testutil.SeedUser(t, db, "owner@example.com")

	require.NoError(t, repo.Create(ctx, &models.CatalogCategory{UserID: userID, Name: "Tesisat"}))
	require.NoError(t, repo.Create(ctx, &models.CatalogCategory{UserID: userID, Name: "Boya"}))

	// Aynı isim ikinci kez eklenemez
	err := repo.Create(ctx, &models.CatalogCategory{UserID: userID, Name: "Boya"})
	require.ErrorIs(t, err, pkg.ErrAlreadyExists)

	names, err := repo.ListNames(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, []string{"Boya", "Tesisat"}, names)

	// Katalog kullanıcıya özeldir
	other := testutil.SeedUser(t, db, "other@example.com")
	names, err = repo.ListNames(ctx, other)
	require.NoError(t, err)
	require.Empty(t, names)
}
