package repository

import (
	"context"

	"github.com/teklifgo/server/models"
)

// ProductRepository, ürün veritabanı işlemleri için interface.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, userID, id string) (*models.Product, error)
	ListByUser(ctx context.Context, userID string) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, userID, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
	// ListCategories, kullanıcının ürünlerindeki benzersiz kategori adlarını döner.
	ListCategories(ctx context.Context, userID string) ([]string, error)
}

// CategoryRepository, kullanıcı tanımlı katalog kategorileri için interface.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.CatalogCategory) error
	ListNames(ctx context.Context, userID string) ([]string, error)
}
