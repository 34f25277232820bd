package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teklifgo/server/database"
	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
)

// sqlProductRepo, ProductRepository'nin database/sql implementasyonu.
type sqlProductRepo struct {
	db database.TxQuerier
}

// NewSQLProductRepo, constructor.
func NewSQLProductRepo(db database.TxQuerier) ProductRepository {
	return &sqlProductRepo{db: db}
}

const productColumns = `id, user_id, name, description, category, price,
	stock, unit, sku, specifications, image_base64, created_at`

func (r *sqlProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = uuid.NewString()
	product.CreatedAt = time.Now().UTC()
	if product.Unit == "" {
		product.Unit = models.DefaultUnit
	}

	query := `
		INSERT INTO products (id, user_id, name, description, category,
			price, stock, unit, sku, specifications, image_base64, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.UserID, product.Name, product.Description,
		product.Category, product.Price, product.Stock, product.Unit,
		product.SKU, product.Specifications, product.ImageBase64,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *sqlProductRepo) GetByID(ctx context.Context, userID, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND user_id = $2`

	product := &models.Product{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&product.ID, &product.UserID, &product.Name, &product.Description,
		&product.Category, &product.Price, &product.Stock, &product.Unit,
		&product.SKU, &product.Specifications, &product.ImageBase64,
		&product.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (r *sqlProductRepo) ListByUser(ctx context.Context, userID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Description, &p.Category,
			&p.Price, &p.Stock, &p.Unit, &p.SKU, &p.Specifications,
			&p.ImageBase64, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (r *sqlProductRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, category = $3, price = $4,
			stock = $5, unit = $6, sku = $7, specifications = $8,
			image_base64 = $9
		WHERE id = $10 AND user_id = $11`

	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.Category, product.Price,
		product.Stock, product.Unit, product.SKU, product.Specifications,
		product.ImageBase64, product.ID, product.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if rowsAffected(res) == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlProductRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if rowsAffected(res) == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlProductRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *sqlProductRepo) ListCategories(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM products
		WHERE user_id = $1 AND category IS NOT NULL AND category != ''
		ORDER BY category`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// sqlCategoryRepo, CategoryRepository'nin database/sql implementasyonu.
// catalog_categories, ürünlerden bağımsız olarak önceden tanımlanmış
// kategori adlarını tutar.
type sqlCategoryRepo struct {
	db database.TxQuerier
}

// NewSQLCategoryRepo, constructor.
func NewSQLCategoryRepo(db database.TxQuerier) CategoryRepository {
	return &sqlCategoryRepo{db: db}
}

func (r *sqlCategoryRepo) Create(ctx context.Context, category *models.CatalogCategory) error {
	category.ID = uuid.NewString()
	category.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO catalog_categories (id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query,
		category.ID, category.UserID, category.Name, category.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category already exists", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

func (r *sqlCategoryRepo) ListNames(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM catalog_categories WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog categories: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan catalog category: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog categories: %w", err)
	}

	return names, nil
}
