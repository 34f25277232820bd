package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/repository"
)

// ProductService, ürün ve katalog kategorisi iş kuralları.
type ProductService interface {
	Create(ctx context.Context, userID string, req *models.CreateProductRequest) (*models.Product, error)
	Get(ctx context.Context, userID, id string) (*models.Product, error)
	List(ctx context.Context, userID string) ([]models.Product, error)
	Update(ctx context.Context, userID, id string, req *models.CreateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, userID, id string) error

	// ListCategories, ürünlerde kullanılan kategoriler ile kullanıcının
	// önceden tanımladığı katalog kategorilerinin birleşimini döner.
	ListCategories(ctx context.Context, userID string) ([]string, error)
	CreateCategory(ctx context.Context, userID, name string) (*models.CatalogCategory, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	statsCache   StatsInvalidator
}

// NewProductService, constructor. statsCache nil olabilir (testlerde).
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	statsCache StatsInvalidator,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		statsCache:   statsCache,
	}
}

func (s *productService) Create(ctx context.Context, userID string, req *models.CreateProductRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	product := &models.Product{
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Price:          req.Price,
		Stock:          req.Stock,
		Unit:           req.Unit,
		SKU:            req.SKU,
		Specifications: req.Specifications,
		ImageBase64:    req.ImageBase64,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if s.statsCache != nil {
		s.statsCache.Invalidate(userID)
	}

	return product, nil
}

func (s *productService) Get(ctx context.Context, userID, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, userID, id)
}

func (s *productService) List(ctx context.Context, userID string) ([]models.Product, error) {
	return s.productRepo.ListByUser(ctx, userID)
}

func (s *productService) Update(ctx context.Context, userID, id string, req *models.CreateProductRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	existing, err := s.productRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Category = req.Category
	existing.Price = req.Price
	existing.Stock = req.Stock
	existing.Unit = req.Unit
	existing.SKU = req.SKU
	existing.Specifications = req.Specifications
	existing.ImageBase64 = req.ImageBase64

	if err := s.productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *productService) Delete(ctx context.Context, userID, id string) error {
	if err := s.productRepo.Delete(ctx, userID, id); err != nil {
		return err
	}

	if s.statsCache != nil {
		s.statsCache.Invalidate(userID)
	}

	return nil
}

// ListCategories, iki kaynağı birleştirir: ürünlerdeki distinct kategoriler
// ve catalog_categories tablosundaki kullanıcı tanımlı adlar. Duplikeler
// elenir, sonuç alfabetik sıralıdır.
func (s *productService) ListCategories(ctx context.Context, userID string) ([]string, error) {
	fromProducts, err := s.productRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	fromCatalog, err := s.categoryRepo.ListNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(fromProducts)+len(fromCatalog))
	merged := []string{}
	for _, name := range append(fromProducts, fromCatalog...) {
		if !seen[name] {
			seen[name] = true
			merged = append(merged, name)
		}
	}
	sort.Strings(merged)

	return merged, nil
}

func (s *productService) CreateCategory(ctx context.Context, userID, name string) (*models.CatalogCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", pkg.ErrBadRequest)
	}

	category := &models.CatalogCategory{
		UserID: userID,
		Name:   name,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}
