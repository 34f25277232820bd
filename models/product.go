package models

import (
	"fmt"
	"strings"
	"time"
)

// DefaultUnit, ürün birimi belirtilmediğinde kullanılır ("adet" = piece).
const DefaultUnit = "adet"

// Product, katalogdaki bir ürün/hizmeti temsil eder.
type Product struct {
	ID             string    `json:"id"`
	UserID         string    `json:"-"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	Category       *string   `json:"category"`
	Price          float64   `json:"price"`
	Stock          int       `json:"stock"`
	Unit           string    `json:"unit"`
	SKU            *string   `json:"sku"`
	Specifications *string   `json:"specifications"`
	ImageBase64    *string   `json:"image_base64"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateProductRequest, ürün oluşturma/güncelleme isteği.
type CreateProductRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	Category       *string `json:"category"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	Unit           string  `json:"unit"`
	SKU            *string `json:"sku"`
	Specifications *string `json:"specifications"`
	ImageBase64    *string `json:"image_base64"`
}

// Validate, isteğin geçerli olup olmadığını kontrol eder.
// Unit boş gelirse varsayılan "adet" atanır.
func (r *CreateProductRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if r.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	if r.Unit = strings.TrimSpace(r.Unit); r.Unit == "" {
		r.Unit = DefaultUnit
	}
	return nil
}

// CatalogCategory, kullanıcı tanımlı katalog kategorisi.
type CatalogCategory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
