package models

import (
	"fmt"
	"strings"
	"time"
)

// Customer, bir kullanıcının müşterisini temsil eder.
// Tüm müşteri kayıtları user_id ile sahibine bağlıdır — bir kullanıcı
// başka kullanıcının müşterisini göremez (tenant isolation).
type Customer struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"` // Sahiplik bilgisi response'ta gereksiz
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Address   *string   `json:"address"`
	TaxNumber *string   `json:"tax_number"`
	TaxOffice *string   `json:"tax_office"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCustomerRequest, müşteri oluşturma/güncelleme isteği.
// Orijinal API create ve update için aynı body'yi kullanır.
type CreateCustomerRequest struct {
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Address   *string `json:"address"`
	TaxNumber *string `json:"tax_number"`
	TaxOffice *string `json:"tax_office"`
	Notes     *string `json:"notes"`
}

// Validate, isteğin geçerli olup olmadığını kontrol eder.
func (r *CreateCustomerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Email != nil && *r.Email != "" && !EmailRegex().MatchString(*r.Email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
