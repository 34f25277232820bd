// Package models, uygulamanın domain modellerini tanımlar.
//
// Model, veritabanındaki bir tablonun Go karşılığıdır; aynı zamanda API'den
// gelen/giden verilerin şeklini de belirler. Request struct'ları Validate()
// metodu taşır — validation kuralları handler'da değil modelde yaşar,
// service katmanı Validate()'i çağırıp hatayı ErrBadRequest ile sarar.
package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Abonelik planları ve durumları — typed constant'lar.
const (
	PlanFree = "free"
	PlanPro  = "pro"

	SubscriptionActive   = "active"
	SubscriptionExpired  = "expired"
	SubscriptionCanceled = "canceled"
)

// DefaultTaxRate, yeni kullanıcıların varsayılan KDV oranı (%).
const DefaultTaxRate = 20

// User, bir kullanıcıyı (hesabı) temsil eder.
// Firma bilgileri PDF başlığında ve ayarlar ekranında kullanılır.
type User struct {
	ID                  string          `json:"id"`
	Email               string          `json:"email"`
	PasswordHash        string          `json:"-"` // API response'a ASLA dahil edilmez
	FullName            string          `json:"full_name"`
	Company             *string         `json:"company"`
	Phone               *string         `json:"phone"`
	SubscriptionPlan    string          `json:"subscription_plan"`
	SubscriptionStatus  string          `json:"subscription_status"`
	SubscriptionEndDate *time.Time      `json:"subscription_end_date,omitempty"`
	CompanyLogo         *string         `json:"company_logo"` // base64 data URL
	CompanyAddress      *string         `json:"company_address"`
	CompanyTaxNumber    *string         `json:"company_tax_number"`
	CompanyTaxOffice    *string         `json:"company_tax_office"`
	DefaultTaxRate      int             `json:"default_tax_rate"`
	DesignSettings      json.RawMessage `json:"design_settings,omitempty"` // PDF tema ayarları, opak JSON
	CreatedAt           time.Time       `json:"created_at"`
}

// RegisterRequest, kayıt olurken frontend'den gelen veri.
// Password plaintext gelir — hash'leme service katmanında yapılır.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Validate, RegisterRequest'in geçerli olup olmadığını kontrol eder.
func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if !EmailRegex().MatchString(r.Email) {
		return fmt.Errorf("invalid email format")
	}

	if utf8.RuneCountInString(r.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	r.FullName = strings.TrimSpace(r.FullName)
	if r.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if utf8.RuneCountInString(r.FullName) > 128 {
		return fmt.Errorf("full_name must be at most 128 characters")
	}

	return nil
}

// LoginRequest, giriş yaparken frontend'den gelen veri.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// UpdateSettingsRequest, profil/firma ayarları güncellemesi için.
// Tüm field'lar pointer — nil olan field "değiştirme" demektir (partial update).
type UpdateSettingsRequest struct {
	FullName         *string         `json:"full_name"`
	Company          *string         `json:"company"`
	Phone            *string         `json:"phone"`
	CompanyLogo      *string         `json:"company_logo"`
	CompanyAddress   *string         `json:"company_address"`
	CompanyTaxNumber *string         `json:"company_tax_number"`
	CompanyTaxOffice *string         `json:"company_tax_office"`
	DefaultTaxRate   *int            `json:"default_tax_rate"`
	DesignSettings   json.RawMessage `json:"design_settings"`
}

// HasUpdates, en az bir field set edilmiş mi kontrol eder.
// Hiçbir field yoksa 400 dönülür — orijinal API ile aynı davranış.
func (r *UpdateSettingsRequest) HasUpdates() bool {
	return r.FullName != nil ||
		r.Company != nil ||
		r.Phone != nil ||
		r.CompanyLogo != nil ||
		r.CompanyAddress != nil ||
		r.CompanyTaxNumber != nil ||
		r.CompanyTaxOffice != nil ||
		r.DefaultTaxRate != nil ||
		r.DesignSettings != nil
}

// Validate, set edilen field'ların geçerliliğini kontrol eder.
func (r *UpdateSettingsRequest) Validate() error {
	if !r.HasUpdates() {
		return fmt.Errorf("no data to update")
	}
	if r.FullName != nil {
		trimmed := strings.TrimSpace(*r.FullName)
		if trimmed == "" {
			return fmt.Errorf("full_name cannot be empty")
		}
		*r.FullName = trimmed
	}
	if r.DefaultTaxRate != nil && (*r.DefaultTaxRate < 0 || *r.DefaultTaxRate > 100) {
		return fmt.Errorf("default_tax_rate must be between 0 and 100")
	}
	if r.DesignSettings != nil && !json.Valid(r.DesignSettings) {
		return fmt.Errorf("design_settings must be valid JSON")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// EmailRegex, email format kontrolü için derlenmiş regex'i döner.
func EmailRegex() *regexp.Regexp {
	return emailRegex
}
