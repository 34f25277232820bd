// Package repository, veritabanı erişim katmanını tanımlar.
//
// Repository Pattern: veritabanı işlemlerini (CRUD) soyutlayan katman.
// Service katmanı doğrudan SQL yazmaz — repository interface'i üzerinden
// çalışır. Interface kullanmanın getirisi:
//  1. Test: in-memory SQLite ile veya mock ile DB'siz test
//  2. Esneklik: aynı implementasyon SQLite (dev) ve Postgres (Supabase) ile
//     çalışır; sorgular $1-stili placeholder kullanır
//  3. Dependency Inversion: service concrete struct'a değil interface'e bağımlı
package repository

import (
	"context"

	"github.com/teklifgo/server/models"
)

// UserRepository, kullanıcı (hesap) veritabanı işlemleri için interface.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateSettings, sadece set edilmiş (non-nil) field'ları günceller ve
	// güncel kullanıcıyı döner.
	UpdateSettings(ctx context.Context, userID string, req *models.UpdateSettingsRequest) (*models.User, error)
}
