package repository

import (
	"context"

	"github.com/teklifgo/server/models"
)

// CustomerRepository, müşteri veritabanı işlemleri için interface.
//
// Tüm okuma/yazma metotları userID alır ve sorgular user_id ile filtrelenir —
// tenant isolation repository katmanında garanti edilir, service'in
// hatırlamasına gerek kalmaz. Başka kullanıcının kaydına erişim ErrNotFound
// döner (404); kaydın varlığı bile sızdırılmaz.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, userID, id string) (*models.Customer, error)
	ListByUser(ctx context.Context, userID string) ([]models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, userID, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}
