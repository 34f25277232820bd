package repository

import (
	"context"
	"time"

	"github.com/teklifgo/server/models"
)

// ReminderRepository, hatırlatma veritabanı işlemleri için interface.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	// GetByID, hatırlatmayı teklif numarası ve müşteri bilgisiyle döner.
	GetByID(ctx context.Context, userID, id string) (*models.Reminder, error)
	// ListByUser, hatırlatmaları vade tarihine göre eskiden yeniye döner.
	ListByUser(ctx context.Context, userID string) ([]models.Reminder, error)
	// MarkSent, hatırlatmayı gönderildi olarak işaretler.
	MarkSent(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
	// ListDue, vadesi gelmiş (reminder_date <= now) ve henüz gönderilmemiş
	// hatırlatmaları TÜM kullanıcılar için döner — scheduler kullanır.
	ListDue(ctx context.Context, now time.Time) ([]models.Reminder, error)
}
