package models

import (
	"fmt"
	"strings"
	"time"
)

// Reminder, bir teklif için ödeme/takip hatırlatmasıdır.
//
// Scheduler (services.ReminderService) vadesi gelen (reminder_date <= now,
// sent = false) hatırlatmaları bulur, sahibine WebSocket bildirimi gönderir,
// email yapılandırılmışsa müşteriye email atar ve sent işaretler.
type Reminder struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	QuotationID  string    `json:"quotation_id"`
	ReminderDate time.Time `json:"reminder_date"`
	Message      string    `json:"message"`
	Sent         bool      `json:"sent"`
	CreatedAt    time.Time `json:"created_at"`

	// Listelerde gösterim için join'lenen alanlar — DB kolonu değildir.
	QuotationNumber *string   `json:"quotation_number,omitempty"`
	Customer        *Customer `json:"customer,omitempty"`
}

// CreateReminderRequest, hatırlatma oluşturma isteği.
type CreateReminderRequest struct {
	QuotationID  string    `json:"quotation_id"`
	ReminderDate time.Time `json:"reminder_date"`
	Message      string    `json:"message"`
}

// Validate, isteğin geçerli olup olmadığını kontrol eder.
func (r *CreateReminderRequest) Validate() error {
	if strings.TrimSpace(r.QuotationID) == "" {
		return fmt.Errorf("quotation_id is required")
	}
	if r.ReminderDate.IsZero() {
		return fmt.Errorf("reminder_date is required")
	}
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
