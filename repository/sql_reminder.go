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

// sqlReminderRepo, ReminderRepository'nin database/sql implementasyonu.
type sqlReminderRepo struct {
	db database.TxQuerier
}

// NewSQLReminderRepo, constructor.
func NewSQLReminderRepo(db database.TxQuerier) ReminderRepository {
	return &sqlReminderRepo{db: db}
}

// reminderSelect — teklif numarası ve müşteri bilgisi join'lenmiş sorgu.
// Hatırlatma listesi ekranı müşteri adını ve teklif numarasını gösterir;
// ayrı sorgular yerine tek join yeterli.
const reminderSelect = `
	SELECT r.id, r.user_id, r.quotation_id, r.reminder_date, r.message,
		r.sent, r.created_at, q.quotation_number,
		c.id, c.user_id, c.name, c.email, c.phone, c.company, c.address,
		c.tax_number, c.tax_office, c.notes, c.created_at
	FROM reminders r
	JOIN quotations q ON q.id = r.quotation_id
	JOIN customers c ON c.id = q.customer_id`

func (r *sqlReminderRepo) Create(ctx context.Context, reminder *models.Reminder) error {
	reminder.ID = uuid.NewString()
	reminder.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO reminders (id, user_id, quotation_id, reminder_date,
			message, sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		reminder.ID, reminder.UserID, reminder.QuotationID,
		reminder.ReminderDate, reminder.Message, reminder.Sent,
		reminder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return nil
}

func (r *sqlReminderRepo) GetByID(ctx context.Context, userID, id string) (*models.Reminder, error) {
	query := reminderSelect + ` WHERE r.id = $1 AND r.user_id = $2`

	reminder, err := scanReminder(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

func (r *sqlReminderRepo) ListByUser(ctx context.Context, userID string) ([]models.Reminder, error) {
	query := reminderSelect + ` WHERE r.user_id = $1 ORDER BY r.reminder_date ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, *reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}

	return reminders, nil
}

func (r *sqlReminderRepo) MarkSent(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET sent = $1 WHERE id = $2 AND user_id = $3`,
		true, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	if rowsAffected(res) == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlReminderRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM reminders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if rowsAffected(res) == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlReminderRepo) ListDue(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	// Scheduler için: tüm kullanıcıların vadesi gelmiş, gönderilmemiş
	// hatırlatmaları. sent = $2 parametresi driver'a göre bool/int map'lenir.
	query := reminderSelect + ` WHERE r.reminder_date <= $1 AND r.sent = $2 ORDER BY r.reminder_date ASC`

	rows, err := r.db.QueryContext(ctx, query, now, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due reminder: %w", err)
		}
		reminders = append(reminders, *reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate due reminders: %w", err)
	}

	return reminders, nil
}

// scanReminder, reminderSelect sorgusunun bir satırını model'e aktarır.
func scanReminder(s rowScanner) (*models.Reminder, error) {
	reminder := &models.Reminder{}
	customer := &models.Customer{}

	err := s.Scan(
		&reminder.ID, &reminder.UserID, &reminder.QuotationID,
		&reminder.ReminderDate, &reminder.Message, &reminder.Sent,
		&reminder.CreatedAt, &reminder.QuotationNumber,
		&customer.ID, &customer.UserID, &customer.Name, &customer.Email,
		&customer.Phone, &customer.Company, &customer.Address,
		&customer.TaxNumber, &customer.TaxOffice, &customer.Notes,
		&customer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	reminder.Customer = customer
	return reminder, nil
}
