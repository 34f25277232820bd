package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teklifgo/server/database"
	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
)

// sqlQuotationRepo, QuotationRepository'nin database/sql implementasyonu.
//
// Diğer repository'lerden farklı olarak *sql.DB tutar (TxQuerier değil):
// Create ve Update, teklif + kalemleri database.WithTx ile tek transaction'da
// yazar ve bunun için BeginTx'e ihtiyaç duyar.
type sqlQuotationRepo struct {
	db *sql.DB
}

// NewSQLQuotationRepo, constructor.
func NewSQLQuotationRepo(db *sql.DB) QuotationRepository {
	return &sqlQuotationRepo{db: db}
}

// quotationColumns — q alias'lı SELECT listesi, scanQuotation ile eşleşir.
const quotationColumns = `q.id, q.user_id, q.customer_id, q.quotation_number,
	q.subtotal, q.discount_amount, q.tax_rate, q.tax_amount, q.total,
	q.notes, q.status, q.payment_status, q.payment_date, q.payment_amount,
	q.payment_notes, q.created_at`

// customerJoinColumns — teklif sorgularına join'lenen müşteri kolonları.
const customerJoinColumns = `c.id, c.user_id, c.name, c.email, c.phone,
	c.company, c.address, c.tax_number, c.tax_office, c.notes, c.created_at`

func (r *sqlQuotationRepo) Create(ctx context.Context, quotation *models.Quotation) error {
	quotation.ID = uuid.NewString()
	quotation.CreatedAt = time.Now().UTC()
	if quotation.Status == "" {
		quotation.Status = models.QuotationStatusPending
	}
	if quotation.PaymentStatus == "" {
		quotation.PaymentStatus = models.PaymentStatusUnpaid
	}

	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO quotations (id, user_id, customer_id, quotation_number,
				subtotal, discount_amount, tax_rate, tax_amount, total, notes,
				status, payment_status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

		if _, err := tx.ExecContext(ctx, query,
			quotation.ID, quotation.UserID, quotation.CustomerID,
			quotation.QuotationNumber, quotation.Subtotal,
			quotation.DiscountAmount, quotation.TaxRate, quotation.TaxAmount,
			quotation.Total, quotation.Notes, quotation.Status,
			quotation.PaymentStatus, quotation.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to create quotation: %w", err)
		}

		return insertItems(ctx, tx, quotation.ID, quotation.Items)
	})
}

func (r *sqlQuotationRepo) GetByID(ctx context.Context, userID, id string) (*models.Quotation, error) {
	query := `
		SELECT ` + quotationColumns + `, ` + customerJoinColumns + `
		FROM quotations q
		JOIN customers c ON c.id = q.customer_id
		WHERE q.id = $1 AND q.user_id = $2`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	quotation, err := scanQuotationWithCustomer(row)
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, quotation.ID)
	if err != nil {
		return nil, err
	}
	quotation.Items = items

	return quotation, nil
}

func (r *sqlQuotationRepo) ListByUser(ctx context.Context, userID string) ([]models.Quotation, error) {
	query := `
		SELECT ` + quotationColumns + `, ` + customerJoinColumns + `
		FROM quotations q
		JOIN customers c ON c.id = q.customer_id
		WHERE q.user_id = $1
		ORDER BY q.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	defer rows.Close()

	quotations := []models.Quotation{}
	for rows.Next() {
		q, err := scanQuotationWithCustomerRows(rows)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotations: %w", err)
	}

	// Kalemleri teklif başına ayrı sorgu yerine tek sorguda çek (N+1 yok),
	// sonra quotation_id'ye göre dağıt.
	itemsByQuotation, err := r.loadItemsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range quotations {
		if items, ok := itemsByQuotation[quotations[i].ID]; ok {
			quotations[i].Items = items
		} else {
			quotations[i].Items = []models.QuotationItem{}
		}
	}

	return quotations, nil
}

func (r *sqlQuotationRepo) Update(ctx context.Context, quotation *models.Quotation) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			UPDATE quotations
			SET customer_id = $1, subtotal = $2, discount_amount = $3,
				tax_rate = $4, tax_amount = $5, total = $6, notes = $7
			WHERE id = $8 AND user_id = $9`

		res, err := tx.ExecContext(ctx, query,
			quotation.CustomerID, quotation.Subtotal,
			quotation.DiscountAmount, quotation.TaxRate,
			quotation.TaxAmount, quotation.Total, quotation.Notes,
			quotation.ID, quotation.UserID,
		)
		if err != nil {
			return fmt.Errorf("failed to update quotation: %w", err)
		}
		if rowsAffected(res) == 0 {
			return pkg.ErrNotFound
		}

		// Replace semantics: eski kalemler silinir, yenileri yazılır.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM quotation_items WHERE quotation_id = $1`, quotation.ID,
		); err != nil {
			return fmt.Errorf("failed to delete quotation items: %w", err)
		}

		return insertItems(ctx, tx, quotation.ID, quotation.Items)
	})
}

func (r *sqlQuotationRepo) Delete(ctx context.Context, userID, id string) error {
	// quotation_items ON DELETE CASCADE ile birlikte silinir.
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM quotations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete quotation: %w", err)
	}
	if rowsAffected(res) == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlQuotationRepo) UpdatePayment(ctx context.Context, userID, id string, req *models.PaymentUpdateRequest) (*models.Quotation, error) {
	// payment_status her zaman set edilir, kalan field'lar geldiyse.
	sets := []string{"payment_status = $1"}
	args := []any{req.PaymentStatus}
	n := 1

	if req.PaymentDate != nil {
		n++
		sets = append(sets, fmt.Sprintf("payment_date = $%d", n))
		args = append(args, *req.PaymentDate)
	}
	if req.PaymentAmount != nil {
		n++
		sets = append(sets, fmt.Sprintf("payment_amount = $%d", n))
		args = append(args, *req.PaymentAmount)
	}
	if req.PaymentNotes != nil {
		n++
		sets = append(sets, fmt.Sprintf("payment_notes = $%d", n))
		args = append(args, *req.PaymentNotes)
	}

	query := fmt.Sprintf(
		"UPDATE quotations SET %s WHERE id = $%d AND user_id = $%d",
		strings.Join(sets, ", "), n+1, n+2)
	args = append(args, id, userID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	if rowsAffected(res) == 0 {
		return nil, pkg.ErrNotFound
	}

	return r.GetByID(ctx, userID, id)
}

func (r *sqlQuotationRepo) ListByPaymentStatus(ctx context.Context, userID, status string) ([]models.Quotation, error) {
	query := `
		SELECT ` + quotationColumns + `, ` + customerJoinColumns + `
		FROM quotations q
		JOIN customers c ON c.id = q.customer_id
		WHERE q.user_id = $1 AND q.payment_status = $2
		ORDER BY q.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations by payment status: %w", err)
	}
	defer rows.Close()

	quotations := []models.Quotation{}
	for rows.Next() {
		q, err := scanQuotationWithCustomerRows(rows)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotations: %w", err)
	}

	return quotations, nil
}

func (r *sqlQuotationRepo) Stats(ctx context.Context, userID string) (*QuotationStats, error) {
	// Tüm aggregate'ler tek sorguda — satırları uygulamaya taşımaya gerek yok.
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN total END), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'unpaid' THEN total END), 0),
			COALESCE(SUM(total), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN COALESCE(payment_amount, total) END), 0),
			COALESCE(SUM(CASE WHEN payment_status = 'unpaid' THEN 1 ELSE 0 END), 0)
		FROM quotations
		WHERE user_id = $1`

	stats := &QuotationStats{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalQuotations,
		&stats.TotalRevenue,
		&stats.PendingPayments,
		&stats.TotalExpected,
		&stats.TotalReceived,
		&stats.OverdueCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotation stats: %w", err)
	}

	return stats, nil
}

// ─── Private Helpers ───

// insertItems, kalemleri verilen querier (transaction) üzerinden yazar.
func insertItems(ctx context.Context, tx database.TxQuerier, quotationID string, items []models.QuotationItem) error {
	query := `
		INSERT INTO quotation_items (id, quotation_id, product_name,
			specifications, quantity, unit, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for i := range items {
		item := &items[i]
		item.ID = uuid.NewString()
		item.QuotationID = quotationID

		if _, err := tx.ExecContext(ctx, query,
			item.ID, item.QuotationID, item.ProductName,
			item.Specifications, item.Quantity, item.Unit,
			item.UnitPrice, item.Total,
		); err != nil {
			return fmt.Errorf("failed to insert quotation item: %w", err)
		}
	}

	return nil
}

const itemColumns = `id, quotation_id, product_name, specifications,
	quantity, unit, unit_price, total`

func (r *sqlQuotationRepo) loadItems(ctx context.Context, quotationID string) ([]models.QuotationItem, error) {
	query := `SELECT ` + itemColumns + ` FROM quotation_items WHERE quotation_id = $1`

	rows, err := r.db.QueryContext(ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotation items: %w", err)
	}
	defer rows.Close()

	items := []models.QuotationItem{}
	for rows.Next() {
		var item models.QuotationItem
		if err := rows.Scan(
			&item.ID, &item.QuotationID, &item.ProductName,
			&item.Specifications, &item.Quantity, &item.Unit,
			&item.UnitPrice, &item.Total,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quotation item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotation items: %w", err)
	}

	return items, nil
}

// loadItemsForUser, kullanıcının tüm teklif kalemlerini tek sorguda çeker
// ve quotation_id'ye göre gruplar.
func (r *sqlQuotationRepo) loadItemsForUser(ctx context.Context, userID string) (map[string][]models.QuotationItem, error) {
	query := `
		SELECT qi.id, qi.quotation_id, qi.product_name, qi.specifications,
			qi.quantity, qi.unit, qi.unit_price, qi.total
		FROM quotation_items qi
		JOIN quotations q ON q.id = qi.quotation_id
		WHERE q.user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotation items: %w", err)
	}
	defer rows.Close()

	itemsByQuotation := make(map[string][]models.QuotationItem)
	for rows.Next() {
		var item models.QuotationItem
		if err := rows.Scan(
			&item.ID, &item.QuotationID, &item.ProductName,
			&item.Specifications, &item.Quantity, &item.Unit,
			&item.UnitPrice, &item.Total,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quotation item: %w", err)
		}
		itemsByQuotation[item.QuotationID] = append(itemsByQuotation[item.QuotationID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotation items: %w", err)
	}

	return itemsByQuotation, nil
}

// rowScanner, *sql.Row ve *sql.Rows'un ortak Scan metodunu soyutlar —
// tek satır ve çok satırlı sorgular aynı scan koduyla okunur.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuotationInto(s rowScanner) (*models.Quotation, error) {
	q := &models.Quotation{}
	c := &models.Customer{}

	err := s.Scan(
		&q.ID, &q.UserID, &q.CustomerID, &q.QuotationNumber,
		&q.Subtotal, &q.DiscountAmount, &q.TaxRate, &q.TaxAmount, &q.Total,
		&q.Notes, &q.Status, &q.PaymentStatus, &q.PaymentDate,
		&q.PaymentAmount, &q.PaymentNotes, &q.CreatedAt,
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone,
		&c.Company, &c.Address, &c.TaxNumber, &c.TaxOffice, &c.Notes,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.Customer = c
	q.Items = []models.QuotationItem{}
	return q, nil
}

func scanQuotationWithCustomer(row *sql.Row) (*models.Quotation, error) {
	q, err := scanQuotationInto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan quotation: %w", err)
	}
	return q, nil
}

func scanQuotationWithCustomerRows(rows *sql.Rows) (*models.Quotation, error) {
	q, err := scanQuotationInto(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan quotation: %w", err)
	}
	return q, nil
}
