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

// sqlCustomerRepo, CustomerRepository'nin database/sql implementasyonu.
type sqlCustomerRepo struct {
	db database.TxQuerier
}

// NewSQLCustomerRepo, constructor.
func NewSQLCustomerRepo(db database.TxQuerier) CustomerRepository {
	return &sqlCustomerRepo{db: db}
}

const customerColumns = `id, user_id, name, email, phone, company, address,
	tax_number, tax_office, notes, created_at`

func (r *sqlCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	customer.ID = uuid.NewString()
	customer.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO customers (id, user_id, name, email, phone, company,
			address, tax_number, tax_office, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.UserID, customer.Name, customer.Email,
		customer.Phone, customer.Company, customer.Address,
		customer.TaxNumber, customer.TaxOffice, customer.Notes,
		customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *sqlCustomerRepo) GetByID(ctx context.Context, userID, id string) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND user_id = $2`

	customer := &models.Customer{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&customer.ID, &customer.UserID, &customer.Name, &customer.Email,
		&customer.Phone, &customer.Company, &customer.Address,
		&customer.TaxNumber, &customer.TaxOffice, &customer.Notes,
		&customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

func (r *sqlCustomerRepo) ListByUser(ctx context.Context, userID string) ([]models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE user_id = $1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	// Boş liste için nil yerine [] dönmek frontend'i null check'ten kurtarır.
	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company,
			&c.Address, &c.TaxNumber, &c.TaxOffice, &c.Notes, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

func (r *sqlCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, email = $2, phone = $3, company = $4, address = $5,
			tax_number = $6, tax_office = $7, notes = $8
		WHERE id = $9 AND user_id = $10`

	res, err := r.db.ExecContext(ctx, query,
		customer.Name, customer.Email, customer.Phone, customer.Company,
		customer.Address, customer.TaxNumber, customer.TaxOffice,
		customer.Notes, customer.ID, customer.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if rowsAffected(res) == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlCustomerRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM customers WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if rowsAffected(res) == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqlCustomerRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM customers WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
