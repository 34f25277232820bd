package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teklifgo/server/database"
	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
)

// sqlUserRepo, UserRepository'nin database/sql implementasyonu.
// Hem SQLite hem Postgres ile çalışır — sorgular $1-stili placeholder kullanır.
type sqlUserRepo struct {
	db database.TxQuerier
}

// NewSQLUserRepo, constructor. Interface döner — Dependency Inversion.
func NewSQLUserRepo(db database.TxQuerier) UserRepository {
	return &sqlUserRepo{db: db}
}

// userColumns, SELECT listesi — her sorguda aynı sıra, scanUser ile eşleşir.
const userColumns = `id, email, password_hash, full_name, company, phone,
	subscription_plan, subscription_status, subscription_end_date,
	company_logo, company_address, company_tax_number, company_tax_office,
	default_tax_rate, design_settings, created_at`

func (r *sqlUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	if user.SubscriptionPlan == "" {
		user.SubscriptionPlan = models.PlanFree
	}
	if user.SubscriptionStatus == "" {
		user.SubscriptionStatus = models.SubscriptionActive
	}
	if user.DefaultTaxRate == 0 {
		user.DefaultTaxRate = models.DefaultTaxRate
	}

	query := `
		INSERT INTO users (id, email, password_hash, full_name,
			subscription_plan, subscription_status, default_tax_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.SubscriptionPlan,
		user.SubscriptionStatus,
		user.DefaultTaxRate,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *sqlUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *sqlUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// UpdateSettings, sadece non-nil field'lar için SET clause üretir.
// Hiç field yoksa service zaten ErrBadRequest dönmüştür — yine de
// savunmacı kontrol yapılır.
func (r *sqlUserRepo) UpdateSettings(ctx context.Context, userID string, req *models.UpdateSettingsRequest) (*models.User, error) {
	var sets []string
	var args []any
	n := 0

	add := func(col string, val any) {
		n++
		sets = append(sets, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, val)
	}

	if req.FullName != nil {
		add("full_name", *req.FullName)
	}
	if req.Company != nil {
		add("company", *req.Company)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.CompanyLogo != nil {
		add("company_logo", *req.CompanyLogo)
	}
	if req.CompanyAddress != nil {
		add("company_address", *req.CompanyAddress)
	}
	if req.CompanyTaxNumber != nil {
		add("company_tax_number", *req.CompanyTaxNumber)
	}
	if req.CompanyTaxOffice != nil {
		add("company_tax_office", *req.CompanyTaxOffice)
	}
	if req.DefaultTaxRate != nil {
		add("default_tax_rate", *req.DefaultTaxRate)
	}
	if req.DesignSettings != nil {
		add("design_settings", string(req.DesignSettings))
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no data to update", pkg.ErrBadRequest)
	}

	n++
	args = append(args, userID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d",
		strings.Join(sets, ", "), n)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	if rowsAffected(res) == 0 {
		return nil, pkg.ErrNotFound
	}

	return r.GetByID(ctx, userID)
}

// scanUser, tek satırlık user sorgusunun sonucunu model'e aktarır.
func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var designSettings sql.NullString

	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName,
		&user.Company, &user.Phone,
		&user.SubscriptionPlan, &user.SubscriptionStatus, &user.SubscriptionEndDate,
		&user.CompanyLogo, &user.CompanyAddress, &user.CompanyTaxNumber, &user.CompanyTaxOffice,
		&user.DefaultTaxRate, &designSettings, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if designSettings.Valid && designSettings.String != "" {
		user.DesignSettings = json.RawMessage(designSettings.String)
	}

	return user, nil
}
