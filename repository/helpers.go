package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation, hatanın bir UNIQUE constraint ihlali olup olmadığını
// kontrol eder. İki driver farklı raporlar:
//   - Postgres (pgx): SQLSTATE 23505, *pgconn.PgError olarak erişilebilir
//   - SQLite (modernc): hata mesajında "UNIQUE constraint failed" geçer
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// rowsAffected, Exec sonucunun kaç satır etkilediğini döner; RowsAffected
// hata verirse 0 kabul edilir (her iki driver da destekler, pratikte olmaz).
func rowsAffected(res interface{ RowsAffected() (int64, error) }) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}
