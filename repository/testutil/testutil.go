// Package testutil, repository ve service testleri için in-memory
// SQLite veritabanı kurar. Migration'lar gerçek embedded dosyalardan
// çalışır — testler production şemasıyla birebir aynı şemada koşar.
package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teklifgo/server/database"
	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/repository"
)

// dbCounter, her teste izole bir in-memory DB vermek için kullanılır.
// cache=shared aynı isimli DSN'leri tek DB'de birleştirir — isim test
// başına benzersiz olmalı, yoksa paralel testler birbirinin verisini görür.
var dbCounter atomic.Int64

// NewTestDB, migration'ları uygulanmış in-memory SQLite DB açar.
// Test bitiminde bağlantı otomatik kapanır.
func NewTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := database.New("sqlite", dsn)
	require.NoError(t, err)

	// Pool tek bağlantıda tutulur — in-memory DB'de ekstra güvence.
	db.Conn.SetMaxOpenConns(1)

	t.Cleanup(func() { db.Close() })
	return db
}

// SeedUser, test kullanıcısı oluşturur ve ID'sini döner.
func SeedUser(t *testing.T, db *database.DB, email string) string {
	t.Helper()

	repo := repository.NewSQLUserRepo(db.Conn)
	user := &models.User{
		Email:              email,
		PasswordHash:       "$2a$12$test-hash",
		FullName:           "Test User",
		SubscriptionPlan:   models.PlanFree,
		SubscriptionStatus: models.SubscriptionActive,
		DefaultTaxRate:     models.DefaultTaxRate,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user.ID
}

// SeedCustomer, test müşterisi oluşturur ve ID'sini döner.
func SeedCustomer(t *testing.T, db *database.DB, userID, name string) string {
	t.Helper()

	repo := repository.NewSQLCustomerRepo(db.Conn)
	customer := &models.Customer{
		UserID: userID,
		Name:   name,
	}
	require.NoError(t, repo.Create(context.Background(), customer))
	return customer.ID
}
