// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// main.go'daki wire-up'ı modülerleştirmek için bu dosyaya taşındı.
package main

import (
	"database/sql"

	"github.com/teklifgo/server/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
// Ayrı değişkenler yerine tek struct: fonksiyon imzaları temiz kalır,
// yeni repository eklendiğinde sadece burası güncellenir.
type Repositories struct {
	User      repository.UserRepository
	Customer  repository.CustomerRepository
	Product   repository.ProductRepository
	Category  repository.CategoryRepository
	Quotation repository.QuotationRepository
	Reminder  repository.ReminderRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
// *sql.DB thread-safe connection pool'dur, paylaşılması güvenlidir.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		User:      repository.NewSQLUserRepo(conn),
		Customer:  repository.NewSQLCustomerRepo(conn),
		Product:   repository.NewSQLProductRepo(conn),
		Category:  repository.NewSQLCategoryRepo(conn),
		Quotation: repository.NewSQLQuotationRepo(conn),
		Reminder:  repository.NewSQLReminderRepo(conn),
	}
}
