// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Deployment hedefi Railway + Supabase'dir:
//   - Railway, HTTP portunu PORT env variable'ı olarak inject eder.
//   - Supabase Postgres bağlantısı SUPABASE_DB_URL (veya DATABASE_URL) ile verilir.
//   - Local geliştirmede hiçbiri set edilmezse SQLite dosyasına düşer.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	CORS     CORSConfig
	Reminder ReminderConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, veritabanı ayarları.
//
// Driver "postgres" ise DSN kullanılır (Supabase connection string),
// "sqlite" ise Path kullanılır (local dosya).
type DatabaseConfig struct {
	Driver string // "sqlite" | "postgres"
	DSN    string // postgres://... (Supabase session pooler URL'i)
	Path   string // SQLite dosya yolu (ör: ./data/teklifgo.db)
}

// JWTConfig, JWT token ayarları.
// Orijinal API 7 günlük tek bir access token kullanır — refresh token yok.
type JWTConfig struct {
	Secret     string // SECRET_KEY — token imzalama anahtarı, GİZLİ TUTULMALI
	ExpiryDays int    // Gün cinsinden (varsayılan: 7)
}

// EmailConfig, Resend üzerinden hatırlatma email'leri için ayarlar.
// APIKey boşsa email gönderimi devre dışı kalır (local geliştirme).
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string // Resend'de doğrulanmış domain altında olmalı
}

// CORSConfig, izin verilen origin listesi.
// "*" tüm origin'lere izin verir (orijinal deployment böyle çalışıyordu).
type CORSConfig struct {
	AllowedOrigins []string
}

// ReminderConfig, hatırlatma scheduler'ı ayarları.
type ReminderConfig struct {
	CheckIntervalSeconds int // Vadesi gelen hatırlatmaların tarama aralığı
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
// Production'da (Railway) bu dosya olmaz, platform env variable'ları kullanılır.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Railway PORT inject eder; local'de SERVER_PORT veya varsayılan 8001.
	portStr := getEnv("PORT", getEnv("SERVER_PORT", "8001"))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	expiryDays, err := strconv.Atoi(getEnv("JWT_EXPIRY_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DAYS: %w", err)
	}

	checkInterval, err := strconv.Atoi(getEnv("REMINDER_CHECK_INTERVAL_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_CHECK_INTERVAL_SECONDS: %w", err)
	}

	secret := getEnv("SECRET_KEY", "")
	if secret == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable is required")
	}

	// Veritabanı seçimi: Supabase DSN verilmişse postgres, yoksa sqlite.
	// SUPABASE_DB_URL öncelikli; Railway'in kendi Postgres'i DATABASE_URL verir.
	dsn := getEnv("SUPABASE_DB_URL", getEnv("DATABASE_URL", ""))
	driver := getEnv("DATABASE_DRIVER", "")
	if driver == "" {
		if dsn != "" {
			driver = "postgres"
		} else {
			driver = "sqlite"
		}
	}
	if driver == "postgres" && dsn == "" {
		return nil, fmt.Errorf("SUPABASE_DB_URL (or DATABASE_URL) is required for the postgres driver")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Driver: driver,
			DSN:    dsn,
			Path:   getEnv("DATABASE_PATH", "./data/teklifgo.db"),
		},
		JWT: JWTConfig{
			Secret:     secret,
			ExpiryDays: expiryDays,
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("EMAIL_FROM", "noreply@teklifgo.app"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Reminder: ReminderConfig{
			CheckIntervalSeconds: checkInterval,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8001").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitAndTrim, virgülle ayrılmış listeyi parçalar ve boşlukları temizler.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
