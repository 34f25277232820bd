package database

import (
	"embed"
	"fmt"
	"io/fs"
)

// Migration dosyaları binary'ye gömülür — deploy edilen artifact tek başına
// yeterlidir, Railway container'ında ayrıca dosya taşımak gerekmez.
//
//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// MigrationsFor, verilen driver'ın migration dizinini fs.FS olarak döner.
// SQLite ve Postgres şemaları tip isimlerinde ayrışır (DATETIME/TIMESTAMPTZ,
// REAL/DOUBLE PRECISION), bu yüzden dialect başına ayrı dizin tutulur.
func MigrationsFor(driver string) (fs.FS, error) {
	switch driver {
	case "sqlite", "postgres":
		return fs.Sub(migrationsFS, "migrations/"+driver)
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}
