package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	migsqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

type migrateInstance interface {
	Up() error
	Down() error
}

// 以下函式可於測試時覆寫
var (
	postgresWithInstanceFn = func(db *sql.DB) (dbdriver.Driver, error) {
		return postgres.WithInstance(db, &postgres.Config{})
	}
	sqliteWithInstanceFn = func(db *sql.DB) (dbdriver.Driver, error) {
		return migsqlite.WithInstance(db, &migsqlite.Config{})
	}
	iofsNewFn              = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
)

// newMigrator 依 driver 選擇對應的 migration 目錄與 migrate driver。
// migrator 與 conn 共用同一個 *sql.DB，不另外開連線，也不關閉它。
func newMigrator(conn *Conn) (migrateInstance, error) {
	var (
		driver dbdriver.Driver
		dir    string
		name   string
		err    error
	)
	switch conn.Driver() {
	case DriverSQLite:
		driver, err = sqliteWithInstanceFn(conn.DB)
		dir, name = "migrations/sqlite", "sqlite"
	case DriverPgx:
		driver, err = postgresWithInstanceFn(conn.DB)
		dir, name = "migrations/postgres", "postgres"
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conn.Driver())
	}
	if err != nil {
		return nil, fmt.Errorf("migrate driver: %w", err)
	}

	sourceDriver, err := iofsNewFn(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("migrate source: %w", err)
	}

	return migrateNewWithInstance("iofs", sourceDriver, name, driver)
}

// RunMigrations 執行所有嵌入的 migration (up all)
func RunMigrations(conn *Conn) error {
	m, err := newMigrator(conn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// RollbackAll 退回所有 migration (down to version 0)
func RollbackAll(conn *Conn) error {
	m, err := newMigrator(conn)
	if err != nil {
		return err
	}
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}
