package database

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

const (
	// DriverSQLite 單一檔案嵌入式資料庫 (modernc.org/sqlite)
	DriverSQLite = "sqlite"
	// DriverPgx PostgreSQL，經由 pgx 的 database/sql driver
	DriverPgx = "pgx"
)

// DB 是 store 與 handler 共用的資料庫操作介面。
// 查詢一律以 ? 作為佔位符撰寫，執行前經過 Rebind。
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
	Rebind(query string) string
	Close() error
}

// Conn 包裝 *sql.DB 並記錄所使用的 driver
type Conn struct {
	*sql.DB
	driver string
}

// New 以既有的 *sql.DB 建立 Conn，測試時可傳入 sqlmock
func New(db *sql.DB, driver string) *Conn {
	return &Conn{DB: db, driver: driver}
}

// Driver 回傳 driver 名稱
func (c *Conn) Driver() string {
	return c.driver
}

// Rebind 將 ? 佔位符轉為目前 driver 的格式
func (c *Conn) Rebind(query string) string {
	if c.driver != DriverPgx {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
