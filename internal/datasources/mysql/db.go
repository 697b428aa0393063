package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// PoolConfig sizes the connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connect opens a pool for uri and checks the server is reachable. DATETIME
// columns are always scanned into time.Time, whatever the URI says.
func Connect(ctx context.Context, uri string, pool PoolConfig) (*sql.DB, error) {
	dsn, err := dsnWithParseTime(uri)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}

func dsnWithParseTime(uri string) (string, error) {
	cfg, err := mysql.ParseDSN(uri)
	if err != nil {
		return "", fmt.Errorf("parsing MySQL URI: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}
