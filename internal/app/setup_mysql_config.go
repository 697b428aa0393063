package app

import (
	"time"

	"github.com/jbeshir/community-feed/internal/datasources/mysql"
)

// DefaultMySQLPoolConfig returns the default connection pool sizing.
func DefaultMySQLPoolConfig() mysql.PoolConfig {
	return mysql.PoolConfig{
		MaxOpenConns:    10,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
	}
}
