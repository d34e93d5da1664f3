package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_MAX_IDLE_CONNS", "")

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "dishpatch.db", cfg.SQLitePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("MYSQL_DSN", "root:secret@tcp(db:3306)/orders?parseTime=True")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg := Load()
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "root:secret@tcp(db:3306)/orders?parseTime=True", cfg.MySQLDSN)
	assert.Equal(t, 50, cfg.MaxOpenConns)
}

func TestLoadIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "plenty")

	cfg := Load()
	assert.Equal(t, 25, cfg.MaxOpenConns)
}
