package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dishpatch/internal/config"
	"dishpatch/internal/model"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Open connects to the configured backend and returns a GORM DB instance.
// TranslateError is enabled so constraint failures surface as GORM sentinel
// errors regardless of driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}

	driver := strings.ToLower(cfg.DBDriver)
	log.WithFields(logrus.Fields{"db_driver": driver}).Info("opening database")

	var (
		db  *gorm.DB
		err error
	)
	switch driver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(sqliteDSN(cfg.SQLitePath)), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: mysql, sqlite)", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"db_driver":      driver,
		"max_open_conns": cfg.MaxOpenConns,
		"max_idle_conns": cfg.MaxIdleConns,
	}).Info("database ready")

	return db, nil
}

// sqliteDSN appends the pragmas the schema depends on. Foreign keys are off
// by default in SQLite and every cascade and restrict rule needs them on.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate creates or updates every table the schema declares, in declaration
// order so foreign keys always have their target.
func Migrate(db *gorm.DB, schema *model.Schema) error {
	if err := db.AutoMigrate(schema.Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	log.WithField("tables", len(schema.Models())).Info("schema migrated")
	return nil
}
