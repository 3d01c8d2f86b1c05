package infra

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxIdleConns    = 10
	maxOpenConns    = 20
	connMaxLifetime = 300 * time.Second
	slowQuery       = 200 * time.Millisecond
)

// SetupDB opens the process-wide connection pool. An empty DatabaseURL selects
// an in-memory sqlite database, which is what tests and local runs use.
func SetupDB(cfg Config, logs *zap.SugaredLogger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: newGormLogger(logs, cfg.DBEcho),
	}

	if cfg.UsesInMemoryDB() {
		db, err := gorm.Open(sqlite.Open(":memory:"), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db conn: %w", err)
		}
		// インメモリDBは接続ごとに別のDBになるので1本に固定する
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)

		logs.Infow("Setup sqlite database (in-memory)")
		return db, nil
	}

	dsn, err := postgresDSN(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	logs.Infow("Setup postgres database",
		"max_open_conns", maxOpenConns,
		"conn_max_lifetime", connMaxLifetime)
	return db, nil
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// postgresDSN forces sslmode=require on both URL and key/value connection strings.
func postgresDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse database url: %w", err)
		}
		q := u.Query()
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	// key=value形式は後勝ちなので末尾に足すだけでよい
	return strings.TrimSpace(dsn) + " sslmode=require", nil
}

type gormWriter struct {
	logs *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logs.Infof(format, args...)
}

func newGormLogger(logs *zap.SugaredLogger, echo bool) logger.Interface {
	level := logger.Warn
	if echo {
		level = logger.Info
	}

	return logger.New(gormWriter{logs: logs.Named("gorm")}, logger.Config{
		SlowThreshold:             slowQuery,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
