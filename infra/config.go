package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

var errEnvVarNotFound = errors.New("environment variable not found")

const (
	databaseURLEnvKey = "DATABASE_URL"
	portEnvKey        = "PORT"
	envEnvKey         = "ENV"
	autoMigrateEnvKey = "AUTO_MIGRATE"
	dbEchoEnvKey      = "DB_ECHO"

	defaultPort = "8080"
	defaultEnv  = "dev"

	EnvProd = "prod"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	// テーブル作成は既定で無効。スキーマは事前に用意されている前提。
	AutoMigrate bool
	DBEcho      bool
}

func (c Config) IsProd() bool {
	return c.Env == EnvProd
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port: lookupOrDefault(portEnvKey, defaultPort),
		Env:  lookupOrDefault(envEnvKey, defaultEnv),
	}

	dbURL, ok := os.LookupEnv(databaseURLEnvKey)
	if (!ok || dbURL == "") && cfg.IsProd() {
		return Config{}, fmt.Errorf("%w: %s", errEnvVarNotFound, databaseURLEnvKey)
	}
	cfg.DatabaseURL = dbURL

	var err error
	if cfg.AutoMigrate, err = lookupBool(autoMigrateEnvKey); err != nil {
		return Config{}, err
	}
	if cfg.DBEcho, err = lookupBool(dbEchoEnvKey); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func lookupOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func lookupBool(key string) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

// UsesInMemoryDB reports whether no connection string was supplied.
// The in-memory database starts empty, so tables are always created for it.
func (c Config) UsesInMemoryDB() bool {
	return c.DatabaseURL == ""
}

func (c Config) ShouldMigrate() bool {
	return c.AutoMigrate || c.UsesInMemoryDB()
}
