package main

import (
	"dailydo/infra"
	"dailydo/models"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := migrate(); err != nil {
		fmt.Printf("migration failed: %s\n", err)
		os.Exit(1)
	}
}

func migrate() error {
	_ = infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.UsesInMemoryDB() {
		return errors.New("DATABASE_URL is not set")
	}

	logs, err := infra.NewLogger("migrate", cfg.Env)
	if err != nil {
		return err
	}
	defer logs.Sync()

	db, err := infra.SetupDB(cfg, logs)
	if err != nil {
		return err
	}
	defer infra.CloseDB(db)

	logs.Infow("Creating tables")
	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	logs.Infow("Tables created")
	return nil
}
