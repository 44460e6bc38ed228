package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse-backend/internal/config"
	"warehouse-backend/internal/database"
	"warehouse-backend/internal/server"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// bootstrap loads config, opens the store and creates the schema.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}
	return cfg, db, nil
}

func migrateAction(*cli.Context) error {
	_, db, err := bootstrap()
	if err != nil {
		return err
	}
	return database.Close(db)
}

func seedAction(c *cli.Context) error {
	_, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close(db)

	seeded, err := database.SeedIfEmpty(c.Context, db)
	if err != nil {
		return err
	}
	if !seeded {
		log.Println("Store already contains inbound documents, seed skipped.")
	}
	return nil
}

func serveAction(c *cli.Context) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if cfg.SeedOnStart {
		if _, err := database.SeedIfEmpty(c.Context, db); err != nil {
			return err
		}
	}

	app := server.New(cfg, db)

	errCh := make(chan error, 1)
	go func() {
		log.Println("Server listening on port:", cfg.HTTPPort)
		errCh <- app.Listen(":" + cfg.HTTPPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-quit:
		log.Println("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
	return nil
}
