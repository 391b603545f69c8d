// Package db manages the PostgreSQL connection shared by the persistence layer.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/0Hoxy/fixedExpenses/config"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
)

// Postgres owns the GORM handle and the pool settings behind it.
type Postgres struct {
	gorm *gorm.DB
}

// Open connects to PostgreSQL, applies the pool limits from cfg and verifies
// the server is reachable before returning. An unreachable server fails here
// instead of on the first query.
func Open(cfg *config.DatabaseConfig) (*Postgres, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pool, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	slog.Info("Connected to PostgreSQL",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return &Postgres{gorm: gdb}, nil
}

// Gorm exposes the handle the repositories are built on.
func (p *Postgres) Gorm() *gorm.DB {
	return p.gorm
}

// Healthy reports whether the server currently answers a ping.
func (p *Postgres) Healthy() bool {
	pool, err := p.gorm.DB()
	if err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}
	return true
}

// Migrate creates or updates the schema for the given models.
func (p *Postgres) Migrate(models ...interface{}) error {
	if err := p.gorm.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	pool, err := p.gorm.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	slog.Info("Database connection closed")
	return nil
}
