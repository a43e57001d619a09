package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const activitySchema = `
	CREATE TABLE IF NOT EXISTS activities (
		id          CHAR(36)     NOT NULL PRIMARY KEY,
		type        VARCHAR(32)  NOT NULL,
		description VARCHAR(255) NOT NULL,
		severity    VARCHAR(16)  NOT NULL,
		created_at  DATETIME(6)  NOT NULL,
		INDEX idx_activities_created_at (created_at)
	)`

// NewDB opens a MySQL connection pool and verifies it is reachable.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates the tables used by the repositories if they are missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, activitySchema); err != nil {
		return fmt.Errorf("creating activities table: %w", err)
	}
	return nil
}
