package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const schemaSQL = `
CREATE SCHEMA IF NOT EXISTS finance;

CREATE TABLE IF NOT EXISTS finance.users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS finance.transactions (
	id           BIGSERIAL PRIMARY KEY,
	user_id      BIGINT NOT NULL REFERENCES finance.users(id) ON DELETE CASCADE,
	amount       NUMERIC(14,2) NOT NULL CHECK (amount >= 0),
	type         TEXT NOT NULL CHECK (type IN ('income', 'expense')),
	category     TEXT NOT NULL DEFAULT '',
	description  TEXT NOT NULL DEFAULT '',
	is_fixed     BOOLEAN NOT NULL DEFAULT FALSE,
	is_recurrent BOOLEAN NOT NULL DEFAULT FALSE,
	frequency    TEXT,
	next_date    TIMESTAMPTZ,
	occurred_at  TIMESTAMPTZ NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS transactions_user_date_idx ON finance.transactions (user_id, occurred_at);

CREATE TABLE IF NOT EXISTS finance.manual_adjustments (
	id                 BIGSERIAL PRIMARY KEY,
	user_id            BIGINT NOT NULL REFERENCES finance.users(id) ON DELETE CASCADE,
	month              SMALLINT NOT NULL CHECK (month BETWEEN 0 AND 11),
	year               INTEGER NOT NULL,
	income_adjustment  NUMERIC(14,2) NOT NULL DEFAULT 0,
	expense_adjustment NUMERIC(14,2) NOT NULL DEFAULT 0,
	description        TEXT NOT NULL DEFAULT '',
	created_at         TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (user_id, month, year)
);`

// Migrate creates the schema if it does not exist yet
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping checks database connectivity
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
