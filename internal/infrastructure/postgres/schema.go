package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema crea las tablas si no existen. Los CHECK cumplen el mismo papel que el
// validador de colecciones en MongoDB: el catálogo solo admite standard/electric.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bikes (
	id         UUID PRIMARY KEY,
	type       TEXT NOT NULL CHECK (type IN ('standard', 'electric')),
	color      TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id         UUID PRIMARY KEY,
	user_id    TEXT NOT NULL,
	bike_ids   TEXT[] NOT NULL DEFAULT '{}',
	status     TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'completed')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// EnsureSchema aplica el esquema (idempotente).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
