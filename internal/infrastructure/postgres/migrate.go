package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Migrate ejecuta el esquema embebido contra la base de datos.
// Es idempotente (CREATE TABLE IF NOT EXISTS), se corre en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ejecutar migraciones: %w", err)
	}
	return nil
}
