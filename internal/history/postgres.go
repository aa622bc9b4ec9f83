package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Skufu/healthassistant/internal/apperr"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS assessments (
	id         UUID PRIMARY KEY,
	disease    TEXT NOT NULL,
	label      SMALLINT NOT NULL,
	message    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS assessments_created_at_idx ON assessments (created_at DESC);
`

// PostgresRecorder persists entries through a pgx pool.
type PostgresRecorder struct {
	pool *pgxpool.Pool
}

// Connect opens a pool, pings it and makes sure the assessments table exists.
func Connect(ctx context.Context, url string) (*PostgresRecorder, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, apperr.DatabaseError("parse db url", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, apperr.DatabaseError("create pool", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperr.DatabaseError("ping db", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, apperr.DatabaseError("create assessments table", err)
	}

	return &PostgresRecorder{pool: pool}, nil
}

func (p *PostgresRecorder) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresRecorder) Close() {
	p.pool.Close()
}

func (p *PostgresRecorder) Record(ctx context.Context, e Entry) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO assessments (id, disease, label, message, created_at) VALUES ($1, $2, $3, $4, $5)`,
		e.ID.String(), e.Disease, e.Label, e.Message, e.CreatedAt,
	)
	if err != nil {
		return apperr.DatabaseError("insert assessment", err)
	}
	return nil
}

func (p *PostgresRecorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id::text, disease, label, message, created_at FROM assessments ORDER BY created_at DESC LIMIT $1`,
		NormalizeLimit(limit),
	)
	if err != nil {
		return nil, apperr.DatabaseError("query assessments", err)
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var (
			e  Entry
			id string
		)
		if err := rows.Scan(&id, &e.Disease, &e.Label, &e.Message, &e.CreatedAt); err != nil {
			return nil, apperr.DatabaseError("scan assessment", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, apperr.DatabaseError(fmt.Sprintf("assessment id %q", id), err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.DatabaseError("iterate assessments", err)
	}
	return out, nil
}
