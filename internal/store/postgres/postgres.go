// Package postgres implements store.Store on PostgreSQL. Documents live in a
// single jsonb table keyed by (collection, id); counters are a separate table
// incremented in one statement so sequence allocation stays race-free.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jruiz-dev/trendyshop/internal/common"
	"github.com/jruiz-dev/trendyshop/internal/store"

	"github.com/google/uuid"
)

type Postgres struct {
	db *sql.DB
}

// Open connects to the database, verifies the connection, and returns a
// ready store. The caller owns closing it.
func Open(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Postgres{db: db}, nil
}

// New wraps an existing handle, e.g. one shared with the migration runner.
func New(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

var _ store.Store = (*Postgres)(nil)

func (p *Postgres) Close() error { return p.db.Close() }

// DB exposes the underlying handle for the migration runner.
func (p *Postgres) DB() *sql.DB { return p.db }

func (p *Postgres) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if err := p.Put(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (p *Postgres) Put(ctx context.Context, collection, id string, data map[string]any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	query := `INSERT INTO documents (collection, id, data)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`

	if _, err := p.db.ExecContext(ctx, query, collection, id, body); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	query := `SELECT data FROM documents WHERE collection = $1 AND id = $2`

	var body []byte
	err := p.db.QueryRowContext(ctx, query, collection, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return data, nil
}

func (p *Postgres) Update(ctx context.Context, collection, id string, partial map[string]any) error {
	body, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	// jsonb concatenation merges top-level keys; documents here are flat.
	query := `UPDATE documents SET data = data || $3
	          WHERE collection = $1 AND id = $2`

	res, err := p.db.ExecContext(ctx, query, collection, id, body)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	res, err := p.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (p *Postgres) List(ctx context.Context, collection, orderField string, asc bool) ([]store.Document, error) {
	dir := "ASC"
	if !asc {
		dir = "DESC"
	}

	// data->$2 yields a jsonb value, so numbers order numerically and
	// strings lexicographically without a cast.
	query := fmt.Sprintf(
		`SELECT id, data FROM documents
		 WHERE collection = $1
		 ORDER BY data->$2 %s`, dir)

	rows, err := p.db.QueryContext(ctx, query, collection, orderField)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := make([]store.Document, 0)
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		var data map[string]any
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, fmt.Errorf("decoding document: %w", err)
		}
		list = append(list, store.Document{ID: id, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

// NextValue allocates the next counter value in a single statement, so two
// concurrent callers can never observe the same value.
func (p *Postgres) NextValue(ctx context.Context, counter string) (int64, error) {
	query := `INSERT INTO counters (name, value) VALUES ($1, 1)
	          ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
	          RETURNING value`

	var value int64
	if err := p.db.QueryRowContext(ctx, query, counter).Scan(&value); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return value, nil
}
