package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bogdan892/refactoring/internal/core/domain"
)

// PostgresStore keeps the snapshot in one table, one row per account, keyed
// by login with the serialized document alongside. Save clears and rewrites
// the table in a single transaction, the same whole-snapshot overwrite the
// file store does.
type PostgresStore struct {
	db *pgxpool.Pool
}

// Connect initializes the connection pool and verifies it with a ping.
func Connect(databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 0
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return pool, nil
}

func NewPostgresStore(db *pgxpool.Pool) (*PostgresStore, error) {
	s := &PostgresStore{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS accounts (
			position SERIAL PRIMARY KEY,
			login    TEXT NOT NULL UNIQUE,
			doc      JSONB NOT NULL
		)
	`
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// FindAll loads every account document in insertion order.
func (s *PostgresStore) FindAll() ([]*domain.Account, error) {
	ctx := context.Background()
	rows, err := s.db.Query(ctx, `SELECT doc FROM accounts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		var rec accountRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, fromRecord(rec))
	}
	return accounts, rows.Err()
}

// Save rewrites the whole table with the given collection.
func (s *PostgresStore) Save(accounts []*domain.Account) error {
	ctx := context.Background()
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("clear accounts: %w", err)
	}
	for _, acc := range accounts {
		raw, err := json.Marshal(toRecord(acc))
		if err != nil {
			return fmt.Errorf("encode account %s: %w", acc.Login, err)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO accounts (login, doc) VALUES ($1, $2)`, acc.Login, raw); err != nil {
			return fmt.Errorf("insert account %s: %w", acc.Login, err)
		}
	}
	return tx.Commit(ctx)
}
