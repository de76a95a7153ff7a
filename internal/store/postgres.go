package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shortlyhq/shortly/internal/shortlink"
)

// pgUniqueViolation is the SQLSTATE reported when an insert hits the unique
// index on short_code.
const pgUniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of shortlink.Repository.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed short link store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Insert(ctx context.Context, link *shortlink.ShortLink) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}

	query := `
		INSERT INTO short_links (id, original_url, short_code, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := p.pool.Exec(ctx, query,
		link.ID,
		link.OriginalURL,
		link.ShortCode,
		link.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return shortlink.ErrCodeTaken
		}

		return err
	}

	return nil
}

func (p *PostgresStore) FindByURL(ctx context.Context, originalURL string) (*shortlink.ShortLink, error) {
	query := `
		SELECT id, original_url, short_code, created_at
		FROM short_links
		WHERE original_url = $1
		ORDER BY created_at
		LIMIT 1
	`

	return p.queryOne(ctx, query, originalURL)
}

func (p *PostgresStore) FindByCode(ctx context.Context, code string) (*shortlink.ShortLink, error) {
	query := `
		SELECT id, original_url, short_code, created_at
		FROM short_links
		WHERE short_code = $1
	`

	return p.queryOne(ctx, query, code)
}

func (p *PostgresStore) List(ctx context.Context) ([]*shortlink.ShortLink, error) {
	query := `
		SELECT id, original_url, short_code, created_at
		FROM short_links
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]*shortlink.ShortLink, 0)

	for rows.Next() {
		var link shortlink.ShortLink

		err = rows.Scan(&link.ID, &link.OriginalURL, &link.ShortCode, &link.CreatedAt)
		if err != nil {
			return nil, err
		}

		links = append(links, &link)
	}

	return links, rows.Err()
}

func (p *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM short_links WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortlink.ErrNotFound
	}

	return nil
}

func (p *PostgresStore) queryOne(ctx context.Context, query string, arg any) (*shortlink.ShortLink, error) {
	var link shortlink.ShortLink

	err := p.pool.QueryRow(ctx, query, arg).Scan(
		&link.ID,
		&link.OriginalURL,
		&link.ShortCode,
		&link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortlink.ErrNotFound
		}

		return nil, err
	}

	return &link, nil
}
