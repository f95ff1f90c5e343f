package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RefreshTokenRepository persists issued refresh tokens. Tokens are stored
// as bare strings with no expiry or owning-account linkage.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token string) error
}

type refreshTokenRepository struct {
	pool *pgxpool.Pool
}

// NewRefreshTokenRepository constructs repository.
func NewRefreshTokenRepository(pool *pgxpool.Pool) RefreshTokenRepository {
	return &refreshTokenRepository{pool: pool}
}

func (r *refreshTokenRepository) Create(ctx context.Context, token string) error {
	const query = `
        INSERT INTO refresh_tokens (token)
        VALUES ($1)`
	_, err := r.pool.Exec(ctx, query, token)
	return err
}
