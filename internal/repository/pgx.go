package repository

import (
	"context"
	"fmt"

	"musicapp/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listMusicQuery = `
	SELECT id, title, url, image_url, video_id
	FROM music
`

type PgxMusicRepository struct {
	pool *pgxpool.Pool
}

func NewPgxMusicRepository(pool *pgxpool.Pool) *PgxMusicRepository {
	return &PgxMusicRepository{pool: pool}
}

func (r *PgxMusicRepository) ListAll(ctx context.Context) ([]models.Music, error) {
	rows, err := r.pool.Query(ctx, listMusicQuery)
	if err != nil {
		return nil, fmt.Errorf("list music: %w: %w", ErrStoreUnavailable, err)
	}
	music, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Music])
	if err != nil {
		return nil, fmt.Errorf("scan music: %w: %w", ErrStoreUnavailable, err)
	}
	if music == nil {
		music = make([]models.Music, 0)
	}
	return music, nil
}
