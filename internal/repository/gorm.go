package repository

import (
	"context"
	"fmt"

	"musicapp/internal/models"

	"gorm.io/gorm"
)

type GormMusicRepository struct {
	db *gorm.DB
}

func NewGormMusicRepository(db *gorm.DB) *GormMusicRepository {
	return &GormMusicRepository{db: db}
}

func (r *GormMusicRepository) ListAll(ctx context.Context) ([]models.Music, error) {
	music := make([]models.Music, 0)
	if err := r.db.WithContext(ctx).Find(&music).Error; err != nil {
		return nil, fmt.Errorf("list music: %w: %w", ErrStoreUnavailable, err)
	}
	return music, nil
}
