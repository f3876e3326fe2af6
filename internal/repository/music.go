package repository

import (
	"context"
	"errors"

	"musicapp/internal/models"
)

// ErrStoreUnavailable is wrapped into every error caused by the backing store.
var ErrStoreUnavailable = errors.New("music store unavailable")

// MusicRepository is the read-only view of the music table.
type MusicRepository interface {
	// ListAll returns every record in store order. An empty table yields an
	// empty, non-nil slice.
	ListAll(ctx context.Context) ([]models.Music, error)
}
