package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"musicapp/internal/models"
	"musicapp/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubMusicRepository struct {
	music []models.Music
	err   error
	calls int
}

func (s *stubMusicRepository) ListAll(context.Context) ([]models.Music, error) {
	s.calls++
	return s.music, s.err
}

func strPtr(s string) *string { return &s }

func serveListMusic(repo repository.MusicRepository, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/music", NewMusicHandler(repo, zap.NewNop()).ListMusic)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/music", strings.NewReader(body))
	r.ServeHTTP(w, req)
	return w
}

func TestListMusic(t *testing.T) {
	t.Run("SingleRecord", func(t *testing.T) {
		repo := &stubMusicRepository{music: []models.Music{{
			ID:       1,
			Title:    strPtr("Song A"),
			URL:      strPtr("http://x/a.mp3"),
			ImageURL: strPtr("http://x/a.png"),
			VideoID:  strPtr("abc123"),
		}}}

		w := serveListMusic(repo, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`[{"id":1,"title":"Song A","url":"http://x/a.mp3","imageUrl":"http://x/a.png","videoId":"abc123"}]`,
			w.Body.String())
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("NullFields", func(t *testing.T) {
		w := serveListMusic(&stubMusicRepository{music: []models.Music{{ID: 7}}}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":7,"title":null,"url":null,"imageUrl":null,"videoId":null}]`, w.Body.String())
	})

	t.Run("EmptyStore", func(t *testing.T) {
		w := serveListMusic(&stubMusicRepository{music: []models.Music{}}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("BodyIgnored", func(t *testing.T) {
		w := serveListMusic(&stubMusicRepository{music: []models.Music{}}, `{"title":"ignored"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("StoreUnavailable", func(t *testing.T) {
		err := fmt.Errorf("list music: %w: %w", repository.ErrStoreUnavailable, errors.New("dial tcp: connection refused"))

		w := serveListMusic(&stubMusicRepository{err: err}, "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
