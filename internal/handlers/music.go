package handlers

import (
	"net/http"

	"musicapp/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MusicHandler struct {
	repo repository.MusicRepository
	log  *zap.Logger
}

func NewMusicHandler(repo repository.MusicRepository, log *zap.Logger) *MusicHandler {
	return &MusicHandler{repo: repo, log: log}
}

// ListMusic handles GET /music. The request body, if any, is ignored.
func (h *MusicHandler) ListMusic(c *gin.Context) {
	music, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		// Driver details stay in the log.
		h.log.Error("list music failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error fetching music"})
		return
	}
	c.JSON(http.StatusOK, music)
}
