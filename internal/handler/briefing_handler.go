package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chainbrief/internal/model"
)

type BriefingStore interface {
	GetBriefing(date string) (*model.Briefing, error)
	GetLatestBriefing() (*model.Briefing, error)
}

type BriefingHandler struct {
	repository BriefingStore
}

func NewBriefingHandler(repository BriefingStore) *BriefingHandler {
	return &BriefingHandler{repository: repository}
}

func toBriefingResponse(b *model.Briefing) BriefingResponse {
	bullets := b.BulletPoints
	if bullets == nil {
		bullets = []string{}
	}
	return BriefingResponse{
		Title:        b.Title,
		Summary:      b.Summary,
		BulletPoints: bullets,
		Sentiment:    b.Sentiment,
		ModelUsed:    b.ModelUsed,
		GeneratedAt:  b.GeneratedAt.Format(time.RFC3339),
	}
}

func (h *BriefingHandler) GetBriefing(c *gin.Context) {
	date := c.Param("date")

	briefing, err := h.repository.GetBriefing(date)
	if err != nil {
		slog.Error("error fetching briefing", "error", err, "date", date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if briefing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No briefing for date"})
		return
	}

	c.JSON(http.StatusOK, toBriefingResponse(briefing))
}

func (h *BriefingHandler) GetLatestBriefing(c *gin.Context) {
	briefing, err := h.repository.GetLatestBriefing()
	if err != nil {
		slog.Error("error fetching latest briefing", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if briefing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No briefing available"})
		return
	}

	c.JSON(http.StatusOK, toBriefingResponse(briefing))
}
