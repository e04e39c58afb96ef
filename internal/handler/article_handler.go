package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"chainbrief/internal/model"
)

type ArticleStore interface {
	GetArticles(date string, limit int) ([]model.Article, error)
	GetAvailableDates(limit int) ([]string, error)
}

type ArticleHandler struct {
	repository ArticleStore
}

func NewArticleHandler(repository ArticleStore) *ArticleHandler {
	return &ArticleHandler{repository: repository}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	limit := getQueryLimit(c)

	date := c.Query("date")
	if date == "" {
		dates, err := h.repository.GetAvailableDates(1)
		if err != nil {
			slog.Error("error fetching dates", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if len(dates) == 0 {
			c.JSON(http.StatusOK, ArticlesResponse{Articles: []ArticleResponse{}, Limit: limit})
			return
		}
		date = dates[0]
	}

	articles, err := h.repository.GetArticles(date, limit)
	if err != nil {
		slog.Error("error fetching articles", "error", err, "date", date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := ArticlesResponse{
		Date:     date,
		Articles: make([]ArticleResponse, 0, len(articles)),
		Count:    len(articles),
		Limit:    limit,
	}
	for _, a := range articles {
		res.Articles = append(res.Articles, ArticleResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source,
			SourceIcon:  a.SourceIcon,
			Category:    a.Category,
			ImageURL:    a.ImageURL,
			Author:      a.Author,
			PublishedAt: a.PublishedAt.Format(time.RFC3339),
			FetchedAt:   a.FetchedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetDates(c *gin.Context) {
	limit := getQueryLimit(c)

	dates, err := h.repository.GetAvailableDates(limit)
	if err != nil {
		slog.Error("error fetching dates", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if dates == nil {
		dates = []string{}
	}
	c.JSON(http.StatusOK, DatesResponse{Dates: dates})
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetAvailableDates(1)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 50
		maxLimit     = 200
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
