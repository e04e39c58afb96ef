package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"chainbrief/internal/model"
)

type fakeArticleStore struct {
	articles map[string][]model.Article
	dates    []string
	err      error
}

func (f *fakeArticleStore) GetArticles(date string, limit int) ([]model.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	articles := f.articles[date]
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (f *fakeArticleStore) GetAvailableDates(limit int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.dates) > limit {
		return f.dates[:limit], nil
	}
	return f.dates, nil
}

func newTestArticleRouter(store ArticleStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewArticleHandler(store)
	r.GET("/articles", h.GetArticles)
	r.GET("/dates", h.GetDates)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetArticles_DBError(t *testing.T) {
	r := newTestArticleRouter(&fakeArticleStore{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?date=2026-02-26", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetArticles_EmptyStore(t *testing.T) {
	r := newTestArticleRouter(&fakeArticleStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticlesResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 0, len(res.Articles))
}

func TestGetArticles_DefaultsToLatestDate(t *testing.T) {
	now := time.Date(2026, 2, 26, 10, 0, 0, 0, time.UTC)
	store := &fakeArticleStore{
		dates: []string{"2026-02-26", "2026-02-25"},
		articles: map[string][]model.Article{
			"2026-02-26": {
				{ID: "coindesk-abc", Title: "Latest story", Source: "CoinDesk",
					Category: model.CategoryGeneral, PublishedAt: now, FetchedAt: now},
			},
		},
	}

	r := newTestArticleRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticlesResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "2026-02-26", res.Date)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "Latest story", res.Articles[0].Title)
}

func TestGetArticles_ExplicitDate(t *testing.T) {
	now := time.Now().UTC()
	store := &fakeArticleStore{
		articles: map[string][]model.Article{
			"2026-02-25": {
				{ID: "a", Title: "Older story", PublishedAt: now, FetchedAt: now},
			},
		},
	}

	r := newTestArticleRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?date=2026-02-25", nil)
	r.ServeHTTP(w, req)

	var res ArticlesResponse
	json.Unmarshal(w.Body.Bytes(), &res)

	assert.Equal(t, "2026-02-25", res.Date)
	assert.Equal(t, 1, len(res.Articles))
}

func TestGetDates(t *testing.T) {
	store := &fakeArticleStore{dates: []string{"2026-02-26", "2026-02-25", "2026-02-24"}}

	r := newTestArticleRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dates", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res DatesResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 3, len(res.Dates))
	assert.Equal(t, "2026-02-26", res.Dates[0])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r := newTestArticleRouter(&fakeArticleStore{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetHealth_Healthy(t *testing.T) {
	r := newTestArticleRouter(&fakeArticleStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
