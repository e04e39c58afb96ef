package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"chainbrief/db"
	"chainbrief/internal/repository"
	"chainbrief/pkg/news"
)

// runTimeout bounds one whole aggregation run; individual sources are
// already capped by the client's fetch timeout.
const runTimeout = 60 * time.Second

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("error migrating DB: %v", err)
	}

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	feeds := news.DefaultFeeds()
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		feeds = append(feeds, news.Feed{
			Client: news.NewFinnhubClient(key),
			Source: news.Source{Name: "Finnhub", Icon: "https://finnhub.io/favicon.ico"},
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	result := news.Aggregate(ctx, feeds)

	for _, failure := range result.Failures {
		slog.Error("source failed", "source", failure.Source, "error", failure.Err)
	}

	date := time.Now().UTC().Format("2006-01-02")

	repo := repository.NewArticleRepository(db.DB)
	if err := repo.ReplaceArticles(date, result.Articles); err != nil {
		log.Fatalf("error storing articles: %v", err)
	}

	if err := db.PushToQueue(db.BriefingQueueKey, date); err != nil {
		slog.Error("error queueing briefing run", "error", err, "date", date)
	}

	slog.Info("fetch complete",
		"date", date,
		"articles", len(result.Articles),
		"sources", len(feeds),
		"failed_sources", len(result.Failures))
}
