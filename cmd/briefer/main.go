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
	"chainbrief/pkg/llm"
	"chainbrief/pkg/market"
)

const briefingArticles = 15

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

	date := os.Getenv("BRIEF_DATE")
	if date == "" {
		queued, err := db.PopFromQueue(db.BriefingQueueKey, 5*time.Second)
		if err != nil {
			slog.Error("error reading briefing queue", "error", err)
		}
		date = queued
	}
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	articleRepo := repository.NewArticleRepository(db.DB)
	briefingRepo := repository.NewBriefingRepository(db.DB)

	articles, err := articleRepo.GetArticles(date, briefingArticles)
	if err != nil {
		log.Fatalf("error fetching articles for briefing: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	snapshot, err := market.NewService(db.Redis).Snapshot(ctx)
	if err != nil {
		log.Fatalf("error fetching market snapshot: %v", err)
	}

	composer := llm.NewComposer(llm.NewGeneratorFromEnv)
	briefing := composer.Compose(ctx, articles, snapshot)

	if err := briefingRepo.SaveBriefing(date, &briefing); err != nil {
		log.Fatalf("error saving briefing: %v", err)
	}

	slog.Info("briefing saved",
		"date", date,
		"model", briefing.ModelUsed,
		"sentiment", briefing.Sentiment,
		"articles", len(articles))
}
