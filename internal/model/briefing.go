package model

import "time"

const (
	SentimentBullish = "bullish"
	SentimentBearish = "bearish"
	SentimentNeutral = "neutral"
)

// Briefing is one generated market summary for a date. The record
// shape is identical whether the LLM path or the rule-based fallback
// produced it; only ModelUsed tells them apart.
type Briefing struct {
	Title        string
	Summary      string
	BulletPoints []string
	Sentiment    string
	ModelUsed    string
	GeneratedAt  time.Time
}

// ValidSentiment reports whether s is one of the three allowed values.
func ValidSentiment(s string) bool {
	return s == SentimentBullish || s == SentimentBearish || s == SentimentNeutral
}
