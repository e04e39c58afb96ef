package llm

import (
	"fmt"
	"math"
	"strings"
	"time"

	"chainbrief/internal/model"
)

// FallbackModel tags briefings produced by the rule-based path. It is
// distinct from any real generator identifier so callers can tell the
// paths apart without the record shape differing.
const FallbackModel = "rule-based"

// Fallback derives a complete briefing from the market snapshot alone,
// with no external calls. It is the deterministic substitute for the
// generated briefing and populates every field of the contract.
func Fallback(snap model.MarketSnapshot, now time.Time) model.Briefing {
	change := snap.MarketCapChange24h

	direction := "Up"
	if change < 0 {
		direction = "Down"
	}

	trend := "trading sideways"
	switch {
	case change >= 2:
		trend = "rallying"
	case change <= -2:
		trend = "declining"
	}

	mood := "neutral"
	switch {
	case snap.FearGreedIndex >= 60:
		mood = "optimistic"
	case snap.FearGreedIndex <= 40:
		mood = "cautious"
	}

	title := fmt.Sprintf("Crypto Markets %s %.1f%% - %s",
		direction, math.Abs(change), snap.FearGreedLabel)

	var summary strings.Builder
	fmt.Fprintf(&summary,
		"Crypto markets are %s, with the total market capitalization moving %+.2f%% over the last 24 hours. ",
		trend, change)
	fmt.Fprintf(&summary,
		"The Fear & Greed Index reads %d (%s), pointing to %s sentiment, while Bitcoin dominance sits at %.1f%% on $%.1fB of daily volume",
		snap.FearGreedIndex, snap.FearGreedLabel, mood, snap.BTCDominance, snap.Volume24h/1e9)
	if g := snap.TopGainer(); g != nil {
		fmt.Fprintf(&summary, ", with %s leading gainers at %+.1f%%", g.Symbol, g.Change24h)
	}
	summary.WriteString(".")

	bullets := []string{
		fmt.Sprintf("Fear & Greed Index: %d (%s)", snap.FearGreedIndex, snap.FearGreedLabel),
		fmt.Sprintf("Total market cap: $%.2fT", snap.TotalMarketCap/1e12),
		fmt.Sprintf("BTC dominance: %.1f%%", snap.BTCDominance),
	}
	if g := snap.TopGainer(); g != nil {
		bullets = append(bullets, fmt.Sprintf("Top gainer: %s (%+.1f%%)", g.Symbol, g.Change24h))
	}
	if l := snap.TopLoser(); l != nil {
		bullets = append(bullets, fmt.Sprintf("Top loser: %s (%+.1f%%)", l.Symbol, l.Change24h))
	}

	sentiment := model.SentimentNeutral
	switch {
	case snap.FearGreedIndex >= 55 && change >= 1:
		sentiment = model.SentimentBullish
	case snap.FearGreedIndex <= 45 && change <= -1:
		sentiment = model.SentimentBearish
	}

	return model.Briefing{
		Title:        title,
		Summary:      summary.String(),
		BulletPoints: bullets,
		Sentiment:    sentiment,
		ModelUsed:    FallbackModel,
		GeneratedAt:  now,
	}
}
