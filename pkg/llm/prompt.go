package llm

import (
	"fmt"
	"strings"

	"chainbrief/internal/model"
)

// maxHeadlines caps how many articles go into the prompt.
const maxHeadlines = 15

const promptHeader = `You are a crypto market analyst writing a daily briefing. Summarize today's news and market data for a general audience.

Today's headlines:
`

const promptInstructions = `
Respond EXACTLY in this format:
TITLE: <short headline for the briefing, max 80 chars>
SUMMARY: <2-3 paragraphs of prose covering the key stories and market context>
BULLET_POINTS:
- <key takeaway>
- <key takeaway>
- <key takeaway>
SENTIMENT: <one of: bullish, bearish, neutral>`

// BuildPrompt assembles the generation prompt from the most recent
// articles and the market snapshot. Market lines follow fixed numeric
// formats so the model sees stable, comparable figures day to day.
func BuildPrompt(articles []model.Article, snap model.MarketSnapshot) string {
	if len(articles) > maxHeadlines {
		articles = articles[:maxHeadlines]
	}

	var b strings.Builder
	b.WriteString(promptHeader)
	for i, a := range articles {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, a.Source, a.Title)
	}

	b.WriteString("\nMarket data:\n")
	fmt.Fprintf(&b, "- Fear & Greed Index: %d (%s)\n", snap.FearGreedIndex, snap.FearGreedLabel)
	fmt.Fprintf(&b, "- BTC Dominance: %.1f%%\n", snap.BTCDominance)
	fmt.Fprintf(&b, "- Total Market Cap: $%.2fT\n", snap.TotalMarketCap/1e12)
	fmt.Fprintf(&b, "- 24h Volume: $%.1fB\n", snap.Volume24h/1e9)
	fmt.Fprintf(&b, "- 24h Market Cap Change: %+.2f%%\n", snap.MarketCapChange24h)
	if g := snap.TopGainer(); g != nil {
		fmt.Fprintf(&b, "- Top Gainer: %s (%+.1f%%)\n", g.Symbol, g.Change24h)
	}
	if l := snap.TopLoser(); l != nil {
		fmt.Fprintf(&b, "- Top Loser: %s (%+.1f%%)\n", l.Symbol, l.Change24h)
	}

	b.WriteString(promptInstructions)
	return b.String()
}
