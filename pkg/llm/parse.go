package llm

import (
	"strings"

	"chainbrief/internal/model"
)

// DefaultTitle is used when the generated response carries no TITLE
// section.
const DefaultTitle = "Daily Crypto Briefing"

type section int

const (
	sectionNone section = iota
	sectionSummary
	sectionBullets
)

type parsedResponse struct {
	Title        string
	Summary      string
	BulletPoints []string
	Sentiment    string
}

// parseResponse extracts the briefing sections from a loosely
// formatted generated response. Each field has a defined
// absence rule: no TITLE falls back to DefaultTitle, no SUMMARY falls
// back to the first 500 characters of the raw text, no BULLET_POINTS
// yields an empty list and no recognizable SENTIMENT defaults to
// neutral. The result always satisfies the briefing contract.
func parseResponse(raw string) parsedResponse {
	p := parsedResponse{BulletPoints: []string{}}

	var summaryLines []string
	state := sectionNone

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "TITLE:"):
			p.Title = strings.TrimSpace(strings.TrimPrefix(line, "TITLE:"))
			state = sectionNone
		case strings.HasPrefix(line, "SUMMARY:"):
			if rest := strings.TrimSpace(strings.TrimPrefix(line, "SUMMARY:")); rest != "" {
				summaryLines = append(summaryLines, rest)
			}
			state = sectionSummary
		case strings.HasPrefix(line, "BULLET_POINTS:"):
			state = sectionBullets
		case strings.HasPrefix(line, "SENTIMENT:"):
			p.Sentiment = parseSentiment(strings.TrimPrefix(line, "SENTIMENT:"))
			state = sectionNone
		case state == sectionSummary:
			summaryLines = append(summaryLines, line)
		case state == sectionBullets && strings.HasPrefix(line, "-"):
			if bullet := strings.TrimSpace(strings.TrimPrefix(line, "-")); bullet != "" {
				p.BulletPoints = append(p.BulletPoints, bullet)
			}
		}
	}

	p.Summary = strings.TrimSpace(strings.Join(summaryLines, "\n"))

	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Summary == "" {
		p.Summary = headOfText(raw, 500)
	}
	if p.Sentiment == "" {
		p.Sentiment = model.SentimentNeutral
	}
	return p
}

func parseSentiment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, model.SentimentBullish):
		return model.SentimentBullish
	case strings.Contains(s, model.SentimentBearish):
		return model.SentimentBearish
	case strings.Contains(s, model.SentimentNeutral):
		return model.SentimentNeutral
	}
	return ""
}

func headOfText(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
