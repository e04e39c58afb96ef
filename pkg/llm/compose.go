package llm

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"chainbrief/internal/model"
)

// Composer turns articles plus a market snapshot into exactly one
// briefing. The generator is constructed lazily on first use, guarded
// so concurrent composes never race to create two clients. Compose
// never fails: any primary-path error falls through to the rule-based
// path.
type Composer struct {
	factory func() (Generator, error)

	once   sync.Once
	gen    Generator
	genErr error
}

// NewComposer builds a composer around a generator factory. Use
// NewGeneratorFromEnv as the factory in production; tests inject their
// own.
func NewComposer(factory func() (Generator, error)) *Composer {
	return &Composer{factory: factory}
}

func (c *Composer) generator() (Generator, error) {
	c.once.Do(func() {
		c.gen, c.genErr = c.factory()
	})
	return c.gen, c.genErr
}

// Compose produces one briefing for the given articles and snapshot.
func (c *Composer) Compose(ctx context.Context, articles []model.Article, snap model.MarketSnapshot) model.Briefing {
	now := time.Now().UTC()

	gen, err := c.generator()
	if err != nil {
		slog.Warn("generator unavailable, using rule-based briefing", "error", err)
		return Fallback(snap, now)
	}

	text, err := gen.Complete(ctx, BuildPrompt(articles, snap))
	if err != nil {
		slog.Error("generation failed, using rule-based briefing", "model", gen.Model(), "error", err)
		return Fallback(snap, now)
	}
	if strings.TrimSpace(text) == "" {
		slog.Error("empty generation response, using rule-based briefing", "model", gen.Model())
		return Fallback(snap, now)
	}

	parsed := parseResponse(text)
	return model.Briefing{
		Title:        parsed.Title,
		Summary:      parsed.Summary,
		BulletPoints: parsed.BulletPoints,
		Sentiment:    parsed.Sentiment,
		ModelUsed:    gen.Model(),
		GeneratedAt:  now,
	}
}
