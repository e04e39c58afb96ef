package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"chainbrief/internal/model"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (g *fakeGenerator) Model() string { return "fake-model" }

func (g *fakeGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func testArticles(n int) []model.Article {
	articles := make([]model.Article, n)
	for i := range articles {
		articles[i] = model.Article{
			Title:       "Story " + string(rune('A'+i)),
			Source:      "Feed",
			PublishedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		}
	}
	return articles
}

func TestComposePrimaryPath(t *testing.T) {
	gen := &fakeGenerator{response: wellFormedResponse}
	composer := NewComposer(func() (Generator, error) { return gen, nil })

	b := composer.Compose(context.Background(), testArticles(3), snapshot(70, "Greed", 2))

	assert.Equal(t, "Markets Steady as ETF Flows Continue", b.Title)
	assert.Equal(t, "fake-model", b.ModelUsed)
	assert.Equal(t, model.SentimentBullish, b.Sentiment)
	assert.Equal(t, 3, len(b.BulletPoints))
	assert.Equal(t, false, b.GeneratedAt.IsZero())
}

func TestComposeGenerationFailureFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("api timeout")}
	composer := NewComposer(func() (Generator, error) { return gen, nil })

	b := composer.Compose(context.Background(), testArticles(3), snapshot(30, "Fear", -3))

	assert.Equal(t, FallbackModel, b.ModelUsed)
	assert.Equal(t, model.SentimentBearish, b.Sentiment)
	assert.NotEqual(t, "", b.Title)
	assert.NotEqual(t, "", b.Summary)
}

func TestComposeEmptyResponseFallsBack(t *testing.T) {
	gen := &fakeGenerator{response: ""}
	composer := NewComposer(func() (Generator, error) { return gen, nil })

	b := composer.Compose(context.Background(), testArticles(3), snapshot(30, "Fear", -3))

	assert.Equal(t, FallbackModel, b.ModelUsed)
	assert.NotEqual(t, "", b.Summary)
}

func TestComposeWhitespaceResponseFallsBack(t *testing.T) {
	gen := &fakeGenerator{response: "  \n\t "}
	composer := NewComposer(func() (Generator, error) { return gen, nil })

	b := composer.Compose(context.Background(), testArticles(3), snapshot(50, "Neutral", 0))

	assert.Equal(t, FallbackModel, b.ModelUsed)
}

func TestComposeNotConfiguredFallsBack(t *testing.T) {
	composer := NewComposer(func() (Generator, error) { return nil, ErrNotConfigured })

	b := composer.Compose(context.Background(), testArticles(1), snapshot(50, "Neutral", 0))

	assert.Equal(t, FallbackModel, b.ModelUsed)
	assert.Equal(t, model.SentimentNeutral, b.Sentiment)
}

func TestComposeConstructsGeneratorOnce(t *testing.T) {
	gen := &fakeGenerator{response: wellFormedResponse}
	factoryCalls := 0
	composer := NewComposer(func() (Generator, error) {
		factoryCalls++
		return gen, nil
	})

	composer.Compose(context.Background(), testArticles(1), snapshot(50, "Neutral", 0))
	composer.Compose(context.Background(), testArticles(1), snapshot(50, "Neutral", 0))

	assert.Equal(t, 1, factoryCalls)
	assert.Equal(t, 2, gen.calls)
}

func TestComposeCapsPromptHeadlines(t *testing.T) {
	gen := &fakeGenerator{response: wellFormedResponse}
	composer := NewComposer(func() (Generator, error) { return gen, nil })

	composer.Compose(context.Background(), testArticles(20), snapshot(50, "Neutral", 0))

	prompt := gen.prompts[0]
	assert.Equal(t, true, strings.Contains(prompt, "15. [Feed]"))
	assert.Equal(t, false, strings.Contains(prompt, "16. [Feed]"))
}

func TestComposeMalformedResponseStillSatisfiesContract(t *testing.T) {
	gen := &fakeGenerator{response: "free-form prose with no sections at all"}
	composer := NewComposer(func() (Generator, error) { return gen, nil })

	b := composer.Compose(context.Background(), testArticles(2), snapshot(50, "Neutral", 0))

	assert.Equal(t, DefaultTitle, b.Title)
	assert.NotEqual(t, "", b.Summary)
	assert.Equal(t, model.SentimentNeutral, b.Sentiment)
	assert.Equal(t, 0, len(b.BulletPoints))
	assert.Equal(t, "fake-model", b.ModelUsed)
}
