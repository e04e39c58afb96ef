package news

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"chainbrief/internal/model"
)

const (
	fetchTimeout = 10 * time.Second
	maxItems     = 20
	userAgent    = "chainbrief/1.0"
)

// RSSClient fetches syndication XML feeds. One instance is safe for
// concurrent Fetch calls across sources.
type RSSClient struct {
	parser *gofeed.Parser
}

func NewRSSClient() *RSSClient {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: fetchTimeout}
	return &RSSClient{parser: parser}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

func (c *RSSClient) Fetch(ctx context.Context, source Source) ([]model.Article, error) {
	feed, err := c.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, &FetchError{Source: source.Name, Err: err}
	}

	now := time.Now().UTC()
	items := feed.Items
	if len(items) > maxItems {
		items = items[:maxItems]
	}

	articles := make([]model.Article, 0, len(items))
	for i, item := range items {
		pub := now
		if item.PublishedParsed != nil {
			pub = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			pub = item.UpdatedParsed.UTC()
		}

		raw := item.Description
		if raw == "" {
			raw = item.Content
		}

		author := ""
		if item.Author != nil {
			author = item.Author.Name
		}

		articles = append(articles, model.Article{
			ID:          ArticleID(source.Name, item.Link, i),
			Title:       item.Title,
			Description: CleanDescription(raw),
			URL:         item.Link,
			Source:      source.Name,
			SourceIcon:  source.Icon,
			Category:    Categorize(item.Title, raw),
			ImageURL:    ExtractImage(item),
			Author:      author,
			PublishedAt: pub,
			FetchedAt:   now,
		})
	}
	return articles, nil
}
