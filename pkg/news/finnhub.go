package news

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"chainbrief/internal/model"
)

// FinnhubClient pulls crypto market news from the Finnhub API. It
// implements the same Client contract as the RSS client, so the
// aggregator treats it as just another source; the source URL is
// ignored because the endpoint is fixed by the SDK.
type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnhubClient{client: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) Fetch(ctx context.Context, source Source) ([]model.Article, error) {
	res, _, err := c.client.MarketNews(ctx).Category("crypto").Execute()
	if err != nil {
		return nil, &FetchError{Source: source.Name, Err: err}
	}

	now := time.Now().UTC()
	if len(res) > maxItems {
		res = res[:maxItems]
	}

	articles := make([]model.Article, 0, len(res))
	for i, item := range res {
		a := model.Article{
			Source:     source.Name,
			SourceIcon: source.Icon,
			FetchedAt:  now,
		}

		if item.Headline != nil {
			a.Title = *item.Headline
		}
		if item.Summary != nil {
			a.Description = CleanDescription(*item.Summary)
		}
		if item.Url != nil {
			a.URL = *item.Url
		}
		if item.Image != nil {
			a.ImageURL = *item.Image
		}
		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0).UTC()
		} else {
			a.PublishedAt = now
		}

		a.ID = ArticleID(source.Name, a.URL, i)
		a.Category = Categorize(a.Title, a.Description)
		articles = append(articles, a)
	}
	return articles, nil
}
