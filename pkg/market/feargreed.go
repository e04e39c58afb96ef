package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const defaultFearGreedURL = "https://api.alternative.me/fng/?limit=1"

// FearGreedClient reads the crypto Fear & Greed index from
// alternative.me.
type FearGreedClient struct {
	url        string
	httpClient *http.Client
}

func NewFearGreedClient() *FearGreedClient {
	return &FearGreedClient{
		url:        defaultFearGreedURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *FearGreedClient) Fetch(ctx context.Context) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("feargreed fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("feargreed fetch: status %d", resp.StatusCode)
	}

	var raw fngResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, "", fmt.Errorf("feargreed decode: %w", err)
	}
	if len(raw.Data) == 0 {
		return 0, "", fmt.Errorf("feargreed: empty response")
	}

	value, err := strconv.Atoi(raw.Data[0].Value)
	if err != nil {
		return 0, "", fmt.Errorf("feargreed: bad value %q", raw.Data[0].Value)
	}
	return value, raw.Data[0].ValueClassification, nil
}

type fngResponse struct {
	Data []struct {
		Value               string `json:"value"`
		ValueClassification string `json:"value_classification"`
	} `json:"data"`
}
