package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"chainbrief/internal/model"
)

const defaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

const moverCount = 3

// CoinGeckoClient reads global market statistics and the day's top
// movers from the CoinGecko public API.
type CoinGeckoClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCoinGeckoClient() *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL:    defaultCoinGeckoURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Global returns total market cap, 24h volume, BTC dominance and the
// 24h market cap change.
func (c *CoinGeckoClient) Global(ctx context.Context) (mcap, volume, dominance, change float64, err error) {
	var raw globalResponse
	if err = c.get(ctx, c.baseURL+"/global", &raw); err != nil {
		return 0, 0, 0, 0, err
	}
	return raw.Data.TotalMarketCap["usd"],
		raw.Data.TotalVolume["usd"],
		raw.Data.MarketCapPercentage["btc"],
		raw.Data.MarketCapChange24h,
		nil
}

// Movers returns the top gaining and losing assets among the largest
// coins by market cap, ranked by 24h change.
func (c *CoinGeckoClient) Movers(ctx context.Context) (gainers, losers []model.Mover, err error) {
	url := c.baseURL + "/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=100&page=1&price_change_percentage=24h"

	var raw []marketCoin
	if err = c.get(ctx, url, &raw); err != nil {
		return nil, nil, err
	}

	movers := make([]model.Mover, 0, len(raw))
	for _, coin := range raw {
		if coin.PriceChange24h == nil {
			continue
		}
		movers = append(movers, model.Mover{
			Symbol:    strings.ToUpper(coin.Symbol),
			Change24h: *coin.PriceChange24h,
		})
	}

	sort.SliceStable(movers, func(i, j int) bool {
		return movers[i].Change24h > movers[j].Change24h
	})

	// Gainers and losers come from opposite ends of the ranking and
	// must stay disjoint when few coins carry change data.
	n := moverCount
	if n*2 > len(movers) {
		n = len(movers) / 2
	}
	gainers = append(gainers, movers[:n]...)
	for i := 0; i < n; i++ {
		losers = append(losers, movers[len(movers)-1-i])
	}
	return gainers, losers, nil
}

func (c *CoinGeckoClient) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("coingecko fetch: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("coingecko decode: %w", err)
	}
	return nil
}

type globalResponse struct {
	Data struct {
		TotalMarketCap      map[string]float64 `json:"total_market_cap"`
		TotalVolume         map[string]float64 `json:"total_volume"`
		MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
		MarketCapChange24h  float64            `json:"market_cap_change_percentage_24h_usd"`
	} `json:"data"`
}

type marketCoin struct {
	Symbol         string   `json:"symbol"`
	PriceChange24h *float64 `json:"price_change_percentage_24h"`
}
