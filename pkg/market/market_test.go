package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFearGreedFetch(t *testing.T) {
	payload := map[string]interface{}{
		"data": []map[string]interface{}{
			{"value": "72", "value_classification": "Greed"},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &FearGreedClient{url: srv.URL, httpClient: srv.Client()}

	value, label, err := client.Fetch(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 72, value)
	assert.Equal(t, "Greed", label)
}

func TestFearGreedEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := &FearGreedClient{url: srv.URL, httpClient: srv.Client()}

	_, _, err := client.Fetch(context.Background())
	assert.NotEqual(t, nil, err)
}

func TestCoinGeckoGlobal(t *testing.T) {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"total_market_cap":                     map[string]float64{"usd": 3.24e12},
			"total_volume":                         map[string]float64{"usd": 142.7e9},
			"market_cap_percentage":                map[string]float64{"btc": 52.3},
			"market_cap_change_percentage_24h_usd": 1.25,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &CoinGeckoClient{baseURL: srv.URL, httpClient: srv.Client()}

	mcap, volume, dominance, change, err := client.Global(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 3.24e12, mcap)
	assert.Equal(t, 142.7e9, volume)
	assert.Equal(t, 52.3, dominance)
	assert.Equal(t, 1.25, change)
}

func moversServer(t *testing.T, payload []map[string]interface{}) *CoinGeckoClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return &CoinGeckoClient{baseURL: srv.URL, httpClient: srv.Client()}
}

func coin(symbol string, change float64) map[string]interface{} {
	return map[string]interface{}{"symbol": symbol, "price_change_percentage_24h": change}
}

func TestCoinGeckoMovers(t *testing.T) {
	client := moversServer(t, []map[string]interface{}{
		coin("ada", -4.1),
		coin("sol", 8.3),
		coin("btc", 0.5),
		coin("eth", 2.1),
		coin("dot", -1.7),
		coin("xrp", 5.0),
		coin("ltc", -0.2),
		{"symbol": "new"},
	})

	gainers, losers, err := client.Movers(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(gainers))
	assert.Equal(t, 3, len(losers))
	assert.Equal(t, "SOL", gainers[0].Symbol)
	assert.Equal(t, 8.3, gainers[0].Change24h)
	assert.Equal(t, "ADA", losers[0].Symbol)
	assert.Equal(t, -4.1, losers[0].Change24h)
}

func TestCoinGeckoMoversSparseDataStaysDisjoint(t *testing.T) {
	client := moversServer(t, []map[string]interface{}{
		coin("sol", 8.3),
		coin("btc", 0.5),
		coin("ada", -4.1),
		coin("eth", 2.1),
	})

	gainers, losers, err := client.Movers(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(gainers))
	assert.Equal(t, 2, len(losers))

	seen := map[string]bool{}
	for _, m := range gainers {
		seen[m.Symbol] = true
	}
	for _, m := range losers {
		assert.Equal(t, false, seen[m.Symbol])
	}
}

func TestCoinGeckoUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := &CoinGeckoClient{baseURL: srv.URL, httpClient: srv.Client()}

	_, _, _, _, err := client.Global(context.Background())
	assert.NotEqual(t, nil, err)
}
