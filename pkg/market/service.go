package market

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"chainbrief/internal/model"
)

const (
	snapshotCacheKey = "chainbrief:market:snapshot"
	snapshotCacheTTL = 10 * time.Minute
)

// Service assembles market snapshots, with a Redis read-through cache
// in front of the upstream APIs. A nil Redis client or a cache outage
// degrades to a direct fetch.
type Service struct {
	fearGreed *FearGreedClient
	coinGecko *CoinGeckoClient
	cache     *redis.Client
}

func NewService(cache *redis.Client) *Service {
	return &Service{
		fearGreed: NewFearGreedClient(),
		coinGecko: NewCoinGeckoClient(),
		cache:     cache,
	}
}

// Snapshot returns the current market snapshot.
func (s *Service) Snapshot(ctx context.Context) (model.MarketSnapshot, error) {
	if snap, ok := s.fromCache(ctx); ok {
		return snap, nil
	}

	var snap model.MarketSnapshot

	value, label, err := s.fearGreed.Fetch(ctx)
	if err != nil {
		return snap, err
	}
	snap.FearGreedIndex = value
	snap.FearGreedLabel = label

	mcap, volume, dominance, change, err := s.coinGecko.Global(ctx)
	if err != nil {
		return snap, err
	}
	snap.TotalMarketCap = mcap
	snap.Volume24h = volume
	snap.BTCDominance = dominance
	snap.MarketCapChange24h = change

	gainers, losers, err := s.coinGecko.Movers(ctx)
	if err != nil {
		// Movers are optional in the snapshot; the briefing formats
		// them only when present.
		slog.Warn("movers unavailable, snapshot continues without them", "error", err)
	} else {
		snap.TopGainers = gainers
		snap.TopLosers = losers
	}

	s.toCache(ctx, snap)
	return snap, nil
}

func (s *Service) fromCache(ctx context.Context) (model.MarketSnapshot, bool) {
	var snap model.MarketSnapshot
	if s.cache == nil {
		return snap, false
	}

	data, err := s.cache.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("snapshot cache read failed", "error", err)
		}
		return snap, false
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, false
	}
	return snap, true
}

func (s *Service) toCache(ctx context.Context, snap model.MarketSnapshot) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, snapshotCacheKey, data, snapshotCacheTTL).Err(); err != nil {
		slog.Warn("snapshot cache write failed", "error", err)
	}
}
