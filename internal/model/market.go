package model

// Mover is one ranked gaining or losing asset in a market snapshot.
type Mover struct {
	Symbol    string
	Change24h float64
}

// MarketSnapshot holds the aggregate market statistics observed at
// briefing time. It is consumed by the briefing composer, never
// persisted alongside the briefing it fed.
type MarketSnapshot struct {
	FearGreedIndex     int
	FearGreedLabel     string
	BTCDominance       float64
	TotalMarketCap     float64
	Volume24h          float64
	MarketCapChange24h float64
	TopGainers         []Mover
	TopLosers          []Mover
}

// TopGainer returns the highest-ranked gainer, or nil when the
// snapshot carries none.
func (s *MarketSnapshot) TopGainer() *Mover {
	if len(s.TopGainers) == 0 {
		return nil
	}
	return &s.TopGainers[0]
}

// TopLoser returns the highest-ranked loser, or nil when the snapshot
// carries none.
func (s *MarketSnapshot) TopLoser() *Mover {
	if len(s.TopLosers) == 0 {
		return nil
	}
	return &s.TopLosers[0]
}
