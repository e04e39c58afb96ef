package model

import "time"

const (
	CategoryBreaking   = "breaking"
	CategoryAnalysis   = "analysis"
	CategoryRegulation = "regulation"
	CategoryDefi       = "defi"
	CategoryNFT        = "nft"
	CategoryGeneral    = "general"
)

// Article is one normalized news item produced by an aggregation run.
// Articles are immutable once produced; a run always builds a fresh
// batch and replaces the stored set for its date.
type Article struct {
	ID          string
	Title       string
	Description string
	URL         string
	Source      string
	SourceIcon  string
	Category    string
	ImageURL    string
	Author      string
	PublishedAt time.Time
	FetchedAt   time.Time
}
