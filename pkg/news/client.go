package news

import (
	"context"
	"fmt"

	"chainbrief/internal/model"
)

// Source describes one configured feed provider.
type Source struct {
	Name string
	URL  string
	Icon string
}

// Client fetches and normalizes one source's article list. A client
// performs exactly one outbound request per Fetch call and applies no
// retries; retry policy belongs to the caller.
type Client interface {
	Fetch(ctx context.Context, source Source) ([]model.Article, error)
	Name() string
}

// FetchError is one source's transport or parse failure. It is
// non-fatal to an aggregation run: the source is reported and skipped.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
