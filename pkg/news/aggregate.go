package news

import (
	"context"
	"sort"
	"sync"

	"chainbrief/internal/model"
)

// Feed binds a source descriptor to the client able to fetch it.
type Feed struct {
	Client Client
	Source Source
}

// DefaultFeeds returns the default RSS sources bound to a shared RSS
// client.
func DefaultFeeds() []Feed {
	client := NewRSSClient()
	feeds := make([]Feed, 0, len(DefaultSources))
	for _, src := range DefaultSources {
		feeds = append(feeds, Feed{Client: client, Source: src})
	}
	return feeds
}

// Result is the settled outcome of one aggregation run. Failures hold
// the per-source errors of the feeds that did not contribute.
type Result struct {
	Articles []model.Article
	Failures []*FetchError
}

// Aggregate fetches every feed concurrently, waits for all of them to
// settle, then merges, deduplicates and sorts the successful batches.
// One feed failing never aborts the others; a run where every source
// fails yields an empty article list, not an error. Each goroutine
// writes only its own slot, so merging stays single-threaded after the
// fan-in.
func Aggregate(ctx context.Context, feeds []Feed) Result {
	batches := make([][]model.Article, len(feeds))
	errs := make([]error, len(feeds))

	var wg sync.WaitGroup
	for i, feed := range feeds {
		wg.Add(1)
		go func(i int, f Feed) {
			defer wg.Done()
			batches[i], errs[i] = f.Client.Fetch(ctx, f.Source)
		}(i, feed)
	}
	wg.Wait()

	var result Result
	for i := range feeds {
		if errs[i] != nil {
			result.Failures = append(result.Failures, asFetchError(feeds[i].Source.Name, errs[i]))
			continue
		}
		result.Articles = append(result.Articles, batches[i]...)
	}

	result.Articles = dedupe(result.Articles)

	sort.SliceStable(result.Articles, func(a, b int) bool {
		return result.Articles[a].PublishedAt.After(result.Articles[b].PublishedAt)
	})
	return result
}

// dedupe keeps the first article seen per dedup key, in merge order.
func dedupe(articles []model.Article) []model.Article {
	seen := make(map[string]struct{}, len(articles))
	out := articles[:0]
	for _, a := range articles {
		key := DedupKey(a)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}

func asFetchError(source string, err error) *FetchError {
	if fe, ok := err.(*FetchError); ok {
		return fe
	}
	return &FetchError{Source: source, Err: err}
}
