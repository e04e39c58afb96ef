package news

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"chainbrief/internal/model"
)

const maxDescriptionLen = 300

var (
	imgSrcPattern = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)
	slugPattern   = regexp.MustCompile(`[^a-z0-9]+`)
)

// htmlPolicy strips every element; stripped tags leave a space so
// words in adjacent elements do not run together.
var htmlPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// The sanitizer re-escapes text content, so entities come out encoded
// regardless of how the feed delivered them.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#34;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// CleanDescription strips markup, decodes the common HTML entities,
// collapses whitespace and caps the result at 300 characters. The cap
// is measured in runes so multi-byte text is never split mid-character.
func CleanDescription(raw string) string {
	s := htmlPolicy.Sanitize(raw)
	s = entityReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) <= maxDescriptionLen {
		return s
	}
	return string(runes[:maxDescriptionLen-3]) + "..."
}

type categoryRule struct {
	category string
	keywords []string
}

// Match order is fixed: first hit wins, so the more specific
// categories come before the catch-all news ones.
var categoryRules = []categoryRule{
	{model.CategoryRegulation, []string{
		"sec", "regulation", "regulatory", "lawsuit", "court", "congress",
		"senate", "compliance", "legal", "ban", "sanction",
	}},
	{model.CategoryDefi, []string{
		"defi", "decentralized finance", "yield", "liquidity", "dex",
		"lending protocol", "staking", "tvl",
	}},
	{model.CategoryNFT, []string{
		"nft", "non-fungible", "opensea", "collectible", "ordinals",
	}},
	{model.CategoryBreaking, []string{
		"breaking", "urgent", "hack", "exploit", "crash", "plunge", "surge",
	}},
	{model.CategoryAnalysis, []string{
		"analysis", "prediction", "forecast", "outlook", "technical",
		"price target",
	}},
}

// Categorize derives a category label from keyword matching over the
// lower-cased title and content. Unmatched articles are general.
func Categorize(title, content string) string {
	text := strings.ToLower(title + " " + content)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryGeneral
}

// ArticleID derives a stable identity from the source name and the
// canonical URL. Two runs fetching the same URL from the same source
// produce the same id, so storage upserts stay idempotent. Items
// without a URL fall back to a source-index fingerprint.
func ArticleID(source, url string, index int) string {
	seed := url
	if seed == "" {
		seed = fmt.Sprintf("%s-%d", source, index)
	}
	return sourceSlug(source) + "-" + fingerprint(seed)
}

func fingerprint(seed string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(seed))
	if len(enc) > 12 {
		enc = enc[:12]
	}
	return enc
}

func sourceSlug(source string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(source), "-")
	return strings.Trim(slug, "-")
}

// DedupKey is the collapse key for duplicate articles across sources:
// the normalized URL plus the first 50 characters of the normalized
// title. Same story syndicated under the same URL and title collapses;
// near-duplicates with different titles are intentionally kept.
func DedupKey(a model.Article) string {
	url := strings.ToLower(a.URL)
	if i := strings.Index(url, "?"); i >= 0 {
		url = url[:i]
	}
	url = strings.TrimSuffix(url, "/")

	var b strings.Builder
	for _, r := range strings.ToLower(a.Title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	title := b.String()
	if len(title) > 50 {
		title = title[:50]
	}
	return url + title
}

// ExtractImage returns the first image reference found on a feed item,
// trying enclosures, media extensions, then a scan of the raw content.
func ExtractImage(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return enc.URL
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		for _, field := range []string{"content", "thumbnail"} {
			for _, ext := range media[field] {
				if url := ext.Attrs["url"]; url != "" {
					return url
				}
			}
		}
	}

	for _, html := range []string{item.Content, item.Description} {
		if m := imgSrcPattern.FindStringSubmatch(html); m != nil {
			return m[1]
		}
	}
	return ""
}
