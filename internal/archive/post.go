package archive

import "time"

// Post is one archived news article as emitted by the collector
// pipeline. String timestamp fields are kept verbatim so malformed
// values degrade per field instead of failing the whole decode.
type Post struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Summary            string `json:"summary"`
	Body               string `json:"body"`
	AISummary          string `json:"ai_summary"`
	Thumbnail          string `json:"thumbnail"`
	ScrapedBody        string `json:"scraped_body"`
	URL                string `json:"url"`
	Category           string `json:"category"`
	ArticlePublishedAt string `json:"article_published_at"`
	FetchedAt          string `json:"fetched_at"`
	PublishedAt        string `json:"published_at"`
	ArchivedAt         string `json:"archived_at"`
}

// timeLayouts covers the formats the collector has produced over time:
// Python isoformat with and without offset, plus date-only rows from
// early archives.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a collector timestamp. Empty or unparseable values
// return the Unix epoch so broken rows sort to the oldest end instead
// of being dropped.
func ParseTime(s string) time.Time {
	if s == "" {
		return time.Unix(0, 0).UTC()
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// CollectedAt returns the best available collection timestamp,
// preferring fetched_at, then archived_at, then the article's own
// publication fields.
func (p Post) CollectedAt() time.Time {
	for _, s := range []string{p.FetchedAt, p.ArchivedAt, p.ArticlePublishedAt, p.PublishedAt} {
		if s != "" {
			return ParseTime(s)
		}
	}
	return time.Unix(0, 0).UTC()
}

// PublishedDate returns the article's original publication timestamp
// string, preferring article_published_at over published_at. Empty
// when neither is set.
func (p Post) PublishedDate() string {
	if p.ArticlePublishedAt != "" {
		return p.ArticlePublishedAt
	}
	return p.PublishedAt
}

// FindByID returns the post with the given id, or false when no such
// post exists. IDs are opaque strings assigned by the collector.
func FindByID(posts []Post, id string) (Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}
