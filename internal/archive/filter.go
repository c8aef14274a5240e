package archive

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll matches every post regardless of category.
const CategoryAll = "all"

// Query describes one filtered, ordered view over the archive.
type Query struct {
	Search   string
	Category string
	Sort     SortKey
}

// NewQuery returns the default view: everything, newest first.
func NewQuery() Query {
	return Query{Category: CategoryAll, Sort: SortLatest}
}

// NewCollator returns the collator used for title and category
// ordering. Korean collation also orders Latin text sensibly, so one
// collator covers the whole archive.
func NewCollator() *collate.Collator {
	return collate.New(language.Korean)
}

// matches reports whether p satisfies the search and category terms of
// q. Both conditions must hold.
func (q Query) matches(p Post) bool {
	if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		haystack := strings.ToLower(p.Title + " " + p.Summary + " " + p.Body)
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

// Filter returns the posts matching q, ordered by q.Sort. The input
// slice is not modified. Ties keep their incoming order.
func Filter(posts []Post, q Query, c *collate.Collator) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if q.matches(p) {
			out = append(out, p)
		}
	}

	switch q.Sort {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CollectedAt().Before(out[j].CollectedAt())
		})
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortCategory:
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Category, out[j].Category) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CollectedAt().After(out[j].CollectedAt())
		})
	}
	return out
}

// Categories returns the distinct categories present in posts, in
// collated order. Posts with an empty category are skipped.
func Categories(posts []Post, c *collate.Collator) []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, p := range posts {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cats = append(cats, p.Category)
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return c.CompareString(cats[i], cats[j]) < 0
	})
	return cats
}
