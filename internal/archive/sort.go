package archive

import (
	"fmt"
	"strings"
)

// SortKey selects the ordering applied to a filtered view.
type SortKey string

const (
	SortLatest   SortKey = "latest"
	SortOldest   SortKey = "oldest"
	SortTitle    SortKey = "title"
	SortCategory SortKey = "category"
)

// AllSortKeys returns the valid sort keys in cycle order.
func AllSortKeys() []SortKey {
	return []SortKey{SortLatest, SortOldest, SortTitle, SortCategory}
}

// Label returns the human-readable name shown in the toolbar.
func (k SortKey) Label() string {
	switch k {
	case SortOldest:
		return "오래된순"
	case SortTitle:
		return "제목순"
	case SortCategory:
		return "카테고리순"
	default:
		return "최신순"
	}
}

// Next returns the key that follows k in the cycle order.
func (k SortKey) Next() SortKey {
	keys := AllSortKeys()
	for i, cur := range keys {
		if cur == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return SortLatest
}

// sortAliases maps CLI spellings to sort keys.
var sortAliases = map[string]SortKey{
	"latest":   SortLatest,
	"newest":   SortLatest,
	"oldest":   SortOldest,
	"title":    SortTitle,
	"category": SortCategory,
}

// ResolveSortKey maps a CLI argument to a SortKey.
func ResolveSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if k, ok := sortAliases[s]; ok {
		return k, nil
	}
	valid := make([]string, 0, len(AllSortKeys()))
	for _, k := range AllSortKeys() {
		valid = append(valid, string(k))
	}
	return "", fmt.Errorf("unknown sort %q (valid: %s)", s, strings.Join(valid, ", "))
}
