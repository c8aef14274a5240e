package archive

import "testing"

func TestResolveSortKey(t *testing.T) {
	tests := []struct {
		input string
		want  SortKey
	}{
		{"latest", SortLatest},
		{"newest", SortLatest},
		{"LATEST", SortLatest},
		{" oldest ", SortOldest},
		{"title", SortTitle},
		{"category", SortCategory},
	}
	for _, tt := range tests {
		got, err := ResolveSortKey(tt.input)
		if err != nil {
			t.Errorf("ResolveSortKey(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveSortKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveSortKeyUnknown(t *testing.T) {
	_, err := ResolveSortKey("signal")
	if err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestSortKeyNextCycles(t *testing.T) {
	k := SortLatest
	seen := map[SortKey]bool{}
	for range AllSortKeys() {
		if seen[k] {
			t.Fatalf("cycle revisited %q before covering all keys", k)
		}
		seen[k] = true
		k = k.Next()
	}
	if k != SortLatest {
		t.Errorf("cycle did not wrap back to latest, got %q", k)
	}
}

func TestSortKeyNextUnknown(t *testing.T) {
	if got := SortKey("bogus").Next(); got != SortLatest {
		t.Errorf("Next on unknown key = %q, want latest", got)
	}
}

func TestSortKeyLabels(t *testing.T) {
	tests := []struct {
		key  SortKey
		want string
	}{
		{SortLatest, "최신순"},
		{SortOldest, "오래된순"},
		{SortTitle, "제목순"},
		{SortCategory, "카테고리순"},
	}
	for _, tt := range tests {
		if got := tt.key.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
