package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckNewerVersion(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, `{"tag_name": "v1.2.0"}`)

	res := checkAt(context.Background(), srv.URL, "1.1.0")
	if res == nil {
		t.Fatal("expected a result for a newer release")
	}
	if res.LatestVersion != "1.2.0" {
		t.Errorf("LatestVersion = %q, want 1.2.0", res.LatestVersion)
	}
}

func TestCheckSameVersion(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, `{"tag_name": "v1.1.0"}`)

	if res := checkAt(context.Background(), srv.URL, "v1.1.0"); res != nil {
		t.Errorf("expected nil for current version, got %+v", res)
	}
}

func TestCheckErrorsAreSilent(t *testing.T) {
	srv := releaseServer(t, http.StatusForbidden, `rate limited`)

	if res := checkAt(context.Background(), srv.URL, "1.0.0"); res != nil {
		t.Errorf("expected nil on API error, got %+v", res)
	}

	if res := checkAt(context.Background(), "http://127.0.0.1:1", "1.0.0"); res != nil {
		t.Errorf("expected nil on connection error, got %+v", res)
	}
}

func TestCheckBadBody(t *testing.T) {
	srv := releaseServer(t, http.StatusOK, `{"tag_name": `)

	if res := checkAt(context.Background(), srv.URL, "1.0.0"); res != nil {
		t.Errorf("expected nil on bad JSON, got %+v", res)
	}
}
