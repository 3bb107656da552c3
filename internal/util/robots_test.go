package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func robotsServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCanFetch_Allowed(t *testing.T) {
	srv := robotsServer(t, "User-agent: *\nAllow: /", http.StatusOK)
	c := NewRobotsChecker("TestBot", 5*time.Second)

	allowed, delay, err := c.CanFetch(context.Background(), srv.URL+"/article")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("expected fetch to be allowed")
	}
	if delay != 0 {
		t.Errorf("expected no crawl delay, got %v", delay)
	}
}

func TestCanFetch_Disallowed(t *testing.T) {
	srv := robotsServer(t, "User-agent: *\nDisallow: /private/", http.StatusOK)
	c := NewRobotsChecker("TestBot", 5*time.Second)

	allowed, _, err := c.CanFetch(context.Background(), srv.URL+"/private/page")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if allowed {
		t.Error("expected /private/ to be disallowed")
	}

	allowed, _, err = c.CanFetch(context.Background(), srv.URL+"/public/page")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("expected /public/ to be allowed")
	}
}

func TestCanFetch_MissingRobots(t *testing.T) {
	srv := robotsServer(t, "", http.StatusNotFound)
	c := NewRobotsChecker("TestBot", 5*time.Second)

	allowed, _, err := c.CanFetch(context.Background(), srv.URL+"/anything")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if !allowed {
		t.Error("missing robots.txt must allow fetching")
	}
}

func TestCanFetch_CrawlDelay(t *testing.T) {
	srv := robotsServer(t, "User-agent: *\nCrawl-delay: 2", http.StatusOK)
	c := NewRobotsChecker("TestBot", 5*time.Second)

	_, delay, err := c.CanFetch(context.Background(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("CanFetch: %v", err)
	}
	if delay != 2*time.Second {
		t.Errorf("expected 2s crawl delay, got %v", delay)
	}
}

func TestCanFetch_CachesPerHost(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		_, _ = w.Write([]byte("User-agent: *\nAllow: /"))
	}))
	defer srv.Close()

	c := NewRobotsChecker("TestBot", 5*time.Second)
	for i := 0; i < 3; i++ {
		if _, _, err := c.CanFetch(context.Background(), srv.URL+"/page"); err != nil {
			t.Fatalf("CanFetch: %v", err)
		}
	}
	if fetches != 1 {
		t.Errorf("expected one robots.txt fetch, got %d", fetches)
	}

	c.Clear()
	if _, _, err := c.CanFetch(context.Background(), srv.URL+"/page"); err != nil {
		t.Fatalf("CanFetch after clear: %v", err)
	}
	if fetches != 2 {
		t.Errorf("expected refetch after clear, got %d", fetches)
	}
}

func TestNormalizeUserAgent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"LinkScout/1.0 (+https://example.test)", "LinkScout"},
		{"LinkScout", "LinkScout"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeUserAgent(c.in); got != c.want {
			t.Errorf("NormalizeUserAgent(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
