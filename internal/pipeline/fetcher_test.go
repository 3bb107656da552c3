package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zainab-06-p/linkscout/internal/model"
)

const articleHTML = `<html>
<head><title>Test Article</title><script>var tracker = 1;</script></head>
<body>
<p>First <b>paragraph</b> with markup.</p>
<div><p>Second paragraph nested in a div.</p></div>
<p>   </p>
<style>p { color: red }</style>
</body>
</html>`

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		UserAgent:         "LinkScoutTest/1.0",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
		Burst:             1000,
	}
}

func articleServer(t *testing.T, robots string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		if robots == "" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(robots))
	})
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractArticle(t *testing.T) {
	title, paragraphs, err := ExtractArticle(strings.NewReader(articleHTML))
	if err != nil {
		t.Fatalf("ExtractArticle: %v", err)
	}
	if title != "Test Article" {
		t.Errorf("expected title, got %q", title)
	}
	if len(paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d: %v", len(paragraphs), paragraphs)
	}
	if paragraphs[0] != "First paragraph with markup." {
		t.Errorf("markup not flattened: %q", paragraphs[0])
	}
	if paragraphs[1] != "Second paragraph nested in a div." {
		t.Errorf("nested paragraph missing: %q", paragraphs[1])
	}
}

func TestExtractArticle_NoParagraphs(t *testing.T) {
	_, paragraphs, err := ExtractArticle(strings.NewReader("<html><body><div>no p tags</div></body></html>"))
	if err != nil {
		t.Fatalf("ExtractArticle: %v", err)
	}
	if len(paragraphs) != 0 {
		t.Errorf("expected no paragraphs, got %v", paragraphs)
	}
}

func TestFetch(t *testing.T) {
	srv := articleServer(t, "User-agent: *\nAllow: /")
	f := NewFetcher(testHTTPConfig())

	article, err := f.Fetch(context.Background(), srv.URL+"/article")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if article.Title != "Test Article" {
		t.Errorf("unexpected title %q", article.Title)
	}
	if len(article.Paragraphs) != 2 {
		t.Errorf("expected 2 paragraphs, got %d", len(article.Paragraphs))
	}
	if article.FinalURL != srv.URL+"/article" {
		t.Errorf("unexpected final URL %q", article.FinalURL)
	}
}

func TestFetch_NoRobotsFile(t *testing.T) {
	srv := articleServer(t, "")
	f := NewFetcher(testHTTPConfig())

	if _, err := f.Fetch(context.Background(), srv.URL+"/article"); err != nil {
		t.Fatalf("missing robots.txt must allow fetching: %v", err)
	}
}

func TestFetch_RobotsDisallowed(t *testing.T) {
	srv := articleServer(t, "User-agent: *\nDisallow: /")
	f := NewFetcher(testHTTPConfig())

	_, err := f.Fetch(context.Background(), srv.URL+"/article")
	if err == nil {
		t.Fatal("expected error for disallowed path")
	}
	if !strings.Contains(err.Error(), "robots.txt") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFetch_HTTPError(t *testing.T) {
	srv := articleServer(t, "User-agent: *\nAllow: /")
	f := NewFetcher(testHTTPConfig())

	_, err := f.Fetch(context.Background(), srv.URL+"/missing")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "unexpected status: 404") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFetch_SendsUserAgent(t *testing.T) {
	var gotUA string
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", http.NotFound)
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(articleHTML))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := NewFetcher(testHTTPConfig())
	if _, err := f.Fetch(context.Background(), srv.URL+"/article"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotUA != "LinkScoutTest/1.0" {
		t.Errorf("expected configured user agent, got %q", gotUA)
	}
}
