package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zainab-06-p/linkscout/internal/model"
	"github.com/zainab-06-p/linkscout/internal/pipeline"
	"github.com/zainab-06-p/linkscout/internal/score"
	"github.com/zainab-06-p/linkscout/internal/signal"
)

func testServer(t *testing.T, fakeProb float64) *Server {
	t.Helper()

	registry := signal.NewRegistry(nil)
	registry.Register(signal.Func{
		ProviderName: signal.NameEnsemble,
		Fn: func(ctx context.Context, text string) (signal.Result, error) {
			return signal.Result{Score: fakeProb * 100}, nil
		},
	})
	registry.Register(signal.Func{
		ProviderName: signal.NamePretrained,
		Fn: func(ctx context.Context, text string) (signal.Result, error) {
			return signal.Result{Score: fakeProb}, nil
		},
	})

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false

	analyzer := pipeline.NewAnalyzer(cfg, registry, nil, nil, nil)
	quick := score.NewQuickScorer(registry, nil, nil)

	return New(analyzer, quick, cfg.Server, nil)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

var testParagraphs = []string{
	"The city council approved the new budget on Tuesday after a public hearing.",
	"Officials said the plan allocates funds for road repairs and school upgrades.",
	"Residents can review the full budget document on the municipal website.",
}

func TestAnalyzeChunks_StringParagraphs(t *testing.T) {
	srv := testServer(t, 0.1)

	rec := postJSON(t, srv.Handler(), "/api/v1/analyze-chunks", map[string]any{
		"paragraphs": testParagraphs,
		"title":      "Budget approved",
		"url":        "http://example.com/budget",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if resp["success"] != true {
		t.Error("expected success true")
	}
	if resp["verdict"] == "" {
		t.Error("expected a verdict")
	}
	if resp["title"] != "Budget approved" {
		t.Errorf("unexpected title: %v", resp["title"])
	}

	overall, ok := resp["overall"].(map[string]any)
	if !ok {
		t.Fatal("expected overall object")
	}
	if overall["total_paragraphs"] != float64(len(testParagraphs)) {
		t.Errorf("expected %d total paragraphs, got %v", len(testParagraphs), overall["total_paragraphs"])
	}

	if _, ok := resp["chunks"].([]any); !ok {
		t.Error("expected chunks array")
	}
	if _, ok := resp["combined_analysis"].(map[string]any); !ok {
		t.Error("expected combined_analysis object")
	}
}

func TestAnalyzeChunks_ObjectParagraphs(t *testing.T) {
	srv := testServer(t, 0.1)

	paragraphs := make([]map[string]string, len(testParagraphs))
	for i, text := range testParagraphs {
		paragraphs[i] = map[string]string{"text": text}
	}

	rec := postJSON(t, srv.Handler(), "/api/v1/analyze-chunks", map[string]any{
		"paragraphs": paragraphs,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyzeChunks_LegacyRoutes(t *testing.T) {
	srv := testServer(t, 0.1)

	for _, path := range []string{"/analyze", "/analyze-url", "/api/v1/analyze"} {
		rec := postJSON(t, srv.Handler(), path, map[string]any{
			"paragraphs": testParagraphs,
		})
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestAnalyzeChunks_TooShort(t *testing.T) {
	srv := testServer(t, 0.1)

	rec := postJSON(t, srv.Handler(), "/api/v1/analyze-chunks", map[string]any{
		"paragraphs": []string{"short"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeChunks_InvalidJSON(t *testing.T) {
	srv := testServer(t, 0.1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-chunks", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeChunks_MethodNotAllowed(t *testing.T) {
	srv := testServer(t, 0.1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze-chunks", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t, 0.1)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze-chunks", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS allow-origin header")
	}
}

func TestHealth(t *testing.T) {
	srv := testServer(t, 0.1)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", resp["status"])
	}
}

func TestQuickTest(t *testing.T) {
	srv := testServer(t, 0.2)

	rec := postJSON(t, srv.Handler(), "/quick-test", map[string]any{
		"content": "The weather service expects mild temperatures across the region this weekend.",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["success"] != true {
		t.Error("expected success true")
	}
	if _, ok := resp["risk_score"].(float64); !ok {
		t.Error("expected numeric risk_score")
	}
}

func TestQuickTest_SuspiciousContentScoresHigher(t *testing.T) {
	srv := testServer(t, 0.2)

	calm := postJSON(t, srv.Handler(), "/quick-test", map[string]any{
		"content": "The library extended its weekend opening hours for the summer season.",
	})
	loaded := postJSON(t, srv.Handler(), "/quick-test", map[string]any{
		"content": "Wake up sheeple! The deep state and big pharma are lying to us. " +
			"This shocking hidden truth is being censored, share before deleted!",
	})

	var calmResp, loadedResp map[string]any
	if err := json.Unmarshal(calm.Body.Bytes(), &calmResp); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(loaded.Body.Bytes(), &loadedResp); err != nil {
		t.Fatal(err)
	}

	if loadedResp["risk_score"].(float64) <= calmResp["risk_score"].(float64) {
		t.Errorf("expected loaded content to score higher: %v vs %v",
			loadedResp["risk_score"], calmResp["risk_score"])
	}
}

func TestQuickTest_TooShort(t *testing.T) {
	srv := testServer(t, 0.2)

	rec := postJSON(t, srv.Handler(), "/quick-test", map[string]any{
		"content": "hi",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQuickTest_ParagraphFallback(t *testing.T) {
	srv := testServer(t, 0.2)

	rec := postJSON(t, srv.Handler(), "/api/v1/quick-test", map[string]any{
		"paragraphs": testParagraphs,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
