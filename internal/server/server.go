// Package server exposes the analysis pipeline as a JSON HTTP API
// compatible with the browser extension clients.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zainab-06-p/linkscout/internal/model"
	"github.com/zainab-06-p/linkscout/internal/pipeline"
	"github.com/zainab-06-p/linkscout/internal/score"
)

// quickMinLength is the minimum trimmed content length for the quick
// risk check.
const quickMinLength = 10

// Server serves the analysis API.
type Server struct {
	analyzer *pipeline.Analyzer
	quick    *score.QuickScorer
	cfg      model.ServerConfig
	logger   *zap.Logger
	mux      *http.ServeMux
}

// New creates a server around the analyzer and quick scorer.
func New(analyzer *pipeline.Analyzer, quick *score.QuickScorer, cfg model.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		analyzer: analyzer,
		quick:    quick,
		cfg:      cfg,
		logger:   logger,
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("/api/v1/analyze-chunks", s.handleAnalyze)
	// Legacy routes kept for older extension builds.
	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/analyze-url", s.handleAnalyze)
	s.mux.HandleFunc("/api/v1/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/quick-test", s.handleQuickTest)
	s.mux.HandleFunc("/api/v1/quick-test", s.handleQuickTest)
	s.mux.HandleFunc("/health", s.handleHealth)

	return s
}

// Handler returns the HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	return corsMiddleware(s.mux)
}

// ListenAndServe runs the server until ctx is canceled, then shuts it
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// paragraphItem accepts either a bare string or an object with a "text"
// field, matching what different extension versions send.
type paragraphItem struct {
	Text string
}

func (p *paragraphItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Text = s
		return nil
	}

	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("paragraph must be a string or an object with a text field")
	}
	p.Text = obj.Text
	return nil
}

type analyzeRequest struct {
	Paragraphs []paragraphItem `json:"paragraphs"`
	Content    string          `json:"content"`
	Title      string          `json:"title"`
	URL        string          `json:"url"`
}

func (r *analyzeRequest) paragraphTexts() []string {
	if len(r.Paragraphs) == 0 && r.Content != "" {
		return strings.Split(r.Content, "\n\n")
	}
	texts := make([]string, 0, len(r.Paragraphs))
	for _, p := range r.Paragraphs {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return texts
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req analyzeRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.analyzer.AnalyzeParagraphs(r.Context(), req.Title, req.URL, req.paragraphTexts())
	if err != nil {
		if errors.Is(err, pipeline.ErrInsufficientText) {
			s.writeError(w, http.StatusBadRequest, "content too short or empty")
			return
		}
		s.logger.Error("analysis failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, buildAnalyzeResponse(report))
}

type quickRequest struct {
	Content    string          `json:"content"`
	Paragraphs []paragraphItem `json:"paragraphs"`
}

func (s *Server) handleQuickTest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req quickRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	content := req.Content
	if content == "" {
		var parts []string
		for _, p := range req.Paragraphs {
			if p.Text != "" {
				parts = append(parts, p.Text)
			}
		}
		content = strings.Join(parts, "\n\n")
	}

	if len(strings.TrimSpace(content)) < quickMinLength {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{
			"success":    false,
			"error":      "content too short or empty",
			"risk_score": 0,
		})
		return
	}

	result := s.quick.Score(r.Context(), content)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":                   true,
		"risk_score":                result.RiskScore,
		"verdict":                   result.Verdict,
		"misinformation_percentage": result.RiskScore,
		"credibility_percentage":    round1(100 - result.RiskScore),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"name":      "LinkScout",
		"tagline":   "Smart Analysis. Simple Answers.",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	maxBytes := s.cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = 10_000_000
	}
	body := http.MaxBytesReader(w, r.Body, maxBytes)

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
