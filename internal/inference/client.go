// Package inference calls hosted text classifiers over an HF-style
// inference HTTP API and adapts them to the signal provider contract.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/zainab-06-p/linkscout/internal/model"
	"github.com/zainab-06-p/linkscout/internal/util"
)

// maxInputChars bounds what we send to a hosted classifier. The models
// truncate to their token window anyway; this keeps request bodies small.
const maxInputChars = 2000

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

// LabelScore is one classifier label with its probability.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type apiError struct {
	Error string `json:"error"`
}

// Client is a rate-limited HTTP client for the inference API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates an inference client from configuration.
func NewClient(cfg model.InferenceConfig, httpCfg model.HTTPConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 4
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = int(rps)
		if burst == 0 {
			burst = 1
		}
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
			},
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

// Classify sends text to one hosted model and returns its label scores,
// flattened from the API's nested response shape.
func (c *Client) Classify(ctx context.Context, modelID, text string) ([]LabelScore, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(classifyRequest{Inputs: Truncate(text)})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", c.baseURL, modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("inference API error (%d) from %s: %s", resp.StatusCode, modelID, apiErr.Error)
		}
		return nil, fmt.Errorf("inference API error (%d) from %s", resp.StatusCode, modelID)
	}

	return parseScores(respBody, modelID)
}

// parseScores accepts both response shapes the API produces: a nested
// [[{label,score}]] for single inputs and a flat [{label,score}].
func parseScores(body []byte, modelID string) ([]LabelScore, error) {
	var nested [][]LabelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}

	var flat []LabelScore
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	return nil, fmt.Errorf("unexpected response from %s: %s", modelID, snippet(body))
}

// Truncate limits classifier input to maxInputChars runes.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxInputChars {
		return text
	}
	return string(runes[:maxInputChars])
}

func snippet(body []byte) string {
	s := string(body)
	if len(s) > 120 {
		s = s[:120] + "..."
	}
	return s
}
