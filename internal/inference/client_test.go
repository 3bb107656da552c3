package inference

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zainab-06-p/linkscout/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(model.InferenceConfig{
		BaseURL:           srv.URL,
		APIKey:            "test-key",
		RequestsPerSecond: 1000,
		Burst:             1000,
	}, model.HTTPConfig{}, nil)
}

func writeNested(w http.ResponseWriter, scores []LabelScore) {
	_ = json.NewEncoder(w).Encode([][]LabelScore{scores})
}

func TestClassify_RequestShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/models/fake-model-a" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected content type %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Inputs string `json:"inputs"`
		}
		if err := json.Unmarshal(body, &req); err != nil || req.Inputs != "hello world" {
			t.Errorf("unexpected body %s", body)
		}
		writeNested(w, []LabelScore{{Label: "FAKE", Score: 0.9}, {Label: "REAL", Score: 0.1}})
	})

	scores, err := client.Classify(context.Background(), "fake-model-a", "hello world")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(scores) != 2 || scores[0].Label != "FAKE" || scores[0].Score != 0.9 {
		t.Errorf("unexpected scores %+v", scores)
	}
}

func TestClassify_FlatResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]LabelScore{{Label: "clickbait", Score: 0.8}})
	})

	scores, err := client.Classify(context.Background(), "m", "text")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(scores) != 1 || scores[0].Label != "clickbait" {
		t.Errorf("unexpected scores %+v", scores)
	}
}

func TestClassify_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(apiError{Error: "model loading"})
	})

	_, err := client.Classify(context.Background(), "m", "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "model loading") {
		t.Errorf("expected API error message, got %v", err)
	}
}

func TestClassify_UnexpectedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	if _, err := client.Classify(context.Background(), "m", "text"); err == nil {
		t.Fatal("expected error for unexpected response shape")
	}
}

func TestTruncate(t *testing.T) {
	short := "short input"
	if got := Truncate(short); got != short {
		t.Errorf("short input must pass through, got %q", got)
	}

	long := strings.Repeat("é", maxInputChars+500)
	got := Truncate(long)
	if n := len([]rune(got)); n != maxInputChars {
		t.Errorf("expected %d runes, got %d", maxInputChars, n)
	}
}

func TestFakeProbability(t *testing.T) {
	cases := []struct {
		name   string
		scores []LabelScore
		want   float64
		ok     bool
	}{
		{"fake label", []LabelScore{{Label: "FAKE", Score: 0.9}}, 0.9, true},
		{"label_0 alias", []LabelScore{{Label: "LABEL_0", Score: 0.7}}, 0.7, true},
		{"real inverted", []LabelScore{{Label: "REAL", Score: 0.75}}, 0.25, true},
		{"label_1 inverted", []LabelScore{{Label: "LABEL_1", Score: 1.0}}, 0, true},
		{"unknown labels", []LabelScore{{Label: "positive", Score: 0.5}}, 0, false},
		{"empty", nil, 0, false},
	}
	for _, c := range cases {
		got, ok := fakeProbability(c.scores)
		if ok != c.ok || got != c.want {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", c.name, got, ok, c.want, c.ok)
		}
	}
}
