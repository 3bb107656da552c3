package model

import "time"

// Config is the full runtime configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Inference   InferenceConfig   `yaml:"inference"`
	Agents      AgentsConfig      `yaml:"agents"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls the article fetcher.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`

	// Per-domain politeness limits applied before each fetch.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CacheConfig controls the layered result cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// InferenceModels names the hosted classifier models.
type InferenceModels struct {
	Ensemble   []string `yaml:"ensemble"`
	Pretrained string   `yaml:"pretrained"`
	Custom     string   `yaml:"custom"`
	Emotion    string   `yaml:"emotion"`
	HateSpeech string   `yaml:"hate_speech"`
	Clickbait  string   `yaml:"clickbait"`
}

// InferenceConfig controls the remote model classifiers.
type InferenceConfig struct {
	BaseURL           string          `yaml:"base_url"`
	APIKey            string          `yaml:"api_key"`
	Timeout           time.Duration   `yaml:"timeout"`
	Models            InferenceModels `yaml:"models"`
	RequestsPerSecond float64         `yaml:"requests_per_second"`
	Burst             int             `yaml:"burst"`
}

// AgentsConfig controls the narrative agents (OpenAI-compatible endpoint).
type AgentsConfig struct {
	Enabled   bool          `yaml:"enabled"`
	BaseURL   string        `yaml:"base_url"`
	APIKey    string        `yaml:"api_key"`
	Model     string        `yaml:"model"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
}

// ServerConfig controls the JSON API server.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// ConcurrencyConfig bounds internal parallelism.
type ConcurrencyConfig struct {
	ParagraphWorkers int `yaml:"paragraph_workers"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the configuration used when no file or flags
// override it.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:           2 * time.Minute,
			UserAgent:         "LinkScout/1.0 (+https://github.com/zainab-06-p/linkscout)",
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Inference: InferenceConfig{
			BaseURL: "https://api-inference.huggingface.co",
			Timeout: 30 * time.Second,
			Models: InferenceModels{
				Ensemble: []string{
					"hamzab/roberta-fake-news-classification",
					"jy46604790/Fake-News-Bert-Detect",
					"Pulk17/Fake-News-Detection",
				},
				Pretrained: "hamzab/roberta-fake-news-classification",
				Emotion:    "j-hartmann/emotion-english-distilroberta-base",
				HateSpeech: "facebook/roberta-hate-speech-dynabench-r4-target",
				Clickbait:  "elozano/bert-base-cased-clickbait-news",
			},
			RequestsPerSecond: 4,
			Burst:             4,
		},
		Agents: AgentsConfig{
			BaseURL:   "https://api.groq.com/openai/v1",
			Model:     "llama-3.3-70b-versatile",
			Timeout:   45 * time.Second,
			MaxTokens: 1500,
		},
		Concurrency: ConcurrencyConfig{
			ParagraphWorkers: 4,
		},
		Server: ServerConfig{
			Addr:         ":5000",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Minute,
			MaxBodyBytes: 10_000_000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
