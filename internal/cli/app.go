package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zainab-06-p/linkscout/internal/agents"
	"github.com/zainab-06-p/linkscout/internal/cache"
	"github.com/zainab-06-p/linkscout/internal/inference"
	"github.com/zainab-06-p/linkscout/internal/logging"
	"github.com/zainab-06-p/linkscout/internal/model"
	"github.com/zainab-06-p/linkscout/internal/pipeline"
	"github.com/zainab-06-p/linkscout/internal/score"
	"github.com/zainab-06-p/linkscout/internal/signal"
)

// app bundles the long-lived objects every command needs.
type app struct {
	cfg      *model.Config
	logger   *zap.Logger
	analyzer *pipeline.Analyzer
	quick    *score.QuickScorer
}

// loadConfig builds the effective configuration: defaults, then the
// config file, then environment variables for the API keys.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if file := viper.ConfigFileUsed(); file != "" {
		data, err := os.ReadFile(file)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: invalid config file %s: %v\n", file, err)
			}
		}
	}

	if cfg.Inference.APIKey == "" {
		cfg.Inference.APIKey = firstEnv("LINKSCOUT_HF_API_KEY", "HUGGINGFACE_API_KEY", "HF_API_KEY")
	}
	if cfg.Agents.APIKey == "" {
		cfg.Agents.APIKey = firstEnv("LINKSCOUT_GROQ_API_KEY", "GROQ_API_KEY")
	}
	if cfg.Agents.APIKey != "" {
		cfg.Agents.Enabled = true
	}

	cfg.Output.Verbose = cfg.Output.Verbose || verbose
	return cfg
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// buildApp wires the registry, narrator, cache and analyzer from config.
func buildApp(cfg *model.Config) (*app, error) {
	logger, err := logging.New(cfg.Logging, verbose)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	registry := signal.NewRegistry(logger)
	client := inference.NewClient(cfg.Inference, cfg.HTTP, logger)
	inference.RegisterProviders(registry, client, cfg.Inference.Models, logger)

	var narrator pipeline.Narrator
	if cfg.Agents.Enabled {
		n, err := agents.NewNarrator(cfg.Agents, logger)
		if err != nil {
			logger.Warn("narrative agents unavailable, using fallback narrative", zap.Error(err))
		} else {
			narrator = n
		}
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".linkscout", "cache")
			}
		}
		if dir != "" {
			resultCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		}
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		analyzer: pipeline.NewAnalyzer(cfg, registry, narrator, resultCache, logger),
		quick:    score.NewQuickScorer(registry, nil, logger),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}
