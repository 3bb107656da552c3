// Package agents produces the advisory narrative for a report by running
// three chained chat agents (research, analysis, conclusion) against an
// OpenAI-compatible endpoint. The narrative never feeds back into the
// score; when the endpoint is unavailable the narrator degrades to a
// deterministic summary built from the signal results.
package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/zainab-06-p/linkscout/internal/model"
)

const (
	contentPreviewLen = 800
	topicPreviewLen   = 120
)

// Narrator runs the three-agent narrative chain.
type Narrator struct {
	client *openai.Client
	cfg    model.AgentsConfig
	logger *zap.Logger
}

// NewNarrator creates a narrator against the configured endpoint.
func NewNarrator(cfg model.AgentsConfig, logger *zap.Logger) (*Narrator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("agents API key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Narrator{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Narrate runs research, analysis and conclusion in order. Any agent
// failure falls back to the deterministic narrative; a partial chain is
// never returned.
func (n *Narrator) Narrate(ctx context.Context, title, content string, signals model.DocumentSignals, flagged, total int) model.Narrative {
	topic := title
	if topic == "" {
		topic = "Article"
	}

	research, err := n.research(ctx, topic, content)
	if err != nil {
		n.logger.Warn("research agent failed, using fallback narrative", zap.Error(err))
		return FallbackNarrative(signals, flagged, total)
	}

	analysis, err := n.analyze(ctx, content, research)
	if err != nil {
		n.logger.Warn("analysis agent failed, using fallback narrative", zap.Error(err))
		return FallbackNarrative(signals, flagged, total)
	}

	narrative, err := n.conclude(ctx, topic, research, analysis)
	if err != nil {
		n.logger.Warn("conclusion agent failed, using fallback narrative", zap.Error(err))
		return FallbackNarrative(signals, flagged, total)
	}

	narrative.Research = research
	narrative.Analysis = analysis
	return narrative
}

func (n *Narrator) research(ctx context.Context, topic, content string) (string, error) {
	prompt := fmt.Sprintf(`You are a fact-checking research agent. Research this topic: %q

Content preview: %s

Provide a 3-4 sentence research summary of what credible sources say about this topic.`,
		truncate(topic, topicPreviewLen), truncate(content, contentPreviewLen))

	return n.chat(ctx,
		"You are an expert research analyst focused on fact-checking and credible sources.",
		prompt, 0.3)
}

func (n *Narrator) analyze(ctx context.Context, content, research string) (string, error) {
	prompt := fmt.Sprintf(`You are a misinformation detection expert. Analyze this content for suspicious patterns:

Content: %s

Research findings: %s

Identify emotional manipulation tactics, logical fallacies, unsupported claims, sensationalism and suspicious language patterns. Provide a detailed 4-5 sentence analysis.`,
		truncate(content, contentPreviewLen), research)

	return n.chat(ctx,
		"You are an expert in detecting misinformation patterns, propaganda, and manipulation techniques.",
		prompt, 0.5)
}

// Section markers the conclusion agent is asked to emit.
const (
	markRight     = "WHAT IS CORRECT"
	markWrong     = "WHAT IS WRONG"
	markInternet  = "WHAT THE INTERNET SAYS"
	markRecommend = "MY RECOMMENDATION"
	markMatters   = "WHY THIS MATTERS"
)

func (n *Narrator) conclude(ctx context.Context, topic, research, analysis string) (model.Narrative, error) {
	prompt := fmt.Sprintf(`You are an expert fact-checker providing final conclusions. Based on:

Topic: %s
Research: %s
Analysis: %s

Provide a structured conclusion with these exact sections:

**%s:**
[List facts that are accurate]

**%s:**
[List misinformation or suspicious claims]

**%s:**
[Summarize what credible sources say]

**%s:**
[Your expert recommendation for readers]

**%s:**
[Explain the significance and impact]`,
		truncate(topic, topicPreviewLen), research, analysis,
		markRight, markWrong, markInternet, markRecommend, markMatters)

	conclusion, err := n.chat(ctx,
		"You are an expert fact-checker providing authoritative conclusions and recommendations.",
		prompt, 0.6)
	if err != nil {
		return model.Narrative{}, err
	}

	return model.Narrative{
		Conclusion:     conclusion,
		WhatIsRight:    section(conclusion, markRight, markWrong),
		WhatIsWrong:    section(conclusion, markWrong, markInternet),
		InternetSays:   section(conclusion, markInternet, markRecommend),
		Recommendation: section(conclusion, markRecommend, markMatters),
		WhyMatters:     section(conclusion, markMatters, ""),
	}, nil
}

func (n *Narrator) chat(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	if n.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.cfg.Timeout)
		defer cancel()
	}

	maxTokens := n.cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1200
	}

	resp, err := n.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: n.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// section extracts the text between two markers, tolerating missing ones.
func section(text, from, until string) string {
	start := strings.Index(text, from)
	if start == -1 {
		return ""
	}
	rest := text[start:]
	if until != "" {
		if end := strings.Index(rest, until); end != -1 {
			rest = rest[:end]
		}
	}
	rest = strings.TrimPrefix(rest, from)
	return strings.Trim(rest, " \n\t:*-")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
