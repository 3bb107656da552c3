package heuristic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// Network verdicts.
const (
	NetworkBotLike     = "LIKELY_BOT_CONTENT"
	NetworkAstroturf   = "LIKELY_ASTROTURFING"
	NetworkViral       = "VIRAL_MANIPULATION"
	NetworkCoordinated = "COORDINATED_PATTERNS"
	NetworkOrganic     = "APPEARS_ORGANIC"
)

var botPatternRe = regexp.MustCompile(`(?i)((click|visit|check out|see more|learn more)\s+(here|now|this|link)|(follow|subscribe|like|share)\s+(me|us|now|today)|(limited time|act now|hurry|don't miss)|(dm|message)\s+(me|us)\s+for\s+(more|details|info))`)

var urlRe = regexp.MustCompile(`https?://\S+`)

var collectiveRe = regexp.MustCompile(`(?i)\b(we|us|our)\b`)

var hashtagRe = regexp.MustCompile(`#\w+`)

var socialProofRe = regexp.MustCompile(`(?i)(\d+\s+(thousand|million|billion)\s+(people|views|shares|likes)|(thousands|millions|billions)\s+of\s+people|viral\s+(video|post|article)|trending\s+(on|now))`)

var astroturfPhrases = []string{
	"as a concerned citizen", "as an ordinary person", "as a taxpayer",
	"we the people", "grassroots movement", "ordinary americans",
	"regular folks like us", "common sense tells us", "everyone is saying",
	"people are waking up", "the silent majority", "real patriots",
}

var viralPhrases = []string{
	"share this before it's deleted", "they don't want you to see this",
	"going viral", "everyone needs to see this",
	"share if you agree", "repost", "pass it on", "spread the word",
	"tag someone who needs to see this", "share this everywhere",
}

var coordinationPhrases = []string{
	"talking points", "narrative", "script", "agenda",
	"the same message", "identical wording", "coordinated effort",
}

var genericBotPhrases = []string{
	"i am here to tell you", "let me be clear", "make no mistake",
	"the fact is", "the truth is", "believe me", "trust me",
	"i can assure you", "without a doubt", "it's obvious that",
}

var urgencyTerms = []string{
	"urgent", "hurry", "immediately", "now", "today", "act fast", "limited time",
}

// NetworkAnalyzer looks for propagation-pattern fingerprints in the text
// itself: bot phrasing, astroturfing, viral bait, coordinated messaging
// and copy-paste repetition.
type NetworkAnalyzer struct{}

// NewNetworkAnalyzer creates a network analyzer.
func NewNetworkAnalyzer() *NetworkAnalyzer {
	return &NetworkAnalyzer{}
}

// Analyze computes the network propagation signal for a document.
func (a *NetworkAnalyzer) Analyze(text string) model.NetworkResult {
	lower := strings.ToLower(text)

	var flags []string

	bot, f := a.botScore(text, lower)
	flags = append(flags, f...)

	astro, f := a.astroturfScore(lower)
	flags = append(flags, f...)

	viral, f := a.viralScore(text, lower)
	flags = append(flags, f...)

	coord, f := a.coordinationScore(text, lower)
	flags = append(flags, f...)

	rep, f := a.repetitionScore(text)
	flags = append(flags, f...)

	overall := bot*0.3 + astro*0.25 + viral*0.25 + coord*0.1 + rep*0.1

	verdict := NetworkOrganic
	switch {
	case bot >= 60:
		verdict = NetworkBotLike
	case astro >= 60:
		verdict = NetworkAstroturf
	case viral >= 60:
		verdict = NetworkViral
	case overall >= 50:
		verdict = NetworkCoordinated
	}

	return model.NetworkResult{
		BotScore:          round2(bot),
		AstroturfScore:    round2(astro),
		ViralScore:        round2(viral),
		CoordinationScore: round2(coord),
		RepetitionScore:   round2(rep),
		OverallScore:      round2(overall),
		RedFlags:          flags,
		Verdict:           verdict,
	}
}

func (a *NetworkAnalyzer) botScore(text, lower string) (float64, []string) {
	var score float64
	var flags []string

	if matches := botPatternRe.FindAllString(text, -1); len(matches) > 0 {
		score += float64(len(matches)) * 15
		flags = append(flags, "bot_pattern: "+strings.ToLower(matches[0]))
	}

	generic := 0
	for _, phrase := range genericBotPhrases {
		if strings.Contains(lower, phrase) {
			generic++
		}
	}
	if generic >= 3 {
		score += 20
		flags = append(flags, fmt.Sprintf("generic_phrases: %d found", generic))
	}

	if urls := len(urlRe.FindAllString(text, -1)); urls > 3 {
		score += 15
		flags = append(flags, fmt.Sprintf("excessive_urls: %d links", urls))
	}

	return minf(100, score), flags
}

func (a *NetworkAnalyzer) astroturfScore(lower string) (float64, []string) {
	var score float64
	var flags []string

	for _, phrase := range astroturfPhrases {
		if strings.Contains(lower, phrase) {
			score += 20
			flags = append(flags, "astroturfing: "+phrase)
		}
	}

	if n := len(collectiveRe.FindAllString(lower, -1)); n > 5 {
		score += 15
		flags = append(flags, fmt.Sprintf("excessive_collective: %d instances", n))
	}

	return minf(100, score), flags
}

func (a *NetworkAnalyzer) viralScore(text, lower string) (float64, []string) {
	var score float64
	var flags []string

	for _, phrase := range viralPhrases {
		if strings.Contains(lower, phrase) {
			score += 25
			flags = append(flags, "viral_manipulation: "+phrase)
		}
	}

	if socialProofRe.MatchString(text) {
		score += 15
		flags = append(flags, "social_proof_claim")
	}

	urgency := 0
	for _, term := range urgencyTerms {
		if strings.Contains(lower, term) {
			urgency++
		}
	}
	if urgency >= 3 {
		score += 15
		flags = append(flags, fmt.Sprintf("urgency_manipulation: %d instances", urgency))
	}

	return minf(100, score), flags
}

func (a *NetworkAnalyzer) coordinationScore(text, lower string) (float64, []string) {
	var score float64
	var flags []string

	for _, phrase := range coordinationPhrases {
		if strings.Contains(lower, phrase) {
			score += 20
			flags = append(flags, "coordination: "+phrase)
		}
	}

	if n := len(hashtagRe.FindAllString(text, -1)); n > 5 {
		score += 15
		flags = append(flags, fmt.Sprintf("excessive_hashtags: %d found", n))
	}

	return minf(100, score), flags
}

func (a *NetworkAnalyzer) repetitionScore(text string) (float64, []string) {
	var score float64
	var flags []string

	if n := repeatedSentenceCount(text); n > 0 {
		score += 30
		flags = append(flags, fmt.Sprintf("repeated_sentences: %d duplicates", n))
	}

	words := strings.Fields(strings.ToLower(text))
	trigrams := make(map[string]int)
	for i := 0; i+2 < len(words); i++ {
		phrase := words[i] + " " + words[i+1] + " " + words[i+2]
		if len(phrase) > 15 {
			trigrams[phrase]++
		}
	}
	repeated := 0
	for _, n := range trigrams {
		if n > 1 {
			repeated++
		}
	}
	if repeated > 3 {
		score += 20
		flags = append(flags, fmt.Sprintf("repeated_phrases: %d found", repeated))
	}

	return minf(100, score), flags
}
