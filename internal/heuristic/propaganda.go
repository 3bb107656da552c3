package heuristic

import (
	"regexp"
	"strings"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// Propaganda verdicts.
const (
	PropagandaHigh     = "HIGH_PROPAGANDA"
	PropagandaModerate = "MODERATE_PROPAGANDA"
	PropagandaLow      = "LOW_PROPAGANDA"
	PropagandaMinimal  = "MINIMAL_PROPAGANDA"
)

// wordTechniques are detected by case-insensitive word membership.
var wordTechniques = map[string][]string{
	"loaded_language": {
		"shocking", "horrifying", "devastating", "outrageous", "scandalous",
		"disgraceful", "unbelievable", "explosive", "bombshell", "nightmare",
		"crisis", "chaos", "disaster", "catastrophe", "emergency", "urgent",
		"critical", "dangerous", "deadly", "toxic", "poison", "attack",
	},
	"name_calling": {
		"idiot", "fool", "stupid", "moron", "lunatic", "crazy", "insane",
		"radical", "extremist", "terrorist", "traitor", "corrupt", "criminal",
		"liar", "fraud", "fake", "phony", "puppet", "sheep", "shill",
	},
	"appeal_to_fear": {
		"danger", "threat", "risk", "warning", "alert", "panic",
		"terror", "horror", "doom", "apocalypse", "extinction",
		"death", "die", "kill", "destroy", "eliminate",
	},
	"exaggeration": {
		"always", "never", "everyone", "nobody", "everywhere", "nowhere",
		"completely", "totally", "absolutely",
		"entirely", "perfectly", "forever", "infinite", "ultimate",
	},
	"glittering_generalities": {
		"freedom", "liberty", "democracy", "justice", "truth", "honor",
		"glory", "destiny", "patriot", "hero", "values", "tradition",
	},
}

// patternTechniques are detected by regular expression.
var patternTechniques = map[string]*regexp.Regexp{
	"doubt":                    regexp.MustCompile(`(?i)(can\s+(?:you|we)\s+trust|(?:really|actually)\s+believe|wake\s+up|open\s+your\s+eyes|think\s+(?:for\s+)?yourself|question\s+everything|don't\s+be\s+fooled)`),
	"flag_waving":              regexp.MustCompile(`(?i)((?:our|the)\s+(?:great\s+)?(?:nation|country)|(?:american|patriotic)\s+(?:values|way|dream)|founding\s+fathers|(?:freedom|liberty)\s+and\s+(?:democracy|justice)|un-american|real\s+(?:americans|patriots))`),
	"oversimplification":       regexp.MustCompile(`(?i)((?:the\s+)?(?:only|real|simple)\s+(?:reason|cause|solution)|it's\s+(?:all\s+)?(?:because|due\s+to)|simply\s+(?:because|due\s+to)|nothing\s+(?:more|less)\s+than)`),
	"appeal_to_authority":      regexp.MustCompile(`(?i)(experts?\s+(?:say|claim|believe)|studies?\s+(?:show|prove|confirm)|research\s+(?:shows|proves|confirms)|scientists?\s+(?:say|claim|agree)|doctors?\s+(?:recommend|say))`),
	"black_and_white_fallacy":  regexp.MustCompile(`(?i)(you're\s+(?:either\s+)?with\s+us\s+or\s+against\s+us|no\s+middle\s+ground|pick\s+a\s+side)`),
	"whataboutism":             regexp.MustCompile(`(?i)\b(what\s+about|how\s+about)\b`),
	"bandwagon":                regexp.MustCompile(`(?i)(everyone\s+(?:knows|believes|agrees)|most\s+people\s+(?:think|believe|agree)|join\s+(?:the\s+)?(?:movement|revolution|fight)|millions\s+of\s+people|don't\s+be\s+left\s+(?:behind|out))`),
	"plain_folks":              regexp.MustCompile(`(?i)((?:just|ordinary)\s+(?:people|folks|citizens)|like\s+you\s+and\s+me|hard-working\s+(?:americans|people|families)|common\s+sense)`),
}

// PropagandaDetector counts rhetorical manipulation techniques and turns
// them into a severity-weighted 0-100 score.
type PropagandaDetector struct {
	wordSets map[string]map[string]struct{}
}

// NewPropagandaDetector creates a propaganda detector.
func NewPropagandaDetector() *PropagandaDetector {
	wordSets := make(map[string]map[string]struct{}, len(wordTechniques))
	for technique, words := range wordTechniques {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		wordSets[technique] = set
	}
	return &PropagandaDetector{wordSets: wordSets}
}

// Detect analyzes a document for propaganda techniques.
func (d *PropagandaDetector) Detect(text string) model.PropagandaResult {
	lower := strings.ToLower(text)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '\'' || r == '-')
	})

	instances := make(map[string]int)

	for technique, set := range d.wordSets {
		for _, w := range words {
			if _, ok := set[w]; ok {
				instances[technique]++
			}
		}
	}

	for technique, re := range patternTechniques {
		if n := len(re.FindAllString(text, -1)); n > 0 {
			instances[technique] += n
		}
	}

	if n := repeatedSentenceCount(text); n > 0 {
		instances["repetition"] = n
	}

	techniques := make([]string, 0, len(instances))
	totalInstances := 0
	for technique, n := range instances {
		techniques = append(techniques, technique)
		totalInstances += n
	}
	sortStrings(techniques)

	score := propagandaScore(len(techniques), totalInstances)

	verdict := PropagandaMinimal
	switch {
	case score >= 60:
		verdict = PropagandaHigh
	case score >= 35:
		verdict = PropagandaModerate
	case score >= 15:
		verdict = PropagandaLow
	}

	return model.PropagandaResult{
		PropagandaScore: score,
		Techniques:      techniques,
		TotalInstances:  totalInstances,
		Verdict:         verdict,
	}
}

// propagandaScore weights both breadth (distinct techniques) and volume
// (total instances), with the ceiling rising as more techniques appear.
func propagandaScore(techniques, instances int) float64 {
	t := float64(techniques)
	i := float64(instances)
	switch {
	case techniques == 0:
		return 0
	case techniques <= 2:
		return minf(35, t*5+i)
	case techniques <= 4:
		return minf(55, t*8+i*1.2)
	default:
		return minf(100, t*10+i*2)
	}
}

// repeatedSentenceCount counts sentences that appear more than once,
// a crude repetition-technique detector.
func repeatedSentenceCount(text string) int {
	seen := make(map[string]int)
	for _, s := range splitSentences(text) {
		seen[strings.ToLower(s)]++
	}
	repeated := 0
	for _, n := range seen {
		if n > 1 {
			repeated++
		}
	}
	return repeated
}
