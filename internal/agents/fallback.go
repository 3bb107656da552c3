package agents

import (
	"fmt"
	"strings"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// FallbackNarrative builds an advisory narrative purely from the signal
// results, used whenever the chat agents are disabled or unavailable.
func FallbackNarrative(signals model.DocumentSignals, flagged, total int) model.Narrative {
	fakeProb := signals.Pretrained.FakeProbability * 100
	cred := signals.Credibility.AverageCredibility
	propaganda := signals.Propaganda.PropagandaScore

	var right string
	if fakeProb < 30 {
		right = fmt.Sprintf(
			"Content appears largely credible. Source credibility %.0f/100 (%s), propaganda score %.0f/100, model confidence %.1f%% real.",
			cred, signals.Credibility.Verdict, propaganda, 100-fakeProb)
	} else {
		right = fmt.Sprintf(
			"Limited credible information found. Source credibility %.0f/100; factual claims appear limited.", cred)
	}

	var wrong string
	switch {
	case fakeProb > 40:
		wrong = fmt.Sprintf(
			"Potential misinformation detected. Models flagged %.1f%% suspicious; %d of %d paragraphs need verification.",
			fakeProb, flagged, total)
		if len(signals.Propaganda.Techniques) > 0 {
			wrong += " Propaganda techniques: " + strings.Join(head(signals.Propaganda.Techniques, 3), ", ") + "."
		}
	case propaganda > 50:
		wrong = fmt.Sprintf(
			"Some concerns identified. Propaganda score %.0f/100; %d paragraphs flagged for review.", propaganda, flagged)
		if len(signals.Propaganda.Techniques) > 0 {
			wrong += " Techniques used: " + strings.Join(head(signals.Propaganda.Techniques, 3), ", ") + "."
		}
	default:
		wrong = "No significant misinformation patterns detected by automated analysis."
	}

	var recommendation string
	if fakeProb < 30 && propaganda < 40 {
		recommendation = fmt.Sprintf(
			"Appears credible but verify key claims. The article shows %.0f%% credibility; cross-check specific claims with multiple sources.",
			100-fakeProb)
	} else {
		recommendation = fmt.Sprintf(
			"Verify before sharing. %.1f%% suspicious content detected; check claims against multiple trusted sources and be cautious of emotional manipulation.",
			fakeProb)
	}

	return model.Narrative{
		WhatIsRight:    right,
		WhatIsWrong:    wrong,
		InternetSays:   "Manual verification recommended with trusted fact-checking sources (Snopes, FactCheck.org, PolitiFact, Reuters Fact Check).",
		Recommendation: recommendation,
		WhyMatters: "Distinguishing fact from fiction shapes public understanding. " +
			"Verify important claims with multiple credible sources before forming conclusions or sharing.",
	}
}

func head(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
