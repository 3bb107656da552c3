package score

// Primary document verdicts, a monotonic function of the suspicious score.
const (
	VerdictFakeNews   = "FAKE NEWS"
	VerdictSuspicious = "SUSPICIOUS - VERIFY"
	VerdictCredible   = "APPEARS CREDIBLE"
)

// Primary verdict breakpoints.
const (
	FakeNewsThreshold   = 70.0
	SuspiciousThreshold = 40.0
)

// Combined credibility tiers. Lower combined scores mean more credible.
const (
	CombinedHighlyCredible = "HIGHLY CREDIBLE"
	CombinedMostlyCredible = "MOSTLY CREDIBLE"
	CombinedQuestionable   = "QUESTIONABLE"
	CombinedLowCredibility = "LOW CREDIBILITY"
	CombinedNotCredible    = "NOT CREDIBLE"
)

// MapVerdict maps a suspicious score in [0,100] onto the primary verdict.
func MapVerdict(score float64) string {
	switch {
	case score >= FakeNewsThreshold:
		return VerdictFakeNews
	case score >= SuspiciousThreshold:
		return VerdictSuspicious
	default:
		return VerdictCredible
	}
}

// MapCombinedVerdict maps a combined overall score onto its five tiers.
func MapCombinedVerdict(score float64) string {
	switch {
	case score < 20:
		return CombinedHighlyCredible
	case score < 35:
		return CombinedMostlyCredible
	case score < 50:
		return CombinedQuestionable
	case score < 70:
		return CombinedLowCredibility
	default:
		return CombinedNotCredible
	}
}
