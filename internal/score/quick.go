package score

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/zainab-06-p/linkscout/internal/claimdb"
	"github.com/zainab-06-p/linkscout/internal/signal"
)

// Quick check weights: the classifier carries 40 points, the offline
// claim database 45 and linguistic phrase matching 15.
const (
	quickModelWeight     = 40.0
	quickModelBonus      = 10.0
	quickModelBonusAbove = 0.95
	quickClaimPoints     = 12.0
	quickClaimCap        = 20.0
	quickKeywordPoints   = 5.0
	quickKeywordCap      = 30.0
	quickClaimTotalCap   = 45.0
)

// quickKeywords groups misinformation topic phrases checked by substring.
var quickKeywords = map[string][]string{
	"covid_conspiracy": {
		"microchip", "bill gates vaccine", "vaccine tracking", "vaccine surveillance",
		"vaccine magnetism", "vaccine 5g", "mrna change dna", "vaccine gene therapy",
		"vaccine experimental", "vaccine untested", "natural immunity better",
	},
	"election_fraud": {
		"dominion", "voting machine", "switch votes", "bamboo ballot", "sharpie",
		"dead people voted", "ballot dump", "election stolen", "election rigged",
		"voter fraud", "fraudulent vote", "fake ballot", "biggest election theft",
	},
	"health_conspiracy": {
		"chemtrail", "fluoride mind control", "fluoride lower iq", "big pharma suppress",
		"vitamin c cure", "alkaline water prevent", "cancer cure suppressed",
		"sugar feeds cancer",
	},
	"tech_conspiracy": {
		"5g coronavirus", "5g cause", "5g radiation", "5g depopulation",
		"phone radiation brain", "wifi cancer", "microwave oven cancer",
		"5g to depopulate", "weakens your immune system",
	},
	"climate_denial": {
		"climate hoax", "ice age coming", "sun cause warming",
		"climate scientist disagree", "antarctica ice growing",
	},
	"manipulation": {
		"poison our children", "government planes spray", "nasa documents prove",
		"geoengineering", "they are installing", "depopulate the planet",
	},
}

// quickPhrases groups emotionally loaded phrases for the linguistic pass.
var quickPhrases = map[string][]string{
	"conspiracy": {
		"exposed", "shocking", "they dont want you to know", "wake up", "sheeple",
		"hidden truth", "conspiracy", "cover up", "coverup", "mainstream media lies",
		"msm lies", "fake news media",
	},
	"manipulation": {
		"big pharma", "globalist", "deep state", "new world order", "illuminati",
		"shadow government", "puppet master", "controlled opposition",
	},
	"urgency": {
		"must share", "share before deleted", "censored", "banned", "silenced",
		"they are hiding", "breaking", "urgent", "alert",
	},
	"distrust": {
		"dont trust", "never trust", "lie to you", "lying to us", "propaganda",
		"brainwash", "indoctrination", "mind control", "sheep",
	},
	"absolutism": {
		"everyone knows", "nobody believes", "all scientists", "every doctor",
		"100% proof", "undeniable",
	},
	"fearmongering": {
		"deadly", "killing", "poison", "toxic", "dangerous truth",
		"devastating", "apocalypse", "extinction", "genocide",
	},
}

// QuickResult is the outcome of a lightweight risk check.
type QuickResult struct {
	RiskScore float64
	Verdict   string
}

// QuickScorer runs the lightweight three-factor risk check used by the
// quick-test endpoint: one classifier call, the offline claim database
// and linguistic phrase matching. No paragraph scoring, no narrative.
type QuickScorer struct {
	registry *signal.Registry
	claims   *claimdb.Checker
	logger   *zap.Logger
}

// NewQuickScorer creates a quick scorer around the given registry.
func NewQuickScorer(registry *signal.Registry, claims *claimdb.Checker, logger *zap.Logger) *QuickScorer {
	if claims == nil {
		claims = claimdb.NewChecker()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuickScorer{registry: registry, claims: claims, logger: logger}
}

// Score runs the quick check on content and returns a risk score in
// [0,100] with its three-tier verdict.
func (q *QuickScorer) Score(ctx context.Context, content string) QuickResult {
	total := 0.0

	if q.registry != nil && q.registry.Has(signal.NamePretrained) {
		res := q.registry.Evaluate(ctx, signal.NamePretrained, content)
		contribution := res.Score * quickModelWeight
		if res.Score > quickModelBonusAbove {
			contribution += quickModelBonus
		}
		total += contribution
	}

	total += q.claimScore(content)
	total += linguisticScore(content)

	if total > 100 {
		total = 100
	}

	return QuickResult{
		RiskScore: round1(total),
		Verdict:   MapVerdict(total),
	}
}

func (q *QuickScorer) claimScore(content string) float64 {
	matches := float64(q.claims.KnownClaimMatches(content)) * quickClaimPoints
	if matches > quickClaimCap {
		matches = quickClaimCap
	}

	lower := strings.ToLower(content)
	keywords := 0.0
	for _, phrases := range quickKeywords {
		for _, phrase := range phrases {
			if strings.Contains(lower, phrase) {
				keywords += quickKeywordPoints
			}
		}
	}
	if keywords > quickKeywordCap {
		keywords = quickKeywordCap
	}

	score := matches + keywords
	if score > quickClaimTotalCap {
		score = quickClaimTotalCap
	}
	return score
}

func linguisticScore(content string) float64 {
	lower := strings.ToLower(content)
	count := 0
	for _, phrases := range quickPhrases {
		for _, phrase := range phrases {
			if strings.Contains(lower, phrase) {
				count++
			}
		}
	}

	switch {
	case count >= 5:
		return 15
	case count >= 3:
		return 10
	case count >= 2:
		return 6
	case count == 1:
		return 3
	default:
		return 0
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
