// Package credibility scores the sources cited by a document against a
// tiered domain database. Unknown domains get a neutral 50; a document
// that cites nothing gets the neutral result rather than a penalty.
package credibility

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// Verdicts for the source-credibility signal.
const (
	VerdictReliable     = "RELIABLE"
	VerdictQuestionable = "QUESTIONABLE"
	VerdictUnreliable   = "UNRELIABLE"
	VerdictUnknown      = "UNKNOWN"
)

const (
	unknownScore = 50
	maxSources   = 20
)

var (
	fullURLRe = regexp.MustCompile(`https?://[^\s<>"]+`)
	domainRe  = regexp.MustCompile(`\b[a-z0-9-]+\.(?:com|org|gov|edu|net|co\.uk|ac\.uk|int|ch|ir|eu)\b`)
	wwwRe     = regexp.MustCompile(`^www\.`)
)

// Analyzer looks up cited domains in the tiered source database.
type Analyzer struct{}

// NewAnalyzer creates a source credibility analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze extracts source domains from text and averages their
// credibility scores.
func (a *Analyzer) Analyze(text string) model.SourceResult {
	return a.AnalyzeSources(ExtractSources(text))
}

// AnalyzeSources scores an explicit list of source URLs or domains.
func (a *Analyzer) AnalyzeSources(sources []string) model.SourceResult {
	if len(sources) == 0 {
		return model.SourceResult{
			AverageCredibility: model.NeutralCredibility,
			Verdict:            VerdictUnknown,
			Explanation:        "No sources found to analyze.",
		}
	}

	var scored []model.SourceScore
	var sum float64
	hasFakeNews := false
	hasLowCred := false
	for _, src := range sources {
		domain := ExtractDomain(src)
		s := Lookup(domain)
		scored = append(scored, s)
		sum += s.Score
		switch s.Category {
		case categoryFakeNews, categoryConspiracy, categoryImpersonation:
			hasFakeNews = true
		}
		if s.Score < 40 {
			hasLowCred = true
		}
	}
	avg := sum / float64(len(scored))

	verdict := VerdictUnreliable
	switch {
	case avg >= 75 && !hasFakeNews:
		verdict = VerdictReliable
	case avg >= 55 && !hasLowCred:
		verdict = VerdictQuestionable
	}

	return model.SourceResult{
		AverageCredibility: avg,
		Sources:            scored,
		Verdict:            verdict,
		Explanation:        explain(avg, scored, hasFakeNews),
	}
}

// Lookup returns the credibility record for a single domain. Domains not
// in the database come back with the neutral unknown score.
func Lookup(domain string) model.SourceScore {
	domain = wwwRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(domain)), "")
	if info, ok := sourceDatabase[domain]; ok {
		return model.SourceScore{
			Domain:   domain,
			Score:    info.score,
			Category: info.category,
			Name:     info.name,
		}
	}
	return model.SourceScore{
		Domain:   domain,
		Score:    unknownScore,
		Category: categoryUnknown,
		Name:     domain,
	}
}

// ExtractSources pulls URLs and bare domain references out of text.
func ExtractSources(text string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, u := range fullURLRe.FindAllString(text, -1) {
		add(u)
	}
	for _, d := range domainRe.FindAllString(strings.ToLower(text), -1) {
		add(d)
	}
	sort.Strings(out)
	if len(out) > maxSources {
		out = out[:maxSources]
	}
	return out
}

// ExtractDomain normalizes a URL or bare domain down to its host.
func ExtractDomain(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.ToLower(raw)
	}
	return wwwRe.ReplaceAllString(strings.ToLower(u.Hostname()), "")
}

func explain(avg float64, scored []model.SourceScore, hasFakeNews bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyzed %d source(s). Average credibility: %.0f/100.", len(scored), avg)

	var low, high int
	for _, s := range scored {
		if s.Score < 50 {
			low++
		}
		if s.Score >= 90 {
			high++
		}
	}
	if hasFakeNews {
		b.WriteString(" Contains known fake news or conspiracy sites.")
	}
	if low > 0 {
		fmt.Fprintf(&b, " %d low-credibility source(s).", low)
	}
	if high > 0 {
		fmt.Fprintf(&b, " %d high-quality source(s).", high)
	}
	return b.String()
}
