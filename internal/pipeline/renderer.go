package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/zainab-06-p/linkscout/internal/model"
)

// Renderer writes analysis reports as JSON or Markdown files and prints
// terminal summaries.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. When includeFooter is true, Markdown
// reports end with a generator footer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to path.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes a human-readable Markdown report to path.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	title := report.Title
	if title == "" {
		title = "Untitled content"
	}
	fmt.Fprintf(&b, "# Misinformation Analysis: %s\n\n", title)
	if report.URL != "" {
		fmt.Fprintf(&b, "**Source:** %s\n\n", report.URL)
	}
	fmt.Fprintf(&b, "**Analyzed:** %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04 UTC"))

	fmt.Fprintf(&b, "## Verdict\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Primary verdict | **%s** |\n", report.Document.Verdict)
	fmt.Fprintf(&b, "| Suspicion score | %.1f / 100 |\n", report.Document.SuspiciousScore)
	fmt.Fprintf(&b, "| Combined verdict | %s |\n", report.Combined.Verdict)
	fmt.Fprintf(&b, "| Combined risk | %.1f / 100 |\n\n", report.Combined.OverallScore)

	if len(report.Document.Contributions) > 0 {
		fmt.Fprintf(&b, "### Score breakdown\n\n")
		fmt.Fprintf(&b, "| Signal | Points | Reason |\n|---|---|---|\n")
		for _, c := range report.Document.Contributions {
			reason := c.Reason
			if reason == "" {
				reason = "-"
			}
			fmt.Fprintf(&b, "| %s | %+.1f | %s |\n", c.Category, c.Points, reason)
		}
		b.WriteString("\n")
	}

	s := report.Summary
	fmt.Fprintf(&b, "## Paragraphs\n\n")
	fmt.Fprintf(&b, "%d analyzed, %d likely fake, %d suspicious, %d safe.\n\n",
		s.TotalParagraphs, s.FakeParagraphs, s.SuspiciousParagraphs, s.SafeParagraphs)

	for _, chunk := range report.Chunks {
		fmt.Fprintf(&b, "### Paragraph %d (%s, %.0f/100)\n\n", chunk.Index+1, chunk.Severity, chunk.SuspicionScore)
		fmt.Fprintf(&b, "> %s\n\n", chunk.TextPreview)
		for _, reason := range chunk.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		if len(chunk.Reasons) > 0 {
			b.WriteString("\n")
		}
	}

	if n := report.Narrative; n != nil {
		fmt.Fprintf(&b, "## Narrative\n\n")
		writeNarrativeSection(&b, "What is correct", n.WhatIsRight)
		writeNarrativeSection(&b, "What is wrong", n.WhatIsWrong)
		writeNarrativeSection(&b, "What the internet says", n.InternetSays)
		writeNarrativeSection(&b, "Recommendation", n.Recommendation)
		writeNarrativeSection(&b, "Why this matters", n.WhyMatters)
	}

	if r.includeFooter {
		b.WriteString("---\n\n*Generated by LinkScout*\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeNarrativeSection(b *strings.Builder, heading, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "### %s\n\n%s\n\n", heading, body)
}

// RenderSummary prints a short report summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Println()
	fmt.Printf("Verdict:        %s (%.1f/100)\n", report.Document.Verdict, report.Document.SuspiciousScore)
	fmt.Printf("Combined:       %s (%.1f/100)\n", report.Combined.Verdict, report.Combined.OverallScore)
	s := report.Summary
	fmt.Printf("Paragraphs:     %d analyzed, %d fake, %d suspicious, %d safe\n",
		s.TotalParagraphs, s.FakeParagraphs, s.SuspiciousParagraphs, s.SafeParagraphs)
	for _, chunk := range report.Chunks {
		fmt.Printf("  [%d] %s %.0f: %s\n", chunk.Index+1, chunk.Severity, chunk.SuspicionScore, chunk.TextPreview)
	}
	if n := report.Narrative; n != nil && n.Recommendation != "" {
		fmt.Printf("\nRecommendation: %s\n", n.Recommendation)
	}
	fmt.Println()
}
