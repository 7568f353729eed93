package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/credo-scan/credo/internal/model"
)

// Renderer writes analyses and reports as JSON, Markdown, or a
// terminal summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderAnalysisJSON writes a bare text analysis as indented JSON
func (r *Renderer) RenderAnalysisJSON(analysis *model.Analysis, path string) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// RenderMarkdown writes the report as a Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Credo Report: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "- **Source**: %s\n", report.SourceURL)
	fmt.Fprintf(&b, "- **Fetched**: %s\n", report.FetchedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "- **Source authority**: %s (informational, not scored)\n", report.Authority)
	fmt.Fprintf(&b, "- **Visible text**: %d characters\n\n", report.TextLength)

	if report.Analysis == nil {
		b.WriteString("The page did not yield enough text to analyze.\n")
	} else {
		r.writeAnalysisMarkdown(&b, report.Analysis)
	}

	if report.LLM != nil && report.LLM.SummaryMD != "" {
		b.WriteString("\n## LLM Summary (does not affect the score)\n\n")
		b.WriteString(report.LLM.SummaryMD)
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("\n---\n")
		b.WriteString("Generated by credo. Heuristic diagnostics, not fact-checking: ")
		b.WriteString("always verify with multiple trusted sources.\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func (r *Renderer) writeAnalysisMarkdown(b *strings.Builder, a *model.Analysis) {
	fmt.Fprintf(b, "## Verdict: %s\n\n", a.Verdict.Label)
	fmt.Fprintf(b, "**Score: %.2f/100** (%s)\n\n", a.Score, a.Verdict.Tier)
	fmt.Fprintf(b, "%s\n\n%s\n\n", a.Verdict.Description, a.Verdict.Recommendation)

	if len(a.Indicators) > 0 {
		b.WriteString("## Red Flags\n\n")
		b.WriteString("| Category | Hits | Weight | Phrases |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, m := range sortedByCount(a.Indicators) {
			fmt.Fprintf(b, "| %s | %d | %.1f | %s |\n",
				m.Category, m.Count, m.Weight, strings.Join(m.Phrases, ", "))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No red flags detected.\n\n")
	}

	if len(a.Credibility) > 0 {
		b.WriteString("## Credibility Markers\n\n")
		for _, m := range a.Credibility {
			fmt.Fprintf(b, "- **%s**: %d\n", m.Category, m.Count)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No credibility markers found.\n\n")
	}

	b.WriteString("## Text Features\n\n")
	fmt.Fprintf(b, "- Words: %d, sentences: %d\n", a.Features.WordCount, a.Features.SentenceCount)
	fmt.Fprintf(b, "- Average word length: %.1f\n", a.Features.AvgWordLength)
	fmt.Fprintf(b, "- Caps ratio: %.1f%%\n", a.Features.CapsRatio*100)
	fmt.Fprintf(b, "- Repeated punctuation runs: %d\n", a.Features.ExcessivePunct)
	fmt.Fprintf(b, "- Question ratio: %.1f%%\n", a.Features.QuestionRatio*100)

	b.WriteString("\n## Score Breakdown\n\n")
	fmt.Fprintf(b, "- Weighted indicator total: %.1f → %.1f normalized\n",
		a.Breakdown.FakeScore, a.Breakdown.NormalizedFake)
	fmt.Fprintf(b, "- Credibility total: %.1f → %.1f normalized\n",
		a.Breakdown.CredibilityScore, a.Breakdown.NormalizedCred)
	fmt.Fprintf(b, "- Complexity bonus: %.1f, style penalty: %.2f\n",
		a.Breakdown.ComplexityBonus, a.Breakdown.StylePenalty)
	fmt.Fprintf(b, "- Formula: `%s`\n", a.Breakdown.Formula)
}

// RenderSummary prints a short result summary for terminal use
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "\n%s\n", report.Subject)
	fmt.Fprintf(w, "Source: %s (authority: %s)\n", report.SourceURL, report.Authority)

	if report.Analysis == nil {
		fmt.Fprintln(w, "Not enough visible text to analyze.")
		return
	}
	r.RenderAnalysisSummary(w, report.Analysis)
}

// RenderAnalysisSummary prints the analysis portion of a summary
func (r *Renderer) RenderAnalysisSummary(w io.Writer, a *model.Analysis) {
	fmt.Fprintf(w, "\nVerdict: %s (%.2f/100)\n", a.Verdict.Label, a.Score)
	fmt.Fprintf(w, "%s %s\n", a.Verdict.Description, a.Verdict.Recommendation)

	if len(a.Indicators) > 0 {
		fmt.Fprintln(w, "\nRed flags:")
		for _, m := range sortedByCount(a.Indicators) {
			fmt.Fprintf(w, "  %-16s %d hit(s), weight %.1f: %s\n",
				m.Category, m.Count, m.Weight, strings.Join(m.Phrases, ", "))
		}
	}
	if len(a.Credibility) > 0 {
		fmt.Fprintln(w, "\nCredibility markers:")
		for _, m := range a.Credibility {
			fmt.Fprintf(w, "  %-16s %d\n", m.Category, m.Count)
		}
	}

	fmt.Fprintf(w, "\nWords: %d  Sentences: %d  Caps: %.0f%%  Punct runs: %d\n",
		a.Features.WordCount, a.Features.SentenceCount,
		a.Features.CapsRatio*100, a.Features.ExcessivePunct)
}

// sortedByCount orders indicator matches by hit count descending,
// preserving catalog order between equal counts.
func sortedByCount(matches []model.IndicatorMatch) []model.IndicatorMatch {
	out := make([]model.IndicatorMatch, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
