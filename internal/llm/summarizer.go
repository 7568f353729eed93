package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/credo-scan/credo/internal/model"
)

const systemPrompt = `You are explaining the output of a rule-based text screening tool. ` +
	`The tool counts stylistic red flags and credibility markers - it NEVER determines whether content is actually true or false, and neither do you. ` +
	`Describe only which rules fired and what that suggests about the writing style. ` +
	`Never state that the content is true, false, fake, or real.`

// truthClaims are phrasings the summary must not contain. The model is
// instructed not to rule on truth; output that does gets flagged.
var truthClaims = []string{
	"is true", "is false", "is fake", "is real",
	"this is misinformation", "proven false", "proven true",
}

// Summarizer turns an analysis into a short prose explanation.
// It runs after scoring and has no way to change the score.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration.
// With no provider configured the summarizer is disabled but valid.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Summarize generates a prose explanation of the analysis
func (s *Summarizer) Summarize(ctx context.Context, subject string, analysis *model.Analysis) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return &model.LLMSummary{Enabled: false}, nil
	}
	if analysis == nil {
		return nil, fmt.Errorf("nothing to summarize")
	}

	text, err := s.provider.Complete(ctx, systemPrompt, buildPrompt(subject, analysis))
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	summary := &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     s.config.Model,
		SummaryMD: text,
	}

	lower := strings.ToLower(text)
	for _, claim := range truthClaims {
		if strings.Contains(lower, claim) {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("summary contains a truth claim (%q); treat with caution", claim))
		}
	}

	return summary, nil
}

// buildPrompt renders the analysis breakdown for the model
func buildPrompt(subject string, a *model.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", subject)
	fmt.Fprintf(&b, "Likelihood score: %.2f/100 (%s)\n\n", a.Score, a.Verdict.Label)

	if len(a.Indicators) > 0 {
		b.WriteString("Red flag rules that fired:\n")
		for _, m := range a.Indicators {
			fmt.Fprintf(&b, "- %s: %d hit(s), weight %.1f, phrases: %s\n",
				m.Category, m.Count, m.Weight, strings.Join(m.Phrases, ", "))
		}
		b.WriteString("\n")
	}

	if len(a.Credibility) > 0 {
		b.WriteString("Credibility markers found:\n")
		for _, m := range a.Credibility {
			fmt.Fprintf(&b, "- %s: %d hit(s)\n", m.Category, m.Count)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Style: %d words, caps ratio %.2f, %d excessive punctuation runs\n\n",
		a.Features.WordCount, a.Features.CapsRatio, a.Features.ExcessivePunct)

	b.WriteString("Write a 3-4 sentence summary of which rules fired and why the score came out where it did. Describe the writing style only; do not judge whether the content is accurate.")

	return b.String()
}
