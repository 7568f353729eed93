package detect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/credo-scan/credo/internal/model"
)

// minAnalyzeLength is the usability guard: anything shorter after
// trimming is treated as "not enough text yet", not as an error.
const minAnalyzeLength = 10

// Detector scores free-form text for fake-news likelihood using the
// phrase catalog it was constructed with. A Detector is immutable after
// New and safe to share across goroutines.
type Detector struct {
	indicators  []compiledIndicator
	credibility []compiledCredibility
}

type compiledPhrase struct {
	phrase string
	re     *regexp.Regexp
}

type compiledIndicator struct {
	name    string
	weight  float64
	phrases []compiledPhrase
}

type compiledCredibility struct {
	name    string
	phrases []compiledPhrase
}

// New builds a Detector from the given catalog. The catalog is
// validated eagerly: a malformed category would silently produce
// degenerate scores, so construction fails instead.
func New(catalog model.Catalog) (*Detector, error) {
	if len(catalog.Indicators) == 0 {
		return nil, fmt.Errorf("catalog has no indicator categories")
	}

	d := &Detector{}

	for i, cat := range catalog.Indicators {
		if err := validateCategory(cat.Name, cat.Phrases); err != nil {
			return nil, fmt.Errorf("indicator category %d: %w", i, err)
		}
		if cat.Weight <= 0 {
			return nil, fmt.Errorf("indicator category %q: weight must be positive, got %v", cat.Name, cat.Weight)
		}
		phrases, err := compilePhrases(cat.Phrases)
		if err != nil {
			return nil, fmt.Errorf("indicator category %q: %w", cat.Name, err)
		}
		d.indicators = append(d.indicators, compiledIndicator{
			name:    cat.Name,
			weight:  cat.Weight,
			phrases: phrases,
		})
	}

	for i, cat := range catalog.Credibility {
		if err := validateCategory(cat.Name, cat.Phrases); err != nil {
			return nil, fmt.Errorf("credibility category %d: %w", i, err)
		}
		phrases, err := compilePhrases(cat.Phrases)
		if err != nil {
			return nil, fmt.Errorf("credibility category %q: %w", cat.Name, err)
		}
		d.credibility = append(d.credibility, compiledCredibility{
			name:    cat.Name,
			phrases: phrases,
		})
	}

	return d, nil
}

// MustNew is New for catalogs known to be valid (the built-in one)
func MustNew(catalog model.Catalog) *Detector {
	d, err := New(catalog)
	if err != nil {
		panic(err)
	}
	return d
}

func validateCategory(name string, phrases []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty category name")
	}
	if len(phrases) == 0 {
		return fmt.Errorf("empty phrase list")
	}
	seen := make(map[string]bool, len(phrases))
	for _, p := range phrases {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("blank phrase")
		}
		if seen[p] {
			return fmt.Errorf("duplicate phrase %q", p)
		}
		seen[p] = true
	}
	return nil
}

// compilePhrases turns phrases into boundary-aware literal matchers.
// Phrases are quoted so regex metacharacters match themselves; the \b
// anchors stop fragments inside longer words from counting
// ("breaking" must not match inside "breakingly").
func compilePhrases(phrases []string) ([]compiledPhrase, error) {
	out := make([]compiledPhrase, 0, len(phrases))
	for _, p := range phrases {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(p) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile phrase %q: %w", p, err)
		}
		out = append(out, compiledPhrase{phrase: p, re: re})
	}
	return out, nil
}

// Analyze scores the given text. It returns nil when the trimmed input
// is shorter than 10 characters; every other input, including text with
// no words or sentences, yields a fully populated Analysis.
func (d *Detector) Analyze(text string) *model.Analysis {
	if len(strings.TrimSpace(text)) < minAnalyzeLength {
		return nil
	}

	normalized := Normalize(text)

	indicators, fakeScore := d.matchIndicators(normalized)
	credibility, credScore := d.matchCredibility(normalized)
	features := ExtractFeatures(text)

	score, breakdown := fuse(fakeScore, credScore, features)

	return &model.Analysis{
		Score:       score,
		Verdict:     verdictFor(score),
		Indicators:  indicators,
		Credibility: credibility,
		Features:    features,
		Breakdown:   breakdown,
	}
}

// matchIndicators counts whole-phrase occurrences per indicator
// category. A phrase occurring three times contributes three to the
// category count; the phrase itself is recorded once, in catalog order.
// Categories without hits are omitted.
func (d *Detector) matchIndicators(normalized string) ([]model.IndicatorMatch, float64) {
	var matches []model.IndicatorMatch
	var total float64

	for _, cat := range d.indicators {
		count := 0
		var found []string
		for _, p := range cat.phrases {
			n := len(p.re.FindAllStringIndex(normalized, -1))
			if n > 0 {
				count += n
				found = append(found, p.phrase)
			}
		}
		if count > 0 {
			matches = append(matches, model.IndicatorMatch{
				Category: cat.name,
				Count:    count,
				Phrases:  found,
				Weight:   cat.weight,
			})
			total += float64(count) * cat.weight
		}
	}

	return matches, total
}

// matchCredibility is the unweighted twin of matchIndicators: every hit
// counts one point regardless of category.
func (d *Detector) matchCredibility(normalized string) ([]model.CredibilityMatch, float64) {
	var matches []model.CredibilityMatch
	var total float64

	for _, cat := range d.credibility {
		count := 0
		for _, p := range cat.phrases {
			count += len(p.re.FindAllStringIndex(normalized, -1))
		}
		if count > 0 {
			matches = append(matches, model.CredibilityMatch{
				Category: cat.name,
				Count:    count,
			})
			total += float64(count)
		}
	}

	return matches, total
}
