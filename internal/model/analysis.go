package model

// VerdictTier bands the final score into three severity levels
type VerdictTier string

const (
	TierLow    VerdictTier = "low"    // [0, 30)
	TierMedium VerdictTier = "medium" // [30, 60)
	TierHigh   VerdictTier = "high"   // [60, 100]
)

// Verdict is the human-readable interpretation of a final score
type Verdict struct {
	Label          string      `json:"label" yaml:"label"`
	Tier           VerdictTier `json:"tier" yaml:"tier"`
	Description    string      `json:"description" yaml:"description"`
	Recommendation string      `json:"recommendation" yaml:"recommendation"`
}

// IndicatorMatch reports the hits for one indicator category.
// Phrases preserves the catalog's declared phrase order, each phrase
// listed once no matter how often it occurred.
type IndicatorMatch struct {
	Category string   `json:"category" yaml:"category"`
	Count    int      `json:"count" yaml:"count"`
	Phrases  []string `json:"phrases" yaml:"phrases"`
	Weight   float64  `json:"weight" yaml:"weight"`
}

// CredibilityMatch reports the hits for one credibility category
type CredibilityMatch struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// TextFeatures are surface statistics computed on the original text
type TextFeatures struct {
	WordCount      int     `json:"word_count" yaml:"word_count"`
	SentenceCount  int     `json:"sentence_count" yaml:"sentence_count"`
	AvgWordLength  float64 `json:"avg_word_length" yaml:"avg_word_length"`
	CapsRatio      float64 `json:"caps_ratio" yaml:"caps_ratio"`
	ExcessivePunct int     `json:"excessive_punctuation" yaml:"excessive_punctuation"`
	QuestionRatio  float64 `json:"question_ratio" yaml:"question_ratio"`
}

// Breakdown exposes every term of the score fusion so a reader can
// reproduce the final score by hand. Nothing here is hidden state; the
// numbers are recomputed fresh on every analysis.
type Breakdown struct {
	FakeScore        float64 `json:"fake_score" yaml:"fake_score"`               // Σ count × weight over indicator hits
	CredibilityScore float64 `json:"credibility_score" yaml:"credibility_score"` // Σ raw counts over credibility hits
	NormalizedFake   float64 `json:"normalized_fake" yaml:"normalized_fake"`
	NormalizedCred   float64 `json:"normalized_cred" yaml:"normalized_cred"`
	ComplexityBonus  float64 `json:"complexity_bonus" yaml:"complexity_bonus"`
	StylePenalty     float64 `json:"style_penalty" yaml:"style_penalty"`
	Formula          string  `json:"formula" yaml:"formula"`
}

// Analysis is the complete result of scoring one piece of text
type Analysis struct {
	Score       float64            `json:"score" yaml:"score"` // 0-100, higher = more likely fake
	Verdict     Verdict            `json:"verdict" yaml:"verdict"`
	Indicators  []IndicatorMatch   `json:"indicators,omitempty" yaml:"indicators,omitempty"`
	Credibility []CredibilityMatch `json:"credibility,omitempty" yaml:"credibility,omitempty"`
	Features    TextFeatures       `json:"features" yaml:"features"`
	Breakdown   Breakdown          `json:"breakdown" yaml:"breakdown"`
}

// Indicator returns the match for the named category, or nil if it did not fire
func (a *Analysis) Indicator(category string) *IndicatorMatch {
	for i := range a.Indicators {
		if a.Indicators[i].Category == category {
			return &a.Indicators[i]
		}
	}
	return nil
}

// CredibilityCount returns the hit count for the named credibility category
func (a *Analysis) CredibilityCount(category string) int {
	for _, m := range a.Credibility {
		if m.Category == category {
			return m.Count
		}
	}
	return 0
}
