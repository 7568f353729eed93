package model

// IndicatorCategory is a themed group of red-flag phrases with a severity weight
type IndicatorCategory struct {
	Name    string   `json:"name" yaml:"name"`
	Phrases []string `json:"phrases" yaml:"phrases"`
	Weight  float64  `json:"weight" yaml:"weight"`
}

// CredibilityCategory is a themed group of trust-marker phrases.
// Credibility categories carry no weight; every hit counts equally.
type CredibilityCategory struct {
	Name    string   `json:"name" yaml:"name"`
	Phrases []string `json:"phrases" yaml:"phrases"`
}

// Catalog holds the complete phrase configuration for a detector.
// Categories are ordered slices so that iteration, and therefore
// result ordering, is stable across runs.
type Catalog struct {
	Indicators  []IndicatorCategory   `json:"indicators" yaml:"indicators"`
	Credibility []CredibilityCategory `json:"credibility" yaml:"credibility"`
}

// DefaultCatalog returns the built-in phrase catalog.
// The lists and weights are deliberate heuristics; see the weight on each
// category for its severity.
func DefaultCatalog() Catalog {
	return Catalog{
		Indicators: []IndicatorCategory{
			{
				Name: "sensational",
				Phrases: []string{
					"shocking", "unbelievable", "you won't believe", "secret revealed",
					"they don't want you to know", "amazing", "incredible", "must see",
					"breaking", "exclusive", "bombshell", "stunning",
				},
				Weight: 2.0,
			},
			{
				Name: "emotional",
				Phrases: []string{
					"outraged", "furious", "devastated", "terrified", "shocked",
					"appalled", "disgusted", "horrified", "enraged", "panic",
				},
				Weight: 1.5,
			},
			{
				Name: "clickbait",
				Phrases: []string{
					"click here", "find out", "what happens next", "number",
					"will shock you", "hate him", "this one trick", "doctors hate",
					"weird trick", "you need to see",
				},
				Weight: 2.5,
			},
			{
				Name: "absolute",
				Phrases: []string{
					"always", "never", "everyone", "nobody", "all", "none",
					"completely", "totally", "absolutely", "definitely",
				},
				Weight: 1.0,
			},
			{
				Name: "conspiracy",
				Phrases: []string{
					"conspiracy", "cover up", "hidden agenda", "illuminati",
					"deep state", "they", "them", "wake up", "sheeple", "truth",
				},
				Weight: 3.0,
			},
			{
				Name: "urgency",
				Phrases: []string{
					"urgent", "immediately", "right now", "hurry", "limited time",
					"act fast", "before it's too late", "don't wait", "last chance",
				},
				Weight: 1.5,
			},
			{
				Name: "unnamed_sources",
				Phrases: []string{
					"sources say", "experts claim", "studies show", "people are saying",
					"many believe", "some say", "it is believed", "reportedly",
				},
				Weight: 2.0,
			},
		},
		Credibility: []CredibilityCategory{
			{
				Name: "attribution",
				Phrases: []string{
					"according to", "stated", "said", "reported", "confirmed", "announced",
				},
			},
			{
				Name: "sources",
				Phrases: []string{
					"university", "institute", "journal", "research", "study", "published in",
				},
			},
			{
				Name: "dates",
				Phrases: []string{
					"2024", "2025", "january", "february", "march", "april", "may", "june",
					"july", "august", "september", "october", "november", "december",
				},
			},
		},
	}
}
