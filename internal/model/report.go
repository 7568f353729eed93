package model

import "time"

// Report is the envelope for a URL scan: the analysis of the page's
// visible text plus fetch context that helps a reader judge the source.
type Report struct {
	Subject   string    `json:"subject"`    // derived from the URL path
	SourceURL string    `json:"source_url"` // final URL after redirects
	FetchedAt time.Time `json:"fetched_at"`
	FetchMeta FetchMeta `json:"fetch_meta"`

	Authority  AuthorityTier `json:"authority"`   // informational only, never scored
	TextLength int           `json:"text_length"` // characters of extracted visible text

	Analysis *Analysis `json:"analysis,omitempty"` // nil when the page yields too little text

	LLM *LLMSummary `json:"llm,omitempty"` // optional, separate, never affects the score
}

// FetchMeta contains HTTP metadata from fetching the source
type FetchMeta struct {
	StatusCode   int               `json:"status_code"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
}

// AuthorityTier classifies the scanned host. It is reported as context
// alongside the analysis and is deliberately kept out of the score: the
// engine judges the text, not the domain.
type AuthorityTier int

const (
	TierUnknown   AuthorityTier = 0
	TierPrimary   AuthorityTier = 1 // government, academic, official bodies
	TierSecondary AuthorityTier = 2 // established media, encyclopedias
	TierTertiary  AuthorityTier = 3 // blogs, personal sites, everything else
)

func (t AuthorityTier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierSecondary:
		return "secondary"
	case TierTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the tier as its name
func (t AuthorityTier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// LLMSummary contains the optional LLM-generated explanation.
// It is produced after scoring and never feeds back into it.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
