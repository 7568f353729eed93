// Package validate classifies scanned hosts into authority tiers. The
// tier is reported as context next to the text analysis; it never
// feeds into the score, which judges the text alone.
package validate

import (
	"net/url"
	"strings"

	"github.com/credo-scan/credo/internal/model"
)

// AuthorityClassifier maps hosts to authority tiers
type AuthorityClassifier struct {
	config       *model.AuthorityConfig
	primaryMap   map[string]bool
	secondaryMap map[string]bool
}

// NewAuthorityClassifier creates a classifier from configuration.
// A nil config falls back to the built-in domain lists.
func NewAuthorityClassifier(config *model.AuthorityConfig) *AuthorityClassifier {
	if config == nil {
		config = &model.DefaultConfig().Authority
	}

	c := &AuthorityClassifier{
		config:       config,
		primaryMap:   make(map[string]bool),
		secondaryMap: make(map[string]bool),
	}
	for _, domain := range config.PrimaryDomains {
		c.primaryMap[domain] = true
	}
	for _, domain := range config.SecondaryDomains {
		c.secondaryMap[domain] = true
	}
	return c
}

// Classify returns the authority tier for a URL's host
func (a *AuthorityClassifier) Classify(rawURL string) model.AuthorityTier {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return model.TierUnknown
	}

	host := parsed.Host
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}

	// Explicit overrides win
	if a.config.DomainMap != nil {
		if tier, ok := a.config.DomainMap[host]; ok {
			return parseTier(tier)
		}
	}

	if matchesDomain(host, a.primaryMap) {
		return model.TierPrimary
	}
	if matchesDomain(host, a.secondaryMap) {
		return model.TierSecondary
	}

	// Government and academic TLDs are primary by convention
	for _, suffix := range []string{".gov", ".edu", ".ac.uk"} {
		if strings.HasSuffix(host, suffix) {
			return model.TierPrimary
		}
	}

	return model.TierTertiary
}

// matchesDomain reports whether host equals a configured domain or is a
// subdomain of one (news.bbc.co.uk matches bbc.co.uk).
func matchesDomain(host string, domains map[string]bool) bool {
	if domains[host] {
		return true
	}
	for domain := range domains {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func parseTier(tier string) model.AuthorityTier {
	switch strings.ToLower(tier) {
	case "primary", "1":
		return model.TierPrimary
	case "secondary", "2":
		return model.TierSecondary
	case "tertiary", "3":
		return model.TierTertiary
	default:
		return model.TierUnknown
	}
}
