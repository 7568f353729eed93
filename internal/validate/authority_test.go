package validate

import (
	"testing"

	"github.com/credo-scan/credo/internal/model"
)

func TestClassify_DefaultConfig(t *testing.T) {
	c := NewAuthorityClassifier(nil)

	cases := []struct {
		url  string
		tier model.AuthorityTier
	}{
		{"https://www.who.int/news/item/some-report", model.TierPrimary},
		{"https://assets.publishing.service.gov.uk/doc.pdf", model.TierPrimary},
		{"https://cdc.gov/measles", model.TierPrimary},
		{"https://physics.mit.edu/paper", model.TierPrimary},
		{"https://en.wikipedia.org/wiki/Laksa", model.TierSecondary},
		{"https://www.reuters.com/world/story", model.TierSecondary},
		{"https://myblog.example.com/hot-take", model.TierTertiary},
		{"not a url", model.TierUnknown},
	}

	for _, tc := range cases {
		if got := c.Classify(tc.url); got != tc.tier {
			t.Errorf("Classify(%q) = %s, expected %s", tc.url, got, tc.tier)
		}
	}
}

func TestClassify_SubdomainMatching(t *testing.T) {
	c := NewAuthorityClassifier(&model.AuthorityConfig{
		SecondaryDomains: []string{"bbc.co.uk"},
	})

	if got := c.Classify("https://news.bbc.co.uk/article"); got != model.TierSecondary {
		t.Errorf("Expected subdomain of bbc.co.uk to be secondary, got %s", got)
	}
	if got := c.Classify("https://notbbc.co.uk/article"); got == model.TierSecondary {
		t.Error("Expected non-subdomain host not to match")
	}
}

func TestClassify_DomainMapOverride(t *testing.T) {
	c := NewAuthorityClassifier(&model.AuthorityConfig{
		SecondaryDomains: []string{"example.com"},
		DomainMap:        map[string]string{"example.com": "primary"},
	})

	if got := c.Classify("https://example.com/page"); got != model.TierPrimary {
		t.Errorf("Expected explicit override to win, got %s", got)
	}
}

func TestClassify_StripsPort(t *testing.T) {
	c := NewAuthorityClassifier(&model.AuthorityConfig{
		PrimaryDomains: []string{"example.com"},
	})

	if got := c.Classify("https://example.com:8443/page"); got != model.TierPrimary {
		t.Errorf("Expected port to be ignored, got %s", got)
	}
}
