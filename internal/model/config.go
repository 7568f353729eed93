package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config is the complete runtime configuration for credo
type Config struct {
	HTTP        HTTPConfig        `json:"http" yaml:"http"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	Output      OutputConfig      `json:"output" yaml:"output"`
	Authority   AuthorityConfig   `json:"authority" yaml:"authority"`
	LLM         LLMConfig         `json:"llm" yaml:"llm"`
	Server      ServerConfig      `json:"server" yaml:"server"`

	// CatalogPath points to an optional YAML catalog override.
	// Empty means the built-in catalog.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`
}

// HTTPConfig controls page fetching for URL scans
type HTTPConfig struct {
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent    string        `json:"user_agent" yaml:"user_agent"`
	MaxBodyBytes int64         `json:"max_body_bytes" yaml:"max_body_bytes"`
	InsecureTLS  bool          `json:"insecure_tls" yaml:"insecure_tls"`
	HTTPProxy    string        `json:"http_proxy,omitempty" yaml:"http_proxy,omitempty"`
	HTTPSProxy   string        `json:"https_proxy,omitempty" yaml:"https_proxy,omitempty"`
	NoProxy      string        `json:"no_proxy,omitempty" yaml:"no_proxy,omitempty"`
	RespectRobots bool         `json:"respect_robots" yaml:"respect_robots"`
}

// CacheConfig controls the fetched-page cache
type CacheConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Dir       string        `json:"dir" yaml:"dir"`
	MemoryTTL time.Duration `json:"memory_ttl" yaml:"memory_ttl"`
	DiskTTL   time.Duration `json:"disk_ttl" yaml:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers        int     `json:"workers" yaml:"workers"`
	RequestsPerSec float64 `json:"requests_per_sec" yaml:"requests_per_sec"`
	Burst          int     `json:"burst" yaml:"burst"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `json:"verbose" yaml:"verbose"`
	IncludeFooter bool `json:"include_footer" yaml:"include_footer"`
}

// AuthorityConfig configures host classification for scanned URLs
type AuthorityConfig struct {
	PrimaryDomains   []string          `json:"primary_domains" yaml:"primary_domains"`
	SecondaryDomains []string          `json:"secondary_domains" yaml:"secondary_domains"`
	DomainMap        map[string]string `json:"domain_map,omitempty" yaml:"domain_map,omitempty"`
}

// LLMConfig configures the optional summary provider
type LLMConfig struct {
	Provider  string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model     string `json:"model,omitempty" yaml:"model,omitempty"`
	APIKey    string `json:"-" yaml:"-"`
	BaseURL   string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout   int    `json:"timeout" yaml:"timeout"` // seconds
	MaxTokens int    `json:"max_tokens" yaml:"max_tokens"`
}

// ServerConfig configures the analyze HTTP service
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	cacheDir := ".credo-cache"
	if home, err := os.UserHomeDir(); err == nil {
		cacheDir = filepath.Join(home, ".credo", "cache")
	}

	return &Config{
		HTTP: HTTPConfig{
			Timeout:       2 * time.Minute,
			UserAgent:     "Credo/0.1 (+https://github.com/credo-scan/credo)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       cacheDir,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:        runtime.NumCPU(),
			RequestsPerSec: 2,
			Burst:          5,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Authority: AuthorityConfig{
			PrimaryDomains: []string{
				"gov.uk", "europa.eu", "who.int", "un.org", "nih.gov", "nature.com",
			},
			SecondaryDomains: []string{
				"wikipedia.org", "britannica.com", "reuters.com", "apnews.com",
				"bbc.co.uk", "bbc.com", "nytimes.com", "theguardian.com",
			},
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 1000,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
