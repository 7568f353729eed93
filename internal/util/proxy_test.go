package util

import (
	"net/http"
	"testing"
)

func requestFor(t *testing.T, rawURL string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func TestNewProxyFunc_ExplicitProxies(t *testing.T) {
	fn := NewProxyFunc("http://proxy:3128", "http://secure-proxy:3128", "")

	proxyURL, err := fn(requestFor(t, "http://example.com/"))
	if err != nil {
		t.Fatal(err)
	}
	if proxyURL.Host != "proxy:3128" {
		t.Errorf("expected http proxy, got %v", proxyURL)
	}

	proxyURL, err = fn(requestFor(t, "https://example.com/"))
	if err != nil {
		t.Fatal(err)
	}
	if proxyURL.Host != "secure-proxy:3128" {
		t.Errorf("expected https proxy, got %v", proxyURL)
	}
}

func TestNewProxyFunc_HTTPProxyCoversHTTPS(t *testing.T) {
	fn := NewProxyFunc("http://proxy:3128", "", "")

	proxyURL, err := fn(requestFor(t, "https://example.com/"))
	if err != nil {
		t.Fatal(err)
	}
	if proxyURL.Host != "proxy:3128" {
		t.Errorf("expected fallback to http proxy, got %v", proxyURL)
	}
}

func TestNewProxyFunc_NoProxyExclusions(t *testing.T) {
	fn := NewProxyFunc("http://proxy:3128", "", "internal.example, .corp.example")

	cases := []struct {
		url    string
		direct bool
	}{
		{"http://internal.example/", true},
		{"http://svc.internal.example/", true},
		{"http://svc.corp.example/", true},
		{"http://example.com/", false},
		{"http://notinternal.example.com/", false},
	}

	for _, tc := range cases {
		proxyURL, err := fn(requestFor(t, tc.url))
		if err != nil {
			t.Fatal(err)
		}
		if tc.direct && proxyURL != nil {
			t.Errorf("%s: expected direct connection, got proxy %v", tc.url, proxyURL)
		}
		if !tc.direct && proxyURL == nil {
			t.Errorf("%s: expected proxy, got direct", tc.url)
		}
	}
}

func TestNewProxyFunc_DefaultsToEnvironment(t *testing.T) {
	fn := NewProxyFunc("", "", "")

	// Compare against the stdlib resolver directly; the process
	// environment may or may not configure a proxy.
	req := requestFor(t, "http://example.com/")
	want, wantErr := http.ProxyFromEnvironment(req)
	got, gotErr := fn(req)

	if (wantErr == nil) != (gotErr == nil) {
		t.Fatalf("error mismatch: %v vs %v", wantErr, gotErr)
	}
	if (want == nil) != (got == nil) {
		t.Errorf("expected environment behavior %v, got %v", want, got)
	}
}
