package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc builds an http.Transport proxy function from explicit
// proxy URLs, falling back to the standard environment variables when
// none are configured.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	skip := parseNoProxy(noProxy)

	return func(req *http.Request) (*url.URL, error) {
		if hostExcluded(req.URL.Hostname(), skip) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

func parseNoProxy(noProxy string) []string {
	if noProxy == "" {
		return nil
	}

	var hosts []string
	for _, part := range strings.Split(noProxy, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			hosts = append(hosts, strings.TrimPrefix(part, "."))
		}
	}
	return hosts
}

func hostExcluded(host string, skip []string) bool {
	for _, s := range skip {
		if host == s || strings.HasSuffix(host, "."+s) {
			return true
		}
	}
	return false
}
