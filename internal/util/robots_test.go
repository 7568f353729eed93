package util

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsChecker_DisallowedPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewRobotsChecker("Credo/0.1", 5*time.Second)
	ctx := context.Background()

	if !checker.IsAllowed(ctx, server.URL+"/public/page") {
		t.Error("expected /public/page to be allowed")
	}
	if checker.IsAllowed(ctx, server.URL+"/private/page") {
		t.Error("expected /private/page to be disallowed")
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	checker := NewRobotsChecker("Credo/0.1", 5*time.Second)
	if !checker.IsAllowed(context.Background(), server.URL+"/anything") {
		t.Error("expected missing robots.txt to allow fetching")
	}
}

func TestRobotsChecker_UnreachableHostAllows(t *testing.T) {
	checker := NewRobotsChecker("Credo/0.1", 100*time.Millisecond)
	if !checker.IsAllowed(context.Background(), "http://127.0.0.1:1/page") {
		t.Error("expected unreachable robots.txt to allow fetching")
	}
}

func TestRobotsChecker_CachesPerHost(t *testing.T) {
	var robotsFetches atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			robotsFetches.Add(1)
			_, _ = fmt.Fprint(w, "User-agent: *\nAllow: /\n")
		}
	}))
	defer server.Close()

	checker := NewRobotsChecker("Credo/0.1", 5*time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		checker.IsAllowed(ctx, fmt.Sprintf("%s/page-%d", server.URL, i))
	}

	if robotsFetches.Load() != 1 {
		t.Errorf("expected 1 robots.txt fetch, got %d", robotsFetches.Load())
	}
}

func TestRobotsChecker_BadURL(t *testing.T) {
	checker := NewRobotsChecker("Credo/0.1", time.Second)
	if _, err := checker.CanFetch(context.Background(), "://bad"); err == nil {
		t.Error("expected error for unparseable URL")
	}
}
