package sut

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"I am up"}`))
	}))
	defer srv.Close()

	probed := Probe(context.Background(), NewClient(Config{BaseURL: srv.URL, Method: "POST"}))
	assert.True(t, probed.Reachable)
	assert.Contains(t, probed.Message, "I am up")
}

func TestProbeNonJSONBodyStillReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain text pong"))
	}))
	defer srv.Close()

	probed := Probe(context.Background(), NewClient(Config{BaseURL: srv.URL, Method: "POST"}))
	assert.True(t, probed.Reachable)
	assert.Contains(t, probed.Message, "plain text pong")
}

func TestProbeTruncatesLongPreview(t *testing.T) {
	long := strings.Repeat("x", 200)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"answer":"` + long + `"}`))
	}))
	defer srv.Close()

	probed := Probe(context.Background(), NewClient(Config{BaseURL: srv.URL, Method: "POST"}))
	assert.True(t, probed.Reachable)
	assert.Contains(t, probed.Message, strings.Repeat("x", 80)+"...")
	assert.NotContains(t, probed.Message, strings.Repeat("x", 81))
}

func TestProbeNon2xxUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	probed := Probe(context.Background(), NewClient(Config{BaseURL: srv.URL, Method: "POST"}))
	assert.False(t, probed.Reachable)
	assert.Contains(t, probed.Message, "404")
}

func TestProbeEmptyBodyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	probed := Probe(context.Background(), NewClient(Config{BaseURL: srv.URL, Method: "POST"}))
	assert.False(t, probed.Reachable)
	assert.Contains(t, probed.Message, "empty body")
}

func TestProbeNetworkFailureUnreachable(t *testing.T) {
	probed := Probe(context.Background(), NewClient(Config{BaseURL: "http://127.0.0.1:1", Method: "POST"}))
	assert.False(t, probed.Reachable)
	assert.Contains(t, probed.Message, "unreachable")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 80))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
}
