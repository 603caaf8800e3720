package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// testRetryConfig returns a retry configuration with negligible delays
func testRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   4 * time.Millisecond,
		Timeout:    5 * time.Second,
	}
}

func TestLatestVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crates/twitch-irc" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"crate":{"max_stable_version":"5.0.1","max_version":"6.0.0-beta.1"}}`))
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, testRetryConfig())

	version, err := client.LatestVersion(context.Background(), "twitch-irc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != "5.0.1" {
		t.Errorf("expected the stable version 5.0.1, got %q", version)
	}
}

func TestLatestVersionFallsBackToMaxVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"crate":{"max_stable_version":"","max_version":"0.1.0-alpha.2"}}`))
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, testRetryConfig())

	version, err := client.LatestVersion(context.Background(), "somecrate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != "0.1.0-alpha.2" {
		t.Errorf("expected 0.1.0-alpha.2, got %q", version)
	}
}

func TestLatestVersionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, testRetryConfig())

	_, err := client.LatestVersion(context.Background(), "no-such-crate")
	if !errors.Is(err, ErrCrateNotFound) {
		t.Errorf("expected ErrCrateNotFound, got %v", err)
	}
}

func TestRetryOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"crate":{"max_stable_version":"1.0.0","max_version":"1.0.0"}}`))
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, testRetryConfig())

	var delays []time.Duration
	client.SetDelayFunc(func(d time.Duration) { delays = append(delays, d) })

	version, err := client.LatestVersion(context.Background(), "flaky")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != "1.0.0" {
		t.Errorf("expected 1.0.0, got %q", version)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}

	// Exponential backoff: base, base*2
	expected := []time.Duration{time.Millisecond, 2 * time.Millisecond}
	if len(delays) != len(expected) {
		t.Fatalf("expected delays %v, got %v", expected, delays)
	}
	for i, d := range delays {
		if d != expected[i] {
			t.Errorf("delay %d: expected %v, got %v", i, expected[i], d)
		}
	}
}

func TestRetriesExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, testRetryConfig())
	client.SetDelayFunc(func(time.Duration) {})

	_, err := client.LatestVersion(context.Background(), "down")
	if !errors.Is(err, ErrMaxRetriesExceeded) {
		t.Errorf("expected ErrMaxRetriesExceeded, got %v", err)
	}
}

func TestDelayIsCapped(t *testing.T) {
	client := NewClientWithConfig("http://unused", RetryConfig{
		MaxRetries: 5,
		BaseDelay:  time.Second,
		MaxDelay:   4 * time.Second,
		Timeout:    time.Second,
	})

	if d := client.calculateDelay(1); d != time.Second {
		t.Errorf("attempt 1: expected 1s, got %v", d)
	}
	if d := client.calculateDelay(3); d != 4*time.Second {
		t.Errorf("attempt 3: expected 4s, got %v", d)
	}
	if d := client.calculateDelay(5); d != 4*time.Second {
		t.Errorf("attempt 5: expected the 4s cap, got %v", d)
	}
}
