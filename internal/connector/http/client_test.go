package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(500)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(&ClientConfig{BaseURL: srv.URL, RateLimit: 1000, RateBurst: 100})
	resp, err := client.Get(context.Background(), "/thing", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !resp.IsSuccess() {
		t.Errorf("got status %d", resp.StatusCode)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("got %d calls, want 3", got)
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		calls.Add(1)
		w.WriteHeader(404)
	}))
	defer srv.Close()

	client := NewClient(&ClientConfig{BaseURL: srv.URL, RateLimit: 1000, RateBurst: 100})
	_, err := client.Get(context.Background(), "/missing", nil)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != 404 {
		t.Fatalf("expected HTTP 404, got %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("got %d calls, want 1", got)
	}
}

func TestClient_AbsoluteURLPathBypassesBase(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte("direct"))
	}))
	defer srv.Close()

	client := NewClient(&ClientConfig{BaseURL: "https://unreachable.example.com", RateLimit: 1000, RateBurst: 100})
	resp, err := client.Get(context.Background(), srv.URL+"/file", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(resp.Body) != "direct" {
		t.Errorf("got %q", resp.Body)
	}
}

func TestAuthConfigs(t *testing.T) {
	req, _ := nethttp.NewRequest("GET", "http://example.com", nil)

	BearerToken{Token: "tok"}.Apply(req)
	if got := req.Header.Get("Authorization"); got != "Bearer tok" {
		t.Errorf("got %q", got)
	}

	req, _ = nethttp.NewRequest("GET", "http://example.com", nil)
	BasicAuth{Username: "u", Password: "p"}.Apply(req)
	if user, pass, ok := req.BasicAuth(); !ok || user != "u" || pass != "p" {
		t.Errorf("basic auth not applied")
	}

	req, _ = nethttp.NewRequest("GET", "http://example.com", nil)
	APIKey{Header: "X-Api-Key", Key: "k"}.Apply(req)
	if got := req.Header.Get("X-Api-Key"); got != "k" {
		t.Errorf("got %q", got)
	}
}

func TestHTTPError_Classification(t *testing.T) {
	if !(&HTTPError{StatusCode: 401}).IsAuthFailure() || !(&HTTPError{StatusCode: 403}).IsAuthFailure() {
		t.Error("401/403 are auth failures")
	}
	if !(&HTTPError{StatusCode: 429}).IsRateLimited() {
		t.Error("429 is rate limited")
	}
	if !(&HTTPError{StatusCode: 503}).IsServerError() {
		t.Error("503 is a server error")
	}
	if (&HTTPError{StatusCode: 404}).IsAuthFailure() {
		t.Error("404 is not an auth failure")
	}
}
