package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SecureLend/sdk/providers/observability"
)

// TestPostJSON_Success verifies headers, body and the returned response.
func TestPostJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer sk" {
			t.Errorf("expected bearer header, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["name"] != "find_credit_cards" {
			t.Errorf("unexpected body %v (%v)", body, err)
		}
		w.Header().Set("X-Request-Id", "r1")
		fmt.Fprint(w, `{"content":[]}`)
	}))
	defer server.Close()

	header := http.Header{}
	header.Set("Authorization", "Bearer sk")

	res, err := PostJSON(context.Background(), server.Client(), server.URL, header, map[string]string{"name": "find_credit_cards"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.IsSuccess() || res.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", res.StatusCode)
	}
	if string(res.Body) != `{"content":[]}` {
		t.Errorf("unexpected body %s", res.Body)
	}
	if res.Header.Get("X-Request-Id") != "r1" {
		t.Errorf("expected response headers to be kept")
	}
}

// TestPostJSON_Non2xxIsNotAnError leaves status interpretation to the caller.
func TestPostJSON_Non2xxIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "maintenance")
	}))
	defer server.Close()

	res, err := PostJSON(context.Background(), server.Client(), server.URL, nil, struct{}{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.IsSuccess() || res.StatusCode != http.StatusServiceUnavailable || string(res.Body) != "maintenance" {
		t.Errorf("unexpected response %d %q", res.StatusCode, res.Body)
	}
}

// TestPostJSON_EncodeError verifies nothing is sent for an unserialisable body.
func TestPostJSON_EncodeError(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	_, err := PostJSON(context.Background(), server.Client(), server.URL, nil, map[string]any{"f": func() {}})
	if !errors.Is(err, ErrEncodeBody) {
		t.Fatalf("expected ErrEncodeBody, got %v", err)
	}
	if called {
		t.Error("expected no request to be sent")
	}
}

// TestPostJSON_ConnectionRefused returns a transport error.
func TestPostJSON_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := PostJSON(context.Background(), nil, url, nil, struct{}{})
	if err == nil {
		t.Fatal("expected an error for a closed server")
	}
}

// TestPostJSON_ContextDeadline verifies the context bounds the round trip.
func TestPostJSON_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := PostJSON(ctx, server.Client(), server.URL, nil, struct{}{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

type recordingSpan struct {
	events []string
}

func (s *recordingSpan) End()                                               {}
func (s *recordingSpan) SetAttributes(...observability.Attribute)           {}
func (s *recordingSpan) SetStatus(observability.StatusCode, string)         {}
func (s *recordingSpan) RecordError(error)                                  {}
func (s *recordingSpan) AddEvent(name string, _ ...observability.Attribute) { s.events = append(s.events, name) }

// TestPostJSON_SpanEvents verifies the HTTP lifecycle is recorded on the span.
func TestPostJSON_SpanEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	span := &recordingSpan{}
	ctx := observability.ContextWithSpan(context.Background(), span)

	if _, err := PostJSON(ctx, server.Client(), server.URL, nil, struct{}{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{observability.EventHTTPRequestPrepared, observability.EventHTTPResponseReceived}
	if len(span.events) != len(want) || span.events[0] != want[0] || span.events[1] != want[1] {
		t.Errorf("expected events %v, got %v", want, span.events)
	}
}
