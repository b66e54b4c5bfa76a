package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestComplete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected Authorization 'Bearer test-key', got %q", got)
		}

		var payload completionRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload.Model != defaultModel {
			t.Errorf("expected model %q, got %q", defaultModel, payload.Model)
		}
		if len(payload.Messages) != 1 || payload.Messages[0].Role != "user" {
			t.Errorf("expected a single user message, got %+v", payload.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello there."}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	completion, err := client.Complete(context.Background(), "Say hello")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completion != "Hello there." {
		t.Errorf("expected completion 'Hello there.', got %q", completion)
	}
}

func TestComplete_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "wrong-key")

	_, err := client.Complete(context.Background(), "Say hello")
	if err == nil {
		t.Fatal("expected error for unauthorized upstream")
	}

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if upstream.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", upstream.StatusCode)
	}
	if upstream.Body != `{"error":"invalid api key"}` {
		t.Errorf("unexpected upstream body: %q", upstream.Body)
	}
}

func TestComplete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	_, err := client.Complete(context.Background(), "Say hello")
	if err == nil {
		t.Error("expected error for empty choices")
	}
}
