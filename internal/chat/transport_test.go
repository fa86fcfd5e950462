// ABOUTME: Tests for the HTTP proxy client against a local test server.
package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientComplete(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "hello from the proxy"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit")
	reply, err := c.Complete(context.Background(), Request{
		Messages:     []Message{{Role: "user", Content: "hi"}},
		SystemPrompt: "be kind",
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != "hello from the proxy" {
		t.Errorf("reply = %q", reply)
	}
	if gotAuth != "Bearer sekrit" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody.SystemPrompt != "be kind" || len(gotBody.Messages) != 1 {
		t.Errorf("request body = %+v", gotBody)
	}
}

func TestClientCompleteNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "wrong")
	_, err := c.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("non-200 should be an error")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "bad token") {
		t.Errorf("error = %v, want status and body", err)
	}
}

func TestClientCompleteBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if _, err := c.Complete(context.Background(), Request{}); err == nil {
		t.Fatal("undecodable body should be an error")
	}
}

func TestClientCompleteCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": "too late"})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, "tok")
	if _, err := c.Complete(ctx, Request{}); err == nil {
		t.Fatal("canceled context should be an error")
	}
}
