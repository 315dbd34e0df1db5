package azopenai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInferSendsMessagesAndReadsContent(t *testing.T) {
	var gotPath, gotKey string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		gotKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": " {\"summary\": \"ok\"} "}}]}`))
	}))
	defer server.Close()

	client, err := New(server.URL, "test-key", "gpt-4o", "", zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reply, err := client.Infer(context.Background(), "resume body", "Senior Go Developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply != `{"summary": "ok"}` {
		t.Fatalf("unexpected reply: %q", reply)
	}

	if gotPath != "/openai/deployments/gpt-4o/chat/completions?api-version="+defaultAPIVersion {
		t.Fatalf("unexpected request path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("unexpected api key header: %q", gotKey)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotBody.Messages)
	}
	if !strings.Contains(gotBody.Messages[1].Content, "Senior Go Developer") {
		t.Fatalf("user message missing target role: %q", gotBody.Messages[1].Content)
	}
	if !strings.Contains(gotBody.Messages[1].Content, "resume body") {
		t.Fatalf("user message missing resume text: %q", gotBody.Messages[1].Content)
	}
	if gotBody.Temperature != temperature || gotBody.MaxTokens != maxTokens {
		t.Fatalf("unexpected sampling params: %+v", gotBody)
	}
}

func TestInferBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New(server.URL, "test-key", "gpt-4o", "", zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Infer(context.Background(), "text", "role"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestInferEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client, err := New(server.URL, "test-key", "gpt-4o", "", zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Infer(context.Background(), "text", "role"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	if _, err := New("", "key", "gpt-4o", "", nil); err == nil {
		t.Fatal("expected error for missing endpoint")
	}
	if _, err := New("https://example.openai.azure.com", "", "gpt-4o", "", nil); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := New("https://example.openai.azure.com", "key", "", "", nil); err == nil {
		t.Fatal("expected error for missing deployment")
	}
}
