package openrouter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HarshitaThota/OneiroNet-AI/internal/adapters/llm/openrouter"
	"github.com/HarshitaThota/OneiroNet-AI/internal/domain"
)

func testPrompt() domain.ComposedPrompt {
	return domain.ComposedPrompt{
		System: "You are the Jungian Agent.",
		User:   "Interpret via Jungian psychology. Context:\nDream text: I was flying.",
	}
}

func chatReply(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestClient_Generate_Success(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("bad auth header: %s", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("bad content-type: %s", r.Header.Get("Content-Type"))
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatReply("  A gentle reading of the dream.  "))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), openrouter.Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "test-model",
		Temperature: 0.8,
		MaxTokens:   400,
	}, slog.Default())

	text, err := client.Generate(context.Background(), testPrompt())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "A gentle reading of the dream." {
		t.Errorf("expected trimmed completion, got %q", text)
	}

	if gotReq["model"] != "test-model" {
		t.Errorf("request model: %v", gotReq["model"])
	}
	if gotReq["temperature"] != 0.8 {
		t.Errorf("request temperature: %v", gotReq["temperature"])
	}
	if gotReq["max_tokens"] != float64(400) {
		t.Errorf("request max_tokens: %v", gotReq["max_tokens"])
	}

	msgs, _ := gotReq["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	first, _ := msgs[0].(map[string]any)
	second, _ := msgs[1].(map[string]any)
	if first["role"] != "system" || second["role"] != "user" {
		t.Errorf("expected system then user turns, got %v then %v", first["role"], second["role"])
	}
}

func TestClient_Generate_FallbackModel(t *testing.T) {
	callCount := 0
	var models []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		var req map[string]any
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &req)
		models = append(models, req["model"].(string))

		if callCount == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limited"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatReply("Backup model reading."))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), openrouter.Config{
		APIKey:         "key",
		BaseURL:        srv.URL,
		Model:          "primary",
		FallbackModels: []string{"backup"},
	}, slog.Default())

	text, err := client.Generate(context.Background(), testPrompt())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if callCount != 2 {
		t.Errorf("expected 2 calls (primary + fallback), got %d", callCount)
	}
	if len(models) != 2 || models[0] != "primary" || models[1] != "backup" {
		t.Errorf("unexpected model order: %v", models)
	}
	if text != "Backup model reading." {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestClient_Generate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), openrouter.Config{
		APIKey:  "key",
		BaseURL: srv.URL,
		Model:   "model",
	}, slog.Default())

	_, err := client.Generate(context.Background(), testPrompt())
	if err == nil {
		t.Fatal("expected error for upstream 500, got nil")
	}
	if !errors.Is(err, domain.ErrUpstreamLLM) {
		t.Errorf("expected ErrUpstreamLLM, got %v", err)
	}
}

func TestClient_Generate_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := openrouter.NewClient(srv.Client(), openrouter.Config{
		APIKey:  "key",
		BaseURL: srv.URL,
		Model:   "model",
	}, slog.Default())

	_, err := client.Generate(context.Background(), testPrompt())
	if !errors.Is(err, domain.ErrUpstreamLLM) {
		t.Errorf("expected ErrUpstreamLLM for empty choices, got %v", err)
	}
}
