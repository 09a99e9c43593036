package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nctu-sis/portal-api/pkg/config"
)

func assistantConfig(baseURL string) config.AssistantConfig {
	return config.AssistantConfig{
		Enabled: true,
		APIKey:  "test-key",
		Model:   "gemini-1.5-flash",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}
}

func TestAssistantServiceChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var payload generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.NotNil(t, payload.SystemInstruction)
		require.Len(t, payload.Contents, 1)
		assert.Equal(t, "What is a pointer?", payload.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A pointer stores a memory address."}]}}]}`))
	}))
	defer server.Close()

	svc := NewAssistantService(assistantConfig(server.URL), nil)
	reply := svc.Chat(context.Background(), "What is a pointer?")
	assert.Equal(t, "A pointer stores a memory address.", reply)
}

func TestAssistantServiceChatMissingKeyFallsBack(t *testing.T) {
	cfg := assistantConfig("http://127.0.0.1:0")
	cfg.APIKey = ""
	svc := NewAssistantService(cfg, nil)

	assert.Equal(t, FallbackReply, svc.Chat(context.Background(), "hello"))
}

func TestAssistantServiceChatUpstreamErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewAssistantService(assistantConfig(server.URL), nil)
	assert.Equal(t, FallbackReply, svc.Chat(context.Background(), "hello"))
}

func TestAssistantServiceChatEmptyCandidatesFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	svc := NewAssistantService(assistantConfig(server.URL), nil)
	assert.Equal(t, FallbackReply, svc.Chat(context.Background(), "hello"))
}
