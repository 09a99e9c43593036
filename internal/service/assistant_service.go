package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nctu-sis/portal-api/pkg/config"
)

// FallbackReply is shown whenever the upstream call cannot produce a reply.
// Assistant failures never surface as errors and never touch the store.
const FallbackReply = "Sorry, I'm having trouble connecting to the AI service right now. Please check your API key configuration."

const systemInstruction = "You are a helpful, friendly, and knowledgeable University Assistant for the NCTU SIS Portal. " +
	"Help students with academic questions, programming concepts (C++, Python, Java), and general university advice. " +
	"Keep answers concise and encouraging."

// AssistantService is a thin pass-through to the Gemini generateContent
// endpoint: compose a prompt, forward it, return the text reply.
type AssistantService struct {
	cfg    config.AssistantConfig
	client *http.Client
	logger *zap.Logger
}

// NewAssistantService constructs the assistant pass-through.
func NewAssistantService(cfg config.AssistantConfig, logger *zap.Logger) *AssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Chat forwards the user's message and returns the model's text reply. Every
// failure mode degrades to the fixed fallback string.
func (s *AssistantService) Chat(ctx context.Context, message string) string {
	exchangeID := uuid.NewString()

	reply, err := s.generate(ctx, message)
	if err != nil {
		s.logger.Warn("assistant call failed", zap.String("exchange_id", exchangeID), zap.Error(err))
		return FallbackReply
	}

	s.logger.Debug("assistant reply", zap.String("exchange_id", exchangeID), zap.Int("reply_len", len(reply)))
	return reply
}

func (s *AssistantService) generate(ctx context.Context, message string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", fmt.Errorf("assistant api key not configured")
	}

	payload := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: message}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.cfg.BaseURL, s.cfg.Model, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call assistant: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant status %d: %s", resp.StatusCode, raw)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from assistant")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
