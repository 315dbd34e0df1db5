package azopenai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spigell/resume-insight/internal/ai"
	"github.com/spigell/resume-insight/internal/utils"
	"go.uber.org/zap"
)

const (
	defaultAPIVersion = "2024-02-15-preview"
	contentType       = "application/json"
	temperature       = 0.3
	maxTokens         = 2000

	maxLogLength = 300
)

// Client talks to an Azure OpenAI chat-completions deployment over raw HTTP.
type Client struct {
	endpoint   string
	apiKey     string
	deployment string
	apiVersion string
	logger     *zap.Logger
	HTTPClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// New creates a chat-completions client for the given deployment.
func New(endpoint, apiKey, deployment, apiVersion string, logger *zap.Logger) (*Client, error) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return nil, errors.New("azure openai endpoint is required")
	}

	if apiKey = strings.TrimSpace(apiKey); apiKey == "" {
		return nil, errors.New("azure openai api key is required")
	}

	if deployment = strings.TrimSpace(deployment); deployment == "" {
		return nil, errors.New("azure openai deployment name is required")
	}

	if apiVersion = strings.TrimSpace(apiVersion); apiVersion == "" {
		apiVersion = defaultAPIVersion
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		deployment: deployment,
		apiVersion: apiVersion,
		logger:     logger,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Infer sends the resume text and target role to the deployment and returns
// the raw assistant reply.
func (c *Client) Infer(ctx context.Context, resumeText, targetRole string) (string, error) {
	prompt := ai.BuildPrompt(resumeText, targetRole)

	payload, err := json.Marshal(chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, c.deployment, c.apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", contentType)

	c.logger.Debug("chat completion request",
		zap.String("deployment", c.deployment),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt.User)),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion bad status %s: %s",
			resp.Status, utils.TruncateForLog(string(body), maxLogLength))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse chat completion response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("chat completion service error %s: %s", parsed.Error.Code, parsed.Error.Message)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	reply := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("chat completion returned empty content")
	}

	c.logger.Debug("chat completion response",
		zap.Int("response_length", utf8.RuneCountInString(reply)),
		zap.String("response_preview", utils.TruncateForLog(reply, maxLogLength)),
	)

	return reply, nil
}

// Model returns the deployment name the client is bound to.
func (c *Client) Model() string {
	return c.deployment
}
