package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// CompletionClient is the single call the recommendation path makes against
// the AI provider. Callers treat any returned error as "provider
// unavailable" and fall back locally.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (Completion, error)
}

type Completion struct {
	Content string
	Usage   *Usage
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type perplexityClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *log.Logger
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
}

// NewPerplexityClient returns nil when no API key is configured; callers
// must treat a nil client as an unavailable provider.
func NewPerplexityClient(baseURL, apiKey, model string, logger *log.Logger) CompletionClient {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}

	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = "https://api.perplexity.ai"
	}
	if model == "" {
		model = "llama-3.1-sonar-small-128k-online"
	}

	return &perplexityClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *perplexityClient) Complete(ctx context.Context, prompt string) (Completion, error) {
	if c == nil || c.client == nil {
		return Completion{}, errors.New("nil completion client")
	}
	endpoint := c.baseURL + "/chat/completions"

	body := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   1000,
		Temperature: 0.7,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return Completion{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return Completion{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Completion{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("ai completion failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("[AI] Complete error endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return Completion{}, err
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Completion{}, err
	}
	if len(out.Choices) == 0 {
		return Completion{}, errors.New("ai completion: empty choices")
	}

	return Completion{Content: out.Choices[0].Message.Content, Usage: out.Usage}, nil
}

var _ CompletionClient = (*perplexityClient)(nil)
