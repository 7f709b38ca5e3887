package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAnthropicURL = "https://api.anthropic.com/v1/messages"

// AnthropicClient talks to the Messages API over plain HTTP.
type AnthropicClient struct {
	APIKey  string
	Model   string
	URL     string
	HTTP    *http.Client
	Retries int
}

func NewAnthropicClient(apiKey, model string, timeout time.Duration) *AnthropicClient {
	return &AnthropicClient{
		APIKey:  apiKey,
		Model:   model,
		URL:     defaultAnthropicURL,
		HTTP:    &http.Client{Timeout: timeout},
		Retries: 3,
	}
}

func (c *AnthropicClient) Name() string { return "anthropic" }

func (c *AnthropicClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	body := map[string]any{
		"model":      c.Model,
		"max_tokens": 1024,
		"system":     systemPrompt,
		"messages": []map[string]any{{
			"role":    "user",
			"content": []map[string]string{{"type": "text", "text": prompt}},
		}},
	}
	var resp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := c.postJSON(ctx, body, &resp); err != nil {
		return "", err
	}
	if len(resp.Content) == 0 {
		return "", errors.New("no content")
	}
	return resp.Content[0].Text, nil
}

func (c *AnthropicClient) postJSON(ctx context.Context, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	url := c.URL
	if url == "" {
		url = defaultAnthropicURL
	}
	attempts := c.Retries
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, backoff(attempt-1)); err != nil {
				return err
			}
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
		if err != nil {
			return err
		}
		req.Header.Set("x-api-key", c.APIKey)
		req.Header.Set("anthropic-version", "2023-06-01")
		req.Header.Set("content-type", "application/json")

		retry, err := c.do(req, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
	}
	return lastErr
}

// do sends one request; retry reports whether the failure is transient.
func (c *AnthropicClient) do(req *http.Request, out any) (retry bool, err error) {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return isTimeout(err), err
	}
	defer res.Body.Close()
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return false, json.NewDecoder(res.Body).Decode(out)
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	err = fmt.Errorf("anthropic status %d: %s", res.StatusCode, bytes.TrimSpace(msg))
	return retryableStatus(res.StatusCode), err
}
