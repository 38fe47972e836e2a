// Package ollama is a minimal streaming chat client for an
// Ollama-compatible model server.
package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultHost is used when neither the --host flag nor OLLAMA_HOST is set.
const DefaultHost = "http://127.0.0.1:11434"

// DefaultModel matches the original tool's default.
const DefaultModel = "deepseek-r1"

// systemPrompt frames every request.
const systemPrompt = "You are a health data analyst. Provide detailed analysis and actionable insights."

// Generation parameters are fixed; only model and prompt vary per run.
var chatOptions = map[string]interface{}{
	"temperature": 0.3,
	"num_ctx":     6144,
}

// Host resolves the server base URL from an explicit value, OLLAMA_HOST,
// or the default, in that order.
func Host(explicit string) string {
	if explicit != "" {
		return strings.TrimRight(explicit, "/")
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return DefaultHost
}

// Client talks to one Ollama-compatible server.
type Client struct {
	host       string
	httpClient *http.Client
}

// New creates a client for the given base URL. The HTTP client carries no
// timeout of its own; callers bound requests through the context.
func New(host string) *Client {
	return &Client{
		host:       strings.TrimRight(host, "/"),
		httpClient: &http.Client{},
	}
}

// Available reports whether the server answers its tags endpoint.
func (c *Client) Available(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode/100 == 2
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string                 `json:"model"`
	Messages []message              `json:"messages"`
	Stream   bool                   `json:"stream"`
	Options  map[string]interface{} `json:"options"`
}

type chatChunk struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	Done  bool   `json:"done"`
	Error string `json:"error"`
}

// Chat streams a chat completion for prompt. Each text fragment is passed
// to onFragment as it arrives; the accumulated text is returned. Fragments
// already delivered are kept even when the stream ends in an error.
func (c *Client) Chat(ctx context.Context, model, prompt string, onFragment func(string)) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Stream:  true,
		Options: chatOptions,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach %s: %w", c.host, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var collected strings.Builder
	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			var chunk chatChunk
			if jsonErr := json.Unmarshal(line, &chunk); jsonErr != nil {
				return collected.String(), fmt.Errorf("malformed stream chunk: %w", jsonErr)
			}
			if chunk.Error != "" {
				return collected.String(), errors.New(chunk.Error)
			}
			if chunk.Message.Content != "" {
				collected.WriteString(chunk.Message.Content)
				if onFragment != nil {
					onFragment(chunk.Message.Content)
				}
			}
			if chunk.Done {
				return collected.String(), nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return collected.String(), nil
			}
			return collected.String(), fmt.Errorf("stream interrupted: %w", err)
		}
	}
}
