package generation

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Backend is one generation call: prompt in, raw model output out. The
// context cancels an in-flight request.
type Backend interface {
	Generate(ctx context.Context, prompt string, stream bool, onProgress func(generated int)) (string, error)
}

// Client talks to an Ollama-style /api/generate endpoint. The response is
// either a single JSON payload or a newline-delimited stream of partial
// tokens whose concatenation forms the payload.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Model   string
	// Format is the response format constraint sent to the backend.
	// "json" for quiz generation, empty for free-text answers.
	Format string
}

func NewClient(baseURL, model string) *Client {
	return &Client{
		HTTP: &http.Client{
			Timeout: 120 * time.Second, // LLM responses are slow
		},
		BaseURL: baseURL,
		Model:   model,
		Format:  "json",
	}
}

func (c *Client) IsConnected() bool {
	resp, err := c.HTTP.Get(c.BaseURL + "/api/tags")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generate sends one prompt to the backend. With stream enabled the partial
// responses are concatenated and onProgress (if set) is called with the
// number of characters accumulated so far after each line.
func (c *Client) Generate(ctx context.Context, prompt string, stream bool, onProgress func(generated int)) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.Model,
		Prompt: prompt,
		Stream: stream,
		Format: c.Format,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d: %s", ErrBackendUnavailable, resp.StatusCode, string(msg))
	}

	if !stream {
		var out generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("%w: %v", ErrParse, err)
		}
		return out.Response, nil
	}

	var payload strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var part generateResponse
		if err := json.Unmarshal([]byte(line), &part); err != nil {
			// Skip lines that are not valid stream frames.
			continue
		}
		payload.WriteString(part.Response)
		if onProgress != nil {
			onProgress(payload.Len())
		}
		if part.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return payload.String(), nil
}

// extractJSON is the best-effort recovery for non-JSON model output: it
// looks for a fenced ```json block first, then for the outermost bare JSON
// object or array. Tried once per attempt before the attempt is abandoned.
func extractJSON(raw string) (string, bool) {
	if fenced, ok := extractFenced(raw); ok {
		return fenced, true
	}
	for _, pair := range [][2]byte{{'{', '}'}, {'[', ']'}} {
		start := strings.IndexByte(raw, pair[0])
		end := strings.LastIndexByte(raw, pair[1])
		if start >= 0 && end > start {
			return raw[start : end+1], true
		}
	}
	return "", false
}

func extractFenced(raw string) (string, bool) {
	const fence = "```"
	start := strings.Index(raw, fence)
	if start < 0 {
		return "", false
	}
	rest := raw[start+len(fence):]
	rest = strings.TrimPrefix(rest, "json")
	end := strings.Index(rest, fence)
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}
