package ai

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

	"github.com/alimgiray/gitfolio/internal/models"
)

const contentSystemPrompt = `You are an expert portfolio copywriter. Your job is to create compelling,
professional portfolio content that showcases a developer's skills and experience.
Write in a confident but not arrogant tone. Be specific and highlight achievements.
Always return valid JSON matching the requested structure. Do not include any text outside the JSON object.`

// Client talks to an OpenAI-compatible chat-completions endpoint. Groq and
// OpenAI share this wire protocol, so both providers are thin constructors
// around it.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Stream         bool            `json:"stream,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatStreamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func newClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// GenerateContent builds the portfolio prompt, requests a JSON-mode
// completion and parses the result.
func (c *Client) GenerateContent(ctx context.Context, userInput *models.UserInput, data *models.GitHubData) (*models.GeneratedContent, error) {
	raw, err := c.complete(ctx, contentSystemPrompt, BuildPrompt(userInput, data), 4000)
	if err != nil {
		return nil, err
	}
	return ParseContent(raw)
}

// StreamContent streams the same completion, forwarding text fragments to fn
func (c *Client) StreamContent(ctx context.Context, userInput *models.UserInput, data *models.GitHubData, fn func(chunk string) error) error {
	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: contentSystemPrompt},
			{Role: "user", Content: BuildPrompt(userInput, data)},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
		Stream:      true,
	}

	resp, err := c.post(ctx, request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var chunk chatStreamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return fmt.Errorf("failed to decode stream chunk: %w", err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if content := chunk.Choices[0].Delta.Content; content != "" {
			if err := fn(content); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream read failed: %w", err)
	}

	return nil
}

// GeneratePalette suggests a five-color hex palette for the given style
func (c *Client) GeneratePalette(ctx context.Context, style string) (*models.ColorPalette, error) {
	prompt := fmt.Sprintf(`Generate a modern, accessible color palette for a %s developer portfolio.
Return ONLY a JSON object with hex colors: { "primary": "#...", "secondary": "#...", "accent": "#...", "background": "#...", "text": "#..." }
No additional text, only the JSON object.`, style)

	raw, err := c.complete(ctx, "", prompt, 0)
	if err != nil {
		return nil, err
	}

	var palette models.ColorPalette
	if err := json.Unmarshal([]byte(raw), &palette); err != nil {
		return nil, fmt.Errorf("failed to parse palette response: %w", err)
	}
	return &palette, nil
}

// complete performs a single JSON-mode chat completion and returns the raw
// message content.
func (c *Client) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	request := chatRequest{
		Model:          c.model,
		Messages:       messages,
		Temperature:    0.7,
		MaxTokens:      maxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	resp, err := c.post(ctx, request)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return completion.Choices[0].Message.Content, nil
}

func (c *Client) post(ctx context.Context, request chatRequest) (*http.Response, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("chat completion API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return resp, nil
}
