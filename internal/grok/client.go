package grok

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.x.ai/v1"
	DefaultModel   = "grok-3-mini"
)

const systemPrompt = "Ты дружелюбный помощник в телеграм-боте компании. " +
	"Отвечай кратко и по делу на русском языке. " +
	"Если вопрос не по теме компании или продукта, вежливо ответь и предложи " +
	"вернуться к кнопкам бота (О нас, Кейсы)."

// Client talks to the xAI chat completions API (OpenAI-compatible).
type Client struct {
	BaseURL string
	APIKey  string
	Model   string

	http *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// APIError carries the HTTP status for UserMessage mapping.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("xai: HTTP %d: %s", e.StatusCode, e.Body)
}

// Ask sends the user's question with the fixed system prompt and
// returns the assistant's reply.
func (c *Client) Ask(question string) (string, error) {
	reqBody := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: question},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("xai connection failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", errors.New("xai: no choices in response")
	}

	reply := strings.TrimSpace(result.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("xai: empty reply")
	}
	return reply, nil
}

// UserMessage maps well-known API failures to a message the bot can show
// directly. Returns "" for anything that should stay a generic error.
func UserMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return ""
	}
	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return "Неверный API-ключ xAI. Проверьте ключ в .env (XAI_API_KEY или AI_API_KEY)."
	case http.StatusPaymentRequired:
		return "Недостаточно средств на счёте xAI. Пополните баланс в консоли: console.x.ai"
	case http.StatusTooManyRequests:
		return "Слишком много запросов к xAI. Подождите немного и попробуйте снова."
	}
	return ""
}
