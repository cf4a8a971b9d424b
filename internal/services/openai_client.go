package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "os"
  "strings"
  "time"

  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/utils"
)

// OpenAIClient is the raw text-completion boundary: one request in, one text
// blob out. It performs exactly one HTTP call per invocation; retrying is
// the caller's decision.
type OpenAIClient interface {
  GenerateText(ctx context.Context, system string, user string) (string, error)
  Model() string
}

type openAIClient struct {
  log         *logger.Logger
  baseURL     string
  apiKey      string
  model       string
  temperature float64
  httpClient  *http.Client
}

func NewOpenAIClient(log *logger.Logger) (OpenAIClient, error) {
  apiKey := os.Getenv("OPENAI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing OPENAI_API_KEY")
  }

  baseURL := strings.TrimRight(utils.GetEnv("OPENAI_BASE_URL", "https://api.openai.com", log), "/")
  model := utils.GetEnv("OPENAI_MODEL", "gpt-4o-mini", log)

  // Sampling temperature. Structured generation wants deterministic-shaped
  // output over creative variation, so the default sits low; tune through
  // OPENAI_TEMPERATURE.
  temperature := utils.GetEnvAsFloat("OPENAI_TEMPERATURE", 0.3, log)

  timeoutSec := utils.GetEnvAsInt("OPENAI_TIMEOUT_SECONDS", 120, log)
  if timeoutSec <= 0 {
    timeoutSec = 120
  }

  return &openAIClient{
    log:         log.With("service", "OpenAIClient"),
    baseURL:     baseURL,
    apiKey:      apiKey,
    model:       model,
    temperature: temperature,
    httpClient:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
  }, nil
}

func (c *openAIClient) Model() string {
  return c.model
}

type openAIHTTPError struct {
  StatusCode int
  Body       string
}

func (e *openAIHTTPError) Error() string {
  return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Body)
}

type chatCompletionsRequest struct {
  Model       string        `json:"model"`
  Messages    []chatMessage `json:"messages"`
  Temperature float64       `json:"temperature"`
}

type chatMessage struct {
  Role    string `json:"role"`
  Content string `json:"content"`
}

type chatCompletionsResponse struct {
  Choices []struct {
    Message struct {
      Content string `json:"content"`
    } `json:"message"`
  } `json:"choices"`
}

func (c *openAIClient) doOnce(ctx context.Context, method, path string, body any) ([]byte, error) {
  var buf bytes.Buffer
  if body != nil {
    if err := json.NewEncoder(&buf).Encode(body); err != nil {
      return nil, err
    }
  }

  req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
  if err != nil {
    return nil, err
  }
  req.Header.Set("Authorization", "Bearer "+c.apiKey)
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return nil, err
  }

  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return nil, readErr
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return nil, &openAIHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
  }
  return raw, nil
}

func (c *openAIClient) GenerateText(ctx context.Context, system string, user string) (string, error) {
  req := chatCompletionsRequest{
    Model: c.model,
    Messages: []chatMessage{
      {Role: "system", Content: system},
      {Role: "user", Content: user},
    },
    Temperature: c.temperature,
  }

  raw, err := c.doOnce(ctx, "POST", "/v1/chat/completions", req)
  if err != nil {
    return "", err
  }

  var resp chatCompletionsResponse
  if err := json.Unmarshal(raw, &resp); err != nil {
    return "", fmt.Errorf("openai decode error: %w", err)
  }
  if len(resp.Choices) == 0 {
    return "", nil
  }
  return resp.Choices[0].Message.Content, nil
}
