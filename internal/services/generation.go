package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "strings"

  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/study"
)

// GenerationService turns free-form note text into a schema-validated study
// artifact. One provider call, one parse attempt, one validation attempt per
// invocation; every failure surfaces as a study.GenerationError with a
// sub-reason.
type GenerationService interface {
  Generate(ctx context.Context, kind study.Kind, inputText string) (study.Artifact, error)
  Model() string
}

type generationService struct {
  log    *logger.Logger
  client OpenAIClient
}

func NewGenerationService(baseLog *logger.Logger, client OpenAIClient) GenerationService {
  serviceLog := baseLog.With("service", "GenerationService")
  return &generationService{log: serviceLog, client: client}
}

func (g *generationService) Model() string {
  return g.client.Model()
}

func (g *generationService) Generate(ctx context.Context, kind study.Kind, inputText string) (study.Artifact, error) {
  if !kind.Valid() {
    return nil, fmt.Errorf("unknown artifact kind %q", kind)
  }
  if strings.TrimSpace(inputText) == "" {
    return nil, fmt.Errorf("inputText must not be empty")
  }

  raw, err := g.client.GenerateText(ctx, study.SystemPrompt(kind), inputText)
  if err != nil {
    return nil, &study.GenerationError{Reason: study.GenerationTransport, Err: err}
  }

  if strings.TrimSpace(raw) == "" {
    return nil, &study.GenerationError{
      Reason: study.GenerationEmpty,
      Err:    errors.New("provider returned an empty response"),
    }
  }

  var data map[string]any
  if err := json.Unmarshal([]byte(raw), &data); err != nil {
    return nil, &study.GenerationError{
      Reason:  study.GenerationMalformedJSON,
      Excerpt: study.RawExcerpt(raw),
      Err:     err,
    }
  }

  artifact, err := study.Validate(kind, data)
  if err != nil {
    return nil, &study.GenerationError{Reason: study.GenerationSchemaMismatch, Err: err}
  }
  return artifact, nil
}
