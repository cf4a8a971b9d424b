package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yungbote/cognify-backend/internal/logger"
	"github.com/yungbote/cognify-backend/internal/study"
)

type fakeTextClient struct {
	resp       string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeTextClient) GenerateText(ctx context.Context, system string, user string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	return f.resp, f.err
}

func (f *fakeTextClient) Model() string { return "fake-model" }

func genErrFrom(t *testing.T, err error) *study.GenerationError {
	t.Helper()
	var genErr *study.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
	return genErr
}

func TestGenerate_Valid(t *testing.T) {
	fake := &fakeTextClient{resp: `{"flashcards": [{"question": "Q", "answer": "A"}]}`}
	svc := NewGenerationService(logger.NewNop(), fake)

	artifact, err := svc.Generate(context.Background(), study.KindFlashcards, "some notes")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	fc, ok := artifact.(study.Flashcards)
	if !ok {
		t.Fatalf("expected Flashcards, got %T", artifact)
	}
	if len(fc.Flashcards) != 1 || fc.Flashcards[0].Question != "Q" {
		t.Fatalf("unexpected artifact: %#v", fc)
	}
	if fake.calls != 1 {
		t.Fatalf("expected exactly one provider call, got %d", fake.calls)
	}
	if fake.lastSystem != study.SystemPrompt(study.KindFlashcards) {
		t.Fatalf("wrong system prompt sent: %q", fake.lastSystem)
	}
	if fake.lastUser != "some notes" {
		t.Fatalf("wrong user text sent: %q", fake.lastUser)
	}
}

func TestGenerate_TransportError(t *testing.T) {
	fake := &fakeTextClient{err: errors.New("connection refused")}
	svc := NewGenerationService(logger.NewNop(), fake)

	_, err := svc.Generate(context.Background(), study.KindQuiz, "notes")
	genErr := genErrFrom(t, err)
	if genErr.Reason != study.GenerationTransport {
		t.Fatalf("expected transport reason, got %q", genErr.Reason)
	}
}

func TestGenerate_EmptyResponse(t *testing.T) {
	fake := &fakeTextClient{resp: ""}
	svc := NewGenerationService(logger.NewNop(), fake)

	_, err := svc.Generate(context.Background(), study.KindFlashcards, "notes")
	genErr := genErrFrom(t, err)
	if genErr.Reason != study.GenerationEmpty {
		t.Fatalf("expected empty reason, got %q", genErr.Reason)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	fake := &fakeTextClient{resp: "not json"}
	svc := NewGenerationService(logger.NewNop(), fake)

	_, err := svc.Generate(context.Background(), study.KindFlashcards, "notes")
	genErr := genErrFrom(t, err)
	if genErr.Reason != study.GenerationMalformedJSON {
		t.Fatalf("expected malformed_json reason, got %q", genErr.Reason)
	}
	if genErr.Excerpt != "not json" {
		t.Fatalf("expected raw excerpt, got %q", genErr.Excerpt)
	}
}

func TestGenerate_ExcerptIsBounded(t *testing.T) {
	fake := &fakeTextClient{resp: "x" + strings.Repeat("y", 1000)}
	svc := NewGenerationService(logger.NewNop(), fake)

	_, err := svc.Generate(context.Background(), study.KindFlashcards, "notes")
	genErr := genErrFrom(t, err)
	if len(genErr.Excerpt) != 200 {
		t.Fatalf("expected 200-char excerpt, got %d chars", len(genErr.Excerpt))
	}
}

func TestGenerate_SchemaMismatch(t *testing.T) {
	fake := &fakeTextClient{resp: `{"flashcards": "nope"}`}
	svc := NewGenerationService(logger.NewNop(), fake)

	_, err := svc.Generate(context.Background(), study.KindFlashcards, "notes")
	genErr := genErrFrom(t, err)
	if genErr.Reason != study.GenerationSchemaMismatch {
		t.Fatalf("expected schema_mismatch reason, got %q", genErr.Reason)
	}
	var schemaErr *study.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected wrapped SchemaError, got %v", err)
	}
}

func TestGenerate_MarkdownFenceIsMalformed(t *testing.T) {
	fake := &fakeTextClient{resp: "```json\n{\"flashcards\": []}\n```"}
	svc := NewGenerationService(logger.NewNop(), fake)

	_, err := svc.Generate(context.Background(), study.KindFlashcards, "notes")
	genErr := genErrFrom(t, err)
	if genErr.Reason != study.GenerationMalformedJSON {
		t.Fatalf("expected malformed_json reason, got %q", genErr.Reason)
	}
}
