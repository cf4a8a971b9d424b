package study

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("test payload does not parse: %v", err)
	}
	return data
}

func TestValidateFlashcards_Valid(t *testing.T) {
	data := decode(t, `{"flashcards": [
		{"question": "What is Go?", "answer": "A programming language."},
		{"question": "Who made it?", "answer": "Google."}
	]}`)

	artifact, err := Validate(KindFlashcards, data)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	fc, ok := artifact.(Flashcards)
	if !ok {
		t.Fatalf("expected Flashcards, got %T", artifact)
	}
	if len(fc.Flashcards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(fc.Flashcards))
	}
	if fc.Flashcards[1].Answer != "Google." {
		t.Fatalf("unexpected answer: %q", fc.Flashcards[1].Answer)
	}
}

func TestValidateFlashcards_RoundTripsThroughJSON(t *testing.T) {
	data := decode(t, `{"flashcards": [{"question": "Q", "answer": "A"}]}`)

	artifact, err := Validate(KindFlashcards, data)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	stored, err := json.Marshal(artifact)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again, err := Validate(KindFlashcards, decode(t, string(stored)))
	if err != nil {
		t.Fatalf("re-validation failed: %v", err)
	}
	if !reflect.DeepEqual(artifact, again) {
		t.Fatalf("round trip changed the artifact: %#v vs %#v", artifact, again)
	}
}

func TestValidateFlashcards_EmptyListFails(t *testing.T) {
	_, err := Validate(KindFlashcards, decode(t, `{"flashcards": []}`))
	if err == nil {
		t.Fatalf("expected failure for empty flashcards")
	}
}

func TestValidateFlashcards_MissingFieldEnumerated(t *testing.T) {
	_, err := Validate(KindFlashcards, decode(t, `{"flashcards": [{"question": "Q"}]}`))
	var schemaErr *SchemaError
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %T", err)
	}
	if len(schemaErr.Violations) != 1 || !strings.Contains(schemaErr.Violations[0], "flashcards[0].answer") {
		t.Fatalf("unexpected violations: %v", schemaErr.Violations)
	}
}

func TestValidateFlashcards_UnknownKeysIgnored(t *testing.T) {
	data := decode(t, `{"flashcards": [{"question": "Q", "answer": "A", "hint": "x"}], "model": "m"}`)
	if _, err := Validate(KindFlashcards, data); err != nil {
		t.Fatalf("expected unknown keys to be tolerated, got %v", err)
	}
}

func TestValidateQuiz_Valid(t *testing.T) {
	data := decode(t, `{"quiz": [
		{"question": "2+2?", "choices": ["1", "2", "3", "4"], "answer": "4"}
	]}`)
	artifact, err := Validate(KindQuiz, data)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	quiz := artifact.(Quiz)
	if len(quiz.Quiz) != 1 || quiz.Quiz[0].Answer != "4" {
		t.Fatalf("unexpected quiz: %#v", quiz)
	}
}

func TestValidateQuiz_AnswerMustMatchAChoice(t *testing.T) {
	data := decode(t, `{"quiz": [
		{"question": "2+2?", "choices": ["1", "2", "3", "4"], "answer": "four"}
	]}`)
	_, err := Validate(KindQuiz, data)
	if err == nil {
		t.Fatalf("expected failure when answer matches no choice")
	}
	if !strings.Contains(err.Error(), "does not match any choice") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateQuiz_RequiresExactlyFourChoices(t *testing.T) {
	for _, raw := range []string{
		`{"quiz": [{"question": "Q", "choices": ["a", "b", "c"], "answer": "a"}]}`,
		`{"quiz": [{"question": "Q", "choices": ["a", "b", "c", "d", "e"], "answer": "a"}]}`,
	} {
		if _, err := Validate(KindQuiz, decode(t, raw)); err == nil {
			t.Fatalf("expected failure for %s", raw)
		}
	}
}

func TestValidateStudyPlan_Valid(t *testing.T) {
	data := decode(t, `{"plan": [
		{"day": 1, "focus": "a", "tasks": ["t"]},
		{"day": 2, "focus": "b", "tasks": ["t"]},
		{"day": 3, "focus": "c", "tasks": ["t"]},
		{"day": 4, "focus": "d", "tasks": ["t"]},
		{"day": 5, "focus": "e", "tasks": ["t"]},
		{"day": 6, "focus": "f", "tasks": ["t"]},
		{"day": 7, "focus": "g", "tasks": ["t1", "t2"]}
	]}`)
	artifact, err := Validate(KindStudyPlan, data)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	plan := artifact.(StudyPlan)
	if len(plan.Plan) != 7 || plan.Plan[6].Day != 7 {
		t.Fatalf("unexpected plan: %#v", plan)
	}
}

func TestValidateStudyPlan_WrongDayCountFails(t *testing.T) {
	six := `{"plan": [
		{"day": 1, "focus": "a", "tasks": ["t"]},
		{"day": 2, "focus": "b", "tasks": ["t"]},
		{"day": 3, "focus": "c", "tasks": ["t"]},
		{"day": 4, "focus": "d", "tasks": ["t"]},
		{"day": 5, "focus": "e", "tasks": ["t"]},
		{"day": 6, "focus": "f", "tasks": ["t"]}
	]}`
	if _, err := Validate(KindStudyPlan, decode(t, six)); err == nil {
		t.Fatalf("expected failure for 6 days")
	}

	eight := strings.Replace(six, `{"day": 6, "focus": "f", "tasks": ["t"]}`,
		`{"day": 6, "focus": "f", "tasks": ["t"]},
		{"day": 7, "focus": "g", "tasks": ["t"]},
		{"day": 7, "focus": "h", "tasks": ["t"]}`, 1)
	if _, err := Validate(KindStudyPlan, decode(t, eight)); err == nil {
		t.Fatalf("expected failure for 8 days")
	}
}

func TestValidateStudyPlan_DayRangeAndTasks(t *testing.T) {
	data := decode(t, `{"plan": [
		{"day": 0, "focus": "a", "tasks": ["t"]},
		{"day": 2, "focus": "b", "tasks": []},
		{"day": 3, "focus": "c", "tasks": ["t"]},
		{"day": 4, "focus": "d", "tasks": ["t"]},
		{"day": 5, "focus": "e", "tasks": ["t"]},
		{"day": 6, "focus": "f", "tasks": ["t"]},
		{"day": 7.5, "focus": "g", "tasks": ["t"]}
	]}`)
	_, err := Validate(KindStudyPlan, data)
	var schemaErr *SchemaError
	if err == nil || !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if len(schemaErr.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %v", schemaErr.Violations)
	}
}
