package study

import (
	"fmt"
	"math"
	"strings"
)

// SchemaError enumerates every field violation found while validating a
// parsed JSON value against an artifact kind's schema.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "schema validation failed: " + strings.Join(e.Violations, "; ")
}

// Validate checks data against the schema for kind and returns the typed
// artifact. Validation is structural and exact: unknown keys are ignored,
// required fields, counts (4 quiz choices, 7 plan days) and leaf types are
// enforced, and the quiz answer must equal one of its choices verbatim.
func Validate(kind Kind, data map[string]any) (Artifact, error) {
	switch kind {
	case KindFlashcards:
		return validateFlashcards(data)
	case KindQuiz:
		return validateQuiz(data)
	case KindStudyPlan:
		return validateStudyPlan(data)
	}
	return nil, fmt.Errorf("unknown artifact kind %q", kind)
}

func validateFlashcards(data map[string]any) (Artifact, error) {
	v := &violations{}
	items, ok := listField(v, data, "flashcards")
	if !ok {
		return nil, v.err()
	}
	if len(items) == 0 {
		v.addf("flashcards: must not be empty")
		return nil, v.err()
	}
	out := Flashcards{Flashcards: make([]Flashcard, 0, len(items))}
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			v.addf("flashcards[%d]: expected object, got %T", i, it)
			continue
		}
		q, qok := stringField(v, m, fmt.Sprintf("flashcards[%d].question", i), "question")
		a, aok := stringField(v, m, fmt.Sprintf("flashcards[%d].answer", i), "answer")
		if qok && aok {
			out.Flashcards = append(out.Flashcards, Flashcard{Question: q, Answer: a})
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	return out, nil
}

func validateQuiz(data map[string]any) (Artifact, error) {
	v := &violations{}
	items, ok := listField(v, data, "quiz")
	if !ok {
		return nil, v.err()
	}
	out := Quiz{Quiz: make([]QuizQuestion, 0, len(items))}
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			v.addf("quiz[%d]: expected object, got %T", i, it)
			continue
		}
		path := fmt.Sprintf("quiz[%d]", i)
		q, qok := stringField(v, m, path+".question", "question")
		a, aok := stringField(v, m, path+".answer", "answer")

		rawChoices, cok := m["choices"].([]any)
		if !cok {
			v.addf("%s.choices: expected list of strings", path)
		}
		choices := make([]string, 0, len(rawChoices))
		for j, rc := range rawChoices {
			s, sok := rc.(string)
			if !sok {
				v.addf("%s.choices[%d]: expected string, got %T", path, j, rc)
				continue
			}
			choices = append(choices, s)
		}
		if cok && len(choices) != 4 {
			v.addf("%s.choices: expected exactly 4 choices, got %d", path, len(choices))
		}

		// Cross-field invariant: the answer is the exact text of one choice.
		if aok && cok && len(choices) == 4 {
			found := false
			for _, c := range choices {
				if c == a {
					found = true
					break
				}
			}
			if !found {
				v.addf("%s.answer: %q does not match any choice", path, a)
			}
		}

		if qok && aok && cok {
			out.Quiz = append(out.Quiz, QuizQuestion{Question: q, Choices: choices, Answer: a})
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	return out, nil
}

func validateStudyPlan(data map[string]any) (Artifact, error) {
	v := &violations{}
	items, ok := listField(v, data, "plan")
	if !ok {
		return nil, v.err()
	}
	if len(items) != 7 {
		v.addf("plan: expected exactly 7 day entries, got %d", len(items))
		return nil, v.err()
	}
	out := StudyPlan{Plan: make([]StudyDay, 0, 7)}
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			v.addf("plan[%d]: expected object, got %T", i, it)
			continue
		}
		path := fmt.Sprintf("plan[%d]", i)

		day, dok := intFromAny(m["day"])
		if !dok {
			v.addf("%s.day: expected integer", path)
		} else if day < 1 || day > 7 {
			v.addf("%s.day: expected 1..7, got %d", path, day)
			dok = false
		}

		focus, fok := stringField(v, m, path+".focus", "focus")

		rawTasks, tok := m["tasks"].([]any)
		if !tok {
			v.addf("%s.tasks: expected list of strings", path)
		} else if len(rawTasks) == 0 {
			v.addf("%s.tasks: must not be empty", path)
			tok = false
		}
		tasks := make([]string, 0, len(rawTasks))
		for j, rt := range rawTasks {
			s, sok := rt.(string)
			if !sok {
				v.addf("%s.tasks[%d]: expected string, got %T", path, j, rt)
				continue
			}
			tasks = append(tasks, s)
		}

		if dok && fok && tok {
			out.Plan = append(out.Plan, StudyDay{Day: day, Focus: focus, Tasks: tasks})
		}
	}
	if err := v.err(); err != nil {
		return nil, err
	}
	return out, nil
}

type violations struct {
	list []string
}

func (v *violations) addf(format string, args ...any) {
	v.list = append(v.list, fmt.Sprintf(format, args...))
}

func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &SchemaError{Violations: v.list}
}

func listField(v *violations, data map[string]any, key string) ([]any, bool) {
	raw, ok := data[key]
	if !ok {
		v.addf("%s: required field missing", key)
		return nil, false
	}
	items, ok := raw.([]any)
	if !ok {
		v.addf("%s: expected list, got %T", key, raw)
		return nil, false
	}
	return items, true
}

func stringField(v *violations, m map[string]any, path, key string) (string, bool) {
	raw, ok := m[key]
	if !ok {
		v.addf("%s: required field missing", path)
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		v.addf("%s: expected string, got %T", path, raw)
		return "", false
	}
	return s, true
}

// intFromAny accepts the integer encodings encoding/json can hand back.
func intFromAny(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
