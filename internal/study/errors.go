package study

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers an absent subject (note or group) and an absent
	// latest artifact.
	ErrNotFound = errors.New("not found")

	// ErrInvalidSubject covers a group with no member notes.
	ErrInvalidSubject = errors.New("invalid subject")

	// ErrCorruptedArtifact is returned when a directly requested stored
	// artifact fails re-validation against its kind's schema.
	ErrCorruptedArtifact = errors.New("stored artifact is corrupted")
)

// GenerationReason distinguishes why a generation call failed. Callers map
// transport-side reasons and shape-side reasons to different HTTP statuses,
// but every reason travels as the same error kind.
type GenerationReason string

const (
	GenerationTransport      GenerationReason = "transport"
	GenerationEmpty          GenerationReason = "empty"
	GenerationMalformedJSON  GenerationReason = "malformed_json"
	GenerationSchemaMismatch GenerationReason = "schema_mismatch"
)

// maxRawExcerpt bounds how much raw provider output a GenerationError may
// carry for diagnostics.
const maxRawExcerpt = 200

type GenerationError struct {
	Reason  GenerationReason
	Excerpt string
	Err     error
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("generation failed (%s)", e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Excerpt != "" {
		msg += fmt.Sprintf("; raw=%q", e.Excerpt)
	}
	return msg
}

func (e *GenerationError) Unwrap() error { return e.Err }

// RawExcerpt truncates raw provider output to the diagnostic cap.
func RawExcerpt(raw string) string {
	r := []rune(raw)
	if len(r) <= maxRawExcerpt {
		return raw
	}
	return string(r[:maxRawExcerpt])
}
