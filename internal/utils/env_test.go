package utils

import (
	"testing"

	"github.com/yungbote/cognify-backend/internal/logger"
)

func TestGetEnv(t *testing.T) {
	log := logger.NewNop()

	if got := GetEnv("COGNIFY_TEST_MISSING", "fallback", log); got != "fallback" {
		t.Fatalf("missing var: got %q", got)
	}
	t.Setenv("COGNIFY_TEST_STR", "set")
	if got := GetEnv("COGNIFY_TEST_STR", "fallback", log); got != "set" {
		t.Fatalf("set var: got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	log := logger.NewNop()

	if got := GetEnvAsInt("COGNIFY_TEST_MISSING", 120, log); got != 120 {
		t.Fatalf("missing var: got %d", got)
	}
	t.Setenv("COGNIFY_TEST_INT", "45")
	if got := GetEnvAsInt("COGNIFY_TEST_INT", 120, log); got != 45 {
		t.Fatalf("set var: got %d", got)
	}
	t.Setenv("COGNIFY_TEST_INT", "not-a-number")
	if got := GetEnvAsInt("COGNIFY_TEST_INT", 120, log); got != 120 {
		t.Fatalf("unparsable var: got %d", got)
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	log := logger.NewNop()

	if got := GetEnvAsFloat("COGNIFY_TEST_MISSING", 0.3, log); got != 0.3 {
		t.Fatalf("missing var: got %v", got)
	}
	t.Setenv("COGNIFY_TEST_FLOAT", "0.7")
	if got := GetEnvAsFloat("COGNIFY_TEST_FLOAT", 0.3, log); got != 0.7 {
		t.Fatalf("set var: got %v", got)
	}
	t.Setenv("COGNIFY_TEST_FLOAT", "warm")
	if got := GetEnvAsFloat("COGNIFY_TEST_FLOAT", 0.3, log); got != 0.3 {
		t.Fatalf("unparsable var: got %v", got)
	}
}
