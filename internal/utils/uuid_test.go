package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTraceID_IsUUIDv7(t *testing.T) {
	id := NewTraceID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestNewTraceID_Unique(t *testing.T) {
	if NewTraceID() == NewTraceID() {
		t.Error("expected two consecutive trace ids to differ")
	}
}
