package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_Ordered(t *testing.T) {
	g := NewUUIDGenerator()

	prev := g.Generate()
	for i := 0; i < 100; i++ {
		next := g.Generate()
		if next <= prev {
			t.Fatalf("expected increasing ids, got %s after %s", next, prev)
		}
		prev = next
	}
}
