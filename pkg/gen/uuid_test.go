package gen

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator(t *testing.T) {
	g := UUID()
	a, b := g.Next(), g.Next()
	if a == b {
		t.Error("expected distinct ids")
	}
	if _, err := uuid.Parse(g.NextString()); err != nil {
		t.Errorf("NextString() not a uuid: %v", err)
	}

	var nilGen UUIDGenerator
	if nilGen.Next() != uuid.Nil {
		t.Error("nil generator should return uuid.Nil")
	}
}
