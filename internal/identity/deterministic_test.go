package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	a := ArticleUUID("remote-work")
	b := ArticleUUID("  Remote-Work ")
	if a != b {
		t.Fatalf("expected normalized keys to match: %s vs %s", a, b)
	}
	if a == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
}

func TestUUIDSeparatesEntityTypes(t *testing.T) {
	if ArticleUUID("en") == LocaleUUID("en") {
		t.Fatal("expected distinct ids across entity prefixes")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if UUID("   ") != uuid.Nil {
		t.Fatal("expected nil uuid for blank key")
	}
}
