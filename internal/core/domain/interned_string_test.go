package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/parsnip/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("lua")
	is2 := domain.NewInternedString("lua")

	// Identical strings intern to the same handle
	if is1 != is2 {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1, is2)
	}

	if is1.String() != "lua" {
		t.Errorf("Expected String() to return %q, got %q", "lua", is1.String())
	}

	var zero domain.InternedString
	if zero.String() != "" {
		t.Errorf("Expected zero value to render empty, got %q", zero.String())
	}
}

func TestInternedStringJSON(t *testing.T) {
	original := domain.NewInternedString("tree-sitter-lua")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal InternedString: %v", err)
	}
	if string(data) != `"tree-sitter-lua"` {
		t.Errorf("Expected JSON %q, got %q", `"tree-sitter-lua"`, string(data))
	}

	var unmarshaled domain.InternedString
	if err := json.Unmarshal(data, &unmarshaled); err != nil {
		t.Fatalf("Failed to unmarshal InternedString: %v", err)
	}
	if unmarshaled != original {
		t.Errorf("Expected unmarshaled value %q, got %q", original.String(), unmarshaled.String())
	}
}
