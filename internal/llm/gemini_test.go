package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{"type": "string"},
			"urgency": map[string]any{"type": "integer"},
			"label":   map[string]any{"type": "string", "enum": []any{"POSITIVE", "NEGATIVE", "NEUTRAL"}},
			"recent_scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
		"required": []any{"message", "urgency"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["message"].Type != "STRING" {
		t.Fatalf("expected STRING for message, got %s", schema.Properties["message"].Type)
	}
	if schema.Properties["urgency"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for urgency, got %s", schema.Properties["urgency"].Type)
	}
	if len(schema.Properties["label"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["label"].Enum))
	}
	if schema.Properties["recent_scores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for recent_scores, got %s", schema.Properties["recent_scores"].Type)
	}
	if schema.Properties["recent_scores"].Items.Type != "NUMBER" {
		t.Fatalf("expected NUMBER for recent_scores items, got %s", schema.Properties["recent_scores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
