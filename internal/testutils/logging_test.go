package testutils

import (
	"fmt"
	"log"
	"testing"
)

func TestFieldsToMap(t *testing.T) {
	tests := []struct {
		name     string
		fields   []any
		expected map[string]any
	}{
		{
			name:     "empty fields",
			fields:   []any{},
			expected: map[string]any{},
		},
		{
			name:     "single key-value pair",
			fields:   []any{"process", "devenv"},
			expected: map[string]any{"process": "devenv"},
		},
		{
			name:     "mixed types",
			fields:   []any{"pid", 4242, "clamped", false, "title", "Microsoft Visual Studio"},
			expected: map[string]any{"pid": 4242, "clamped": false, "title": "Microsoft Visual Studio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FieldsToMap(t, tt.fields)

			if len(result) != len(tt.expected) {
				t.Errorf("Expected map length %d, got %d", len(tt.expected), len(result))
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("Expected key %q not found in result", key)
				} else if actualValue != expectedValue {
					t.Errorf("Key %q: expected %v, got %v", key, expectedValue, actualValue)
				}
			}
		})
	}
}

func TestFieldsToMap_MalformedInput(t *testing.T) {
	var errorMessages []string
	mockT := &mockTestingT{
		errorFunc: func(msg string) {
			errorMessages = append(errorMessages, msg)
		},
	}

	t.Run("odd number of fields", func(t *testing.T) {
		errorMessages = nil
		result := FieldsToMap(mockT, []any{"key1", "value1", "key2"})

		if len(result) != 1 || result["key1"] != "value1" {
			t.Errorf("Expected only key1=value1, got %v", result)
		}
		if len(errorMessages) != 1 {
			t.Errorf("Expected 1 error message, got %d", len(errorMessages))
		}
	})

	t.Run("non-string key", func(t *testing.T) {
		errorMessages = nil
		result := FieldsToMap(mockT, []any{123, "value", "valid_key", "valid_value"})

		if len(result) != 1 || result["valid_key"] != "valid_value" {
			t.Errorf("Expected only valid_key=valid_value, got %v", result)
		}
		if len(errorMessages) != 1 {
			t.Errorf("Expected 1 error message, got %d", len(errorMessages))
		}
	})
}

func TestCaptureLogAndDecode(t *testing.T) {
	buf := CaptureLog(t)

	log.Println(`{"level":"INFO","message":"first"}`)
	log.Println(`{"level":"WARN","message":"second"}`)

	entries := DecodeLogLines(t, buf.String())
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0]["message"] != "first" || entries[1]["level"] != "WARN" {
		t.Errorf("Unexpected entries: %v", entries)
	}
}

// mockTestingT implements the TestingT interface for testing error handling
type mockTestingT struct {
	errorFunc func(msg string)
}

func (m *mockTestingT) Errorf(format string, args ...any) {
	if m.errorFunc != nil {
		m.errorFunc(fmt.Sprintf(format, args...))
	}
}

func (m *mockTestingT) Fatalf(format string, args ...any) {
	m.Errorf(format, args...)
}

func (m *mockTestingT) Cleanup(func()) {}
