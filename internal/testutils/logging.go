package testutils

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
)

// TestingT is a minimal interface that matches the methods we need from testing.T
type TestingT interface {
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// FieldsToMap converts a slice of alternating key-value pairs, as passed to
// logging.Logger methods, to a map. Malformed entries are reported through t.
func FieldsToMap(t TestingT, fields []any) map[string]any {
	fieldsMap := make(map[string]any)

	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			t.Errorf("Malformed fields slice: missing value for key at index %d", i)
			continue
		}

		key, ok := fields[i].(string)
		if !ok {
			t.Errorf("Malformed fields slice: key at index %d is not a string, got %T", i, fields[i])
			continue
		}

		fieldsMap[key] = fields[i+1]
	}

	return fieldsMap
}

// CaptureLog redirects the standard logger into a buffer until the test ends
func CaptureLog(t TestingT) *bytes.Buffer {
	originalOutput := log.Writer()
	originalFlags := log.Flags()
	originalPrefix := log.Prefix()

	var buf bytes.Buffer
	log.SetOutput(&buf)

	t.Cleanup(func() {
		log.SetOutput(originalOutput)
		log.SetFlags(originalFlags)
		log.SetPrefix(originalPrefix)
	})

	return &buf
}

// DecodeLogLines parses every JSON entry written by logging.DefaultLogger,
// skipping the timestamp prefix the standard logger adds.
func DecodeLogLines(t TestingT, output string) []map[string]any {
	var entries []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}
		jsonStart := strings.Index(line, "{")
		if jsonStart == -1 {
			t.Fatalf("Expected JSON output, got: %q", line)
			return nil
		}

		var entry map[string]any
		if err := json.Unmarshal([]byte(line[jsonStart:]), &entry); err != nil {
			t.Fatalf("Failed to parse JSON log entry: %v, output: %q", err, line)
			return nil
		}
		entries = append(entries, entry)
	}

	return entries
}
