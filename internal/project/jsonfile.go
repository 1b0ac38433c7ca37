package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// writeJSON stores v as indented JSON at path, creating parent directories.
// what names the document in error messages.
func writeJSON(path, what string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", what, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", what, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", what, err)
	}
	return nil
}

// readJSON decodes the file at path into v. Fields absent from the file keep
// whatever v already holds, so callers seed v with defaults first.
func readJSON(path, what string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", what, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", what, err)
	}
	return nil
}
