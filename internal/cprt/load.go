package cprt

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadExport reads a CPRT export from a local JSON file. The file may contain
// either the full API envelope or a bare Root object; both shapes occur in
// practice (API downloads keep the envelope, hand-built fixtures do not).
func LoadExport(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export %s: %w", path, err)
	}
	return ParseExport(data)
}

// ParseExport decodes export JSON, accepting the API envelope or a bare Root.
func ParseExport(data []byte) (*Root, error) {
	var resp ExportResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	if len(resp.Elements.Elements) > 0 {
		return &resp.Elements, nil
	}

	// No envelope; try the bare shape.
	var root Root
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	if len(root.Elements) == 0 {
		return nil, fmt.Errorf("parse export: no elements found")
	}
	return &root, nil
}
