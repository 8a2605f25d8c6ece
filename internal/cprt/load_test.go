package cprt

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleEnvelope = `{
  "elements": {
    "documents": [
      {"doc_identifier": "SP_800_171_3_0_0", "name": "SP 800-171", "version": "3.0.0"}
    ],
    "elements": [
      {"element_type": "family", "element_identifier": "03", "doc_identifier": "SP_800_171_3_0_0", "title": "Access Control", "text": "Overview."},
      {"element_type": "requirement", "element_identifier": "03.01.01", "doc_identifier": "SP_800_171_3_0_0", "title": "", "text": ""}
    ],
    "relationships": [
      {"source_element_identifier": "03", "source_doc_identifier": "SP_800_171_3_0_0", "dest_element_identifier": "03.01.01", "dest_doc_identifier": "SP_800_171_3_0_0", "relationship_identifier": "projection"}
    ]
  }
}`

func TestParseExport_Envelope(t *testing.T) {
	root, err := ParseExport([]byte(sampleEnvelope))
	if err != nil {
		t.Fatalf("ParseExport: %v", err)
	}
	if len(root.Elements) != 2 || len(root.Relationships) != 1 || len(root.Documents) != 1 {
		t.Fatalf("unexpected counts: %d elements, %d relationships, %d documents",
			len(root.Elements), len(root.Relationships), len(root.Documents))
	}

	elem := &root.Elements[0]
	if elem.GlobalID() != "SP_800_171_3_0_0:03" {
		t.Errorf("unexpected global id %s", elem.GlobalID())
	}
	if elem.Withdrawn() {
		t.Error("titled element must not read as withdrawn")
	}
	if !root.Elements[1].Withdrawn() {
		t.Error("empty-title element must read as withdrawn")
	}

	rel := &root.Relationships[0]
	if rel.SourceGlobalID() != "SP_800_171_3_0_0:03" || rel.DestGlobalID() != "SP_800_171_3_0_0:03.01.01" {
		t.Errorf("unexpected relationship ids: %s -> %s", rel.SourceGlobalID(), rel.DestGlobalID())
	}
}

func TestParseExport_BareRoot(t *testing.T) {
	bare := `{"elements": [{"element_type": "family", "element_identifier": "03", "doc_identifier": "D", "title": "T", "text": ""}], "relationships": []}`
	root, err := ParseExport([]byte(bare))
	if err != nil {
		t.Fatalf("ParseExport: %v", err)
	}
	if len(root.Elements) != 1 {
		t.Errorf("expected 1 element, got %d", len(root.Elements))
	}
}

func TestParseExport_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json"},
		{"empty object", "{}"},
		{"no elements", `{"elements": {"elements": []}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseExport([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(sampleEnvelope), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := LoadExport(path)
	if err != nil {
		t.Fatalf("LoadExport: %v", err)
	}
	if len(root.Elements) != 2 {
		t.Errorf("expected 2 elements, got %d", len(root.Elements))
	}

	if _, err := LoadExport(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
