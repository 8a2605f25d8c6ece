package cache

import (
	"bytes"
	"database/sql"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_SetGetExport(t *testing.T) {
	c := openTestCache(t)

	payload := []byte(`{"elements":{"elements":[]}}`)
	if err := c.SetExport("SP_800_171_3_0_0", payload); err != nil {
		t.Fatalf("SetExport: %v", err)
	}

	got, err := c.GetExport("SP_800_171_3_0_0")
	if err != nil {
		t.Fatalf("GetExport: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload round-trip mismatch: got %q", got)
	}
}

func TestCache_GetExport_Missing(t *testing.T) {
	c := openTestCache(t)

	_, err := c.GetExport("CSF_2_0_0")
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestCache_SetExport_Replaces(t *testing.T) {
	c := openTestCache(t)

	if err := c.SetExport("SP_800_171_3_0_0", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := c.SetExport("SP_800_171_3_0_0", []byte("new")); err != nil {
		t.Fatal(err)
	}

	got, err := c.GetExport("SP_800_171_3_0_0")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("expected replacement payload, got %q", got)
	}

	stats, err := c.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.ExportCount != 1 {
		t.Errorf("expected 1 export after replace, got %d", stats.ExportCount)
	}
}

func TestCache_ListAndDelete(t *testing.T) {
	c := openTestCache(t)

	if err := c.SetExport("SP_800_171_3_0_0", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := c.SetExport("CSF_2_0_0", []byte("b")); err != nil {
		t.Fatal(err)
	}

	entries, err := c.ListExports()
	if err != nil {
		t.Fatalf("ListExports: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].FrameworkVersionID != "CSF_2_0_0" {
		t.Errorf("expected ordered listing, got %v", entries)
	}
	if entries[0].FetchedAt.IsZero() {
		t.Error("expected fetched_at to be set")
	}

	if err := c.DeleteExport("CSF_2_0_0"); err != nil {
		t.Fatalf("DeleteExport: %v", err)
	}
	if _, err := c.GetExport("CSF_2_0_0"); err != sql.ErrNoRows {
		t.Errorf("expected deleted export to be gone, got %v", err)
	}
}

func TestCache_Clear(t *testing.T) {
	c := openTestCache(t)

	if err := c.SetExport("SP_800_171_3_0_0", []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	stats, err := c.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.ExportCount != 0 || stats.TotalBytes != 0 {
		t.Errorf("expected empty cache, got %+v", stats)
	}
}
