package convert

import (
	"testing"

	"github.com/oscalforge/cprtcat/internal/oscal"
)

func TestBuildMetadata(t *testing.T) {
	catalog := buildFixture(t)
	md := catalog.Metadata

	if md.Title != "Protecting Controlled Unclassified Information" {
		t.Errorf("unexpected title %q", md.Title)
	}
	if md.Version != "Version 3.0.0" {
		t.Errorf("unexpected version %q", md.Version)
	}
	if md.OscalVersion != oscal.Version {
		t.Errorf("unexpected oscal-version %q", md.OscalVersion)
	}
	if md.Published != "2024-05-01T00:00:00Z" {
		t.Errorf("unexpected published %q", md.Published)
	}
	if md.LastModified != "2024-05-14T12:00:00Z" {
		t.Errorf("unexpected last-modified %q", md.LastModified)
	}

	props := make(map[string]string)
	for _, p := range md.Props {
		props[p.Name] = p.Value
		if p.Ns != cprtNs {
			t.Errorf("prop %s missing cprt namespace", p.Name)
		}
	}
	want := map[string]string{
		"framework-identifier":         "SP_800_171_3_0_0",
		"framework-version-identifier": "SP_800_171_3_0_0",
		"generated-by":                 "cprtcat",
		"publication-status":           "Final",
	}
	for name, value := range want {
		if props[name] != value {
			t.Errorf("prop %s = %q, want %q", name, props[name], value)
		}
	}

	// The framework website link points into back matter.
	if len(md.Links) != 1 || md.Links[0].Rel != "alternate" {
		t.Fatalf("expected one alternate link, got %+v", md.Links)
	}
}

func TestBuildMetadata_Parties(t *testing.T) {
	catalog := buildFixture(t)
	md := catalog.Metadata

	// Publisher plus author (the fixture declares a point of contact).
	if len(md.Parties) != 2 {
		t.Fatalf("expected 2 parties, got %d", len(md.Parties))
	}
	publisher := md.Parties[0]
	if publisher.ShortName != "NIST" || publisher.Type != "organization" {
		t.Errorf("unexpected publisher: %+v", publisher)
	}
	if len(publisher.Addresses) != 1 || publisher.Addresses[0].City != "Gaithersburg" {
		t.Errorf("unexpected publisher address: %+v", publisher.Addresses)
	}

	author := md.Parties[1]
	if len(author.EmailAddresses) != 1 || author.EmailAddresses[0] != "sec-cert@nist.gov" {
		t.Errorf("unexpected author party: %+v", author)
	}

	roleIDs := make(map[string]bool)
	for _, role := range md.Roles {
		roleIDs[role.ID] = true
	}
	for _, want := range []string{"publisher", "contact", "author"} {
		if !roleIDs[want] {
			t.Errorf("missing role %s", want)
		}
	}

	responsible := make(map[string][]string)
	for _, rp := range md.ResponsibleParties {
		responsible[rp.RoleID] = rp.PartyUUIDs
	}
	if len(responsible["publisher"]) != 1 || responsible["publisher"][0] != publisher.UUID {
		t.Errorf("publisher role not bound to publisher party: %+v", responsible)
	}
	if len(responsible["author"]) != 1 || responsible["author"][0] != author.UUID {
		t.Errorf("author role not bound to author party: %+v", responsible)
	}
}

func TestBuildMetadata_NoAuthorWithoutPOC(t *testing.T) {
	meta := testMeta()
	meta.POCEmailAddress = ""

	b, err := NewBuilder(SP800171r3(), meta, fixtureRoot(), testFrontMatter(),
		WithUUIDFunc(seqUUID()), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	catalog, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	md := catalog.Metadata
	if len(md.Parties) != 1 {
		t.Errorf("expected publisher party only, got %d", len(md.Parties))
	}
	for _, role := range md.Roles {
		if role.ID == "author" {
			t.Error("author role must be absent without a point of contact")
		}
	}
}
