// Package cprt defines the data model for CPRT framework exports and a thin
// client for the CPRT web API. An export is a flat graph: typed elements plus
// typed, directed relationships between them.
package cprt

import "time"

// Element is one node of the CPRT graph.
type Element struct {
	Type       string `json:"element_type"`
	Identifier string `json:"element_identifier"`
	DocID      string `json:"doc_identifier"`
	Title      string `json:"title"`
	Text       string `json:"text"`
}

// GlobalID returns the compound identifier that is unique across the graph.
// Local identifiers repeat across documents; doc:local does not.
func (e *Element) GlobalID() string {
	return e.DocID + ":" + e.Identifier
}

// Withdrawn reports whether the element has been withdrawn from the
// framework. CPRT signals withdrawal with an empty title.
func (e *Element) Withdrawn() bool {
	return e.Title == ""
}

// Relationship is one directed edge of the CPRT graph.
type Relationship struct {
	SourceIdentifier string `json:"source_element_identifier"`
	SourceDocID      string `json:"source_doc_identifier"`
	DestIdentifier   string `json:"dest_element_identifier"`
	DestDocID        string `json:"dest_doc_identifier"`
	Type             string `json:"relationship_identifier"`
}

// SourceGlobalID returns the compound identifier of the source element.
func (r *Relationship) SourceGlobalID() string {
	return r.SourceDocID + ":" + r.SourceIdentifier
}

// DestGlobalID returns the compound identifier of the destination element.
func (r *Relationship) DestGlobalID() string {
	return r.DestDocID + ":" + r.DestIdentifier
}

// Document describes one source document contributing elements to an export.
type Document struct {
	Identifier string `json:"doc_identifier"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	Website    string `json:"website"`
}

// Root owns the element and relationship lists of one export. It is built
// once per conversion run and treated as read-only thereafter.
type Root struct {
	Documents     []Document     `json:"documents"`
	Elements      []Element      `json:"elements"`
	Relationships []Relationship `json:"relationships"`
}

// ExportResponse is the envelope the CPRT export endpoint returns.
type ExportResponse struct {
	Elements Root `json:"elements"`
}

// MetadataVersion describes one convertible framework version as reported by
// the CPRT metadata endpoint.
type MetadataVersion struct {
	Name                       string     `json:"name"`
	ShortName                  string     `json:"shortName"`
	FrameworkIdentifier        string     `json:"frameworkIdentifier"`
	FrameworkVersionIdentifier string     `json:"frameworkVersionIdentifier"`
	FrameworkVersionName       string     `json:"frameworkVersionName"`
	FrameworkWebsite           string     `json:"frameworkWebSite"`
	FrameworkVersionWebsite    string     `json:"frameworkVersionWebSite"`
	Version                    string     `json:"version"`
	PublicationStatus          string     `json:"publicationStatus"`
	PublicationReleaseDate     *time.Time `json:"publicationReleaseDate"`
	POCEmailAddress            string     `json:"pocEmailAddress"`
}

// MetadataResponse is the envelope the CPRT metadata endpoint returns.
type MetadataResponse struct {
	Versions []MetadataVersion `json:"versions"`
}
