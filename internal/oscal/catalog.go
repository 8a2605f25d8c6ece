// Package oscal defines the subset of the OSCAL 1.1.2 catalog model that the
// converter emits, with JSON tags matching the published schema. Validation
// against the full schema happens downstream of this tool.
package oscal

// Version is the OSCAL model version the emitted documents declare.
const Version = "1.1.2"

// Document is the top-level JSON envelope for a catalog file.
type Document struct {
	Catalog *Catalog `json:"catalog"`
}

// Catalog is a hierarchical set of controls.
type Catalog struct {
	UUID       string      `json:"uuid"`
	Metadata   *Metadata   `json:"metadata"`
	Groups     []*Group    `json:"groups,omitempty"`
	BackMatter *BackMatter `json:"back-matter,omitempty"`
}

// Group collects related controls, nested groups, and introductory parts.
type Group struct {
	ID       string     `json:"id,omitempty"`
	Class    string     `json:"class,omitempty"`
	Title    string     `json:"title"`
	Props    []Property `json:"props,omitempty"`
	Parts    []*Part    `json:"parts,omitempty"`
	Groups   []*Group   `json:"groups,omitempty"`
	Controls []*Control `json:"controls,omitempty"`
}

// Control is one catalog control. A withdrawn control carries only the
// withdrawn status prop and redirect links, no content parts.
type Control struct {
	ID       string       `json:"id"`
	Class    string       `json:"class,omitempty"`
	Title    string       `json:"title,omitempty"`
	Params   []*Parameter `json:"params,omitempty"`
	Props    []Property   `json:"props,omitempty"`
	Links    []Link       `json:"links,omitempty"`
	Parts    []*Part      `json:"parts,omitempty"`
	Controls []*Control   `json:"controls,omitempty"`
}

// Part is a named block of prose, recursively nestable.
type Part struct {
	ID    string     `json:"id,omitempty"`
	Name  string     `json:"name"`
	Ns    string     `json:"ns,omitempty"`
	Class string     `json:"class,omitempty"`
	Title string     `json:"title,omitempty"`
	Props []Property `json:"props,omitempty"`
	Prose string     `json:"prose,omitempty"`
	Parts []*Part    `json:"parts,omitempty"`
	Links []Link     `json:"links,omitempty"`
}

// Parameter is a value the consumer of the catalog must supply.
type Parameter struct {
	ID         string      `json:"id"`
	Class      string      `json:"class,omitempty"`
	Props      []Property  `json:"props,omitempty"`
	Links      []Link      `json:"links,omitempty"`
	Label      string      `json:"label,omitempty"`
	Usage      string      `json:"usage,omitempty"`
	Guidelines []Guideline `json:"guidelines,omitempty"`
	Values     []string    `json:"values,omitempty"`
	Remarks    string      `json:"remarks,omitempty"`
}

// Guideline is one block of parameter guidance prose.
type Guideline struct {
	Prose string `json:"prose"`
}

// Property is a name/value annotation, optionally namespaced.
type Property struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Ns      string `json:"ns,omitempty"`
	Class   string `json:"class,omitempty"`
	Remarks string `json:"remarks,omitempty"`
}

// Link is a typed reference to another resource, internal or external.
type Link struct {
	Href      string `json:"href"`
	Rel       string `json:"rel,omitempty"`
	MediaType string `json:"media-type,omitempty"`
	Text      string `json:"text,omitempty"`
}
