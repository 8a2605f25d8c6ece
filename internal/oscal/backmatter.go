package oscal

// BackMatter is the shared resource list appended to a catalog.
type BackMatter struct {
	Resources []*Resource `json:"resources,omitempty"`
}

// Resource is an externally referenced publication or site. Its UUID is
// assigned when it is first added to back matter; links reference it as
// "#uuid".
type Resource struct {
	UUID     string    `json:"uuid"`
	Title    string    `json:"title,omitempty"`
	Citation *Citation `json:"citation,omitempty"`
	Rlinks   []Rlink   `json:"rlinks,omitempty"`
}

// Citation is the bibliographic text for a resource.
type Citation struct {
	Text string `json:"text"`
}

// Rlink points at a retrievable form of a resource.
type Rlink struct {
	Href      string `json:"href"`
	MediaType string `json:"media-type,omitempty"`
}
