package oscal

// Metadata is the catalog front matter.
type Metadata struct {
	Title              string             `json:"title"`
	Published          string             `json:"published,omitempty"`
	LastModified       string             `json:"last-modified"`
	Version            string             `json:"version"`
	OscalVersion       string             `json:"oscal-version"`
	Props              []Property         `json:"props,omitempty"`
	Links              []Link             `json:"links,omitempty"`
	Roles              []Role             `json:"roles,omitempty"`
	Parties            []*Party           `json:"parties,omitempty"`
	ResponsibleParties []ResponsibleParty `json:"responsible-parties,omitempty"`
}

// Role declares a function assumed by a party in the document's context.
type Role struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Party is an organization or person referenced by the metadata.
type Party struct {
	UUID           string    `json:"uuid"`
	Type           string    `json:"type"`
	Name           string    `json:"name,omitempty"`
	ShortName      string    `json:"short-name,omitempty"`
	EmailAddresses []string  `json:"email-addresses,omitempty"`
	Addresses      []Address `json:"addresses,omitempty"`
}

// Address is a postal address of a party.
type Address struct {
	AddrLines  []string `json:"addr-lines,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postal-code,omitempty"`
}

// ResponsibleParty binds a role to the parties filling it.
type ResponsibleParty struct {
	RoleID     string   `json:"role-id"`
	PartyUUIDs []string `json:"party-uuids"`
}
