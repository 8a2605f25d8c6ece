package convert

import (
	"time"

	"github.com/oscalforge/cprtcat/internal/oscal"
)

// FrontMatter carries the static metadata literals attached to every emitted
// catalog. These are configuration with defaults, not embedded constants;
// internal/config supplies them.
type FrontMatter struct {
	GeneratedBy        string
	PublisherName      string
	PublisherShortName string
	PublisherEmail     string
	AddressLines       []string
	City               string
	State              string
	PostalCode         string
}

// buildMetadata assembles the catalog front matter from the framework
// version metadata and the configured publisher literals. Website links are
// pooled as back-matter resources alongside the ones the hierarchy emits.
func (b *Builder) buildMetadata() *oscal.Metadata {
	md := &oscal.Metadata{
		Title:        b.meta.FrameworkVersionName,
		Version:      b.meta.Version,
		OscalVersion: oscal.Version,
		LastModified: b.now().Format(time.RFC3339),
	}
	if b.meta.PublicationReleaseDate != nil {
		md.Published = b.meta.PublicationReleaseDate.Format(time.RFC3339)
	}

	md.Props = append(md.Props,
		cprtProp("framework-identifier", b.meta.FrameworkIdentifier),
		cprtProp("framework-version-identifier", b.meta.FrameworkVersionIdentifier),
		cprtProp("generated-by", b.front.GeneratedBy),
	)
	if b.meta.PublicationStatus != "" {
		md.Props = append(md.Props, cprtProp("publication-status", b.meta.PublicationStatus))
	}

	if b.meta.FrameworkWebsite != "" {
		site := &oscal.Resource{
			Title:  b.meta.FrameworkVersionName,
			Rlinks: []oscal.Rlink{{Href: b.meta.FrameworkWebsite, MediaType: "application/html"}},
		}
		md.Links = append(md.Links, b.pool.link(site, "alternate"))
	}
	if b.meta.FrameworkVersionWebsite != "" {
		versionSite := &oscal.Resource{
			Title:  b.meta.FrameworkVersionName,
			Rlinks: []oscal.Rlink{{Href: b.meta.FrameworkVersionWebsite, MediaType: "application/html"}},
		}
		md.Links = append(md.Links, b.pool.link(versionSite, "canonical"))
	}

	b.addParties(md)
	return md
}

// addParties attaches the publisher party and role assignments, plus an
// author party when the framework declares a point of contact.
func (b *Builder) addParties(md *oscal.Metadata) {
	publisher := &oscal.Party{
		UUID:      b.newUUID(),
		Type:      "organization",
		Name:      b.front.PublisherName,
		ShortName: b.front.PublisherShortName,
		Addresses: []oscal.Address{{
			AddrLines:  b.front.AddressLines,
			City:       b.front.City,
			State:      b.front.State,
			PostalCode: b.front.PostalCode,
		}},
	}
	if b.front.PublisherEmail != "" {
		publisher.EmailAddresses = append(publisher.EmailAddresses, b.front.PublisherEmail)
	}
	md.Parties = append(md.Parties, publisher)

	md.Roles = append(md.Roles,
		oscal.Role{ID: "publisher", Title: "Publisher"},
		oscal.Role{ID: "contact", Title: "Contact"},
	)
	md.ResponsibleParties = append(md.ResponsibleParties,
		oscal.ResponsibleParty{RoleID: "publisher", PartyUUIDs: []string{publisher.UUID}},
		oscal.ResponsibleParty{RoleID: "contact", PartyUUIDs: []string{publisher.UUID}},
	)

	if b.meta.POCEmailAddress != "" {
		author := &oscal.Party{
			UUID:           b.newUUID(),
			Type:           "organization",
			EmailAddresses: []string{b.meta.POCEmailAddress},
		}
		md.Parties = append(md.Parties, author)
		md.Roles = append(md.Roles, oscal.Role{ID: "author", Title: "Author"})
		md.ResponsibleParties = append(md.ResponsibleParties,
			oscal.ResponsibleParty{RoleID: "author", PartyUUIDs: []string{author.UUID}},
		)
	}
}
