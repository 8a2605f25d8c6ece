package convert

import "github.com/oscalforge/cprtcat/internal/oscal"

// resourcePool accumulates back-matter resources during one build. It is
// append-only: a resource is assigned its UUID at first insertion, and
// linking the same *Resource again reuses the existing entry. Deduplication
// is by identity of the value, so callers reuse the same instance for the
// same logical resource.
type resourcePool struct {
	newUUID   func() string
	resources []*oscal.Resource
	seen      map[*oscal.Resource]struct{}
}

func newResourcePool(newUUID func() string) *resourcePool {
	return &resourcePool{
		newUUID: newUUID,
		seen:    make(map[*oscal.Resource]struct{}),
	}
}

// link inserts the resource into the pool if it is not already there and
// returns a link to it with the given rel.
func (p *resourcePool) link(r *oscal.Resource, rel string) oscal.Link {
	if _, ok := p.seen[r]; !ok {
		if r.UUID == "" {
			r.UUID = p.newUUID()
		}
		p.seen[r] = struct{}{}
		p.resources = append(p.resources, r)
	}
	return oscal.Link{Href: "#" + r.UUID, Rel: rel}
}

// backMatter returns the accumulated resources, or nil if there are none.
func (p *resourcePool) backMatter() *oscal.BackMatter {
	if len(p.resources) == 0 {
		return nil
	}
	return &oscal.BackMatter{Resources: p.resources}
}
