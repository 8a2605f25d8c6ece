// Package graph provides an indexed view over a CPRT export: O(1) element
// lookup by global identifier and relationship traversal queries keyed by
// source element.
package graph

import (
	"strings"

	"github.com/oscalforge/cprtcat/internal/cprt"
)

// sourceRelKey keys the relationship multi-map by source and relation type.
type sourceRelKey struct {
	sourceID     string
	relationType string
}

// Index is a read-only lookup structure over one export. Build it once per
// conversion run; the underlying Root must not change afterwards.
type Index struct {
	root *cprt.Root

	byID map[string]*cprt.Element
	// Relationship multi-maps. The recursive builder issues a relationship
	// query at every node of a deep tree, so these are built up front instead
	// of scanning the relationship list per query.
	bySource    map[string][]*cprt.Relationship
	bySourceRel map[sourceRelKey][]*cprt.Relationship
}

// NewIndex builds the index over root.
func NewIndex(root *cprt.Root) *Index {
	ix := &Index{
		root:        root,
		byID:        make(map[string]*cprt.Element, len(root.Elements)),
		bySource:    make(map[string][]*cprt.Relationship),
		bySourceRel: make(map[sourceRelKey][]*cprt.Relationship),
	}

	for i := range root.Elements {
		elem := &root.Elements[i]
		ix.byID[elem.GlobalID()] = elem
	}

	for i := range root.Relationships {
		rel := &root.Relationships[i]
		src := rel.SourceGlobalID()
		ix.bySource[src] = append(ix.bySource[src], rel)
		key := sourceRelKey{sourceID: src, relationType: rel.Type}
		ix.bySourceRel[key] = append(ix.bySourceRel[key], rel)
	}

	return ix
}

// ElementCount returns the number of indexed elements.
func (ix *Index) ElementCount() int {
	return len(ix.byID)
}

// RelationshipCount returns the number of indexed relationships.
func (ix *Index) RelationshipCount() int {
	return len(ix.root.Relationships)
}

// ByID looks up an element by its global identifier.
func (ix *Index) ByID(globalID string) (*cprt.Element, bool) {
	elem, ok := ix.byID[globalID]
	return elem, ok
}

// ByType returns all elements of the given type, in export order.
func (ix *Index) ByType(elemType string) []*cprt.Element {
	var out []*cprt.Element
	for i := range ix.root.Elements {
		elem := &ix.root.Elements[i]
		if elem.Type == elemType {
			out = append(out, elem)
		}
	}
	return out
}

// ByTypeAndIDContains returns all elements of the given type whose local
// identifier contains fragment. Some CPRT content expresses membership only
// through identifier containment, not through relationships.
func (ix *Index) ByTypeAndIDContains(elemType, fragment string) []*cprt.Element {
	var out []*cprt.Element
	for i := range ix.root.Elements {
		elem := &ix.root.Elements[i]
		if elem.Type == elemType && strings.Contains(elem.Identifier, fragment) {
			out = append(out, elem)
		}
	}
	return out
}

// relationships returns the relationships starting at sourceID, filtered by
// relation type when relationType is non-empty.
func (ix *Index) relationships(sourceID, relationType string) []*cprt.Relationship {
	if relationType == "" {
		return ix.bySource[sourceID]
	}
	return ix.bySourceRel[sourceRelKey{sourceID: sourceID, relationType: relationType}]
}

// ByRelation resolves the destinations of all relationships from sourceID
// (restricted to relationType when non-empty) and returns those of type
// destType, in relationship order.
//
// A destination identifier that does not resolve is an *IntegrityError even
// if the element it names would have been filtered out by destType: type
// filtering happens after resolution, so a broken relationship of the wrong
// type still aborts the call.
func (ix *Index) ByRelation(sourceID, destType, relationType string) ([]*cprt.Element, error) {
	var out []*cprt.Element
	for _, rel := range ix.relationships(sourceID, relationType) {
		elem, ok := ix.byID[rel.DestGlobalID()]
		if !ok {
			return nil, &IntegrityError{
				SourceID:     sourceID,
				DestID:       rel.DestGlobalID(),
				RelationType: rel.Type,
			}
		}
		if elem.Type == destType {
			out = append(out, elem)
		}
	}
	return out, nil
}

// RelatedIDs returns the raw destination local identifiers of all
// relationships from sourceID with the given relation type, without resolving
// or type-checking them. It never fails: callers use it where the destination
// lives outside this export (withdrawn-control redirects, external catalog
// references).
func (ix *Index) RelatedIDs(sourceID, relationType string) []string {
	rels := ix.relationships(sourceID, relationType)
	if len(rels) == 0 {
		return nil
	}
	out := make([]string, 0, len(rels))
	for _, rel := range rels {
		out = append(out, rel.DestIdentifier)
	}
	return out
}

// HasChildren reports whether sourceID has at least one child of destType
// under relationType. It is the leaf-termination query for recursive descent:
// recursion stops when this returns false.
//
// A relationship whose destination does not resolve still counts as a child
// candidate. The subsequent ByRelation then fails with an IntegrityError, so
// broken references stay fatal instead of silently terminating a branch.
func (ix *Index) HasChildren(sourceID, destType, relationType string) bool {
	for _, rel := range ix.relationships(sourceID, relationType) {
		elem, ok := ix.byID[rel.DestGlobalID()]
		if !ok || elem.Type == destType {
			return true
		}
	}
	return false
}
