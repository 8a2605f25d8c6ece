// Package convert turns an indexed CPRT export into an OSCAL catalog. A
// single generic Builder walks the graph layer by layer along the framework's
// structural relation, guided by a per-framework Descriptor.
package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oscalforge/cprtcat/internal/cprt"
	"github.com/oscalforge/cprtcat/internal/graph"
	"github.com/oscalforge/cprtcat/internal/oscal"
	"github.com/oscalforge/cprtcat/internal/rewrite"
)

// cprtNs namespaces the props this converter adds to emitted documents.
const cprtNs = "https://csrc.nist.gov/ns/cprt"

// Builder converts one export. It is single-use: Build walks the graph once,
// top to bottom, and no output node is revisited after its subtree attaches
// to its parent. The resource pool is the only state shared across branches.
type Builder struct {
	desc  *Descriptor
	meta  *cprt.MetadataVersion
	ix    *graph.Index
	front FrontMatter

	pool    *resourcePool
	newUUID func() string
	now     func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithUUIDFunc substitutes the UUID source, for deterministic output.
func WithUUIDFunc(fn func() string) Option {
	return func(b *Builder) { b.newUUID = fn }
}

// WithClock substitutes the clock used for the last-modified timestamp.
func WithClock(fn func() time.Time) Option {
	return func(b *Builder) { b.now = fn }
}

// NewBuilder validates the framework identity and prepares a Builder. The
// export's declared framework must match the descriptor's; a mismatch is
// fatal before any traversal starts.
func NewBuilder(desc *Descriptor, meta *cprt.MetadataVersion, root *cprt.Root, front FrontMatter, opts ...Option) (*Builder, error) {
	if meta.FrameworkIdentifier != desc.FrameworkID {
		return nil, &FrameworkError{Want: desc.FrameworkID, Got: meta.FrameworkIdentifier}
	}

	b := &Builder{
		desc:    desc,
		meta:    meta,
		ix:      graph.NewIndex(root),
		front:   front,
		newUUID: uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.pool = newResourcePool(b.newUUID)
	return b, nil
}

// Build assembles the complete catalog document.
func (b *Builder) Build() (*oscal.Catalog, error) {
	catalog := &oscal.Catalog{UUID: b.newUUID()}
	catalog.Metadata = b.buildMetadata()

	groups, err := b.buildGroups()
	if err != nil {
		return nil, err
	}
	catalog.Groups = groups
	catalog.BackMatter = b.pool.backMatter()

	return catalog, nil
}

// buildGroups emits one group per root-type element, in export order.
func (b *Builder) buildGroups() ([]*oscal.Group, error) {
	var groups []*oscal.Group
	for _, elem := range b.ix.ByType(b.desc.RootType) {
		overview, err := b.partFromText(elem, "overview")
		if err != nil {
			return nil, err
		}

		group := &oscal.Group{
			ID:    elem.Identifier,
			Class: elem.Type,
			Title: elem.Title,
			Parts: []*oscal.Part{overview},
			Props: []oscal.Property{labelProp(elem.Title + " (" + elem.Identifier + ")")},
		}

		controls, err := b.buildRequirementControls(elem.GlobalID())
		if err != nil {
			return nil, err
		}
		group.Controls = controls

		groups = append(groups, group)
	}
	return groups, nil
}

// buildRequirementControls emits the middle layer: one control per
// requirement-type child of parentID.
func (b *Builder) buildRequirementControls(parentID string) ([]*oscal.Control, error) {
	children, err := b.ix.ByRelation(parentID, b.desc.RequirementType, b.desc.StructuralRelation)
	if err != nil {
		return nil, err
	}

	var controls []*oscal.Control
	for _, elem := range children {
		control := &oscal.Control{
			ID:    elem.Identifier,
			Class: elem.Type,
		}

		if elem.Withdrawn() {
			control.Props = append(control.Props, withdrawnProp())
			links, err := b.withdrawnLinks(elem.GlobalID())
			if err != nil {
				return nil, err
			}
			control.Links = append(control.Links, links...)
			controls = append(controls, control)
			continue
		}

		control.Title = elem.Title
		control.Props = append(control.Props, labelProp(elem.Title+" ("+elem.Identifier+")"))

		if err := b.hydrateRequirement(control, elem); err != nil {
			return nil, err
		}

		subControls, err := b.buildSubRequirementControls(elem.GlobalID())
		if err != nil {
			return nil, err
		}
		control.Controls = subControls

		controls = append(controls, control)
	}
	return controls, nil
}

// hydrateRequirement fills a live (non-withdrawn) requirement control with
// its statement, guidance, assessment content, parameters, and links.
func (b *Builder) hydrateRequirement(control *oscal.Control, elem *cprt.Element) error {
	statement, err := b.partFromText(elem, "statement")
	if err != nil {
		return err
	}
	control.Parts = append(control.Parts, statement)

	// One guidance part per discussion child.
	if b.desc.DiscussionType != "" {
		discussions, err := b.ix.ByRelation(elem.GlobalID(), b.desc.DiscussionType, b.desc.StructuralRelation)
		if err != nil {
			return err
		}
		for _, d := range discussions {
			part, err := b.partFromText(d, "guidance")
			if err != nil {
				return err
			}
			control.Parts = append(control.Parts, part)
		}
	}

	// Assessment objectives and the parameters they declare. ODPs are
	// resolved from objective text because that is where their identifiers
	// appear explicitly.
	if b.desc.DeterminationType != "" {
		objectives, err := b.ix.ByRelation(elem.GlobalID(), b.desc.DeterminationType, b.desc.StructuralRelation)
		if err != nil {
			return err
		}
		for _, obj := range objectives {
			control.Parts = append(control.Parts, b.buildObjectivePart(obj))
		}
		params, err := b.buildParams(objectives)
		if err != nil {
			return err
		}
		control.Params = params
	}

	// One assessment-method part per method-category child.
	for _, methodType := range b.desc.MethodTypes {
		methods, err := b.ix.ByRelation(elem.GlobalID(), methodType, b.desc.StructuralRelation)
		if err != nil {
			return err
		}
		for _, m := range methods {
			part, err := b.buildMethodPart(m)
			if err != nil {
				return err
			}
			control.Parts = append(control.Parts, part)
		}
	}

	// Cross-references into the external control catalog.
	control.Links = append(control.Links, b.externalReferenceLinks(elem)...)

	// Supporting publications.
	if b.desc.ReferenceType != "" {
		refLinks, err := b.supportingPublicationLinks(elem)
		if err != nil {
			return err
		}
		control.Links = append(control.Links, refLinks...)
	}

	return nil
}

// withdrawnLinks computes the redirect links of a withdrawn element by a
// two-hop lookup: its withdraw-reason siblings under the structural relation,
// then the raw destination identifiers those carry under each redirect
// relation kind.
func (b *Builder) withdrawnLinks(parentID string) ([]oscal.Link, error) {
	if b.desc.WithdrawReasonType == "" {
		return nil, nil
	}
	reasons, err := b.ix.ByRelation(parentID, b.desc.WithdrawReasonType, b.desc.StructuralRelation)
	if err != nil {
		return nil, err
	}

	var links []oscal.Link
	for _, reason := range reasons {
		for _, rel := range b.desc.RedirectRelations {
			for _, id := range b.ix.RelatedIDs(reason.GlobalID(), rel) {
				links = append(links, oscal.Link{Href: id, Rel: rel})
			}
		}
	}
	return links, nil
}

// buildSubRequirementControls emits the leaf layer: one control per
// sub-requirement child, each carrying a statement part whose nested item
// parts descend as deep as the structural relation yields children.
func (b *Builder) buildSubRequirementControls(parentID string) ([]*oscal.Control, error) {
	if b.desc.SubRequirementType == "" {
		return nil, nil
	}
	children, err := b.ix.ByRelation(parentID, b.desc.SubRequirementType, b.desc.StructuralRelation)
	if err != nil {
		return nil, err
	}

	var controls []*oscal.Control
	for _, elem := range children {
		// Sub-requirements are not titled unless the export gives a
		// human-readable one.
		statement, err := b.partFromText(elem, "statement")
		if err != nil {
			return nil, err
		}
		items, err := b.buildItemParts(elem.GlobalID())
		if err != nil {
			return nil, err
		}
		statement.Parts = items

		control := &oscal.Control{
			ID:    elem.Identifier,
			Class: elem.Type,
			Title: elem.Title,
			Parts: []*oscal.Part{statement},
			Props: []oscal.Property{labelProp(elem.Identifier)},
		}
		controls = append(controls, control)
	}
	return controls, nil
}

// buildItemParts recurses along the structural relation at the same element
// type, emitting nested item parts until an element has no further children.
// Leaf detection is an explicit query: an unresolvable child reference is
// still fatal in the ByRelation that follows.
func (b *Builder) buildItemParts(parentID string) ([]*oscal.Part, error) {
	if !b.ix.HasChildren(parentID, b.desc.SubRequirementType, b.desc.StructuralRelation) {
		return nil, nil
	}
	children, err := b.ix.ByRelation(parentID, b.desc.SubRequirementType, b.desc.StructuralRelation)
	if err != nil {
		return nil, err
	}

	var parts []*oscal.Part
	for _, elem := range children {
		part, err := b.partFromText(elem, "item")
		if err != nil {
			return nil, err
		}
		part.ID = elem.Identifier
		part.Props = append(part.Props, labelProp(elem.Identifier))

		nested, err := b.buildItemParts(elem.GlobalID())
		if err != nil {
			return nil, err
		}
		part.Parts = nested

		parts = append(parts, part)
	}
	return parts, nil
}

// buildObjectivePart renders a determination element as an
// assessment-objective part, rewriting its tagged placeholders into param
// inserts.
func (b *Builder) buildObjectivePart(elem *cprt.Element) *oscal.Part {
	prose := rewrite.EscapeBracketsParens(rewrite.ReplacePlaceholders(elem.Text))
	return &oscal.Part{
		ID:    elem.Identifier + "_assessment-objective",
		Name:  "assessment-objective",
		Prose: prose,
	}
}

// buildMethodPart renders an assessment-method element. Its text is an
// inline object list; each object becomes its own paragraph inside a nested
// assessment-objects part.
func (b *Builder) buildMethodPart(elem *cprt.Element) (*oscal.Part, error) {
	objectList, err := rewrite.SplitInlineList(elem.Text, b.desc.MethodListPrefix, b.desc.MethodListSuffix, b.desc.MethodListSeparator)
	if err != nil {
		return nil, fmt.Errorf("assessment method %s: %w", elem.GlobalID(), err)
	}

	part := &oscal.Part{
		ID:    elem.Identifier + "_assessment-method_" + elem.Type,
		Name:  "assessment-method",
		Props: []oscal.Property{{Name: "method", Value: strings.ToUpper(elem.Type)}},
		Parts: []*oscal.Part{{
			Name:  "assessment-objects",
			Prose: rewrite.EscapeBracketsParens(objectList),
		}},
	}
	return part, nil
}

// buildParams emits one parameter per distinct placeholder identifier across
// the given objectives' texts, labeled by the identifier and guided by the
// placeholder element's own title and text.
func (b *Builder) buildParams(objectives []*cprt.Element) ([]*oscal.Parameter, error) {
	var params []*oscal.Parameter
	seen := make(map[string]struct{})
	for _, obj := range objectives {
		for _, id := range rewrite.PlaceholderIDs(obj.Text) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			// Placeholder elements live in the same document as the
			// objective that names them.
			globalID := obj.DocID + ":" + id
			odp, ok := b.ix.ByID(globalID)
			if !ok {
				return nil, &graph.IntegrityError{SourceID: obj.GlobalID(), DestID: globalID}
			}

			params = append(params, &oscal.Parameter{
				// The id is escaped the same way inserts in prose are, so
				// id-refs resolve.
				ID:    rewrite.EscapeBracketsParens(id),
				Props: []oscal.Property{labelProp(id)},
				Label: rewrite.EscapeBracketsParens(odp.Title),
				Guidelines: []oscal.Guideline{
					{Prose: rewrite.EscapeBracketsParens(odp.Text)},
				},
			})
		}
	}
	return params, nil
}

// externalReferenceLinks wraps each raw external-reference identifier as a
// titled back-matter resource pointing into the external control catalog.
func (b *Builder) externalReferenceLinks(elem *cprt.Element) []oscal.Link {
	var links []oscal.Link
	for _, id := range b.ix.RelatedIDs(elem.GlobalID(), b.desc.ExternalReferenceRelation) {
		resource := &oscal.Resource{
			Title: id,
			Rlinks: []oscal.Rlink{
				{Href: fmt.Sprintf(b.desc.ExternalCatalogURL, id)},
			},
		}
		links = append(links, b.pool.link(resource, "reference"))
	}
	return links
}

// supportingPublicationLinks pools one resource per reference-type child,
// with the child's title as citation text and its text as the external URL.
func (b *Builder) supportingPublicationLinks(elem *cprt.Element) ([]oscal.Link, error) {
	refs, err := b.ix.ByRelation(elem.GlobalID(), b.desc.ReferenceType, b.desc.StructuralRelation)
	if err != nil {
		return nil, err
	}

	var links []oscal.Link
	for _, ref := range refs {
		resource := &oscal.Resource{
			Title:    ref.Identifier,
			Citation: &oscal.Citation{Text: ref.Title},
			Rlinks:   []oscal.Rlink{{Href: ref.Text}},
		}
		links = append(links, b.pool.link(resource, "reference"))
	}
	return links, nil
}

// partFromText renders an element's body text as a named part, applying the
// implicit placeholder rewrite and prose escaping.
func (b *Builder) partFromText(elem *cprt.Element, name string) (*oscal.Part, error) {
	prose, err := b.rewriteProse(elem)
	if err != nil {
		return nil, err
	}
	return &oscal.Part{
		ID:    elem.Identifier + "_" + name,
		Name:  name,
		Prose: prose,
	}, nil
}

// rewriteProse resolves the element's implicit placeholder markers and
// escapes the result for prose embedding.
func (b *Builder) rewriteProse(elem *cprt.Element) (string, error) {
	ids, err := b.implicitParamIDs(elem.GlobalID())
	if err != nil {
		return "", err
	}
	text := rewrite.ReplaceImplicit(elem.Text, b.desc.MarkerPattern, ids)
	return rewrite.EscapeBracketsParens(text), nil
}

// implicitParamIDs resolves which placeholders an element's statement text
// references implicitly: hop to its determination children, then to each
// determination's placeholder children, collecting identifiers in discovery
// order.
func (b *Builder) implicitParamIDs(sourceID string) ([]string, error) {
	if b.desc.DeterminationType == "" || b.desc.ODPType == "" {
		return nil, nil
	}
	objectives, err := b.ix.ByRelation(sourceID, b.desc.DeterminationType, b.desc.StructuralRelation)
	if err != nil {
		return nil, err
	}

	var ids []string
	seen := make(map[string]struct{})
	for _, obj := range objectives {
		odps, err := b.ix.ByRelation(obj.GlobalID(), b.desc.ODPType, b.desc.StructuralRelation)
		if err != nil {
			return nil, err
		}
		for _, odp := range odps {
			if _, dup := seen[odp.Identifier]; dup {
				continue
			}
			seen[odp.Identifier] = struct{}{}
			ids = append(ids, odp.Identifier)
		}
	}
	return ids, nil
}

func labelProp(label string) oscal.Property {
	return oscal.Property{Name: "label", Value: label}
}

func withdrawnProp() oscal.Property {
	return oscal.Property{Name: "status", Value: "withdrawn"}
}

func cprtProp(name, value string) oscal.Property {
	return oscal.Property{Name: name, Value: value, Ns: cprtNs}
}
