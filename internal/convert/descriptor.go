package convert

import (
	"regexp"
	"sort"

	"github.com/oscalforge/cprtcat/internal/rewrite"
)

// Descriptor declares how one framework's export maps onto the catalog
// shape: which element types fill each layer of the family → requirement →
// sub-requirement chain, which relation types to traverse, and the literal
// delimiters of its inline lists. Descriptors are configuration; the builder
// itself is framework-agnostic.
type Descriptor struct {
	// FrameworkID is the identity the export must declare.
	FrameworkID string

	// Element-type tags per layer. RequirementType and SubRequirementType
	// may be empty for frameworks whose chain is shallower; empty branch
	// types (discussion, determination, ...) disable that branch.
	RootType           string
	RequirementType    string
	SubRequirementType string
	DiscussionType     string
	DeterminationType  string
	ReferenceType      string
	WithdrawReasonType string
	ODPType            string

	// MethodTypes are the assessment-method categories, one element type
	// each (examine, interview, test).
	MethodTypes []string

	// Relation-type tags.
	StructuralRelation        string
	ExternalReferenceRelation string
	// RedirectRelations are consulted, in order, when resolving where a
	// withdrawn element's content went.
	RedirectRelations []string

	// Inline-list delimiters for assessment-method object lists.
	MethodListPrefix    string
	MethodListSuffix    string
	MethodListSeparator string

	// MarkerPattern matches the implicit placeholder markers in statement
	// text. Nil means rewrite.DefaultMarkerPattern.
	MarkerPattern *regexp.Regexp

	// ExternalCatalogURL is the fmt template (one %s, the control
	// identifier) for cross-references into the external control catalog.
	ExternalCatalogURL string
}

// SP800171r3 describes NIST SP 800-171 revision 3.
func SP800171r3() *Descriptor {
	return &Descriptor{
		FrameworkID:        "SP_800_171_3_0_0",
		RootType:           "family",
		RequirementType:    "requirement",
		SubRequirementType: "security_requirement",
		DiscussionType:     "discussion",
		DeterminationType:  "determination",
		ReferenceType:      "reference",
		WithdrawReasonType: "withdraw_reason",
		ODPType:            "odp",
		MethodTypes:        []string{"examine", "interview", "test"},

		StructuralRelation:        "projection",
		ExternalReferenceRelation: "external_reference",
		RedirectRelations:         []string{"incorporated_into", "addressed_by"},

		MethodListPrefix:    "[SELECT FROM: ",
		MethodListSuffix:    "]",
		MethodListSeparator: ";",

		MarkerPattern: rewrite.DefaultMarkerPattern,

		// 800-171 requirements cross-reference their SP 800-53 sources.
		ExternalCatalogURL: "https://csrc.nist.gov/projects/cprt/catalog#/cprt/framework/version/SP_800_53_5_1_1/home?element=%s",
	}
}

// CSF20 describes the NIST Cybersecurity Framework 2.0, whose chain is
// function → category → subcategory with none of the assessment branches.
func CSF20() *Descriptor {
	return &Descriptor{
		FrameworkID:        "CSF_2_0_0",
		RootType:           "function",
		RequirementType:    "category",
		SubRequirementType: "subcategory",

		StructuralRelation:        "projection",
		ExternalReferenceRelation: "external_reference",
		RedirectRelations:         []string{"incorporated_into", "addressed_by"},

		ExternalCatalogURL: "https://csrc.nist.gov/projects/cprt/catalog#/cprt/framework/version/SP_800_53_5_1_1/home?element=%s",
	}
}

// descriptors registers every framework this tool can convert.
var descriptors = map[string]func() *Descriptor{
	"SP_800_171_3_0_0": SP800171r3,
	"CSF_2_0_0":        CSF20,
}

// Lookup returns the descriptor registered for a framework identifier.
func Lookup(frameworkID string) (*Descriptor, bool) {
	factory, ok := descriptors[frameworkID]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Frameworks returns the registered framework identifiers, sorted.
func Frameworks() []string {
	ids := make([]string, 0, len(descriptors))
	for id := range descriptors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
