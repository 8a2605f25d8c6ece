// Package rewrite implements the text substitutions applied to CPRT prose
// before it is attached to OSCAL nodes: placeholder (ODP) tags become OSCAL
// param inserts, inline object lists become markdown paragraphs, and square
// brackets are escaped so they survive OSCAL's own bracket syntax.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches how ODPs are tagged in assessment objective
// text: "<odp.id: human readable description>". Non-greedy, otherwise two
// adjacent tags match as one.
var placeholderPattern = regexp.MustCompile(`<(.+?): .+?>`)

// DefaultMarkerPattern matches the implicit ODP markers used in statement
// text, which reference a placeholder without naming it, for example
// "[Assignment: organization-defined frequency]".
var DefaultMarkerPattern = regexp.MustCompile(`\[(?:Assignment|Selection)[^\]]*\]`)

// InsertMarker returns the OSCAL markup that inserts the named parameter.
func InsertMarker(id string) string {
	return fmt.Sprintf(`<insert type="param" id-ref="%s" />`, id)
}

// PlaceholderIDs returns the distinct placeholder identifiers tagged in text,
// in discovery order.
func PlaceholderIDs(text string) []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		id := m[1]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// ReplacePlaceholders rewrites every tagged placeholder in text with the
// param-insert markup for its identifier. Replacement is per identifier, not
// global: one block of text can tag several distinct placeholders with the
// same grammar, and each occurrence must reference its own identifier.
func ReplacePlaceholders(text string) string {
	for _, id := range PlaceholderIDs(text) {
		// Match only the tags carrying this specific identifier.
		tagPattern := regexp.MustCompile("<" + regexp.QuoteMeta(id) + ": .+?>")
		text = tagPattern.ReplaceAllString(text, InsertMarker(id))
	}
	return text
}

// ReplaceImplicit rewrites implicit placeholder markers in text one at a
// time, in discovery order: the first marker occurrence receives the first
// identifier, the second occurrence the second, and so on. A blind global
// substitution would be wrong because structurally identical markers in one
// statement refer to different placeholders.
//
// Markers beyond len(ids), or identifiers beyond the number of markers, are
// left as they are.
func ReplaceImplicit(text string, marker *regexp.Regexp, ids []string) string {
	if marker == nil {
		marker = DefaultMarkerPattern
	}
	for _, id := range ids {
		loc := marker.FindStringIndex(text)
		if loc == nil {
			break
		}
		text = text[:loc[0]] + InsertMarker(id) + text[loc[1]:]
	}
	return text
}

// SplitInlineList rewrites a delimited inline list such as
// "[SELECT FROM: a; b; c]" into one markdown paragraph per item. The text
// between prefix and the first occurrence of suffix is split on separator;
// a blank line between items makes each one its own <p> after markdown
// conversion.
func SplitInlineList(text, prefix, suffix, separator string) (string, error) {
	suffixIdx := strings.Index(text, suffix)
	if suffixIdx < 0 {
		return "", fmt.Errorf("inline list missing suffix %q: %q", suffix, text)
	}
	if suffixIdx < len(prefix) || !strings.HasPrefix(text, prefix) {
		return "", fmt.Errorf("inline list missing prefix %q: %q", prefix, text)
	}
	list := text[len(prefix):suffixIdx]
	return strings.ReplaceAll(list, separator, "\n\n"), nil
}

// EscapeBracketsParens substitutes parentheses for square brackets. Used for
// prose bodies: OSCAL's parameter syntax claims square brackets, so raw
// brackets in prose would be misparsed.
func EscapeBracketsParens(s string) string {
	s = strings.ReplaceAll(s, "[", "(")
	return strings.ReplaceAll(s, "]", ")")
}

// EscapeBrackets backslash-escapes square brackets, keeping them renderable.
// Used for identifier and label fields where the bracket must survive.
func EscapeBrackets(s string) string {
	s = strings.ReplaceAll(s, "[", `\[`)
	return strings.ReplaceAll(s, "]", `\]`)
}
