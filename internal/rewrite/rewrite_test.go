package rewrite

import (
	"reflect"
	"strings"
	"testing"
)

func TestPlaceholderIDs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no tags", "plain prose without tags", nil},
		{"single tag", "verify <odp.01: the frequency> is defined", []string{"odp.01"}},
		{
			"two distinct tags are not merged by greed",
			"<odp.01: first value> and <odp.02: second value>",
			[]string{"odp.01", "odp.02"},
		},
		{
			"duplicate tags collapse to one identifier",
			"<odp.01: a> then <odp.01: a> again",
			[]string{"odp.01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceholderIDs(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PlaceholderIDs(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestReplacePlaceholders(t *testing.T) {
	t.Run("idempotent on tag-free text", func(t *testing.T) {
		text := "no tags here, <just an angle note> stays"
		if got := ReplacePlaceholders(text); got != text {
			t.Errorf("expected text unchanged, got %q", got)
		}
	})

	t.Run("each identifier gets its own marker", func(t *testing.T) {
		text := "set <odp.01: period> and <odp.02: scope> accordingly"
		got := ReplacePlaceholders(text)

		wantA := InsertMarker("odp.01")
		wantB := InsertMarker("odp.02")
		if strings.Count(got, wantA) != 1 || strings.Count(got, wantB) != 1 {
			t.Errorf("expected one marker per identifier, got %q", got)
		}
		if strings.Contains(got, "odp.01: period") || strings.Contains(got, "odp.02: scope") {
			t.Errorf("expected tags replaced, got %q", got)
		}
		if !strings.HasSuffix(got, " accordingly") || !strings.HasPrefix(got, "set ") {
			t.Errorf("expected surrounding text untouched, got %q", got)
		}
	})

	t.Run("repeated tag replaced at every occurrence", func(t *testing.T) {
		text := "<odp.01: x> then <odp.01: x>"
		got := ReplacePlaceholders(text)
		if strings.Count(got, InsertMarker("odp.01")) != 2 {
			t.Errorf("expected both occurrences replaced, got %q", got)
		}
	})
}

func TestReplaceImplicit(t *testing.T) {
	t.Run("markers replaced in discovery order", func(t *testing.T) {
		text := "review [Assignment: frequency]; update [Assignment: scope]."
		got := ReplaceImplicit(text, nil, []string{"odp.a", "odp.b"})

		idxA := strings.Index(got, InsertMarker("odp.a"))
		idxB := strings.Index(got, InsertMarker("odp.b"))
		if idxA < 0 || idxB < 0 {
			t.Fatalf("expected both inserts present, got %q", got)
		}
		if idxA > idxB {
			t.Errorf("expected first marker to receive first identifier, got %q", got)
		}
		if strings.Contains(got, "Assignment") {
			t.Errorf("expected all markers consumed, got %q", got)
		}
	})

	t.Run("more markers than identifiers", func(t *testing.T) {
		text := "[Assignment: a] and [Assignment: b]"
		got := ReplaceImplicit(text, nil, []string{"odp.a"})
		if !strings.Contains(got, InsertMarker("odp.a")) {
			t.Errorf("expected first marker replaced, got %q", got)
		}
		if !strings.Contains(got, "[Assignment: b]") {
			t.Errorf("expected second marker untouched, got %q", got)
		}
	})

	t.Run("more identifiers than markers", func(t *testing.T) {
		got := ReplaceImplicit("[Selection: one]", nil, []string{"odp.a", "odp.b"})
		want := InsertMarker("odp.a")
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("no markers", func(t *testing.T) {
		text := "nothing to do"
		if got := ReplaceImplicit(text, nil, []string{"odp.a"}); got != text {
			t.Errorf("expected text unchanged, got %q", got)
		}
	})
}

func TestSplitInlineList(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		prefix    string
		suffix    string
		separator string
		want      string
		wantErr   bool
	}{
		{
			name:   "three items become three paragraphs",
			text:   "[SELECT FROM: a;b;c]",
			prefix: "[SELECT FROM: ", suffix: "]", separator: ";",
			want: "a\n\nb\n\nc",
		},
		{
			name:   "single item",
			text:   "[SELECT FROM: access control policy]",
			prefix: "[SELECT FROM: ", suffix: "]", separator: ";",
			want: "access control policy",
		},
		{
			name:   "missing suffix",
			text:   "[SELECT FROM: a;b",
			prefix: "[SELECT FROM: ", suffix: "]", separator: ";",
			wantErr: true,
		},
		{
			name:   "missing prefix",
			text:   "a;b]",
			prefix: "[SELECT FROM: ", suffix: "]", separator: ";",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitInlineList(tt.text, tt.prefix, tt.suffix, tt.separator)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscaping(t *testing.T) {
	if got := EscapeBracketsParens("[x] and [y]"); got != "(x) and (y)" {
		t.Errorf("EscapeBracketsParens = %q, want %q", got, "(x) and (y)")
	}
	if got := EscapeBrackets("[x]"); got != `\[x\]` {
		t.Errorf("EscapeBrackets = %q, want %q", got, `\[x\]`)
	}
	if got := EscapeBracketsParens("no brackets"); got != "no brackets" {
		t.Errorf("expected bracket-free text unchanged, got %q", got)
	}
}
