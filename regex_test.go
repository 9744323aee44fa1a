package devkit

import (
	"errors"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags("gimsu")
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	want := Flags{Global: true, IgnoreCase: true, Multiline: true, DotAll: true, Unicode: true}
	if f != want {
		t.Errorf("ParseFlags() = %+v, want %+v", f, want)
	}
	if got := f.String(); got != "gimsu" {
		t.Errorf("String() = %q, want %q", got, "gimsu")
	}

	f, err = ParseFlags("mg")
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if got := f.String(); got != "gm" {
		t.Errorf("String() = %q, want %q", got, "gm")
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags("gx")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("ParseFlags() error = %v, want ErrInvalidPattern", err)
	}
}

func TestEvaluate_Global(t *testing.T) {
	ev, err := Evaluate(`\d+`, Flags{Global: true}, "a1 b22 c333", nil)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	want := []struct {
		text  string
		index int
	}{
		{"1", 1},
		{"22", 4},
		{"333", 8},
	}
	if len(ev.Matches) != len(want) {
		t.Fatalf("len(Matches) = %d, want %d", len(ev.Matches), len(want))
	}
	for i, w := range want {
		m := ev.Matches[i]
		if m.Text != w.text || m.Index != w.index {
			t.Errorf("Matches[%d] = {%q %d}, want {%q %d}", i, m.Text, m.Index, w.text, w.index)
		}
	}
	if ev.Replaced != nil {
		t.Errorf("Replaced = %q, want nil", *ev.Replaced)
	}
}

func TestEvaluate_FirstOnly(t *testing.T) {
	ev, err := Evaluate(`\d+`, Flags{}, "a1 b22 c333", nil)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if len(ev.Matches) != 1 || ev.Matches[0].Text != "1" {
		t.Errorf("Matches = %+v, want only \"1\"", ev.Matches)
	}
}

func TestEvaluate_NoMatch(t *testing.T) {
	ev, err := Evaluate(`z`, Flags{Global: true}, "abc", nil)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if ev.Matches == nil || len(ev.Matches) != 0 {
		t.Errorf("Matches = %#v, want empty non-nil slice", ev.Matches)
	}
}

func TestEvaluate_InvalidPattern(t *testing.T) {
	_, err := Evaluate("(", Flags{}, "abc", nil)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("Evaluate() error = %v, want ErrInvalidPattern", err)
	}
	var ce *ConversionError
	if !errors.As(err, &ce) || ce.Cause == nil {
		t.Errorf("expected ConversionError carrying the engine message, got %v", err)
	}
}

func TestEvaluate_ZeroLengthTerminates(t *testing.T) {
	ev, err := Evaluate(`x*`, Flags{Global: true}, "abc", nil)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if len(ev.Matches) != 4 {
		t.Fatalf("len(Matches) = %d, want 4", len(ev.Matches))
	}
	for i, m := range ev.Matches {
		if m.Text != "" || m.Index != i {
			t.Errorf("Matches[%d] = {%q %d}, want {\"\" %d}", i, m.Text, m.Index, i)
		}
	}
}

func TestEvaluate_Groups(t *testing.T) {
	ev, err := Evaluate(`(a)|(b)`, Flags{}, "b", nil)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if len(ev.Matches) != 1 {
		t.Fatalf("len(Matches) = %d, want 1", len(ev.Matches))
	}
	groups := ev.Matches[0].Groups
	if len(groups) != 2 {
		t.Fatalf("len(Groups) = %d, want 2", len(groups))
	}
	if groups[0].Matched {
		t.Errorf("Groups[0] = %+v, want not matched", groups[0])
	}
	if !groups[1].Matched || groups[1].Value != "b" {
		t.Errorf("Groups[1] = %+v, want matched \"b\"", groups[1])
	}
}

func TestEvaluate_NamedGroup(t *testing.T) {
	ev, err := Evaluate(`(?<year>\d{4})-(?<month>\d{2})`, Flags{}, "on 2024-06", nil)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	groups := ev.Matches[0].Groups
	if len(groups) != 2 {
		t.Fatalf("len(Groups) = %d, want 2", len(groups))
	}
	if groups[0].Name != "year" || groups[0].Value != "2024" {
		t.Errorf("Groups[0] = %+v, want year=2024", groups[0])
	}
	if groups[1].Name != "month" || groups[1].Value != "06" {
		t.Errorf("Groups[1] = %+v, want month=06", groups[1])
	}
	if ev.Matches[0].Index != 3 {
		t.Errorf("Index = %d, want 3", ev.Matches[0].Index)
	}
}

func TestEvaluate_RuneIndices(t *testing.T) {
	ev, err := Evaluate(`b`, Flags{}, "日本b", nil)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if ev.Matches[0].Index != 2 {
		t.Errorf("Index = %d, want 2", ev.Matches[0].Index)
	}
}

func TestEvaluate_Flags(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		flags   Flags
		subject string
		want    int
	}{
		{"case sensitive", `abc`, Flags{Global: true}, "ABC abc", 1},
		{"ignore case", `abc`, Flags{Global: true, IgnoreCase: true}, "ABC abc", 2},
		{"single line anchors", `^\w+`, Flags{Global: true}, "one\ntwo", 1},
		{"multiline anchors", `^\w+`, Flags{Global: true, Multiline: true}, "one\ntwo", 2},
		{"dot stops at newline", `a.b`, Flags{}, "a\nb", 0},
		{"dot all", `a.b`, Flags{DotAll: true}, "a\nb", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := Evaluate(tt.pattern, tt.flags, tt.subject, nil)
			if err != nil {
				t.Fatalf("Evaluate() error: %v", err)
			}
			if len(ev.Matches) != tt.want {
				t.Errorf("len(Matches) = %d, want %d", len(ev.Matches), tt.want)
			}
		})
	}
}

func TestEvaluate_JavaScriptSemantics(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		flags   Flags
		subject string
		want    []string
	}{
		{"digit class is ascii", `\d+`, Flags{Global: true}, "a١٢٣b", []string{}},
		{"word class is ascii", `\w+`, Flags{Global: true}, "héllo", []string{"h", "llo"}},
		{"unset backreference matches empty", `(a)?\1b`, Flags{}, "b", []string{"b"}},
		{"dollar ignores trailing newline", `abc$`, Flags{}, "abc\n", []string{}},
		{"dollar at end", `abc$`, Flags{}, "abc", []string{"abc"}},
		{"multiline dollar", `abc$`, Flags{Multiline: true}, "abc\n", []string{"abc"}},
		{"dot stops at carriage return", `a.b`, Flags{}, "a\rb", []string{}},
		{"dot all crosses carriage return", `a.b`, Flags{DotAll: true}, "a\rb", []string{"a\rb"}},
		{"dot all with quantifier", `a.{2}b`, Flags{DotAll: true}, "a\n\nb", []string{"a\n\nb"}},
		{"escaped dot", `a\.b`, Flags{}, "axb a.b", []string{"a.b"}},
		{"dot in class is literal", `a[.]b`, Flags{Global: true}, "axb a.b", []string{"a.b"}},
		{"dollar in class is literal", `[$]\d`, Flags{}, "cost $5", []string{"$5"}},
		{"empty class never matches", `a[]`, Flags{}, "a", []string{}},
		{"negated empty class matches anything", `a[^]b`, Flags{}, "a\nb", []string{"a\nb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := Evaluate(tt.pattern, tt.flags, tt.subject, nil)
			if err != nil {
				t.Fatalf("Evaluate() error: %v", err)
			}
			got := make([]string, 0, len(ev.Matches))
			for _, m := range ev.Matches {
				got = append(got, m.Text)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Matches = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Matches[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEcmaPattern(t *testing.T) {
	tests := []struct {
		pattern string
		flags   Flags
		want    string
	}{
		{`a.b`, Flags{}, `a[^\n\r\u2028\u2029]b`},
		{`a.b`, Flags{DotAll: true}, `a[\s\S]b`},
		{`x$`, Flags{}, `x(?![\s\S])`},
		{`x$`, Flags{Multiline: true}, `x$`},
		{`\.\$`, Flags{}, `\.\$`},
		{`[.$\]]`, Flags{}, `[.$\]]`},
		{`[]`, Flags{}, `(?!)`},
		{`[^]`, Flags{}, `[\s\S]`},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := ecmaPattern(tt.pattern, tt.flags); got != tt.want {
				t.Errorf("ecmaPattern(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Replacement(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		flags       Flags
		replacement string
		want        string
	}{
		{"first only", `o`, Flags{}, "0", "hell0 world"},
		{"global", `o`, Flags{Global: true}, "0", "hell0 w0rld"},
		{"numbered reference", `(\w+) (\w+)`, Flags{}, "$2 $1", "world hello"},
		{"named reference", `(?<w>world)`, Flags{}, "[${w}]", "hello [world]"},
		{"whole match", `world`, Flags{}, "<$&>", "hello <world>"},
		{"literal dollar", `world`, Flags{}, "$$", "hello $"},
		{"empty replacement", `l`, Flags{Global: true}, "", "heo word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := Evaluate(tt.pattern, tt.flags, "hello world", strPtr(tt.replacement))
			if err != nil {
				t.Fatalf("Evaluate() error: %v", err)
			}
			if ev.Replaced == nil {
				t.Fatal("Replaced = nil, want value")
			}
			if *ev.Replaced != tt.want {
				t.Errorf("Replaced = %q, want %q", *ev.Replaced, tt.want)
			}
		})
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		flags   Flags
		subject string
		want    string
	}{
		{"forces global", `\d+`, Flags{}, "a1 b22", "a<mark>1</mark> b<mark>22</mark>"},
		{"no match", `z`, Flags{}, "abc", "abc"},
		{"empty matches", `x*`, Flags{}, "ab", "<mark></mark>a<mark></mark>b<mark></mark>"},
		{"multibyte", `本`, Flags{}, "日本語", "日<mark>本</mark>語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Highlight(tt.pattern, tt.flags, tt.subject, DefaultMarker)
			if err != nil {
				t.Fatalf("Highlight() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Highlight() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHighlight_MatchesEvaluate(t *testing.T) {
	subject := "cat hat bat"
	ev, err := Evaluate(`.at`, Flags{Global: true}, subject, nil)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	got, err := Highlight(`.at`, Flags{}, subject, Marker{Open: "[", Close: "]"})
	if err != nil {
		t.Fatalf("Highlight() error: %v", err)
	}
	if len(ev.Matches) != 3 || got != "[cat] [hat] [bat]" {
		t.Errorf("Highlight() = %q with %d matches, want 3 wrapped spans", got, len(ev.Matches))
	}
}

func TestRegexEvaluator_Timeout(t *testing.T) {
	e := &RegexEvaluator{Timeout: 50 * time.Millisecond}
	subject := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa!"
	_, err := e.Evaluate(`^(a+)+$`, Flags{}, subject, nil)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Evaluate() error = %v, want ErrInvalidPattern on timeout", err)
	}
}
