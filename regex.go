package devkit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultRegexTimeout bounds a single evaluation.
const DefaultRegexTimeout = 2 * time.Second

// Flags selects regex evaluation behavior.
type Flags struct {
	Global     bool // g: every match instead of the first
	IgnoreCase bool // i
	Multiline  bool // m: ^ and $ match at line boundaries
	DotAll     bool // s: . matches newlines
	Unicode    bool // u
}

// ParseFlags reads a flag string such as "gim". Letters may repeat.
// An unknown letter is an InvalidPattern error.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, r := range s {
		switch r {
		case 'g':
			f.Global = true
		case 'i':
			f.IgnoreCase = true
		case 'm':
			f.Multiline = true
		case 's':
			f.DotAll = true
		case 'u':
			f.Unicode = true
		default:
			return Flags{}, newConversionError(ErrInvalidPattern, "regex.flags", fmt.Errorf("unknown flag %q", r))
		}
	}
	return f, nil
}

// String renders the flags in canonical "gimsu" order.
func (f Flags) String() string {
	var b strings.Builder
	if f.Global {
		b.WriteByte('g')
	}
	if f.IgnoreCase {
		b.WriteByte('i')
	}
	if f.Multiline {
		b.WriteByte('m')
	}
	if f.DotAll {
		b.WriteByte('s')
	}
	if f.Unicode {
		b.WriteByte('u')
	}
	return b.String()
}

func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if f.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if f.Multiline {
		opts |= regexp2.Multiline
	}
	if f.Unicode {
		opts |= regexp2.Unicode
	}
	return opts
}

// ecmaPattern rewrites the constructs the engine's ECMAScript mode reads
// differently from JavaScript. Outside character classes a dot becomes an
// explicit class (the engine ignores Singleline in this mode) and, without
// the m flag, $ anchors at the very end of the subject. [] and [^] take
// their JavaScript meaning.
func ecmaPattern(pattern string, flags Flags) string {
	dot := `[^\n\r\u2028\u2029]`
	if flags.DotAll {
		dot = `[\s\S]`
	}

	runes := []rune(pattern)
	var b strings.Builder
	inClass := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			b.WriteRune(r)
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
		case inClass:
			if r == ']' {
				inClass = false
			}
			b.WriteRune(r)
		case r == '[':
			// A leading ] is literal to the engine but closes the class in JavaScript.
			rest := string(runes[i+1:])
			switch {
			case strings.HasPrefix(rest, "]"):
				b.WriteString(`(?!)`)
				i++
			case strings.HasPrefix(rest, "^]"):
				b.WriteString(`[\s\S]`)
				i += 2
			default:
				inClass = true
				b.WriteRune(r)
			}
		case r == '.':
			b.WriteString(dot)
		case r == '$' && !flags.Multiline:
			b.WriteString(`(?![\s\S])`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Group is one capture group of a match. Group 0 is never reported.
type Group struct {
	Name    string `json:"name,omitempty"` // empty for unnamed groups
	Value   string `json:"value"`
	Matched bool   `json:"matched"` // false when the group did not participate
}

// Match is one match of a pattern against a subject.
type Match struct {
	Text   string  `json:"text"`
	Index  int     `json:"index"`  // offset in runes from the start of the subject
	Length int     `json:"length"` // length in runes
	Groups []Group `json:"groups"`
}

// Evaluation is the outcome of running a pattern against a subject.
type Evaluation struct {
	Matches  []Match `json:"matches"`
	Replaced *string `json:"replaced,omitempty"` // nil when no replacement was requested or it failed
}

// Marker wraps highlighted spans.
type Marker struct {
	Open  string
	Close string
}

// DefaultMarker wraps spans in HTML mark elements.
var DefaultMarker = Marker{Open: "<mark>", Close: "</mark>"}

// RegexEvaluator runs patterns with a bounded match time.
type RegexEvaluator struct {
	Timeout time.Duration
}

// NewRegexEvaluator creates an evaluator with the default timeout.
func NewRegexEvaluator() *RegexEvaluator {
	return &RegexEvaluator{Timeout: DefaultRegexTimeout}
}

var defaultRegexEvaluator = NewRegexEvaluator()

// Evaluate runs pattern against subject with the default evaluator.
func Evaluate(pattern string, flags Flags, subject string, replacement *string) (Evaluation, error) {
	return defaultRegexEvaluator.Evaluate(pattern, flags, subject, replacement)
}

// Highlight wraps every match of pattern in subject with the marker.
func Highlight(pattern string, flags Flags, subject string, marker Marker) (string, error) {
	return defaultRegexEvaluator.Highlight(pattern, flags, subject, marker)
}

func (e *RegexEvaluator) compile(pattern string, flags Flags) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(ecmaPattern(pattern, flags), flags.options())
	if err != nil {
		return nil, newConversionError(ErrInvalidPattern, "regex.compile", err)
	}
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultRegexTimeout
	}
	re.MatchTimeout = timeout
	return re, nil
}

// Evaluate compiles pattern and collects its matches in subject.
//
// Patterns follow JavaScript semantics: \d, \w and \s are ASCII classes,
// a backreference to a group that did not participate matches empty,
// $ without the m flag anchors only at the end of subject, and the dot
// excludes line terminators unless DotAll is set.
//
// With Global set every non-overlapping match is returned left to right;
// a zero-length match moves the scan forward by one rune. Otherwise at most
// the first match is returned. A non-nil replacement is substituted with
// $1, ${name}, $& and $$ references, first match only unless Global.
// Compile failures and timeouts are InvalidPattern errors; a failed
// substitution only leaves Replaced nil.
func (e *RegexEvaluator) Evaluate(pattern string, flags Flags, subject string, replacement *string) (Evaluation, error) {
	start := time.Now()
	re, err := e.compile(pattern, flags)
	if err != nil {
		observe(SignalRegex, "regex.evaluate", len(subject), 0, start, err)
		return Evaluation{}, err
	}

	matches, err := collectMatches(re, []rune(subject), flags.Global)
	if err != nil {
		observe(SignalRegex, "regex.evaluate", len(subject), 0, start, err)
		return Evaluation{}, err
	}

	ev := Evaluation{Matches: matches}
	if replacement != nil {
		count := 1
		if flags.Global {
			count = -1
		}
		if out, rerr := re.Replace(subject, *replacement, -1, count); rerr == nil {
			ev.Replaced = &out
		}
	}

	observe(SignalRegex, "regex.evaluate", len(subject), len(matches), start, nil)
	return ev, nil
}

// Highlight wraps every match span in marker. Matching is always global
// and uses the same scan as Evaluate, so zero-length matches produce an
// empty wrapped span.
func (e *RegexEvaluator) Highlight(pattern string, flags Flags, subject string, marker Marker) (string, error) {
	flags.Global = true
	ev, err := e.Evaluate(pattern, flags, subject, nil)
	if err != nil {
		return "", err
	}

	runes := []rune(subject)
	var b strings.Builder
	pos := 0
	for _, m := range ev.Matches {
		b.WriteString(string(runes[pos:m.Index]))
		b.WriteString(marker.Open)
		b.WriteString(m.Text)
		b.WriteString(marker.Close)
		pos = m.Index + m.Length
	}
	b.WriteString(string(runes[pos:]))
	return b.String(), nil
}

func collectMatches(re *regexp2.Regexp, runes []rune, global bool) ([]Match, error) {
	matches := []Match{}
	pos := 0
	for pos <= len(runes) {
		m, err := re.FindRunesMatchStartingAt(runes, pos)
		if err != nil {
			return nil, newConversionError(ErrInvalidPattern, "regex.match", err)
		}
		if m == nil {
			break
		}
		matches = append(matches, toMatch(m))
		if !global {
			break
		}
		next := m.Index + m.Length
		if m.Length == 0 {
			next++
		}
		pos = next
	}
	return matches, nil
}

func toMatch(m *regexp2.Match) Match {
	groups := m.Groups()
	out := Match{
		Text:   m.String(),
		Index:  m.Index,
		Length: m.Length,
		Groups: make([]Group, 0, len(groups)-1),
	}
	for i, g := range groups {
		if i == 0 {
			continue
		}
		name := g.Name
		if _, err := strconv.Atoi(name); err == nil {
			name = ""
		}
		grp := Group{Name: name, Matched: len(g.Captures) > 0}
		if grp.Matched {
			grp.Value = g.String()
		}
		out.Groups = append(out.Groups, grp)
	}
	return out
}
