package devkit

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// splitWords breaks s into words.
//
// A boundary is a run of whitespace, '_' or '-', or an uppercase letter
// that follows a rune which is not uppercase. Leading and trailing
// separators produce no empty words. Digits are ordinary word runes.
func splitWords(s string) []string {
	var words []string
	var b strings.Builder
	prev := rune(-1)

	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}

	for _, r := range s {
		switch {
		case isCaseSeparator(r):
			flush()
		case unicode.IsUpper(r) && prev >= 0 && !isCaseSeparator(prev) && !unicode.IsUpper(prev):
			flush()
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	flush()
	return words
}

func isCaseSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// upperFirst uppercases the first rune of w and leaves the rest untouched.
func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// ToCamelCase joins words with the first lowercased and the rest capitalized.
//
//	ToCamelCase("Hello_World-Again") // "helloWorldAgain"
func ToCamelCase(s string) string {
	start := time.Now()
	words := splitWords(s)
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(upperFirst(w))
	}
	out := b.String()
	observe(SignalCase, "case.camel", len(s), len(out), start, nil)
	return out
}

// ToPascalCase joins words with every first letter capitalized.
func ToPascalCase(s string) string {
	start := time.Now()
	words := splitWords(s)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(upperFirst(w))
	}
	out := b.String()
	observe(SignalCase, "case.pascal", len(s), len(out), start, nil)
	return out
}

// ToSnakeCase lowercases words and joins them with '_'.
func ToSnakeCase(s string) string {
	start := time.Now()
	out := joinLower(s, "_")
	observe(SignalCase, "case.snake", len(s), len(out), start, nil)
	return out
}

// ToKebabCase lowercases words and joins them with '-'.
func ToKebabCase(s string) string {
	start := time.Now()
	out := joinLower(s, "-")
	observe(SignalCase, "case.kebab", len(s), len(out), start, nil)
	return out
}

// ToUpperCaseText folds the whole string to upper case.
func ToUpperCaseText(s string) string {
	start := time.Now()
	out := strings.ToUpper(s)
	observe(SignalCase, "case.upper", len(s), len(out), start, nil)
	return out
}

// ToLowerCaseText folds the whole string to lower case.
func ToLowerCaseText(s string) string {
	start := time.Now()
	out := strings.ToLower(s)
	observe(SignalCase, "case.lower", len(s), len(out), start, nil)
	return out
}

func joinLower(s, sep string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}

// ConvertCase applies the named case style to s.
func ConvertCase(s string, style CaseStyle) (string, error) {
	switch style {
	case CaseCamel:
		return ToCamelCase(s), nil
	case CasePascal:
		return ToPascalCase(s), nil
	case CaseSnake:
		return ToSnakeCase(s), nil
	case CaseKebab:
		return ToKebabCase(s), nil
	case CaseUpper:
		return ToUpperCaseText(s), nil
	case CaseLower:
		return ToLowerCaseText(s), nil
	default:
		return "", newConversionError(ErrInvalidFormat, "case.convert", fmt.Errorf("unknown case style %q", style))
	}
}
