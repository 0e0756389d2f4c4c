package sanitizer

import (
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// TrimAndNormalize trims the input and collapses every run of whitespace,
// including newlines, into a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeEmail lower-cases and trims an address so that uniqueness checks are
// case insensitive.
func NormalizeEmail(input string) string {
	return Pipeline{strings.TrimSpace, strings.ToLower}.Apply(input)
}

func NormalizeName(input string) string {
	return Pipeline{stripControl, TrimAndNormalize}.Apply(input)
}

// NormalizeMessage keeps line breaks, which matter in free text, but drops
// other control characters and surrounding whitespace.
func NormalizeMessage(input string) string {
	return Pipeline{stripControl, strings.TrimSpace}.Apply(input)
}
