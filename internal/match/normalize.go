package match

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Characters stripped when condensing a series name for catalog lookup.
	condensePunct  = regexp.MustCompile(`[?!.',/:-]+`)
	multiSpace     = regexp.MustCompile(`[ ]{2,}`)
	parenQualifier = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

	// Everything that is not a letter, digit or space, for fuzzy equality.
	fuzzyStrip = regexp.MustCompile(`[^a-z0-9 ]+`)
)

// asciiFold decomposes to NFKD and drops combining marks and any remaining
// non-ASCII runes, giving the closest ASCII rendition of the input.
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

func toASCII(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize reduces a title to a canonical form for fuzzy equality:
// ASCII-folded, lower-cased, punctuation removed, whitespace collapsed.
func Normalize(s string) string {
	s = strings.ToLower(toASCII(s))
	s = fuzzyStrip.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// FuzzyEqual reports whether two titles are equal after normalization.
// Two empty strings never match.
func FuzzyEqual(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	return na != "" && na == nb
}

// CondenseSeries condenses a series name the way catalogs index shows:
// non-ASCII characters folded to ASCII, "&" replaced with "and", a fixed
// punctuation set removed, repeated spaces collapsed, lower-cased.
func CondenseSeries(series string) string {
	s := toASCII(series)
	s = strings.ReplaceAll(s, "&", "and")
	s = condensePunct.ReplaceAllString(s, "")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// StripParenthetical removes a trailing parenthesized qualifier such as
// "(US)" or "(2011)" from a series name. Returns the input unchanged when no
// qualifier is present.
func StripParenthetical(series string) string {
	return strings.TrimSpace(parenQualifier.ReplaceAllString(series, ""))
}

// ContainsFold reports whether hay contains needle, case-insensitively.
// Either side empty is a non-match.
func ContainsFold(hay, needle string) bool {
	if hay == "" || needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(hay), strings.ToLower(needle))
}
