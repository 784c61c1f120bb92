package canonical

import (
	"strings"
	"unicode"
)

// legalSuffixes are legal-entity markers stripped from organization names
// before matching, so "Acme AB" and "ACME Aktiebolag" key identically.
var legalSuffixes = []string{
	"aktiebolag", "ab", "as", "asa", "oy", "oyj", "aps", "a/s",
	"gmbh", "ag", "sarl", "sas", "bv", "nv",
	"ltd", "limited", "inc", "incorporated", "llc", "llp", "plc",
	"co", "corp", "corporation", "company",
}

var suffixSet = func() map[string]bool {
	m := make(map[string]bool, len(legalSuffixes))
	for _, s := range legalSuffixes {
		m[s] = true
	}
	return m
}()

// NormalizeOrgName reduces a raw organization name to its canonical lookup
// key: punctuation stripped, lowercased, whitespace collapsed, trailing
// legal-entity suffixes removed.
func NormalizeOrgName(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			b.WriteRune(' ')
		}
		// remaining punctuation dropped entirely
	}

	words := strings.Fields(b.String())
	// Strip suffix words from the end only; "AB Volvo" keeps its prefix.
	for len(words) > 1 && suffixSet[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

// NormalizeTerm lowercases and trims a skill/role spelling for alias lookup.
func NormalizeTerm(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// NormalizeTerms normalizes each term and drops empties and duplicates,
// preserving first-seen order.
func NormalizeTerms(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		n := NormalizeTerm(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
