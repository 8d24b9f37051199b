// Package strength classifies passphrases by how many character classes they
// cover. It's a breadth heuristic: a passphrase is scored on whether it is at
// least MinLength characters long and whether it contains upper case, lower
// case, digits, and special characters. It says nothing about actual entropy
// and must not be presented as a security guarantee.
package strength

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinLength is the length at which a passphrase earns the length point.
const MinLength = 12

// SpecialCharacters are the runes that count towards the special class.
const SpecialCharacters = "@#$%^&*()_+!~`"

// Tier is an ordinal strength rating.
type Tier int

const (
	VeryWeak Tier = iota
	Weak
	Normal
	Strong
	VeryStrong
)

func (t Tier) String() string {
	switch t {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Normal:
		return "Normal"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// Tiers returns every tier from weakest to strongest.
func Tiers() []Tier {
	return []Tier{VeryWeak, Weak, Normal, Strong, VeryStrong}
}

// Report holds the individual checks behind a Tier.
type Report struct {
	Long    bool
	Upper   bool
	Lower   bool
	Digit   bool
	Special bool
}

// Score is the number of checks that passed, in [0, 5].
func (r Report) Score() int {
	n := 0
	for _, ok := range []bool{r.Long, r.Upper, r.Lower, r.Digit, r.Special} {
		if ok {
			n++
		}
	}
	return n
}

// Tier maps the score onto a Tier. Four and five both rate VeryStrong.
func (r Report) Tier() Tier {
	if s := r.Score(); s < int(VeryStrong) {
		return Tier(s)
	}
	return VeryStrong
}

// Missing lists the checks that failed, in a stable order.
func (r Report) Missing() []string {
	var m []string
	if !r.Long {
		m = append(m, "length")
	}
	if !r.Upper {
		m = append(m, "uppercase")
	}
	if !r.Lower {
		m = append(m, "lowercase")
	}
	if !r.Digit {
		m = append(m, "digit")
	}
	if !r.Special {
		m = append(m, "special")
	}
	return m
}

// Evaluate runs every check against p.
func Evaluate(p string) Report {
	r := Report{Long: utf8.RuneCountInString(p) >= MinLength}
	for _, c := range p {
		switch {
		case unicode.IsUpper(c):
			r.Upper = true
		case unicode.IsLower(c):
			r.Lower = true
		case unicode.IsDigit(c):
			r.Digit = true
		}
		if strings.ContainsRune(SpecialCharacters, c) {
			r.Special = true
		}
	}
	return r
}

// Assess returns the Tier of p. It's pure and defined for every string.
func Assess(p string) Tier {
	return Evaluate(p).Tier()
}
