package models

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Bracket is an ordinal range label such as "50-249" or "10000+". Labels are
// drawn from a fixed Scale per dimension so figures never need to be stored.
type Bracket string

// Workforce brackets (effectif code du travail).
const (
	Workforce0To9       Bracket = "0-9"
	Workforce10To49     Bracket = "10-49"
	Workforce50To249    Bracket = "50-249"
	Workforce250To299   Bracket = "250-299"
	Workforce300To499   Bracket = "300-499"
	Workforce500To4999  Bracket = "500-4999"
	Workforce5000To9999 Bracket = "5000-9999"
	Workforce10000Plus  Bracket = "10000+"
)

// Social security workforce brackets.
const (
	SocialSecurity0To9     Bracket = "0-9"
	SocialSecurity10To49   Bracket = "10-49"
	SocialSecurity50To249  Bracket = "50-249"
	SocialSecurity250To499 Bracket = "250-499"
	SocialSecurity500Plus  Bracket = "500+"
)

// Overseas workforce brackets.
const (
	Overseas0To249  Bracket = "0-249"
	Overseas250Plus Bracket = "250+"
)

// Group workforce brackets. The upper labels are shared with the workforce scale.
const (
	Group0To49    Bracket = "0-49"
	Group250To499 Bracket = "250-499"
)

// Turnover brackets (chiffre d'affaires).
const (
	Turnover0To900k      Bracket = "0-900k"
	Turnover900kTo50M    Bracket = "900k-50M"
	Turnover50MTo100M    Bracket = "50M-100M"
	Turnover100MPlus     Bracket = "100M+"
	Consolidated0To60M   Bracket = "0-60M"
	Consolidated60To100M Bracket = "60M-100M"
)

// Balance sheet brackets (bilan).
const (
	Balance0To450k         Bracket = "0-450k"
	Balance450kTo25M       Bracket = "450k-25M"
	Balance25MTo43M        Bracket = "25M-43M"
	Balance43MTo100M       Bracket = "43M-100M"
	Balance100MPlus        Bracket = "100M+"
	ConsolidatedBal0To30M  Bracket = "0-30M"
	ConsolidatedBal30To43M Bracket = "30M-43M"
)

// Scale is the totally ordered enumeration of one dimension, lowest first.
type Scale []Bracket

var (
	WorkforceScale = Scale{
		Workforce0To9, Workforce10To49, Workforce50To249, Workforce250To299,
		Workforce300To499, Workforce500To4999, Workforce5000To9999, Workforce10000Plus,
	}
	SocialSecurityScale = Scale{
		SocialSecurity0To9, SocialSecurity10To49, SocialSecurity50To249,
		SocialSecurity250To499, SocialSecurity500Plus,
	}
	OverseasScale = Scale{Overseas0To249, Overseas250Plus}
	GroupScale    = Scale{
		Group0To49, Workforce50To249, Group250To499,
		Workforce500To4999, Workforce5000To9999, Workforce10000Plus,
	}
	TurnoverScale             = Scale{Turnover0To900k, Turnover900kTo50M, Turnover50MTo100M, Turnover100MPlus}
	ConsolidatedTurnoverScale = Scale{Consolidated0To60M, Consolidated60To100M, Turnover100MPlus}
	BalanceScale              = Scale{Balance0To450k, Balance450kTo25M, Balance25MTo43M, Balance43MTo100M, Balance100MPlus}
	ConsolidatedBalanceScale  = Scale{ConsolidatedBal0To30M, ConsolidatedBal30To43M, Balance43MTo100M, Balance100MPlus}
)

// Contains reports whether b belongs to the scale.
func (s Scale) Contains(b Bracket) bool {
	return slices.Contains(s, b)
}

// AtLeast reports whether b sits at or above floor on the scale. Labels
// outside the scale are never at least anything.
func (s Scale) AtLeast(b *Bracket, floor Bracket) bool {
	if b == nil {
		return false
	}
	pos, ok := s.position(*b)
	if !ok {
		return false
	}
	floorPos, ok := s.position(floor)
	return ok && pos >= floorPos
}

// Between reports whether b sits within [low, high] on the scale.
func (s Scale) Between(b *Bracket, low, high Bracket) bool {
	return s.AtLeast(b, low) && !s.AtLeast(b, s.after(high))
}

func (s Scale) position(b Bracket) (int, bool) {
	i := slices.Index(s, b)
	return i, i >= 0
}

// after returns the label following b, or an out-of-scale label at the top.
func (s Scale) after(b Bracket) Bracket {
	i, ok := s.position(b)
	if !ok || i+1 >= len(s) {
		return ""
	}
	return s[i+1]
}

// IsGreater reports whether every value of a strictly exceeds every value of
// b: a's lower bound is compared with b's upper bound. An open label ("10000+"
// or "+500") has no upper bound. Unparseable labels compare as false.
func IsGreater(a, b Bracket) bool {
	lowA, _, ok := bounds(a)
	if !ok {
		return false
	}
	_, highB, ok := bounds(b)
	if !ok {
		return false
	}
	return lowA > highB
}

func bounds(b Bracket) (low, high float64, ok bool) {
	label := strings.TrimSpace(string(b))
	if label == "" {
		return 0, 0, false
	}
	lower, upper, ranged := strings.Cut(label, "-")
	if !ranged {
		// single-sided label: "10000+" or "+500"
		low, ok = parseAmount(strings.Trim(label, "+"))
		return low, math.Inf(1), ok
	}
	if low, ok = parseAmount(lower); !ok {
		return 0, 0, false
	}
	if strings.HasSuffix(upper, "+") || upper == "" {
		return low, math.Inf(1), true
	}
	high, ok = parseAmount(upper)
	return low, high, ok
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		mult, s = 1e3, strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "M"):
		mult, s = 1e6, strings.TrimSuffix(s, "M")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n * mult, true
}

// Ptr is a convenience for building snapshots in code and tests.
func Ptr[T any](v T) *T {
	return &v
}
