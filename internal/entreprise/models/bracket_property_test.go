package models

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func bracketGen(s Scale) gopter.Gen {
	values := make([]any, len(s))
	for i, b := range s {
		values[i] = b
	}
	return gen.OneConstOf(values...)
}

// Headcount scales use integer bounds, so consecutive brackets never touch:
// IsGreater matches the scale order exactly.
func TestIsGreaterFollowsHeadcountOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for name, scale := range map[string]Scale{
		"workforce":       WorkforceScale,
		"group workforce": GroupScale,
		"social security": SocialSecurityScale,
		"overseas":        OverseasScale,
	} {
		properties.Property(name+" order matches IsGreater", prop.ForAll(
			func(a, b Bracket) bool {
				return IsGreater(a, b) == (slices.Index(scale, a) > slices.Index(scale, b))
			},
			bracketGen(scale), bracketGen(scale),
		))
	}

	properties.TestingRun(t)
}

// Amount scales share their boundary figure between neighbours, so only a
// gap of at least one bracket guarantees IsGreater.
func TestIsGreaterOnAmountScales(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for name, scale := range map[string]Scale{
		"turnover":              TurnoverScale,
		"consolidated turnover": ConsolidatedTurnoverScale,
		"balance sheet":         BalanceScale,
		"consolidated balance":  ConsolidatedBalanceScale,
	} {
		properties.Property(name+" is never greater against the order", prop.ForAll(
			func(a, b Bracket) bool {
				if IsGreater(a, b) {
					return slices.Index(scale, a) > slices.Index(scale, b)
				}
				return true
			},
			bracketGen(scale), bracketGen(scale),
		))
		properties.Property(name+" is greater across a gap", prop.ForAll(
			func(a, b Bracket) bool {
				if slices.Index(scale, a) > slices.Index(scale, b)+1 {
					return IsGreater(a, b)
				}
				return true
			},
			bracketGen(scale), bracketGen(scale),
		))
	}

	properties.TestingRun(t)
}

func TestIsGreaterIsAsymmetric(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	all := slices.Concat(WorkforceScale, GroupScale, TurnoverScale, BalanceScale)

	properties.Property("a > b excludes b > a", prop.ForAll(
		func(a, b Bracket) bool {
			return !(IsGreater(a, b) && IsGreater(b, a))
		},
		bracketGen(all), bracketGen(all),
	))

	properties.TestingRun(t)
}
