package rules

import (
	"strings"

	e "portail-rse/internal/entreprise/models"
)

// joinComma renders criteria as "a, b, c".
func joinComma(criteria []string) string {
	return strings.Join(criteria, ", ")
}

// joinAnd renders criteria as "a, b et c".
func joinAnd(criteria []string) string {
	switch len(criteria) {
	case 0:
		return ""
	case 1:
		return criteria[0]
	}
	last := len(criteria) - 1
	return strings.Join(criteria[:last], ", ") + " et " + criteria[last]
}

// subjectBecause renders "Vous êtes soumis à cette réglementation car ...".
func subjectBecause(criteria string) string {
	return "Vous êtes soumis à cette réglementation car " + criteria + "."
}

func workforceAtLeast(b *e.Bracket, floor e.Bracket) bool {
	return e.WorkforceScale.AtLeast(b, floor)
}

func groupAtLeast(b *e.Bracket, floor e.Bracket) bool {
	return e.GroupScale.AtLeast(b, floor)
}

func socialSecurityAtLeast(b *e.Bracket, floor e.Bracket) bool {
	return e.SocialSecurityScale.AtLeast(b, floor)
}

func is(b *e.Bracket, want e.Bracket) bool {
	return b != nil && *b == want
}

// appendIf adds c when it is non-empty.
func appendIf(criteria []string, c string) []string {
	if c == "" {
		return criteria
	}
	return append(criteria, c)
}

// groupAnswered checks the usual "belongs to a group" conditional: the
// answer must exist, and when true every group field must be set.
func groupAnswered(c e.Company, groupFields ...*e.Bracket) bool {
	if c.BelongsToGroup == nil {
		return false
	}
	if !*c.BelongsToGroup {
		return true
	}
	for _, f := range groupFields {
		if f == nil {
			return false
		}
	}
	return true
}

// consolidatedAnswered extends groupAnswered with the consolidated accounts
// answer and the figures it requires.
func consolidatedAnswered(c e.Company, consolidatedFields ...*e.Bracket) bool {
	if !groupAnswered(c) {
		return false
	}
	if !*c.BelongsToGroup {
		return true
	}
	if c.ConsolidatedAccounts == nil {
		return false
	}
	if !*c.ConsolidatedAccounts {
		return true
	}
	for _, f := range consolidatedFields {
		if f == nil {
			return false
		}
	}
	return true
}
