package rules

import (
	"strings"

	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// AntiCorruption is the "loi Sapin 2" anti-corruption program.
type AntiCorruption struct{}

func (AntiCorruption) Info() models.Info {
	return models.Info{
		ID:    models.RuleAntiCorruption,
		Title: "Dispositif anti-corruption",
		Description: `La loi du 9 décembre 2016 (dite "loi Sapin 2") impose aux entreprises d'au moins 500 salariés ` +
			"la mise en place de mesures préventives anticorruption : cartographie des risques, " +
			"procédures d’évaluation de la situation des clients, fournisseurs, information et sanctions des salariés.",
		Tag: "tag-gouvernance",
	}
}

func (AntiCorruption) Qualifies(f Facts) bool {
	s := f.Snapshot
	return s.Workforce != nil &&
		s.Turnover != nil &&
		groupAnswered(f.Company, s.WorkforceGroup) &&
		consolidatedAnswered(f.Company, s.TurnoverConsolidated)
}

// Criteria holds at most one workforce clause then at most one turnover clause.
func (AntiCorruption) Criteria(q Qualified) []string {
	var criteria []string
	s := q.Snapshot
	switch {
	case workforceAtLeast(s.Workforce, e.Workforce500To4999):
		criteria = append(criteria, "votre effectif est supérieur à 500 salariés")
	case groupAtLeast(s.WorkforceGroup, e.Workforce500To4999):
		criteria = append(criteria, "l'effectif du groupe est supérieur à 500 salariés")
	}
	switch {
	case is(s.Turnover, e.Turnover100MPlus):
		criteria = append(criteria, "votre chiffre d'affaires est supérieur à 100 millions d'euros")
	case is(s.TurnoverConsolidated, e.Turnover100MPlus):
		criteria = append(criteria, "votre chiffre d'affaires consolidé est supérieur à 100 millions d'euros")
	}
	return criteria
}

// IsSubject needs both the workforce and the turnover threshold.
func (r AntiCorruption) IsSubject(q Qualified) bool {
	return len(r.Criteria(q)) == 2
}

func (r AntiCorruption) MemberStatus(q Qualified) models.Status {
	if r.IsSubject(q) {
		return status(models.StateSubject, subjectBecause(strings.Join(r.Criteria(q), " et ")), nil)
	}
	return status(models.StateNotSubject, notSubjectDetail, nil)
}
