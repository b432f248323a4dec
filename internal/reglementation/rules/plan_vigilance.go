package rules

import (
	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// PlanVigilance is the duty of vigilance plan.
type PlanVigilance struct{}

var vigilanceLegalForms = []e.LegalForm{e.LegalFormSA, e.LegalFormSAS, e.LegalFormSCA, e.LegalFormSE}

func (PlanVigilance) Info() models.Info {
	return models.Info{
		ID:    models.RulePlanVigilance,
		Title: "Plan de vigilance",
		Description: "Le plan de vigilance comporte les mesures de vigilance propres à identifier et à prévenir les atteintes graves " +
			"envers les droits humains et les libertés fondamentales, la santé et la sécurité des personnes " +
			"ainsi que de l’environnement qui adviendraient au sein de l’entreprise.",
		Tag: "tag-social",
	}
}

func (PlanVigilance) Qualifies(f Facts) bool {
	return f.Snapshot.Workforce != nil && groupAnswered(f.Company, f.Snapshot.WorkforceGroup)
}

func (PlanVigilance) Criteria(q Qualified) []string {
	var criteria []string
	form := q.Company.LegalForm()
	for _, f := range vigilanceLegalForms {
		if form == f {
			criteria = append(criteria, "votre entreprise est une "+f.Label())
		}
	}
	switch {
	case workforceAtLeast(q.Snapshot.Workforce, e.Workforce5000To9999):
		criteria = append(criteria, "votre effectif est supérieur à 5000 salariés")
	case groupAtLeast(q.Snapshot.WorkforceGroup, e.Workforce5000To9999):
		criteria = append(criteria, "l'effectif du groupe est supérieur à 5000 salariés")
	}
	return criteria
}

// IsSubject needs the legal form and the workforce clause.
func (r PlanVigilance) IsSubject(q Qualified) bool {
	return len(r.Criteria(q)) >= 2
}

func (r PlanVigilance) MemberStatus(q Qualified) models.Status {
	if !r.IsSubject(q) {
		return status(models.StateNotSubject, notSubjectDetail, nil)
	}
	detail := subjectBecause(joinComma(r.Criteria(q))) +
		" Vous devez établir un plan de vigilance si vous employez, à la clôture de deux exercices consécutifs, au moins 5 000 salariés, " +
		"en votre sein ou dans vos filiales directes ou indirectes françaises, ou 10 000 salariés, en incluant vos filiales directes ou indirectes étrangères."
	return status(models.StateSubject, detail, nil)
}
