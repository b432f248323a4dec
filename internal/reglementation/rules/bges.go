package rules

import (
	"fmt"

	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// ghgPublicationPeriod is how many years a published GHG report stays valid.
const ghgPublicationPeriod = 4

// BGES is the greenhouse gas emissions report and transition plan.
type BGES struct{}

var (
	ghgConsult = &models.Action{
		URL:      "https://bilans-ges.ademe.fr/bilans",
		Title:    "Consulter les bilans GES sur la plateforme nationale",
		External: true,
	}
	ghgPublish = &models.Action{
		URL:      "https://bilans-ges.ademe.fr/bilans/comment-publier",
		Title:    "Publier mon bilan GES sur la plateforme nationale",
		External: true,
	}
)

func (BGES) Info() models.Info {
	return models.Info{
		ID:          models.RuleBGES,
		Title:       "BEGES et Plan de Transition",
		MoreInfoURL: "https://portail-rse.beta.gouv.fr/fiches-reglementaires/bilan-eges-et-plan-de-transition/",
		Tag:         "tag-environnement",
		Summary:     "Mesurer ses émissions de gaz à effet de serre directes et adopter un plan de transition en conséquence.",
	}
}

func (BGES) Qualifies(f Facts) bool {
	return f.Snapshot.Workforce != nil && f.Snapshot.WorkforceOverseas != nil
}

func (BGES) Criteria(q Qualified) []string {
	var criteria []string
	if workforceAtLeast(q.Snapshot.Workforce, e.Workforce500To4999) {
		criteria = append(criteria, "votre effectif est supérieur à 500 salariés")
	}
	if is(q.Snapshot.WorkforceOverseas, e.Overseas250Plus) {
		criteria = append(criteria, "votre effectif outre-mer est supérieur à 250 salariés")
	}
	return criteria
}

func (r BGES) IsSubject(q Qualified) bool {
	return len(r.Criteria(q)) > 0
}

func (r BGES) MemberStatus(q Qualified) models.Status {
	if !r.IsSubject(q) {
		return status(models.StateNotSubject, notSubjectDetail, ghgConsult)
	}

	detail := subjectBecause(joinComma(r.Criteria(q)))
	last := q.Filings.GHGLastYear
	switch {
	case q.Filings.GHGErr != nil:
		return status(models.StateSubject,
			detail+" Suite à un problème technique, les informations concernant votre dernière publication n'ont pas pu être récupérées sur la plateforme Bilans GES. Vérifiez que vous avez publié votre bilan il y a moins de 4 ans.",
			ghgPublish,
		)
	case last == 0:
		return status(models.StateToUpdate,
			detail+" Vous n'avez pas encore publié votre bilan sur la plateforme Bilans GES.",
			ghgPublish,
		)
	case q.Today.Year()-last >= ghgPublicationPeriod:
		return status(models.StateToUpdate,
			detail+fmt.Sprintf(" Le dernier bilan publié sur la plateforme Bilans GES concerne l'année %d.", last),
			ghgPublish,
		)
	default:
		return status(models.StateUpToDate,
			detail+fmt.Sprintf(" Vous avez publié un bilan %d sur la plateforme Bilans GES.", last),
			ghgConsult,
		)
	}
}
