package rules

import (
	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// DispositifAlerte is the whistle-blowing channel obligation.
type DispositifAlerte struct{}

func (DispositifAlerte) Info() models.Info {
	return models.Info{
		ID:          models.RuleDispositifAlerte,
		Title:       "Dispositif d’alerte",
		MoreInfoURL: "https://portail-rse.beta.gouv.fr/fiches-reglementaires/dispositif-dalerte/",
		Tag:         "tag-gouvernance",
		Summary:     "Avoir une procédure interne de recueil et de traitement de ces signalements.",
	}
}

func (DispositifAlerte) Qualifies(f Facts) bool {
	return f.Snapshot.WorkforceSocialSecurity != nil
}

func (DispositifAlerte) Criteria(q Qualified) []string {
	if socialSecurityAtLeast(q.Snapshot.WorkforceSocialSecurity, e.SocialSecurity50To249) {
		return []string{"votre effectif est supérieur à 50 salariés"}
	}
	return nil
}

func (r DispositifAlerte) IsSubject(q Qualified) bool {
	return len(r.Criteria(q)) > 0
}

func (r DispositifAlerte) MemberStatus(q Qualified) models.Status {
	if r.IsSubject(q) {
		return status(models.StateSubject, subjectBecause(joinComma(r.Criteria(q))), nil)
	}
	return status(models.StateNotSubject, notSubjectDetail, nil)
}
