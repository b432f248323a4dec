package rules

import (
	"fmt"
	"time"

	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// IndexEgapro is the gender pay equality index.
type IndexEgapro struct{}

var egaproSearch = &models.Action{
	URL:      "https://egapro.travail.gouv.fr/index-egapro/recherche",
	Title:    "Consulter les index sur la plateforme nationale",
	External: true,
}

func (IndexEgapro) Info() models.Info {
	return models.Info{
		ID:          models.RuleIndexEgapro,
		Title:       "Index de l’égalité professionnelle",
		MoreInfoURL: "https://portail-rse.beta.gouv.fr/fiches-reglementaires/index-egalite-professionnelle/",
		Tag:         "tag-social",
		Summary:     "Mesurer les écarts de rémunération entre les femmes et les hommes au sein de son entreprise.",
	}
}

func (IndexEgapro) Qualifies(f Facts) bool {
	return f.Snapshot.Workforce != nil
}

func (IndexEgapro) Criteria(q Qualified) []string {
	if workforceAtLeast(q.Snapshot.Workforce, e.Workforce50To249) {
		return []string{"votre effectif est supérieur à 50 salariés"}
	}
	return nil
}

func (r IndexEgapro) IsSubject(q Qualified) bool {
	return len(r.Criteria(q)) > 0
}

// Year is the last year an index must have been published for.
func (IndexEgapro) Year(q Qualified) int {
	return q.Today.Year() - 1
}

// NextDeadline is March 1st: of next year once this year's index is out,
// of the current year otherwise.
func (IndexEgapro) NextDeadline(today time.Time, published bool) time.Time {
	year := today.Year()
	if published {
		year++
	}
	return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
}

func (r IndexEgapro) MemberStatus(q Qualified) models.Status {
	if !r.IsSubject(q) {
		return status(models.StateNotSubject, "Vous n'êtes pas soumis à cette norme.", egaproSearch)
	}

	publish := &models.Action{
		URL:      "https://egapro.travail.gouv.fr/",
		Title:    "Publier mon index sur la plateforme nationale",
		External: true,
	}
	because := "Vous êtes soumis à cette norme car " + joinComma(r.Criteria(q)) + "."
	const yearly = " Vous devez calculer et publier votre index chaque année au plus tard le 1er mars."
	year := r.Year(q)

	if q.Filings.GenderIndexErr != nil {
		return status(models.StateSubject,
			because+" Suite à un problème technique, les informations concernant votre dernière publication n'ont pas pu être récupérées sur la plateforme EgaPro."+yearly,
			publish,
		)
	}

	var s models.Status
	if q.Filings.GenderIndexPublished {
		s = status(models.StateUpToDate,
			because+fmt.Sprintf(" Vous avez publié votre index %d d'après les données disponibles sur la plateforme Egapro.", year),
			publish,
		)
	} else {
		s = status(models.StateToUpdate,
			because+fmt.Sprintf(" Vous n'avez pas encore publié votre index %d sur la plateforme Egapro.", year)+yearly,
			publish,
		)
	}
	s.NextDeadline = r.NextDeadline(q.Today, q.Filings.GenderIndexPublished).Format("02/01/2006")
	return s
}
