package rules

import (
	"fmt"
	"strconv"

	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// BDESE is the workforce economic, social and environmental database.
type BDESE struct{}

func (BDESE) Info() models.Info {
	return models.Info{
		ID:    models.RuleBDESE,
		Title: "Base de données économiques, sociales et environnementales (BDESE)",
		Description: "L'employeur d'au moins 50 salariés doit mettre à disposition du comité économique et social (CSE) " +
			"ou des représentants du personnel une base de données économiques, sociales et environnementales (BDESE). " +
			"La BDESE rassemble les informations sur les grandes orientations économiques et sociales de l'entreprise. " +
			"En l'absence d'accord d'entreprise spécifique, elle comprend des mentions obligatoires qui varient selon l'effectif de l'entreprise.",
		MoreInfoURL: "/fiches-reglementaires/bdese",
		Tag:         "tag-social",
		Summary:     "Constituer une base de données économiques, sociales et environnementales à transmettre à son CSE.",
	}
}

func (BDESE) Qualifies(f Facts) bool {
	return f.Snapshot.Workforce != nil
}

func (BDESE) Criteria(q Qualified) []string {
	if workforceAtLeast(q.Snapshot.Workforce, e.Workforce50To249) {
		return []string{"votre effectif est supérieur à 50 salariés"}
	}
	return nil
}

func (r BDESE) IsSubject(q Qualified) bool {
	return len(r.Criteria(q)) > 0
}

// Year is the reporting year a BDESE is filled for.
func (BDESE) Year(q Qualified) int {
	return q.Today.Year() - 1
}

func (r BDESE) MemberStatus(q Qualified) models.Status {
	year := r.Year(q)
	y := strconv.Itoa(year)
	base := fmt.Sprintf("/bdese/%s/%d", q.Company.Siren, year)

	if !r.IsSubject(q) {
		return status(models.StateNotSubject, notSubjectDetail, &models.Action{URL: base + "/1", Title: "Tester une BDESE"})
	}

	if e.IsTrue(q.Snapshot.HasBDESEAgreement) {
		state, title := models.StateToUpdate, "Marquer ma BDESE "+y+" comme actualisée"
		if q.Filings.BDESE == BDESEComplete {
			state, title = models.StateUpToDate, "Marquer ma BDESE "+y+" comme non actualisée"
		}
		detail := "Vous êtes soumis à cette réglementation car " + joinComma(r.Criteria(q)) +
			". Vous avez un accord d'entreprise spécifique. Veuillez vous y référer."
		return status(state, detail, &models.Action{URL: base + "/actualisation", Title: title})
	}

	const because = "Vous êtes soumis à cette réglementation car votre effectif est supérieur à 50 salariés."
	pdf := base + "/pdf"
	switch q.Filings.BDESE {
	case BDESEComplete:
		return status(models.StateUpToDate,
			because+" Vous avez actualisé votre BDESE "+y+" sur la plateforme.",
			&models.Action{URL: pdf, Title: "Télécharger le pdf " + y, External: true},
			models.Action{URL: base + "/1", Title: "Modifier ma BDESE"},
		)
	case BDESEInProgress:
		return status(models.StateInProgress,
			because+" Vous avez démarré le remplissage de votre BDESE "+y+" sur la plateforme.",
			&models.Action{URL: base + "/1", Title: "Reprendre l'actualisation de ma BDESE"},
			models.Action{URL: pdf, Title: "Télécharger le pdf " + y + " (brouillon)", External: true},
		)
	default:
		return status(models.StateToUpdate,
			because+" Nous allons vous aider à la remplir.",
			&models.Action{URL: base + "/0", Title: "Actualiser ma BDESE"},
		)
	}
}
