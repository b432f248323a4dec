package rules

import (
	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// AuditEnergetique is the energy audit of large companies.
type AuditEnergetique struct{}

func (AuditEnergetique) Info() models.Info {
	return models.Info{
		ID:    models.RuleAuditEnergetique,
		Title: "Audit énergétique",
		Description: "Le code de l'énergie prévoit la réalisation d’un audit énergétique pour les grandes entreprises de plus de 250 salariés, " +
			"afin qu’elles mettent en place une stratégie d’efficacité énergétique de leurs activités. " +
			"L’audit énergétique permet de repérer les gisements d’économies d’énergie chez les plus gros consommateurs professionnels (tertiaires et industriels). " +
			"L’audit doit dater de moins de 4 ans.",
		MoreInfoURL: "https://www.ecologie.gouv.fr/audit-energetique-des-grandes-entreprises",
		Tag:         "tag-environnement",
	}
}

func (AuditEnergetique) Qualifies(f Facts) bool {
	s := f.Snapshot
	return s.Workforce != nil &&
		s.Turnover != nil &&
		s.BalanceSheet != nil &&
		s.HasEnergyManagementSystem != nil &&
		consolidatedAnswered(f.Company, s.BalanceSheetConsolidated)
}

func (AuditEnergetique) Criteria(q Qualified) []string {
	var criteria []string
	s := q.Snapshot
	if workforceAtLeast(s.Workforce, e.Workforce250To299) {
		criteria = append(criteria, "votre effectif est supérieur à 250 salariés")
	}
	if e.TurnoverScale.AtLeast(s.Turnover, e.Turnover50MTo100M) {
		switch {
		case e.BalanceScale.AtLeast(s.BalanceSheet, e.Balance43MTo100M):
			criteria = append(criteria, "votre bilan est supérieur à 43M€ et votre chiffre d'affaires est supérieur à 50M€")
		case e.ConsolidatedBalanceScale.AtLeast(s.BalanceSheetConsolidated, e.Balance43MTo100M):
			criteria = append(criteria, "votre bilan consolidé est supérieur à 43M€ et votre chiffre d'affaires est supérieur à 50M€")
		}
	}
	return criteria
}

// IsSubject is false for companies with an energy management system, which
// are exempted whatever their size.
func (r AuditEnergetique) IsSubject(q Qualified) bool {
	return !e.IsTrue(q.Snapshot.HasEnergyManagementSystem) && len(r.Criteria(q)) > 0
}

func (r AuditEnergetique) MemberStatus(q Qualified) models.Status {
	if r.IsSubject(q) {
		detail := subjectBecause(joinComma(r.Criteria(q))) +
			" Vous devez réaliser un audit énergétique si vous remplissez l'une des conditions suivantes lors des deux derniers exercices comptables : " +
			"soit votre effectif est supérieur à 250 salariés, soit votre bilan (ou bilan consolidé) est supérieur à 43M€ et votre chiffre d'affaires est supérieur à 50M€."
		return status(models.StateSubject, detail, &models.Action{
			URL:      "https://audit-energie.ademe.fr/",
			Title:    "Publier mon audit",
			External: true,
		})
	}

	detail := "Vous n'êtes pas soumis à cette réglementation"
	if e.IsTrue(q.Snapshot.HasEnergyManagementSystem) {
		detail += " si le système de management de l'énergie est certifié par un organisme de certification accrédité " +
			"par un organisme d'accréditation signataire de l'accord de reconnaissance multilatéral établi par la coordination européenne " +
			"des organismes d'accréditation et que ce système prévoit un audit énergétique satisfaisant aux critères mentionnés à l'article L. 233-1."
	} else {
		detail += "."
	}
	return status(models.StateNotSubject, detail, nil)
}
