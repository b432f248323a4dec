package rules

import (
	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// DPEF is the non-financial performance statement. Three regimes exist:
// provident institutions, mutuelles and the general commercial companies.
type DPEF struct{}

const (
	dpefPermanentWorkforce      = "votre effectif permanent est supérieur à 500 salariés"
	dpefGroupPermanentWorkforce = "l'effectif permanent du groupe est supérieur à 500 salariés"
)

var dpefGeneralLegalForms = []e.LegalForm{e.LegalFormSA, e.LegalFormSCA, e.LegalFormSE}

func (DPEF) Info() models.Info {
	return models.Info{
		ID:    models.RuleDPEF,
		Title: "Déclaration de Performance Extra-Financière",
		Description: `La Déclaration de Performance Extra-Financière (dite "DPEF") est un document par l'intermédiaire duquel une entreprise ` +
			"détaille les implications sociales, environnementales et sociétales de sa performance et de ses activités, ainsi que son mode de gouvernance.",
		MoreInfoURL: "/fiches-reglementaires/dpef",
		Tag:         "tag-durabilite",
		Summary:     "Établir une déclaration de performance extra-financière contenant des informations sociales, environnementales et sociétales.",
	}
}

func (DPEF) Qualifies(f Facts) bool {
	s := f.Snapshot
	return f.Company.IsListed != nil &&
		s.WorkforcePermanent != nil &&
		s.BalanceSheet != nil &&
		s.Turnover != nil &&
		consolidatedAnswered(f.Company, s.WorkforceGroupPermanent, s.BalanceSheetConsolidated, s.TurnoverConsolidated)
}

// dpefClauses is one regime's evaluation. Empty strings are unmet clauses.
type dpefClauses struct {
	legalForm, listed, workforce, balance, turnover string
}

func (c dpefClauses) subject() bool {
	return c.legalForm != "" && c.workforce != "" && (c.balance != "" || c.turnover != "")
}

func (c dpefClauses) list() []string {
	var criteria []string
	for _, clause := range []string{c.legalForm, c.listed, c.workforce, c.balance, c.turnover} {
		criteria = appendIf(criteria, clause)
	}
	return criteria
}

// regime picks the first regime whose conditions hold, falling back to the
// general one.
func (DPEF) regime(q Qualified) dpefClauses {
	form := q.Company.LegalForm()
	listed := e.IsTrue(q.Company.IsListed)

	// Provident institutions are only subject on the 100M€ thresholds, but a
	// listed one is told about the lower listed thresholds it also meets.
	if form == e.LegalFormProvidentInstitution {
		c := dpefClauses{
			legalForm: "votre entreprise est une " + form.Label(),
			workforce: dpefWorkforce(q),
			balance:   dpefBalance(q, false),
			turnover:  dpefTurnover(q, false),
		}
		if c.subject() {
			c.balance = dpefBalance(q, listed)
			c.turnover = dpefTurnover(q, listed)
			return c
		}
	}
	if form == e.LegalFormMutuelle {
		c := dpefClauses{
			legalForm: "votre entreprise est une " + form.Label(),
			workforce: dpefWorkforce(q),
			balance:   dpefBalance(q, false),
			turnover:  dpefTurnover(q, false),
		}
		if c.subject() {
			return c
		}
	}

	c := dpefClauses{
		workforce: dpefWorkforce(q),
		balance:   dpefBalance(q, listed),
		turnover:  dpefTurnover(q, listed),
	}
	for _, f := range dpefGeneralLegalForms {
		if form == f {
			c.legalForm = "votre entreprise est une " + f.Label()
		}
	}
	if listed {
		c.listed = "votre société est cotée sur un marché réglementé"
	}
	return c
}

func dpefWorkforce(q Qualified) string {
	s := q.Snapshot
	switch {
	case workforceAtLeast(s.WorkforcePermanent, e.Workforce500To4999):
		return dpefPermanentWorkforce
	case e.IsTrue(q.Company.ConsolidatedAccounts) && groupAtLeast(s.WorkforceGroupPermanent, e.Workforce500To4999):
		return dpefGroupPermanentWorkforce
	}
	return ""
}

// dpefBalance uses the 20M€ threshold of listed companies. The balance scale
// has no 20M€ bound, so the nearest bracket above it is required.
func dpefBalance(q Qualified, listed bool) string {
	s := q.Snapshot
	if listed {
		switch {
		case e.BalanceScale.AtLeast(s.BalanceSheet, e.Balance25MTo43M):
			return "votre bilan est supérieur à 20M€"
		case e.ConsolidatedBalanceScale.AtLeast(s.BalanceSheetConsolidated, e.ConsolidatedBal30To43M):
			return "votre bilan consolidé est supérieur à 20M€"
		}
		return ""
	}
	switch {
	case is(s.BalanceSheet, e.Balance100MPlus):
		return "votre bilan est supérieur à 100M€"
	case is(s.BalanceSheetConsolidated, e.Balance100MPlus):
		return "votre bilan consolidé est supérieur à 100M€"
	}
	return ""
}

// dpefTurnover uses the 40M€ threshold of listed companies, approximated the
// same way as dpefBalance.
func dpefTurnover(q Qualified, listed bool) string {
	s := q.Snapshot
	if listed {
		switch {
		case e.TurnoverScale.AtLeast(s.Turnover, e.Turnover50MTo100M):
			return "votre chiffre d'affaires est supérieur à 40M€"
		case e.ConsolidatedTurnoverScale.AtLeast(s.TurnoverConsolidated, e.Consolidated60To100M):
			return "votre chiffre d'affaires consolidé est supérieur à 40M€"
		}
	}
	switch {
	case is(s.Turnover, e.Turnover100MPlus):
		return "votre chiffre d'affaires est supérieur à 100M€"
	case is(s.TurnoverConsolidated, e.Turnover100MPlus):
		return "votre chiffre d'affaires consolidé est supérieur à 100M€"
	}
	return ""
}

func (r DPEF) Criteria(q Qualified) []string {
	return r.regime(q).list()
}

func (r DPEF) IsSubject(q Qualified) bool {
	return r.regime(q).subject()
}

func (r DPEF) MemberStatus(q Qualified) models.Status {
	if r.IsSubject(q) {
		return status(models.StateSubject, subjectBecause(joinAnd(r.Criteria(q))), nil)
	}
	return status(models.StateNotSubject, notSubjectDetail, nil)
}
