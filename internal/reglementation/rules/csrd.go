package rules

import (
	"fmt"
	"strconv"
	"time"

	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// CSRD transition years: the first fiscal year opened on or after January 1st
// of these years is reported on.
const (
	csrdWave2024 = 2024
	csrdWave2027 = 2027
	csrdWave2028 = 2028
)

// CSRD is the sustainability reporting directive. Unlike the threshold rules
// it computes the first applicability year.
type CSRD struct{}

func (CSRD) Info() models.Info {
	return models.Info{
		ID:          models.RuleCSRD,
		Title:       "Rapport de Durabilité - CSRD",
		MoreInfoURL: "https://portail-rse.beta.gouv.fr/fiches-reglementaires/rapport-de-durabilite-csrd/",
		Tag:         "tag-durabilite",
		Summary:     "Publier un rapport de durabilité.",
	}
}

func (CSRD) Qualifies(f Facts) bool {
	s, c := f.Snapshot, f.Company
	return s.FiscalYearEnd != nil &&
		c.IsListed != nil &&
		c.IsPublicInterestEntity != nil &&
		s.WorkforceSocialSecurity != nil &&
		s.BalanceSheet != nil &&
		s.Turnover != nil &&
		consolidatedAnswered(c, s.WorkforceGroup, s.BalanceSheetConsolidated, s.TurnoverConsolidated)
}

func votes(conditions ...bool) int {
	n := 0
	for _, c := range conditions {
		if c {
			n++
		}
	}
	return n
}

// isMicro: at least two of the three figures are under the micro thresholds.
func isMicro(s e.Snapshot) bool {
	return votes(
		is(s.BalanceSheet, e.Balance0To450k),
		is(s.Turnover, e.Turnover0To900k),
		is(s.WorkforceSocialSecurity, e.SocialSecurity0To9),
	) >= 2
}

// isLarge: at least two of the three figures exceed the large company thresholds.
func isLarge(s e.Snapshot) bool {
	return votes(
		e.BalanceScale.AtLeast(s.BalanceSheet, e.Balance25MTo43M),
		e.TurnoverScale.AtLeast(s.Turnover, e.Turnover50MTo100M),
		socialSecurityAtLeast(s.WorkforceSocialSecurity, e.SocialSecurity250To499),
	) >= 2
}

func isSME(s e.Snapshot) bool {
	return !isMicro(s) && !isLarge(s)
}

// isLargeGroup applies the large company vote to the consolidated figures.
func isLargeGroup(q Qualified) bool {
	s := q.Snapshot
	return e.IsTrue(q.Company.BelongsToGroup) && votes(
		e.ConsolidatedBalanceScale.AtLeast(s.BalanceSheetConsolidated, e.ConsolidatedBal30To43M),
		e.ConsolidatedTurnoverScale.AtLeast(s.TurnoverConsolidated, e.Consolidated60To100M),
		groupAtLeast(s.WorkforceGroup, e.Group250To499),
	) >= 2
}

// isOutsideEEASubject approximates the four cumulative conditions applying to
// small companies headquartered outside the EEA (legal form, EEA turnover of
// 150M€, no control relationship, French branch turnover of 40M€) with the
// highest turnover bracket alone. There is no 150M€ bracket; the exact
// conditions are spelled out in the status detail instead.
func isOutsideEEASubject(q Qualified) bool {
	return !q.Company.InEEA() &&
		!isLargeGroup(q) &&
		!isLarge(q.Snapshot) &&
		is(q.Snapshot.Turnover, e.Turnover100MPlus)
}

func groupAbove500(s e.Snapshot) bool {
	return groupAtLeast(s.WorkforceGroup, e.Workforce500To4999)
}

// FirstYear is the transition year the company first reports for, 0 when it
// is not subject.
func (CSRD) FirstYear(q Qualified) int {
	c, s := q.Company, q.Snapshot
	listed, pie := e.IsTrue(c.IsListed), e.IsTrue(c.IsPublicInterestEntity)
	ss500 := is(s.WorkforceSocialSecurity, e.SocialSecurity500Plus)

	if !e.IsCSRDLegalCategory(c.LegalCategoryCode) && !pie {
		return 0
	}

	if isLargeGroup(q) {
		switch {
		case e.IsTrue(c.IsParentCompany):
			if (listed || pie) && groupAbove500(s) {
				return csrdWave2024
			}
			return csrdWave2027
		case isLarge(s):
			if listed && ss500 {
				return csrdWave2024
			}
			return csrdWave2027
		case listed && isSME(s):
			if groupAbove500(s) {
				return csrdWave2024
			}
			return csrdWave2027
		}
		return 0
	}

	if !c.InEEA() {
		switch {
		case isLarge(s):
			return csrdWave2027
		case isOutsideEEASubject(q):
			return csrdWave2028
		}
		return 0
	}

	switch {
	case listed:
		if isLarge(s) {
			if ss500 {
				return csrdWave2024
			}
			return csrdWave2027
		}
		if isSME(s) {
			return csrdWave2028
		}
	case pie:
		if isLarge(s) {
			if ss500 {
				return csrdWave2024
			}
			return csrdWave2027
		}
	case isLarge(s):
		return csrdWave2027
	}
	return 0
}

func (r CSRD) IsSubject(q Qualified) bool {
	return r.FirstYear(q) != 0
}

func (CSRD) Criteria(q Qualified) []string {
	var criteria []string
	c := q.Company
	if !c.InEEA() && !e.IsTrue(c.BelongsToGroup) {
		criteria = append(criteria, "votre siège social est hors EEE")
	} else {
		if e.IsTrue(c.IsListed) {
			criteria = append(criteria, "votre société est cotée sur un marché réglementé")
		}
		if e.IsTrue(c.IsPublicInterestEntity) {
			criteria = append(criteria, "votre société est d'intérêt public")
		}
		if e.IsTrue(c.IsParentCompany) && isLargeGroup(q) {
			criteria = append(criteria, "votre société est la société mère d'un groupe")
		}
	}
	criteria = appendIf(criteria, csrdWorkforce(q))
	criteria = appendIf(criteria, csrdBalance(q))
	return appendIf(criteria, csrdTurnover(q))
}

func csrdWorkforce(q Qualified) string {
	c, s := q.Company, q.Snapshot
	large, largeGroup := isLarge(s), isLargeGroup(q)

	if !e.IsTrue(c.IsListed) && !e.IsTrue(c.IsPublicInterestEntity) {
		if large && socialSecurityAtLeast(s.WorkforceSocialSecurity, e.SocialSecurity250To499) {
			return "votre effectif est supérieur à 250 salariés"
		}
		if e.IsTrue(c.IsParentCompany) && largeGroup && groupAtLeast(s.WorkforceGroup, e.Group250To499) {
			return "l'effectif du groupe est supérieur à 250 salariés"
		}
		return ""
	}

	if large {
		switch {
		case is(s.WorkforceSocialSecurity, e.SocialSecurity500Plus):
			return "votre effectif est supérieur à 500 salariés"
		case is(s.WorkforceSocialSecurity, e.SocialSecurity250To499):
			return "votre effectif est supérieur à 250 salariés"
		}
	}
	if largeGroup {
		switch {
		case groupAbove500(s):
			return "l'effectif du groupe est supérieur à 500 salariés"
		case is(s.WorkforceGroup, e.Group250To499):
			return "l'effectif du groupe est supérieur à 250 salariés"
		}
	}
	if isSME(s) && !is(s.WorkforceSocialSecurity, e.SocialSecurity0To9) {
		return "votre effectif est supérieur à 10 salariés"
	}
	return ""
}

func csrdBalance(q Qualified) string {
	s := q.Snapshot
	if isLargeGroup(q) && e.ConsolidatedBalanceScale.AtLeast(s.BalanceSheetConsolidated, e.ConsolidatedBal30To43M) {
		return "le bilan du groupe est supérieur à 30M€"
	}
	switch {
	case e.BalanceScale.AtLeast(s.BalanceSheet, e.Balance25MTo43M):
		if isLarge(s) {
			return "votre bilan est supérieur à 25M€"
		}
		if isSME(s) {
			return "votre bilan est supérieur à 450k€"
		}
	case is(s.BalanceSheet, e.Balance450kTo25M) && isSME(s):
		return "votre bilan est supérieur à 450k€"
	}
	return ""
}

func csrdTurnover(q Qualified) string {
	s := q.Snapshot
	if isLargeGroup(q) && e.ConsolidatedTurnoverScale.AtLeast(s.TurnoverConsolidated, e.Consolidated60To100M) {
		return "le chiffre d'affaires du groupe est supérieur à 60M€"
	}
	switch {
	case e.TurnoverScale.AtLeast(s.Turnover, e.Turnover50MTo100M):
		if isLarge(s) {
			return "votre chiffre d'affaires est supérieur à 50M€"
		}
		if isSME(s) {
			return "votre chiffre d'affaires est supérieur à 900k€"
		}
	case is(s.Turnover, e.Turnover900kTo50M) && isSME(s):
		return "votre chiffre d'affaires est supérieur à 900k€"
	}
	return ""
}

// Delegable reports whether the parent company may report on behalf of this
// subsidiary.
func (CSRD) Delegable(q Qualified) bool {
	switch {
	case e.IsTrue(q.Company.IsParentCompany):
		return false
	case isLarge(q.Snapshot) && e.IsTrue(q.Company.IsListed):
		return false
	}
	return isLargeGroup(q)
}

// PublicationYear shifts the first reporting year by the fiscal year closing
// date: the report is published with the management report, six months after
// the close of the first fiscal year opened in year.
func PublicationYear(year int, fiscalYearEnd time.Time) int {
	opening := fiscalYearEnd.AddDate(0, 0, 1)
	opening = clampedDate(year, opening.Month(), opening.Day())
	closing := addMonthsClamped(opening, 12).AddDate(0, 0, -1)
	return addMonthsClamped(closing, 6).Year()
}

// addMonthsClamped adds n months, keeping the day within the target month
// (January 31 plus one month is the end of February).
func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return clampedDate(first.Year(), first.Month(), t.Day())
}

func clampedDate(year int, month time.Month, day int) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return time.Date(year, month, min(day, last), 0, 0, 0, 0, time.UTC)
}

const csrdOutsideEEAConditions = "votre société dont le siège social est hors EEE revêt une forme juridique comparable " +
	"aux sociétés par actions ou aux sociétés à responsabilité limitée, comptabilise un chiffre d'affaires net " +
	"dans l'Espace économique européen qui excède 150 millions d'euros à la date de clôture des deux derniers exercices consécutifs, " +
	"ne contrôle ni n'est contrôlée par une autre société et dispose d'une succursale en France dont le chiffre d'affaires net excède 40 millions d'euros"

func (r CSRD) MemberStatus(q Qualified) models.Status {
	report := q.Filings.CSRD
	step, title := "introduction", "Actualiser mon Rapport de Durabilité"
	if report != nil && report.ValidatedStep != "" {
		step, title = report.NextStep, "Reprendre l’actualisation de mon rapport"
	}
	action := &models.Action{URL: fmt.Sprintf("/csrd/%s/etape-%s", q.Company.Siren, step), Title: title}

	year := r.FirstYear(q)
	if year == 0 {
		action.Title = "Tester un Rapport de Durabilité"
		return status(models.StateNotSubject, notSubjectDetail, action)
	}

	state := models.StateInProgress
	switch {
	case report == nil:
		state = models.StateToUpdate
	case report.Finished:
		state = models.StateUpToDate
	}

	publication := PublicationYear(year, *q.Snapshot.FiscalYearEnd)
	fiscalYear := strconv.Itoa(year)
	if !q.Snapshot.IsCalendarFiscalYear() {
		fiscalYear = fmt.Sprintf("%d-%d", year, year+1)
	}
	detail := fmt.Sprintf("Vous êtes soumis à cette réglementation à partir de %d sur les données de l'exercice comptable %s", publication, fiscalYear)
	if isOutsideEEASubject(q) {
		detail += " si " + csrdOutsideEEAConditions + "."
	} else {
		detail += " car " + joinAnd(r.Criteria(q)) + "."
		if r.Delegable(q) {
			detail += " Vous pouvez déléguer cette obligation à votre société-mère."
		}
	}
	detail += " Vous devez publier le Rapport de Durabilité en même temps que le rapport de gestion."

	s := status(state, detail, action)
	s.NextDeadline = strconv.Itoa(publication)
	return s
}
