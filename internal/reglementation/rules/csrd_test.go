package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	e "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

type CSRDSuite struct {
	suite.Suite
	rule CSRD
}

func TestCSRDSuite(t *testing.T) {
	suite.Run(t, new(CSRDSuite))
}

func (s *CSRDSuite) company(listed, pie bool) e.Company {
	c := standalone()
	c.LegalCategoryCode = e.Ptr(5599)
	c.IsListed = e.Ptr(listed)
	c.IsPublicInterestEntity = e.Ptr(pie)
	return c
}

func (s *CSRDSuite) largeSnapshot() e.Snapshot {
	return e.Snapshot{
		FiscalYearEnd:           date(2024, time.December, 31),
		WorkforceSocialSecurity: e.Ptr(e.SocialSecurity500Plus),
		BalanceSheet:            e.Ptr(e.Balance43MTo100M),
		Turnover:                e.Ptr(e.Turnover100MPlus),
	}
}

func (s *CSRDSuite) qualify(c e.Company, snap e.Snapshot) Qualified {
	q, err := Qualify(s.rule, memberFacts(c, snap))
	s.Require().NoError(err)
	return q
}

func (s *CSRDSuite) TestListedLargeCompanyReportsFrom2024() {
	q := s.qualify(s.company(true, false), s.largeSnapshot())

	s.Equal(2024, s.rule.FirstYear(q))
	s.False(s.rule.Delegable(q))

	status := s.rule.MemberStatus(q)
	s.Equal(models.StateToUpdate, status.State)
	s.Equal("Vous êtes soumis à cette réglementation à partir de 2025 sur les données de l'exercice comptable 2024 "+
		"car votre société est cotée sur un marché réglementé, votre effectif est supérieur à 500 salariés, "+
		"votre bilan est supérieur à 25M€ et votre chiffre d'affaires est supérieur à 50M€. "+
		"Vous devez publier le Rapport de Durabilité en même temps que le rapport de gestion.", status.Detail)
	s.Equal("2025", status.NextDeadline)
	s.Require().NotNil(status.PrimaryAction)
	s.Equal("/csrd/"+siren+"/etape-introduction", status.PrimaryAction.URL)
	s.Equal("Actualiser mon Rapport de Durabilité", status.PrimaryAction.Title)
}

func (s *CSRDSuite) TestUnlistedLargeCompanyWithBrokenFiscalYear() {
	snap := s.largeSnapshot()
	snap.FiscalYearEnd = date(2024, time.September, 30)
	snap.WorkforceSocialSecurity = e.Ptr(e.SocialSecurity250To499)
	q := s.qualify(s.company(false, false), snap)

	s.Equal(2027, s.rule.FirstYear(q))
	status := s.rule.MemberStatus(q)
	s.Contains(status.Detail, "à partir de 2029 sur les données de l'exercice comptable 2027-2028 car votre effectif est supérieur à 250 salariés")
	s.Equal("2029", status.NextDeadline)
}

func (s *CSRDSuite) TestListedSubsidiaryOfLargeGroupMayDelegate() {
	c := s.company(true, false)
	c.BelongsToGroup = e.Ptr(true)
	c.IsParentCompany = e.Ptr(false)
	c.ConsolidatedAccounts = e.Ptr(true)
	snap := e.Snapshot{
		FiscalYearEnd:            date(2024, time.December, 31),
		WorkforceSocialSecurity:  e.Ptr(e.SocialSecurity50To249),
		WorkforceGroup:           e.Ptr(e.Workforce500To4999),
		BalanceSheet:             e.Ptr(e.Balance450kTo25M),
		BalanceSheetConsolidated: e.Ptr(e.Balance43MTo100M),
		Turnover:                 e.Ptr(e.Turnover900kTo50M),
		TurnoverConsolidated:     e.Ptr(e.Turnover100MPlus),
	}
	q := s.qualify(c, snap)

	s.Equal(2024, s.rule.FirstYear(q))
	s.True(s.rule.Delegable(q))
	s.Equal([]string{
		"votre société est cotée sur un marché réglementé",
		"l'effectif du groupe est supérieur à 500 salariés",
		"le bilan du groupe est supérieur à 30M€",
		"le chiffre d'affaires du groupe est supérieur à 60M€",
	}, s.rule.Criteria(q))
	s.Contains(s.rule.MemberStatus(q).Detail, " Vous pouvez déléguer cette obligation à votre société-mère.")
}

func (s *CSRDSuite) TestUnlistedSubsidiaryOfLargeGroupIsNotSubject() {
	c := s.company(false, false)
	c.BelongsToGroup = e.Ptr(true)
	c.IsParentCompany = e.Ptr(false)
	c.ConsolidatedAccounts = e.Ptr(true)
	snap := e.Snapshot{
		FiscalYearEnd:            date(2024, time.December, 31),
		WorkforceSocialSecurity:  e.Ptr(e.SocialSecurity50To249),
		WorkforceGroup:           e.Ptr(e.Workforce500To4999),
		BalanceSheet:             e.Ptr(e.Balance450kTo25M),
		BalanceSheetConsolidated: e.Ptr(e.Balance43MTo100M),
		Turnover:                 e.Ptr(e.Turnover900kTo50M),
		TurnoverConsolidated:     e.Ptr(e.Turnover100MPlus),
	}
	s.False(s.rule.IsSubject(s.qualify(c, snap)))
}

func (s *CSRDSuite) TestMicroCompanyMayTestTheReport() {
	snap := e.Snapshot{
		FiscalYearEnd:           date(2024, time.December, 31),
		WorkforceSocialSecurity: e.Ptr(e.SocialSecurity0To9),
		BalanceSheet:            e.Ptr(e.Balance0To450k),
		Turnover:                e.Ptr(e.Turnover0To900k),
	}
	status := s.rule.MemberStatus(s.qualify(s.company(false, false), snap))

	s.Equal(models.StateNotSubject, status.State)
	s.Equal("Tester un Rapport de Durabilité", status.PrimaryAction.Title)
	s.Empty(status.NextDeadline)
}

func (s *CSRDSuite) TestOutsideEEAApproximation() {
	c := s.company(false, false)
	c.ForeignCountryCode = e.Ptr(99132)
	snap := e.Snapshot{
		FiscalYearEnd:           date(2024, time.December, 31),
		WorkforceSocialSecurity: e.Ptr(e.SocialSecurity50To249),
		BalanceSheet:            e.Ptr(e.Balance450kTo25M),
		Turnover:                e.Ptr(e.Turnover100MPlus),
	}
	q := s.qualify(c, snap)

	s.Equal(2028, s.rule.FirstYear(q))
	s.Equal("votre siège social est hors EEE", s.rule.Criteria(q)[0])
	status := s.rule.MemberStatus(q)
	s.Contains(status.Detail, "à partir de 2029 sur les données de l'exercice comptable 2028 si votre société dont le siège social est hors EEE")
	s.NotContains(status.Detail, " car ")
}

func (s *CSRDSuite) TestLegalCategoryOutsideScope() {
	c := s.company(true, false)
	c.LegalCategoryCode = e.Ptr(1000)
	s.Zero(s.rule.FirstYear(s.qualify(c, s.largeSnapshot())))
}

func (s *CSRDSuite) TestReportProgressDrivesState() {
	f := memberFacts(s.company(true, false), s.largeSnapshot())

	f.Filings.CSRD = &CSRDSummary{ValidatedStep: "introduction", NextStep: "selection-enjeux"}
	status := s.rule.MemberStatus(mustQualify(s.rule, f))
	s.Equal(models.StateInProgress, status.State)
	s.Equal("/csrd/"+siren+"/etape-selection-enjeux", status.PrimaryAction.URL)
	s.Equal("Reprendre l’actualisation de mon rapport", status.PrimaryAction.Title)

	f.Filings.CSRD = &CSRDSummary{Finished: true}
	status = s.rule.MemberStatus(mustQualify(s.rule, f))
	s.Equal(models.StateUpToDate, status.State)
	s.Equal("/csrd/"+siren+"/etape-introduction", status.PrimaryAction.URL)
}

func (s *CSRDSuite) TestQualification() {
	snap := s.largeSnapshot()
	snap.FiscalYearEnd = nil
	s.False(s.rule.Qualifies(memberFacts(s.company(true, false), snap)))

	c := s.company(true, false)
	c.IsPublicInterestEntity = nil
	s.False(s.rule.Qualifies(memberFacts(c, s.largeSnapshot())))

	c = s.company(true, false)
	c.BelongsToGroup = e.Ptr(true)
	c.ConsolidatedAccounts = e.Ptr(false)
	s.True(s.rule.Qualifies(memberFacts(c, s.largeSnapshot())))
}

func TestPublicationYear(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		closing time.Time
		want    int
	}{
		{"calendar year", 2024, *date(2023, time.December, 31), 2025},
		{"closing in June", 2024, *date(2023, time.June, 30), 2025},
		{"closing in September", 2027, *date(2020, time.September, 30), 2029},
		{"closing in January", 2024, *date(2023, time.January, 31), 2025},
		{"opening on a leap day", 2025, *date(2024, time.February, 28), 2026},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicationYear(tt.year, tt.closing))
		})
	}
}

func TestAddMonthsClamped(t *testing.T) {
	got := addMonthsClamped(*date(2025, time.January, 31), 1)
	require.Equal(t, *date(2025, time.February, 28), got)
	assert.Equal(t, *date(2024, time.February, 29), addMonthsClamped(*date(2023, time.August, 31), 6))
}
