package models

import (
	"time"

	dErrors "portail-rse/pkg/domain-errors"
)

// Snapshot is one fiscal year of measured facts for one company.
//
// Invariants:
//   - group fields are set only when the company belongs to a group
//   - consolidated fields are set only when the group has consolidated accounts
//   - every bracket belongs to the scale of its dimension
//   - brackets are mutually consistent (see CheckConsistency)
//   - a snapshot is never mutated once stored; a later year supersedes it
type Snapshot struct {
	Siren string `json:"siren"`
	Year  int    `json:"annee"`

	FiscalYearEnd *time.Time `json:"date_cloture_exercice,omitempty"`

	Workforce               *Bracket `json:"effectif,omitempty"`
	WorkforcePermanent      *Bracket `json:"effectif_permanent,omitempty"`
	WorkforceSocialSecurity *Bracket `json:"effectif_securite_sociale,omitempty"`
	WorkforceOverseas       *Bracket `json:"effectif_outre_mer,omitempty"`
	WorkforceGroup          *Bracket `json:"effectif_groupe,omitempty"`
	WorkforceGroupDomestic  *Bracket `json:"effectif_groupe_france,omitempty"`
	WorkforceGroupPermanent *Bracket `json:"effectif_groupe_permanent,omitempty"`

	BalanceSheet             *Bracket `json:"tranche_bilan,omitempty"`
	BalanceSheetConsolidated *Bracket `json:"tranche_bilan_consolide,omitempty"`
	Turnover                 *Bracket `json:"tranche_chiffre_affaires,omitempty"`
	TurnoverConsolidated     *Bracket `json:"tranche_chiffre_affaires_consolide,omitempty"`

	HasEnergyManagementSystem *bool `json:"systeme_management_energie,omitempty"`
	HasBDESEAgreement         *bool `json:"bdese_accord,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsCalendarFiscalYear is true when the fiscal year closes on December 31.
func (s Snapshot) IsCalendarFiscalYear() bool {
	return s.FiscalYearEnd != nil && s.FiscalYearEnd.Month() == time.December && s.FiscalYearEnd.Day() == 31
}

// Normalize drops group and consolidated figures the company answers make
// meaningless.
func (s *Snapshot) Normalize(c Company) {
	if !IsTrue(c.BelongsToGroup) {
		s.WorkforceGroup = nil
		s.WorkforceGroupDomestic = nil
		s.WorkforceGroupPermanent = nil
	}
	if !IsTrue(c.BelongsToGroup) || !IsTrue(c.ConsolidatedAccounts) {
		s.BalanceSheetConsolidated = nil
		s.TurnoverConsolidated = nil
	}
}

type scaledField struct {
	name  string
	value *Bracket
	scale Scale
}

func (s Snapshot) scaledFields() []scaledField {
	return []scaledField{
		{"effectif", s.Workforce, WorkforceScale},
		{"effectif_permanent", s.WorkforcePermanent, WorkforceScale},
		{"effectif_securite_sociale", s.WorkforceSocialSecurity, SocialSecurityScale},
		{"effectif_outre_mer", s.WorkforceOverseas, OverseasScale},
		{"effectif_groupe", s.WorkforceGroup, GroupScale},
		{"effectif_groupe_france", s.WorkforceGroupDomestic, GroupScale},
		{"effectif_groupe_permanent", s.WorkforceGroupPermanent, GroupScale},
		{"tranche_bilan", s.BalanceSheet, BalanceScale},
		{"tranche_bilan_consolide", s.BalanceSheetConsolidated, ConsolidatedBalanceScale},
		{"tranche_chiffre_affaires", s.Turnover, TurnoverScale},
		{"tranche_chiffre_affaires_consolide", s.TurnoverConsolidated, ConsolidatedTurnoverScale},
	}
}

// Validate checks the year, the scale of every bracket and the consistency rules.
func (s Snapshot) Validate() error {
	if s.Year < 2000 || s.Year > 2100 {
		return dErrors.New(dErrors.CodeValidation, "annee must be a plausible fiscal year")
	}
	for _, f := range s.scaledFields() {
		if f.value != nil && !f.scale.Contains(*f.value) {
			return dErrors.New(dErrors.CodeValidation, "unknown bracket "+string(*f.value)+" for "+f.name)
		}
	}
	return s.CheckConsistency()
}

type consistencyRule struct {
	smaller, larger *Bracket
	message         string
}

// CheckConsistency rejects snapshots where a sub-population bracket lies
// entirely above the population that contains it.
func (s Snapshot) CheckConsistency() error {
	rules := []consistencyRule{
		{s.WorkforcePermanent, s.Workforce, "L'effectif permanent ne peut pas être supérieur à l'effectif"},
		{s.WorkforceGroupPermanent, s.WorkforceGroup, "L'effectif permanent du groupe ne peut pas être supérieur à l'effectif du groupe"},
		{s.Workforce, s.WorkforceGroup, "L'effectif de l'entreprise ne peut pas être supérieur à l'effectif du groupe"},
		{s.WorkforceGroupDomestic, s.WorkforceGroup, "L'effectif du groupe France ne peut pas être supérieur à l'effectif du groupe international"},
	}
	for _, r := range rules {
		if r.smaller == nil || r.larger == nil {
			continue
		}
		if IsGreater(*r.smaller, *r.larger) {
			return dErrors.New(dErrors.CodeValidation, r.message)
		}
	}
	return nil
}
