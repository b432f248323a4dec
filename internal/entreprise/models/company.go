package models

import (
	"regexp"
	"slices"
	"time"

	dErrors "portail-rse/pkg/domain-errors"
)

var sirenPattern = regexp.MustCompile(`^[0-9]{9}$`)

// Company holds the slow-changing facts about one entreprise. Nil booleans
// mean the user has not answered yet.
type Company struct {
	Siren                     string    `json:"siren"`
	Name                      string    `json:"denomination"`
	LegalCategoryCode         *int      `json:"categorie_juridique_sirene,omitempty"`
	ForeignCountryCode        *int      `json:"code_pays_etranger_sirene,omitempty"`
	IsListed                  *bool     `json:"est_cotee,omitempty"`
	IsPublicInterestEntity    *bool     `json:"est_interet_public,omitempty"`
	BelongsToGroup            *bool     `json:"appartient_groupe,omitempty"`
	IsParentCompany           *bool     `json:"est_societe_mere,omitempty"`
	ParentInDomesticTerritory *bool     `json:"societe_mere_en_france,omitempty"`
	ConsolidatedAccounts      *bool     `json:"comptes_consolides,omitempty"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// ValidateSiren checks the 9 digit registry identifier.
func ValidateSiren(siren string) error {
	if !sirenPattern.MatchString(siren) {
		return dErrors.New(dErrors.CodeValidation, "Le siren est incorrect")
	}
	return nil
}

// Normalize clears answers that only make sense inside a group, so the
// group-only invariant holds whatever the caller submitted.
func (c *Company) Normalize() {
	if !IsTrue(c.BelongsToGroup) {
		c.IsParentCompany = nil
		c.ParentInDomesticTerritory = nil
		c.ConsolidatedAccounts = nil
	}
}

// DomesticRegistration is true for companies registered in France.
func (c Company) DomesticRegistration() bool {
	return c.ForeignCountryCode == nil
}

// InEEA reports whether the registered office is in the European Economic Area.
func (c Company) InEEA() bool {
	return c.ForeignCountryCode == nil || slices.Contains(eeaCountryCodes, *c.ForeignCountryCode)
}

// LegalForm converts the registry legal category.
func (c Company) LegalForm() LegalForm {
	if c.LegalCategoryCode == nil {
		return LegalFormUnknown
	}
	return ConvertLegalCategory(*c.LegalCategoryCode)
}

// IsTrue treats an unanswered question as false.
func IsTrue(b *bool) bool {
	return b != nil && *b
}

// eeaCountryCodes lists the registry foreign country codes inside the EEA.
// France itself has no foreign country code.
var eeaCountryCodes = []int{
	99109, // Allemagne
	99110, // Autriche
	99131, // Belgique
	99111, // Bulgarie
	99254, // Chypre
	99119, // Croatie
	99101, // Danemark
	99134, // Espagne
	99106, // Estonie
	99105, // Finlande
	99126, // Grèce
	99112, // Hongrie
	99136, // Irlande
	99102, // Islande
	99127, // Italie
	99107, // Lettonie
	99113, // Liechtenstein
	99108, // Lituanie
	99137, // Luxembourg
	99144, // Malte
	99103, // Norvège
	99135, // Pays-Bas
	99122, // Pologne
	99139, // Portugal
	99116, // République tchèque
	99114, // Roumanie
	99117, // Slovaquie
	99145, // Slovénie
	99104, // Suède
}
