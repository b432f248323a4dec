package handler

import (
	"strings"

	"portail-rse/internal/entreprise/models"
	dErrors "portail-rse/pkg/domain-errors"
)

// CompanyRequest is the body of PUT /entreprises/{siren}.
type CompanyRequest struct {
	Name                      string `json:"denomination"`
	LegalCategoryCode         *int   `json:"categorie_juridique_sirene"`
	ForeignCountryCode        *int   `json:"code_pays_etranger_sirene"`
	IsListed                  *bool  `json:"est_cotee"`
	IsPublicInterestEntity    *bool  `json:"est_interet_public"`
	BelongsToGroup            *bool  `json:"appartient_groupe"`
	IsParentCompany           *bool  `json:"est_societe_mere"`
	ParentInDomesticTerritory *bool  `json:"societe_mere_en_france"`
	ConsolidatedAccounts      *bool  `json:"comptes_consolides"`
}

func (r *CompanyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if len(r.Name) > 250 {
		return dErrors.New(dErrors.CodeValidation, "denomination must be at most 250 characters")
	}
	return nil
}

func (r *CompanyRequest) toModel(siren string) *models.Company {
	return &models.Company{
		Siren:                     siren,
		Name:                      r.Name,
		LegalCategoryCode:         r.LegalCategoryCode,
		ForeignCountryCode:        r.ForeignCountryCode,
		IsListed:                  r.IsListed,
		IsPublicInterestEntity:    r.IsPublicInterestEntity,
		BelongsToGroup:            r.BelongsToGroup,
		IsParentCompany:           r.IsParentCompany,
		ParentInDomesticTerritory: r.ParentInDomesticTerritory,
		ConsolidatedAccounts:      r.ConsolidatedAccounts,
	}
}

// SnapshotRequest is the body of POST /entreprises/{siren}/caracteristiques.
// Bracket labels are checked against their scale by the model.
type SnapshotRequest struct {
	models.Snapshot
}

func (r *SnapshotRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Year == 0 {
		return dErrors.New(dErrors.CodeValidation, "annee is required")
	}
	return nil
}
