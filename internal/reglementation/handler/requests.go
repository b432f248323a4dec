package handler

import (
	"net/url"

	entreprise "portail-rse/internal/entreprise/models"
	dErrors "portail-rse/pkg/domain-errors"
	"portail-rse/pkg/platform/strings"
)

// maxBatch bounds GET /reglementations.
const maxBatch = 50

// SimulationRequest is the body of POST /simulations: the answers of the
// simulation form, shaped like the stored records.
type SimulationRequest struct {
	Company  entreprise.Company  `json:"entreprise"`
	Snapshot entreprise.Snapshot `json:"caracteristiques"`
}

func (r *SimulationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Company.Siren == "" {
		return dErrors.New(dErrors.CodeValidation, "entreprise.siren is required")
	}
	return nil
}

func sirensFrom(query url.Values) ([]string, error) {
	sirens := strings.DedupeAndTrim(query["siren"])
	switch {
	case len(sirens) == 0:
		return nil, dErrors.New(dErrors.CodeBadRequest, "at least one siren is required")
	case len(sirens) > maxBatch:
		return nil, dErrors.New(dErrors.CodeBadRequest, "too many sirens")
	}
	for _, siren := range sirens {
		if err := entreprise.ValidateSiren(siren); err != nil {
			return nil, err
		}
	}
	return sirens, nil
}
