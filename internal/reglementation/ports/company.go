package ports

import (
	"context"

	entreprise "portail-rse/internal/entreprise/models"
)

// CompanyPort loads what the rules read about a company.
type CompanyPort interface {
	// Latest returns the company and its most recent snapshot, nil when no
	// year was recorded yet.
	Latest(ctx context.Context, siren string) (*entreprise.Company, *entreprise.Snapshot, error)
}
