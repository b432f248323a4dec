package ports

import (
	"context"

	"portail-rse/internal/reglementation/rules"
)

// RegistryPort gives the filings a company made outside this service.
// It keeps the orchestrator free of the registry clients (BDESE documents,
// GHG reports database, gender index API).
type RegistryPort interface {
	// BDESEState is the progress of the BDESE for a reporting year.
	BDESEState(ctx context.Context, siren string, year int) (rules.BDESEState, error)

	// LastGHGYear is the last year a GHG report was published, 0 if never.
	LastGHGYear(ctx context.Context, siren string) (int, error)

	// GenderIndexPublished reports whether the index of year was declared.
	GenderIndexPublished(ctx context.Context, siren string, year int) (bool, error)
}
