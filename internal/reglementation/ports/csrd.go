package ports

import (
	"context"

	"portail-rse/internal/reglementation/rules"
)

// CSRDPort summarizes the official sustainability report of a company.
type CSRDPort interface {
	// Summary returns nil when the company has no official report.
	Summary(ctx context.Context, siren string) (*rules.CSRDSummary, error)
}
