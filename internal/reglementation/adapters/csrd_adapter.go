package adapters

import (
	"context"

	csrd "portail-rse/internal/csrd/models"
	"portail-rse/internal/reglementation/ports"
	"portail-rse/internal/reglementation/rules"
)

// LatestReportReader is implemented by the CSRD service.
type LatestReportReader interface {
	Latest(ctx context.Context, siren string) (*csrd.Report, error)
}

// CSRDAdapter is an in-process adapter that implements ports.CSRDPort
// over the report workflow service.
type CSRDAdapter struct {
	reports LatestReportReader
}

func NewCSRDAdapter(reports LatestReportReader) ports.CSRDPort {
	return &CSRDAdapter{reports: reports}
}

// Summary reads the latest official report whatever its year, not only the
// report of the current year. Personal reports are never considered.
func (a *CSRDAdapter) Summary(ctx context.Context, siren string) (*rules.CSRDSummary, error) {
	report, err := a.reports.Latest(ctx, siren)
	if err != nil || report == nil {
		return nil, err
	}
	return &rules.CSRDSummary{
		ValidatedStep: string(report.ValidatedStep),
		NextStep:      string(report.NextStep()),
		Finished:      report.IsFinished(),
	}, nil
}
