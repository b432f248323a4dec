package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	csrd "portail-rse/internal/csrd/models"
	"portail-rse/internal/reglementation/rules"
)

const filingsYAML = `
entreprises:
  "123456789":
    bdese: complete
    bges_derniere_annee: 2022
    index_egapro: [2023, 2024]
  "987654321":
    indisponible: true
`

func TestLoadStaticRegistry(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "filings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(filingsYAML), 0o600))

	registry, err := LoadStaticRegistry(path)
	require.NoError(t, err)

	state, err := registry.BDESEState(ctx, "123456789", 2024)
	require.NoError(t, err)
	assert.Equal(t, rules.BDESEComplete, state)

	year, err := registry.LastGHGYear(ctx, "123456789")
	require.NoError(t, err)
	assert.Equal(t, 2022, year)

	published, err := registry.GenderIndexPublished(ctx, "123456789", 2024)
	require.NoError(t, err)
	assert.True(t, published)
	published, err = registry.GenderIndexPublished(ctx, "123456789", 2025)
	require.NoError(t, err)
	assert.False(t, published)

	_, err = registry.LastGHGYear(ctx, "987654321")
	assert.ErrorIs(t, err, ErrRegistryUnavailable)

	year, err = registry.LastGHGYear(ctx, "000000000")
	require.NoError(t, err)
	assert.Zero(t, year)
}

func TestLoadStaticRegistryErrors(t *testing.T) {
	registry, err := LoadStaticRegistry("")
	require.NoError(t, err)
	state, err := registry.BDESEState(context.Background(), "123456789", 2024)
	require.NoError(t, err)
	assert.Equal(t, rules.BDESENone, state)

	path := filepath.Join(t.TempDir(), "filings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entreprises:\n  \"1\":\n    bdese: peut-etre\n"), 0o600))
	_, err = LoadStaticRegistry(path)
	assert.ErrorContains(t, err, "unknown bdese state")

	_, err = LoadStaticRegistry(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

type latestReports map[string]*csrd.Report

func (l latestReports) Latest(_ context.Context, siren string) (*csrd.Report, error) {
	return l[siren], nil
}

func TestCSRDAdapter(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	report, err := csrd.NewReport("123456789", 2024, nil, now)
	require.NoError(t, err)
	_, err = report.Validate(csrd.StepIssueSelection, now)
	require.NoError(t, err)

	adapter := NewCSRDAdapter(latestReports{"123456789": report})

	summary, err := adapter.Summary(context.Background(), "123456789")
	require.NoError(t, err)
	assert.Equal(t, rules.CSRDSummary{
		ValidatedStep: "selection-enjeux",
		NextStep:      "analyse-materialite",
	}, *summary)

	summary, err = adapter.Summary(context.Background(), "000000000")
	require.NoError(t, err)
	assert.Nil(t, summary)
}
