package adapters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"portail-rse/internal/reglementation/ports"
	"portail-rse/internal/reglementation/rules"
)

// ErrRegistryUnavailable is returned for companies flagged unavailable, so
// the rules can render their technical-problem variant.
var ErrRegistryUnavailable = errors.New("registry unavailable")

// CompanyFilings is one entry of the filings file.
type CompanyFilings struct {
	// BDESE is "", "en_cours" or "complete" for the reporting year.
	BDESE       string `yaml:"bdese"`
	LastGHGYear int    `yaml:"bges_derniere_annee"`
	GenderIndex []int  `yaml:"index_egapro"`
	Unavailable bool   `yaml:"indisponible"`
}

type filingsFile struct {
	Companies map[string]CompanyFilings `yaml:"entreprises"`
}

// StaticRegistry answers registry lookups from a fixed table. Unknown
// companies have filed nothing.
type StaticRegistry struct {
	companies map[string]CompanyFilings
}

var _ ports.RegistryPort = (*StaticRegistry)(nil)

func NewStaticRegistry(companies map[string]CompanyFilings) *StaticRegistry {
	if companies == nil {
		companies = map[string]CompanyFilings{}
	}
	return &StaticRegistry{companies: companies}
}

// LoadStaticRegistry reads the YAML filings file. An empty path yields an
// empty registry.
func LoadStaticRegistry(path string) (*StaticRegistry, error) {
	if path == "" {
		return NewStaticRegistry(nil), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read filings file: %w", err)
	}
	var file filingsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode filings file %s: %w", path, err)
	}
	for siren, filings := range file.Companies {
		if _, err := parseBDESE(filings.BDESE); err != nil {
			return nil, fmt.Errorf("filings of %s: %w", siren, err)
		}
	}
	return NewStaticRegistry(file.Companies), nil
}

func parseBDESE(v string) (rules.BDESEState, error) {
	switch v {
	case "":
		return rules.BDESENone, nil
	case "en_cours":
		return rules.BDESEInProgress, nil
	case "complete":
		return rules.BDESEComplete, nil
	}
	return rules.BDESENone, fmt.Errorf("unknown bdese state %q", v)
}

func (r *StaticRegistry) lookup(siren string) (CompanyFilings, error) {
	filings := r.companies[siren]
	if filings.Unavailable {
		return CompanyFilings{}, ErrRegistryUnavailable
	}
	return filings, nil
}

// BDESEState ignores the year: the table describes the current one.
func (r *StaticRegistry) BDESEState(_ context.Context, siren string, _ int) (rules.BDESEState, error) {
	filings, err := r.lookup(siren)
	if err != nil {
		return rules.BDESENone, err
	}
	return parseBDESE(filings.BDESE)
}

func (r *StaticRegistry) LastGHGYear(_ context.Context, siren string) (int, error) {
	filings, err := r.lookup(siren)
	if err != nil {
		return 0, err
	}
	return filings.LastGHGYear, nil
}

func (r *StaticRegistry) GenderIndexPublished(_ context.Context, siren string, year int) (bool, error) {
	filings, err := r.lookup(siren)
	if err != nil {
		return false, err
	}
	return slices.Contains(filings.GenderIndex, year), nil
}
