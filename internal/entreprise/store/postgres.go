package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portail-rse/internal/entreprise/models"
	"portail-rse/pkg/platform/sentinel"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresStore persists companies in entreprises and snapshots, as JSONB
// facts, in caracteristiques_annuelles.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) UpsertCompany(ctx context.Context, c *models.Company) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO entreprises (
			siren, denomination, categorie_juridique, code_pays_etranger,
			est_cotee, appartient_groupe, est_societe_mere, societe_mere_en_france,
			comptes_consolides, est_interet_public, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (siren) DO UPDATE SET
			denomination = EXCLUDED.denomination,
			categorie_juridique = EXCLUDED.categorie_juridique,
			code_pays_etranger = EXCLUDED.code_pays_etranger,
			est_cotee = EXCLUDED.est_cotee,
			appartient_groupe = EXCLUDED.appartient_groupe,
			est_societe_mere = EXCLUDED.est_societe_mere,
			societe_mere_en_france = EXCLUDED.societe_mere_en_france,
			comptes_consolides = EXCLUDED.comptes_consolides,
			est_interet_public = EXCLUDED.est_interet_public,
			updated_at = EXCLUDED.updated_at
	`, c.Siren, c.Name, c.LegalCategoryCode, c.ForeignCountryCode,
		c.IsListed, c.BelongsToGroup, c.IsParentCompany, c.ParentInDomesticTerritory,
		c.ConsolidatedAccounts, c.IsPublicInterestEntity, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert entreprise: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindCompany(ctx context.Context, siren string) (*models.Company, error) {
	var c models.Company
	err := s.pool.QueryRow(ctx, `
		SELECT siren, denomination, categorie_juridique, code_pays_etranger,
			est_cotee, appartient_groupe, est_societe_mere, societe_mere_en_france,
			comptes_consolides, est_interet_public, updated_at
		FROM entreprises WHERE siren = $1
	`, siren).Scan(&c.Siren, &c.Name, &c.LegalCategoryCode, &c.ForeignCountryCode,
		&c.IsListed, &c.BelongsToGroup, &c.IsParentCompany, &c.ParentInDomesticTerritory,
		&c.ConsolidatedAccounts, &c.IsPublicInterestEntity, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find entreprise: %w", err)
	}
	return &c, nil
}

func (s *PostgresStore) CreateSnapshot(ctx context.Context, snap *models.Snapshot) error {
	facts, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal caracteristiques: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO caracteristiques_annuelles (siren, annee, facts, created_at)
		VALUES ($1, $2, $3, $4)
	`, snap.Siren, snap.Year, facts, snap.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return sentinel.ErrAlreadyUsed
			case pgForeignKeyViolation:
				return sentinel.ErrNotFound
			}
		}
		return fmt.Errorf("insert caracteristiques: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindSnapshot(ctx context.Context, siren string, year int) (*models.Snapshot, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT facts FROM caracteristiques_annuelles WHERE siren = $1 AND annee = $2
	`, siren, year)
	return scanSnapshot(row)
}

func (s *PostgresStore) LatestSnapshot(ctx context.Context, siren string) (*models.Snapshot, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT facts FROM caracteristiques_annuelles WHERE siren = $1
		ORDER BY annee DESC LIMIT 1
	`, siren)
	return scanSnapshot(row)
}

func scanSnapshot(row pgx.Row) (*models.Snapshot, error) {
	var facts []byte
	if err := row.Scan(&facts); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find caracteristiques: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(facts, &snap); err != nil {
		return nil, fmt.Errorf("decode caracteristiques: %w", err)
	}
	return &snap, nil
}
