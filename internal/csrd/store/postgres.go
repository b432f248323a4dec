package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"portail-rse/internal/csrd/models"
	"portail-rse/pkg/platform/sentinel"
	txcontext "portail-rse/pkg/platform/tx"
)

const pgUniqueViolation = "23505"

// PostgresStore persists reports in rapports_csrd and their issues in enjeux.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return txcontext.Run(ctx, s.db, fn)
}

func translate(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return sentinel.ErrAlreadyUsed
	}
	return fmt.Errorf("%s: %w", op, err)
}

func ownerArg(owner *uuid.UUID) any {
	if owner == nil {
		return nil
	}
	return *owner
}

func stepArg(step models.StepID) sql.NullString {
	return sql.NullString{String: string(step), Valid: step != ""}
}

func (s *PostgresStore) Create(ctx context.Context, r *models.Report) error {
	return s.inTx(ctx, func(ctx context.Context) error {
		_, err := s.execer(ctx).ExecContext(ctx, `
			INSERT INTO rapports_csrd (
				id, siren, annee, proprietaire, description, etape_validee,
				lien_publication, statut, version, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $10)
		`, r.ID, r.Siren, r.Year, ownerArg(r.Owner), r.Description, stepArg(r.ValidatedStep),
			r.PublishedLink, string(r.Phase), r.CreatedAt, r.UpdatedAt)
		if err != nil {
			return translate(err, "insert rapport")
		}
		if err := s.writeIssues(ctx, r); err != nil {
			return err
		}
		r.Version = 1
		return nil
	})
}

const selectReport = `
	SELECT id, siren, annee, proprietaire, description, etape_validee,
		lien_publication, statut, version, created_at, updated_at
	FROM rapports_csrd`

func (s *PostgresStore) Find(ctx context.Context, siren string, year int, owner *uuid.UUID) (*models.Report, error) {
	row := s.execer(ctx).QueryRowContext(ctx, selectReport+`
		WHERE siren = $1 AND annee = $2 AND proprietaire IS NOT DISTINCT FROM $3::uuid
	`, siren, year, ownerArg(owner))
	return s.load(ctx, row)
}

func (s *PostgresStore) LatestOfficial(ctx context.Context, siren string) (*models.Report, error) {
	row := s.execer(ctx).QueryRowContext(ctx, selectReport+`
		WHERE siren = $1 AND proprietaire IS NULL
		ORDER BY annee DESC LIMIT 1
	`, siren)
	return s.load(ctx, row)
}

func (s *PostgresStore) load(ctx context.Context, row *sql.Row) (*models.Report, error) {
	var (
		r     models.Report
		owner uuid.NullUUID
		step  sql.NullString
		phase string
	)
	err := row.Scan(&r.ID, &r.Siren, &r.Year, &owner, &r.Description, &step,
		&r.PublishedLink, &phase, &r.Version, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find rapport: %w", err)
	}
	if owner.Valid {
		r.Owner = &owner.UUID
	}
	r.ValidatedStep = models.StepID(step.String)
	r.Phase = models.Phase(phase)

	issues, err := s.loadIssues(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	r.RestoreIssues(issues)
	return &r, nil
}

func (s *PostgresStore) loadIssues(ctx context.Context, reportID uuid.UUID) ([]models.Issue, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT id, parent_id, esrs, nom, description, modifiable, selection, materiel
		FROM enjeux WHERE rapport_id = $1 ORDER BY id
	`, reportID)
	if err != nil {
		return nil, fmt.Errorf("list enjeux: %w", err)
	}
	defer rows.Close()

	var issues []models.Issue
	for rows.Next() {
		var (
			issue    models.Issue
			parent   sql.NullInt64
			esrs     string
			material sql.NullBool
		)
		if err := rows.Scan(&issue.ID, &parent, &esrs, &issue.Name, &issue.Description,
			&issue.Editable, &issue.Selected, &material); err != nil {
			return nil, fmt.Errorf("scan enjeu: %w", err)
		}
		issue.ESRS = models.ESRS(esrs)
		if parent.Valid {
			issue.ParentID = &parent.Int64
		}
		if material.Valid {
			issue.Material = &material.Bool
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list enjeux: %w", err)
	}
	return issues, nil
}

// Save writes r when its version matches the stored one, under a row lock.
// A locked row only accepts the published link, phase and modification time,
// and keeps its issues.
func (s *PostgresStore) Save(ctx context.Context, r *models.Report) error {
	return s.inTx(ctx, func(ctx context.Context) error {
		var (
			phase   string
			version int64
		)
		err := s.execer(ctx).QueryRowContext(ctx, `
			SELECT statut, version FROM rapports_csrd WHERE id = $1 FOR UPDATE
		`, r.ID).Scan(&phase, &version)
		if errors.Is(err, sql.ErrNoRows) {
			return sentinel.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock rapport: %w", err)
		}
		if version != r.Version {
			return sentinel.ErrConflict
		}

		if models.Phase(phase) != models.PhaseDraft {
			_, err = s.execer(ctx).ExecContext(ctx, `
				UPDATE rapports_csrd
				SET lien_publication = $2, statut = $3, updated_at = $4, version = version + 1
				WHERE id = $1
			`, r.ID, r.PublishedLink, string(r.Phase), r.UpdatedAt)
			if err != nil {
				return translate(err, "update rapport publie")
			}
			r.Version++
			return nil
		}

		_, err = s.execer(ctx).ExecContext(ctx, `
			UPDATE rapports_csrd
			SET annee = $2, description = $3, etape_validee = $4, lien_publication = $5,
				statut = $6, updated_at = $7, version = version + 1
			WHERE id = $1
		`, r.ID, r.Year, r.Description, stepArg(r.ValidatedStep), r.PublishedLink,
			string(r.Phase), r.UpdatedAt)
		if err != nil {
			return translate(err, "update rapport")
		}
		if err := s.pruneIssues(ctx, r); err != nil {
			return err
		}
		if err := s.writeIssues(ctx, r); err != nil {
			return err
		}
		r.Version++
		return nil
	})
}

// pruneIssues deletes the stored issues r no longer has.
func (s *PostgresStore) pruneIssues(ctx context.Context, r *models.Report) error {
	issues := r.Issues()
	ids := make([]int64, len(issues))
	for i, issue := range issues {
		ids[i] = issue.ID
	}
	_, err := s.execer(ctx).ExecContext(ctx, `
		DELETE FROM enjeux WHERE rapport_id = $1 AND NOT (id = ANY($2::bigint[]))
	`, r.ID, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("prune enjeux: %w", err)
	}
	return nil
}

// writeIssues upserts every issue of r in one statement.
func (s *PostgresStore) writeIssues(ctx context.Context, r *models.Report) error {
	issues := r.Issues()
	if len(issues) == 0 {
		return nil
	}
	var (
		ids          = make([]int64, len(issues))
		parents      = make([]sql.NullInt64, len(issues))
		codes        = make([]string, len(issues))
		names        = make([]string, len(issues))
		descriptions = make([]string, len(issues))
		editable     = make([]bool, len(issues))
		selected     = make([]bool, len(issues))
		material     = make([]sql.NullBool, len(issues))
	)
	for i, issue := range issues {
		ids[i] = issue.ID
		if issue.ParentID != nil {
			parents[i] = sql.NullInt64{Int64: *issue.ParentID, Valid: true}
		}
		codes[i] = string(issue.ESRS)
		names[i] = issue.Name
		descriptions[i] = issue.Description
		editable[i] = issue.Editable
		selected[i] = issue.Selected
		if issue.Material != nil {
			material[i] = sql.NullBool{Bool: *issue.Material, Valid: true}
		}
	}
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO enjeux (rapport_id, id, parent_id, esrs, nom, description, modifiable, selection, materiel)
		SELECT $1, * FROM unnest(
			$2::bigint[], $3::bigint[], $4::text[], $5::text[], $6::text[],
			$7::boolean[], $8::boolean[], $9::boolean[]
		)
		ON CONFLICT (rapport_id, id) DO UPDATE SET
			selection = EXCLUDED.selection,
			materiel = EXCLUDED.materiel
	`, r.ID, pq.Array(ids), pq.GenericArray{A: parents}, pq.Array(codes), pq.Array(names),
		pq.Array(descriptions), pq.Array(editable), pq.Array(selected), pq.GenericArray{A: material})
	if err != nil {
		return translate(err, "insert enjeux")
	}
	return nil
}
