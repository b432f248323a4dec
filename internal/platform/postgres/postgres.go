// Package postgres opens the two database handles the service uses: a pgx pool
// for the entreprise store and a database/sql handle (lib/pq) for the CSRD store.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"portail-rse/internal/platform/config"
)

const pingTimeout = 5 * time.Second

// OpenPool opens and pings a pgx pool.
func OpenPool(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return pool, nil
}

// OpenDB opens and pings a database/sql handle backed by lib/pq.
func OpenDB(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return db, nil
}

// Schema is applied at startup. Every statement is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS entreprises (
	siren TEXT PRIMARY KEY,
	denomination TEXT NOT NULL DEFAULT '',
	categorie_juridique INTEGER,
	code_pays_etranger INTEGER,
	est_cotee BOOLEAN,
	appartient_groupe BOOLEAN,
	est_societe_mere BOOLEAN,
	societe_mere_en_france BOOLEAN,
	comptes_consolides BOOLEAN,
	est_interet_public BOOLEAN,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS caracteristiques_annuelles (
	siren TEXT NOT NULL REFERENCES entreprises(siren) ON DELETE CASCADE,
	annee INTEGER NOT NULL,
	facts JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (siren, annee)
);

CREATE TABLE IF NOT EXISTS rapports_csrd (
	id UUID PRIMARY KEY,
	siren TEXT NOT NULL,
	annee INTEGER NOT NULL,
	proprietaire UUID,
	description TEXT NOT NULL DEFAULT '',
	etape_validee TEXT,
	lien_publication TEXT NOT NULL DEFAULT '',
	statut TEXT NOT NULL,
	version BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS rapports_csrd_officiel_uniq
	ON rapports_csrd (siren, annee) WHERE proprietaire IS NULL;
CREATE UNIQUE INDEX IF NOT EXISTS rapports_csrd_personnel_uniq
	ON rapports_csrd (siren, annee, proprietaire) WHERE proprietaire IS NOT NULL;

CREATE TABLE IF NOT EXISTS enjeux (
	rapport_id UUID NOT NULL REFERENCES rapports_csrd(id) ON DELETE CASCADE,
	id BIGINT NOT NULL,
	parent_id BIGINT,
	esrs TEXT NOT NULL,
	nom TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	modifiable BOOLEAN NOT NULL,
	selection BOOLEAN NOT NULL,
	materiel BOOLEAN,
	PRIMARY KEY (rapport_id, id),
	UNIQUE (rapport_id, esrs, nom)
);
`

// Migrate applies Schema through the database/sql handle.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
