package models

import (
	"time"

	"github.com/google/uuid"

	entreprise "portail-rse/internal/entreprise/models"
)

// Simulation is an anonymous evaluation of form values. It is cached for a
// while so the result page can be reloaded, and never stored with the
// company records.
type Simulation struct {
	ID        uuid.UUID           `json:"id"`
	Company   entreprise.Company  `json:"entreprise"`
	Snapshot  entreprise.Snapshot `json:"caracteristiques"`
	Results   []Result            `json:"reglementations"`
	CreatedAt time.Time           `json:"created_at"`
}
