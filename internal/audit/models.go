package audit

import "time"

// Action names a mutation worth keeping a trail of.
type Action string

const (
	ActionCompanyUpserted   Action = "entreprise_mise_a_jour"
	ActionSnapshotCreated   Action = "caracteristiques_creees"
	ActionReportCreated     Action = "rapport_cree"
	ActionReportUpdated     Action = "rapport_modifie"
	ActionReportPublished   Action = "rapport_publie"
	ActionStepValidated     Action = "etape_validee"
	ActionSelectionReplaced Action = "selection_modifiee"
	ActionIssueDeselected   Action = "enjeu_deselectionne"
	ActionIssueCreated      Action = "enjeu_cree"
	ActionIssueDeleted      Action = "enjeu_supprime"
	ActionMaterialitySet    Action = "materialite_modifiee"
	ActionLockedWrite       Action = "ecriture_refusee_verrou"
)

// Event is emitted by the services after a mutation succeeds, or after a
// write was refused on a locked report.
type Event struct {
	Timestamp time.Time         `json:"timestamp"`
	Action    Action            `json:"action"`
	Siren     string            `json:"siren"`
	Year      int               `json:"annee,omitempty"`
	ReportID  string            `json:"rapport_id,omitempty"`
	UserID    string            `json:"user_id,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}
