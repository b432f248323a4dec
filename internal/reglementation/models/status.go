// Package models holds the values produced by a regulation evaluation.
package models

// State is the applicability verdict shown for one regulation.
type State string

const (
	StateNotSubject State = "non soumis"
	StateSubject    State = "soumis"
	StateUpToDate   State = "à jour"
	StateToUpdate   State = "à actualiser"
	StateInProgress State = "en cours"
)

// Action is a link offered next to a status.
type Action struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	External bool   `json:"external,omitempty"`
}

// Status is produced fresh by every evaluation and never persisted.
type Status struct {
	State            State    `json:"status"`
	Detail           string   `json:"status_detail"`
	PrimaryAction    *Action  `json:"primary_action,omitempty"`
	SecondaryActions []Action `json:"secondary_actions"`
	// NextDeadline is a display date (dd/mm/yyyy) or a publication year.
	NextDeadline string `json:"prochaine_echeance,omitempty"`
}

// IsSubject reports whether the verdict puts an obligation on the company.
func (s Status) IsSubject() bool {
	return s.State != StateNotSubject
}

type RuleID string

const (
	RuleCSRD             RuleID = "csrd"
	RuleBDESE            RuleID = "bdese"
	RuleIndexEgapro      RuleID = "index_egapro"
	RuleDispositifAlerte RuleID = "dispositif_alerte"
	RuleBGES             RuleID = "bges"
	RuleAuditEnergetique RuleID = "audit_energetique"
	RuleAntiCorruption   RuleID = "dispositif_anticorruption"
	RulePlanVigilance    RuleID = "plan_vigilance"
	RuleDPEF             RuleID = "dpef"
)

// Info is the static presentation metadata of a rule.
type Info struct {
	ID          RuleID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	MoreInfoURL string `json:"more_info_url,omitempty"`
	Tag         string `json:"tag,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// Result is one line of an evaluation. Status is nil when Insufficient.
type Result struct {
	Info         Info    `json:"info"`
	Status       *Status `json:"status,omitempty"`
	Insufficient bool    `json:"insufficient,omitempty"`
}
