package handler

import (
	"time"

	"portail-rse/internal/csrd/models"
)

// StandardCount summarizes one thematic standard.
type StandardCount struct {
	ESRS     models.ESRS  `json:"esrs"`
	Title    string       `json:"titre"`
	Theme    models.Theme `json:"theme"`
	Total    int          `json:"total"`
	Selected int          `json:"selectionnes"`
}

type ReportResponse struct {
	ID            string                `json:"id"`
	Siren         string                `json:"siren"`
	Year          int                   `json:"annee"`
	Personal      bool                  `json:"personnel"`
	Description   string                `json:"description"`
	ValidatedStep models.StepID         `json:"etape_validee,omitempty"`
	NextStep      models.StepID         `json:"etape_suivante,omitempty"`
	PublishedLink string                `json:"lien_rapport"`
	Phase         models.Phase          `json:"statut"`
	Finished      bool                  `json:"termine"`
	Version       int64                 `json:"version"`
	Progress      models.Progress       `json:"progression"`
	Steps         []models.StepProgress `json:"etapes"`
	Standards     []StandardCount       `json:"esrs"`
	SelectedCount int                   `json:"nb_enjeux_selectionnes"`
	OtherCount    int                   `json:"nb_enjeux_non_selectionnes"`
	Issues        []models.Issue        `json:"enjeux"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func toReportResponse(r *models.Report) *ReportResponse {
	issues := r.Issues()
	all := issues.CountByCode()
	selected := issues.Selected().CountByCode()
	standards := make([]StandardCount, 0, len(models.ThematicStandards))
	for _, code := range models.ThematicStandards {
		standards = append(standards, StandardCount{
			ESRS:     code,
			Title:    code.Title(),
			Theme:    code.Theme(),
			Total:    all[code],
			Selected: selected[code],
		})
	}
	return &ReportResponse{
		ID:            r.ID.String(),
		Siren:         r.Siren,
		Year:          r.Year,
		Personal:      r.IsPersonal(),
		Description:   r.Description,
		ValidatedStep: r.ValidatedStep,
		NextStep:      r.NextStep(),
		PublishedLink: r.PublishedLink,
		Phase:         r.Phase,
		Finished:      r.IsFinished(),
		Version:       r.Version,
		Progress:      r.Progress(),
		Steps:         r.StepsProgress(),
		Standards:     standards,
		SelectedCount: len(issues.Selected()),
		OtherCount:    len(issues.NonSelected()),
		Issues:        issues,
		UpdatedAt:     r.UpdatedAt,
	}
}
