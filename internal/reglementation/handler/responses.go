package handler

import "portail-rse/internal/reglementation/models"

// EvaluationResponse lists the verdicts of one company in display order.
type EvaluationResponse struct {
	Siren   string          `json:"siren"`
	Results []models.Result `json:"reglementations"`
}
