package models

import (
	"math"
	"slices"
)

// StepID identifies a step of the report workflow.
type StepID string

const (
	StepIntroduction        StepID = "introduction"
	StepDoubleMateriality   StepID = "analyse-double-mat"
	StepIssueSelection      StepID = "selection-enjeux"
	StepMaterialityAnalysis StepID = "analyse-materialite"
	StepDataCollection      StepID = "collection-donnees"
	StepDatapointSelection  StepID = "selection-informations"
	StepGapAnalysis         StepID = "analyse-ecart"
	StepReportWriting       StepID = "redaction-rapport-durabilite"
)

// Step is a top-level step. Compound steps have exactly two sub-steps and
// are never validated themselves.
type Step struct {
	ID       StepID `json:"id"`
	Name     string `json:"nom"`
	SubSteps []Step `json:"sous_etapes,omitempty"`
}

// Steps is the workflow in order.
var Steps = []Step{
	{ID: StepIntroduction, Name: "Introduction"},
	{ID: StepDoubleMateriality, Name: "Analyser la double matérialité", SubSteps: []Step{
		{ID: StepIssueSelection, Name: "Identifier la liste de ses enjeux ESG"},
		{ID: StepMaterialityAnalysis, Name: "Sélectionner les enjeux ESG matériels"},
	}},
	{ID: StepDataCollection, Name: "Collecter les données de son entreprise", SubSteps: []Step{
		{ID: StepDatapointSelection, Name: "Analyser la matérialité des informations élémentaires"},
		{ID: StepGapAnalysis, Name: "Réaliser une analyse d’écart"},
	}},
	{ID: StepReportWriting, Name: "Rédiger son rapport de durabilité"},
}

// validatable flattens Steps, compound steps replaced by their sub-steps.
var validatable = []StepID{
	StepIntroduction,
	StepIssueSelection,
	StepMaterialityAnalysis,
	StepDatapointSelection,
	StepGapAnalysis,
	StepReportWriting,
}

// ValidatableSteps returns the ids validate accepts, in order.
func ValidatableSteps() []StepID {
	return slices.Clone(validatable)
}

// Ordinal is the position of id among the validatable steps.
func Ordinal(id StepID) (int, bool) {
	i := slices.Index(validatable, id)
	return i, i >= 0
}

// NextStep returns the validatable step after id.
func NextStep(id StepID) (StepID, bool) {
	i, ok := Ordinal(id)
	if !ok || i+1 >= len(validatable) {
		return "", false
	}
	return validatable[i+1], true
}

// PreviousStep returns the validatable step before id.
func PreviousStep(id StepID) (StepID, bool) {
	i, ok := Ordinal(id)
	if !ok || i == 0 {
		return "", false
	}
	return validatable[i-1], true
}

// IsDone reports whether ref is at or before validated.
func IsDone(ref, validated StepID) bool {
	r, ok := Ordinal(ref)
	if !ok {
		return false
	}
	v, ok := Ordinal(validated)
	return ok && r <= v
}

// Progress excludes the introduction from Max.
type Progress struct {
	Max     int `json:"max"`
	Current int `json:"actuel"`
	Percent int `json:"pourcent"`
}

// ProgressOf computes the progress for a validated step, "" meaning none.
func ProgressOf(validated StepID) Progress {
	total := len(validatable) - 1
	current, ok := Ordinal(validated)
	if !ok {
		current = 0
	}
	return Progress{
		Max:     total,
		Current: current,
		Percent: int(math.Round(float64(current) / float64(total) * 100)),
	}
}

// StepProgress is the state of one top-level step.
type StepProgress struct {
	Step Step   `json:"etape"`
	Done bool   `json:"validee"`
	Todo StepID `json:"etape_a_faire"`
}

// stepsProgress lists every top-level step after the introduction. A
// compound step is done once its second sub-step is.
func stepsProgress(validated StepID, published bool) []StepProgress {
	out := make([]StepProgress, 0, len(Steps)-1)
	for _, step := range Steps[1:] {
		ref := step.ID
		if len(step.SubSteps) > 0 {
			ref = step.SubSteps[1].ID
		}
		done := published || IsDone(ref, validated)

		todo := step.ID
		if len(step.SubSteps) > 0 {
			todo = step.SubSteps[0].ID
			if done {
				todo = step.SubSteps[1].ID
			}
		}
		out = append(out, StepProgress{Step: step, Done: done, Todo: todo})
	}
	return out
}
