// Package rules decides, per regulation, whether a company is subject and
// renders the matching status. Every function here is pure.
package rules

import (
	"errors"
	"time"

	entreprise "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/models"
)

// ErrInsufficientData is returned when the snapshot lacks a field the rule
// reads. It is not a failure: the caller asks the company for more data.
var ErrInsufficientData = errors.New("insufficient data to evaluate regulation")

// ViewerKind decides how much of a status is shown.
type ViewerKind int

const (
	// ViewerAnonymous is a simulation visitor.
	ViewerAnonymous ViewerKind = iota
	// ViewerUnauthorized is logged in but not attached to the company.
	ViewerUnauthorized
	ViewerMember
)

// BDESEState is the progress of the workforce database of the current year.
type BDESEState int

const (
	BDESENone BDESEState = iota
	BDESEInProgress
	BDESEComplete
)

// CSRDSummary is what the CSRD rule needs to know about the official report.
type CSRDSummary struct {
	ValidatedStep string
	NextStep      string
	Finished      bool
}

// Filings is the evidence of what the company already filed. Lookup errors
// are kept so the rules can render them.
type Filings struct {
	BDESE BDESEState
	// GHGLastYear is 0 when no GHG report was ever published.
	GHGLastYear int
	GHGErr      error

	GenderIndexPublished bool
	GenderIndexErr       error

	// CSRD is nil when no official report exists for the current year.
	CSRD *CSRDSummary
}

// Facts is everything a rule reads.
type Facts struct {
	Company  entreprise.Company
	Snapshot entreprise.Snapshot
	Filings  Filings
	Viewer   ViewerKind
	Today    time.Time
}

// Qualified is a precondition token: its facts can only be set by Qualify,
// so the criteria and status functions never run on incomplete data.
type Qualified struct {
	qualifiedFacts
}

type qualifiedFacts = Facts

// Rule is one regulation.
type Rule interface {
	Info() models.Info
	// Qualifies reports whether every field the rule reads is set.
	Qualifies(f Facts) bool
	// Criteria lists the satisfied thresholds as clauses, in display order.
	Criteria(q Qualified) []string
	IsSubject(q Qualified) bool
	// MemberStatus is the full status shown to a member of the company.
	MemberStatus(q Qualified) models.Status
}

// Qualify issues the token, or ErrInsufficientData.
func Qualify(r Rule, f Facts) (Qualified, error) {
	if !r.Qualifies(f) {
		return Qualified{}, ErrInsufficientData
	}
	return Qualified{qualifiedFacts: f}, nil
}

// Evaluate qualifies the facts and renders the status for the viewer.
func Evaluate(r Rule, f Facts) (models.Status, error) {
	q, err := Qualify(r, f)
	if err != nil {
		return models.Status{}, err
	}
	switch f.Viewer {
	case ViewerAnonymous:
		return anonymousStatus(r.IsSubject(q), f.Company.Siren), nil
	case ViewerUnauthorized:
		return unauthorizedStatus(r.IsSubject(q)), nil
	default:
		return r.MemberStatus(q), nil
	}
}

const notSubjectDetail = "Vous n'êtes pas soumis à cette réglementation."

func anonymousStatus(subject bool, siren string) models.Status {
	if !subject {
		return status(models.StateNotSubject, notSubjectDetail, nil)
	}
	login := &models.Action{URL: "/connexion?next=/reglementations/" + siren, Title: "Se connecter"}
	return status(models.StateSubject, "Vous êtes soumis à cette réglementation. Connectez-vous pour en savoir plus.", login)
}

func unauthorizedStatus(subject bool) models.Status {
	if subject {
		return status(models.StateSubject, "L'entreprise est soumise à cette réglementation.", nil)
	}
	return status(models.StateNotSubject, "L'entreprise n'est pas soumise à cette réglementation.", nil)
}

func status(state models.State, detail string, primary *models.Action, secondary ...models.Action) models.Status {
	if secondary == nil {
		secondary = []models.Action{}
	}
	return models.Status{State: state, Detail: detail, PrimaryAction: primary, SecondaryActions: secondary}
}
