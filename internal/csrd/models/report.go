package models

import (
	"cmp"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "portail-rse/pkg/domain-errors"
)

// MinYear is the first reporting year.
const MinYear = 2024

// Phase replaces the original locked flag and publication link pair.
type Phase string

const (
	PhaseDraft     Phase = "brouillon"
	PhaseLocked    Phase = "bloque"
	PhasePublished Phase = "publie"
)

// Report is the sustainability report workflow aggregate (rapport CSRD). It
// owns its issues; they are created, changed and deleted through it.
//
// Invariants:
//   - one official report (Owner nil) per company and year
//   - one personal report per company, year and owner
//   - ValidatedStep never moves backwards
//   - once locked, only PublishedLink (and UpdatedAt) change
type Report struct {
	ID            uuid.UUID  `json:"id"`
	Siren         string     `json:"siren"`
	Year          int        `json:"annee"`
	Owner         *uuid.UUID `json:"proprietaire,omitempty"`
	Description   string     `json:"description"`
	ValidatedStep StepID     `json:"etape_validee,omitempty"`
	PublishedLink string     `json:"lien_rapport"`
	Phase         Phase      `json:"statut"`
	// Version increments on every save; a stale save is a conflict.
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	issues Issues
	nextID int64
}

var (
	// ErrWorkflowLocked rejects every write but the published link once the
	// report is locked.
	ErrWorkflowLocked = dErrors.New(dErrors.CodeLocked, "le rapport est verrouillé et ne peut plus être modifié")
	// ErrIssueNotEditable rejects the deletion of a standard issue.
	ErrIssueNotEditable = dErrors.New(dErrors.CodeForbidden, "un enjeu réglementaire ne peut pas être supprimé")
)

// NewReport builds a draft report seeded with the standard issues.
func NewReport(siren string, year int, owner *uuid.UUID, now time.Time) (*Report, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	r := &Report{
		ID:        uuid.New(),
		Siren:     siren,
		Year:      year,
		Owner:     owner,
		Phase:     PhaseDraft,
		CreatedAt: now,
		UpdatedAt: now,
		nextID:    1,
	}
	r.Seed()
	return r, nil
}

func validateYear(year int) error {
	if year < MinYear {
		return dErrors.New(dErrors.CodeValidation, "l'année du rapport doit être 2024 ou postérieure")
	}
	return nil
}

// IsPersonal is true for reports owned by one user.
func (r *Report) IsPersonal() bool {
	return r.Owner != nil
}

// IsLocked is true once the report left the draft phase.
func (r *Report) IsLocked() bool {
	return r.Phase != PhaseDraft
}

// IsFinished is true when the report is published and locked.
func (r *Report) IsFinished() bool {
	return r.Phase == PhasePublished
}

// Clone deep-copies the report, issues included.
func (r *Report) Clone() *Report {
	c := *r
	if r.Owner != nil {
		owner := *r.Owner
		c.Owner = &owner
	}
	c.issues = make(Issues, len(r.issues))
	for i, is := range r.issues {
		if is.ParentID != nil {
			parent := *is.ParentID
			is.ParentID = &parent
		}
		if is.Material != nil {
			material := *is.Material
			is.Material = &material
		}
		c.issues[i] = is
	}
	return &c
}

// Issues returns a copy of the issues in creation order.
func (r *Report) Issues() Issues {
	return slices.Clone(r.issues)
}

// Issue returns one issue by id.
func (r *Report) Issue(id int64) (Issue, bool) {
	i, ok := r.find(id)
	if !ok {
		return Issue{}, false
	}
	return r.issues[i], true
}

// RestoreIssues installs issues loaded from storage.
func (r *Report) RestoreIssues(issues []Issue) {
	r.issues = slices.Clone(issues)
	slices.SortFunc(r.issues, func(a, b Issue) int { return cmp.Compare(a.ID, b.ID) })
	r.nextID = 1
	if n := len(r.issues); n > 0 {
		r.nextID = r.issues[n-1].ID + 1
	}
}

func (r *Report) find(id int64) (int, bool) {
	i := slices.IndexFunc(r.issues, func(is Issue) bool { return is.ID == id })
	return i, i >= 0
}

func (r *Report) add(issue Issue) Issue {
	issue.ID = r.nextID
	r.nextID++
	r.issues = append(r.issues, issue)
	return issue
}

func (r *Report) indexOfName(code ESRS, name string) int {
	return slices.IndexFunc(r.issues, func(i Issue) bool { return i.ESRS == code && i.Name == name })
}

// Seed adds the standard issues, parents before children. It is a no-op
// once every standard issue exists and never duplicates one.
func (r *Report) Seed() int {
	if len(r.issues.filter(func(i Issue) bool { return !i.Editable })) >= CatalogSize() {
		return 0
	}
	added := 0
	var walk func(entries []StandardIssue, parent *int64)
	walk = func(entries []StandardIssue, parent *int64) {
		for _, entry := range entries {
			var id int64
			if i := r.indexOfName(entry.ESRS, entry.Name); i >= 0 {
				id = r.issues[i].ID
			} else {
				id = r.add(Issue{
					ParentID:    parent,
					ESRS:        entry.ESRS,
					Name:        entry.Name,
					Description: entry.Description,
					Selected:    true,
				}).ID
				added++
			}
			if len(entry.Children) > 0 {
				walk(entry.Children, &id)
			}
		}
	}
	walk(Catalog(), nil)
	return added
}

func (r *Report) guard() error {
	if r.IsLocked() {
		return ErrWorkflowLocked
	}
	return nil
}

// Validate moves ValidatedStep forward. Validating an earlier step is a
// no-op and reports false.
func (r *Report) Validate(step StepID, now time.Time) (bool, error) {
	if err := r.guard(); err != nil {
		return false, err
	}
	target, ok := Ordinal(step)
	if !ok {
		return false, dErrors.New(dErrors.CodeValidation, "étape inconnue : "+string(step))
	}
	if current, validated := Ordinal(r.ValidatedStep); validated && target <= current {
		return false, nil
	}
	r.ValidatedStep = step
	r.UpdatedAt = now
	return true, nil
}

// NextStep is the step to resume from, "" once the last step is validated.
func (r *Report) NextStep() StepID {
	if r.ValidatedStep == "" {
		return StepIntroduction
	}
	next, _ := NextStep(r.ValidatedStep)
	return next
}

// Progress reports full progress once published, whatever the validated step.
func (r *Report) Progress() Progress {
	if r.IsFinished() {
		return ProgressOf(StepReportWriting)
	}
	return ProgressOf(r.ValidatedStep)
}

func (r *Report) StepsProgress() []StepProgress {
	return stepsProgress(r.ValidatedStep, r.IsFinished())
}

func checkCode(code ESRS) error {
	if !code.IsThematic() {
		return dErrors.New(dErrors.CodeValidation, "ESRS inconnu : "+string(code))
	}
	return nil
}

// ToggleSelection replaces the selection of one standard: issues in ids are
// selected, every other issue of the standard is deselected. Ids from other
// standards are ignored.
func (r *Report) ToggleSelection(ids []int64, code ESRS, now time.Time) error {
	if err := r.guard(); err != nil {
		return err
	}
	if err := checkCode(code); err != nil {
		return err
	}
	for i := range r.issues {
		if r.issues[i].ESRS == code {
			r.issues[i].Selected = slices.Contains(ids, r.issues[i].ID)
		}
	}
	r.UpdatedAt = now
	return nil
}

// Deselect removes one issue from the selection whatever its standard.
func (r *Report) Deselect(id int64, now time.Time) error {
	if err := r.guard(); err != nil {
		return err
	}
	i, ok := r.find(id)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "enjeu inconnu")
	}
	r.issues[i].Selected = false
	r.UpdatedAt = now
	return nil
}

// CreateCustom adds a user-defined leaf issue, editable and selected.
func (r *Report) CreateCustom(code ESRS, name, description string, now time.Time) (Issue, error) {
	if err := r.guard(); err != nil {
		return Issue{}, err
	}
	if err := checkCode(code); err != nil {
		return Issue{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Issue{}, dErrors.New(dErrors.CodeValidation, "le nom de l'enjeu est obligatoire")
	}
	if r.indexOfName(code, name) >= 0 {
		return Issue{}, dErrors.New(dErrors.CodeConflict, "un enjeu de ce nom existe déjà pour cet ESRS")
	}
	r.UpdatedAt = now
	return r.add(Issue{
		ESRS:        code,
		Name:        name,
		Description: strings.TrimSpace(description),
		Editable:    true,
		Selected:    true,
	}), nil
}

// Delete removes a custom issue and its descendants. Standard issues are
// never deleted.
func (r *Report) Delete(id int64, now time.Time) error {
	if err := r.guard(); err != nil {
		return err
	}
	i, ok := r.find(id)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "enjeu inconnu")
	}
	if !r.issues[i].Editable {
		return ErrIssueNotEditable
	}
	removed := map[int64]bool{id: true}
	for changed := true; changed; {
		changed = false
		for _, is := range r.issues {
			if is.ParentID != nil && removed[*is.ParentID] && !removed[is.ID] {
				removed[is.ID] = true
				changed = true
			}
		}
	}
	r.issues = slices.DeleteFunc(r.issues, func(is Issue) bool { return removed[is.ID] })
	r.UpdatedAt = now
	return nil
}

// SetMaterial records the materiality answer of a selected issue. It is
// only available once the issue selection step is validated.
func (r *Report) SetMaterial(id int64, material *bool, now time.Time) error {
	if err := r.guard(); err != nil {
		return err
	}
	if !IsDone(StepIssueSelection, r.ValidatedStep) {
		return dErrors.New(dErrors.CodePrecondition, "la sélection des enjeux doit être validée avant l'analyse de matérialité")
	}
	i, ok := r.find(id)
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "enjeu inconnu")
	}
	if !r.issues[i].Selected {
		return dErrors.New(dErrors.CodeValidation, "seul un enjeu sélectionné peut être analysé")
	}
	r.issues[i].Material = material
	r.UpdatedAt = now
	return nil
}

// Patch is a partial update. Nil fields are left alone.
type Patch struct {
	Year          *int
	Description   *string
	PublishedLink *string
	Locked        *bool
}

func (p Patch) touchesLockedFields() bool {
	return p.Year != nil || p.Description != nil || (p.Locked != nil && !*p.Locked)
}

// Update applies a patch. A locked report only accepts a new published
// link; any other field rejects the whole patch.
func (r *Report) Update(p Patch, now time.Time) error {
	if p.PublishedLink != nil {
		if err := validateLink(*p.PublishedLink); err != nil {
			return err
		}
	}
	if r.IsLocked() {
		if p.touchesLockedFields() {
			return ErrWorkflowLocked
		}
		if p.PublishedLink != nil {
			r.setLink(*p.PublishedLink, now)
		}
		return nil
	}

	if p.Year != nil {
		if err := validateYear(*p.Year); err != nil {
			return err
		}
		r.Year = *p.Year
	}
	if p.Description != nil {
		r.Description = strings.TrimSpace(*p.Description)
	}
	if p.PublishedLink != nil {
		r.PublishedLink = *p.PublishedLink
	}
	if p.Locked != nil && *p.Locked {
		r.lock()
	}
	r.UpdatedAt = now
	return nil
}

// Publish sets the link and locks the report.
func (r *Report) Publish(link string, now time.Time) error {
	if strings.TrimSpace(link) == "" {
		return dErrors.New(dErrors.CodeValidation, "le lien du rapport publié est obligatoire")
	}
	if err := validateLink(link); err != nil {
		return err
	}
	r.setLink(link, now)
	r.lock()
	return nil
}

func (r *Report) setLink(link string, now time.Time) {
	r.PublishedLink = link
	if r.IsLocked() {
		r.lock()
	}
	r.UpdatedAt = now
}

func (r *Report) lock() {
	if r.PublishedLink != "" {
		r.Phase = PhasePublished
		return
	}
	r.Phase = PhaseLocked
}

func validateLink(link string) error {
	if link == "" {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return dErrors.New(dErrors.CodeValidation, "le lien du rapport doit être une URL http(s)")
	}
	return nil
}
