package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dErrors "portail-rse/pkg/domain-errors"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestReport(t *testing.T) *Report {
	t.Helper()
	r, err := NewReport("123456789", 2024, nil, testNow)
	require.NoError(t, err)
	return r
}

func ptr[T any](v T) *T { return &v }

type ReportSuite struct {
	suite.Suite
	report *Report
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportSuite))
}

func (s *ReportSuite) SetupTest() {
	s.report = newTestReport(s.T())
}

func (s *ReportSuite) TestNewReportSeedsCatalog() {
	issues := s.report.Issues()
	s.Len(issues, CatalogSize())
	s.Equal(PhaseDraft, s.report.Phase)
	s.False(s.report.IsPersonal())
	for _, i := range issues {
		s.False(i.Editable, i.Name)
		s.True(i.Selected, i.Name)
		s.Nil(i.Material, i.Name)
	}
}

func (s *ReportSuite) TestSeedIsIdempotent() {
	s.Equal(0, s.report.Seed())
	s.Len(s.report.Issues(), CatalogSize())
}

func (s *ReportSuite) TestSeedRestoresMissingIssuesOnly() {
	issues := s.report.Issues()
	s.report.RestoreIssues(issues[:5])

	added := s.report.Seed()

	s.Equal(CatalogSize()-5, added)
	s.Len(s.report.Issues(), CatalogSize())
	s.Len(s.report.Issues().ByCode(ESRSE1), 3)
}

func (s *ReportSuite) TestSeedLinksChildrenToParent() {
	parent := s.report.Issues().filter(func(i Issue) bool { return i.Name == "Ressources marines" })
	s.Require().Len(parent, 1)
	children := s.report.Issues().filter(func(i Issue) bool {
		return i.ParentID != nil && *i.ParentID == parent[0].ID
	})
	s.Len(children, 3)
	for _, c := range children {
		s.Greater(c.ID, parent[0].ID)
	}
}

func (s *ReportSuite) TestToggleSelectionReplacesPerCode() {
	e1 := s.report.Issues().ByCode(ESRSE1)
	s.Require().Len(e1, 3)
	e2First := s.report.Issues().ByCode(ESRSE2)[0]

	err := s.report.ToggleSelection([]int64{e1[1].ID, e2First.ID + 1000}, ESRSE1, testNow)
	s.Require().NoError(err)

	selected := s.report.Issues().ByCode(ESRSE1).Selected()
	s.Require().Len(selected, 1)
	s.Equal(e1[1].ID, selected[0].ID)
	s.Len(s.report.Issues().ByCode(ESRSE2).NonSelected(), 0, "other codes untouched")

	s.Require().NoError(s.report.ToggleSelection([]int64{e1[0].ID, e1[2].ID}, ESRSE1, testNow))
	selected = s.report.Issues().ByCode(ESRSE1).Selected()
	s.Len(selected, 2)
	s.Equal([]int64{e1[0].ID, e1[2].ID}, []int64{selected[0].ID, selected[1].ID})
}

func (s *ReportSuite) TestToggleSelectionRejectsNonThematicCode() {
	err := s.report.ToggleSelection(nil, ESRS2, testNow)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ReportSuite) TestDeselect() {
	first := s.report.Issues()[0]
	s.Require().NoError(s.report.Deselect(first.ID, testNow))
	got, ok := s.report.Issue(first.ID)
	s.Require().True(ok)
	s.False(got.Selected)

	s.True(dErrors.HasCode(s.report.Deselect(9999, testNow), dErrors.CodeNotFound))
}

func (s *ReportSuite) TestCreateCustom() {
	issue, err := s.report.CreateCustom(ESRSG1, "  Cybersécurité ", "Protection des données", testNow)
	s.Require().NoError(err)
	s.True(issue.Editable)
	s.True(issue.Selected)
	s.Nil(issue.ParentID)
	s.Equal("Cybersécurité", issue.Name)
	s.Equal(int64(CatalogSize()+1), issue.ID)

	_, err = s.report.CreateCustom(ESRSG1, "Cybersécurité", "", testNow)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	_, err = s.report.CreateCustom(ESRSS1, "Cybersécurité", "", testNow)
	s.NoError(err, "names are unique per code only")

	_, err = s.report.CreateCustom(ESRSG1, " ", "", testNow)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ReportSuite) TestByCodeShowsStandardIssuesFirst() {
	custom, err := s.report.CreateCustom(ESRSE1, "Aaa", "", testNow)
	s.Require().NoError(err)

	e1 := s.report.Issues().ByCode(ESRSE1)
	s.Require().Len(e1, 4)
	s.Equal(custom.ID, e1[3].ID)
	for _, i := range e1[:3] {
		s.False(i.Editable)
	}
	s.Len(s.report.Issues().Editable(), 1)
}

func (s *ReportSuite) TestDelete() {
	custom, err := s.report.CreateCustom(ESRSE4, "Sols artificialisés", "", testNow)
	s.Require().NoError(err)

	s.Require().NoError(s.report.Delete(custom.ID, testNow))
	_, ok := s.report.Issue(custom.ID)
	s.False(ok)
	s.Len(s.report.Issues(), CatalogSize())

	standard := s.report.Issues()[0]
	err = s.report.Delete(standard.ID, testNow)
	s.ErrorIs(err, ErrIssueNotEditable)
	s.Len(s.report.Issues(), CatalogSize())
}

func (s *ReportSuite) TestDeleteCascadesToDescendants() {
	parent := Issue{ID: 1, ESRS: ESRSE1, Name: "Parent", Editable: true, Selected: true}
	child := Issue{ID: 2, ParentID: ptr(int64(1)), ESRS: ESRSE1, Name: "Enfant", Editable: true}
	grandChild := Issue{ID: 3, ParentID: ptr(int64(2)), ESRS: ESRSE1, Name: "Petit-enfant", Editable: true}
	other := Issue{ID: 4, ESRS: ESRSE1, Name: "Autre", Editable: true}
	s.report.RestoreIssues([]Issue{other, grandChild, child, parent})

	s.Require().NoError(s.report.Delete(1, testNow))

	issues := s.report.Issues()
	s.Require().Len(issues, 1)
	s.Equal(int64(4), issues[0].ID)

	created, err := s.report.CreateCustom(ESRSE2, "Nouveau", "", testNow)
	s.Require().NoError(err)
	s.Equal(int64(5), created.ID)
}

func (s *ReportSuite) TestSetMaterialRequiresSelectionStep() {
	first := s.report.Issues()[0]
	err := s.report.SetMaterial(first.ID, ptr(true), testNow)
	s.True(dErrors.HasCode(err, dErrors.CodePrecondition))

	_, err = s.report.Validate(StepIssueSelection, testNow)
	s.Require().NoError(err)
	s.Require().NoError(s.report.SetMaterial(first.ID, ptr(true), testNow))

	second := s.report.Issues()[1]
	s.Require().NoError(s.report.SetMaterial(second.ID, ptr(false), testNow))

	issues := s.report.Issues()
	s.Len(issues.Material(), 1)
	s.Len(issues.NonMaterial(), 1)
	s.Len(issues.Analyzed(), 2)
	s.Len(issues.NotAnalyzed(), CatalogSize()-2)

	s.Require().NoError(s.report.Deselect(first.ID, testNow))
	s.Len(s.report.Issues().Material(), 0, "material only counts selected issues")
	err = s.report.SetMaterial(first.ID, nil, testNow)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ReportSuite) TestValidateIsMonotonic() {
	moved, err := s.report.Validate(StepMaterialityAnalysis, testNow)
	s.Require().NoError(err)
	s.True(moved)

	moved, err = s.report.Validate(StepIntroduction, testNow)
	s.Require().NoError(err)
	s.False(moved)
	s.Equal(StepMaterialityAnalysis, s.report.ValidatedStep)

	moved, err = s.report.Validate(StepMaterialityAnalysis, testNow)
	s.Require().NoError(err)
	s.False(moved)

	_, err = s.report.Validate(StepDoubleMateriality, testNow)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation), "compound steps are not validatable")
}

func (s *ReportSuite) TestNextStep() {
	s.Equal(StepIntroduction, s.report.NextStep())
	_, err := s.report.Validate(StepIssueSelection, testNow)
	s.Require().NoError(err)
	s.Equal(StepMaterialityAnalysis, s.report.NextStep())
	_, err = s.report.Validate(StepReportWriting, testNow)
	s.Require().NoError(err)
	s.Equal(StepID(""), s.report.NextStep())
}

func (s *ReportSuite) TestProgress() {
	s.Equal(Progress{Max: 5, Current: 0, Percent: 0}, s.report.Progress())

	_, err := s.report.Validate(StepGapAnalysis, testNow)
	s.Require().NoError(err)
	s.Equal(Progress{Max: 5, Current: 4, Percent: 80}, s.report.Progress())

	s.Require().NoError(s.report.Publish("https://example.com/rapport.pdf", testNow))
	s.Equal(Progress{Max: 5, Current: 5, Percent: 100}, s.report.Progress())
}

func (s *ReportSuite) TestStepsProgress() {
	_, err := s.report.Validate(StepIssueSelection, testNow)
	s.Require().NoError(err)

	steps := s.report.StepsProgress()
	s.Require().Len(steps, 3)
	s.Equal(StepDoubleMateriality, steps[0].Step.ID)
	s.False(steps[0].Done)
	s.Equal(StepIssueSelection, steps[0].Todo)

	_, err = s.report.Validate(StepMaterialityAnalysis, testNow)
	s.Require().NoError(err)
	steps = s.report.StepsProgress()
	s.True(steps[0].Done)
	s.Equal(StepMaterialityAnalysis, steps[0].Todo)
	s.False(steps[1].Done)
	s.Equal(StepDatapointSelection, steps[1].Todo)
	s.Equal(StepReportWriting, steps[2].Todo)
}

func (s *ReportSuite) TestLockGuard() {
	locked := true
	s.Require().NoError(s.report.Update(Patch{Locked: &locked}, testNow))
	s.Equal(PhaseLocked, s.report.Phase)
	s.False(s.report.IsFinished())

	later := testNow.Add(time.Hour)
	err := s.report.Update(Patch{
		Description:   ptr("nouvelle description"),
		PublishedLink: ptr("https://example.com/rapport.pdf"),
	}, later)
	s.ErrorIs(err, ErrWorkflowLocked)
	s.Empty(s.report.PublishedLink, "nothing applied once the guard trips")
	s.Empty(s.report.Description)

	s.Require().NoError(s.report.Update(Patch{PublishedLink: ptr("https://example.com/rapport.pdf")}, later))
	s.Equal(PhasePublished, s.report.Phase)
	s.True(s.report.IsFinished())
	s.Equal(later, s.report.UpdatedAt)

	s.Require().NoError(s.report.Update(Patch{Locked: &locked}, later), "locking again is accepted")
	s.True(dErrors.HasCode(s.report.Update(Patch{Locked: ptr(false)}, later), dErrors.CodeLocked))
	s.True(dErrors.HasCode(s.report.Update(Patch{Year: ptr(2025)}, later), dErrors.CodeLocked))

	_, err = s.report.Validate(StepReportWriting, later)
	s.True(dErrors.HasCode(err, dErrors.CodeLocked))
	_, err = s.report.CreateCustom(ESRSE1, "Nouveau", "", later)
	s.True(dErrors.HasCode(err, dErrors.CodeLocked))
	s.True(dErrors.HasCode(s.report.ToggleSelection(nil, ESRSE1, later), dErrors.CodeLocked))

	s.Require().NoError(s.report.Update(Patch{PublishedLink: ptr("")}, later))
	s.Equal(PhaseLocked, s.report.Phase, "clearing the link keeps the lock")
}

func (s *ReportSuite) TestUpdateDraft() {
	err := s.report.Update(Patch{Year: ptr(2025), Description: ptr(" Rapport 2025 ")}, testNow)
	s.Require().NoError(err)
	s.Equal(2025, s.report.Year)
	s.Equal("Rapport 2025", s.report.Description)
	s.Equal(PhaseDraft, s.report.Phase)

	s.True(dErrors.HasCode(s.report.Update(Patch{Year: ptr(2023)}, testNow), dErrors.CodeValidation))
	s.True(dErrors.HasCode(s.report.Update(Patch{PublishedLink: ptr("ftp://example.com")}, testNow), dErrors.CodeValidation))
}

func (s *ReportSuite) TestPublish() {
	s.True(dErrors.HasCode(s.report.Publish("", testNow), dErrors.CodeValidation))
	s.True(dErrors.HasCode(s.report.Publish("pas une url", testNow), dErrors.CodeValidation))
	s.Equal(PhaseDraft, s.report.Phase)

	s.Require().NoError(s.report.Publish("https://example.com/rapport.pdf", testNow))
	s.True(s.report.IsLocked())
	s.True(s.report.IsFinished())
}

func TestNewReport(t *testing.T) {
	_, err := NewReport("123456789", 2023, nil, testNow)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	owner := uuid.New()
	r, err := NewReport("123456789", 2024, &owner, testNow)
	require.NoError(t, err)
	assert.True(t, r.IsPersonal())
	assert.Equal(t, testNow, r.CreatedAt)
}

func TestIssuesThemes(t *testing.T) {
	issues := newTestReport(t).Issues()
	total := len(issues.Environment()) + len(issues.Social()) + len(issues.Governance())
	assert.Equal(t, len(issues), total)

	counts := issues.CountByCode()
	assert.Equal(t, 3, counts[ESRSE1])
	assert.NotContains(t, counts, ESRS1)
}
