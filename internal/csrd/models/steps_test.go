package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepNavigation(t *testing.T) {
	next, ok := NextStep(StepIntroduction)
	assert.True(t, ok)
	assert.Equal(t, StepIssueSelection, next)

	next, ok = NextStep(StepMaterialityAnalysis)
	assert.True(t, ok)
	assert.Equal(t, StepDatapointSelection, next)

	_, ok = NextStep(StepReportWriting)
	assert.False(t, ok)

	prev, ok := PreviousStep(StepDatapointSelection)
	assert.True(t, ok)
	assert.Equal(t, StepMaterialityAnalysis, prev)

	_, ok = PreviousStep(StepIntroduction)
	assert.False(t, ok)
	_, ok = NextStep(StepDataCollection)
	assert.False(t, ok)
}

func TestIsDone(t *testing.T) {
	assert.True(t, IsDone(StepIntroduction, StepIssueSelection))
	assert.True(t, IsDone(StepIssueSelection, StepIssueSelection))
	assert.False(t, IsDone(StepMaterialityAnalysis, StepIssueSelection))
	assert.False(t, IsDone(StepIntroduction, ""))
}

func TestProgressOf(t *testing.T) {
	tests := map[StepID]Progress{
		"":                      {Max: 5, Current: 0, Percent: 0},
		StepIntroduction:        {Max: 5, Current: 0, Percent: 0},
		StepIssueSelection:      {Max: 5, Current: 1, Percent: 20},
		StepMaterialityAnalysis: {Max: 5, Current: 2, Percent: 40},
		StepReportWriting:       {Max: 5, Current: 5, Percent: 100},
	}
	for step, want := range tests {
		assert.Equal(t, want, ProgressOf(step), "step %q", step)
	}
}

func TestStepsProgressWhenPublished(t *testing.T) {
	for _, sp := range stepsProgress("", true) {
		assert.True(t, sp.Done, sp.Step.ID)
	}
}

func TestParseESRS(t *testing.T) {
	code, ok := ParseESRS("ESRS_E1")
	assert.True(t, ok)
	assert.Equal(t, ESRSE1, code)
	code, ok = ParseESRS("G1")
	assert.True(t, ok)
	assert.Equal(t, ESRSG1, code)
	_, ok = ParseESRS("E9")
	assert.False(t, ok)
}
