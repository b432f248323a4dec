package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGreater(t *testing.T) {
	tests := []struct {
		name string
		a, b Bracket
		want bool
	}{
		{"higher workforce range", "500-4999", "50-249", true},
		{"lower workforce range", "50-249", "500-4999", false},
		{"open upper label above range", "10000+", "500-4999", true},
		{"range never above open label", "500-4999", "10000+", false},
		{"adjacent workforce ranges", "250-299", "50-249", true},
		{"same range", "300-499", "300-499", false},
		{"amount suffixes", "100M+", "25M-43M", true},
		{"touching amount bounds", "900k-50M", "0-900k", false},
		{"leading plus has no upper bound", "+500", "50-249", true},
		{"nothing is above a leading plus label", "10000+", "+500", false},
		{"unparseable label", "beaucoup", "0-9", false},
		{"empty label", "", "0-9", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGreater(tt.a, tt.b))
		})
	}
}

func TestScaleAtLeast(t *testing.T) {
	assert.True(t, WorkforceScale.AtLeast(Ptr(Workforce500To4999), Workforce500To4999))
	assert.True(t, WorkforceScale.AtLeast(Ptr(Workforce10000Plus), Workforce250To299))
	assert.False(t, WorkforceScale.AtLeast(Ptr(Workforce300To499), Workforce500To4999))
	assert.False(t, WorkforceScale.AtLeast(nil, Workforce0To9))
	assert.False(t, WorkforceScale.AtLeast(Ptr(Bracket("0-49")), Workforce0To9), "label from another scale")
}

func TestScaleBetween(t *testing.T) {
	assert.True(t, BalanceScale.Between(Ptr(Balance450kTo25M), Balance450kTo25M, Balance450kTo25M))
	assert.True(t, GroupScale.Between(Ptr(Group250To499), Workforce50To249, Group250To499))
	assert.False(t, GroupScale.Between(Ptr(Workforce500To4999), Workforce50To249, Group250To499))
	assert.True(t, GroupScale.Between(Ptr(Workforce10000Plus), Workforce5000To9999, Workforce10000Plus))
}
