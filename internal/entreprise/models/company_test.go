package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "portail-rse/pkg/domain-errors"
)

func TestConvertLegalCategory(t *testing.T) {
	tests := map[int]LegalForm{
		5308: LegalFormSCA,
		5385: LegalFormSCA,
		5443: LegalFormProductionCooperative,
		5547: LegalFormProductionCooperative,
		5555: LegalFormProductionCooperative,
		5505: LegalFormSA,
		5546: LegalFormSA,
		5599: LegalFormSA,
		5710: LegalFormSAS,
		5800: LegalFormSE,
		6317: LegalFormAgriculturalCooperative,
		6411: LegalFormMutualInsurance,
		8210: LegalFormMutuelle,
		8510: LegalFormProvidentInstitution,
		1000: LegalFormOther,
	}
	for code, want := range tests {
		assert.Equal(t, want, ConvertLegalCategory(code), "code %d", code)
	}
	assert.Equal(t, "Société Anonyme", LegalFormSA.Label())
	assert.Empty(t, LegalFormOther.Label())
}

func TestIsCSRDLegalCategory(t *testing.T) {
	assert.True(t, IsCSRDLegalCategory(Ptr(3120)))
	assert.True(t, IsCSRDLegalCategory(Ptr(5710)))
	assert.True(t, IsCSRDLegalCategory(Ptr(6411)))
	assert.True(t, IsCSRDLegalCategory(Ptr(8210)))
	assert.False(t, IsCSRDLegalCategory(Ptr(1000)))
	assert.False(t, IsCSRDLegalCategory(Ptr(8510)))
	assert.False(t, IsCSRDLegalCategory(nil))
}

func TestCompanyEEA(t *testing.T) {
	france := Company{}
	assert.True(t, france.DomesticRegistration())
	assert.True(t, france.InEEA())

	germany := Company{ForeignCountryCode: Ptr(99109)}
	assert.False(t, germany.DomesticRegistration())
	assert.True(t, germany.InEEA())

	usa := Company{ForeignCountryCode: Ptr(99404)}
	assert.False(t, usa.InEEA())
}

func TestCompanyNormalizeClearsGroupAnswers(t *testing.T) {
	c := Company{
		BelongsToGroup:       Ptr(false),
		IsParentCompany:      Ptr(true),
		ConsolidatedAccounts: Ptr(true),
	}
	c.Normalize()
	assert.Nil(t, c.IsParentCompany)
	assert.Nil(t, c.ConsolidatedAccounts)
}

func TestValidateSiren(t *testing.T) {
	require.NoError(t, ValidateSiren("552100554"))
	err := ValidateSiren("55210055A")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Error(t, ValidateSiren("1234"))
}
