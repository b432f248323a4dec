package models

// LegalForm is the coarse legal form derived from the registry legal category.
type LegalForm int

const (
	LegalFormUnknown LegalForm = iota
	LegalFormOther
	LegalFormSA
	LegalFormSCA
	LegalFormSAS
	LegalFormSE
	LegalFormProductionCooperative
	LegalFormAgriculturalCooperative
	LegalFormMutualInsurance
	LegalFormMutuelle
	LegalFormProvidentInstitution
)

var legalFormLabels = map[LegalForm]string{
	LegalFormSA:                      "Société Anonyme",
	LegalFormSCA:                     "Société en Commandite par Actions",
	LegalFormSAS:                     "Société par Actions Simplifiées",
	LegalFormSE:                      "Société Européenne",
	LegalFormProductionCooperative:   "Société Coopérative de Production",
	LegalFormAgriculturalCooperative: "Société Coopérative Agricole",
	LegalFormMutualInsurance:         "Société d'assurance à forme mutuelle",
	LegalFormMutuelle:                "Mutuelle",
	LegalFormProvidentInstitution:    "Institution de Prévoyance",
}

// Label is the French display name, empty for other forms.
func (f LegalForm) Label() string {
	return legalFormLabels[f]
}

type codeRange struct{ low, high int }

func inRanges(code int, ranges []codeRange, singles ...int) bool {
	for _, r := range ranges {
		if code >= r.low && code <= r.high {
			return true
		}
	}
	for _, s := range singles {
		if code == s {
			return true
		}
	}
	return false
}

// ConvertLegalCategory maps a registry legal category code to a LegalForm.
// Cooperative SA codes are checked before the SA ranges they overlap.
func ConvertLegalCategory(code int) LegalForm {
	switch {
	case code == 0:
		return LegalFormUnknown
	case code >= 5308 && code <= 5385:
		return LegalFormSCA
	case inRanges(code, []codeRange{{5443, 5460}, {5551, 5560}, {5651, 5660}}, 5543, 5547, 5643, 5647):
		return LegalFormProductionCooperative
	case inRanges(code, []codeRange{{5505, 5515}, {5522, 5542}, {5599, 5642}, {5670, 5699}}, 5546, 5646, 5648):
		return LegalFormSA
	case code >= 5710 && code <= 5785:
		return LegalFormSAS
	case code == 5800:
		return LegalFormSE
	case code == 6317 || code == 6318:
		return LegalFormAgriculturalCooperative
	case code == 6411:
		return LegalFormMutualInsurance
	case code == 8210:
		return LegalFormMutuelle
	case code == 8510:
		return LegalFormProvidentInstitution
	default:
		return LegalFormOther
	}
}

// IsCSRDLegalCategory reports whether the registry code falls in the legal
// categories the sustainability reporting obligation can apply to.
func IsCSRDLegalCategory(code *int) bool {
	if code == nil {
		return false
	}
	return inRanges(*code, []codeRange{{5100, 6199}, {6300, 6499}, {8100, 8299}}, 3120)
}
