package models

// Case types offered in the consultation form
const (
	CaseTypeCriminal       = "criminal"
	CaseTypePersonalInjury = "personal-injury"
	CaseTypeFamily         = "family"
	CaseTypeBusiness       = "business"
	CaseTypeEstate         = "estate"
	CaseTypeLoan           = "loan"
	CaseTypeInvestment     = "investment"
)

// CaseTypes lists the case type codes in display order
var CaseTypes = []string{
	CaseTypeCriminal,
	CaseTypePersonalInjury,
	CaseTypeFamily,
	CaseTypeBusiness,
	CaseTypeEstate,
	CaseTypeLoan,
	CaseTypeInvestment,
}

var caseTypeLabels = map[string]string{
	CaseTypeCriminal:       "Criminal Defense",
	CaseTypePersonalInjury: "Personal Injury",
	CaseTypeFamily:         "Family Law",
	CaseTypeBusiness:       "Business Law",
	CaseTypeEstate:         "Estate Planning",
	CaseTypeLoan:           "Loan",
	CaseTypeInvestment:     "Investment",
}

// CaseTypeLabel returns the display label for a case type code.
// Unknown codes are returned unchanged.
func CaseTypeLabel(code string) string {
	if label, ok := caseTypeLabels[code]; ok {
		return label
	}
	return code
}

// IsValidCaseType reports whether code is one of the offered case types
func IsValidCaseType(code string) bool {
	_, ok := caseTypeLabels[code]
	return ok
}
