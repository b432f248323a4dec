package rules

import (
	"time"

	e "portail-rse/internal/entreprise/models"
)

const siren = "123456789"

var today = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func standalone() e.Company {
	return e.Company{Siren: siren, BelongsToGroup: e.Ptr(false)}
}

func inGroup(consolidated bool) e.Company {
	return e.Company{Siren: siren, BelongsToGroup: e.Ptr(true), ConsolidatedAccounts: e.Ptr(consolidated)}
}

func memberFacts(c e.Company, s e.Snapshot) Facts {
	return Facts{Company: c, Snapshot: s, Viewer: ViewerMember, Today: today}
}

func mustQualify(r Rule, f Facts) Qualified {
	q, err := Qualify(r, f)
	if err != nil {
		panic(err)
	}
	return q
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
