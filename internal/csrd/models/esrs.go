package models

import "strings"

// ESRS is the European sustainability reporting standard an issue belongs to.
type ESRS string

const (
	ESRS1  ESRS = "ESRS_1"
	ESRS2  ESRS = "ESRS_2"
	ESRSE1 ESRS = "ESRS_E1"
	ESRSE2 ESRS = "ESRS_E2"
	ESRSE3 ESRS = "ESRS_E3"
	ESRSE4 ESRS = "ESRS_E4"
	ESRSE5 ESRS = "ESRS_E5"
	ESRSS1 ESRS = "ESRS_S1"
	ESRSS2 ESRS = "ESRS_S2"
	ESRSS3 ESRS = "ESRS_S3"
	ESRSS4 ESRS = "ESRS_S4"
	ESRSG1 ESRS = "ESRS_G1"
)

// Theme groups thematic standards.
type Theme string

const (
	ThemeEnvironment Theme = "environnement"
	ThemeSocial      Theme = "social"
	ThemeGovernance  Theme = "gouvernance"
)

var esrsTitles = map[ESRS]string{
	ESRSE1: "ESRS E1 - Changement climatique",
	ESRSE2: "ESRS E2 - Pollution",
	ESRSE3: "ESRS E3 - Eau et ressources marines",
	ESRSE4: "ESRS E4 - Biodiversité et écosystèmes",
	ESRSE5: "ESRS E5 - Utilisation des ressources et économie circulaire",
	ESRSS1: "ESRS S1 - Personnel de l'entreprise",
	ESRSS2: "ESRS S2 - Travailleurs de la chaîne de valeur",
	ESRSS3: "ESRS S3 - Communautés affectées",
	ESRSS4: "ESRS S4 - Consommateurs et utilisateurs finaux",
	ESRSG1: "ESRS G1 - Conduite des affaires",
}

// ThematicStandards lists the standards issues can be attached to, in display order.
var ThematicStandards = []ESRS{ESRSE1, ESRSE2, ESRSE3, ESRSE4, ESRSE5, ESRSS1, ESRSS2, ESRSS3, ESRSS4, ESRSG1}

// IsThematic reports whether issues may be attached to the standard.
func (e ESRS) IsThematic() bool {
	_, ok := esrsTitles[e]
	return ok
}

// Title is the display title, empty for cross-cutting standards.
func (e ESRS) Title() string {
	return esrsTitles[e]
}

// Code is the short form ("E1").
func (e ESRS) Code() string {
	return strings.TrimPrefix(string(e), "ESRS_")
}

func (e ESRS) Theme() Theme {
	switch {
	case strings.HasPrefix(string(e), "ESRS_E"):
		return ThemeEnvironment
	case strings.HasPrefix(string(e), "ESRS_S"):
		return ThemeSocial
	case strings.HasPrefix(string(e), "ESRS_G"):
		return ThemeGovernance
	}
	return ""
}

// ParseESRS accepts the full form ("ESRS_E1") or the short code ("E1").
func ParseESRS(s string) (ESRS, bool) {
	e := ESRS(s)
	if !strings.HasPrefix(s, "ESRS_") {
		e = ESRS("ESRS_" + s)
	}
	return e, e.IsThematic()
}
