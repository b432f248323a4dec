package models

// StandardIssue is one entry of the regulated materiality catalog seeded into
// every new report. Children are seeded right after their parent.
type StandardIssue struct {
	ESRS        ESRS
	Name        string
	Description string
	Children    []StandardIssue
}

// Catalog returns the standard issues in display order. The table is
// compiled in so seeding is deterministic.
func Catalog() []StandardIssue {
	return standardIssues
}

// CatalogSize counts every standard issue, children included.
func CatalogSize() int {
	return countIssues(standardIssues)
}

func countIssues(issues []StandardIssue) int {
	n := 0
	for _, i := range issues {
		n += 1 + countIssues(i.Children)
	}
	return n
}

var standardIssues = []StandardIssue{
	{ESRS: ESRSE1, Name: "Adaptation au changement climatique", Description: "L’adaptation au changement climatique renvoie au processus d’adaptation de l’entreprise au changement climatique réel et attendu"},
	{ESRS: ESRSE1, Name: "Atténuation du changement climatique", Description: "L’atténuation du changement climatique se réfère aux efforts de l’entreprise en faveur du processus général consistant à limiter l’élévation de la température moyenne de la planète à 1,5° C par rapport aux niveaux préindustriels, conformément à l’accord de Paris. La présente norme couvre les exigences de publication liées, notamment, aux sept gaz à effet de serre (GES) que sont le dioxyde de carbone (CO2), le méthane (CH4), le protoxyde d’azote (N2O), les hydrofluorocarbures (HFC), les hydrocarbures perfluorés (PFC), l’hexafluorure de soufre (SF6) et le trifluorure d’azote (NF3). Elle couvre également les exigences de publication portant sur la manière dont l’entreprise gère ses émissions de GES ainsi que les risques de transition qui y sont associés"},
	{ESRS: ESRSE1, Name: "Énergie", Description: "Les exigences de publication relatives à l’« énergie » couvrent toutes les formes de production et de consommation d’énergie."},
	{ESRS: ESRSE2, Name: "Pollution de l'air", Description: "La « pollution de l’air » désigne les émissions dans l’air (air intérieur et air extérieur) dues à l’entreprise, ainsi que la prévention et la réduction de ces émissions"},
	{ESRS: ESRSE2, Name: "Pollution des eaux", Description: "La « pollution de l’eau » désigne les rejets dans l’eau dus à l’entreprise, ainsi que la prévention et la réduction de ces émissions."},
	{ESRS: ESRSE2, Name: "Pollution des sols", Description: "La « pollution des sols » désigne les rejets dans le sol dus à l’entreprise ainsi que là prévention et la réduction de ces émission."},
	{ESRS: ESRSE2, Name: "Substances préoccupantes", Description: "En ce qui concerne les « substances préoccupantes », la présente norme couvre la production, l’utilisation, la distribution et la commercialisation, par l’entreprise, de substances préoccupante"},
	{ESRS: ESRSE2, Name: "Substances extrêmement préoccupantes"},
	{ESRS: ESRSE2, Name: "Microplastiques"},
	{ESRS: ESRSE3, Name: "Eau", Description: "Par « eau », on entend que la présente norme couvre les eaux de surface, les eaux souterraines. Elle inclut des exigences de publication relatives à la consommation d’eau dans les activités, produits et services de l’entreprise, ainsi que des informations connexes sur les prélèvements et rejets d’eau."},
	{ESRS: ESRSE3, Name: "Ressources marines", Description: "Par « ressources marines », on entend que la présente norme couvre l’extraction et l’utilisation de ces ressources, ainsi que les activités économiques s’y rapportant.", Children: []StandardIssue{
		{ESRS: ESRSE3, Name: "Consommation d'eau"},
		{ESRS: ESRSE3, Name: "Prélèvements d'eau"},
		{ESRS: ESRSE3, Name: "Rejet des eaux"},
		{ESRS: ESRSE3, Name: "Rejet des eaux dans les océans"},
		{ESRS: ESRSE3, Name: "Extraction et utilisation des ressources marines"},
	}},
	{ESRS: ESRSE4, Name: "Vecteurs directs de perte de biodiversité", Children: []StandardIssue{
		{ESRS: ESRSE4, Name: "Changement climatique"},
		{ESRS: ESRSE4, Name: "Changement d’affectation des terres, changement d’utilisation de l’eau douce et des mers"},
		{ESRS: ESRSE4, Name: "Exploitation directe"},
		{ESRS: ESRSE4, Name: "Espèces exotiques envahissantes"},
		{ESRS: ESRSE4, Name: "Pollution"},
		{ESRS: ESRSE4, Name: "Autres"},
	}},
	{ESRS: ESRSE4, Name: "Incidence sur l'état des espèces"},
	{ESRS: ESRSE4, Name: "Incidence sur l'étendue et l'état des écosystèmes"},
	{ESRS: ESRSE5, Name: "Ressources entrantes, y compris l’utilisation des ressources"},
	{ESRS: ESRSE5, Name: "Ressources sortantes liées aux produits et services"},
	{ESRS: ESRSE5, Name: "Déchets"},
	{ESRS: ESRSS1, Name: "Conditions de travail", Description: "Par exemple, en matière d’égalité des chances, la discrimination à l’embauche et à la promotion à l’égard des femmes peut réduire l’accès de l’entreprise à une main-d’œuvre qualifiée et nuire à sa réputation. À l’inverse, les politiques visant à accroître la représentation des femmes au sein des effectifs et aux niveaux supérieurs de l’encadrement peuvent avoir des incidences positives, telles que l’expansion de la réserve de main-d’œuvre qualifiée et l’amélioration de l’image de marque de l’entreprise.", Children: []StandardIssue{
		{ESRS: ESRSS1, Name: "Sécurité de l'emploi"},
		{ESRS: ESRSS1, Name: "Temps de travail"},
		{ESRS: ESRSS1, Name: "Salaires décents"},
		{ESRS: ESRSS1, Name: "Dialogue social"},
		{ESRS: ESRSS1, Name: "Liberté d'association, existence de comités d'entreprise et droits des travailleurs à l'information, à la consultation et à la participation"},
		{ESRS: ESRSS1, Name: "Négociation collective, y compris la proportion de travailleurs couverts par des conventions collectives"},
		{ESRS: ESRSS1, Name: "Equilibre entre vie professionnelle et vie privée"},
		{ESRS: ESRSS1, Name: "Santé et sécurité"},
	}},
	{ESRS: ESRSS1, Name: "Égalité de traitement et égalité des chances pour tous", Children: []StandardIssue{
		{ESRS: ESRSS1, Name: "Egalité de genre et égalité de rémunération pour un travail de valeur égale"},
		{ESRS: ESRSS1, Name: "Formation et développement des compétences"},
		{ESRS: ESRSS1, Name: "Emploi et inclusion des personnes handicapées"},
		{ESRS: ESRSS1, Name: "Mesures de lutte contre la violence et le harcèlement sur le lieu de travail"},
		{ESRS: ESRSS1, Name: "Diversité"},
	}},
	{ESRS: ESRSS1, Name: "Autres droits liés au travail", Children: []StandardIssue{
		{ESRS: ESRSS1, Name: "Travail des enfants"},
		{ESRS: ESRSS1, Name: "Travail forcé"},
		{ESRS: ESRSS1, Name: "Logement adéquat"},
		{ESRS: ESRSS1, Name: "Protection de la vie privée"},
	}},
	{ESRS: ESRSS2, Name: "Conditions de travail", Description: "Par exemple, sécurité de l’emploi, temps de travail, salaire décent, dialogue social, liberté d’association, y compris l’existence de comités d’entreprise, négociation collective, équilibre entre vie professionnelle et vie privée, et santé et sécurité", Children: []StandardIssue{
		{ESRS: ESRSS2, Name: "Sécurité de l'emploi"},
		{ESRS: ESRSS2, Name: "Temps de travail"},
		{ESRS: ESRSS2, Name: "Salaires décents"},
		{ESRS: ESRSS2, Name: "Dialogue social"},
		{ESRS: ESRSS2, Name: "Liberté d'association y compris l'existence de comités d'entreprise"},
		{ESRS: ESRSS2, Name: "Négociation collective"},
		{ESRS: ESRSS2, Name: "Equilibre entre vie professionnelle et vie privée"},
		{ESRS: ESRSS2, Name: "Santé et sécurité"},
	}},
	{ESRS: ESRSS2, Name: "Égalité de traitement et égalité des chances pour tous", Description: "Par exemple, égalité de genre et égalité de rémunération pour un travail de valeur égale, formation et développement des compétences, emploi et inclusion des personnes handicapées, mesures de lutte contre la violence et le harcèlement sur le lieu de travail, et diversité", Children: []StandardIssue{
		{ESRS: ESRSS2, Name: "Egalité de genre et égalité de rémunération pour un travail de valeur égale"},
		{ESRS: ESRSS2, Name: "Formation et développement des compétences"},
		{ESRS: ESRSS2, Name: "Emploi et inclusion des personnes handicapées"},
		{ESRS: ESRSS2, Name: "Mesures de lutte contre la violence et le harcèlement sur le lieu de travail"},
		{ESRS: ESRSS2, Name: "Diversité"},
	}},
	{ESRS: ESRSS2, Name: "Autres droits liés au travail", Description: "Par exemple, travail des enfants, travail forcé, logement adéquat, eau et assainissement, et protection de la vie privée", Children: []StandardIssue{
		{ESRS: ESRSS2, Name: "Travail des enfants"},
		{ESRS: ESRSS2, Name: "Travail forcé"},
		{ESRS: ESRSS2, Name: "Logement adéquat"},
		{ESRS: ESRSS2, Name: "Eau et assainissement"},
		{ESRS: ESRSS2, Name: "Protection de la vie privée"},
	}},
	{ESRS: ESRSS3, Name: "Droits économiques, sociaux et culturels des communautés ", Description: "Par exemple, logement adéquat, alimentation adéquate, eau et assainissement, incidences liées à la terre et à la sécurité", Children: []StandardIssue{
		{ESRS: ESRSS3, Name: "Logement adéquat"},
		{ESRS: ESRSS3, Name: "Alimentation adéquate"},
		{ESRS: ESRSS3, Name: "Eau et assainissement"},
		{ESRS: ESRSS3, Name: "Incidences liées à la terre"},
		{ESRS: ESRSS3, Name: "Incidences liées à la sécurité"},
	}},
	{ESRS: ESRSS3, Name: "Droits civils et politiques des communautés", Description: "Par exemple, liberté d’expression, liberté de réunion, incidences sur les défenseurs des droits de l’homme", Children: []StandardIssue{
		{ESRS: ESRSS3, Name: "Liberté d’expression"},
		{ESRS: ESRSS3, Name: "Liberté de réunion"},
		{ESRS: ESRSS3, Name: "Incidences sur les défenseurs des droits de l’homme"},
	}},
	{ESRS: ESRSS3, Name: "Droits particuliers des peuples autochtones", Description: "Par exemple, consentement préalable, donné librement et en connaissance de cause, autodétermination, droits culturels", Children: []StandardIssue{
		{ESRS: ESRSS3, Name: "Consentement préalable, donné librement et en connaissance de cause"},
		{ESRS: ESRSS3, Name: "Auto-détermination"},
		{ESRS: ESRSS3, Name: "Droits culturels"},
	}},
	{ESRS: ESRSS4, Name: "Incidences liées aux informations sur les consommateurs et/ou les utilisateurs finals", Children: []StandardIssue{
		{ESRS: ESRSS4, Name: "Protection de la vie privée"},
		{ESRS: ESRSS4, Name: "Liberté d’expression"},
		{ESRS: ESRSS4, Name: "Accès à l’information (de qualité)"},
	}},
	{ESRS: ESRSS4, Name: "Sécurité des consommateurs et/ou des utilisateurs finals", Children: []StandardIssue{
		{ESRS: ESRSS4, Name: "Santé et sécurité"},
		{ESRS: ESRSS4, Name: "Sécurité de la personne"},
		{ESRS: ESRSS4, Name: "Protection des enfants"},
	}},
	{ESRS: ESRSS4, Name: "Inclusion sociale des consommateurs et/ou des utilisateurs finals", Children: []StandardIssue{
		{ESRS: ESRSS4, Name: "Non-discrimination"},
		{ESRS: ESRSS4, Name: "Accès aux produits et services"},
		{ESRS: ESRSS4, Name: "Pratiques de commercialisation responsables"},
	}},
	{ESRS: ESRSG1, Name: "Culture d’entreprise"},
	{ESRS: ESRSG1, Name: "Protection des lanceurs d’alerte"},
	{ESRS: ESRSG1, Name: "Bien-être animal"},
	{ESRS: ESRSG1, Name: "Engagement politique"},
	{ESRS: ESRSG1, Name: "Gestion des relations avec les fournisseurs, y compris les pratiques en matière de paiement"},
	{ESRS: ESRSG1, Name: "Corruption et versement de pots-de-vin", Children: []StandardIssue{
		{ESRS: ESRSG1, Name: "Prévention et détection, y compris les formations"},
		{ESRS: ESRSG1, Name: "Incidents/Cas"},
	}},
}
