package evalkit

// Answer scale. Values are Likert-style agreement ratings.
const (
	ScaleMin = 1.0
	ScaleMax = 5.0
)

// Level thresholds applied to the overall score. Boundaries are inclusive
// on the upper level: an overall of exactly 2.0 is intermediate, 3.5 is
// advanced, 4.5 is expert. The scale midpoint 3.0 classifies as intermediate.
const (
	thresholdIntermediate = 2.0
	thresholdAdvanced     = 3.5
	thresholdExpert       = 4.5
)

// How many categories feed the strengths and development-area lists.
const (
	strengthCount    = 2
	developmentCount = 2
)

var badges = map[Level]string{
	LevelBeginner:     "KI-Entdecker:in",
	LevelIntermediate: "KI-Anwender:in",
	LevelAdvanced:     "KI-Gestalter:in",
	LevelExpert:       "KI-Pionier:in",
}

// Badge returns the display badge for a level.
func Badge(level Level) string {
	return badges[level]
}

var strengthPhrases = map[Category]string{
	CategoryThink:   "THINK: Sie verstehen KI-Potenziale und ordnen sie sicher in Ihren Kontext ein.",
	CategoryEnable:  "ENABLE: Sie setzen KI-Werkzeuge praktisch ein und befähigen andere dazu.",
	CategoryShare:   "SHARE: Sie teilen Ihr KI-Wissen aktiv und bauen tragfähige Netzwerke auf.",
	CategoryGrow:    "GROW: Sie entwickeln KI-Kompetenzen kontinuierlich weiter und skalieren Gelerntes.",
	CategoryReflect: "REFLECT: Sie hinterfragen KI-Einsatz kritisch und handeln verantwortungsvoll.",
}

var developmentPhrases = map[Category]string{
	CategoryThink:   "THINK: Das Grundverständnis für KI-Potenziale und deren Einordnung ist ausbaufähig.",
	CategoryEnable:  "ENABLE: Der praktische Einsatz von KI-Werkzeugen im Alltag bietet noch Spielraum.",
	CategoryShare:   "SHARE: Wissensaustausch und Vernetzung rund um KI können gestärkt werden.",
	CategoryGrow:    "GROW: Kontinuierliches Lernen und Skalieren von KI-Erfahrungen sind ausbaufähig.",
	CategoryReflect: "REFLECT: Die kritische Reflexion von Chancen und Risiken verdient mehr Raum.",
}

var recommendationCatalog = map[Category][]string{
	CategoryThink: {
		"Verschaffen Sie sich mit einem KI-Grundlagenkurs einen Überblick über aktuelle Einsatzfelder.",
		"Identifizieren Sie drei konkrete Prozesse in Ihrem Umfeld, die von KI profitieren könnten.",
	},
	CategoryEnable: {
		"Testen Sie ein KI-Werkzeug zwei Wochen lang in einer wiederkehrenden Aufgabe.",
		"Starten Sie ein kleines Pilotprojekt mit klarem Ziel und messbarem Nutzen.",
	},
	CategoryShare: {
		"Stellen Sie Ihre KI-Erfahrungen in einem internen Austauschformat vor.",
		"Treten Sie einem KI-Praxisnetzwerk bei und bringen Sie eigene Fragen ein.",
	},
	CategoryGrow: {
		"Planen Sie feste Lernzeiten für KI-Themen in Ihren Arbeitsalltag ein.",
		"Übertragen Sie ein erprobtes KI-Vorgehen auf einen zweiten Anwendungsfall.",
	},
	CategoryReflect: {
		"Prüfen Sie Ihre KI-Anwendungsfälle systematisch auf Risiken und Nebenwirkungen.",
		"Etablieren Sie eine kurze Wirkungs-Retrospektive nach jedem KI-Einsatz.",
	},
}
