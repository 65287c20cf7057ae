package evalkit

// Static role catalog. Statements are Likert items rated 1 (trifft gar
// nicht zu) bis 5 (trifft voll zu); ten per category, fifty per role.
var roleCatalog = []Role{
	{
		ID:          "mensch",
		Name:        "Mensch",
		Description: "Selbsteinschätzung für Einzelpersonen: Wie fit bin ich persönlich im Umgang mit KI?",
		Thesis:      "KI verändert nicht nur Werkzeuge, sondern die Art, wie ich arbeite, lerne und entscheide.",
		Questions: questionSet("mensch", map[Category][]string{
			CategoryThink: {
				"Ich kann in eigenen Worten erklären, was generative KI von klassischer Software unterscheidet.",
				"Ich erkenne in meinem Arbeitsalltag Aufgaben, die sich für KI-Unterstützung eignen.",
				"Ich kann die Grenzen aktueller KI-Systeme realistisch einschätzen.",
				"Ich verfolge aktiv, welche neuen KI-Entwicklungen für mein Feld relevant sind.",
				"Ich kann Nutzen und Aufwand eines KI-Einsatzes für eine konkrete Aufgabe abwägen.",
				"Ich verstehe, wie Trainingsdaten die Ergebnisse eines KI-Modells prägen.",
				"Ich kann zwischen Hype und belastbarem Nutzen bei KI-Angeboten unterscheiden.",
				"Ich weiß, welche Datenarten ich bedenkenlos in KI-Werkzeuge eingeben darf.",
				"Ich kann einschätzen, wann eine KI-Antwort plausibel, aber falsch sein könnte.",
				"Ich habe ein klares Bild davon, wie KI meine Rolle in den nächsten Jahren verändert.",
			},
			CategoryEnable: {
				"Ich nutze KI-Werkzeuge regelmäßig in meiner täglichen Arbeit.",
				"Ich formuliere Eingaben (Prompts) gezielt, um bessere Ergebnisse zu erhalten.",
				"Ich kombiniere mehrere KI-Werkzeuge zu einem durchgängigen Arbeitsablauf.",
				"Ich prüfe KI-Ergebnisse systematisch, bevor ich sie weiterverwende.",
				"Ich habe mindestens einen wiederkehrenden Prozess mit KI spürbar beschleunigt.",
				"Ich kann Kolleg:innen beim Einstieg in ein KI-Werkzeug anleiten.",
				"Ich passe KI-Werkzeuge über Einstellungen oder Vorlagen an meinen Bedarf an.",
				"Ich dokumentiere funktionierende Prompts und Abläufe für die Wiederverwendung.",
				"Ich probiere neue KI-Funktionen zeitnah aus, statt auf Anleitungen zu warten.",
				"Ich hole mir gezielt Unterstützung, wenn ich mit einem KI-Werkzeug nicht weiterkomme.",
			},
			CategoryShare: {
				"Ich teile hilfreiche KI-Erfahrungen aktiv mit meinem Team.",
				"Ich tausche mich außerhalb meiner Organisation zu KI-Themen aus.",
				"Ich zeige anderen konkrete KI-Anwendungen, statt nur davon zu erzählen.",
				"Ich spreche offen über gescheiterte KI-Experimente und was ich daraus gelernt habe.",
				"Ich bringe KI-Impulse in Besprechungen und Entscheidungsrunden ein.",
				"Ich beteilige mich an internen oder externen KI-Communities.",
				"Ich mache mein Wissen über Prompts und Werkzeuge für andere auffindbar.",
				"Ich vernetze Menschen, die an ähnlichen KI-Fragestellungen arbeiten.",
				"Ich gebe Rückmeldung zu KI-Werkzeugen an die, die sie einführen oder betreiben.",
				"Ich ermutige zurückhaltende Kolleg:innen, KI-Werkzeuge auszuprobieren.",
			},
			CategoryGrow: {
				"Ich plane regelmäßig Zeit ein, um meine KI-Kenntnisse zu vertiefen.",
				"Ich setze mir konkrete Lernziele rund um KI und verfolge sie.",
				"Ich übertrage gelungene KI-Ansätze auf neue Aufgabenfelder.",
				"Ich baue auf ersten KI-Erfolgen auf, statt bei Einzelversuchen stehenzubleiben.",
				"Ich messe, ob mein KI-Einsatz tatsächlich Zeit spart oder Qualität verbessert.",
				"Ich entwickle meine Prompts und Abläufe anhand von Ergebnissen weiter.",
				"Ich suche aktiv nach Aufgaben, die ich mit KI neu denken kann.",
				"Ich bleibe dran, auch wenn ein KI-Werkzeug anfangs nicht überzeugt.",
				"Ich lerne aus Beispielen anderer und passe sie an meinen Kontext an.",
				"Ich erweitere mein KI-Repertoire über mein ursprüngliches Einsatzfeld hinaus.",
			},
			CategoryReflect: {
				"Ich hinterfrage, welche Auswirkungen mein KI-Einsatz auf andere hat.",
				"Ich prüfe KI-Ergebnisse auf Verzerrungen und einseitige Darstellungen.",
				"Ich mache transparent, wenn Inhalte mit KI-Unterstützung entstanden sind.",
				"Ich achte auf Datenschutz und Vertraulichkeit beim Einsatz von KI.",
				"Ich denke darüber nach, welche Fähigkeiten ich trotz KI selbst behalten will.",
				"Ich wäge ab, wann menschliches Urteil wichtiger ist als KI-Effizienz.",
				"Ich reflektiere regelmäßig, ob mein KI-Einsatz meinen Werten entspricht.",
				"Ich beziehe Nachhaltigkeit und Ressourcenverbrauch in meine KI-Entscheidungen ein.",
				"Ich nehme Unbehagen anderer gegenüber KI ernst und gehe darauf ein.",
				"Ich kann begründen, warum ich KI in einer Situation bewusst nicht einsetze.",
			},
		}),
	},
	{
		ID:          "team",
		Name:        "Team",
		Description: "Selbsteinschätzung für Teams: Wie gut nutzen wir KI gemeinsam und koordiniert?",
		Thesis:      "Teams gewinnen durch KI nur dann, wenn Wissen, Werkzeuge und Verantwortung geteilt werden.",
		Questions: questionSet("team", map[Category][]string{
			CategoryThink: {
				"Unser Team hat ein gemeinsames Verständnis davon, was KI für unsere Arbeit bedeutet.",
				"Wir kennen die KI-Werkzeuge, die in unserem Arbeitsfeld relevant sind.",
				"Wir haben identifiziert, welche unserer Aufgaben sich für KI-Unterstützung eignen.",
				"Wir können den Nutzen von KI-Ideen für unser Team realistisch bewerten.",
				"Wir verstehen, welche Daten unser Team in KI-Werkzeuge geben darf und welche nicht.",
				"Wir beobachten gemeinsam, wie sich KI in unserem Umfeld entwickelt.",
				"Wir unterscheiden zwischen kurzfristigen Trends und dauerhaft nützlichen KI-Ansätzen.",
				"Wir wissen, wo KI unsere Teamarbeit verändern wird, nicht nur einzelne Aufgaben.",
				"Wir kennen die Grenzen der KI-Werkzeuge, die wir einsetzen.",
				"Wir haben ein gemeinsames Bild, wie unser Team in zwei Jahren mit KI arbeitet.",
			},
			CategoryEnable: {
				"In unserem Team sind KI-Werkzeuge fester Bestandteil der täglichen Arbeit.",
				"Wir haben gemeinsame Vorlagen und Prompts, die alle nutzen können.",
				"Neue Teammitglieder werden gezielt in unsere KI-Arbeitsweisen eingeführt.",
				"Wir haben mindestens einen Teamprozess mit KI messbar verbessert.",
				"Wir prüfen KI-Ergebnisse im Vier-Augen-Prinzip, bevor sie das Team verlassen.",
				"Jedes Teammitglied weiß, an wen es sich bei KI-Fragen wenden kann.",
				"Wir integrieren KI-Schritte sichtbar in unsere dokumentierten Abläufe.",
				"Wir testen neue KI-Funktionen in kleinen, abgegrenzten Experimenten.",
				"Wir haben klare Absprachen, welche Aufgaben KI übernimmt und welche nicht.",
				"Wir beseitigen Hindernisse, die einzelne vom KI-Einsatz abhalten.",
			},
			CategoryShare: {
				"Wir tauschen KI-Erfahrungen regelmäßig im Team aus, nicht nur zufällig.",
				"Erfolgreiche KI-Anwendungen eines Mitglieds werden im Team weitergegeben.",
				"Wir teilen unsere KI-Learnings auch mit anderen Teams.",
				"Gescheiterte Experimente werden offen besprochen statt verschwiegen.",
				"Wir pflegen eine gemeinsame Sammlung funktionierender Prompts und Werkzeuge.",
				"Wir holen Impulse von außen ins Team, etwa aus Netzwerken oder Communities.",
				"Bei uns traut sich jede:r, Fragen zu KI zu stellen.",
				"Wir zeigen unsere KI-Arbeitsweisen anderen Teams auf Nachfrage gern.",
				"Wir geben strukturiertes Feedback an die, die KI-Werkzeuge bereitstellen.",
				"Wir feiern Fortschritte beim KI-Einsatz sichtbar im Team.",
			},
			CategoryGrow: {
				"Wir haben feste Formate, um als Team an KI-Kompetenz zu arbeiten.",
				"Wir setzen uns Teamziele für den KI-Einsatz und überprüfen sie.",
				"Wir skalieren erprobte KI-Ansätze von einer Aufgabe auf weitere.",
				"Wir messen die Wirkung unseres KI-Einsatzes mit einfachen Kennzahlen.",
				"Wir entwickeln unsere KI-Arbeitsweisen anhand von Retrospektiven weiter.",
				"Wir bauen gezielt Kompetenzen auf, die uns als Team noch fehlen.",
				"Wir übernehmen gute KI-Praktiken anderer Teams und passen sie an.",
				"Wir investieren Zeitersparnis durch KI in Verbesserungen, nicht nur in Mehrarbeit.",
				"Wir halten an sinnvollen KI-Vorhaben auch über Anfangshürden hinweg fest.",
				"Unser KI-Einsatz wächst planvoll statt durch Einzelinitiativen.",
			},
			CategoryReflect: {
				"Wir besprechen offen, wie sich KI auf Rollen und Aufgaben im Team auswirkt.",
				"Wir prüfen gemeinsam, ob KI-Ergebnisse fair und ausgewogen sind.",
				"Wir machen gegenüber anderen transparent, wo KI an unserer Arbeit beteiligt war.",
				"Wir achten gemeinsam auf Datenschutz und Vertraulichkeit beim KI-Einsatz.",
				"Wir sprechen über Sorgen und Vorbehalte gegenüber KI, ohne sie abzutun.",
				"Wir überlegen bewusst, welche Tätigkeiten wir nicht an KI abgeben wollen.",
				"Wir bewerten regelmäßig, ob unser KI-Einsatz dem Team wirklich nützt.",
				"Wir berücksichtigen die Belastung Einzelner durch Veränderungstempo und Lernaufwand.",
				"Wir hinterfragen KI-Empfehlungen, bevor wir Entscheidungen darauf stützen.",
				"Wir übernehmen als Team Verantwortung für Fehler, die mit KI entstanden sind.",
			},
		}),
	},
	{
		ID:          "organisation",
		Name:        "Organisation",
		Description: "Selbsteinschätzung für Organisationen: Wie strategisch und breit ist KI bei uns verankert?",
		Thesis:      "KI-Transformation gelingt, wenn Strategie, Befähigung und Verantwortung zusammen gedacht werden.",
		Questions: questionSet("organisation", map[Category][]string{
			CategoryThink: {
				"Unsere Organisation hat eine klare Position, welche Rolle KI für sie spielt.",
				"Wir kennen die KI-Anwendungsfälle mit dem größten Potenzial für unser Geschäft.",
				"Führungskräfte verstehen die Möglichkeiten und Grenzen von KI.",
				"Wir bewerten KI-Investitionen anhand nachvollziehbarer Kriterien.",
				"Wir beobachten systematisch, wie KI unsere Branche verändert.",
				"Wir wissen, welche Daten und Systeme für KI-Vorhaben nutzbar sind.",
				"Wir verstehen die regulatorischen Anforderungen an unseren KI-Einsatz.",
				"Wir haben ein realistisches Bild vom KI-Reifegrad unserer Organisation.",
				"Wir unterscheiden strategische KI-Vorhaben von kurzlebigen Trends.",
				"Unsere KI-Strategie ist mit der Gesamtstrategie verzahnt.",
			},
			CategoryEnable: {
				"Mitarbeitende haben Zugang zu freigegebenen KI-Werkzeugen.",
				"Es gibt Budget und Zeit für KI-Qualifizierung auf allen Ebenen.",
				"Wir haben Leitlinien, die den KI-Einsatz praktisch regeln statt nur zu verbieten.",
				"KI-Pilotprojekte werden strukturiert aufgesetzt und ausgewertet.",
				"Es gibt Ansprechpersonen oder ein Team, das KI-Vorhaben unterstützt.",
				"Unsere IT-Landschaft erlaubt die Anbindung von KI-Werkzeugen.",
				"Erfolgreiche Piloten werden in den Regelbetrieb überführt.",
				"Wir stellen sicher, dass KI-Werkzeuge barrierearm nutzbar sind.",
				"Fachbereiche können KI-Bedarfe auf einem klaren Weg einbringen.",
				"Wir qualifizieren gezielt Multiplikator:innen für KI in den Bereichen.",
			},
			CategoryShare: {
				"KI-Wissen fließt bei uns über Bereichsgrenzen hinweg.",
				"Es gibt etablierte Formate für den KI-Erfahrungsaustausch.",
				"Erfolgreiche und gescheiterte KI-Projekte werden intern sichtbar gemacht.",
				"Wir beteiligen uns an externen KI-Netzwerken und Partnerschaften.",
				"Gute KI-Praktiken werden zentral auffindbar dokumentiert.",
				"Führungskräfte teilen eigene KI-Erfahrungen und gehen voran.",
				"Wir lernen gezielt von anderen Organisationen unserer Größe.",
				"Interne KI-Communities erhalten Zeit und Unterstützung.",
				"Wir kommunizieren offen über Ziele und Stand unserer KI-Vorhaben.",
				"Mitarbeitende können KI-Ideen einbringen und bekommen Rückmeldung dazu.",
			},
			CategoryGrow: {
				"Unser KI-Einsatz wächst entlang einer priorisierten Roadmap.",
				"Wir messen den Nutzen von KI-Vorhaben und steuern danach.",
				"Gelerntes aus KI-Projekten fließt in die nächsten Vorhaben ein.",
				"Wir entwickeln unsere KI-Leitlinien anhand neuer Erfahrungen weiter.",
				"KI-Kompetenz ist Teil unserer Personalentwicklung.",
				"Wir skalieren erfolgreiche KI-Lösungen über Bereiche hinweg.",
				"Wir passen Strukturen und Prozesse an, wenn KI neue Arbeitsweisen ermöglicht.",
				"Wir halten KI-Vorhaben auch dann durch, wenn frühe Ergebnisse ausbleiben.",
				"Wir bauen eigene Daten- und KI-Fähigkeiten auf, statt alles einzukaufen.",
				"Unsere KI-Investitionen wachsen nachvollziehbar mit den Ergebnissen.",
			},
			CategoryReflect: {
				"Wir bewerten KI-Vorhaben systematisch nach ethischen Kriterien.",
				"Verantwortlichkeiten für KI-Entscheidungen sind klar geregelt.",
				"Wir prüfen KI-Systeme vor dem Einsatz auf Risiken und Verzerrungen.",
				"Betroffene werden einbezogen, bevor KI ihre Arbeit verändert.",
				"Wir machen gegenüber Kund:innen transparent, wo KI eingesetzt wird.",
				"Datenschutz und Informationssicherheit sind in KI-Vorhaben von Anfang an dabei.",
				"Wir beobachten die Wirkung von KI auf Beschäftigung und Arbeitsqualität.",
				"Es gibt einen sicheren Weg, Bedenken gegen KI-Einsätze zu äußern.",
				"Wir berücksichtigen ökologische Folgen unseres KI-Einsatzes.",
				"Wir überprüfen laufende KI-Systeme regelmäßig, nicht nur bei der Einführung.",
			},
		}),
	},
}
