package exercises

import (
	"math/rand"
	"strings"
	"unicode"

	"exophilos/internal/models"
	"exophilos/internal/philo"
)

// Types d'exercices proposés pour un sujet analysé
const (
	TypeQuiz             = "quiz"
	TypePlanBuilder      = "plan"
	TypePhilosopherMatch = "match"
	TypeCitation         = "citation"
	TypeProblematization = "problematization"
	TypeArgumentBuilder  = "argument"
)

// Types liste les six types dans l'ordre d'affichage
var Types = []string{
	TypeQuiz,
	TypePlanBuilder,
	TypePhilosopherMatch,
	TypeCitation,
	TypeProblematization,
	TypeArgumentBuilder,
}

// ValidType vérifie qu'un identifiant d'exercice est connu
func ValidType(t string) bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// philosopherConcepts associe chaque philosophe à ses concepts de prédilection
var philosopherConcepts = map[string][]string{
	"Platon":    {"Vérité", "Justice", "Beauté"},
	"Aristote":  {"Bonheur", "Justice", "Vertu"},
	"Kant":      {"Liberté", "Devoir", "Autonomie"},
	"Sartre":    {"Liberté", "Existence", "Authenticité"},
	"Descartes": {"Vérité", "Doute", "Certitude"},
	"Nietzsche": {"Valeurs", "Volonté", "Critique"},
	"Rousseau":  {"Nature", "Société", "Contrat"},
	"Spinoza":   {"Liberté", "Nécessité", "Éthique"},
}

// distractorPhilosophers sert de réservoir de mauvaises réponses pour le quiz
var distractorPhilosophers = []string{"Descartes", "Hegel", "Nietzsche", "Foucault"}

// GenerateQuiz construit jusqu'à 5 questions à choix multiples à partir d'une
// analyse. L'ordre des options est mélangé ; la bonne réponse est suivie par
// sa valeur, le mélange ne peut donc pas la détacher.
func GenerateQuiz(rng *rand.Rand, analysis *models.AnalysisResult) []models.QuizQuestion {
	var questions []models.QuizQuestion

	// Question sur le thème principal
	questions = append(questions, models.QuizQuestion{
		Question:      "Quel est le thème principal abordé dans le sujet analysé ?",
		Options:       shuffled(rng, []string{analysis.MainTheme, "La morale", "La politique", "L'esthétique"}),
		CorrectAnswer: analysis.MainTheme,
		Explanation:   "Le thème principal identifié est \"" + analysis.MainTheme + "\" car il correspond aux concepts centraux du sujet.",
	})

	// Question sur les philosophes, seulement si l'analyse en a détecté
	if len(analysis.Philosophers) > 0 {
		correct := analysis.Philosophers[0]
		var distractors []string
		for _, p := range distractorPhilosophers {
			if !contains(analysis.Philosophers, p) {
				distractors = append(distractors, p)
			}
			if len(distractors) == 3 {
				break
			}
		}

		questions = append(questions, models.QuizQuestion{
			Question:      "Quel philosophe est particulièrement associé au thème \"" + analysis.MainTheme + "\" ?",
			Options:       shuffled(rng, append([]string{correct}, distractors...)),
			CorrectAnswer: correct,
			Explanation:   correct + " a développé des réflexions importantes sur " + strings.ToLower(analysis.MainTheme) + ".",
		})
	}

	// Question sur une citation, seulement si le thème en possède une
	if themeCitations := philo.CitationsByTheme(analysis.MainTheme); len(themeCitations) > 0 {
		citation := themeCitations[0]
		var distractors []string
		for _, author := range []string{"Platon", "Emmanuel Kant", "Friedrich Nietzsche", "Simone de Beauvoir"} {
			if author != citation.Author {
				distractors = append(distractors, author)
			}
			if len(distractors) == 3 {
				break
			}
		}

		questions = append(questions, models.QuizQuestion{
			Question:      "À qui doit-on la citation « " + citation.Text + " » ?",
			Options:       shuffled(rng, append([]string{citation.Author}, distractors...)),
			CorrectAnswer: citation.Author,
			Explanation:   citation.Explanation,
		})
	}

	// Question sur la problématique
	questions = append(questions, models.QuizQuestion{
		Question: "Quelle est la fonction principale d'une problématique en philosophie ?",
		Options: shuffled(rng, []string{
			"Révéler les tensions et enjeux du sujet",
			"Donner une réponse définitive",
			"Résumer le cours",
			"Citer des philosophes",
		}),
		CorrectAnswer: "Révéler les tensions et enjeux du sujet",
		Explanation:   "Une problématique doit mettre en lumière les tensions conceptuelles et les enjeux philosophiques du sujet.",
	})

	// Question sur le plan dialectique
	questions = append(questions, models.QuizQuestion{
		Question: "Dans un plan dialectique, que représente la synthèse ?",
		Options: shuffled(rng, []string{
			"Un dépassement des oppositions précédentes",
			"Une simple addition de la thèse et de l'antithèse",
			"Une répétition de la thèse",
			"Une négation de l'antithèse",
		}),
		CorrectAnswer: "Un dépassement des oppositions précédentes",
		Explanation:   "La synthèse vise à dépasser l'opposition entre thèse et antithèse en proposant une solution nouvelle.",
	})

	// Question sur les notions liées
	if len(analysis.KeyConcepts) > 1 {
		correct := analysis.KeyConcepts[0] + " et " + analysis.KeyConcepts[1]
		questions = append(questions, models.QuizQuestion{
			Question:      "Parmi ces notions, lesquelles sont liées au sujet analysé ?",
			Options:       shuffled(rng, []string{correct, "Temps et espace", "Matière et forme", "Cause et effet"}),
			CorrectAnswer: correct,
			Explanation:   "Ces notions sont directement liées aux enjeux philosophiques du sujet.",
		})
	}

	if len(questions) > 5 {
		questions = questions[:5]
	}
	return questions
}

// GeneratePlanBuilder aplatit les arguments du plan dialectique en une liste
// mélangée ; le plan d'origine sert de corrigé
func GeneratePlanBuilder(rng *rand.Rand, analysis *models.AnalysisResult) models.PlanBuilderData {
	correctPlan := make([][]string, len(analysis.DialecticalPlan))
	var allArguments []string
	for i, part := range analysis.DialecticalPlan {
		correctPlan[i] = append([]string(nil), part.KeyArguments...)
		allArguments = append(allArguments, part.KeyArguments...)
	}

	return models.PlanBuilderData{
		CorrectPlan:       correctPlan,
		ShuffledArguments: shuffled(rng, allArguments),
	}
}

// GeneratePhilosopherMatch associe les 4 premiers philosophes de l'analyse à
// un concept chacun, en préférant un concept déjà présent dans les notions
// clés du sujet
func GeneratePhilosopherMatch(rng *rand.Rand, analysis *models.AnalysisResult) models.PhilosopherMatchData {
	available := analysis.Philosophers
	if len(available) > 4 {
		available = available[:4]
	}

	pairs := make([]models.PhilosopherPair, 0, len(available))
	for _, philosopher := range available {
		conceptPool, ok := philosopherConcepts[philosopher]
		if !ok {
			conceptPool = []string{analysis.MainTheme}
		}

		concept := conceptPool[0]
		for _, c := range conceptPool {
			if contains(analysis.KeyConcepts, c) {
				concept = c
				break
			}
		}

		pairs = append(pairs, models.PhilosopherPair{
			Philosopher: philosopher,
			Concept:     concept,
			Explanation: philosopher + " a développé une réflexion importante sur " + strings.ToLower(concept) + ".",
		})
	}

	philosophers := make([]string, len(pairs))
	conceptNames := make([]string, len(pairs))
	for i, p := range pairs {
		philosophers[i] = p.Philosopher
		conceptNames[i] = p.Concept
	}

	return models.PhilosopherMatchData{
		Pairs:        pairs,
		Philosophers: shuffled(rng, philosophers),
		Concepts:     shuffled(rng, conceptNames),
	}
}

// extraThemes complète la liste des thèmes proposés dans l'exercice de citation
var extraThemes = []string{"Existence", "Société", "Nature", "Raison", "Expérience", "Morale"}

// GenerateCitationExercise sélectionne jusqu'à 2 citations du thème principal
// (complétées par le thème par défaut si besoin) et en dérive les mots-clés
// attendus pour la notation
func GenerateCitationExercise(analysis *models.AnalysisResult) models.CitationExerciseData {
	pool := philo.CitationsByTheme(analysis.MainTheme)
	if len(pool) < 2 {
		for _, c := range philo.CitationsByTheme("Liberté") {
			if len(pool) >= 2 {
				break
			}
			if !containsCitation(pool, c) {
				pool = append(pool, c)
			}
		}
	}
	if len(pool) > 2 {
		pool = pool[:2]
	}

	exercises := make([]models.CitationExercise, 0, len(pool))
	for _, citation := range pool {
		themes := []string{citation.Theme}
		if !strings.EqualFold(citation.Theme, analysis.MainTheme) {
			themes = append(themes, analysis.MainTheme)
		}

		exercises = append(exercises, models.CitationExercise{
			Citation: citation,
			Themes:   themes,
			Keywords: ExtractKeywords(citation.Text, 5),
		})
	}

	seen := make(map[string]bool)
	var availableThemes []string
	appendTheme := func(theme string) {
		if theme != "" && !seen[theme] {
			seen[theme] = true
			availableThemes = append(availableThemes, theme)
		}
	}
	for _, c := range analysis.KeyConcepts {
		appendTheme(c)
	}
	for _, t := range extraThemes {
		appendTheme(t)
	}
	for _, ex := range exercises {
		for _, t := range ex.Themes {
			appendTheme(t)
		}
	}

	return models.CitationExerciseData{
		Citations:       exercises,
		AvailableThemes: availableThemes,
	}
}

// problematizationTemplates et leurs indices d'aide associés
var problematizationTemplates = []struct {
	Template string
	Hints    []string
}{
	{
		Template: "La {concept} est-elle {qualifier} ?",
		Hints: []string{
			"Interrogez la nature de {concept}",
			"Questionnez le terme '{qualifier}'",
			"Cherchez les tensions conceptuelles",
		},
	},
	{
		Template: "Peut-on vivre sans {concept} ?",
		Hints:    []string{"Définissez ce qu'est {concept}", "Questionnez la nécessité", "Explorez les alternatives"},
	},
	{
		Template: "Faut-il avoir peur de {concept} ?",
		Hints:    []string{"Analysez la notion de peur", "Questionnez la valeur de {concept}", "Explorez les enjeux éthiques"},
	},
}

var problematizationQualifiers = []string{"une illusion", "nécessaire", "possible", "désirable"}

// GenerateProblematization produit exactement 3 sujets d'entraînement en
// combinant gabarits, qualificatifs et notions clés de l'analyse
func GenerateProblematization(analysis *models.AnalysisResult) models.ProblematizationExerciseData {
	subjects := make([]models.ProblematizationSubject, 0, 3)

	for i := 0; i < 3; i++ {
		tmpl := problematizationTemplates[i%len(problematizationTemplates)]

		concept := analysis.MainTheme
		if len(analysis.KeyConcepts) > 0 {
			concept = analysis.KeyConcepts[i%len(analysis.KeyConcepts)]
		}
		conceptLower := strings.ToLower(concept)
		qualifier := problematizationQualifiers[i%len(problematizationQualifiers)]

		fill := func(s string) string {
			s = strings.ReplaceAll(s, "{concept}", conceptLower)
			return strings.ReplaceAll(s, "{qualifier}", qualifier)
		}

		hints := make([]string, len(tmpl.Hints))
		for j, h := range tmpl.Hints {
			hints[j] = fill(h)
		}

		subjects = append(subjects, models.ProblematizationSubject{
			Subject: fill(tmpl.Template),
			ExpectedProblematic: "Comment concilier " + conceptLower + " et ses limites ? Dans quelle mesure " +
				conceptLower + " peut-elle être considérée comme " + qualifier + " ?",
			Hints:            hints,
			ExpectedElements: []string{conceptLower, qualifier, "mesure", "comment", "pourquoi"},
		})
	}

	return models.ProblematizationExerciseData{Subjects: subjects}
}

// GenerateArgumentBuilder produit 3 scénarios d'argumentation paramétrés par
// le thème principal
func GenerateArgumentBuilder(analysis *models.AnalysisResult) models.ArgumentBuilderExerciseData {
	theme := analysis.MainTheme
	themeLower := strings.ToLower(theme)

	suggested := analysis.Philosophers
	if len(suggested) > 3 {
		suggested = suggested[:3]
	}
	suggested = append([]string(nil), suggested...)

	scenarios := []models.ArgumentScenario{
		{
			Context:               "Dans le cadre d'une dissertation sur \"" + theme + "\", vous devez défendre la position suivante :",
			Position:              theme + " est fondamentale pour l'existence humaine",
			ExpectedKeywords:      []string{themeLower, "existence", "fondamental", "humain", "nécessaire"},
			SuggestedPhilosophers: suggested,
			Feedback:              "Un bon argument sur " + theme + " doit articuler concept, raisonnement et exemple concret.",
		},
		{
			Context:               "Face à une objection qui nierait l'importance de " + theme + ", vous devez répondre :",
			Position:              theme + " ne peut être ignorée",
			ExpectedKeywords:      []string{themeLower, "importance", "nécessité", "conséquences"},
			SuggestedPhilosophers: suggested,
			Feedback:              "Pour réfuter une objection, il faut montrer les conséquences de l'absence de " + theme + ".",
		},
		{
			Context:               "Dans une synthèse dialectique, vous devez montrer comment dépasser les contradictions autour de " + theme + " :",
			Position:              theme + " peut être repensée",
			ExpectedKeywords:      []string{themeLower, "dépassement", "synthèse", "nouveau", "perspective"},
			SuggestedPhilosophers: suggested,
			Feedback:              "Une synthèse doit proposer une nouvelle approche qui intègre les oppositions précédentes.",
		},
	}

	return models.ArgumentBuilderExerciseData{Scenarios: scenarios}
}

// stopwords français ignorés lors de l'extraction de mots-clés ; les mots de
// trois lettres ou moins sont déjà écartés par la longueur
var stopwords = map[string]bool{
	"dans": true, "pour": true, "avec": true, "sans": true, "cette": true,
	"donc": true, "mais": true, "elle": true, "nous": true, "vous": true,
	"sont": true, "être": true, "tout": true, "tous": true, "toute": true,
	"plus": true, "bien": true, "fait": true, "peut": true, "leur": true,
	"aussi": true, "entre": true, "comme": true, "ainsi": true, "même": true,
	"était": true, "avoir": true, "autre": true, "c'est": true, "qu'on": true,
}

// ExtractKeywords découpe un texte en mots, écarte les mots courts et les
// mots outils, et retient les max premiers mots pleins
func ExtractKeywords(text string, max int) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})

	seen := make(map[string]bool)
	var keywords []string
	for _, word := range words {
		if len([]rune(word)) <= 3 || stopwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == max {
			break
		}
	}
	return keywords
}

// shuffled retourne une copie mélangée (Fisher-Yates) d'une liste d'options
func shuffled(rng *rand.Rand, options []string) []string {
	out := append([]string(nil), options...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func containsCitation(list []models.Citation, c models.Citation) bool {
	for _, item := range list {
		if item.Text == c.Text {
			return true
		}
	}
	return false
}
