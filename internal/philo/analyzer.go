package philo

import (
	"math/rand"
	"strings"

	"exophilos/internal/models"
)

// dialecticalPlans associe un plan en trois parties au nom (minuscule) du
// thème principal. Les thèmes sans entrée retombent sur le plan "liberté".
var dialecticalPlans = map[string][]models.DialecticalPart{
	"liberté": {
		{
			Title:       "I. La liberté semble illusoire face au déterminisme",
			Description: "L'homme paraît soumis à des déterminismes multiples qui remettent en question sa liberté.",
			KeyArguments: []string{
				"Déterminisme physique et lois de la nature",
				"Conditionnements psychologiques et sociaux",
				"Illusion du libre arbitre selon Spinoza",
			},
		},
		{
			Title:       "II. Pourtant, l'homme peut accéder à l'autonomie",
			Description: "Malgré les contraintes, l'être humain dispose d'une capacité d'autodétermination.",
			KeyArguments: []string{
				"L'autonomie morale selon Kant",
				"La liberté comme pouvoir de dire non (Alain)",
				"La conscience comme condition de la liberté",
			},
		},
		{
			Title:       "III. La liberté est une conquête éthique et politique",
			Description: "La liberté ne se donne pas, elle se construit dans l'action et l'engagement.",
			KeyArguments: []string{
				"La liberté comme projet selon Sartre",
				"Émancipation collective et droits de l'homme",
				"Responsabilité et engagement authentique",
			},
		},
	},
	"vérité": {
		{
			Title:       "I. La vérité semble relative et subjective",
			Description: "Chaque époque et culture semble avoir sa propre conception de la vérité.",
			KeyArguments: []string{
				"Relativisme culturel et historique",
				"Subjectivité de la perception",
				"Critique nietzschéenne de la vérité absolue",
			},
		},
		{
			Title:       "II. Il existe des critères objectifs de vérité",
			Description: "Certaines vérités semblent universelles et indépendantes des opinions.",
			KeyArguments: []string{
				"Vérités mathématiques et logiques",
				"Méthode scientifique et vérification",
				"Évidence rationnelle selon Descartes",
			},
		},
		{
			Title:       "III. La vérité est un idéal régulateur",
			Description: "La vérité guide la recherche sans être définitivement atteinte.",
			KeyArguments: []string{
				"Vérité comme horizon de la connaissance",
				"Falsifiabilité selon Popper",
				"Dialogue et confrontation des perspectives",
			},
		},
	},
}

// examplesByTheme associe des exemples de dissertation au nom du thème.
// Les thèmes sans entrée retombent sur les exemples "Liberté".
var examplesByTheme = map[string][]string{
	"Liberté": {
		"Le mythe de la caverne de Platon (libération de l'ignorance)",
		"Nelson Mandela et la lutte contre l'apartheid",
		"Le dilemme de l'intelligence artificielle et du libre arbitre",
		"L'expérience de Milgram sur la soumission à l'autorité",
		"La résistance française pendant la Seconde Guerre mondiale",
	},
	"Vérité": {
		"L'allégorie de la caverne (Platon)",
		"La révolution copernicienne",
		"Les fake news à l'ère numérique",
		"L'affaire Galilée et l'Église",
		"Les théories du complot et la post-vérité",
	},
	"Justice": {
		"Le procès de Socrate",
		"La Déclaration des droits de l'homme",
		"L'affaire Dreyfus",
		"La justice restauratrice en Afrique du Sud",
		"Les inégalités sociales contemporaines",
	},
	"Bonheur": {
		"Le paradoxe d'Épiménide sur le bonheur",
		"La société de consommation et le bonheur",
		"Les indices de bonheur national brut (Bhoutan)",
		"La méditation et les sagesses orientales",
		"Les réseaux sociaux et le bien-être",
	},
}

// randomSubjects liste les sujets d'entraînement proposés aléatoirement
var randomSubjects = []string{
	"La liberté est-elle une illusion ?",
	"Peut-on dire que la vérité est relative ?",
	"La justice n'est-elle qu'un rapport de force ?",
	"Le bonheur est-il le but de l'existence ?",
	"Sommes-nous responsables de nos actes inconscients ?",
	"Autrui est-il un obstacle à ma liberté ?",
	"Y a-t-il des devoirs envers soi-même ?",
	"Le temps nous appartient-il ?",
	"L'art nous éloigne-t-il de la réalité ?",
	"Le travail libère-t-il l'homme ?",
	"Faut-il avoir peur de la mort ?",
	"La technique nous rend-elle plus libres ?",
	"Peut-on vivre sans croyances ?",
	"L'État limite-t-il la liberté ?",
	"La culture nous humanise-t-elle ?",
}

// Analyze analyse un sujet de dissertation et produit un résultat structuré.
// La fonction est totale : tout sujet non vide produit un résultat complet,
// le concept par défaut servant de filet. La validation du sujet (non vide)
// relève de l'appelant.
func Analyze(subject string) *models.AnalysisResult {
	detected := LookupByKeyword(subject)

	mainConcept := detected[0]

	keyConcepts := make([]string, 0, 3)
	for _, c := range detected {
		keyConcepts = append(keyConcepts, c.Name)
		if len(keyConcepts) == 3 {
			break
		}
	}

	return &models.AnalysisResult{
		MainTheme:       mainConcept.Name,
		KeyConcepts:     keyConcepts,
		Problematic:     generateProblematic(subject, mainConcept),
		DialecticalPlan: DialecticalPlanForTheme(mainConcept.Name),
		Philosophers:    collectPhilosophers(detected),
		Examples:        ExamplesForTheme(mainConcept.Name),
	}
}

// generateProblematic choisit l'un des deux gabarits de problématique selon
// que le sujet est déjà formulé comme une question
func generateProblematic(subject string, concept models.Concept) string {
	name := strings.ToLower(concept.Name)

	if strings.Contains(subject, "?") {
		return "Comment comprendre la tension entre " + name + " et les contraintes qui semblent la limiter ?"
	}
	return "Dans quelle mesure peut-on affirmer que " + name + " constitue un enjeu fondamental de l'existence humaine ?"
}

// DialecticalPlanForTheme retourne une copie du plan dialectique du thème,
// ou du plan par défaut quand le thème n'a pas d'entrée
func DialecticalPlanForTheme(theme string) []models.DialecticalPart {
	plan, ok := dialecticalPlans[strings.ToLower(theme)]
	if !ok {
		plan = dialecticalPlans["liberté"]
	}

	out := make([]models.DialecticalPart, len(plan))
	for i, part := range plan {
		out[i] = models.DialecticalPart{
			Title:        part.Title,
			Description:  part.Description,
			KeyArguments: append([]string(nil), part.KeyArguments...),
		}
	}
	return out
}

// ExamplesForTheme retourne une copie des exemples du thème, ou des exemples
// par défaut quand le thème n'a pas d'entrée
func ExamplesForTheme(theme string) []string {
	examples, ok := examplesByTheme[theme]
	if !ok {
		examples = examplesByTheme["Liberté"]
	}
	return append([]string(nil), examples...)
}

// collectPhilosophers réunit les philosophes des concepts détectés, sans
// doublon et dans l'ordre de détection, limités à 5
func collectPhilosophers(detected []models.Concept) []string {
	seen := make(map[string]bool)
	var philosophers []string

	for _, concept := range detected {
		for _, p := range concept.RelatedPhilosophers {
			if seen[p] {
				continue
			}
			seen[p] = true
			philosophers = append(philosophers, p)
			if len(philosophers) == 5 {
				return philosophers
			}
		}
	}
	return philosophers
}

// RandomSubject tire un sujet d'entraînement au hasard
func RandomSubject(rng *rand.Rand) string {
	return randomSubjects[rng.Intn(len(randomSubjects))]
}

// RandomSubjects retourne une copie de la liste complète des sujets
func RandomSubjects() []string {
	return append([]string(nil), randomSubjects...)
}
