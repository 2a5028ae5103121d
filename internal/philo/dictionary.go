package philo

import (
	"strings"

	"exophilos/internal/models"
)

// concepts est le dictionnaire des notions, dans l'ordre de priorité de détection.
// Le premier concept (Liberté) sert de concept par défaut.
var concepts = []models.Concept{
	{
		Name:                "Liberté",
		Definition:          "Capacité d'agir selon sa volonté, sans contrainte extérieure",
		Examples:            []string{"libre arbitre", "autonomie morale", "émancipation politique"},
		RelatedPhilosophers: []string{"Sartre", "Kant", "Rousseau", "Spinoza"},
		Keywords:            []string{"libre", "liberté", "autonomie", "choix", "volonté", "contrainte"},
	},
	{
		Name:                "Vérité",
		Definition:          "Conformité de la pensée avec la réalité ou cohérence logique",
		Examples:            []string{"vérité scientifique", "vérité révélée", "relativisme"},
		RelatedPhilosophers: []string{"Platon", "Descartes", "Nietzsche", "Popper"},
		Keywords:            []string{"vrai", "vérité", "réalité", "connaissance", "certitude", "doute"},
	},
	{
		Name:                "Justice",
		Definition:          "Principe moral fondé sur l'équité et le respect du droit",
		Examples:            []string{"justice distributive", "justice pénale", "égalité"},
		RelatedPhilosophers: []string{"Aristote", "Rawls", "Platon", "Rousseau"},
		Keywords:            []string{"juste", "justice", "équité", "droit", "égalité", "loi"},
	},
	{
		Name:                "Bonheur",
		Definition:          "État de satisfaction complète et durable",
		Examples:            []string{"hédonisme", "eudémonisme", "ataraxie"},
		RelatedPhilosophers: []string{"Aristote", "Épicure", "Mill", "Schopenhauer"},
		Keywords:            []string{"bonheur", "plaisir", "satisfaction", "bien-être", "joie"},
	},
	{
		Name:                "Conscience",
		Definition:          "Connaissance immédiate que l'esprit a de ses états et de ses actes",
		Examples:            []string{"conscience morale", "conscience de soi", "inconscient"},
		RelatedPhilosophers: []string{"Descartes", "Freud", "Sartre", "Bergson"},
		Keywords:            []string{"conscience", "esprit", "pensée", "réflexion", "moral"},
	},
	{
		Name:                "Autrui",
		Definition:          "L'autre personne considérée dans sa différence et sa similitude",
		Examples:            []string{"reconnaissance", "altérité", "empathie"},
		RelatedPhilosophers: []string{"Levinas", "Sartre", "Hegel", "Rousseau"},
		Keywords:            []string{"autrui", "autre", "relation", "reconnaissance", "empathie"},
	},
	{
		Name:                "Devoir",
		Definition:          "Obligation morale qui s'impose à la conscience",
		Examples:            []string{"impératif catégorique", "obligation", "responsabilité"},
		RelatedPhilosophers: []string{"Kant", "Jonas", "Levinas", "Sartre"},
		Keywords:            []string{"devoir", "obligation", "moral", "responsabilité", "impératif"},
	},
	{
		Name:                "Temps",
		Definition:          "Dimension dans laquelle se succèdent les événements",
		Examples:            []string{"durée", "éternité", "temporalité"},
		RelatedPhilosophers: []string{"Bergson", "Heidegger", "Augustin", "Kant"},
		Keywords:            []string{"temps", "durée", "temporel", "éternité", "instant"},
	},
	{
		Name:                "Art",
		Definition:          "Création d'œuvres à visée esthétique ou expressive",
		Examples:            []string{"beauté", "création", "esthétique"},
		RelatedPhilosophers: []string{"Kant", "Hegel", "Benjamin", "Adorno"},
		Keywords:            []string{"art", "beauté", "esthétique", "création", "œuvre"},
	},
	{
		Name:                "Travail",
		Definition:          "Activité humaine de transformation de la nature",
		Examples:            []string{"aliénation", "technique", "production"},
		RelatedPhilosophers: []string{"Marx", "Hegel", "Arendt", "Simmel"},
		Keywords:            []string{"travail", "technique", "production", "aliénation", "activité"},
	},
}

// DefaultConcept retourne le concept par défaut (Liberté), utilisé quand
// aucun mot-clé ne correspond au sujet
func DefaultConcept() models.Concept {
	return copyConcept(concepts[0])
}

// Concepts retourne l'ensemble du dictionnaire, dans l'ordre de détection
func Concepts() []models.Concept {
	out := make([]models.Concept, len(concepts))
	for i, c := range concepts {
		out[i] = copyConcept(c)
	}
	return out
}

// LookupByKeyword détecte les concepts dont au moins un mot-clé apparaît
// dans le texte (insensible à la casse, recherche de sous-chaîne).
// Ne retourne jamais une liste vide : sans correspondance, le concept
// par défaut est retourné seul.
func LookupByKeyword(text string) []models.Concept {
	normalized := strings.ToLower(text)

	var detected []models.Concept
	for _, concept := range concepts {
		for _, keyword := range concept.Keywords {
			if strings.Contains(normalized, strings.ToLower(keyword)) {
				detected = append(detected, copyConcept(concept))
				break
			}
		}
	}

	if len(detected) == 0 {
		detected = append(detected, DefaultConcept())
	}

	return detected
}

// ConceptByName retrouve un concept par son nom (insensible à la casse)
func ConceptByName(name string) (models.Concept, bool) {
	for _, concept := range concepts {
		if strings.EqualFold(concept.Name, name) {
			return copyConcept(concept), true
		}
	}
	return models.Concept{}, false
}

// SearchConcepts recherche dans les noms, définitions et mots-clés
func SearchConcepts(query string) []models.Concept {
	queryLower := strings.ToLower(query)

	var results []models.Concept
	for _, concept := range concepts {
		if strings.Contains(strings.ToLower(concept.Name), queryLower) ||
			strings.Contains(strings.ToLower(concept.Definition), queryLower) {
			results = append(results, copyConcept(concept))
			continue
		}
		for _, keyword := range concept.Keywords {
			if strings.Contains(strings.ToLower(keyword), queryLower) {
				results = append(results, copyConcept(concept))
				break
			}
		}
	}
	return results
}

// copyConcept protège les tables statiques contre les mutations des appelants
func copyConcept(c models.Concept) models.Concept {
	out := c
	out.Examples = append([]string(nil), c.Examples...)
	out.RelatedPhilosophers = append([]string(nil), c.RelatedPhilosophers...)
	out.Keywords = append([]string(nil), c.Keywords...)
	return out
}
