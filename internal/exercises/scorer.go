package exercises

import (
	"math"
	"strings"

	"exophilos/internal/models"
)

// Les barèmes reproduisent la grille de correction des exercices : somme
// pondérée de critères indépendants, bornée à [0, 100], arrondie à l'entier.

// ScoreQuiz note un quiz : part de bonnes réponses, comparées à la valeur
// de l'option correcte
func ScoreQuiz(questions []models.QuizQuestion, answers []string) int {
	if len(questions) == 0 {
		return 0
	}

	correct := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return roundScore(float64(correct) / float64(len(questions)) * 100)
}

// ScorePlanBuilder note la reconstruction du plan : part des arguments
// replacés dans leur partie d'origine
func ScorePlanBuilder(data models.PlanBuilderData, userPlan [][]string) int {
	total := 0
	for _, part := range data.CorrectPlan {
		total += len(part)
	}
	if total == 0 {
		return 0
	}

	correct := 0
	for i, part := range data.CorrectPlan {
		if i >= len(userPlan) {
			continue
		}
		for _, argument := range userPlan[i] {
			if contains(part, argument) {
				correct++
			}
		}
	}
	return roundScore(float64(correct) / float64(total) * 100)
}

// ScorePhilosopherMatch note les associations philosophe → concept
func ScorePhilosopherMatch(data models.PhilosopherMatchData, matches map[string]string) int {
	if len(data.Pairs) == 0 {
		return 0
	}

	correct := 0
	for _, pair := range data.Pairs {
		if matches[pair.Philosopher] == pair.Concept {
			correct++
		}
	}
	return roundScore(float64(correct) / float64(len(data.Pairs)) * 100)
}

// ScoreCitation note l'analyse d'une citation : 40 points pour les thèmes
// identifiés, 60 points pour les mots-clés retrouvés dans le commentaire
func ScoreCitation(exercise models.CitationExercise, selectedThemes []string, analysisText string) int {
	score := 0.0

	if len(exercise.Themes) > 0 {
		correctThemes := 0
		for _, theme := range exercise.Themes {
			for _, selected := range selectedThemes {
				if strings.EqualFold(theme, selected) {
					correctThemes++
					break
				}
			}
		}
		score += float64(correctThemes) / float64(len(exercise.Themes)) * 40
	}

	if len(exercise.Keywords) > 0 {
		words := strings.Fields(strings.ToLower(analysisText))
		matches := 0
		for _, keyword := range exercise.Keywords {
			if anyWordContains(words, keyword) {
				matches++
			}
		}
		score += float64(matches) / float64(len(exercise.Keywords)) * 60
	}

	return roundScore(score)
}

// ScoreProblematization note une problématique rédigée : forme interrogative
// (20), éléments attendus (60), longueur appropriée (20)
func ScoreProblematization(subject models.ProblematizationSubject, text string) int {
	score := 0.0

	if strings.Contains(text, "?") {
		score += 20
	}

	if len(subject.ExpectedElements) > 0 {
		words := strings.Fields(strings.ToLower(text))
		matches := 0
		for _, element := range subject.ExpectedElements {
			elementLower := strings.ToLower(element)
			for _, word := range words {
				// Correspondance souple : le mot contient l'élément ou l'inverse
				if strings.Contains(word, elementLower) || strings.Contains(elementLower, word) {
					matches++
					break
				}
			}
		}
		score += float64(matches) / float64(len(subject.ExpectedElements)) * 60
	}

	length := len([]rune(text))
	if length > 50 && length < 200 {
		score += 20
	}

	return roundScore(score)
}

// ScoreArgument note un argument construit : thèse (25), raisonnement par
// mots-clés (35), exemple (25), référence à un philosophe suggéré (15)
func ScoreArgument(scenario models.ArgumentScenario, argument models.Argument) int {
	score := 0.0

	if len([]rune(argument.Thesis)) > 20 {
		score += 25
	}

	if len(scenario.ExpectedKeywords) > 0 {
		words := strings.Fields(strings.ToLower(argument.Reasoning))
		matches := 0
		for _, keyword := range scenario.ExpectedKeywords {
			if anyWordContains(words, keyword) {
				matches++
			}
		}
		score += float64(matches) / float64(len(scenario.ExpectedKeywords)) * 35
	}

	if len([]rune(argument.Example)) > 20 {
		score += 25
	}

	if contains(scenario.SuggestedPhilosophers, argument.Philosopher) {
		score += 15
	}

	return roundScore(score)
}

// AverageScore calcule la moyenne arrondie d'une série de scores de manches
func AverageScore(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return roundScore(float64(sum) / float64(len(scores)))
}

func anyWordContains(words []string, keyword string) bool {
	keywordLower := strings.ToLower(keyword)
	for _, word := range words {
		if strings.Contains(word, keywordLower) {
			return true
		}
	}
	return false
}

func roundScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
