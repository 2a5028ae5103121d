package models

import "time"

// Concept représente une notion philosophique du dictionnaire
type Concept struct {
	Name                string   `json:"name"`
	Definition          string   `json:"definition"`
	Examples            []string `json:"examples"`
	RelatedPhilosophers []string `json:"relatedPhilosophers"`
	Keywords            []string `json:"keywords"`
}

// DialecticalPart représente une partie du plan dialectique (thèse, antithèse ou synthèse)
type DialecticalPart struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	KeyArguments []string `json:"keyArguments"`
}

// AnalysisResult représente le résultat complet d'une analyse de sujet
type AnalysisResult struct {
	MainTheme       string            `json:"mainTheme"`
	KeyConcepts     []string          `json:"keyConcepts"`
	Problematic     string            `json:"problematic"`
	DialecticalPlan []DialecticalPart `json:"dialecticalPlan"`
	Philosophers    []string          `json:"philosophers"`
	Examples        []string          `json:"examples"`
	// Confidence n'est renseigné que par l'analyse distante
	Confidence float64 `json:"confidence,omitempty"`
}

// Citation représente une citation philosophique
type Citation struct {
	Text        string `json:"text"`
	Author      string `json:"author"`
	Theme       string `json:"theme"`
	Context     string `json:"context,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// QuizQuestion représente une question à choix multiples.
// CorrectAnswer est la valeur de la bonne option, jamais son index.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// PlanBuilderData contient les données de l'exercice de construction de plan
type PlanBuilderData struct {
	CorrectPlan       [][]string `json:"correctPlan"`
	ShuffledArguments []string   `json:"shuffledArguments"`
}

// PhilosopherPair associe un philosophe à son concept
type PhilosopherPair struct {
	Philosopher string `json:"philosopher"`
	Concept     string `json:"concept"`
	Explanation string `json:"explanation"`
}

// PhilosopherMatchData contient les données de l'exercice d'association
type PhilosopherMatchData struct {
	Pairs        []PhilosopherPair `json:"pairs"`
	Philosophers []string          `json:"philosophers"`
	Concepts     []string          `json:"concepts"`
}

// CitationExercise représente une citation à analyser avec ses attendus
type CitationExercise struct {
	Citation Citation `json:"citation"`
	Themes   []string `json:"themes"`
	Keywords []string `json:"keywords"`
}

// CitationExerciseData contient les données de l'exercice d'analyse de citation
type CitationExerciseData struct {
	Citations       []CitationExercise `json:"citations"`
	AvailableThemes []string           `json:"availableThemes"`
}

// ProblematizationSubject représente un sujet d'entraînement à la problématisation
type ProblematizationSubject struct {
	Subject             string   `json:"subject"`
	ExpectedProblematic string   `json:"expectedProblematic"`
	Hints               []string `json:"hints"`
	ExpectedElements    []string `json:"expectedElements"`
}

// ProblematizationExerciseData contient les données de l'exercice de problématisation
type ProblematizationExerciseData struct {
	Subjects []ProblematizationSubject `json:"subjects"`
}

// ArgumentScenario représente un scénario d'argumentation guidée
type ArgumentScenario struct {
	Context               string   `json:"context"`
	Position              string   `json:"position"`
	ExpectedKeywords      []string `json:"expectedKeywords"`
	SuggestedPhilosophers []string `json:"suggestedPhilosophers"`
	Feedback              string   `json:"feedback"`
}

// ArgumentBuilderExerciseData contient les données de l'exercice d'argumentation
type ArgumentBuilderExerciseData struct {
	Scenarios []ArgumentScenario `json:"scenarios"`
}

// Argument représente la réponse de l'élève à un scénario d'argumentation
type Argument struct {
	Thesis      string `json:"thesis"`
	Reasoning   string `json:"reasoning"`
	Example     string `json:"example"`
	Philosopher string `json:"philosopher"`
}

// ExerciseSession représente une session d'exercices sur un sujet analysé
type ExerciseSession struct {
	ID        string          `json:"id"`
	Subject   string          `json:"subject"`
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
	Scores    map[string]int  `json:"scores"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AnalysisRecord représente une analyse archivée
type AnalysisRecord struct {
	ID        string          `json:"id"`
	Subject   string          `json:"subject"`
	MainTheme string          `json:"main_theme"`
	Result    *AnalysisResult `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// SubjectDocument représente un recueil de sujets importé (annales PDF)
type SubjectDocument struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Path       string    `json:"path,omitempty"`
	Subjects   []string  `json:"subjects"`
	PageCount  int       `json:"page_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}
