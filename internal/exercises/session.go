package exercises

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"exophilos/internal/models"
)

// Session accumule les scores d'une session d'exercices sur un sujet analysé.
// L'état est explicite et appartient à la session : aucune variable globale,
// chaque session possède ses propres compteurs.
type Session struct {
	ID        string
	Subject   string
	Analysis  *models.AnalysisResult
	CreatedAt time.Time
	UpdatedAt time.Time

	scores map[string]int
}

// NewSession crée une session vierge pour un sujet et son analyse
func NewSession(subject string, analysis *models.AnalysisResult) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Subject:   subject,
		Analysis:  analysis,
		CreatedAt: now,
		UpdatedAt: now,
		scores:    make(map[string]int),
	}
}

// RecordScore enregistre le score final d'un exercice (0-100). Rejouer un
// exercice remplace son score précédent.
func (s *Session) RecordScore(exerciseType string, score int) error {
	if !ValidType(exerciseType) {
		return fmt.Errorf("type d'exercice inconnu : %s", exerciseType)
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	s.scores[exerciseType] = score
	s.UpdatedAt = time.Now()
	return nil
}

// Score retourne le score d'un exercice et son état d'achèvement
func (s *Session) Score(exerciseType string) (int, bool) {
	score, ok := s.scores[exerciseType]
	return score, ok
}

// Completed indique si un exercice a été terminé au moins une fois
func (s *Session) Completed(exerciseType string) bool {
	_, ok := s.scores[exerciseType]
	return ok
}

// CompletedCount compte les exercices terminés
func (s *Session) CompletedCount() int {
	return len(s.scores)
}

// Average calcule la moyenne arrondie des exercices tentés. Les exercices
// jamais tentés n'entrent pas dans la moyenne.
func (s *Session) Average() int {
	if len(s.scores) == 0 {
		return 0
	}
	var scores []int
	for _, t := range Types {
		if score, ok := s.scores[t]; ok {
			scores = append(scores, score)
		}
	}
	return AverageScore(scores)
}

// Reset efface tous les scores. Jamais appelé automatiquement : la remise à
// zéro est toujours une action explicite de l'utilisateur.
func (s *Session) Reset() {
	s.scores = make(map[string]int)
	s.UpdatedAt = time.Now()
}

// Snapshot exporte la session vers le modèle persistable
func (s *Session) Snapshot() *models.ExerciseSession {
	scores := make(map[string]int, len(s.scores))
	for k, v := range s.scores {
		scores[k] = v
	}
	return &models.ExerciseSession{
		ID:        s.ID,
		Subject:   s.Subject,
		Analysis:  s.Analysis,
		Scores:    scores,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SessionFromModel reconstruit une session depuis le modèle persisté
func SessionFromModel(m *models.ExerciseSession) *Session {
	scores := make(map[string]int, len(m.Scores))
	for k, v := range m.Scores {
		if ValidType(k) {
			scores[k] = v
		}
	}
	return &Session{
		ID:        m.ID,
		Subject:   m.Subject,
		Analysis:  m.Analysis,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		scores:    scores,
	}
}
