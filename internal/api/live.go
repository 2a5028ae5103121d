package api

import (
	"log"
	"net/http"
	"strings"

	"exophilos/internal/exercises"
)

// LiveExercise fait passer un quiz question par question sur WebSocket.
// Le client envoie d'abord le sujet, puis une réponse par question ; le
// serveur corrige au fil de l'eau et envoie le score final.
func (h *Handler) LiveExercise(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req struct {
		Subject   string `json:"subject"`
		SessionID string `json:"session_id"`
	}

	if err := conn.ReadJSON(&req); err != nil {
		return
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		conn.WriteJSON(map[string]string{"error": "Le sujet ne peut pas être vide"})
		return
	}

	analysis := h.analyzer.Analyze(r.Context(), subject)
	questions := exercises.GenerateQuiz(newRng(), analysis)

	conn.WriteJSON(map[string]interface{}{
		"type":       "start",
		"main_theme": analysis.MainTheme,
		"total":      len(questions),
	})

	correct := 0
	answers := make([]string, 0, len(questions))
	for i, question := range questions {
		// La bonne réponse reste côté serveur
		conn.WriteJSON(map[string]interface{}{
			"type":     "question",
			"index":    i,
			"question": question.Question,
			"options":  question.Options,
		})

		var answer struct {
			Answer string `json:"answer"`
		}
		if err := conn.ReadJSON(&answer); err != nil {
			return
		}
		answers = append(answers, answer.Answer)

		isCorrect := answer.Answer == question.CorrectAnswer
		if isCorrect {
			correct++
		}

		conn.WriteJSON(map[string]interface{}{
			"type":           "feedback",
			"index":          i,
			"correct":        isCorrect,
			"correct_answer": question.CorrectAnswer,
			"explanation":    question.Explanation,
		})
	}

	score := exercises.ScoreQuiz(questions, answers)

	result := map[string]interface{}{
		"type":    "result",
		"score":   score,
		"correct": correct,
		"total":   len(questions),
	}

	if req.SessionID != "" {
		session, err := h.recordSessionScore(req.SessionID, exercises.TypeQuiz, score)
		if err == nil {
			result["session_average"] = session.Average()
		} else {
			log.Printf("⚠️  Quiz en direct : %v", err)
		}
	}

	conn.WriteJSON(result)
}
