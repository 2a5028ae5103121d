package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter construit le routeur HTTP avec tous les endpoints
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()

	// Version de l'API
	api := r.PathPrefix("/api/v1").Subrouter()

	// Système
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")
	api.HandleFunc("/status", h.GetStatus).Methods("GET")

	// Analyse
	api.HandleFunc("/analyze", h.AnalyzeSubject).Methods("POST")
	api.HandleFunc("/analyses", h.GetAnalyses).Methods("GET")
	api.HandleFunc("/random-subject", h.RandomSubject).Methods("GET")

	// Dictionnaire des concepts
	api.HandleFunc("/concepts", h.GetConcepts).Methods("GET")
	api.HandleFunc("/concepts/search", h.SearchConcepts).Methods("GET")

	// Citations
	api.HandleFunc("/citations", h.GetCitations).Methods("GET")
	api.HandleFunc("/citations/random", h.RandomCitation).Methods("GET")

	// Exercices
	api.HandleFunc("/exercises/live", h.LiveExercise)
	api.HandleFunc("/exercises/{type}", h.GenerateExercise).Methods("POST")
	api.HandleFunc("/exercises/{type}/score", h.ScoreExercise).Methods("POST")

	// Sessions d'exercices
	api.HandleFunc("/sessions", h.GetSessions).Methods("GET")
	api.HandleFunc("/sessions", h.CreateSession).Methods("POST")
	api.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}/scores", h.ResetSessionScores).Methods("DELETE")

	// Recueils de sujets (annales)
	api.HandleFunc("/subjects", h.GetSubjectDocuments).Methods("GET")
	api.HandleFunc("/subjects/upload", h.UploadSubjectDocument).Methods("POST")
	api.HandleFunc("/subjects/scan", h.ScanSubjectsFolder).Methods("POST")

	// CORS pour le développement local
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}
