package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"exophilos/internal/config"
	"exophilos/internal/exercises"
	"exophilos/internal/models"
	"exophilos/internal/pdf"
	"exophilos/internal/philo"
	"exophilos/internal/remote"
	"exophilos/internal/storage"
)

// Handler gère tous les endpoints de l'API
type Handler struct {
	store     storage.Storage
	analyzer  *remote.Client
	pdfParser *pdf.Parser
	config    *config.Config
	upgrader  websocket.Upgrader
}

// NewHandler crée un nouveau handler d'API
func NewHandler(store storage.Storage, analyzer *remote.Client, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		analyzer:  analyzer,
		pdfParser: pdf.NewParser(cfg.SubjectsPath),
		config:    cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Helpers de réponse
func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResponse(w http.ResponseWriter, message string, status int) {
	jsonResponse(w, map[string]string{"error": message}, status)
}

// newRng fournit une source aléatoire fraîche par requête
func newRng() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// === Endpoints système ===

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	jsonResponse(w, map[string]interface{}{
		"status":           "ok",
		"remote_available": h.analyzer.IsRemoteAvailable(ctx),
		"remote_provider":  h.analyzer.RemoteName(),
		"timestamp":        time.Now(),
	}, http.StatusOK)
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	analyses, err := h.store.GetAllAnalyses()
	if err != nil {
		log.Printf("⚠️  Impossible de charger les analyses : %v", err)
	}
	sessions, err := h.store.GetAllSessions()
	if err != nil {
		log.Printf("⚠️  Impossible de charger les sessions : %v", err)
	}
	docs, err := h.store.GetAllSubjectDocuments()
	if err != nil {
		log.Printf("⚠️  Impossible de charger les recueils : %v", err)
	}

	jsonResponse(w, map[string]interface{}{
		"analyses_count":   len(analyses),
		"sessions_count":   len(sessions),
		"documents_count":  len(docs),
		"concepts_count":   len(philo.Concepts()),
		"remote_available": h.analyzer.IsRemoteAvailable(ctx),
		"subjects_path":    h.config.SubjectsPath,
	}, http.StatusOK)
}

// === Endpoints d'analyse ===

// AnalyzeSubject analyse un sujet de dissertation. Un sujet vide est refusé
// ici : l'analyseur lui-même ne valide pas ses entrées.
func (h *Handler) AnalyzeSubject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subject string `json:"subject"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "Requête invalide", http.StatusBadRequest)
		return
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		errorResponse(w, "Le sujet ne peut pas être vide", http.StatusBadRequest)
		return
	}

	log.Printf("🔍 Analyse du sujet : %s", subject)
	result := h.analyzer.Analyze(r.Context(), subject)

	record := &models.AnalysisRecord{
		ID:        uuid.NewString(),
		Subject:   subject,
		MainTheme: result.MainTheme,
		Result:    result,
		CreatedAt: time.Now(),
	}
	if err := h.store.SaveAnalysis(record); err != nil {
		log.Printf("⚠️  Impossible d'archiver l'analyse : %v", err)
	}

	jsonResponse(w, result, http.StatusOK)
}

func (h *Handler) RandomSubject(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"subject": philo.RandomSubject(newRng())}, http.StatusOK)
}

func (h *Handler) GetAnalyses(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.GetAllAnalyses()
	if err != nil {
		errorResponse(w, "Erreur au chargement des analyses", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, map[string]interface{}{
		"analyses": records,
		"count":    len(records),
	}, http.StatusOK)
}

// === Endpoints du dictionnaire ===

func (h *Handler) GetConcepts(w http.ResponseWriter, r *http.Request) {
	concepts := philo.Concepts()
	jsonResponse(w, map[string]interface{}{
		"concepts": concepts,
		"count":    len(concepts),
	}, http.StatusOK)
}

func (h *Handler) SearchConcepts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		errorResponse(w, "Paramètre q manquant", http.StatusBadRequest)
		return
	}

	results := philo.SearchConcepts(query)
	jsonResponse(w, map[string]interface{}{
		"concepts": results,
		"count":    len(results),
	}, http.StatusOK)
}

// === Endpoints des citations ===

func (h *Handler) GetCitations(w http.ResponseWriter, r *http.Request) {
	theme := r.URL.Query().Get("theme")
	query := r.URL.Query().Get("q")

	var citations []models.Citation
	switch {
	case theme != "":
		citations = philo.CitationsByTheme(theme)
	case query != "":
		citations = philo.SearchCitations(query)
	default:
		citations = philo.AllCitations()
	}

	jsonResponse(w, map[string]interface{}{
		"citations": citations,
		"themes":    philo.CitationThemes(),
		"count":     len(citations),
	}, http.StatusOK)
}

func (h *Handler) RandomCitation(w http.ResponseWriter, r *http.Request) {
	theme := r.URL.Query().Get("theme")

	citation, ok := philo.RandomCitation(newRng(), theme)
	if !ok {
		errorResponse(w, fmt.Sprintf("Aucune citation pour le thème '%s'", theme), http.StatusNotFound)
		return
	}

	jsonResponse(w, citation, http.StatusOK)
}

// === Endpoints des exercices ===

// GenerateExercise produit les données d'un exercice à partir d'une analyse
// (fournie telle quelle, ou recalculée depuis le sujet)
func (h *Handler) GenerateExercise(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	exerciseType := vars["type"]

	if !exercises.ValidType(exerciseType) {
		errorResponse(w, fmt.Sprintf("Type d'exercice inconnu : %s", exerciseType), http.StatusNotFound)
		return
	}

	var req struct {
		Subject  string                 `json:"subject"`
		Analysis *models.AnalysisResult `json:"analysis"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "Requête invalide", http.StatusBadRequest)
		return
	}

	analysis := req.Analysis
	if analysis == nil {
		subject := strings.TrimSpace(req.Subject)
		if subject == "" {
			errorResponse(w, "Analyse ou sujet requis", http.StatusBadRequest)
			return
		}
		analysis = philo.Analyze(subject)
	}

	rng := newRng()
	var data interface{}
	switch exerciseType {
	case exercises.TypeQuiz:
		data = exercises.GenerateQuiz(rng, analysis)
	case exercises.TypePlanBuilder:
		data = exercises.GeneratePlanBuilder(rng, analysis)
	case exercises.TypePhilosopherMatch:
		data = exercises.GeneratePhilosopherMatch(rng, analysis)
	case exercises.TypeCitation:
		data = exercises.GenerateCitationExercise(analysis)
	case exercises.TypeProblematization:
		data = exercises.GenerateProblematization(analysis)
	case exercises.TypeArgumentBuilder:
		data = exercises.GenerateArgumentBuilder(analysis)
	}

	jsonResponse(w, data, http.StatusOK)
}

// ScoreExercise corrige les réponses d'un exercice. Les exercices à
// plusieurs manches envoient toutes leurs manches ; le score final est la
// moyenne arrondie. Si session_id est fourni, le score est enregistré dans
// la session.
func (h *Handler) ScoreExercise(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	exerciseType := vars["type"]

	var score int
	var roundScores []int
	var sessionID string

	switch exerciseType {
	case exercises.TypeQuiz:
		var req struct {
			SessionID string                `json:"session_id"`
			Questions []models.QuizQuestion `json:"questions"`
			Answers   []string              `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorResponse(w, "Requête invalide", http.StatusBadRequest)
			return
		}
		sessionID = req.SessionID
		score = exercises.ScoreQuiz(req.Questions, req.Answers)

	case exercises.TypePlanBuilder:
		var req struct {
			SessionID string                 `json:"session_id"`
			Data      models.PlanBuilderData `json:"data"`
			UserPlan  [][]string             `json:"userPlan"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorResponse(w, "Requête invalide", http.StatusBadRequest)
			return
		}
		sessionID = req.SessionID
		score = exercises.ScorePlanBuilder(req.Data, req.UserPlan)

	case exercises.TypePhilosopherMatch:
		var req struct {
			SessionID string                      `json:"session_id"`
			Data      models.PhilosopherMatchData `json:"data"`
			Matches   map[string]string           `json:"matches"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorResponse(w, "Requête invalide", http.StatusBadRequest)
			return
		}
		sessionID = req.SessionID
		score = exercises.ScorePhilosopherMatch(req.Data, req.Matches)

	case exercises.TypeCitation:
		var req struct {
			SessionID string `json:"session_id"`
			Rounds    []struct {
				Citation       models.CitationExercise `json:"citation"`
				SelectedThemes []string                `json:"selectedThemes"`
				Analysis       string                  `json:"analysis"`
			} `json:"rounds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorResponse(w, "Requête invalide", http.StatusBadRequest)
			return
		}
		sessionID = req.SessionID
		for _, round := range req.Rounds {
			roundScores = append(roundScores, exercises.ScoreCitation(round.Citation, round.SelectedThemes, round.Analysis))
		}
		score = exercises.AverageScore(roundScores)

	case exercises.TypeProblematization:
		var req struct {
			SessionID string `json:"session_id"`
			Rounds    []struct {
				Subject models.ProblematizationSubject `json:"subject"`
				Text    string                         `json:"text"`
			} `json:"rounds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorResponse(w, "Requête invalide", http.StatusBadRequest)
			return
		}
		sessionID = req.SessionID
		for _, round := range req.Rounds {
			roundScores = append(roundScores, exercises.ScoreProblematization(round.Subject, round.Text))
		}
		score = exercises.AverageScore(roundScores)

	case exercises.TypeArgumentBuilder:
		var req struct {
			SessionID string `json:"session_id"`
			Rounds    []struct {
				Scenario models.ArgumentScenario `json:"scenario"`
				Argument models.Argument         `json:"argument"`
			} `json:"rounds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errorResponse(w, "Requête invalide", http.StatusBadRequest)
			return
		}
		sessionID = req.SessionID
		for _, round := range req.Rounds {
			roundScores = append(roundScores, exercises.ScoreArgument(round.Scenario, round.Argument))
		}
		score = exercises.AverageScore(roundScores)

	default:
		errorResponse(w, fmt.Sprintf("Type d'exercice inconnu : %s", exerciseType), http.StatusNotFound)
		return
	}

	response := map[string]interface{}{
		"score": score,
	}
	if roundScores != nil {
		response["round_scores"] = roundScores
	}

	if sessionID != "" {
		session, err := h.recordSessionScore(sessionID, exerciseType, score)
		if err != nil {
			errorResponse(w, err.Error(), http.StatusNotFound)
			return
		}
		response["session_average"] = session.Average()
		response["completed_count"] = session.CompletedCount()
	}

	jsonResponse(w, response, http.StatusOK)
}

func (h *Handler) recordSessionScore(sessionID, exerciseType string, score int) (*exercises.Session, error) {
	stored, err := h.store.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session introuvable")
	}

	session := exercises.SessionFromModel(stored)
	if err := session.RecordScore(exerciseType, score); err != nil {
		return nil, err
	}

	if err := h.store.SaveSession(session.Snapshot()); err != nil {
		log.Printf("⚠️  Impossible d'enregistrer la session %s : %v", sessionID, err)
	}
	return session, nil
}

// === Endpoints des sessions ===

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subject string `json:"subject"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "Requête invalide", http.StatusBadRequest)
		return
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		errorResponse(w, "Le sujet ne peut pas être vide", http.StatusBadRequest)
		return
	}

	analysis := h.analyzer.Analyze(r.Context(), subject)
	session := exercises.NewSession(subject, analysis)

	if err := h.store.SaveSession(session.Snapshot()); err != nil {
		errorResponse(w, "Erreur à l'enregistrement de la session", http.StatusInternalServerError)
		return
	}

	log.Printf("📝 Nouvelle session d'exercices : %s (%s)", session.ID, analysis.MainTheme)
	jsonResponse(w, sessionView(session), http.StatusCreated)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	stored, err := h.store.GetSession(id)
	if err != nil {
		errorResponse(w, "Session introuvable", http.StatusNotFound)
		return
	}

	jsonResponse(w, sessionView(exercises.SessionFromModel(stored)), http.StatusOK)
}

func (h *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	stored, err := h.store.GetAllSessions()
	if err != nil {
		errorResponse(w, "Erreur au chargement des sessions", http.StatusInternalServerError)
		return
	}

	views := make([]map[string]interface{}, 0, len(stored))
	for i := range stored {
		views = append(views, sessionView(exercises.SessionFromModel(&stored[i])))
	}

	jsonResponse(w, views, http.StatusOK)
}

// ResetSessionScores remet les scores à zéro. Uniquement sur action
// explicite de l'utilisateur.
func (h *Handler) ResetSessionScores(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	stored, err := h.store.GetSession(id)
	if err != nil {
		errorResponse(w, "Session introuvable", http.StatusNotFound)
		return
	}

	session := exercises.SessionFromModel(stored)
	session.Reset()

	if err := h.store.SaveSession(session.Snapshot()); err != nil {
		errorResponse(w, "Erreur à l'enregistrement", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, sessionView(session), http.StatusOK)
}

func sessionView(session *exercises.Session) map[string]interface{} {
	snapshot := session.Snapshot()
	return map[string]interface{}{
		"id":              snapshot.ID,
		"subject":         snapshot.Subject,
		"analysis":        snapshot.Analysis,
		"scores":          snapshot.Scores,
		"completed_count": session.CompletedCount(),
		"average_score":   session.Average(),
		"created_at":      snapshot.CreatedAt,
		"updated_at":      snapshot.UpdatedAt,
	}
}

// === Endpoints des recueils de sujets ===

func (h *Handler) UploadSubjectDocument(w http.ResponseWriter, r *http.Request) {
	// Max 50 Mo
	r.ParseMultipartForm(50 << 20)

	file, header, err := r.FormFile("file")
	if err != nil {
		errorResponse(w, "Aucun fichier trouvé", http.StatusBadRequest)
		return
	}
	defer file.Close()

	doc, err := h.pdfParser.ParseFromReader(file, header.Filename)
	if err != nil {
		errorResponse(w, fmt.Sprintf("Erreur au parsing : %v", err), http.StatusBadRequest)
		return
	}

	if err := h.store.SaveSubjectDocument(doc); err != nil {
		errorResponse(w, "Erreur à l'enregistrement", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, doc, http.StatusCreated)
}

func (h *Handler) ScanSubjectsFolder(w http.ResponseWriter, r *http.Request) {
	path := h.config.SubjectsPath

	var req struct {
		Path string `json:"path"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	if req.Path != "" {
		path = req.Path
	}

	docs, err := h.pdfParser.ParseDirectory(path)
	if err != nil {
		errorResponse(w, fmt.Sprintf("Erreur au scan : %v", err), http.StatusInternalServerError)
		return
	}

	for i := range docs {
		if err := h.store.SaveSubjectDocument(&docs[i]); err != nil {
			log.Printf("⚠️  Impossible d'enregistrer le recueil %s : %v", docs[i].Name, err)
		}
	}

	jsonResponse(w, map[string]interface{}{
		"message":   fmt.Sprintf("%d recueils trouvés et traités", len(docs)),
		"documents": docs,
	}, http.StatusOK)
}

func (h *Handler) GetSubjectDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.GetAllSubjectDocuments()
	if err != nil {
		errorResponse(w, "Erreur au chargement des recueils", http.StatusInternalServerError)
		return
	}

	jsonResponse(w, map[string]interface{}{
		"documents": docs,
		"count":     len(docs),
	}, http.StatusOK)
}
