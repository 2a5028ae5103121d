package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exophilos/internal/config"
	"exophilos/internal/models"
	"exophilos/internal/remote"
	"exophilos/internal/storage"
)

func newTestRouter(t *testing.T) http.Handler {
	router, _ := newTestRouterWithStore(t)
	return router
}

func newTestRouterWithStore(t *testing.T) (http.Handler, *storage.SQLiteStorage) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := config.Default()
	cfg.SubjectsPath = t.TempDir()

	analyzer := remote.NewClient(nil, rand.New(rand.NewSource(1)))
	return NewRouter(NewHandler(store, analyzer, cfg)), store
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/api/v1/health", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["remote_available"])
}

func TestGetStatus(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/api/v1/status", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(0), body["analyses_count"])
	assert.Equal(t, float64(0), body["sessions_count"])
	assert.Equal(t, float64(10), body["concepts_count"])
}

func TestGetStatusWithBrokenStore(t *testing.T) {
	router, store := newTestRouterWithStore(t)
	require.NoError(t, store.Close())

	// Base injoignable : l'état répond quand même, avec des compteurs à zéro
	recorder := doRequest(t, router, "GET", "/api/v1/status", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(0), body["analyses_count"])
	assert.Equal(t, float64(0), body["documents_count"])
}

func TestScanSubjectsFolderEmpty(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/api/v1/subjects/scan", map[string]string{})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "0 recueils trouvés et traités", decodeBody(t, recorder)["message"])
}

func TestAnalyzeSubject(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/api/v1/analyze", map[string]string{
		"subject": "La liberté est-elle une illusion ?",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Liberté", body["mainTheme"])
	assert.NotEmpty(t, body["problematic"])
}

func TestAnalyzeSubjectRejectsBlank(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/api/v1/analyze", map[string]string{"subject": "   "})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, router, "POST", "/api/v1/analyze", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRandomSubject(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/api/v1/random-subject", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, decodeBody(t, recorder)["subject"])
}

func TestGetConcepts(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/api/v1/concepts", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(10), decodeBody(t, recorder)["count"])
}

func TestSearchConcepts(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/api/v1/concepts/search?q=équité", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(1), decodeBody(t, recorder)["count"])

	recorder = doRequest(t, router, "GET", "/api/v1/concepts/search", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCitations(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/api/v1/citations?theme=Liberté", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(3), decodeBody(t, recorder)["count"])

	recorder = doRequest(t, router, "GET", "/api/v1/citations", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(45), decodeBody(t, recorder)["count"])
}

func TestRandomCitation(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/api/v1/citations/random?theme=Vérité", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Vérité", decodeBody(t, recorder)["theme"])

	recorder = doRequest(t, router, "GET", "/api/v1/citations/random?theme=Inconnu", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGenerateExercise(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/api/v1/exercises/quiz", map[string]string{
		"subject": "La liberté est-elle une illusion ?",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var questions []models.QuizQuestion
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &questions))
	assert.Len(t, questions, 5)
	for _, q := range questions {
		assert.Contains(t, q.Options, q.CorrectAnswer)
	}
}

func TestGenerateExerciseValidation(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/api/v1/exercises/dissertation", map[string]string{"subject": "Sujet"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(t, router, "POST", "/api/v1/exercises/quiz", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestScoreQuizWithoutSession(t *testing.T) {
	router := newTestRouter(t)

	questions := []models.QuizQuestion{
		{Question: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
		{Question: "Q2", Options: []string{"C", "D"}, CorrectAnswer: "D"},
	}

	recorder := doRequest(t, router, "POST", "/api/v1/exercises/quiz/score", map[string]interface{}{
		"questions": questions,
		"answers":   []string{"A", "D"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(100), body["score"])
	assert.NotContains(t, body, "session_average")
}

func TestScoreMultiRoundExercise(t *testing.T) {
	router := newTestRouter(t)

	subject := models.ProblematizationSubject{
		ExpectedElements: []string{"liberté", "une illusion", "mesure", "comment", "pourquoi"},
	}

	recorder := doRequest(t, router, "POST", "/api/v1/exercises/problematization/score", map[string]interface{}{
		"rounds": []map[string]interface{}{
			{
				"subject": subject,
				"text":    "Comment penser la liberté ? Dans quelle mesure est-elle une illusion et pourquoi la questionner ?",
			},
			{
				"subject": subject,
				"text":    "Bref.",
			},
		},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(50), body["score"])
	assert.Equal(t, []interface{}{float64(100), float64(0)}, body["round_scores"])
}

func TestSessionLifecycle(t *testing.T) {
	router := newTestRouter(t)

	// Création
	recorder := doRequest(t, router, "POST", "/api/v1/sessions", map[string]string{
		"subject": "La liberté est-elle une illusion ?",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	created := decodeBody(t, recorder)
	sessionID, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, float64(0), created["completed_count"])

	// Un score enregistré dans la session
	questions := []models.QuizQuestion{
		{Question: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
	}
	recorder = doRequest(t, router, "POST", "/api/v1/exercises/quiz/score", map[string]interface{}{
		"session_id": sessionID,
		"questions":  questions,
		"answers":    []string{"A"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(100), body["score"])
	assert.Equal(t, float64(100), body["session_average"])
	assert.Equal(t, float64(1), body["completed_count"])

	// Lecture de la session
	recorder = doRequest(t, router, "GET", "/api/v1/sessions/"+sessionID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	body = decodeBody(t, recorder)
	scores, ok := body["scores"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(100), scores["quiz"])

	// Remise à zéro explicite
	recorder = doRequest(t, router, "DELETE", "/api/v1/sessions/"+sessionID+"/scores", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	body = decodeBody(t, recorder)
	assert.Equal(t, float64(0), body["completed_count"])

	// Liste des sessions
	recorder = doRequest(t, router, "GET", "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var sessions []map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &sessions))
	assert.Len(t, sessions, 1)
}

func TestScoreWithUnknownSession(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/api/v1/exercises/quiz/score", map[string]interface{}{
		"session_id": "inexistant",
		"questions":  []models.QuizQuestion{{Question: "Q", Options: []string{"A"}, CorrectAnswer: "A"}},
		"answers":    []string{"A"},
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateSessionRejectsBlankSubject(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "POST", "/api/v1/sessions", map[string]string{"subject": ""})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetSubjectDocumentsEmpty(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, "GET", "/api/v1/subjects", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(0), decodeBody(t, recorder)["count"])
}
