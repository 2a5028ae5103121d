package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exophilos/internal/models"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestAnalysisRoundTrip(t *testing.T) {
	store := newTestStorage(t)

	record := &models.AnalysisRecord{
		ID:        "a1",
		Subject:   "La liberté est-elle une illusion ?",
		MainTheme: "Liberté",
		Result: &models.AnalysisResult{
			MainTheme:    "Liberté",
			KeyConcepts:  []string{"Liberté"},
			Problematic:  "Comment comprendre la tension entre liberté et les contraintes qui semblent la limiter ?",
			Philosophers: []string{"Sartre", "Kant"},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.SaveAnalysis(record))

	loaded, err := store.GetAnalysis("a1")
	require.NoError(t, err)
	assert.Equal(t, record.Subject, loaded.Subject)
	assert.Equal(t, record.MainTheme, loaded.MainTheme)
	assert.Equal(t, record.Result.Philosophers, loaded.Result.Philosophers)

	all, err := store.GetAllAnalyses()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetAnalysisNotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetAnalysis("inexistant")
	assert.Error(t, err)
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStorage(t)

	session := &models.ExerciseSession{
		ID:      "s1",
		Subject: "Le travail libère-t-il l'homme ?",
		Analysis: &models.AnalysisResult{
			MainTheme: "Travail",
		},
		Scores:    map[string]int{"quiz": 80, "plan": 60},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.SaveSession(session))

	loaded, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, session.Subject, loaded.Subject)
	assert.Equal(t, "Travail", loaded.Analysis.MainTheme)
	assert.Equal(t, session.Scores, loaded.Scores)
}

func TestSessionNilScoresBecomeEmptyMap(t *testing.T) {
	store := newTestStorage(t)

	session := &models.ExerciseSession{
		ID:        "s2",
		Subject:   "Sujet",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.SaveSession(session))

	loaded, err := store.GetSession("s2")
	require.NoError(t, err)
	assert.NotNil(t, loaded.Scores)
	assert.Empty(t, loaded.Scores)
}

func TestSessionOverwrite(t *testing.T) {
	store := newTestStorage(t)

	session := &models.ExerciseSession{
		ID:        "s3",
		Subject:   "Sujet",
		Scores:    map[string]int{"quiz": 40},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.SaveSession(session))

	session.Scores["quiz"] = 90
	require.NoError(t, store.SaveSession(session))

	loaded, err := store.GetSession("s3")
	require.NoError(t, err)
	assert.Equal(t, 90, loaded.Scores["quiz"])

	all, err := store.GetAllSessions()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteSession(t *testing.T) {
	store := newTestStorage(t)

	session := &models.ExerciseSession{
		ID:        "s4",
		Subject:   "Sujet",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, store.SaveSession(session))
	require.NoError(t, store.DeleteSession("s4"))

	_, err := store.GetSession("s4")
	assert.Error(t, err)
}

func TestSubjectDocumentRoundTrip(t *testing.T) {
	store := newTestStorage(t)

	doc := &models.SubjectDocument{
		ID:   "d1",
		Name: "bac-2024.pdf",
		Path: "/annales/bac-2024.pdf",
		Subjects: []string{
			"La liberté est-elle une illusion ?",
			"Le travail libère-t-il l'homme ?",
		},
		PageCount:  12,
		UploadedAt: time.Now(),
	}
	require.NoError(t, store.SaveSubjectDocument(doc))

	loaded, err := store.GetSubjectDocument("d1")
	require.NoError(t, err)
	assert.Equal(t, doc.Name, loaded.Name)
	assert.Equal(t, doc.Subjects, loaded.Subjects)
	assert.Equal(t, 12, loaded.PageCount)

	require.NoError(t, store.DeleteSubjectDocument("d1"))
	all, err := store.GetAllSubjectDocuments()
	require.NoError(t, err)
	assert.Empty(t, all)
}
