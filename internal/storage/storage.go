package storage

import (
	"database/sql"
	"encoding/json"

	"exophilos/internal/models"

	_ "modernc.org/sqlite"
)

// Storage définit l'interface de persistance
type Storage interface {
	// Analyses
	SaveAnalysis(record *models.AnalysisRecord) error
	GetAnalysis(id string) (*models.AnalysisRecord, error)
	GetAllAnalyses() ([]models.AnalysisRecord, error)

	// Sessions d'exercices
	SaveSession(session *models.ExerciseSession) error
	GetSession(id string) (*models.ExerciseSession, error)
	GetAllSessions() ([]models.ExerciseSession, error)
	DeleteSession(id string) error

	// Recueils de sujets (annales)
	SaveSubjectDocument(doc *models.SubjectDocument) error
	GetSubjectDocument(id string) (*models.SubjectDocument, error)
	GetAllSubjectDocuments() ([]models.SubjectDocument, error)
	DeleteSubjectDocument(id string) error

	Close() error
}

// SQLiteStorage implémente Storage avec SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage crée une nouvelle instance de stockage SQLite
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.initSchema(); err != nil {
		return nil, err
	}

	return storage, nil
}

func (s *SQLiteStorage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		subject TEXT NOT NULL,
		main_theme TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercise_sessions (
		id TEXT PRIMARY KEY,
		subject TEXT NOT NULL,
		analysis TEXT,
		scores TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS subject_documents (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		path TEXT,
		subjects TEXT,
		page_count INTEGER,
		uploaded_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_theme ON analyses(main_theme);
	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON exercise_sessions(updated_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Analyses

func (s *SQLiteStorage) SaveAnalysis(record *models.AnalysisRecord) error {
	result, _ := json.Marshal(record.Result)
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO analyses (id, subject, main_theme, result, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, record.ID, record.Subject, record.MainTheme, string(result), record.CreatedAt)
	return err
}

func (s *SQLiteStorage) GetAnalysis(id string) (*models.AnalysisRecord, error) {
	var record models.AnalysisRecord
	var result string
	err := s.db.QueryRow(`
		SELECT id, subject, main_theme, result, created_at
		FROM analyses WHERE id = ?
	`, id).Scan(&record.ID, &record.Subject, &record.MainTheme, &result, &record.CreatedAt)
	if err != nil {
		return nil, err
	}
	json.Unmarshal([]byte(result), &record.Result)
	return &record, nil
}

func (s *SQLiteStorage) GetAllAnalyses() ([]models.AnalysisRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, subject, main_theme, result, created_at
		FROM analyses ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.AnalysisRecord
	for rows.Next() {
		var record models.AnalysisRecord
		var result string
		if err := rows.Scan(&record.ID, &record.Subject, &record.MainTheme, &result, &record.CreatedAt); err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(result), &record.Result)
		records = append(records, record)
	}
	return records, nil
}

// Sessions d'exercices

func (s *SQLiteStorage) SaveSession(session *models.ExerciseSession) error {
	analysis, _ := json.Marshal(session.Analysis)
	scores, _ := json.Marshal(session.Scores)
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO exercise_sessions (id, subject, analysis, scores, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, session.ID, session.Subject, string(analysis), string(scores), session.CreatedAt, session.UpdatedAt)
	return err
}

func (s *SQLiteStorage) GetSession(id string) (*models.ExerciseSession, error) {
	var session models.ExerciseSession
	var analysis, scores string
	err := s.db.QueryRow(`
		SELECT id, subject, analysis, scores, created_at, updated_at
		FROM exercise_sessions WHERE id = ?
	`, id).Scan(&session.ID, &session.Subject, &analysis, &scores, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, err
	}
	json.Unmarshal([]byte(analysis), &session.Analysis)
	json.Unmarshal([]byte(scores), &session.Scores)
	if session.Scores == nil {
		session.Scores = make(map[string]int)
	}
	return &session, nil
}

func (s *SQLiteStorage) GetAllSessions() ([]models.ExerciseSession, error) {
	rows, err := s.db.Query(`
		SELECT id, subject, analysis, scores, created_at, updated_at
		FROM exercise_sessions ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.ExerciseSession
	for rows.Next() {
		var session models.ExerciseSession
		var analysis, scores string
		if err := rows.Scan(&session.ID, &session.Subject, &analysis, &scores, &session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(analysis), &session.Analysis)
		json.Unmarshal([]byte(scores), &session.Scores)
		if session.Scores == nil {
			session.Scores = make(map[string]int)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (s *SQLiteStorage) DeleteSession(id string) error {
	_, err := s.db.Exec(`DELETE FROM exercise_sessions WHERE id = ?`, id)
	return err
}

// Recueils de sujets

func (s *SQLiteStorage) SaveSubjectDocument(doc *models.SubjectDocument) error {
	subjects, _ := json.Marshal(doc.Subjects)
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO subject_documents (id, name, path, subjects, page_count, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Name, doc.Path, string(subjects), doc.PageCount, doc.UploadedAt)
	return err
}

func (s *SQLiteStorage) GetSubjectDocument(id string) (*models.SubjectDocument, error) {
	var doc models.SubjectDocument
	var subjects string
	err := s.db.QueryRow(`
		SELECT id, name, path, subjects, page_count, uploaded_at
		FROM subject_documents WHERE id = ?
	`, id).Scan(&doc.ID, &doc.Name, &doc.Path, &subjects, &doc.PageCount, &doc.UploadedAt)
	if err != nil {
		return nil, err
	}
	json.Unmarshal([]byte(subjects), &doc.Subjects)
	return &doc, nil
}

func (s *SQLiteStorage) GetAllSubjectDocuments() ([]models.SubjectDocument, error) {
	rows, err := s.db.Query(`
		SELECT id, name, path, subjects, page_count, uploaded_at
		FROM subject_documents ORDER BY uploaded_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.SubjectDocument
	for rows.Next() {
		var doc models.SubjectDocument
		var subjects string
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Path, &subjects, &doc.PageCount, &doc.UploadedAt); err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(subjects), &doc.Subjects)
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *SQLiteStorage) DeleteSubjectDocument(id string) error {
	_, err := s.db.Exec(`DELETE FROM subject_documents WHERE id = ?`, id)
	return err
}
