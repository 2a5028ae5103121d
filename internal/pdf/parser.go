package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"exophilos/internal/models"
)

// Parser extrait les sujets de dissertation de recueils PDF (annales)
type Parser struct {
	subjectsPath string
}

// NewParser crée un nouveau parser de recueils
func NewParser(subjectsPath string) *Parser {
	return &Parser{subjectsPath: subjectsPath}
}

// ParseFile parse un recueil PDF et en extrait les sujets
func (p *Parser) ParseFile(filePath string) (*models.SubjectDocument, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("erreur à l'ouverture du PDF : %w", err)
	}
	defer f.Close()

	content, totalPages := extractText(r)

	doc := &models.SubjectDocument{
		ID:         uuid.NewString(),
		Name:       filepath.Base(filePath),
		Path:       filePath,
		Subjects:   ExtractSubjects(content),
		PageCount:  totalPages,
		UploadedAt: time.Now(),
	}

	return doc, nil
}

// ParseDirectory parse tous les recueils PDF d'un dossier
func (p *Parser) ParseDirectory(dirPath string) ([]models.SubjectDocument, error) {
	var documents []models.SubjectDocument

	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.HasSuffix(strings.ToLower(info.Name()), ".pdf") {
			return nil
		}

		doc, err := p.ParseFile(path)
		if err != nil {
			// Fichier illisible : on continue avec les autres
			fmt.Printf("Attention : impossible de parser %s : %v\n", path, err)
			return nil
		}

		documents = append(documents, *doc)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return documents, nil
}

// ParseFromReader parse un PDF depuis un io.Reader (pour les uploads)
func (p *Parser) ParseFromReader(reader io.Reader, filename string) (*models.SubjectDocument, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("erreur à la lecture du PDF : %w", err)
	}

	content, totalPages := extractText(r)

	doc := &models.SubjectDocument{
		ID:         uuid.NewString(),
		Name:       filename,
		Subjects:   ExtractSubjects(content),
		PageCount:  totalPages,
		UploadedAt: time.Now(),
	}

	return doc, nil
}

func extractText(r *pdf.Reader) (string, int) {
	var content strings.Builder
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		content.WriteString(text)
		content.WriteString("\n")
	}

	return content.String(), totalPages
}

// ExtractSubjects repère les sujets de dissertation dans le texte brut d'un
// recueil. Heuristique : une ligne courte formulée comme une question, ou
// précédée d'une mention "Sujet".
func ExtractSubjects(content string) []string {
	lines := strings.Split(content, "\n")
	seen := make(map[string]bool)
	var subjects []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// "Sujet 1 : La liberté est-elle une illusion ?"
		if idx := subjectLabelIndex(trimmed); idx >= 0 {
			trimmed = strings.TrimSpace(trimmed[idx:])
		}

		if !isSubjectLine(trimmed) {
			continue
		}

		if !seen[trimmed] {
			seen[trimmed] = true
			subjects = append(subjects, trimmed)
		}
	}

	return subjects
}

func isSubjectLine(line string) bool {
	runes := []rune(line)
	if len(runes) < 10 || len(runes) > 160 {
		return false
	}
	return strings.HasSuffix(line, "?")
}

func subjectLabelIndex(line string) int {
	lower := strings.ToLower(line)
	if !strings.HasPrefix(lower, "sujet") {
		return -1
	}
	if idx := strings.Index(line, ":"); idx >= 0 && idx < len(line)-1 {
		return idx + 1
	}
	return -1
}
