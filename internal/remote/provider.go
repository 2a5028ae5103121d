package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"exophilos/internal/models"
)

// Provider définit l'interface d'un backend d'analyse distant
type Provider interface {
	// Analyze envoie le sujet au backend et retourne son analyse
	Analyze(ctx context.Context, subject string) (*models.AnalysisResult, error)

	// IsAvailable vérifie que le backend est joignable
	IsAvailable(ctx context.Context) bool

	// GetName retourne le nom du provider
	GetName() string
}

// HTTPProvider interroge un backend d'analyse via HTTP
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider crée un provider pour l'URL donnée
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProvider) GetName() string {
	return "HTTP (" + p.baseURL + ")"
}

func (p *HTTPProvider) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (p *HTTPProvider) Analyze(ctx context.Context, subject string) (*models.AnalysisResult, error) {
	reqBody, err := json.Marshal(map[string]string{"subject": subject})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/analyze", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyse distante injoignable : %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("erreur de l'analyse distante (%d) : %s", resp.StatusCode, string(body))
	}

	var result models.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("réponse distante illisible : %w", err)
	}

	if result.MainTheme == "" {
		return nil, fmt.Errorf("réponse distante incomplète : thème principal manquant")
	}

	return &result, nil
}
