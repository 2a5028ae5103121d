package remote

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exophilos/internal/models"
)

func newAnalyzerServer(t *testing.T, result *models.AnalysisResult) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Subject string `json:"subject"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Subject == "" {
			http.Error(w, "sujet manquant", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(result)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestHTTPProviderAnalyze(t *testing.T) {
	server := newAnalyzerServer(t, &models.AnalysisResult{
		MainTheme:   "Liberté",
		KeyConcepts: []string{"Liberté"},
	})

	provider := NewHTTPProvider(server.URL, 5*time.Second)

	assert.True(t, provider.IsAvailable(context.Background()))

	result, err := provider.Analyze(context.Background(), "La liberté est-elle une illusion ?")
	require.NoError(t, err)
	assert.Equal(t, "Liberté", result.MainTheme)
}

func TestHTTPProviderRejectsIncompleteResponse(t *testing.T) {
	server := newAnalyzerServer(t, &models.AnalysisResult{})
	provider := NewHTTPProvider(server.URL, 5*time.Second)

	_, err := provider.Analyze(context.Background(), "Sujet")
	assert.Error(t, err)
}

func TestHTTPProviderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "panne", http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, 5*time.Second)

	_, err := provider.Analyze(context.Background(), "Sujet")
	assert.Error(t, err)
	assert.False(t, provider.IsAvailable(context.Background()))
}

func TestClientFillsSimulatedConfidence(t *testing.T) {
	server := newAnalyzerServer(t, &models.AnalysisResult{MainTheme: "Vérité"})
	provider := NewHTTPProvider(server.URL, 5*time.Second)
	client := NewClient(provider, rand.New(rand.NewSource(9)))

	result := client.Analyze(context.Background(), "Peut-on dire que la vérité est relative ?")

	assert.Equal(t, "Vérité", result.MainTheme)
	assert.GreaterOrEqual(t, result.Confidence, 0.85)
	assert.LessOrEqual(t, result.Confidence, 0.95)
}

func TestClientConcurrentAnalyze(t *testing.T) {
	server := newAnalyzerServer(t, &models.AnalysisResult{MainTheme: "Liberté"})
	provider := NewHTTPProvider(server.URL, 5*time.Second)
	client := NewClient(provider, rand.New(rand.NewSource(9)))

	// Plusieurs requêtes simultanées remplissent la confiance simulée
	// depuis le même client
	var wg sync.WaitGroup
	results := make([]*models.AnalysisResult, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = client.Analyze(context.Background(), "La liberté est-elle une illusion ?")
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		require.NotNil(t, result)
		assert.Equal(t, "Liberté", result.MainTheme)
		assert.GreaterOrEqual(t, result.Confidence, 0.85)
		assert.LessOrEqual(t, result.Confidence, 0.95)
	}
}

func TestClientFallsBackToLocalAnalysis(t *testing.T) {
	// Serveur aussitôt fermé : l'analyse distante échoue
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	provider := NewHTTPProvider(server.URL, time.Second)
	client := NewClient(provider, rand.New(rand.NewSource(9)))

	result := client.Analyze(context.Background(), "La liberté est-elle une illusion ?")

	assert.Equal(t, "Liberté", result.MainTheme)
	assert.Zero(t, result.Confidence)
	assert.False(t, client.IsRemoteAvailable(context.Background()))
}

func TestClientWithoutProvider(t *testing.T) {
	client := NewClient(nil, rand.New(rand.NewSource(9)))

	result := client.Analyze(context.Background(), "Qu'est-ce que le bonheur ?")

	assert.Equal(t, "Bonheur", result.MainTheme)
	assert.Zero(t, result.Confidence)
	assert.False(t, client.IsRemoteAvailable(context.Background()))
	assert.Equal(t, "aucun (analyse locale)", client.RemoteName())
}
