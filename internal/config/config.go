package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config contient tous les réglages de l'application
type Config struct {
	// Réglages serveur
	ServerPort string `json:"server_port"`

	// Chemins
	SubjectsPath string `json:"subjects_path"`
	DatabasePath string `json:"database_path"`

	// Analyse distante (optionnelle, repli local en cas d'échec)
	RemoteAnalyzerURL    string `json:"remote_analyzer_url"`
	RemoteTimeoutSeconds int    `json:"remote_timeout_seconds"`
}

// Default retourne la configuration par défaut
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		ServerPort:           "8080",
		SubjectsPath:         filepath.Join(homeDir, "Annales"),
		DatabasePath:         "exophilos.db",
		RemoteAnalyzerURL:    "",
		RemoteTimeoutSeconds: 10,
	}
}

// Load charge la configuration depuis un fichier
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save enregistre la configuration dans un fichier
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
