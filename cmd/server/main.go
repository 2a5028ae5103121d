package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exophilos/internal/api"
	"exophilos/internal/config"
	"exophilos/internal/remote"
	"exophilos/internal/storage"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("")

	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Println("🦉 EXOPHILOS - Entraînement à la dissertation de philosophie")
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	// Flags de ligne de commande
	configPath := flag.String("config", "config.json", "Chemin du fichier de configuration")
	port := flag.String("port", "", "Port du serveur (prioritaire sur la configuration)")
	flag.Parse()

	// Chargement de la configuration
	log.Println("📋 Chargement de la configuration...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("⚠️  Configuration illisible, valeurs par défaut utilisées : %v", err)
		cfg = config.Default()
	}
	if *port != "" {
		cfg.ServerPort = *port
	}
	log.Printf("   ✓ Configuration chargée")

	// Initialisation de la base
	log.Println("💾 Initialisation de la base de données...")
	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("❌ Erreur à l'initialisation de la base : %v", err)
	}
	defer store.Close()
	log.Printf("   ✓ Base de données : %s", cfg.DatabasePath)

	// Analyseur : distant si configuré, locale sinon
	log.Println("🧠 Initialisation de l'analyseur...")
	var provider remote.Provider
	if cfg.RemoteAnalyzerURL != "" {
		provider = remote.NewHTTPProvider(cfg.RemoteAnalyzerURL, time.Duration(cfg.RemoteTimeoutSeconds)*time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if provider.IsAvailable(ctx) {
			log.Printf("   ✓ Analyseur distant joignable : %s", cfg.RemoteAnalyzerURL)
		} else {
			log.Printf("   ⚠️  Analyseur distant INJOIGNABLE sur %s", cfg.RemoteAnalyzerURL)
			log.Println("      L'analyse locale prendra le relais")
		}
		cancel()
	} else {
		log.Println("   ✓ Analyse locale (aucun analyseur distant configuré)")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	analyzer := remote.NewClient(provider, rng)

	// Handler et routeur
	handler := api.NewHandler(store, analyzer, cfg)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	// Arrêt propre
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("")
		log.Println("⏹️  Arrêt du serveur...")
		server.Close()
	}()

	log.Println("")
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Printf("✅ Serveur lancé sur : http://localhost:%s", cfg.ServerPort)
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Println("📚 Dossier des annales :", cfg.SubjectsPath)
	log.Println("💡 Ctrl+C pour quitter")
	log.Println("")

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Erreur serveur : %v", err)
	}
}
