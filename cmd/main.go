package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/linyuchieh/line-psy-bridge/internal/advice"
	"github.com/linyuchieh/line-psy-bridge/internal/ai"
	"github.com/linyuchieh/line-psy-bridge/internal/config"
	"github.com/linyuchieh/line-psy-bridge/internal/line"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// --- Gemini ---
	var aiClient ai.AI
	gemini, err := ai.NewGeminiClient(context.Background(), cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("[main] gemini client init failed, analysis disabled: %v", err)
		aiClient = ai.Unavailable{}
	} else {
		aiClient = gemini
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Line-Signature"},
	}))

	// --- LINE module wiring ---
	outbound := line.NewLineOutbound(cfg.LineChannelToken)
	generator := advice.NewGenerator(aiClient)
	lineService := line.NewService(generator, outbound)
	lineHandler := line.NewHandler(lineService, cfg.LineChannelSecret)

	line.RegisterRoutes(r, lineHandler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
