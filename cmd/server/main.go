// cmd/server/main.go
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/gabelabs/gabe-web/config"
	"github.com/gabelabs/gabe-web/internal/api"
	"github.com/gabelabs/gabe-web/internal/auth"
	"github.com/gabelabs/gabe-web/internal/chat"
	"github.com/gabelabs/gabe-web/internal/database"
	"github.com/gabelabs/gabe-web/internal/llm"
	"github.com/gabelabs/gabe-web/internal/logger"
	"github.com/gabelabs/gabe-web/internal/progress"
	"github.com/gabelabs/gabe-web/internal/services"
	"github.com/gabelabs/gabe-web/internal/websocket"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("Failed to load config")
		os.Exit(1)
	}

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.WithError(err).Error("Failed to initialize database")
		os.Exit(1)
	}
	defer db.Close()

	userService := services.NewUserService(db)
	conversationService := services.NewConversationService(db)

	auth.Init(cfg.Auth.SessionSecret)
	authHandlers := auth.NewHandlers(userService)

	// Progress store: in-memory cache in front of sqlite
	store := progress.NewDualStore(progress.NewSQLStore(db))
	engine := progress.NewEngine(store)

	llmClient, err := llm.NewLLMClient(cfg)
	if err != nil {
		log.WithError(err).Error("Failed to create LLM client")
		os.Exit(1)
	}
	responder := chat.NewResponder(llmClient)

	r := mux.NewRouter()

	// Auth routes
	r.HandleFunc("/api/v1/auth/register", authHandlers.Register).Methods("POST")
	r.HandleFunc("/api/v1/auth/login", authHandlers.Login).Methods("POST")
	r.HandleFunc("/api/v1/auth/logout", authHandlers.Logout).Methods("POST")
	r.HandleFunc("/api/v1/auth/me", authHandlers.Me).Methods("GET")

	// WebSocket milestone feed
	hub := websocket.RegisterRoutes(r)

	// API routes
	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	gabeHandler := api.NewGabeHandler(engine, responder, userService, conversationService, hub)
	gabeHandler.RegisterRoutes(apiRouter)

	if cfg.Tts.Enabled {
		api.RegisterTTSRoutes(apiRouter)
	}

	// Static frontend
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./web/static/"))))
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./web/templates/index.html")
	}).Methods("GET")

	// CORS setup for development
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := cfg.Server.Port
	log.Info(fmt.Sprintf("GABE server starting on port %s", port))
	log.Info(fmt.Sprintf("Database: %s", cfg.Database.Path))
	log.Info(fmt.Sprintf("LLM provider: %s", cfg.LLM.Provider))

	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.WithError(err).Error("Failed to start server")
		os.Exit(1)
	}
}
