package app

import (
	"fmt"
	"net/http"
	"reachout/internal/app/deps"
	"reachout/internal/app/services"
	getform "reachout/internal/http/handlers/forms/get_form"
	createsubmission "reachout/internal/http/handlers/submissions/create_submission"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Method(http.MethodPost, "/submissions", createsubmission.New(s.ProcessSubmission))
	router.Method(http.MethodGet, "/forms/{slug}", getform.New(s.GetPublicForm))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
