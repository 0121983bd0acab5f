package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	dialoguehandler "github.com/kebele-gov/intake-agent/backend/internal/handler/dialogue"
	middlewarePkg "github.com/kebele-gov/intake-agent/backend/internal/middleware"
	dialogueservice "github.com/kebele-gov/intake-agent/backend/internal/service/dialogue"
	"github.com/kebele-gov/intake-agent/backend/pkg/utils"
)

// NewRouter wires HTTP routes to the dialogue engine.
func NewRouter(engine *dialogueservice.Engine, generatedDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	dialogueHandler := dialoguehandler.New(engine, generatedDir)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		dialogueHandler.RegisterRoutes(api)
	})

	return r
}
