package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates and configures the Chi router with the web pages,
// the JSON API and static file serving.
func NewRouter(h *Handler, wh *WebHandler, log *zap.Logger, staticPath string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(Recoverer(log))
	r.Use(RequestLogger(log))
	r.Use(MethodOverride)

	// Health check endpoint
	r.Get("/health", h.HealthCheck)

	// Static files
	fileServer := http.FileServer(http.Dir(staticPath))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// Web routes (HTML pages)
	r.Get("/", wh.ListPage)
	r.Post("/flashcards", wh.CreateFlashcard)
	r.Post("/edit-flashcard", wh.PrepareEdit)
	r.Put("/flashcards/{id}", wh.UpdateFlashcard)
	r.Delete("/flashcards/{id}", wh.DeleteFlashcard)
	r.Get("/study", wh.StartStudy)
	r.Get("/study/next", wh.StudyNext)
	r.Get("/study/previous", wh.StudyPrevious)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(JSONContentType)
		r.Use(CORS)

		r.Route("/flashcards", func(r chi.Router) {
			r.Get("/", h.ListFlashcards)
			r.Post("/", h.CreateFlashcard)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetFlashcard)
				r.Put("/", h.UpdateFlashcard)
				r.Delete("/", h.DeleteFlashcard)
			})
		})
	})

	// Any unmatched route gets a fixed plain-text body
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("404 Not Found.\n"))
	})

	return r
}
