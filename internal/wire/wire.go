package wire

import (
	"fmt"
	"net/http"

	"github.com/Dejwwik/Top-movie-website/internal/adaptor"
	"github.com/Dejwwik/Top-movie-website/internal/catalog"
	"github.com/Dejwwik/Top-movie-website/internal/data/repository"
	"github.com/Dejwwik/Top-movie-website/internal/usecase"
	"github.com/Dejwwik/Top-movie-website/pkg/middleware"
	"github.com/Dejwwik/Top-movie-website/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, cat catalog.Searcher, config *utils.Config, logger *zap.Logger) (*App, error) {
	service := usecase.NewService(repo, cat, config, logger)

	renderer, err := adaptor.NewRenderer(logger)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	store := newSessionStore(config.Session)
	handler := adaptor.NewHandler(service, renderer, store, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}, nil
}

func newSessionStore(cfg utils.SessionConfig) sessions.Store {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireMovie(r, handler.Movie)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
