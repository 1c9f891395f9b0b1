package adaptor

import (
	"github.com/Dejwwik/Top-movie-website/internal/usecase"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type Handler struct {
	Movie *MovieHandler
}

func NewHandler(service *usecase.Service, renderer *Renderer, store sessions.Store, log *zap.Logger) *Handler {
	return &Handler{
		Movie: NewMovieHandler(service.Movie, renderer, store, log),
	}
}
