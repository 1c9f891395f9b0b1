package usecase

import (
	"github.com/Dejwwik/Top-movie-website/internal/catalog"
	"github.com/Dejwwik/Top-movie-website/internal/data/repository"
	"github.com/Dejwwik/Top-movie-website/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie MovieService
}

func NewService(repo *repository.Repository, cat catalog.Searcher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Movie: NewMovieService(repo, cat, log),
	}
}
