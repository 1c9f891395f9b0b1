package repository

import (
	"github.com/Dejwwik/Top-movie-website/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie MovieRepository
}

func NewRepository(db database.SQLIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(db, log),
	}
}
