package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dejwwik/Top-movie-website/internal/catalog"
	"github.com/Dejwwik/Top-movie-website/internal/data/entity"
	"github.com/Dejwwik/Top-movie-website/internal/data/repository"
	"github.com/Dejwwik/Top-movie-website/internal/dto/response"

	"go.uber.org/zap"
)

// ErrNotFound marks operations on a movie id that is not in the store.
var ErrNotFound = errors.New("movie not found")

// ErrCatalog marks failures of the external catalog API. Handlers map it to
// a 502 page instead of crashing the request.
var ErrCatalog = errors.New("catalog unavailable")

// ImportOutcome reports whether an import stored a new record or hit an
// already imported movie.
type ImportOutcome int

const (
	ImportedNew ImportOutcome = iota
	AlreadyAdded
)

type MovieService interface {
	// RankedMovies lists all movies by rating descending with 1-based ranks
	// assigned and persisted. Storage failures degrade to an empty list.
	RankedMovies(ctx context.Context) []response.MovieView

	// Search queries the catalog for candidates matching the title.
	Search(ctx context.Context, title string) ([]response.CandidateView, error)

	// Import fetches full metadata for the catalog id and stores a new
	// unrated record. A duplicate id or title reports AlreadyAdded.
	Import(ctx context.Context, catalogID int64) (ImportOutcome, error)

	// GetMovie returns the stored record or ErrNotFound.
	GetMovie(ctx context.Context, id int64) (*entity.Movie, error)

	// Rate persists rating and review for an existing record.
	Rate(ctx context.Context, id int64, rating float64, review string) error

	// Remove deletes the record or returns ErrNotFound.
	Remove(ctx context.Context, id int64) error
}

type movieService struct {
	repo    *repository.Repository
	catalog catalog.Searcher
	log     *zap.Logger
}

func NewMovieService(repo *repository.Repository, cat catalog.Searcher, log *zap.Logger) MovieService {
	return &movieService{
		repo:    repo,
		catalog: cat,
		log:     log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) RankedMovies(ctx context.Context) []response.MovieView {
	movies, err := s.repo.Movie.ListByRatingDesc(ctx)
	if err != nil {
		// Degrade to an empty page rather than a server error.
		s.log.Error("Failed to list movies, rendering empty list", zap.Error(err))
		return nil
	}

	assignRanks(movies)

	if err := s.repo.Movie.UpdateRankings(ctx, movies); err != nil {
		// Ranking is derivable state; the page still renders.
		s.log.Warn("Failed to persist rankings", zap.Error(err))
	}

	views := make([]response.MovieView, len(movies))
	for i, movie := range movies {
		views[i] = response.MovieToView(movie)
	}

	s.log.Debug("Movies ranked", zap.Int("count", len(views)))

	return views
}

// assignRanks gives each movie rank = position + 1. The slice is already
// sorted by rating descending with ties broken by id ascending.
func assignRanks(movies []*entity.Movie) {
	for i, movie := range movies {
		rank := i + 1
		movie.Ranking = &rank
	}
}

func (s *movieService) Search(ctx context.Context, title string) ([]response.CandidateView, error) {
	results, err := s.catalog.SearchMovie(ctx, title)
	if err != nil {
		s.log.Error("Catalog search failed",
			zap.Error(err),
			zap.String("query", title),
		)
		return nil, fmt.Errorf("%w: %v", ErrCatalog, err)
	}

	candidates := make([]response.CandidateView, len(results))
	for i, result := range results {
		candidates[i] = response.ResultToCandidate(result)
	}

	s.log.Info("Catalog searched",
		zap.String("query", title),
		zap.Int("results", len(candidates)),
	)

	return candidates, nil
}

func (s *movieService) Import(ctx context.Context, catalogID int64) (ImportOutcome, error) {
	details, err := s.catalog.MovieDetails(ctx, catalogID)
	if err != nil {
		s.log.Error("Catalog detail fetch failed",
			zap.Error(err),
			zap.Int64("catalog_id", catalogID),
		)
		return 0, fmt.Errorf("%w: %v", ErrCatalog, err)
	}

	movie := &entity.Movie{
		ID:          details.ID,
		Title:       details.OriginalTitle,
		Year:        releaseYear(details.ReleaseDate, s.log),
		Description: details.Overview,
		ImageURL:    s.catalog.PosterURL(details.PosterPath),
	}

	result, err := s.repo.Movie.Insert(ctx, movie)
	if err != nil {
		return 0, fmt.Errorf("import movie: %w", err)
	}

	if result == repository.InsertDuplicate {
		s.log.Warn("Movie already imported",
			zap.Int64("movie_id", movie.ID),
			zap.String("title", movie.Title),
		)
		return AlreadyAdded, nil
	}

	s.log.Info("Movie imported",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int("year", movie.Year),
	)

	return ImportedNew, nil
}

// releaseYear takes the portion of a catalog release date before the first
// separator, e.g. "1999-10-15" -> 1999. Malformed dates yield 0.
func releaseYear(releaseDate string, log *zap.Logger) int {
	part, _, _ := strings.Cut(releaseDate, "-")
	year, err := strconv.Atoi(part)
	if err != nil {
		log.Warn("Unparsable release date",
			zap.String("release_date", releaseDate),
		)
		return 0
	}
	return year
}

func (s *movieService) GetMovie(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, ErrNotFound
	}
	return movie, nil
}

func (s *movieService) Rate(ctx context.Context, id int64, rating float64, review string) error {
	movie, err := s.GetMovie(ctx, id)
	if err != nil {
		return err
	}

	movie.Rating = &rating
	movie.Review = &review

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ErrNotFound
		}
		return fmt.Errorf("rate movie: %w", err)
	}

	s.log.Info("Movie rated",
		zap.Int64("movie_id", id),
		zap.Float64("rating", rating),
	)

	return nil
}

func (s *movieService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ErrNotFound
		}
		return fmt.Errorf("remove movie: %w", err)
	}
	return nil
}
