package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Dejwwik/Top-movie-website/internal/data/entity"
	"github.com/Dejwwik/Top-movie-website/pkg/database"

	"go.uber.org/zap"
)

// InsertResult tells the caller whether a record was stored or silently
// skipped because of an id/title collision.
type InsertResult int

const (
	Inserted InsertResult = iota
	InsertDuplicate
)

type MovieRepository interface {
	Insert(ctx context.Context, movie *entity.Movie) (InsertResult, error)
	ListByRatingDesc(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	UpdateRankings(ctx context.Context, movies []*entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.SQLIface
	log *zap.Logger
}

func NewMovieRepository(db database.SQLIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Insert(ctx context.Context, movie *entity.Movie) (InsertResult, error) {
	query := `
		INSERT INTO movies (id, title, year, description, rating, ranking, review, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		movie.ID,
		movie.Title,
		movie.Year,
		movie.Description,
		movie.Rating,
		movie.Ranking,
		movie.Review,
		movie.ImageURL,
	)

	if err != nil {
		if isConstraintViolation(err) {
			r.log.Warn("Duplicate movie ignored",
				zap.Int64("movie_id", movie.ID),
				zap.String("title", movie.Title),
			)
			return InsertDuplicate, nil
		}
		r.log.Error("Failed to insert movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return 0, fmt.Errorf("failed to insert movie: %w", err)
	}

	return Inserted, nil
}

// ListByRatingDesc returns every movie ordered by rating descending. Unrated
// movies sort last; equal ratings are broken by id ascending so the order is
// deterministic.
func (r *movieRepository) ListByRatingDesc(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, year, description, rating, ranking, review, image_url
		FROM movies
		ORDER BY rating IS NULL, rating DESC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies listed", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, year, description, rating, ranking, review, image_url
		FROM movies
		WHERE id = ?
	`

	var (
		movie   entity.Movie
		rating  sql.NullFloat64
		ranking sql.NullInt64
		review  sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.Description,
		&rating,
		&ranking,
		&review,
		&movie.ImageURL,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	applyNullable(&movie, rating, ranking, review)

	return &movie, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = ?, year = ?, description = ?, rating = ?, ranking = ?,
		    review = ?, image_url = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		movie.Title,
		movie.Year,
		movie.Description,
		movie.Rating,
		movie.Ranking,
		movie.Review,
		movie.ImageURL,
		movie.ID,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("movie not found")
	}

	return nil
}

// UpdateRankings persists the recomputed ranks in a single transaction.
func (r *movieRepository) UpdateRankings(ctx context.Context, movies []*entity.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rankings tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, movie := range movies {
		if _, err := tx.ExecContext(ctx,
			`UPDATE movies SET ranking = ? WHERE id = ?`,
			movie.Ranking, movie.ID,
		); err != nil {
			r.log.Error("Failed to update ranking",
				zap.Error(err),
				zap.Int64("movie_id", movie.ID),
			)
			return fmt.Errorf("failed to update ranking: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rankings tx: %w", err)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("movie not found")
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}

func scanMovie(rows *sql.Rows) (*entity.Movie, error) {
	var (
		movie   entity.Movie
		rating  sql.NullFloat64
		ranking sql.NullInt64
		review  sql.NullString
	)
	err := rows.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&movie.Description,
		&rating,
		&ranking,
		&review,
		&movie.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	applyNullable(&movie, rating, ranking, review)

	return &movie, nil
}

func applyNullable(movie *entity.Movie, rating sql.NullFloat64, ranking sql.NullInt64, review sql.NullString) {
	if rating.Valid {
		movie.Rating = &rating.Float64
	}
	if ranking.Valid {
		rank := int(ranking.Int64)
		movie.Ranking = &rank
	}
	if review.Valid {
		movie.Review = &review.String
	}
}

func isConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
