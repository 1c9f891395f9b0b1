package response

import (
	"strings"

	"github.com/Dejwwik/Top-movie-website/internal/catalog"
	"github.com/Dejwwik/Top-movie-website/internal/data/entity"
)

// MovieView is one ranked row on the home page.
type MovieView struct {
	ID          int64
	Rank        int
	Title       string
	Year        int
	Description string
	Rating      *float64
	Review      *string
	ImageURL    string
}

// CandidateView is one selectable search result on the selection page.
type CandidateView struct {
	ID          int64
	Title       string
	ReleaseDate string
	Overview    string
}

func MovieToView(movie *entity.Movie) MovieView {
	view := MovieView{
		ID:          movie.ID,
		Title:       movie.Title,
		Year:        movie.Year,
		Description: movie.Description,
		Rating:      movie.Rating,
		Review:      movie.Review,
		ImageURL:    movie.ImageURL,
	}
	if movie.Ranking != nil {
		view.Rank = *movie.Ranking
	}
	return view
}

func ResultToCandidate(result catalog.SearchResult) CandidateView {
	title := result.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	return CandidateView{
		ID:          result.ID,
		Title:       title,
		ReleaseDate: result.ReleaseDate,
		Overview:    result.Overview,
	}
}
