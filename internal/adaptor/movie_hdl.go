package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dejwwik/Top-movie-website/internal/dto/request"
	"github.com/Dejwwik/Top-movie-website/internal/dto/response"
	"github.com/Dejwwik/Top-movie-website/internal/usecase"
	"github.com/Dejwwik/Top-movie-website/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const sessionName = "top-movie-session"

type MovieHandler struct {
	service  usecase.MovieService
	renderer *Renderer
	sessions sessions.Store
	log      *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, renderer *Renderer, store sessions.Store, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:  service,
		renderer: renderer,
		sessions: store,
		log:      log.With(zap.String("handler", "movie")),
	}
}

type homePage struct {
	Movies  []response.MovieView
	Flashes []string
}

type addPage struct {
	Form   request.AddMovieForm
	Errors map[string]string
}

type selectPage struct {
	Query      string
	Candidates []response.CandidateView
}

type editPage struct {
	MovieID    int64
	MovieTitle string
	Form       request.RateMovieForm
	Errors     map[string]string
}

type errorPage struct {
	Status  int
	Message string
}

// Home handles GET / and renders the ranked movie list.
func (h *MovieHandler) Home(w http.ResponseWriter, r *http.Request) {
	movies := h.service.RankedMovies(r.Context())

	page := homePage{Movies: movies}

	session, _ := h.sessions.Get(r, sessionName)
	for _, flash := range session.Flashes() {
		if msg, ok := flash.(string); ok {
			page.Flashes = append(page.Flashes, msg)
		}
	}
	if err := session.Save(r, w); err != nil {
		h.log.Warn("Failed to save session", zap.Error(err))
	}

	h.renderer.Render(w, http.StatusOK, "index", page)
}

// Add handles GET,POST /add: the title form and the catalog search.
func (h *MovieHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderer.Render(w, http.StatusOK, "add", addPage{})
		return
	}

	form := request.AddMovieForm{
		Title: strings.TrimSpace(r.FormValue("title")),
	}

	// Validation failure re-renders the form without touching the catalog.
	if validationErrors := utils.ValidateStruct(form); len(validationErrors) > 0 {
		h.renderer.Render(w, http.StatusOK, "add", addPage{Form: form, Errors: validationErrors})
		return
	}

	candidates, err := h.service.Search(r.Context(), form.Title)
	if err != nil {
		h.handleServiceError(w, err, "search movies")
		return
	}

	h.renderer.Render(w, http.StatusOK, "select", selectPage{
		Query:      form.Title,
		Candidates: candidates,
	})
}

// Find handles GET,POST /find/{id}: imports the chosen catalog entry and
// sends the user straight to the rating form.
func (h *MovieHandler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	outcome, err := h.service.Import(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "import movie")
		return
	}

	if outcome == usecase.AlreadyAdded {
		h.flash(w, r, "That movie is already in your list.")
	}

	http.Redirect(w, r, fmt.Sprintf("/edit/%d", id), http.StatusSeeOther)
}

// Edit handles GET,POST /edit/{id}: the rating+review form.
func (h *MovieHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.service.GetMovie(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get movie")
		return
	}

	page := editPage{MovieID: movie.ID, MovieTitle: movie.Title}

	if r.Method != http.MethodPost {
		if movie.Rating != nil {
			page.Form.Rating = strconv.FormatFloat(*movie.Rating, 'f', -1, 64)
		}
		if movie.Review != nil {
			page.Form.Review = *movie.Review
		}
		h.renderer.Render(w, http.StatusOK, "edit", page)
		return
	}

	form := request.RateMovieForm{
		Rating: strings.TrimSpace(r.FormValue("rating")),
		Review: strings.TrimSpace(r.FormValue("review")),
	}
	page.Form = form

	if validationErrors := utils.ValidateStruct(form); len(validationErrors) > 0 {
		page.Errors = validationErrors
		h.renderer.Render(w, http.StatusOK, "edit", page)
		return
	}

	rating, err := strconv.ParseFloat(form.Rating, 64)
	if err != nil {
		page.Errors = map[string]string{"Rating": "Must be a number"}
		h.renderer.Render(w, http.StatusOK, "edit", page)
		return
	}

	if err := h.service.Rate(r.Context(), id, rating, form.Review); err != nil {
		h.handleServiceError(w, err, "rate movie")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete handles GET,POST /delete/{id}.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.movieID(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete movie")
		return
	}

	h.flash(w, r, "Movie removed.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// movieID parses the {id} URL parameter; a malformed id renders a 404 page.
func (h *MovieHandler) movieID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.Warn("Invalid movie id in URL", zap.String("id", raw))
		h.renderer.Render(w, http.StatusNotFound, "error", errorPage{
			Status:  http.StatusNotFound,
			Message: "No movie with that id.",
		})
		return 0, false
	}
	return id, true
}

func (h *MovieHandler) flash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := h.sessions.Get(r, sessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		h.log.Warn("Failed to save session", zap.Error(err))
	}
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		h.renderer.Render(w, http.StatusNotFound, "error", errorPage{
			Status:  http.StatusNotFound,
			Message: "No movie with that id.",
		})

	case errors.Is(err, usecase.ErrCatalog):
		h.log.Error(operation+" failed - catalog unavailable", zap.Error(err))
		h.renderer.Render(w, http.StatusBadGateway, "error", errorPage{
			Status:  http.StatusBadGateway,
			Message: "The movie catalog is unreachable right now. Try again later.",
		})

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		h.renderer.Render(w, http.StatusInternalServerError, "error", errorPage{
			Status:  http.StatusInternalServerError,
			Message: "Something went wrong.",
		})
	}
}
