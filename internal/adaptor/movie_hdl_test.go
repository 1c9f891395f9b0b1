package adaptor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Dejwwik/Top-movie-website/internal/adaptor"
	"github.com/Dejwwik/Top-movie-website/internal/data/entity"
	"github.com/Dejwwik/Top-movie-website/internal/dto/response"
	"github.com/Dejwwik/Top-movie-website/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type fakeMovieService struct {
	movies        []response.MovieView
	candidates    []response.CandidateView
	movie         *entity.Movie
	importOutcome usecase.ImportOutcome

	searchErr error
	importErr error
	getErr    error
	rateErr   error
	removeErr error

	searchCalls int
	ratedID     int64
	ratedValue  float64
	ratedReview string
	removedID   int64
}

func (f *fakeMovieService) RankedMovies(ctx context.Context) []response.MovieView {
	return f.movies
}

func (f *fakeMovieService) Search(ctx context.Context, title string) ([]response.CandidateView, error) {
	f.searchCalls++
	return f.candidates, f.searchErr
}

func (f *fakeMovieService) Import(ctx context.Context, catalogID int64) (usecase.ImportOutcome, error) {
	return f.importOutcome, f.importErr
}

func (f *fakeMovieService) GetMovie(ctx context.Context, id int64) (*entity.Movie, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.movie, nil
}

func (f *fakeMovieService) Rate(ctx context.Context, id int64, rating float64, review string) error {
	f.ratedID = id
	f.ratedValue = rating
	f.ratedReview = review
	return f.rateErr
}

func (f *fakeMovieService) Remove(ctx context.Context, id int64) error {
	f.removedID = id
	return f.removeErr
}

func newTestRouter(t *testing.T, svc usecase.MovieService) *chi.Mux {
	t.Helper()

	renderer, err := adaptor.NewRenderer(zap.NewNop())
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	store := sessions.NewCookieStore([]byte("test-secret"))
	handler := adaptor.NewMovieHandler(svc, renderer, store, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/", handler.Home)
	r.Get("/add", handler.Add)
	r.Post("/add", handler.Add)
	r.Get("/find/{id}", handler.Find)
	r.Get("/edit/{id}", handler.Edit)
	r.Post("/edit/{id}", handler.Edit)
	r.Get("/delete/{id}", handler.Delete)

	return r
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersRankedMovies(t *testing.T) {
	svc := &fakeMovieService{
		movies: []response.MovieView{
			{ID: 550, Rank: 1, Title: "Fight Club", Year: 1999, Description: "An insomniac."},
		},
	}
	router := newTestRouter(t, svc)

	rec := get(router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Fight Club") || !strings.Contains(body, "#1") {
		t.Fatalf("expected ranked movie in body, got: %s", body)
	}
}

func TestHomeEmptyList(t *testing.T) {
	router := newTestRouter(t, &fakeMovieService{})

	rec := get(router, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No movies yet") {
		t.Fatal("expected empty-state message")
	}
}

func TestAddGetRendersForm(t *testing.T) {
	router := newTestRouter(t, &fakeMovieService{})

	rec := get(router, "/add")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="title"`) {
		t.Fatal("expected title input in form")
	}
}

func TestAddPostEmptyTitleSkipsCatalog(t *testing.T) {
	svc := &fakeMovieService{}
	router := newTestRouter(t, svc)

	rec := postForm(router, "/add", url.Values{"title": {"   "}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "This field is required") {
		t.Fatal("expected inline validation error")
	}
	if svc.searchCalls != 0 {
		t.Fatalf("catalog must not be called on validation failure, got %d calls", svc.searchCalls)
	}
}

func TestAddPostRendersCandidates(t *testing.T) {
	svc := &fakeMovieService{
		candidates: []response.CandidateView{
			{ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15"},
		},
	}
	router := newTestRouter(t, svc)

	rec := postForm(router, "/add", url.Values{"title": {"Fight Club"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "/find/550") {
		t.Fatalf("expected selection link in body, got: %s", body)
	}
}

func TestAddPostCatalogFailure(t *testing.T) {
	svc := &fakeMovieService{searchErr: usecase.ErrCatalog}
	router := newTestRouter(t, svc)

	rec := postForm(router, "/add", url.Values{"title": {"Fight Club"}})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestFindRedirectsToEdit(t *testing.T) {
	router := newTestRouter(t, &fakeMovieService{importOutcome: usecase.ImportedNew})

	rec := get(router, "/find/550")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/edit/550" {
		t.Fatalf("expected redirect to /edit/550, got %q", loc)
	}
}

func TestFindDuplicateStillRedirects(t *testing.T) {
	router := newTestRouter(t, &fakeMovieService{importOutcome: usecase.AlreadyAdded})

	rec := get(router, "/find/550")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/edit/550" {
		t.Fatalf("expected redirect to /edit/550, got %q", loc)
	}
	// Flash cookie carries the duplicate notice to the next page
	if len(rec.Result().Cookies()) == 0 {
		t.Fatal("expected session cookie with flash message")
	}
}

func TestFindCatalogFailure(t *testing.T) {
	router := newTestRouter(t, &fakeMovieService{importErr: usecase.ErrCatalog})

	rec := get(router, "/find/550")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestEditGetPrefillsForm(t *testing.T) {
	rating := 7.5
	review := "Great film"
	svc := &fakeMovieService{
		movie: &entity.Movie{ID: 550, Title: "Fight Club", Rating: &rating, Review: &review},
	}
	router := newTestRouter(t, svc)

	rec := get(router, "/edit/550")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `value="7.5"`) || !strings.Contains(body, `value="Great film"`) {
		t.Fatalf("expected prefilled form, got: %s", body)
	}
}

func TestEditGetNotFound(t *testing.T) {
	router := newTestRouter(t, &fakeMovieService{getErr: usecase.ErrNotFound})

	rec := get(router, "/edit/999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEditPostValidRating(t *testing.T) {
	svc := &fakeMovieService{
		movie: &entity.Movie{ID: 550, Title: "Fight Club"},
	}
	router := newTestRouter(t, svc)

	rec := postForm(router, "/edit/550", url.Values{
		"rating": {"7.5"},
		"review": {"Great film"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if svc.ratedID != 550 || svc.ratedValue != 7.5 || svc.ratedReview != "Great film" {
		t.Fatalf("unexpected rate call: id=%d rating=%v review=%q", svc.ratedID, svc.ratedValue, svc.ratedReview)
	}
}

func TestEditPostNonNumericRating(t *testing.T) {
	svc := &fakeMovieService{
		movie: &entity.Movie{ID: 550, Title: "Fight Club"},
	}
	router := newTestRouter(t, svc)

	rec := postForm(router, "/edit/550", url.Values{
		"rating": {"great"},
		"review": {"Great film"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected re-rendered form with 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Must be a number") {
		t.Fatal("expected numeric validation error")
	}
	if svc.ratedID != 0 {
		t.Fatal("service must not be called on validation failure")
	}
}

func TestEditPostMissingReview(t *testing.T) {
	svc := &fakeMovieService{
		movie: &entity.Movie{ID: 550, Title: "Fight Club"},
	}
	router := newTestRouter(t, svc)

	rec := postForm(router, "/edit/550", url.Values{"rating": {"7.5"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "This field is required") {
		t.Fatal("expected required-field error for review")
	}
}

func TestDeleteRedirects(t *testing.T) {
	svc := &fakeMovieService{}
	router := newTestRouter(t, svc)

	rec := get(router, "/delete/42")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if svc.removedID != 42 {
		t.Fatalf("expected delete of id 42, got %d", svc.removedID)
	}
}

func TestDeleteNotFound(t *testing.T) {
	router := newTestRouter(t, &fakeMovieService{removeErr: usecase.ErrNotFound})

	rec := get(router, "/delete/999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMalformedIDIsNotFound(t *testing.T) {
	router := newTestRouter(t, &fakeMovieService{})

	rec := get(router, "/edit/abc")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", rec.Code)
	}
}
