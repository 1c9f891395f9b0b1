package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dejwwik/Top-movie-website/internal/catalog"
	"github.com/Dejwwik/Top-movie-website/pkg/utils"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*catalog.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := catalog.New(utils.CatalogConfig{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		ImageBaseURL: "https://image.tmdb.org/t/p/w500",
	}, catalog.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return client, server
}

func TestSearchMovie(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Error("api key missing from query")
		}
		if r.URL.Query().Get("query") != "Fight Club" {
			t.Errorf("unexpected query %q", r.URL.Query().Get("query"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 550, "title": "Fight Club", "overview": "An insomniac.", "release_date": "1999-10-15", "poster_path": "/club.jpg"}
			],
			"total_pages": 1,
			"total_results": 1
		}`))
	})

	results, err := client.SearchMovie(context.Background(), "Fight Club")
	if err != nil {
		t.Fatalf("SearchMovie failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].ID != 550 || results[0].ReleaseDate != "1999-10-15" {
		t.Fatalf("unexpected result: %#v", results[0])
	}
}

func TestSearchMovieEmptyQuery(t *testing.T) {
	called := false
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	if _, err := client.SearchMovie(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
	if called {
		t.Fatal("empty query must not reach the network")
	}
}

func TestSearchMovieNon200(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.SearchMovie(context.Background(), "Fight Club"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestSearchMovieMalformedPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	if _, err := client.SearchMovie(context.Background(), "Fight Club"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestMovieDetails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/550" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 550,
			"original_title": "Fight Club",
			"overview": "An insomniac.",
			"release_date": "1999-10-15",
			"poster_path": "/club.jpg"
		}`))
	})

	details, err := client.MovieDetails(context.Background(), 550)
	if err != nil {
		t.Fatalf("MovieDetails failed: %v", err)
	}
	if details.OriginalTitle != "Fight Club" || details.PosterPath != "/club.jpg" {
		t.Fatalf("unexpected details: %#v", details)
	}
}

func TestPosterURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	if got := client.PosterURL("/club.jpg"); got != "https://image.tmdb.org/t/p/w500/club.jpg" {
		t.Fatalf("unexpected poster url %q", got)
	}
	if got := client.PosterURL("club.jpg"); got != "https://image.tmdb.org/t/p/w500/club.jpg" {
		t.Fatalf("unexpected poster url %q", got)
	}
	if got := client.PosterURL(""); got != "" {
		t.Fatalf("expected empty url for empty path, got %q", got)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := catalog.New(utils.CatalogConfig{BaseURL: "https://api.themoviedb.org/3"})
	if err == nil {
		t.Fatal("expected error without api key")
	}
}
