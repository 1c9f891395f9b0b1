package wire

import (
	"github.com/Dejwwik/Top-movie-website/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET / - ranked movie list
	r.Get("/", movieHandler.Home)

	// GET,POST /add - search the catalog by title
	r.Get("/add", movieHandler.Add)
	r.Post("/add", movieHandler.Add)

	// GET,POST /find/{id} - import from the catalog, then edit
	r.Get("/find/{id}", movieHandler.Find)
	r.Post("/find/{id}", movieHandler.Find)

	// GET,POST /edit/{id} - set rating and review
	r.Get("/edit/{id}", movieHandler.Edit)
	r.Post("/edit/{id}", movieHandler.Edit)

	// GET,POST /delete/{id} - remove a record
	r.Get("/delete/{id}", movieHandler.Delete)
	r.Post("/delete/{id}", movieHandler.Delete)
}
