package request

// AddMovieForm is the search form on /add.
type AddMovieForm struct {
	Title string `validate:"required"`
}

// RateMovieForm is the rating form on /edit/{id}. Rating arrives as text and
// must parse as a number; both fields are required.
type RateMovieForm struct {
	Rating string `validate:"required,numeric"`
	Review string `validate:"required"`
}
