package entity

// Movie is one stored movie record. ID matches the catalog identifier when
// the record was imported via search. Rating, Ranking and Review stay nil
// until the user rates the movie; Ranking is rewritten on every listing.
type Movie struct {
	ID          int64    `db:"id"`
	Title       string   `db:"title"`
	Year        int      `db:"year"`
	Description string   `db:"description"`
	Rating      *float64 `db:"rating"`
	Ranking     *int     `db:"ranking"`
	Review      *string  `db:"review"`
	ImageURL    string   `db:"image_url"`
}
