package domain

type Movie struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Year  string `db:"year"`
}

func NewMovie(title, year string) *Movie {
	return &Movie{
		Title: title,
		Year:  year,
	}
}
