package omdb

import "github.com/lepinkainen/shelfscan/internal/movie"

// Response represents the fields of an OMDb title response that shelfscan uses
type Response struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Plot       string `json:"Plot"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Response   string `json:"Response"` // "True" or "False"
	Error      string `json:"Error"`    // Present if Response is "False"
}

// Record converts the response into a movie record.
func (r Response) Record() *movie.Record {
	return &movie.Record{
		Title:      r.Title,
		Year:       r.Year,
		Rated:      r.Rated,
		Genre:      r.Genre,
		Director:   r.Director,
		Plot:       r.Plot,
		IMDbRating: r.ImdbRating,
	}
}
