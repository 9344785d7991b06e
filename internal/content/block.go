// Package content renders movie records for the collection file and the console.
package content

import (
	"strings"

	"github.com/lepinkainen/shelfscan/internal/movie"
)

// Delimiter opens and closes every collection block.
const Delimiter = "========================================"

// FormatRecord renders record as the fixed collection block, including the
// trailing blank line. Empty fields render as movie.Placeholder.
func FormatRecord(record movie.Record) string {
	var sb strings.Builder

	sb.WriteString(Delimiter + "\n")
	for _, line := range bodyLines(record) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(Delimiter + "\n\n")

	return sb.String()
}

func bodyLines(record movie.Record) []string {
	v := movie.OrPlaceholder
	return []string{
		"Title: " + v(record.Title) + " (" + v(record.Year) + ")",
		"Rated: " + v(record.Rated),
		"Genre: " + v(record.Genre),
		"Director: " + v(record.Director),
		"IMDb Rating: " + v(record.IMDbRating) + "/10",
		"Plot: " + v(record.Plot),
	}
}
