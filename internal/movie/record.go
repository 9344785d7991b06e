package movie

// Placeholder is rendered for any field the metadata source left out.
const Placeholder = "N/A"

// Record is the descriptive metadata written to the collection file.
type Record struct {
	Title      string
	Year       string
	Rated      string
	Genre      string
	Director   string
	Plot       string
	IMDbRating string
}

// OrPlaceholder returns value, or Placeholder when value is empty.
func OrPlaceholder(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}
