package movie

import "strings"

// mediaTags are retail listing suffixes that break OMDb title matches.
var mediaTags = []string{"[Double Sided]", "[Blu-ray]", "[DVD]"}

// CleanTitle strips media tags from a retail product title and collapses
// whitespace. It returns "" when nothing but tags remains.
func CleanTitle(title string) string {
	for _, tag := range mediaTags {
		title = strings.ReplaceAll(title, tag, "")
	}
	return strings.Join(strings.Fields(title), " ")
}
