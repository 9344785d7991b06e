package upcitemdb

// LookupResponse is the body of a lookup call
type LookupResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Total   int    `json:"total"`
	Items   []Item `json:"items"`
}

// Item is a single product match. ImdbID is only present on listings that
// were cross-referenced with IMDb.
type Item struct {
	EAN    string `json:"ean"`
	UPC    string `json:"upc"`
	Title  string `json:"title"`
	Brand  string `json:"brand"`
	ImdbID string `json:"imdb_id"`
}
