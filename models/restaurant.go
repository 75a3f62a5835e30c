package models

// Restaurant represents a restaurant card on the listing page
type Restaurant struct {
	Title    string
	ImageURL string
	URL      string
}
