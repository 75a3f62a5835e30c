package fetcher

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch retrieves the rendered HTML content of the given URL
	Fetch(url string) (string, error)
}
