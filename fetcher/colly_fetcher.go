package fetcher

import (
	"log"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly over plain
// HTTP. It only sees server-rendered markup; use RodFetcher when the
// listing is built client-side.
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher() *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	c.OnError(func(r *colly.Response, err error) {
		log.Printf("Error fetching %s: %v\n", r.Request.URL, err)
	})

	return &CollyFetcher{
		collector: c,
	}
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	var html string

	cf.collector.OnResponse(func(r *colly.Response) {
		html = string(r.Body)
		log.Printf("Fetched %s (%d bytes)\n", r.Request.URL, len(r.Body))
	})

	if err := cf.collector.Visit(url); err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	cf.collector.Wait()

	if html == "" {
		return "", &FetchError{URL: url, Err: errNoContent}
	}

	return html, nil
}
