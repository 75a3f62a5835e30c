package fetcher

import (
	"errors"
	"fmt"
)

var errNoContent = errors.New("no content received")

// FetchError reports a failure to retrieve the target page
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
