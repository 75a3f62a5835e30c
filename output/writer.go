package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"halaljoints-scraper/models"
)

// WriteError reports a failure to persist extraction results
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer persists extraction results to local files
type Writer struct {
	jsonPath string
	csvPath  string
}

// NewWriter creates a new Writer instance
func NewWriter(jsonPath, csvPath string) *Writer {
	return &Writer{
		jsonPath: jsonPath,
		csvPath:  csvPath,
	}
}

// WriteNames writes the unique restaurant names as a JSON array of strings,
// replacing any previous file
func (w *Writer) WriteNames(names []string) error {
	if names == nil {
		names = []string{}
	}

	data, err := json.Marshal(names)
	if err != nil {
		return &WriteError{Path: w.jsonPath, Err: err}
	}

	if err := os.WriteFile(w.jsonPath, data, 0644); err != nil {
		return &WriteError{Path: w.jsonPath, Err: err}
	}

	return nil
}

// WriteCards writes restaurant cards as CSV rows under a title,image
// header, replacing any previous file
func (w *Writer) WriteCards(restaurants []models.Restaurant) error {
	f, err := os.Create(w.csvPath)
	if err != nil {
		return &WriteError{Path: w.csvPath, Err: err}
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"title", "image"}); err != nil {
		return &WriteError{Path: w.csvPath, Err: err}
	}
	for _, r := range restaurants {
		if err := cw.Write([]string{r.Title, r.ImageURL}); err != nil {
			return &WriteError{Path: w.csvPath, Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &WriteError{Path: w.csvPath, Err: err}
	}

	return nil
}
