package parser

import (
	"errors"
	"log"
	"strings"

	"halaljoints-scraper/config"
	"halaljoints-scraper/filter"
)

// ErrNoDocument is returned when extraction is called without a document
var ErrNoDocument = errors.New("no document available for extraction")

// Extractor pulls restaurant names out of a rendered listing page using a
// fixed sequence of strategies
type Extractor struct {
	cfg   *config.ScraperConfig
	noise *filter.Blocklist
}

// NewExtractor creates a new Extractor instance
func NewExtractor(cfg *config.ScraperConfig) *Extractor {
	return &Extractor{
		cfg:   cfg,
		noise: filter.NewBlocklist(cfg),
	}
}

type strategy struct {
	name string
	run  func(DocumentView) ([]string, error)
}

// ExtractNames runs every strategy in priority order and returns the unique
// restaurant names in first-seen order. A failing strategy contributes
// nothing; the raw-text fallback runs only when the selector-based
// strategies leave the result below the configured minimum.
func (e *Extractor) ExtractNames(doc DocumentView) ([]string, error) {
	if doc == nil {
		return nil, ErrNoDocument
	}

	seen := make(map[string]bool)
	names := []string{}

	accept := func(raw string) {
		name := strings.TrimSpace(raw)
		if name == "" {
			return
		}
		if e.noise.Blocked(name) {
			return
		}
		if seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	strategies := []strategy{
		{"structured-selector", e.namesFromCards},
		{"heading-tag", e.namesFromHeadings},
		{"link-text", e.namesFromLinks},
	}

	for _, s := range strategies {
		candidates, err := s.run(doc)
		if err != nil {
			log.Printf("Warning: %s strategy failed: %v\n", s.name, err)
			continue
		}
		for _, c := range candidates {
			accept(c)
		}
	}

	if len(names) < e.cfg.Extraction.MinCandidates {
		candidates, err := e.namesFromText(doc)
		if err != nil {
			log.Printf("Warning: text-pattern strategy failed: %v\n", err)
		} else {
			for _, c := range candidates {
				accept(c)
			}
		}
	}

	return names, nil
}

// namesFromCards collects inner text from the configured card selectors
func (e *Extractor) namesFromCards(doc DocumentView) ([]string, error) {
	var candidates []string
	for _, selector := range e.cfg.Extraction.CardSelectors {
		elements, err := doc.FindBySelector(selector)
		if err != nil {
			return nil, err
		}
		for _, el := range elements {
			candidates = append(candidates, el.Text())
		}
	}
	return candidates, nil
}

// namesFromHeadings collects inner text from heading elements
func (e *Extractor) namesFromHeadings(doc DocumentView) ([]string, error) {
	var candidates []string
	for _, tag := range e.cfg.Extraction.HeadingTags {
		for _, el := range doc.FindByTag(tag) {
			candidates = append(candidates, el.Text())
		}
	}
	return candidates, nil
}

// namesFromLinks collects visible text from anchors that point at
// restaurant detail pages
func (e *Extractor) namesFromLinks(doc DocumentView) ([]string, error) {
	elements, err := doc.FindBySelector("a[href]")
	if err != nil {
		return nil, err
	}
	var candidates []string
	for _, el := range elements {
		if strings.Contains(el.Attr("href"), e.cfg.Extraction.LinkPattern) {
			candidates = append(candidates, el.Text())
		}
	}
	return candidates, nil
}

// namesFromText scans the raw page text for lines shaped like names. Last
// resort when the DOM-based strategies come up short.
func (e *Extractor) namesFromText(doc DocumentView) ([]string, error) {
	var candidates []string
	for _, line := range strings.Split(doc.RawText(), "\n") {
		line = normalizeWhitespace(line)
		if looksLikeName(line) {
			candidates = append(candidates, line)
		}
	}
	return candidates, nil
}
