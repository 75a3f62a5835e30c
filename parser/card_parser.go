package parser

import (
	"log"
	"net/url"
	"sort"
	"strings"

	"halaljoints-scraper/config"
	"halaljoints-scraper/models"
)

// CardParser extracts full restaurant cards (title, image, detail link)
// from the listing page
type CardParser struct {
	cfg     *config.ScraperConfig
	baseURL string
}

// NewCardParser creates a new CardParser instance
func NewCardParser(cfg *config.ScraperConfig) *CardParser {
	base := ""
	if u, err := url.Parse(cfg.Target.URL); err == nil && u.Host != "" {
		base = u.Scheme + "://" + u.Host
	}
	return &CardParser{
		cfg:     cfg,
		baseURL: base,
	}
}

// ParseCards returns one record per detail-link card that carries both a
// title and an image, sorted by title
func (p *CardParser) ParseCards(doc DocumentView) []models.Restaurant {
	var restaurants []models.Restaurant

	links, err := doc.FindBySelector("a[href]")
	if err != nil {
		return restaurants
	}

	var detailLinks []Element
	for _, link := range links {
		if strings.Contains(link.Attr("href"), p.cfg.Extraction.LinkPattern) {
			detailLinks = append(detailLinks, link)
		}
	}
	log.Printf("Found %d restaurant links\n", len(detailLinks))

	for _, link := range detailLinks {
		title := p.firstText(link, p.cfg.Extraction.TitleSelectors)
		if title == "" {
			continue
		}
		image := p.firstAttr(link, p.cfg.Extraction.ImageSelectors, "src")
		if image == "" {
			continue
		}

		restaurants = append(restaurants, models.Restaurant{
			Title:    title,
			ImageURL: image,
			URL:      p.absoluteURL(link.Attr("href")),
		})
	}

	sort.Slice(restaurants, func(i, j int) bool {
		return restaurants[i].Title < restaurants[j].Title
	})

	return restaurants
}

// firstText returns the first non-empty trimmed text among the selector
// matches
func (p *CardParser) firstText(el Element, selectors []string) string {
	for _, selector := range selectors {
		matches, err := el.Find(selector)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if text := strings.TrimSpace(m.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// firstAttr returns the named attribute of the first selector match that
// carries it
func (p *CardParser) firstAttr(el Element, selectors []string, attr string) string {
	for _, selector := range selectors {
		matches, err := el.Find(selector)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if value := m.Attr(attr); value != "" {
				return value
			}
		}
	}
	return ""
}

func (p *CardParser) absoluteURL(href string) string {
	if href == "" || strings.HasPrefix(href, "http") || p.baseURL == "" {
		return href
	}
	return p.baseURL + href
}
