package filter

import (
	"halaljoints-scraper/config"
)

// Blocklist drops navigation labels and other boilerplate strings that the
// extraction strategies pick up alongside real restaurant names
type Blocklist struct {
	blocked map[string]bool
}

// NewBlocklist creates a new Blocklist instance from the configuration
func NewBlocklist(cfg *config.ScraperConfig) *Blocklist {
	blocked := make(map[string]bool, len(cfg.Extraction.Blocklist))
	for _, entry := range cfg.Extraction.Blocklist {
		blocked[entry] = true
	}
	return &Blocklist{
		blocked: blocked,
	}
}

// Blocked reports whether a candidate exactly matches a blocklist entry
func (b *Blocklist) Blocked(name string) bool {
	return b.blocked[name]
}
