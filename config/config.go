package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScraperConfig holds the target page, extraction tuning and output paths
type ScraperConfig struct {
	Target struct {
		URL          string `yaml:"url"`
		WaitSelector string `yaml:"wait_selector"`
		Screenshot   string `yaml:"screenshot"`
	} `yaml:"target"`
	Extraction struct {
		CardSelectors  []string `yaml:"card_selectors"`
		HeadingTags    []string `yaml:"heading_tags"`
		LinkPattern    string   `yaml:"link_pattern"`
		TitleSelectors []string `yaml:"title_selectors"`
		ImageSelectors []string `yaml:"image_selectors"`
		MinCandidates  int      `yaml:"min_candidates"`
		Blocklist      []string `yaml:"blocklist"`
	} `yaml:"extraction"`
	Output struct {
		JSONPath string `yaml:"json_path"`
		CSVPath  string `yaml:"csv_path"`
	} `yaml:"output"`
}

// LoadConfig loads configuration from a YAML file. Fields left out of the
// file keep their default values.
func LoadConfig(path string) (*ScraperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// GetDefaultConfig returns a configuration tuned for the Central London
// neighbourhood page
func GetDefaultConfig() *ScraperConfig {
	cfg := &ScraperConfig{}
	cfg.Target.URL = "https://www.halaljoints.com/neighbourhood/central-london-united-kingdom"
	cfg.Target.WaitSelector = `div > section > div > a[href^="/restaurant/"]`
	cfg.Target.Screenshot = "webpage_full.png"
	cfg.Extraction.CardSelectors = []string{
		`a[href^="/restaurant/"] article > div:nth-child(2) > p`,
		`a[href^="/restaurant/"] article p`,
	}
	cfg.Extraction.HeadingTags = []string{"h1", "h2", "h3"}
	cfg.Extraction.LinkPattern = "/restaurant/"
	cfg.Extraction.TitleSelectors = []string{
		"article > div:nth-child(2) > p",
		"article p",
	}
	cfg.Extraction.ImageSelectors = []string{
		"article > div:nth-child(1) > img",
		"article img",
	}
	cfg.Extraction.MinCandidates = 5
	cfg.Extraction.Blocklist = []string{
		"Home",
		"Menu",
		"About",
		"Contact",
		"Search",
		"Filters",
		"Map",
		"Login",
		"Sign up",
		"Halal Joints",
		"Privacy Policy",
		"Terms of Service",
	}
	cfg.Output.JSONPath = "restaurants.json"
	cfg.Output.CSVPath = "restaurant_info.csv"
	return cfg
}

// applyDefaults fills fields a partial config file zeroed out
func (c *ScraperConfig) applyDefaults() {
	def := GetDefaultConfig()
	if c.Target.URL == "" {
		c.Target.URL = def.Target.URL
	}
	if c.Target.WaitSelector == "" {
		c.Target.WaitSelector = def.Target.WaitSelector
	}
	if len(c.Extraction.CardSelectors) == 0 {
		c.Extraction.CardSelectors = def.Extraction.CardSelectors
	}
	if len(c.Extraction.HeadingTags) == 0 {
		c.Extraction.HeadingTags = def.Extraction.HeadingTags
	}
	if c.Extraction.LinkPattern == "" {
		c.Extraction.LinkPattern = def.Extraction.LinkPattern
	}
	if len(c.Extraction.TitleSelectors) == 0 {
		c.Extraction.TitleSelectors = def.Extraction.TitleSelectors
	}
	if len(c.Extraction.ImageSelectors) == 0 {
		c.Extraction.ImageSelectors = def.Extraction.ImageSelectors
	}
	if c.Extraction.MinCandidates <= 0 {
		c.Extraction.MinCandidates = def.Extraction.MinCandidates
	}
	if c.Output.JSONPath == "" {
		c.Output.JSONPath = def.Output.JSONPath
	}
}
