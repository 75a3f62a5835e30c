package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"halaljoints-scraper/config"
	"halaljoints-scraper/fetcher"
	"halaljoints-scraper/models"
	"halaljoints-scraper/output"
	"halaljoints-scraper/parser"
)

func main() {
	// Parse command line arguments; every flag is optional and falls back
	// to the configuration file
	urlFlag := flag.String("url", "", "Listing page URL (overrides config)")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	outputPath := flag.String("output", "", "Path for the JSON name list (overrides config)")
	csvPath := flag.String("csv", "", "Path for the CSV card list (overrides config)")
	screenshotPath := flag.String("screenshot", "", "Path for a full-page screenshot (overrides config)")
	minCandidates := flag.Int("min-candidates", 0, "Run the raw-text fallback when fewer names are found (overrides config)")
	static := flag.Bool("static", false, "Fetch over plain HTTP instead of a headless browser")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *urlFlag != "" {
		cfg.Target.URL = *urlFlag
	}
	if *outputPath != "" {
		cfg.Output.JSONPath = *outputPath
	}
	if *csvPath != "" {
		cfg.Output.CSVPath = *csvPath
	}
	if *screenshotPath != "" {
		cfg.Target.Screenshot = *screenshotPath
	}
	if *minCandidates > 0 {
		cfg.Extraction.MinCandidates = *minCandidates
	}

	// Perform scraping
	names, cards, err := scrapeRestaurants(cfg, *static)
	if err != nil {
		log.Fatalf("Scraping failed: %v\n", err)
	}

	// Display results to console
	fmt.Printf("Found %d unique restaurants\n", len(names))
	fmt.Println("---")

	if len(names) == 0 {
		fmt.Println("No restaurant information found.")
		fmt.Println("The website might have a unique structure or be protected against scraping.")
	} else {
		formatRestaurantsConsole(names, cards)
	}

	// Write results; the JSON name list is the primary output and is
	// written even when empty
	writer := output.NewWriter(cfg.Output.JSONPath, cfg.Output.CSVPath)
	if err := writer.WriteNames(names); err != nil {
		log.Fatalf("Failed to write results: %v\n", err)
	}
	fmt.Printf("\nSaved %d restaurant names to %s\n", len(names), cfg.Output.JSONPath)

	if cfg.Output.CSVPath != "" && len(cards) > 0 {
		if err := writer.WriteCards(cards); err != nil {
			log.Printf("Warning: Failed to write CSV: %v\n", err)
		} else {
			fmt.Printf("Saved %d restaurant cards to %s\n", len(cards), cfg.Output.CSVPath)
		}
	}
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.ScraperConfig {
	var cfg *config.ScraperConfig
	if _, err := os.Stat(configPath); err == nil {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			cfg = config.GetDefaultConfig()
		}
	} else {
		log.Println("Config file not found. Using default configuration.")
		cfg = config.GetDefaultConfig()
	}
	return cfg
}

// scrapeRestaurants fetches the listing page and extracts names and cards
func scrapeRestaurants(cfg *config.ScraperConfig, static bool) ([]string, []models.Restaurant, error) {
	var pageFetcher fetcher.Fetcher
	if static {
		pageFetcher = fetcher.NewCollyFetcher()
	} else {
		rodFetcher, err := fetcher.NewRodFetcher(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create fetcher: %w", err)
		}
		defer func() {
			if err := rodFetcher.Close(); err != nil {
				log.Printf("Warning: Failed to close browser: %v\n", err)
			}
		}()
		pageFetcher = rodFetcher
	}

	html, err := pageFetcher.Fetch(cfg.Target.URL)
	if err != nil {
		return nil, nil, err
	}

	doc, err := parser.NewDocument(html)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse page: %w", err)
	}

	extractor := parser.NewExtractor(cfg)
	names, err := extractor.ExtractNames(doc)
	if err != nil {
		return nil, nil, err
	}

	cards := parser.NewCardParser(cfg).ParseCards(doc)

	return names, cards, nil
}

// formatRestaurantsConsole formats extracted restaurants for console output
func formatRestaurantsConsole(names []string, cards []models.Restaurant) {
	images := make(map[string]string, len(cards))
	for _, card := range cards {
		images[card.Title] = card.ImageURL
	}

	for i, name := range names {
		if image, ok := images[name]; ok {
			fmt.Printf("%d. %s | Image: %s\n", i+1, name, image)
		} else {
			fmt.Printf("%d. %s\n", i+1, name)
		}
	}
}
