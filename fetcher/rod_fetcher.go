package fetcher

import (
	"fmt"
	"log"
	"os"
	"time"

	"halaljoints-scraper/config"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RodFetcher implements the Fetcher interface using rod (headless browser)
type RodFetcher struct {
	browser *rod.Browser
	cfg     *config.ScraperConfig
}

// NewRodFetcher launches a headless browser and connects to it
func NewRodFetcher(cfg *config.ScraperConfig) (*RodFetcher, error) {
	l := launcher.New().
		Headless(true).
		Set("disable-blink-features", "AutomationControlled").
		NoSandbox(true).
		Leakless(false). // Disable leakless to avoid antivirus issues
		// Additional flags for Linux compatibility
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("disable-background-networking").
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-breakpad").
		Set("disable-default-apps").
		Set("disable-hang-monitor").
		Set("disable-popup-blocking").
		Set("disable-sync").
		Set("disable-translate").
		Set("metrics-recording-only").
		Set("mute-audio").
		Set("no-zygote").
		Set("enable-automation").
		Set("use-mock-keychain").
		Set("memory-pressure-off").
		Set("disable-ipc-flooding-protection").
		Set("disable-features", "TranslateUI,BlinkGenPropertyTrees")

	// Prefer a system Chrome/Chromium when one is installed, fall back to
	// downloading Chromium
	browserPaths := []string{
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	}
	for _, path := range browserPaths {
		if _, err := os.Stat(path); err == nil {
			l = l.Bin(path)
			break
		}
	}

	log.Println("Launching browser...")
	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w\n\nNote: On Linux, you may need to install Chromium dependencies:\n  apt-get update && apt-get install -y chromium chromium-sandbox || yum install -y chromium", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodFetcher{
		browser: browser,
		cfg:     cfg,
	}, nil
}

// Close closes the browser
func (rf *RodFetcher) Close() error {
	if rf.browser != nil {
		return rf.browser.Close()
	}
	return nil
}

// Fetch implements the Fetcher interface
func (rf *RodFetcher) Fetch(url string) (string, error) {
	log.Printf("Navigating to %s\n", url)

	page := rf.browser.MustPage()
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1920,
		Height:            1080,
		DeviceScaleFactor: 1,
	}); err != nil {
		log.Printf("Warning: Failed to set viewport: %v\n", err)
	}

	if err := page.Navigate(url); err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	// Wait for page to load and give JavaScript time to render
	if err := page.WaitLoad(); err != nil {
		log.Printf("Warning: Page load wait failed: %v\n", err)
	}
	time.Sleep(2 * time.Second)

	// Wait for the listing links to show up; the page is still worth
	// parsing if they never do
	if rf.cfg.Target.WaitSelector != "" {
		if _, err := page.Timeout(10 * time.Second).Element(rf.cfg.Target.WaitSelector); err != nil {
			log.Printf("Warning: Timed out waiting for %q, continuing anyway\n", rf.cfg.Target.WaitSelector)
		} else {
			log.Println("Found restaurant links, page seems loaded")
		}
	}

	if err := page.Timeout(10 * time.Second).WaitStable(time.Second); err != nil {
		log.Printf("Warning: Page did not settle: %v\n", err)
	}

	if rf.cfg.Target.Screenshot != "" {
		rf.screenshot(page, rf.cfg.Target.Screenshot)
	}

	html, err := page.HTML()
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	return html, nil
}

// screenshot saves a full-page capture for debugging
func (rf *RodFetcher) screenshot(page *rod.Page, path string) {
	data, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		log.Printf("Warning: Failed to capture screenshot: %v\n", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("Warning: Failed to save screenshot: %v\n", err)
		return
	}
	log.Printf("Saved full page screenshot as %s\n", path)
}
