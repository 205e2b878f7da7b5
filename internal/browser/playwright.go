package browser

import (
	"context"
	"fmt"
	"log"

	"go-career-watch/utils"

	"github.com/playwright-community/playwright-go"
)

// FetchError means the page never rendered: navigation failure, timeout, or
// a dead browser. The run aborts without touching the baseline.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PlaywrightManager owns the headless browser for one run. Everything it
// holds is released by Close, including on error paths.
type PlaywrightManager struct {
	pw             *playwright.Playwright
	browser        playwright.Browser
	page           playwright.Page
	screenshotPath string
}

// NewPlaywright launches headless Chromium. screenshotPath is where the
// per-run page capture lands.
func NewPlaywright(screenshotPath string) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	return &PlaywrightManager{
		pw:             pw,
		browser:        browser,
		screenshotPath: screenshotPath,
	}, nil
}

// Fetch navigates to url, waits for the page to settle within a bounded
// timeout, and returns the rendered HTML. The run screenshot is best-effort
// and never fails the fetch.
func (pm *PlaywrightManager) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	if pm.page == nil {
		page, err := pm.browser.NewPage()
		if err != nil {
			return "", &FetchError{URL: url, Err: err}
		}
		pm.page = page
	}

	if _, err := pm.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	//best-effort run screenshot for human inspection
	utils.CaptureScreenshot(pm.page, pm.screenshotPath)

	html, err := pm.page.Content()
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	return html, nil
}

// CaptureScreenshot saves the current page to path for failure debugging.
// No-op when nothing has been fetched yet.
func (pm *PlaywrightManager) CaptureScreenshot(path string) error {
	if pm.page == nil {
		return nil
	}
	return utils.CaptureScreenshot(pm.page, path)
}

// Close releases the page, browser, and playwright runtime.
func (pm *PlaywrightManager) Close() {
	if pm.page != nil {
		if err := pm.page.Close(); err != nil {
			log.Printf("⚠️ Failed to close page: %v", err)
		}
		pm.page = nil
	}
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			log.Printf("⚠️ Failed to close browser: %v", err)
		}
		pm.browser = nil
	}
	if pm.pw != nil {
		if err := pm.pw.Stop(); err != nil {
			log.Printf("⚠️ Failed to stop playwright: %v", err)
		}
		pm.pw = nil
	}
}
