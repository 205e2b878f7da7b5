package utils

import (
	"log"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
)

// CaptureScreenshot saves a full-page capture to path, overwriting any
// previous run's file. Failures are logged; callers treat them as
// best-effort.
func CaptureScreenshot(page playwright.Page, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		os.MkdirAll(dir, 0755)
	}

	//Take screenshot
	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("📸 Screenshot saved: %s", path)
	return nil
}
