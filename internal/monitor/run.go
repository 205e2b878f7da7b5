// One invocation = one check
// Sequencing: load baseline -> fetch -> extract -> diff -> notify -> save

package monitor

import (
	"context"
	"log"

	"go-career-watch/internal/config"
	"go-career-watch/internal/diff"
	"go-career-watch/internal/notify"
	"go-career-watch/internal/scraper"
	"go-career-watch/internal/state"
)

// Fetcher renders the target page. Satisfied by browser.PlaywrightManager;
// narrowed to an interface so the sequencing is testable without a browser.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	CaptureScreenshot(path string) error
}

// Run performs one check cycle. A returned error means the cycle did not
// complete and the baseline was left untouched (fetch/extract failure) or
// could not be recorded (save failure). Notification failures are logged
// and never returned: the page state genuinely changed, so the new baseline
// must still be recorded.
func Run(ctx context.Context, cfg *config.Config, fetcher Fetcher, store *state.Store, notifiers []notify.Notifier) error {
	previous, found, err := store.Load()
	if err != nil {
		log.Printf("⚠️ Could not read previous state: %v. Treating as first run.", err)
	}
	if found {
		log.Printf("📂 Baseline loaded: %d jobs, %d top postings", previous.TotalCount, len(previous.TopJobs))
	}

	log.Printf("🌐 Fetching %s", cfg.Target.URL)
	html, err := fetcher.Fetch(ctx, cfg.Target.URL)
	if err != nil {
		//the page may have partially rendered; capture what there is
		fetcher.CaptureScreenshot(cfg.Paths.DebugScreenshot)
		return err
	}

	current, err := scraper.Extract(html, cfg.Target)
	if err != nil {
		if capErr := fetcher.CaptureScreenshot(cfg.Paths.DebugScreenshot); capErr == nil {
			log.Printf("🔍 Debug screenshot saved for inspection: %s", cfg.Paths.DebugScreenshot)
		}
		return err
	}
	log.Printf("📦 Extracted: %d jobs, %d top postings", current.TotalCount, len(current.TopJobs))

	report := diff.Compare(previous, current)
	logReport(report)

	switch {
	case !found:
		log.Println("🆕 First run. Recording baseline without notifying.")
	case report.Notable():
		for _, n := range notifiers {
			if err := n.Notify(report, current, cfg.Target); err != nil {
				log.Printf("⚠️ %v", err)
			} else {
				log.Printf("📧 Alert sent via %s", n.Name())
			}
		}
	default:
		log.Println("✅ No notable changes detected.")
	}

	if err := store.Save(current); err != nil {
		return err
	}
	log.Printf("💾 Baseline updated: %d jobs", current.TotalCount)
	return nil
}

func logReport(report diff.ChangeReport) {
	if report.CountDelta != 0 {
		log.Printf("📊 Job count changed: %+d", report.CountDelta)
	}
	for _, job := range report.Added {
		log.Printf("  🆕 New: %s", job.Title)
	}
	for _, job := range report.Removed {
		log.Printf("  ❌ Removed: %s", job.Title)
	}
	for _, m := range report.Moves {
		log.Printf("  🔄 Moved: %s (#%d → #%d)", m.Posting.Title, m.From, m.To)
	}
}
