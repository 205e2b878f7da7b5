package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-career-watch/internal/browser"
	"go-career-watch/internal/config"
	"go-career-watch/internal/monitor"
	"go-career-watch/internal/notify"
	"go-career-watch/internal/state"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Watching: %s", cfg.Target.Name)

	//setup context with timeout = 5 mins
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("🚀 Starting career page check...")

	//wire notification channels; a missing channel is logged, not fatal
	var notifiers []notify.Notifier
	if n := notify.NewEmailNotifier(cfg.SMTP); n != nil {
		notifiers = append(notifiers, n)
	}
	if n := notify.NewTelegramNotifier(cfg.Telegram); n != nil {
		notifiers = append(notifiers, n)
	}
	if len(notifiers) == 0 {
		log.Println("⚠️ No notification channels configured. Changes will only be logged.")
	}

	//init playwright manager
	pm, err := browser.NewPlaywright(cfg.Paths.Screenshot)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}

	store := state.NewStore(cfg.Paths.CountFile, cfg.Paths.TopJobsFile)

	runErr := monitor.Run(ctx, cfg, pm, store, notifiers)
	pm.Close()

	if runErr != nil {
		log.Printf("❌ Check failed: %v", runErr)
		os.Exit(1)
	}
	log.Println("🏁 Check completed.")
}
