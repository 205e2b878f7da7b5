// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Target is the career page being watched.
type Target struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
	//CSS selector for the element carrying the total job count
	CountSelector string `yaml:"count_selector"`
}

// Paths groups every file the monitor reads or overwrites between runs.
type Paths struct {
	CountFile       string `yaml:"count_file"`
	TopJobsFile     string `yaml:"top_jobs_file"`
	Screenshot      string `yaml:"screenshot"`
	DebugScreenshot string `yaml:"debug_screenshot"`
}

// SMTP holds the mail transport settings. All of it comes from env vars;
// when incomplete, email notification is disabled rather than failing.
type SMTP struct {
	SenderEmail     string `env:"SENDER_EMAIL"`
	SenderPassword  string `env:"SENDER_PASSWORD"`
	RecipientEmails string `env:"RECIPIENT_EMAILS"`
	Server          string `env:"SMTP_SERVER" envDefault:"smtp.gmail.com"`
	Port            int    `env:"SMTP_PORT" envDefault:"587"`
}

// Recipients splits the comma-separated RECIPIENT_EMAILS value.
func (s SMTP) Recipients() []string {
	var out []string
	for _, addr := range strings.Split(s.RecipientEmails, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

func (s SMTP) Complete() bool {
	return s.SenderEmail != "" && s.SenderPassword != "" && len(s.Recipients()) > 0
}

// Telegram is an optional secondary notification channel.
type Telegram struct {
	Token  string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID int64  `env:"TELEGRAM_CHAT_ID"`
}

func (t Telegram) Complete() bool {
	return t.Token != "" && t.ChatID != 0
}

type Config struct {
	Target   Target   `yaml:"target"`
	Paths    Paths    `yaml:"paths"`
	SMTP     SMTP     `yaml:"-"`
	Telegram Telegram `yaml:"-"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Parse credentials and transport settings from env
	if err := env.Parse(&cfg.SMTP); err != nil {
		log.Fatalf("Invalid mail settings: %v", err)
	}
	if err := env.Parse(&cfg.Telegram); err != nil {
		log.Fatalf("Invalid telegram settings: %v", err)
	}

	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every unset field so a missing config.yaml still
// yields a runnable watch of the default target.
func (c *Config) ApplyDefaults() {
	if c.Target.URL == "" {
		c.Target.URL = "https://amazon.jobs/content/en/job-categories/business-intelligence-data-engineering?country%5B%5D=US&employment-type%5B%5D=Full+time&role-type%5B%5D=0"
	}
	if c.Target.Name == "" {
		c.Target.Name = "Amazon Business Intelligence & Data Engineering Jobs"
	}
	if c.Target.CountSelector == "" {
		c.Target.CountSelector = "span[data-testid='job-count']"
	}
	if c.Paths.CountFile == "" {
		c.Paths.CountFile = "known_job_counts.json"
	}
	if c.Paths.TopJobsFile == "" {
		c.Paths.TopJobsFile = "known_top_jobs.json"
	}
	if c.Paths.Screenshot == "" {
		c.Paths.Screenshot = "career_page_screenshot.png"
	}
	if c.Paths.DebugScreenshot == "" {
		c.Paths.DebugScreenshot = "career_page_debug_screenshot.png"
	}
}
