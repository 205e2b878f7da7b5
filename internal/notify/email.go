package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"go-career-watch/internal/config"
	"go-career-watch/internal/diff"
	"go-career-watch/internal/scraper"

	"github.com/jordan-wright/email"
)

// EmailNotifier sends the change digest over SMTP.
type EmailNotifier struct {
	cfg config.SMTP
	now func() time.Time
}

// NewEmailNotifier returns nil when the mail settings are incomplete, which
// disables the channel for the run.
func NewEmailNotifier(cfg config.SMTP) *EmailNotifier {
	if !cfg.Complete() {
		log.Println("✉️ Email configuration incomplete. Email alerts disabled.")
		return nil
	}
	return &EmailNotifier{cfg: cfg, now: time.Now}
}

func (n *EmailNotifier) Name() string { return "email" }

func (n *EmailNotifier) Notify(report diff.ChangeReport, current scraper.JobSnapshot, target config.Target) error {
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Career Watch <%s>", n.cfg.SenderEmail)
	mail.To = n.cfg.Recipients()
	mail.Subject = subjectLine(report, target)
	mail.Text = []byte(composeBody(report, current, target, n.now()))

	addr := fmt.Sprintf("%s:%d", n.cfg.Server, n.cfg.Port)
	if err := mail.Send(addr, smtp.PlainAuth("", n.cfg.SenderEmail, n.cfg.SenderPassword, n.cfg.Server)); err != nil {
		return &NotificationError{Channel: n.Name(), Err: err}
	}
	return nil
}

func subjectLine(report diff.ChangeReport, target config.Target) string {
	switch {
	case report.CountDelta > 0:
		return fmt.Sprintf("🚨 %s: %d new jobs posted!", target.Name, report.CountDelta)
	case report.CountDelta < 0:
		return fmt.Sprintf("📉 %s: %d fewer jobs listed", target.Name, -report.CountDelta)
	default:
		return fmt.Sprintf("🔄 %s: top listings changed", target.Name)
	}
}

func composeBody(report diff.ChangeReport, current scraper.JobSnapshot, target config.Target, now time.Time) string {
	var b strings.Builder

	b.WriteString("🎯 Career Page Watch Alert\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "⏰ Time: %s\n\n", now.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "📋 %s\n", target.Name)
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Total listings: %d (%+d since last check)\n\n", current.TotalCount, report.CountDelta)

	if len(report.Added) > 0 {
		b.WriteString("🆕 Newly listed:\n")
		for i, job := range report.Added {
			fmt.Fprintf(&b, "   %d. %s\n", i+1, job.Title)
			if job.Link != "" {
				fmt.Fprintf(&b, "      %s\n", job.Link)
			}
		}
		b.WriteString("\n")
	}

	if len(report.Removed) > 0 {
		b.WriteString("❌ No longer in the top listings:\n")
		for _, job := range report.Removed {
			fmt.Fprintf(&b, "   • %s\n", job.Title)
		}
		b.WriteString("\n")
	}

	if len(current.TopJobs) > 0 {
		fmt.Fprintf(&b, "📌 Current top %d:\n", len(current.TopJobs))
		for i, job := range current.TopJobs {
			fmt.Fprintf(&b, "   %d. %s\n", i+1, job.Title)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "🔗 View all jobs: %s\n\n", target.URL)
	b.WriteString("🤖 This is an automated alert from your career page watch.\n")

	return b.String()
}
