package notify

import (
	"fmt"
	"log"
	"strings"

	"go-career-watch/internal/config"
	"go-career-watch/internal/diff"
	"go-career-watch/internal/scraper"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier is an optional secondary channel.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier returns nil when the bot is not configured or cannot
// authenticate; the run proceeds without the channel.
func NewTelegramNotifier(cfg config.Telegram) *TelegramNotifier {
	if !cfg.Complete() {
		return nil
	}
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		log.Printf("⚠️ Failed to init Telegram bot: %v. Telegram alerts disabled.", err)
		return nil
	}
	return &TelegramNotifier{api: api, chatID: cfg.ChatID}
}

func (t *TelegramNotifier) Name() string { return "telegram" }

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

func (t *TelegramNotifier) Notify(report diff.ChangeReport, current scraper.JobSnapshot, target config.Target) error {
	msgText := fmt.Sprintf("🎯 *%s*\n", escapeMarkdown(target.Name))
	msgText += escapeMarkdown(fmt.Sprintf("Total listings: %d (%+d)\n", current.TotalCount, report.CountDelta))

	if len(report.Added) > 0 {
		msgText += "\n🆕 Newly listed:\n"
		for _, job := range report.Added {
			if job.Link != "" {
				msgText += fmt.Sprintf("• [%s](%s)\n", escapeMarkdown(job.Title), job.Link)
			} else {
				msgText += fmt.Sprintf("• %s\n", escapeMarkdown(job.Title))
			}
		}
	}
	if len(report.Removed) > 0 {
		msgText += "\n❌ Dropped:\n"
		for _, job := range report.Removed {
			msgText += fmt.Sprintf("• %s\n", escapeMarkdown(job.Title))
		}
	}
	msgText += fmt.Sprintf("\n🔗 [View all jobs](%s)", target.URL)

	msg := tgbotapi.NewMessage(t.chatID, msgText)
	msg.ParseMode = "MarkdownV2"

	if _, err := t.api.Send(msg); err != nil {
		return &NotificationError{Channel: t.Name(), Err: err}
	}
	return nil
}
