// Notification channels for change reports
// A channel that cannot send is a warning, never a run failure

package notify

import (
	"fmt"

	"go-career-watch/internal/config"
	"go-career-watch/internal/diff"
	"go-career-watch/internal/scraper"
)

// NotificationError wraps a dispatch failure on one channel.
type NotificationError struct {
	Channel string
	Err     error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("%s notification failed: %v", e.Channel, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

// Notifier delivers a notable change report over one channel.
type Notifier interface {
	Name() string
	Notify(report diff.ChangeReport, current scraper.JobSnapshot, target config.Target) error
}
