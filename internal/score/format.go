package score

import (
	"fmt"
	"time"
)

// FormatDuration renders a play duration for the history view.
func FormatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	case d >= time.Minute:
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}

// FormatDate renders a history timestamp for display.
func FormatDate(t time.Time) string {
	return t.Format("2006/01/02 15:04")
}
