package notify

import "log"

// LogNotifier writes notifications to the process log. It is the delivery
// path for CLI commands and the fallback when no page is connected.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(text string, severity Severity) {
	log.Printf("[%s] %s", severity, text)
}
