package notify

// Severity indicates how a notification should be presented.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier delivers a user-visible message. Delivery is fire-and-forget:
// implementations must not block the caller on acknowledgment.
type Notifier interface {
	Notify(text string, severity Severity)
}

// Multi fans a notification out to every given notifier.
func Multi(notifiers ...Notifier) Notifier {
	return multiNotifier(notifiers)
}

type multiNotifier []Notifier

func (m multiNotifier) Notify(text string, severity Severity) {
	for _, n := range m {
		n.Notify(text, severity)
	}
}
