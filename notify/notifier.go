package notify

import "log"

// Notifier delivers a message to a recipient address. The lifecycle depends
// only on this signature, not on any particular transport.
type Notifier interface {
	Send(recipient, subject, body string) error
}

// LogNotifier writes notifications to the application log instead of sending
// them anywhere. It stands in for a real mail transport in development and
// tests.
type LogNotifier struct {
	Sender string
}

// NewLogNotifier creates a LogNotifier with the given sender address.
func NewLogNotifier(sender string) *LogNotifier {
	return &LogNotifier{Sender: sender}
}

// Send logs the notification and always succeeds.
func (n *LogNotifier) Send(recipient, subject, body string) error {
	log.Printf("notification from %s to %s: %s\n%s", n.Sender, recipient, subject, body)
	return nil
}
