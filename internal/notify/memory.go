package notify

import "context"

// Memory is an in-process Notifier for tests. It records every
// notification and optionally fails with a scripted error.
type Memory struct {
	Sent []Notification
	Err  error
}

// Notify records the notification.
func (m *Memory) Notify(_ context.Context, n Notification) error {
	m.Sent = append(m.Sent, n)
	return m.Err
}

// Last returns the most recent notification, or a zero Notification when
// nothing was sent.
func (m *Memory) Last() Notification {
	if len(m.Sent) == 0 {
		return Notification{}
	}
	return m.Sent[len(m.Sent)-1]
}
