package mock

import (
	"sync"
	"time"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// SenderMock records outbound mail instead of delivering it. Services send
// from background goroutines, so recording is mutex-guarded and callers wait
// for delivery with WaitForMessages.
type SenderMock struct {
	mu   sync.Mutex
	sent []Message
}

func (m *SenderMock) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, Message{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a snapshot of the recorded messages.
func (m *SenderMock) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.sent...)
}

// WaitForMessages blocks until at least n messages arrived or the timeout
// passed, reporting whether the count was reached.
func (m *SenderMock) WaitForMessages(n int, timeout time.Duration) ([]Message, bool) {
	deadline := time.Now().Add(timeout)
	for {
		msgs := m.Sent()
		if len(msgs) >= n {
			return msgs, true
		}
		if time.Now().After(deadline) {
			return msgs, false
		}
		time.Sleep(5 * time.Millisecond)
	}
}
