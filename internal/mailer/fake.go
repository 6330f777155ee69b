package mailer

import (
	"context"
	"sync"
)

// Message is a mail captured by FakeMailer.
type Message struct {
	To      string
	Subject string
	Body    string
}

// FakeMailer records sent messages; Err, when set, is returned from Send.
type FakeMailer struct {
	mu   sync.Mutex
	sent []Message
	Err  error
}

func (f *FakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.sent = append(f.sent, Message{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of the recorded messages.
func (f *FakeMailer) Sent() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Message, len(f.sent))
	copy(out, f.sent)
	return out
}
