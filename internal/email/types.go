package email

// Email is one outbound message.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single email synchronously. Asynchronous delivery is the
// job of the workers package, not of implementations of this interface.
type Sender interface {
	Send(email *Email) error
}

// MockSender records messages instead of sending them. Used in tests and
// when SMTP is disabled in config.
type MockSender struct {
	Sent []Email
}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (m *MockSender) Send(email *Email) error {
	m.Sent = append(m.Sent, *email)
	return nil
}
