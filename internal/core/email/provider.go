// Package email sends transactional mail through a pluggable provider.
package email

// Message is one outbound email.
type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// Provider delivers messages. Implementations: Brevo, Resend.
type Provider interface {
	Send(msg Message) error
	Name() string
}
