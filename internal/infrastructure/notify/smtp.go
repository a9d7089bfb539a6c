// Package notify implements the outbound notification sender. Delivery goes
// through a plain SMTP relay; callers treat it as best-effort and never let a
// send failure affect the state transition that triggered it.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Config captures the mail relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// Domain is appended to bare recipient names to form an address.
	Domain string
}

// SMTPNotifier sends mail through the configured relay.
type SMTPNotifier struct {
	cfg  Config
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail}
}

// Send delivers one message. Bare recipients (employee usernames) are turned
// into addresses with the configured domain.
func (n *SMTPNotifier) Send(recipient, subject, body string) error {
	to := recipient
	if !strings.Contains(to, "@") {
		to = to + "@" + n.cfg.Domain
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", n.cfg.From, to, subject, body)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	if err := n.send(addr, auth, n.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
