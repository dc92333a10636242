// Package mail delivers contact form submissions to the site owner.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/dmitrijs2005/foliovault/internal/logging"
)

// Message is an outbound notification. ReplyTo carries the visitor's
// address so the owner can answer directly.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer sends a single message. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
}

// NewSMTPMailer sends through the relay at addr (host:port), with from
// as the envelope sender.
func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	if err := smtp.SendMail(m.addr, nil, m.from, []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// LogMailer writes messages to the log instead of delivering them.
// Used when no SMTP relay is configured, so local setups work without
// mail infrastructure.
type LogMailer struct {
	log logging.Logger
}

func NewLogMailer(log logging.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.Info(ctx, "mail delivery skipped, no relay configured",
		"to", msg.To, "replyTo", msg.ReplyTo, "subject", msg.Subject)
	return nil
}
