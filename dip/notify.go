package dip

import (
	"fmt"
	"io"
)

// MessageSender delivers a message to a recipient over some channel.
type MessageSender interface {
	Send(to, msg string)
}

// EmailSender delivers over the email channel. Delivery is simulated by a
// confirmation line on the writer.
type EmailSender struct {
	out io.Writer
}

// NewEmailSender constructs an email channel writing confirmations to out.
func NewEmailSender(out io.Writer) *EmailSender {
	return &EmailSender{out: out}
}

// Send implements MessageSender.
func (e *EmailSender) Send(to, msg string) {
	fmt.Fprintf(e.out, "Email to %s: %s\n", to, msg)
}

// SMSSender delivers over the SMS channel.
type SMSSender struct {
	out io.Writer
}

// NewSMSSender constructs an SMS channel writing confirmations to out.
func NewSMSSender(out io.Writer) *SMSSender {
	return &SMSSender{out: out}
}

// Send implements MessageSender.
func (s *SMSSender) Send(to, msg string) {
	fmt.Fprintf(s.out, "SMS to %s: %s\n", to, msg)
}

var (
	_ MessageSender = (*EmailSender)(nil)
	_ MessageSender = (*SMSSender)(nil)
)

// NotificationService forwards notifications to whatever sender it was
// constructed with. It never chooses a channel itself.
type NotificationService struct {
	sender MessageSender
}

// NewNotificationService constructs the service around an injected sender.
func NewNotificationService(sender MessageSender) *NotificationService {
	return &NotificationService{sender: sender}
}

// Notify forwards user and message to the injected channel verbatim.
func (n *NotificationService) Notify(user, message string) {
	n.sender.Send(user, message)
}
