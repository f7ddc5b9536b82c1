// Package receipts renders and sends donor thank-you emails.
package receipts

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/chris/donation-reconciler/pkg/notifier"
)

const fromName = "Donation Receipts"

// Sender sends receipt emails over SMTP.
type Sender struct {
	Server     string
	Port       int
	FromDomain string
}

// NewSender creates a Sender.
func NewSender(server string, port int, fromDomain string) *Sender {
	return &Sender{Server: server, Port: port, FromDomain: fromDomain}
}

// Send renders the receipt and delivers it to the donor.
func (s *Sender) Send(receipt notifier.Receipt) error {
	from := "donations@" + s.FromDomain
	msg := render(from, receipt)

	addr := fmt.Sprintf("%s:%d", s.Server, s.Port)
	if err := smtp.SendMail(addr, nil, from, []string{receipt.Email}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send receipt to %s: %w", receipt.Email, err)
	}

	return nil
}

func render(from string, receipt notifier.Receipt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", fromName, from)
	fmt.Fprintf(&b, "To: %s\r\n", receipt.Email)
	fmt.Fprintf(&b, "Subject: Thank you for your donation\r\n")
	fmt.Fprintf(&b, "\r\n")
	fmt.Fprintf(&b, "Dear %s,\r\n\r\n", receipt.DisplayName)
	fmt.Fprintf(&b, "Thank you for your donation of $%s made on %s.\r\n",
		receipt.Amount.StringFixed(2), receipt.PaymentDate.Format("January 2, 2006"))
	if receipt.EditorName != "" {
		fmt.Fprintf(&b, "It has been credited to your account %q.\r\n", receipt.EditorName)
	}
	fmt.Fprintf(&b, "\r\nThis message can serve as your receipt.\r\n")
	return b.String()
}
