package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendWelcomeEmail(toEmail, firstName string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "Welcome to Sales-AI-Analyst"
	html := fmt.Sprintf(`
		<h2>Welcome to Sales-AI-Analyst!</h2>
		<p>Hi %s,</p>
		<p>Your account has been created. You can now log in and start exploring your feed.</p>
	`, firstName)
	text := fmt.Sprintf("Hi %s,\n\nYour Sales-AI-Analyst account has been created. You can now log in.", firstName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(m.from)
	message.SetRecipients([]mailersend.Recipient{{Name: firstName, Email: toEmail}})
	message.SetSubject(subject)
	message.SetHTML(html)
	message.SetText(text)

	_, err := m.client.Email.Send(ctx, message)
	return err
}
