package mailer

import (
	"fmt"
	"net/smtp"
)

type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (s *SMTPMailer) SendWelcomeEmail(toEmail, firstName string) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	body := fmt.Sprintf("Hi %s,\n\nYour Sales-AI-Analyst account has been created. You can now log in.", firstName)
	msg := []byte("From: " + s.from + "\r\n" +
		"To: " + toEmail + "\r\n" +
		"Subject: Welcome to Sales-AI-Analyst\r\n" +
		"\r\n" + body + "\r\n")

	var a smtp.Auth
	if s.user != "" {
		a = smtp.PlainAuth("", s.user, s.pass, s.host)
	}

	return smtp.SendMail(addr, a, s.from, []string{toEmail}, msg)
}
