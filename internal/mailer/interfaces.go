package mailer

type Service interface {
	SendWelcomeEmail(toEmail, firstName string) error
}
