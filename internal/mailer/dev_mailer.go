package mailer

import (
	"fmt"

	"github.com/salesai/analyst-api/pkg/logger"
)

type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendWelcomeEmail(toEmail, firstName string) error {
	logger.Info("[DEV MAIL] Welcome Email",
		"to", toEmail,
		"name", firstName,
	)

	fmt.Printf("\n"+
		"=================================================================\n"+
		"WELCOME EMAIL (DEV MODE)\n"+
		"=================================================================\n"+
		"To: %s (%s)\n"+
		"Subject: Welcome to Sales-AI-Analyst\n"+
		"=================================================================\n\n",
		toEmail, firstName)

	return nil
}
