package utils

import (
	"fmt"
	"log"

	"lms/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends one HTML email through SendGrid. A missing API key
// disables sending instead of failing the caller.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	cfg := config.AppConfig
	if cfg == nil || cfg.SendGridKey == "" {
		log.Printf("Email disabled, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := sgmail.NewEmail(cfg.AppName, cfg.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(cfg.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send email to %s, response code: %d", toEmail, resp.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", resp.StatusCode)
	}
	return nil
}

// SendEnrollDecisionEmail notifies a learner that their enrollment request
// was accepted or rejected.
func SendEnrollDecisionEmail(toEmail, toName, courseName, decision string) error {
	subject := fmt.Sprintf("Enrollment update for %s", courseName)

	var note string
	if decision == "accepted" {
		note = "Congratulations! Your enrollment request has been approved. You can now access all published modules and start learning."
	} else {
		note = "Unfortunately your enrollment request was not approved this time. You can send a new request at any moment."
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Enrollment Request %s</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Course:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">%s</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Happy Learning!</p>
				</div>
			</body>
		</html>
	`, decision, toName, courseName, note)

	return SendEmail(toEmail, toName, subject, body)
}
