package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendPasswordResetEmail sends a password reset email
func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := s.renderTemplate(passwordResetTemplate, map[string]string{
		"Email":    toEmail,
		"ResetURL": resetURL,
		"AppName":  "zForms",
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Reset Your Password - zForms"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// SendEstimateEmail notifies a customer that an estimate is ready for review
func (s *EmailService) SendEstimateEmail(toEmail, customerName, reference string, total float64) error {
	viewURL := fmt.Sprintf("%s/estimates?reference=%s",
		s.config.FrontendURL, url.QueryEscape(reference))

	htmlContent, err := s.renderTemplate(documentTemplate, map[string]string{
		"Name":      customerName,
		"DocLabel":  "estimate",
		"Reference": reference,
		"Amount":    fmt.Sprintf("$%.2f", total),
		"ViewURL":   viewURL,
		"AppName":   "zForms",
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Estimate %s is ready for your review", reference)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// SendInvoiceEmail notifies a customer that an invoice has been issued
func (s *EmailService) SendInvoiceEmail(toEmail, customerName, reference string, total float64) error {
	viewURL := fmt.Sprintf("%s/invoices?reference=%s",
		s.config.FrontendURL, url.QueryEscape(reference))

	htmlContent, err := s.renderTemplate(documentTemplate, map[string]string{
		"Name":      customerName,
		"DocLabel":  "invoice",
		"Reference": reference,
		"Amount":    fmt.Sprintf("$%.2f", total),
		"ViewURL":   viewURL,
		"AppName":   "zForms",
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Invoice %s from your contractor", reference)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func (s *EmailService) renderTemplate(tmplText string, data map[string]string) (string, error) {
	tmpl, err := template.New("email").Parse(tmplText)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// passwordResetTemplate is the HTML template for password reset emails
const passwordResetTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Reset Your Password</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 8px; border-collapse: collapse;">
        <tr>
            <td style="background-color: #1e3a5f; padding: 32px; text-align: center;">
                <h1 style="color: #ffffff; margin: 0; font-size: 26px;">{{.AppName}}</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 32px;">
                <h2 style="color: #1a1a2e; margin: 0 0 16px 0; font-size: 22px;">Reset Your Password</h2>
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    We received a request to reset the password for the account associated with <strong>{{.Email}}</strong>.
                </p>
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    Click the button below to reset your password. This link will expire in <strong>1 hour</strong>.
                </p>
                <table role="presentation" style="margin: 24px auto;">
                    <tr>
                        <td style="background-color: #1e3a5f; border-radius: 6px;">
                            <a href="{{.ResetURL}}" style="display: inline-block; padding: 14px 28px; color: #ffffff; text-decoration: none; font-size: 16px;">
                                Reset Password
                            </a>
                        </td>
                    </tr>
                </table>
                <p style="color: #718096; font-size: 14px; line-height: 1.6;">
                    If you didn't request this password reset, you can safely ignore this email.
                </p>
            </td>
        </tr>
        <tr>
            <td style="background-color: #f8fafc; padding: 24px; text-align: center; border-top: 1px solid #e2e8f0;">
                <p style="color: #a0aec0; font-size: 13px; margin: 0;">This email was sent by {{.AppName}}</p>
            </td>
        </tr>
    </table>
</body>
</html>
`

// documentTemplate is the HTML template for estimate and invoice notifications
const documentTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Document Ready</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 8px; border-collapse: collapse;">
        <tr>
            <td style="background-color: #1e3a5f; padding: 32px; text-align: center;">
                <h1 style="color: #ffffff; margin: 0; font-size: 26px;">{{.AppName}}</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 32px;">
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    Hello {{.Name}},
                </p>
                <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                    Your {{.DocLabel}} <strong>{{.Reference}}</strong> for <strong>{{.Amount}}</strong> is ready.
                </p>
                <table role="presentation" style="margin: 24px auto;">
                    <tr>
                        <td style="background-color: #1e3a5f; border-radius: 6px;">
                            <a href="{{.ViewURL}}" style="display: inline-block; padding: 14px 28px; color: #ffffff; text-decoration: none; font-size: 16px;">
                                View {{.DocLabel}}
                            </a>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
        <tr>
            <td style="background-color: #f8fafc; padding: 24px; text-align: center; border-top: 1px solid #e2e8f0;">
                <p style="color: #a0aec0; font-size: 13px; margin: 0;">This email was sent by {{.AppName}}</p>
            </td>
        </tr>
    </table>
</body>
</html>
`
