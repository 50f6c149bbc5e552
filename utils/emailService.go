package utils

import (
	"fmt"
	"net/smtp"
	"pmti/config"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", config.Site().SiteName, from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	siteName := config.Site().SiteName
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1e3a8a; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1e3a8a; line-height: 1.6; }
			.content h2 { color: #1e3a8a; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #3b82f6; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; %s. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, strings.ToUpper(siteName), title, bodyContent, siteName)
}

// --- Triggers ---

// 1. Welcome / Registration received
func SendWelcomeEmail(email, name string) {
	subject := "Registration Received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for registering with <strong>%s</strong>.</p>
		<div class="info-box">
			Your account is pending verification by the administrator. You will be able
			to log in once your account is approved.
		</div>
	`, name, config.Site().SiteName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome!", body))
}

// 2. Account verified by an administrator
func SendAccountVerifiedEmail(email, name string) {
	subject := "Your Account Has Been Verified"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account has been verified by the administrator.</p>
		<p>You can now log in and access your enrolled courses.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Account Verified", body))
}

// 3. Certificate issued
func SendCertificateIssuedEmail(email, name, courseTitle, certificateNumber string) {
	subject := "Certificate Issued: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! Your completion certificate for <strong>%s</strong> has been issued.</p>
		<div class="info-box">
			<strong>Certificate No:</strong> %s
		</div>
		<p>You can download it from your course page at any time.</p>
	`, name, courseTitle, certificateNumber)

	go SendEmail([]string{email}, subject, getEmailTemplate("Certificate Issued", body))
}
