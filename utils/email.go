package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	if os.Getenv("SMTP_HOST") == "" {
		log.Printf("SMTP not configured, skipping email to %s (%s)", to, subject)
		return nil
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendOTPEmail delivers the registration verification code
func SendOTPEmail(to, name, otp string) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your HomeFix verification code is:</p>
		<h2>%s</h2>
		<p>The code expires in 15 minutes.</p>
		<p>If you did not create a HomeFix account, you can ignore this email.</p>
		<p>Best regards,</p>
		<p>The HomeFix Team</p>
	`, name, otp)
	return SendEmail(to, "Verify your HomeFix account", body)
}
