package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// MailService delivers contact-form messages to the hotel inbox over SMTP.
type MailService struct {
	host string
	port int
	user string
	pass string
}

// NewMailService reads the SMTP configuration from the environment.
// Returns an error when the credentials are absent so callers can report
// a configuration problem instead of failing mid-send.
func NewMailService() (*MailService, error) {
	user := os.Getenv("GMAIL_USER")
	pass := os.Getenv("GMAIL_APP_PASSWORD")
	if user == "" || pass == "" {
		return nil, fmt.Errorf("mail configuration missing")
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
		}
		port = parsed
	}

	return &MailService{host: host, port: port, user: user, pass: pass}, nil
}

// SendContactMessage forwards a visitor's message to the hotel inbox with
// the visitor's address as Reply-To.
func (ms *MailService) SendContactMessage(name, email, subject, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", ms.user)
	m.SetHeader("To", ms.user)
	m.SetHeader("Reply-To", email)
	m.SetHeader("Subject", "Hotel Contact: "+subject)
	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message))

	dialer := gomail.NewDialer(ms.host, ms.port, ms.user, ms.pass)
	if err := dialer.DialAndSend(m); err != nil {
		log.Printf("mail: failed to send contact message: %v", err)
		return err
	}
	return nil
}
