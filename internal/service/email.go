package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendRentalReminder(ctx context.Context, email, name, carName string, start time.Time) error {
	subject := "Your rental starts soon"
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that your rental of %s starts on %s.\n\nBest regards,\nThe Rentacar Team",
		name, carName, start.Format("2006-01-02 15:04"))
	return s.send(email, subject, body)
}

func (s *emailService) SendLicenseExpiryReminder(ctx context.Context, email, name, number string, expiry time.Time) error {
	subject := "Your driver license is about to expire"
	body := fmt.Sprintf("Hello %s,\n\nYour driver license %s expires on %s. Please renew it to keep booking cars.\n\nBest regards,\nThe Rentacar Team",
		name, number, expiry.Format("2006-01-02"))
	return s.send(email, subject, body)
}
