package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"toolshare-backend/internal/logger"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) SendRequestCreated(ctx context.Context, ownerEmail, consumerName, toolName string) error {
	subject := fmt.Sprintf("New rental request: %s", toolName)
	plain := fmt.Sprintf("%s wants to rent your %s.", consumerName, toolName)
	html := fmt.Sprintf("<p><strong>%s</strong> wants to rent your <strong>%s</strong>.</p>", consumerName, toolName)
	return s.send(ctx, ownerEmail, subject, plain, html)
}

func (s *sendgridEmailService) SendRequestStatusUpdate(ctx context.Context, email, toolName, status string) error {
	subject := fmt.Sprintf("Rental request update: %s", toolName)
	plain := fmt.Sprintf("Your rental request for %s is now %s.", toolName, status)
	html := fmt.Sprintf("<p>Your rental request for <strong>%s</strong> is now <strong>%s</strong>.</p>", toolName, status)
	return s.send(ctx, email, subject, plain, html)
}

func (s *sendgridEmailService) send(_ context.Context, to, subject, plainText, htmlContent string) error {
	if s.apiKey == "" {
		logger.Debug("email delivery disabled, skipping", "subject", subject)
		return nil
	}
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("sending email: %w", err)
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid status %d: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
