package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"toolrent-backend/internal/domain"
)

// EmailService sends customer notifications for agreement lifecycle steps.
type EmailService interface {
	SendAgreementPending(ctx context.Context, email, name string, agreement *domain.RentalAgreement) error
	SendAgreementDecision(ctx context.Context, email, name string, agreement *domain.RentalAgreement) error
}

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendAgreementPending(ctx context.Context, email, name string, agreement *domain.RentalAgreement) error {
	subject := fmt.Sprintf("Your rental agreement %s is ready", agreement.Reference)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental agreement is ready for review. Please accept or reject it to proceed.\n\n%s\nReference: %s\n",
		name, agreement.Agreement, agreement.Reference,
	)
	return s.send(email, name, subject, body)
}

func (s *sendGridEmailService) SendAgreementDecision(ctx context.Context, email, name string, agreement *domain.RentalAgreement) error {
	var subject, action string
	switch agreement.Status {
	case domain.RentalAgreementStatusAccepted:
		subject = fmt.Sprintf("Rental agreement %s accepted", agreement.Reference)
		action = "accepted; your tool is checked out"
	case domain.RentalAgreementStatusRejected:
		subject = fmt.Sprintf("Rental agreement %s rejected", agreement.Reference)
		action = "rejected; the rental was cancelled"
	default:
		return fmt.Errorf("agreement %d has no decision to notify", agreement.ID)
	}

	body := fmt.Sprintf("Hello %s,\n\nYour rental agreement %s was %s.\n", name, agreement.Reference, action)
	return s.send(email, name, subject, body)
}

func (s *sendGridEmailService) send(toEmail, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
