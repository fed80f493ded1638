package service

import (
	"context"

	"newsroom-be/internal/dto"
	"newsroom-be/internal/pkg/mailer"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactService struct {
	emailService mailer.IEmailService
}

func NewContactService(emailService mailer.IEmailService) IContactService {
	return &contactService{emailService: emailService}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) error {
	return s.emailService.SendContactMessage(req.Name, req.Email, req.Subject, req.Message)
}
