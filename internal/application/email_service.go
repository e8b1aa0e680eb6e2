package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/entity"
	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/mailer"
)

// EmailService screens user-to-user messages, records them, and queues the
// actual delivery for the background worker.
type EmailService struct {
	messages repository.EmailMessageRepository
	users    repository.UserRepository
	guard    *ModerationGuard
	queue    EmailQueue
	logger   *logrus.Logger
}

func NewEmailService(
	messages repository.EmailMessageRepository,
	users repository.UserRepository,
	guard *ModerationGuard,
	queue EmailQueue,
	logger *logrus.Logger,
) *EmailService {
	return &EmailService{messages: messages, users: users, guard: guard, queue: queue, logger: logger}
}

type SendMessageRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=3,max=100"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

// Send screens the message, persists it and publishes the delivery job.
func (s *EmailService) Send(ctx context.Context, senderID string, req SendMessageRequest) (*entity.EmailMessage, error) {
	sender, err := s.users.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if !sender.IsAccountVerified {
		return nil, NewPolicyError("Your account is not verified! You cannot send message to user.")
	}
	if err := s.guard.ScreenInjection(map[string]string{
		"to":      req.To,
		"subject": req.Subject,
		"message": req.Message,
	}); err != nil {
		return nil, err
	}
	if err := s.guard.ScreenProfanity(ctx, senderID, map[string]string{
		"subject": req.Subject,
		"message": req.Message,
	}); err != nil {
		return nil, err
	}

	msg := &entity.EmailMessage{
		ID:        uuid.NewString(),
		FromEmail: sender.Email,
		ToEmail:   req.To,
		Subject:   req.Subject,
		Message:   req.Message,
		Category:  "user message",
		SentBy:    sender.ID,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Registered recipients get greeted by name, everyone else by address.
	name := req.To
	if recipient, err := s.users.GetByEmail(ctx, req.To); err == nil {
		name = recipient.FullName()
	}

	if err := s.queue.PublishJSON(ctx, mailer.EmailJob{
		Kind:    mailer.JobAdminMessage,
		To:      req.To,
		Name:    name,
		Subject: req.Subject,
		Message: req.Message,
	}); err != nil {
		s.logger.WithError(err).WithField("message_id", msg.ID).Error("queue email delivery")
	}
	return msg, nil
}

// List returns all recorded messages. Admin only, enforced by the caller.
func (s *EmailService) List(ctx context.Context) ([]*entity.EmailMessage, error) {
	return s.messages.List(ctx)
}

// Flag marks a recorded message as reported.
func (s *EmailService) Flag(ctx context.Context, id string, flagged bool) error {
	return s.messages.SetFlagged(ctx, id, flagged)
}
