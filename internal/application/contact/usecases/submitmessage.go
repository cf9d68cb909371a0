package usecases

import (
	"context"
	"fmt"

	"gavel/internal/domain/contact"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/logger"
	"gavel/internal/shared/utils"
)

type SubmitMessageCommand struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required,min=3,max=200"`
	Message string `validate:"required,min=10,max=5000"`
}

// Notifier forwards a stored submission to the site operators.
type Notifier interface {
	IsConfigured() bool
	SendContactNotification(msg *contact.Message) error
}

// SubmitMessageUseCase persists a contact-form submission and notifies the
// operators. Notification is best-effort, like the geo lookup on login: its
// failure is logged, never returned to the submitter.
type SubmitMessageUseCase struct {
	contactRepo contact.Repository
	notifier    Notifier
	logger      logger.Interface
}

func NewSubmitMessageUseCase(contactRepo contact.Repository, notifier Notifier, logger logger.Interface) *SubmitMessageUseCase {
	return &SubmitMessageUseCase{
		contactRepo: contactRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *SubmitMessageUseCase) Execute(ctx context.Context, cmd SubmitMessageCommand) (*contact.Message, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	msg, err := contact.NewMessage(cmd.Name, cmd.Email, cmd.Subject, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contactRepo.Create(ctx, msg); err != nil {
		uc.logger.Errorw("failed to store contact message", "error", err)
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if uc.notifier != nil && uc.notifier.IsConfigured() {
		if err := uc.notifier.SendContactNotification(msg); err != nil {
			uc.logger.Warnw("failed to send contact notification", "message_id", msg.ID(), "error", err)
		}
	}

	uc.logger.Infow("contact message received", "message_id", msg.ID(), "email", msg.Email())
	return msg, nil
}
