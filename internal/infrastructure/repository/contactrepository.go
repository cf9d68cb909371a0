package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gavel/internal/domain/contact"
	"gavel/internal/infrastructure/persistence/models"
	"gavel/internal/shared/logger"
)

// ContactRepository implements contact.Repository on gorm.
type ContactRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewContactRepository(db *gorm.DB, logger logger.Interface) contact.Repository {
	return &ContactRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a submission and writes the generated ID back.
func (r *ContactRepository) Create(ctx context.Context, entity *contact.Message) error {
	model := models.NewContactMessageModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create contact message", "error", err)
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set contact message ID: %w", err)
	}
	return nil
}

// List returns a page of submissions, newest first.
func (r *ContactRepository) List(ctx context.Context, page, pageSize int) ([]*contact.Message, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ContactMessageModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	var messageModels []*models.ContactMessageModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messageModels).Error
	if err != nil {
		r.logger.Errorw("failed to list contact messages", "error", err)
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}

	messages := make([]*contact.Message, 0, len(messageModels))
	for _, model := range messageModels {
		messages = append(messages, model.ToEntity())
	}

	return messages, total, nil
}
