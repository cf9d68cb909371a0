package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gavel/internal/domain/audit"
	"gavel/internal/infrastructure/persistence/models"
	"gavel/internal/shared/logger"
)

// LoginEventRepository implements audit.Repository on gorm. The table is
// append-only; no update or delete path exists here.
type LoginEventRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLoginEventRepository(db *gorm.DB, logger logger.Interface) audit.Repository {
	return &LoginEventRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a login event and writes the generated ID back.
func (r *LoginEventRepository) Create(ctx context.Context, event *audit.LoginEvent) error {
	model := models.NewLoginEventModel(event)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append login event", "user_id", event.UserID(), "error", err)
		return fmt.Errorf("failed to append login event: %w", err)
	}

	if err := event.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set login event ID: %w", err)
	}
	return nil
}

// ListByUserID returns a page of one user's login history, newest first.
func (r *LoginEventRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*audit.LoginEvent, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID), page, pageSize)
}

// List returns a page of all login events, newest first.
func (r *LoginEventRepository) List(ctx context.Context, page, pageSize int) ([]*audit.LoginEvent, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx), page, pageSize)
}

func (r *LoginEventRepository) list(ctx context.Context, tx *gorm.DB, page, pageSize int) ([]*audit.LoginEvent, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := tx.Model(&models.LoginEventModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count login events: %w", err)
	}

	var eventModels []*models.LoginEventModel
	err := tx.Model(&models.LoginEventModel{}).
		Order("login_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&eventModels).Error
	if err != nil {
		r.logger.Errorw("failed to list login events", "error", err)
		return nil, 0, fmt.Errorf("failed to list login events: %w", err)
	}

	events := make([]*audit.LoginEvent, 0, len(eventModels))
	for _, model := range eventModels {
		events = append(events, model.ToEntity())
	}

	return events, total, nil
}

// Count returns the total number of login events.
func (r *LoginEventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LoginEventModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count login events: %w", err)
	}
	return count, nil
}
