package notificationrepo

import (
	"context"
	"errors"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"
	"tailorshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, entity *notification.Notification) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entity)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the read state of an existing notification.
func (r *GormNotificationRepository) Update(ctx context.Context, entity *notification.Notification) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entity)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Select("*").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notificationId", entity.ID().String())
	}

	return nil
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notificationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetUnreadFor retrieves unread notifications addressed to the actor. The
// jsonb targeting columns are matched in the domain after loading, highest
// priority first.
func (r *GormNotificationRepository) GetUnreadFor(ctx context.Context, userID kernel.UUID, role kernel.Role) ([]*notification.Notification, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return nil, err
	}

	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Order(`
			CASE priority
				WHEN 'urgent' THEN 0
				WHEN 'high' THEN 1
				WHEN 'medium' THEN 2
				ELSE 3
			END, created_at DESC
		`).
		Find(&dtos, "is_read = ?", false).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		entity, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		if entity.IsFor(userID, role) {
			entities = append(entities, entity)
		}
	}

	return entities, nil
}
