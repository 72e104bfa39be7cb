// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence. Role and user targeting is stored
// as jsonb arrays; recipient matching happens in the domain, not in SQL.
package notificationrepo

import (
	"encoding/json"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notifications.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Message     string
	Type        string
	Priority    string
	TargetRoles []byte `gorm:"type:jsonb"`
	TargetUsers []byte `gorm:"type:jsonb"`
	IsRead      bool   `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification entity to its database representation.
func fromDomain(entity *notification.Notification) (NotificationDTO, error) {
	rolesJSON, err := json.Marshal(entity.TargetRoles())
	if err != nil {
		return NotificationDTO{}, err
	}

	usersJSON, err := json.Marshal(entity.TargetUsers())
	if err != nil {
		return NotificationDTO{}, err
	}

	return NotificationDTO{
		ID:          entity.ID().Bytes(),
		Message:     entity.Message(),
		Type:        entity.Type().String(),
		Priority:    entity.Priority().String(),
		TargetRoles: rolesJSON,
		TargetUsers: usersJSON,
		IsRead:      entity.IsRead(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a notification entity using
// RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var roles []kernel.Role
	if len(dto.TargetRoles) > 0 {
		if err = json.Unmarshal(dto.TargetRoles, &roles); err != nil {
			return nil, err
		}
	}

	var users []kernel.UUID
	if len(dto.TargetUsers) > 0 {
		if err = json.Unmarshal(dto.TargetUsers, &users); err != nil {
			return nil, err
		}
	}

	return notification.RestoreNotification(notification.RestoreNotificationParams{
		ID:          id,
		Message:     dto.Message,
		Type:        notification.Type(dto.Type),
		Priority:    notification.Priority(dto.Priority),
		TargetRoles: roles,
		TargetUsers: users,
		IsRead:      dto.IsRead,
		CreatedAt:   dto.CreatedAt,
	})
}
