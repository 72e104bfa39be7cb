package queries

import (
	"context"
	"encoding/json"
	"slices"

	"tailorshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves the unread inbox for one actor.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for inbox queries.
// Requires a GORM database connection for query execution.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query. Targeting lives in jsonb arrays, so the rows
// come back unfiltered and the recipient match happens here, mirroring the
// domain's addressing rules.
func (h GetNotificationsQueryHandler) Handle(ctx context.Context, query GetNotificationsQuery) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, message, type, priority, target_roles, target_users, created_at
		FROM notifications
		WHERE is_read = false
		ORDER BY
			CASE priority
				WHEN 'urgent' THEN 0
				WHEN 'high' THEN 1
				WHEN 'medium' THEN 2
				ELSE 3
			END,
			created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actor := query.Actor()
	inbox := make([]NotificationResponse, 0)

	for rows.Next() {
		var (
			resp      NotificationResponse
			id        uuid.UUID
			rolesJSON []byte
			usersJSON []byte
			roles     []kernel.Role
			users     []kernel.UUID
		)

		if err = rows.Scan(
			&id,
			&resp.Message,
			&resp.Type,
			&resp.Priority,
			&rolesJSON,
			&usersJSON,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(rolesJSON) > 0 {
			if err = json.Unmarshal(rolesJSON, &roles); err != nil {
				return nil, err
			}
		}
		if len(usersJSON) > 0 {
			if err = json.Unmarshal(usersJSON, &users); err != nil {
				return nil, err
			}
		}

		if !addressedTo(actor.ID, actor.Role, roles, users) {
			continue
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		inbox = append(inbox, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return inbox, nil
}

func addressedTo(userID kernel.UUID, role kernel.Role, roles []kernel.Role, users []kernel.UUID) bool {
	if slices.Contains(roles, role) {
		return true
	}
	return slices.ContainsFunc(users, func(target kernel.UUID) bool {
		return target.IsEqual(userID)
	})
}
