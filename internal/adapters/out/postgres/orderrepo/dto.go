// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Measurements and the note trail are stored as jsonb payloads; the version
// column backs the optimistic-concurrency check in Update.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	TailorID         *uuid.UUID `gorm:"type:uuid;index"`
	Assignment       int
	Status           int `gorm:"index"`
	ItemType         string
	Measurements     []byte `gorm:"type:jsonb"`
	FabricSource     string
	FabricName       string
	Notes            []byte `gorm:"type:jsonb"`
	ExpectedDelivery time.Time
	TotalAmount      float64
	CreatedAt        time.Time
	StartedAt        *time.Time
	StartedBy        *uuid.UUID `gorm:"type:uuid"`
	Version          int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// noteDTO is the jsonb shape of one note trail entry. The keys match the
// API read model so the query side can decode the column directly.
type noteDTO struct {
	AuthorID kernel.UUID `json:"authorId"`
	Text     string      `json:"text"`
	At       time.Time   `json:"at"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	measurements, err := json.Marshal(aggregate.Measurements())
	if err != nil {
		return OrderDTO{}, err
	}

	notes := make([]noteDTO, 0, len(aggregate.Notes()))
	for _, n := range aggregate.Notes() {
		notes = append(notes, noteDTO{AuthorID: n.AuthorID, Text: n.Text, At: n.At})
	}
	notesJSON, err := json.Marshal(notes)
	if err != nil {
		return OrderDTO{}, err
	}

	var tailorID *uuid.UUID
	if id := aggregate.Tailor(); id != nil {
		raw := id.Bytes()
		tailorID = &raw
	}

	var startedBy *uuid.UUID
	if id := aggregate.StartedBy(); id != nil {
		raw := id.Bytes()
		startedBy = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.Customer().Bytes(),
		TailorID:         tailorID,
		Assignment:       int(aggregate.Assignment()),
		Status:           int(aggregate.Status()),
		ItemType:         aggregate.ItemType(),
		Measurements:     measurements,
		FabricSource:     string(aggregate.Fabric().Source()),
		FabricName:       aggregate.Fabric().Name(),
		Notes:            notesJSON,
		ExpectedDelivery: aggregate.ExpectedDelivery(),
		TotalAmount:      aggregate.TotalAmount(),
		CreatedAt:        aggregate.CreatedAt(),
		StartedAt:        aggregate.StartedAt(),
		StartedBy:        startedBy,
		Version:          aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var tailorID *kernel.UUID
	if dto.TailorID != nil {
		tID, tailorErr := kernel.UUIDFromBytes((*dto.TailorID)[:])
		if tailorErr != nil {
			return nil, tailorErr
		}
		tailorID = &tID
	}

	var startedBy *kernel.UUID
	if dto.StartedBy != nil {
		sID, startedErr := kernel.UUIDFromBytes((*dto.StartedBy)[:])
		if startedErr != nil {
			return nil, startedErr
		}
		startedBy = &sID
	}

	fabric, err := order.NewFabric(order.FabricSource(dto.FabricSource), dto.FabricName)
	if err != nil {
		return nil, err
	}

	var measurements order.Measurements
	if len(dto.Measurements) > 0 {
		if err = json.Unmarshal(dto.Measurements, &measurements); err != nil {
			return nil, err
		}
	}

	var noteDTOs []noteDTO
	if len(dto.Notes) > 0 {
		if err = json.Unmarshal(dto.Notes, &noteDTOs); err != nil {
			return nil, err
		}
	}
	notes := make([]order.Note, 0, len(noteDTOs))
	for _, n := range noteDTOs {
		notes = append(notes, order.Note{AuthorID: n.AuthorID, Text: n.Text, At: n.At})
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		CustomerID:       customerID,
		TailorID:         tailorID,
		Status:           order.Status(dto.Status),
		Assignment:       order.AssignmentState(dto.Assignment),
		ItemType:         dto.ItemType,
		Measurements:     measurements,
		Fabric:           fabric,
		Notes:            notes,
		ExpectedDelivery: dto.ExpectedDelivery,
		TotalAmount:      dto.TotalAmount,
		CreatedAt:        dto.CreatedAt,
		StartedAt:        dto.StartedAt,
		StartedBy:        startedBy,
		Version:          dto.Version,
	})
}
