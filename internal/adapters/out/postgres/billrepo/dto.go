// Package billrepo provides data transfer objects and mapping functions for
// bill persistence. Payments are stored as a jsonb payload on the bill row;
// the paid total is denormalized into its own column so the dashboard can
// sum it without decoding json.
package billrepo

import (
	"encoding/json"
	"time"

	"tailorshop/internal/core/domain/model/bill"
	"tailorshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BillDTO represents the database structure for persisting bill aggregates.
type BillDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount     float64
	AmountPaid float64
	Payments   []byte `gorm:"type:jsonb"`
	CreatedAt  time.Time
	Version    int
}

// TableName specifies the database table name for bill entities.
func (BillDTO) TableName() string {
	return "bills"
}

// paymentDTO is the jsonb shape of one payment. The keys match the API
// read model so the query side can decode the column directly.
type paymentDTO struct {
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference,omitempty"`
	At        time.Time `json:"at"`
}

// fromDomain converts a bill aggregate to its database representation.
func fromDomain(aggregate *bill.Bill) (BillDTO, error) {
	payments := make([]paymentDTO, 0, len(aggregate.Payments()))
	for _, p := range aggregate.Payments() {
		payments = append(payments, paymentDTO{
			Amount:    p.Amount,
			Method:    p.Method,
			Reference: p.Reference,
			At:        p.At,
		})
	}
	paymentsJSON, err := json.Marshal(payments)
	if err != nil {
		return BillDTO{}, err
	}

	return BillDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.Order().Bytes(),
		Amount:     aggregate.Amount(),
		AmountPaid: aggregate.AmountPaid(),
		Payments:   paymentsJSON,
		CreatedAt:  aggregate.CreatedAt(),
		Version:    aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to a bill aggregate using RestoreBill.
func toDomain(dto BillDTO) (*bill.Bill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var paymentDTOs []paymentDTO
	if len(dto.Payments) > 0 {
		if err = json.Unmarshal(dto.Payments, &paymentDTOs); err != nil {
			return nil, err
		}
	}
	payments := make([]bill.Payment, 0, len(paymentDTOs))
	for _, p := range paymentDTOs {
		payments = append(payments, bill.Payment{
			Amount:    p.Amount,
			Method:    p.Method,
			Reference: p.Reference,
			At:        p.At,
		})
	}

	return bill.RestoreBill(bill.RestoreBillParams{
		ID:         id,
		OrderID:    orderID,
		Amount:     dto.Amount,
		AmountPaid: dto.AmountPaid,
		Payments:   payments,
		CreatedAt:  dto.CreatedAt,
		Version:    dto.Version,
	})
}
