package billrepo

import (
	"context"
	"errors"

	"tailorshop/internal/core/domain/model/bill"
	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBillRepository implements BillRepository using GORM.
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GORM bill repository.
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// Add saves a new bill to the database. The unique index on order_id backs
// the one-bill-per-order invariant at the storage level.
func (r *GormBillRepository) Add(ctx context.Context, aggregate *bill.Bill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing bill using a version-guarded conditional write.
// A lost race surfaces as ConflictError so the caller can reload and retry.
func (r *GormBillRepository) Update(ctx context.Context, aggregate *bill.Bill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&BillDTO{}).
		Select("*").
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("billId", aggregate.ID().String())
	}

	return nil
}

// GetByOrder retrieves the bill raised for an order.
func (r *GormBillRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*bill.Bill, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto BillDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
