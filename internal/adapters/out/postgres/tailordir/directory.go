// Package tailordir answers tailor existence checks against the shop's
// tailor roster. The roster table is maintained by the back office; this
// adapter only reads it.
package tailordir

import (
	"context"
	"time"

	"tailorshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TailorDTO represents one row of the tailor roster.
type TailorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Active    bool `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for roster entries.
func (TailorDTO) TableName() string {
	return "tailors"
}

// GormTailorDirectory implements TailorDirectory over the roster table.
type GormTailorDirectory struct {
	db *gorm.DB
}

// NewGormTailorDirectory creates a new GORM tailor directory.
func NewGormTailorDirectory(db *gorm.DB) *GormTailorDirectory {
	return &GormTailorDirectory{db: db}
}

// Exists reports whether the given id belongs to an active tailor.
func (d *GormTailorDirectory) Exists(ctx context.Context, tailorID kernel.UUID) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&TailorDTO{}).
		Where("id = ? AND active", tailorID.Bytes()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
