package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Product is a catalogue entry. UnitPrice is the pre-tax rate; HSNCode is
// carried opaquely onto invoice lines.
type Product struct {
	ID                snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name              string            `gorm:"not null" json:"name"`
	Description       *string           `gorm:"type:text" json:"description,omitempty"`
	HSNCode           string            `gorm:"column:hsn_code;type:text" json:"hsn_code"`
	UnitPrice         decimal.Decimal   `gorm:"type:numeric(14,2);not null" json:"unit_price"`
	TaxRatePercent    decimal.Decimal   `gorm:"type:numeric(6,2);not null" json:"tax_rate_percent"`
	StockQuantity     decimal.Decimal   `gorm:"type:numeric(14,3);not null;default:0" json:"stock_quantity"`
	LowStockThreshold decimal.Decimal   `gorm:"type:numeric(14,3);not null;default:0" json:"low_stock_threshold"`
	Active            bool              `gorm:"not null;default:true" json:"active"`
	Metadata          datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt         time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// LowStock reports whether the product is at or below its alert threshold.
func (p Product) LowStock() bool {
	return p.StockQuantity.LessThanOrEqual(p.LowStockThreshold)
}
