package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProgressDraw struct {
	gorm.Model

	ProjectID   uint `gorm:"not null;index"`
	DrawNumber  string
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	Status      string          `gorm:"not null;default:requested"` // "requested", "approved", "paid"
	RequestedAt time.Time       `gorm:"not null"`
	PaidAt      *time.Time

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
