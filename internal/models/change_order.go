package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ChangeOrder struct {
	gorm.Model

	ProjectID   uint `gorm:"not null;index"`
	Title       string
	Description string          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	Status      string          `gorm:"not null;default:pending"` // "pending", "approved", "rejected"
	RequestedBy uint            `gorm:"not null;index"`

	// Relationships
	Project   Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	// RequestedBy is NOT NULL, so a user with change orders on record
	// cannot be deleted.
	Requester User `gorm:"foreignKey:RequestedBy;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
}
