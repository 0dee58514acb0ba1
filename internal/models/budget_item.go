package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BudgetItem struct {
	gorm.Model

	ProjectID    uint   `gorm:"not null;index"`
	Category     string `gorm:"not null"`
	Description  string
	BudgetAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	SpentAmount  decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	Variance     decimal.Decimal `gorm:"type:decimal(15,2);default:0"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
