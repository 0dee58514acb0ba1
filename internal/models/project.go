package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	gorm.Model

	Name               string `gorm:"not null"`
	Description        string
	Location           string
	Status             string          `gorm:"not null;default:active"`
	BudgetTotal        decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	BudgetSpent        decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	BudgetVariance     decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	ProgressPercentage int             `gorm:"not null;default:0"`
	StartDate          *datatypes.Date
	EndDate            *datatypes.Date
	OwnerID            uint `gorm:"not null;index"`

	// Relationships
	Owner           User             `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks           []Task           `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	BudgetItems     []BudgetItem     `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ChangeOrders    []ChangeOrder    `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ProgressDraws   []ProgressDraw   `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	SafetyIncidents []SafetyIncident `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
