package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Task struct {
	gorm.Model

	ProjectID          uint   `gorm:"not null;index"`
	Title              string `gorm:"not null"`
	Description        string
	Status             string `gorm:"not null;default:pending"` // "pending", "in_progress", "completed"
	Priority           string `gorm:"not null;default:medium"`
	ProgressPercentage int    `gorm:"not null;default:0"`
	AssignedTo         *uint  `gorm:"index"`
	StartDate          *datatypes.Date
	EndDate            *datatypes.Date

	// Relationships
	Project  Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Assignee *User   `gorm:"foreignKey:AssignedTo;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}
