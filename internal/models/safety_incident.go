package models

import (
	"time"

	"gorm.io/gorm"
)

type SafetyIncident struct {
	gorm.Model

	ProjectID    uint   `gorm:"not null;index"`
	IncidentType string `gorm:"not null;default:general"`
	Severity     string `gorm:"not null"` // "low", "medium", "high"
	Description  string `gorm:"not null"`
	Status       string `gorm:"not null;default:open"`
	ReportedBy   uint   `gorm:"not null;index"`
	ReportedAt   time.Time

	// Relationships
	Project  Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	// ReportedBy is NOT NULL, so a user with incident reports on
	// record cannot be deleted.
	Reporter User `gorm:"foreignKey:ReportedBy;constraint:OnUpdate:Cascade,OnDelete:RESTRICT" json:"-"`
}
