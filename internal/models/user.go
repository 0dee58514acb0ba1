package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:site_engineer"`
	AvatarURL    string

	// Relationships
	OwnedProjects     []Project        `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	AssignedTasks     []Task           `gorm:"foreignKey:AssignedTo;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	ChangeOrders      []ChangeOrder    `gorm:"foreignKey:RequestedBy;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	ReportedIncidents []SafetyIncident `gorm:"foreignKey:ReportedBy;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}
