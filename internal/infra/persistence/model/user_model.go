// Package model contains the GORM persistence models. They mirror the
// database schema and are mapped to/from pure domain entities at the
// repository boundary.
package model

import "time"

// UserModel is the GORM persistence model for the users table.
type UserModel struct {
	ID           int64        `gorm:"primaryKey;autoIncrement"`
	Email        string       `gorm:"size:255;uniqueIndex;not null"`
	Username     string       `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string       `gorm:"size:255;not null"`
	FullName     string       `gorm:"size:100"`
	IsActive     bool         `gorm:"not null;default:true"`
	IsSuperuser  bool         `gorm:"not null;default:false"`
	CreatedAt    time.Time    `gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time    `gorm:"not null;autoUpdateTime"`
	Tasks        []*TaskModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
