package model

import "time"

// TaskModel is the GORM persistence model for the tasks table.
type TaskModel struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"size:200;not null;index"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"size:20;not null;default:todo;index"`
	Priority    string     `gorm:"size:20;not null;default:medium"`
	DueDate     *time.Time
	CompletedAt *time.Time
	OwnerID     int64     `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
