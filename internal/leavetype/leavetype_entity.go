package leavetype

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (LeaveType) TableName() string {
	return "leave_types"
}
