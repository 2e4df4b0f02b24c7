package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffUser is the privileged principal allowed to hit the export
// surface. Password holds a bcrypt hash and never serializes.
type StaffUser struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (StaffUser) TableName() string { return "staff_user" }

func (u *StaffUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
