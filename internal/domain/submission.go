package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission records one accepted batch. Its partial unique index on
// evaluator_email is what enforces "at most one submission per email"
// at the store level; a per-evaluation-table index cannot do that because
// one batch legitimately writes many rows with the same email.
type Submission struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID      string    `gorm:"column:session_id;not null;index" json:"session_id"`
	EvaluatorName  string    `gorm:"column:evaluator_name" json:"evaluator_name,omitempty"`
	EvaluatorEmail string    `gorm:"column:evaluator_email;uniqueIndex:uniq_submission_email,where:evaluator_email <> ''" json:"evaluator_email,omitempty"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Submission) TableName() string { return "submission" }

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
