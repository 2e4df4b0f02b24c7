package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlausibilityItem is one MCQ: a human-made question and correct answer
// plus three AI-generated wrong options whose plausibility evaluators
// rate. Seeded once, read-only at request time.
type PlausibilityItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Question      string    `gorm:"column:question;type:text;not null" json:"question"`
	CorrectAnswer string    `gorm:"column:correct_answer;type:text;not null" json:"correct_answer"`
	WrongOption1  string    `gorm:"column:wrong_option_1;type:text;not null" json:"wrong_option_1"`
	WrongOption2  string    `gorm:"column:wrong_option_2;type:text;not null" json:"wrong_option_2"`
	WrongOption3  string    `gorm:"column:wrong_option_3;type:text;not null" json:"wrong_option_3"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (PlausibilityItem) TableName() string { return "plausibility_item" }

func (p *PlausibilityItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
