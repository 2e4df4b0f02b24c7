package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlausibilityEvaluation is one evaluator's plausibility ratings for the
// three wrong options of one MCQ item. Same lifecycle rules as
// DialectEvaluation.
type PlausibilityEvaluation struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PlausibilityItemID   uuid.UUID         `gorm:"column:plausibility_item_id;type:uuid;not null;index" json:"plausibility_data_id"`
	PlausibilityItem     *PlausibilityItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlausibilityItemID;references:ID" json:"-"`
	EvaluatorName        string            `gorm:"column:evaluator_name" json:"evaluator_name,omitempty"`
	EvaluatorEmail       string            `gorm:"column:evaluator_email;index" json:"evaluator_email,omitempty"`
	Option1Plausibility  int               `gorm:"column:option_1_plausibility;not null" json:"option_1_plausibility"`
	Option2Plausibility  int               `gorm:"column:option_2_plausibility;not null" json:"option_2_plausibility"`
	Option3Plausibility  int               `gorm:"column:option_3_plausibility;not null" json:"option_3_plausibility"`
	Comments             string            `gorm:"column:comments;type:text" json:"comments,omitempty"`
	SessionID            string            `gorm:"column:session_id;not null;index" json:"session_id"`
	CreatedAt            time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (PlausibilityEvaluation) TableName() string { return "plausibility_evaluation" }

func (e *PlausibilityEvaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
