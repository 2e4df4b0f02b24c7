package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating bounds shared by every 1-5 scale in the schema.
const (
	RatingMin = 1
	RatingMax = 5
)

// DialectEvaluation is one evaluator's rating of one dialect pair.
// Created once per submitted batch entry, never updated or deleted by the
// application; deleting the parent pair cascades here.
type DialectEvaluation struct {
	ID                uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	DialectPairID     uuid.UUID    `gorm:"column:dialect_pair_id;type:uuid;not null;index" json:"dialect_data_id"`
	DialectPair       *DialectPair `gorm:"constraint:OnDelete:CASCADE;foreignKey:DialectPairID;references:ID" json:"-"`
	EvaluatorName     string       `gorm:"column:evaluator_name" json:"evaluator_name,omitempty"`
	EvaluatorEmail    string       `gorm:"column:evaluator_email;index" json:"evaluator_email,omitempty"`
	AccuracyRating    int          `gorm:"column:accuracy_rating;not null" json:"accuracy_rating"`
	NaturalnessRating int          `gorm:"column:naturalness_rating;not null" json:"naturalness_rating"`
	Comments          string       `gorm:"column:comments;type:text" json:"comments,omitempty"`
	SessionID         string       `gorm:"column:session_id;not null;index" json:"session_id"`
	CreatedAt         time.Time    `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (DialectEvaluation) TableName() string { return "dialect_evaluation" }

func (e *DialectEvaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
