package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The five Bangla dialects the study covers. Stored as plain labels, not
// an enum type, so the set can grow without a migration.
const (
	DialectChittagonian = "chittagonian"
	DialectSylheti      = "sylheti"
	DialectNoakhali     = "noakhali"
	DialectBarishal     = "barishal"
	DialectRangpur      = "rangpur"
)

func KnownDialects() []string {
	return []string{
		DialectChittagonian,
		DialectSylheti,
		DialectNoakhali,
		DialectBarishal,
		DialectRangpur,
	}
}

// DialectPair is one (standard Bangla sentence, AI-generated dialectal
// rendering) translation-quality rating item. Rows are created by the
// seed CLI only and are read-only at request time.
type DialectPair struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DialectName            string    `gorm:"column:dialect_name;not null;index" json:"dialect_name"`
	OriginalStandardText   string    `gorm:"column:original_standard_text;type:text;not null" json:"original_standard_text"`
	AIGeneratedDialectText string    `gorm:"column:ai_generated_dialect_text;type:text;not null" json:"ai_generated_dialect_text"`
	CreatedAt              time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (DialectPair) TableName() string { return "dialect_pair" }

func (p *DialectPair) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
