package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// AICallLog is a best-effort audit row for each generation attempt, written
// after the provider call has completed.
type AICallLog struct {
  ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  SubjectID   *uuid.UUID  `gorm:"type:uuid;index;column:subject_id" json:"subject_id,omitempty"`
  CallType    string      `gorm:"column:call_type;not null" json:"call_type"`
  Model       string      `gorm:"column:model;not null" json:"model"`
  Success     bool        `gorm:"column:success;not null" json:"success"`
  Error       string      `gorm:"column:error" json:"error"`
  DurationMS  int64       `gorm:"column:duration_ms;not null" json:"duration_ms"`
  CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
}

func (AICallLog) TableName() string {
  return "ai_call_log"
}

func (l *AICallLog) BeforeCreate(tx *gorm.DB) error {
  if l.ID == uuid.Nil {
    l.ID = uuid.New()
  }
  return nil
}
