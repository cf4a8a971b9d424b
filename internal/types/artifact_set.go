package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

// ArtifactSet is one immutable generation result. Exactly one of NoteID and
// GroupID is set (CHECK constraint at the database, study.OwnerRef above the
// storage edge). Rows are never updated; they disappear only when their
// owner row is deleted (ON DELETE CASCADE).
type ArtifactSet struct {
  ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
  NoteID      *uuid.UUID        `gorm:"type:uuid;index;column:note_id" json:"note_id,omitempty"`
  GroupID     *uuid.UUID        `gorm:"type:uuid;index;column:group_id" json:"group_id,omitempty"`
  Kind        string            `gorm:"not null;index;column:kind" json:"kind"`
  Payload     datatypes.JSON    `gorm:"type:jsonb;not null;column:payload" json:"payload"`
  CreatedAt   time.Time         `gorm:"not null" json:"created_at"`
}

func (ArtifactSet) TableName() string {
  return "artifact_set"
}

func (s *ArtifactSet) BeforeCreate(tx *gorm.DB) error {
  if s.ID == uuid.Nil {
    s.ID = uuid.New()
  }
  return nil
}
