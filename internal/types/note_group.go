package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

type NoteGroup struct {
  ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Name        string      `gorm:"size:255;not null;column:name" json:"name"`
  CreatedAt   time.Time   `gorm:"not null" json:"created_at"`

  // Member notes in membership order. Loaded explicitly through the join
  // model, not a gorm association.
  Notes       []*Note     `gorm:"-" json:"notes"`
}

func (NoteGroup) TableName() string {
  return "note_group"
}

func (g *NoteGroup) BeforeCreate(tx *gorm.DB) error {
  if g.ID == uuid.Nil {
    g.ID = uuid.New()
  }
  return nil
}

// NoteGroupMember is the ordered many-to-many join between groups and notes.
type NoteGroupMember struct {
  GroupID     uuid.UUID   `gorm:"type:uuid;primaryKey;column:group_id" json:"group_id"`
  NoteID      uuid.UUID   `gorm:"type:uuid;primaryKey;column:note_id" json:"note_id"`
  Position    int         `gorm:"not null;column:position" json:"position"`
}

func (NoteGroupMember) TableName() string {
  return "note_group_member"
}
