package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

type Note struct {
  ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Title       string      `gorm:"size:255;not null;column:title" json:"title"`
  Content     string      `gorm:"type:text;not null;column:content" json:"content"`
  CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

func (Note) TableName() string {
  return "note"
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
  if n.ID == uuid.Nil {
    n.ID = uuid.New()
  }
  return nil
}
