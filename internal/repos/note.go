package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/types"
)

type NoteRepo interface {
  Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) ([]*types.Note, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Note, error)
  Update(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, title, content string) error
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) error
}

type noteRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewNoteRepo(db *gorm.DB, baseLog *logger.Logger) NoteRepo {
  repoLog := baseLog.With("repo", "NoteRepo")
  return &noteRepo{db: db, log: repoLog}
}

func (r *noteRepo) Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(notes) == 0 {
    return []*types.Note{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&notes).Error; err != nil {
    return nil, err
  }
  return notes, nil
}

func (r *noteRepo) GetByIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) ([]*types.Note, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Note
  if len(noteIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", noteIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *noteRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Note, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Note
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *noteRepo) Update(ctx context.Context, tx *gorm.DB, noteID uuid.UUID, title, content string) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).
    Model(&types.Note{}).
    Where("id = ?", noteID).
    Updates(map[string]any{
      "title":      title,
      "content":    content,
      "updated_at": time.Now(),
    }).Error; err != nil {
    return err
  }
  return nil
}

func (r *noteRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, noteIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(noteIDs) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", noteIDs).
    Delete(&types.Note{}).Error; err != nil {
    return err
  }
  return nil
}
