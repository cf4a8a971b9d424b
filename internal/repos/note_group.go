package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/types"
)

type NoteGroupRepo interface {
  Create(ctx context.Context, tx *gorm.DB, group *types.NoteGroup, memberNoteIDs []uuid.UUID) (*types.NoteGroup, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) ([]*types.NoteGroup, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.NoteGroup, error)
  GetMembers(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) ([]*types.Note, error)
  FullDeleteByIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) error
}

type noteGroupRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewNoteGroupRepo(db *gorm.DB, baseLog *logger.Logger) NoteGroupRepo {
  repoLog := baseLog.With("repo", "NoteGroupRepo")
  return &noteGroupRepo{db: db, log: repoLog}
}

func (r *noteGroupRepo) Create(ctx context.Context, tx *gorm.DB, group *types.NoteGroup, memberNoteIDs []uuid.UUID) (*types.NoteGroup, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(group).Error; err != nil {
    return nil, err
  }

  if len(memberNoteIDs) == 0 {
    return group, nil
  }

  // Membership order is the order the ids were supplied in.
  members := make([]*types.NoteGroupMember, 0, len(memberNoteIDs))
  for i, noteID := range memberNoteIDs {
    members = append(members, &types.NoteGroupMember{
      GroupID:  group.ID,
      NoteID:   noteID,
      Position: i,
    })
  }
  if err := transaction.WithContext(ctx).Create(&members).Error; err != nil {
    return nil, err
  }
  return group, nil
}

func (r *noteGroupRepo) GetByIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) ([]*types.NoteGroup, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.NoteGroup
  if len(groupIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", groupIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *noteGroupRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.NoteGroup, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.NoteGroup
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *noteGroupRepo) GetMembers(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) ([]*types.Note, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Note
  if err := transaction.WithContext(ctx).
    Table("note").
    Select("note.*").
    Joins("JOIN note_group_member ngm ON ngm.note_id = note.id").
    Where("ngm.group_id = ?", groupID).
    Order("ngm.position ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *noteGroupRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, groupIDs []uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(groupIDs) == 0 {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", groupIDs).
    Delete(&types.NoteGroup{}).Error; err != nil {
    return err
  }
  return nil
}
