package services

import (
  "context"
  "fmt"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/repos"
  "github.com/yungbote/cognify-backend/internal/study"
  "github.com/yungbote/cognify-backend/internal/types"
)

type NoteGroupService interface {
  CreateGroup(ctx context.Context, name string, noteIDs []uuid.UUID) (*types.NoteGroup, error)
  ListGroups(ctx context.Context) ([]*types.NoteGroup, error)
  GetGroup(ctx context.Context, groupID uuid.UUID) (*types.NoteGroup, error)
  DeleteGroup(ctx context.Context, groupID uuid.UUID) error
}

type noteGroupService struct {
  db        *gorm.DB
  log       *logger.Logger
  noteRepo  repos.NoteRepo
  groupRepo repos.NoteGroupRepo
}

func NewNoteGroupService(db *gorm.DB, baseLog *logger.Logger, noteRepo repos.NoteRepo, groupRepo repos.NoteGroupRepo) NoteGroupService {
  serviceLog := baseLog.With("service", "NoteGroupService")
  return &noteGroupService{db: db, log: serviceLog, noteRepo: noteRepo, groupRepo: groupRepo}
}

func (gs *noteGroupService) CreateGroup(ctx context.Context, name string, noteIDs []uuid.UUID) (*types.NoteGroup, error) {
  // Every id must resolve to a distinct existing note before the group is
  // created. GetByIDs returns one row per unique id, so a duplicated id in
  // the request fails this check the same way an unknown id does.
  notes, err := gs.noteRepo.GetByIDs(ctx, nil, noteIDs)
  if err != nil {
    return nil, fmt.Errorf("load member notes: %w", err)
  }
  if len(notes) != len(noteIDs) {
    return nil, fmt.Errorf("one or more notes not found: %w", study.ErrNotFound)
  }

  group := &types.NoteGroup{
    ID:   uuid.New(),
    Name: name,
  }
  err = gs.db.Transaction(func(tx *gorm.DB) error {
    _, txErr := gs.groupRepo.Create(ctx, tx, group, noteIDs)
    return txErr
  })
  if err != nil {
    gs.log.Error("CreateGroup failed", "error", err)
    return nil, fmt.Errorf("create group: %w", err)
  }
  return gs.GetGroup(ctx, group.ID)
}

func (gs *noteGroupService) ListGroups(ctx context.Context) ([]*types.NoteGroup, error) {
  groups, err := gs.groupRepo.List(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("list groups: %w", err)
  }
  for _, g := range groups {
    members, err := gs.groupRepo.GetMembers(ctx, nil, g.ID)
    if err != nil {
      return nil, fmt.Errorf("load group members: %w", err)
    }
    g.Notes = members
  }
  return groups, nil
}

func (gs *noteGroupService) GetGroup(ctx context.Context, groupID uuid.UUID) (*types.NoteGroup, error) {
  groups, err := gs.groupRepo.GetByIDs(ctx, nil, []uuid.UUID{groupID})
  if err != nil {
    return nil, fmt.Errorf("load group: %w", err)
  }
  if len(groups) == 0 {
    return nil, fmt.Errorf("group not found: %w", study.ErrNotFound)
  }
  group := groups[0]
  members, err := gs.groupRepo.GetMembers(ctx, nil, groupID)
  if err != nil {
    return nil, fmt.Errorf("load group members: %w", err)
  }
  group.Notes = members
  return group, nil
}

func (gs *noteGroupService) DeleteGroup(ctx context.Context, groupID uuid.UUID) error {
  groups, err := gs.groupRepo.GetByIDs(ctx, nil, []uuid.UUID{groupID})
  if err != nil {
    return fmt.Errorf("load group: %w", err)
  }
  if len(groups) == 0 {
    return fmt.Errorf("group not found: %w", study.ErrNotFound)
  }
  // Membership and artifact history rows cascade.
  if err := gs.groupRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{groupID}); err != nil {
    gs.log.Error("DeleteGroup failed", "group_id", groupID, "error", err)
    return fmt.Errorf("delete group: %w", err)
  }
  return nil
}
