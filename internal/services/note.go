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

type NoteService interface {
  CreateNote(ctx context.Context, title, content string) (*types.Note, error)
  ListNotes(ctx context.Context) ([]*types.Note, error)
  GetNote(ctx context.Context, noteID uuid.UUID) (*types.Note, error)
  UpdateNote(ctx context.Context, noteID uuid.UUID, title, content string) (*types.Note, error)
  DeleteNote(ctx context.Context, noteID uuid.UUID) error
}

type noteService struct {
  db       *gorm.DB
  log      *logger.Logger
  noteRepo repos.NoteRepo
}

func NewNoteService(db *gorm.DB, baseLog *logger.Logger, noteRepo repos.NoteRepo) NoteService {
  serviceLog := baseLog.With("service", "NoteService")
  return &noteService{db: db, log: serviceLog, noteRepo: noteRepo}
}

func (ns *noteService) CreateNote(ctx context.Context, title, content string) (*types.Note, error) {
  note := &types.Note{
    ID:      uuid.New(),
    Title:   title,
    Content: content,
  }
  if _, err := ns.noteRepo.Create(ctx, nil, []*types.Note{note}); err != nil {
    ns.log.Error("CreateNote failed", "error", err)
    return nil, fmt.Errorf("create note: %w", err)
  }
  return ns.GetNote(ctx, note.ID)
}

func (ns *noteService) ListNotes(ctx context.Context) ([]*types.Note, error) {
  notes, err := ns.noteRepo.List(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("list notes: %w", err)
  }
  return notes, nil
}

func (ns *noteService) GetNote(ctx context.Context, noteID uuid.UUID) (*types.Note, error) {
  notes, err := ns.noteRepo.GetByIDs(ctx, nil, []uuid.UUID{noteID})
  if err != nil {
    return nil, fmt.Errorf("load note: %w", err)
  }
  if len(notes) == 0 {
    return nil, fmt.Errorf("note not found: %w", study.ErrNotFound)
  }
  return notes[0], nil
}

func (ns *noteService) UpdateNote(ctx context.Context, noteID uuid.UUID, title, content string) (*types.Note, error) {
  if _, err := ns.GetNote(ctx, noteID); err != nil {
    return nil, err
  }
  if err := ns.noteRepo.Update(ctx, nil, noteID, title, content); err != nil {
    ns.log.Error("UpdateNote failed", "note_id", noteID, "error", err)
    return nil, fmt.Errorf("update note: %w", err)
  }
  return ns.GetNote(ctx, noteID)
}

func (ns *noteService) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
  if _, err := ns.GetNote(ctx, noteID); err != nil {
    return err
  }
  // Membership rows and artifact history rows go with the note (ON DELETE
  // CASCADE).
  if err := ns.noteRepo.FullDeleteByIDs(ctx, nil, []uuid.UUID{noteID}); err != nil {
    ns.log.Error("DeleteNote failed", "note_id", noteID, "error", err)
    return fmt.Errorf("delete note: %w", err)
  }
  return nil
}
