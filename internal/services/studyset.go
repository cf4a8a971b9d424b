package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/repos"
  "github.com/yungbote/cognify-backend/internal/study"
  "github.com/yungbote/cognify-backend/internal/types"
)

// groupContentSeparator joins member note contents when the subject is a
// group.
const groupContentSeparator = "\n\n---\n\n"

// HistoryEntry is one valid history row as served to callers.
type HistoryEntry struct {
  ID        uuid.UUID      `json:"id"`
  CreatedAt time.Time      `json:"created_at"`
  Artifact  study.Artifact `json:"artifact"`
}

// StudySetService owns the generation pipeline end to end: subject
// resolution, generation, the append-only history write, and the
// latest/history read policies. Reads never return stored JSON without
// re-validating it first.
type StudySetService interface {
  Generate(ctx context.Context, owner study.OwnerRef, kind study.Kind) (study.Artifact, error)
  GetLatest(ctx context.Context, owner study.OwnerRef, kind study.Kind) (study.Artifact, error)
  ListHistory(ctx context.Context, owner study.OwnerRef, kind study.Kind) ([]*HistoryEntry, error)
}

type studySetService struct {
  db           *gorm.DB
  log          *logger.Logger
  noteRepo     repos.NoteRepo
  groupRepo    repos.NoteGroupRepo
  artifactRepo repos.ArtifactSetRepo
  aiLogRepo    repos.AICallLogRepo
  gen          GenerationService
}

func NewStudySetService(
  db *gorm.DB,
  baseLog *logger.Logger,
  noteRepo repos.NoteRepo,
  groupRepo repos.NoteGroupRepo,
  artifactRepo repos.ArtifactSetRepo,
  aiLogRepo repos.AICallLogRepo,
  gen GenerationService,
) StudySetService {
  serviceLog := baseLog.With("service", "StudySetService")
  return &studySetService{
    db:           db,
    log:          serviceLog,
    noteRepo:     noteRepo,
    groupRepo:    groupRepo,
    artifactRepo: artifactRepo,
    aiLogRepo:    aiLogRepo,
    gen:          gen,
  }
}

func (s *studySetService) Generate(ctx context.Context, owner study.OwnerRef, kind study.Kind) (study.Artifact, error) {
  content, err := s.resolveContent(ctx, owner)
  if err != nil {
    return nil, err
  }

  // The provider call completes in memory before any write opens; the
  // history insert below is its own transaction.
  started := time.Now()
  artifact, genErr := s.gen.Generate(ctx, kind, content)
  s.audit(ctx, owner, kind, started, genErr)
  if genErr != nil {
    return nil, genErr
  }

  payload, err := json.Marshal(artifact)
  if err != nil {
    return nil, fmt.Errorf("marshal artifact: %w", err)
  }
  row := repos.NewArtifactSet(owner, kind, payload)
  if _, err := s.artifactRepo.Create(ctx, nil, []*types.ArtifactSet{row}); err != nil {
    s.log.Error("Failed to append artifact history row", "kind", kind, "subject_id", owner.ID(), "error", err)
    return nil, fmt.Errorf("append history row: %w", err)
  }
  return artifact, nil
}

func (s *studySetService) GetLatest(ctx context.Context, owner study.OwnerRef, kind study.Kind) (study.Artifact, error) {
  if err := s.ensureSubject(ctx, owner); err != nil {
    return nil, err
  }

  row, err := s.artifactRepo.GetLatestByOwner(ctx, nil, owner, kind)
  if err != nil {
    return nil, fmt.Errorf("load latest artifact: %w", err)
  }
  if row == nil {
    return nil, fmt.Errorf("no %s found for this subject: %w", kind, study.ErrNotFound)
  }

  // A corrupted latest row is a hard error: the most recent result must not
  // be silently replaced by an older one.
  artifact, err := revalidate(kind, row.Payload)
  if err != nil {
    s.log.Error("Latest artifact row failed re-validation", "kind", kind, "artifact_set_id", row.ID, "error", err)
    return nil, fmt.Errorf("%w: %v", study.ErrCorruptedArtifact, err)
  }
  return artifact, nil
}

func (s *studySetService) ListHistory(ctx context.Context, owner study.OwnerRef, kind study.Kind) ([]*HistoryEntry, error) {
  if err := s.ensureSubject(ctx, owner); err != nil {
    return nil, err
  }

  rows, err := s.artifactRepo.ListByOwner(ctx, nil, owner, kind)
  if err != nil {
    return nil, fmt.Errorf("load artifact history: %w", err)
  }

  entries := make([]*HistoryEntry, 0, len(rows))
  for _, row := range rows {
    artifact, err := revalidate(kind, row.Payload)
    if err != nil {
      // Corrupted historical rows degrade the listing, not the endpoint.
      s.log.Warn("Skipping corrupted artifact history row", "kind", kind, "artifact_set_id", row.ID, "error", err)
      continue
    }
    entries = append(entries, &HistoryEntry{
      ID:        row.ID,
      CreatedAt: row.CreatedAt,
      Artifact:  artifact,
    })
  }
  return entries, nil
}

// resolveContent produces the text a generation call operates on: the note's
// content, or member note contents joined in membership order.
func (s *studySetService) resolveContent(ctx context.Context, owner study.OwnerRef) (string, error) {
  if noteID, ok := owner.NoteID(); ok {
    notes, err := s.noteRepo.GetByIDs(ctx, nil, []uuid.UUID{noteID})
    if err != nil {
      return "", fmt.Errorf("load note: %w", err)
    }
    if len(notes) == 0 {
      return "", fmt.Errorf("note not found: %w", study.ErrNotFound)
    }
    return notes[0].Content, nil
  }

  groupID, _ := owner.GroupID()
  groups, err := s.groupRepo.GetByIDs(ctx, nil, []uuid.UUID{groupID})
  if err != nil {
    return "", fmt.Errorf("load group: %w", err)
  }
  if len(groups) == 0 {
    return "", fmt.Errorf("group not found: %w", study.ErrNotFound)
  }

  members, err := s.groupRepo.GetMembers(ctx, nil, groupID)
  if err != nil {
    return "", fmt.Errorf("load group members: %w", err)
  }
  if len(members) == 0 {
    return "", fmt.Errorf("group has no notes: %w", study.ErrInvalidSubject)
  }

  contents := make([]string, 0, len(members))
  for _, n := range members {
    contents = append(contents, n.Content)
  }
  return strings.Join(contents, groupContentSeparator), nil
}

func (s *studySetService) ensureSubject(ctx context.Context, owner study.OwnerRef) error {
  if noteID, ok := owner.NoteID(); ok {
    notes, err := s.noteRepo.GetByIDs(ctx, nil, []uuid.UUID{noteID})
    if err != nil {
      return fmt.Errorf("load note: %w", err)
    }
    if len(notes) == 0 {
      return fmt.Errorf("note not found: %w", study.ErrNotFound)
    }
    return nil
  }

  groupID, _ := owner.GroupID()
  groups, err := s.groupRepo.GetByIDs(ctx, nil, []uuid.UUID{groupID})
  if err != nil {
    return fmt.Errorf("load group: %w", err)
  }
  if len(groups) == 0 {
    return fmt.Errorf("group not found: %w", study.ErrNotFound)
  }
  return nil
}

// audit records one best-effort row per generation attempt. Failures here
// are logged and swallowed.
func (s *studySetService) audit(ctx context.Context, owner study.OwnerRef, kind study.Kind, started time.Time, genErr error) {
  subjectID := owner.ID()
  row := &types.AICallLog{
    SubjectID:  &subjectID,
    CallType:   string(kind),
    Model:      s.gen.Model(),
    Success:    genErr == nil,
    DurationMS: time.Since(started).Milliseconds(),
  }
  if genErr != nil {
    row.Error = genErr.Error()
  }
  if _, err := s.aiLogRepo.Create(ctx, nil, []*types.AICallLog{row}); err != nil {
    s.log.Warn("Failed to write AI call log row", "kind", kind, "error", err)
  }
}

// revalidate re-parses stored payload JSON and re-checks it against the
// kind's schema. Stored data is never served raw.
func revalidate(kind study.Kind, payload []byte) (study.Artifact, error) {
  var data map[string]any
  if err := json.Unmarshal(payload, &data); err != nil {
    return nil, fmt.Errorf("parse stored payload: %w", err)
  }
  return study.Validate(kind, data)
}
