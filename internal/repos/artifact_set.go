package repos

import (
  "context"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/study"
  "github.com/yungbote/cognify-backend/internal/types"
)

// ArtifactSetRepo is the append-only history store for generated artifacts.
// Rows are inserted once and never updated; "latest" ordering is
// (created_at DESC, id DESC) everywhere so equal timestamps still resolve to
// a single row.
type ArtifactSetRepo interface {
  Create(ctx context.Context, tx *gorm.DB, sets []*types.ArtifactSet) ([]*types.ArtifactSet, error)
  GetLatestByOwner(ctx context.Context, tx *gorm.DB, owner study.OwnerRef, kind study.Kind) (*types.ArtifactSet, error)
  ListByOwner(ctx context.Context, tx *gorm.DB, owner study.OwnerRef, kind study.Kind) ([]*types.ArtifactSet, error)
}

type artifactSetRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewArtifactSetRepo(db *gorm.DB, baseLog *logger.Logger) ArtifactSetRepo {
  repoLog := baseLog.With("repo", "ArtifactSetRepo")
  return &artifactSetRepo{db: db, log: repoLog}
}

// NewArtifactSet translates an OwnerRef into the nullable column pair. This
// is the only place the exclusive-or owner encoding is produced.
func NewArtifactSet(owner study.OwnerRef, kind study.Kind, payload []byte) *types.ArtifactSet {
  set := &types.ArtifactSet{
    Kind:    string(kind),
    Payload: datatypes.JSON(payload),
  }
  if id, ok := owner.NoteID(); ok {
    set.NoteID = &id
  }
  if id, ok := owner.GroupID(); ok {
    set.GroupID = &id
  }
  return set
}

func ownerScope(q *gorm.DB, owner study.OwnerRef) *gorm.DB {
  if id, ok := owner.NoteID(); ok {
    return q.Where("note_id = ?", id)
  }
  id, _ := owner.GroupID()
  return q.Where("group_id = ?", id)
}

func (r *artifactSetRepo) Create(ctx context.Context, tx *gorm.DB, sets []*types.ArtifactSet) ([]*types.ArtifactSet, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(sets) == 0 {
    return []*types.ArtifactSet{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&sets).Error; err != nil {
    return nil, err
  }
  return sets, nil
}

func (r *artifactSetRepo) GetLatestByOwner(ctx context.Context, tx *gorm.DB, owner study.OwnerRef, kind study.Kind) (*types.ArtifactSet, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.ArtifactSet
  q := ownerScope(transaction.WithContext(ctx), owner).
    Where("kind = ?", string(kind)).
    Order("created_at DESC, id DESC").
    Limit(1)
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (r *artifactSetRepo) ListByOwner(ctx context.Context, tx *gorm.DB, owner study.OwnerRef, kind study.Kind) ([]*types.ArtifactSet, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.ArtifactSet
  q := ownerScope(transaction.WithContext(ctx), owner).
    Where("kind = ?", string(kind)).
    Order("created_at DESC, id DESC")
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
