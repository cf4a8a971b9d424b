package repos

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/cognify-backend/internal/logger"
	"github.com/yungbote/cognify-backend/internal/study"
	"github.com/yungbote/cognify-backend/internal/types"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Note{},
		&types.NoteGroup{},
		&types.NoteGroupMember{},
		&types.ArtifactSet{},
		&types.AICallLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// mustUUID builds ids whose textual order is under test control.
func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid: %v", err)
	}
	return id
}

func insertArtifact(t *testing.T, repo ArtifactSetRepo, owner study.OwnerRef, id uuid.UUID, createdAt time.Time, payload string) {
	t.Helper()
	row := NewArtifactSet(owner, study.KindFlashcards, []byte(payload))
	row.ID = id
	row.CreatedAt = createdAt
	if _, err := repo.Create(context.Background(), nil, []*types.ArtifactSet{row}); err != nil {
		t.Fatalf("insert artifact row: %v", err)
	}
}

func TestArtifactSetRepo_GetLatestByOwner_OrdersByTimestampThenID(t *testing.T) {
	db := openTestDB(t)
	repo := NewArtifactSetRepo(db, logger.NewNop())
	owner := study.NoteOwner(uuid.New())

	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	older := mustUUID(t, "99999999-0000-0000-0000-000000000000")
	lowID := mustUUID(t, "11111111-0000-0000-0000-000000000000")
	highID := mustUUID(t, "22222222-0000-0000-0000-000000000000")

	insertArtifact(t, repo, owner, older, t1, `{"flashcards": [{"question": "old", "answer": "a"}]}`)
	// Equal timestamps: the higher id wins, regardless of insertion order.
	insertArtifact(t, repo, owner, highID, t2, `{"flashcards": [{"question": "high", "answer": "a"}]}`)
	insertArtifact(t, repo, owner, lowID, t2, `{"flashcards": [{"question": "low", "answer": "a"}]}`)

	latest, err := repo.GetLatestByOwner(context.Background(), nil, owner, study.KindFlashcards)
	if err != nil {
		t.Fatalf("GetLatestByOwner: %v", err)
	}
	if latest == nil || latest.ID != highID {
		t.Fatalf("expected row %s as latest, got %+v", highID, latest)
	}
}

func TestArtifactSetRepo_EqualTimestampHigherIDSupersedes(t *testing.T) {
	db := openTestDB(t)
	repo := NewArtifactSetRepo(db, logger.NewNop())
	owner := study.NoteOwner(uuid.New())

	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	first := mustUUID(t, "aaaaaaaa-0000-0000-0000-000000000000")
	second := mustUUID(t, "bbbbbbbb-0000-0000-0000-000000000000")

	insertArtifact(t, repo, owner, first, ts, `{"flashcards": [{"question": "1", "answer": "a"}]}`)

	latest, err := repo.GetLatestByOwner(context.Background(), nil, owner, study.KindFlashcards)
	if err != nil || latest == nil || latest.ID != first {
		t.Fatalf("expected %s, got %+v (err %v)", first, latest, err)
	}

	insertArtifact(t, repo, owner, second, ts, `{"flashcards": [{"question": "2", "answer": "a"}]}`)

	latest, err = repo.GetLatestByOwner(context.Background(), nil, owner, study.KindFlashcards)
	if err != nil || latest == nil || latest.ID != second {
		t.Fatalf("expected new row %s to supersede, got %+v (err %v)", second, latest, err)
	}
}

func TestArtifactSetRepo_GetLatestByOwner_NoRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewArtifactSetRepo(db, logger.NewNop())

	latest, err := repo.GetLatestByOwner(context.Background(), nil, study.NoteOwner(uuid.New()), study.KindFlashcards)
	if err != nil {
		t.Fatalf("GetLatestByOwner: %v", err)
	}
	if latest != nil {
		t.Fatalf("expected nil for empty history, got %+v", latest)
	}
}

func TestArtifactSetRepo_ListByOwner_ScopesAndOrders(t *testing.T) {
	db := openTestDB(t)
	repo := NewArtifactSetRepo(db, logger.NewNop())

	noteID := uuid.New()
	noteOwner := study.NoteOwner(noteID)
	// A group sharing the note's id must not leak into the note's history.
	groupOwner := study.GroupOwner(noteID)
	otherOwner := study.NoteOwner(uuid.New())

	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	a := mustUUID(t, "aaaaaaaa-0000-0000-0000-000000000000")
	b := mustUUID(t, "bbbbbbbb-0000-0000-0000-000000000000")

	insertArtifact(t, repo, noteOwner, a, t1, `{"flashcards": [{"question": "1", "answer": "a"}]}`)
	insertArtifact(t, repo, noteOwner, b, t2, `{"flashcards": [{"question": "2", "answer": "a"}]}`)
	insertArtifact(t, repo, groupOwner, uuid.New(), t2, `{"flashcards": [{"question": "g", "answer": "a"}]}`)
	insertArtifact(t, repo, otherOwner, uuid.New(), t2, `{"flashcards": [{"question": "o", "answer": "a"}]}`)

	rows, err := repo.ListByOwner(context.Background(), nil, noteOwner, study.KindFlashcards)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != b || rows[1].ID != a {
		t.Fatalf("expected descending order [%s %s], got [%s %s]", b, a, rows[0].ID, rows[1].ID)
	}
}

func TestNewArtifactSet_OwnerColumns(t *testing.T) {
	noteID := uuid.New()
	groupID := uuid.New()

	noteRow := NewArtifactSet(study.NoteOwner(noteID), study.KindQuiz, []byte(`{}`))
	if noteRow.NoteID == nil || *noteRow.NoteID != noteID || noteRow.GroupID != nil {
		t.Fatalf("bad note owner translation: %+v", noteRow)
	}

	groupRow := NewArtifactSet(study.GroupOwner(groupID), study.KindQuiz, []byte(`{}`))
	if groupRow.GroupID == nil || *groupRow.GroupID != groupID || groupRow.NoteID != nil {
		t.Fatalf("bad group owner translation: %+v", groupRow)
	}
}
