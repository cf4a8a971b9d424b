package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/yungbote/cognify-backend/internal/types"
  "github.com/yungbote/cognify-backend/internal/utils"
  "github.com/yungbote/cognify-backend/internal/logger"
)

type PostgresService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  log.Info("Loading environment variables...")
  postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
  postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
  postgresUser := utils.GetEnv("POSTGRES_USER", "cognify", log)
  postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
  postgresName := utils.GetEnv("POSTGRES_NAME", "cognify", log)
  log.Debug("Environment variables loaded")

  dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

  log.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Note{},
    &types.NoteGroup{},
    &types.NoteGroupMember{},
    &types.ArtifactSet{},
    &types.AICallLog{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }

  s.log.Info("Configuring foreign key relationships for postgres tables...")
  constraints := []struct {
    table string
    name  string
    stmt  string
  }{
    {
      table: "note_group_member",
      name:  "fk_note_group_member_group_id",
      stmt:  `ALTER TABLE "note_group_member"
             ADD CONSTRAINT "fk_note_group_member_group_id"
             FOREIGN KEY ("group_id") REFERENCES "note_group"("id")
             ON DELETE CASCADE`,
    },
    {
      table: "note_group_member",
      name:  "fk_note_group_member_note_id",
      stmt:  `ALTER TABLE "note_group_member"
             ADD CONSTRAINT "fk_note_group_member_note_id"
             FOREIGN KEY ("note_id") REFERENCES "note"("id")
             ON DELETE CASCADE`,
    },
    {
      table: "artifact_set",
      name:  "fk_artifact_set_note_id",
      stmt:  `ALTER TABLE "artifact_set"
             ADD CONSTRAINT "fk_artifact_set_note_id"
             FOREIGN KEY ("note_id") REFERENCES "note"("id")
             ON DELETE CASCADE`,
    },
    {
      table: "artifact_set",
      name:  "fk_artifact_set_group_id",
      stmt:  `ALTER TABLE "artifact_set"
             ADD CONSTRAINT "fk_artifact_set_group_id"
             FOREIGN KEY ("group_id") REFERENCES "note_group"("id")
             ON DELETE CASCADE`,
    },
    {
      // History rows reference exactly one owner.
      table: "artifact_set",
      name:  "chk_artifact_set_owner",
      stmt:  `ALTER TABLE "artifact_set"
             ADD CONSTRAINT "chk_artifact_set_owner"
             CHECK (("note_id" IS NULL) <> ("group_id" IS NULL))`,
    },
  }
  for _, c := range constraints {
    drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, c.table, c.name)
    if err := s.db.Exec(drop).Error; err != nil {
      return fmt.Errorf("Failed to drop %s: %w", c.name, err)
    }
    if err := s.db.Exec(c.stmt).Error; err != nil {
      return fmt.Errorf("Failed to add %s: %w", c.name, err)
    }
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
