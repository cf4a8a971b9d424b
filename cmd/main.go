package main

import (
  "fmt"
  "os"
  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/utils"
  "github.com/yungbote/cognify-backend/internal/db"
  "github.com/yungbote/cognify-backend/internal/repos"
  "github.com/yungbote/cognify-backend/internal/services"
  "github.com/yungbote/cognify-backend/internal/handlers"
  "github.com/yungbote/cognify-backend/internal/server"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  noteRepo := repos.NewNoteRepo(thePG, log)
  noteGroupRepo := repos.NewNoteGroupRepo(thePG, log)
  artifactSetRepo := repos.NewArtifactSetRepo(thePG, log)
  aiCallLogRepo := repos.NewAICallLogRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  openaiClient, err := services.NewOpenAIClient(log)
  if err != nil {
    log.Error("Could not init OpenAIClient", "error", err)
    os.Exit(1)
  }
  generationService := services.NewGenerationService(log, openaiClient)
  noteService := services.NewNoteService(thePG, log, noteRepo)
  noteGroupService := services.NewNoteGroupService(thePG, log, noteRepo, noteGroupRepo)
  studySetService := services.NewStudySetService(
    thePG,
    log,
    noteRepo,
    noteGroupRepo,
    artifactSetRepo,
    aiCallLogRepo,
    generationService,
  )

  // Handlers
  log.Info("Setting up handlers from main...")
  noteHandler := handlers.NewNoteHandler(log, noteService)
  noteGroupHandler := handlers.NewNoteGroupHandler(log, noteGroupService)
  studySetHandler := handlers.NewStudySetHandler(log, studySetService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    NoteHandler:      noteHandler,
    NoteGroupHandler: noteGroupHandler,
    StudySetHandler:  studySetHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  log.Info("Server listening", "port", port)
  if err := router.Run(":" + port); err != nil {
    log.Fatal("Server stopped", "error", err)
  }
}
