package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/yungbote/cognify-backend/internal/handlers"
  "github.com/yungbote/cognify-backend/internal/study"
)

type RouterConfig struct {
  NoteHandler       *handlers.NoteHandler
  NoteGroupHandler  *handlers.NoteGroupHandler
  StudySetHandler   *handlers.StudySetHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api")
  {
    // Notes
    api.POST("/notes", cfg.NoteHandler.CreateNote)
    api.GET("/notes", cfg.NoteHandler.ListNotes)
    api.GET("/notes/:id", cfg.NoteHandler.GetNote)
    api.PUT("/notes/:id", cfg.NoteHandler.UpdateNote)
    api.DELETE("/notes/:id", cfg.NoteHandler.DeleteNote)

    // Groups
    api.POST("/groups", cfg.NoteGroupHandler.CreateGroup)
    api.GET("/groups", cfg.NoteGroupHandler.ListGroups)
    api.GET("/groups/:id", cfg.NoteGroupHandler.GetGroup)
    api.DELETE("/groups/:id", cfg.NoteGroupHandler.DeleteGroup)

    // Study artifacts: generate / latest / history per kind, for notes and
    // for groups.
    kindPaths := map[string]study.Kind{
      "flashcards": study.KindFlashcards,
      "quiz":       study.KindQuiz,
      "study-plan": study.KindStudyPlan,
    }
    for seg, kind := range kindPaths {
      api.POST("/notes/:id/"+seg, cfg.StudySetHandler.GenerateForNote(kind))
      api.GET("/notes/:id/"+seg+"/latest", cfg.StudySetHandler.LatestForNote(kind))
      api.GET("/notes/:id/"+seg+"/history", cfg.StudySetHandler.HistoryForNote(kind))

      api.POST("/groups/:id/"+seg, cfg.StudySetHandler.GenerateForGroup(kind))
      api.GET("/groups/:id/"+seg+"/latest", cfg.StudySetHandler.LatestForGroup(kind))
      api.GET("/groups/:id/"+seg+"/history", cfg.StudySetHandler.HistoryForGroup(kind))
    }
  }

  return router
}
