package handlers

import (
  "github.com/gin-gonic/gin"
  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/services"
  "github.com/yungbote/cognify-backend/internal/study"
)

type StudySetHandler struct {
  log      *logger.Logger
  studySvc services.StudySetService
}

func NewStudySetHandler(log *logger.Logger, studySvc services.StudySetService) *StudySetHandler {
  return &StudySetHandler{
    log:      log.With("handler", "StudySetHandler"),
    studySvc: studySvc,
  }
}

// POST /api/notes/:id/{flashcards|quiz|study-plan}
func (h *StudySetHandler) GenerateForNote(kind study.Kind) gin.HandlerFunc {
  return func(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
      return
    }
    h.generate(c, study.NoteOwner(id), kind)
  }
}

// POST /api/groups/:id/{flashcards|quiz|study-plan}
func (h *StudySetHandler) GenerateForGroup(kind study.Kind) gin.HandlerFunc {
  return func(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
      return
    }
    h.generate(c, study.GroupOwner(id), kind)
  }
}

// GET /api/notes/:id/{kind}/latest
func (h *StudySetHandler) LatestForNote(kind study.Kind) gin.HandlerFunc {
  return func(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
      return
    }
    h.latest(c, study.NoteOwner(id), kind)
  }
}

// GET /api/groups/:id/{kind}/latest
func (h *StudySetHandler) LatestForGroup(kind study.Kind) gin.HandlerFunc {
  return func(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
      return
    }
    h.latest(c, study.GroupOwner(id), kind)
  }
}

// GET /api/notes/:id/{kind}/history
func (h *StudySetHandler) HistoryForNote(kind study.Kind) gin.HandlerFunc {
  return func(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
      return
    }
    h.history(c, study.NoteOwner(id), kind)
  }
}

// GET /api/groups/:id/{kind}/history
func (h *StudySetHandler) HistoryForGroup(kind study.Kind) gin.HandlerFunc {
  return func(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
      return
    }
    h.history(c, study.GroupOwner(id), kind)
  }
}

func (h *StudySetHandler) generate(c *gin.Context, owner study.OwnerRef, kind study.Kind) {
  artifact, err := h.studySvc.Generate(c.Request.Context(), owner, kind)
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondOK(c, artifact)
}

func (h *StudySetHandler) latest(c *gin.Context, owner study.OwnerRef, kind study.Kind) {
  artifact, err := h.studySvc.GetLatest(c.Request.Context(), owner, kind)
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondOK(c, artifact)
}

func (h *StudySetHandler) history(c *gin.Context, owner study.OwnerRef, kind study.Kind) {
  entries, err := h.studySvc.ListHistory(c.Request.Context(), owner, kind)
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondOK(c, entries)
}
