package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/services"
)

type NoteHandler struct {
  log     *logger.Logger
  noteSvc services.NoteService
}

func NewNoteHandler(log *logger.Logger, noteSvc services.NoteService) *NoteHandler {
  return &NoteHandler{
    log:     log.With("handler", "NoteHandler"),
    noteSvc: noteSvc,
  }
}

type notePayload struct {
  Title   string `json:"title" binding:"required,min=1,max=255"`
  Content string `json:"content" binding:"required,min=1"`
}

// POST /api/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
  var req notePayload
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  note, err := h.noteSvc.CreateNote(c.Request.Context(), req.Title, req.Content)
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondCreated(c, note)
}

// GET /api/notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
  notes, err := h.noteSvc.ListNotes(c.Request.Context())
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondOK(c, notes)
}

// GET /api/notes/:id
func (h *NoteHandler) GetNote(c *gin.Context) {
  noteID, ok := pathID(c)
  if !ok {
    return
  }
  note, err := h.noteSvc.GetNote(c.Request.Context(), noteID)
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondOK(c, note)
}

// PUT /api/notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
  noteID, ok := pathID(c)
  if !ok {
    return
  }
  var req notePayload
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  note, err := h.noteSvc.UpdateNote(c.Request.Context(), noteID, req.Title, req.Content)
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondOK(c, note)
}

// DELETE /api/notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
  noteID, ok := pathID(c)
  if !ok {
    return
  }
  if err := h.noteSvc.DeleteNote(c.Request.Context(), noteID); err != nil {
    RespondDomainError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_id", err)
    return uuid.Nil, false
  }
  return id, true
}
