package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/cognify-backend/internal/logger"
  "github.com/yungbote/cognify-backend/internal/services"
)

type NoteGroupHandler struct {
  log      *logger.Logger
  groupSvc services.NoteGroupService
}

func NewNoteGroupHandler(log *logger.Logger, groupSvc services.NoteGroupService) *NoteGroupHandler {
  return &NoteGroupHandler{
    log:      log.With("handler", "NoteGroupHandler"),
    groupSvc: groupSvc,
  }
}

type createGroupRequest struct {
  Name    string      `json:"name" binding:"required,min=1,max=255"`
  NoteIDs []uuid.UUID `json:"note_ids" binding:"required,min=2"`
}

// POST /api/groups
func (h *NoteGroupHandler) CreateGroup(c *gin.Context) {
  var req createGroupRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  group, err := h.groupSvc.CreateGroup(c.Request.Context(), req.Name, req.NoteIDs)
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondCreated(c, group)
}

// GET /api/groups
func (h *NoteGroupHandler) ListGroups(c *gin.Context) {
  groups, err := h.groupSvc.ListGroups(c.Request.Context())
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondOK(c, groups)
}

// GET /api/groups/:id
func (h *NoteGroupHandler) GetGroup(c *gin.Context) {
  groupID, ok := pathID(c)
  if !ok {
    return
  }
  group, err := h.groupSvc.GetGroup(c.Request.Context(), groupID)
  if err != nil {
    RespondDomainError(c, err)
    return
  }
  RespondOK(c, group)
}

// DELETE /api/groups/:id
func (h *NoteGroupHandler) DeleteGroup(c *gin.Context) {
  groupID, ok := pathID(c)
  if !ok {
    return
  }
  if err := h.groupSvc.DeleteGroup(c.Request.Context(), groupID); err != nil {
    RespondDomainError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
