package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/cognify-backend/internal/study"
)

type APIError struct {
  Message     string	`json:"message"`
  Code	      string	`json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error	      APIError	`json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
  c.JSON(http.StatusCreated, payload)
}

// RespondDomainError maps the domain error kinds onto the service boundary's
// status contract: missing subject 404, unusable subject 400, bad provider
// output 502, corrupted stored artifact 500.
func RespondDomainError(c *gin.Context, err error) {
  var genErr *study.GenerationError
  switch {
  case errors.Is(err, study.ErrNotFound):
    RespondError(c, http.StatusNotFound, "not_found", err)
  case errors.Is(err, study.ErrInvalidSubject):
    RespondError(c, http.StatusBadRequest, "invalid_subject", err)
  case errors.As(err, &genErr):
    RespondError(c, http.StatusBadGateway, "generation_"+string(genErr.Reason), err)
  case errors.Is(err, study.ErrCorruptedArtifact):
    RespondError(c, http.StatusInternalServerError, "corrupted_artifact", err)
  default:
    RespondError(c, http.StatusInternalServerError, "internal_error", err)
  }
}
