package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Kind    string      `json:"kind,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

// RespondErrorData is RespondError with a machine readable kind and a payload
// the client can still render, such as a search view with a fallback link.
func RespondErrorData(c *gin.Context, code int, kind, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Kind:    kind,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func SearchErrorStatus(kind SearchErrorKind) int {
	switch kind {
	case SearchEmptyQuery:
		return http.StatusBadRequest
	case SearchRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}

// HandleServiceError maps service-layer errors to HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	if se, ok := AsSearchError(err); ok {
		msg := "Search provider is unavailable"
		switch se.Kind {
		case SearchEmptyQuery:
			msg = "Choose a region before searching"
		case SearchRateLimited:
			msg = "Too many searches, try again shortly"
		}
		RespondErrorData(c, SearchErrorStatus(se.Kind), string(se.Kind), msg, nil)
		return
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Sign in and join a group first")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidEvent):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCategory):
		RespondError(c, http.StatusBadRequest, "Unknown category")
	case errors.Is(err, ErrInvalidSlot):
		RespondError(c, http.StatusBadRequest, "Featured slot must be between 0 and 3")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrSelectionNotFound):
		RespondError(c, http.StatusNotFound, "Selection not found")
	case errors.Is(err, ErrPlaceNotFound):
		RespondError(c, http.StatusNotFound, "Place not found")
	case errors.Is(err, ErrWizardSessionNotFound):
		RespondError(c, http.StatusNotFound, "Wizard session expired, start again")
	case errors.Is(err, ErrRegistryConflict):
		RespondError(c, http.StatusConflict, "Selection changed concurrently, reload and retry")
	case errors.Is(err, ErrStaleSubject):
		RespondError(c, http.StatusConflict, "Request superseded by a newer one")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
