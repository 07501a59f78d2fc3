package utils

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// serviceErrors maps sentinel errors to the status code and public message
// sent to clients. Order matters: the first match wins.
var serviceErrors = []struct {
	err     error
	code    int
	message string
}{
	{ErrPlanNotFound, http.StatusNotFound, "Workout plan not found"},
	{ErrSessionNotFound, http.StatusNotFound, "Workout session not found"},
	// ownership failures are reported exactly like a missing session
	{ErrSessionAccessDenied, http.StatusNotFound, "Workout session not found"},
	{ErrExerciseNotFound, http.StatusNotFound, "Exercise not found"},
	{ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrForbidden, http.StatusForbidden, "Forbidden: you do not own this resource"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Email or username already registered"},
	{ErrSessionCompleted, http.StatusConflict, "Workout session already completed"},
	{ErrInvalidRating, http.StatusBadRequest, "Rating must be between 1 and 5"},
	{ErrExerciseNotInPlan, http.StatusBadRequest, "Exercise does not belong to this workout"},
	{ErrDuplicateExerciseOrder, http.StatusBadRequest, "Exercise order must be unique within a workout"},
	{ErrStorageUnavailable, http.StatusServiceUnavailable, "Image storage is not configured"},
}

// StatusForError resolves the HTTP status and client message for a service error.
// Validation errors keep their wrapped detail text.
func StatusForError(err error) (int, string) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			return se.code, se.message
		}
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

func HandleServiceError(c *gin.Context, err error) {
	code, message := StatusForError(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("trace_id", traceID(c)),
			zap.Error(err),
		)
	}
	RespondError(c, code, message)
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

// FormatID renders a primary key for URLs.
func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
