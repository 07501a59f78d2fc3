package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sportapp/internal/models/request_models"
	"sportapp/internal/models/response_models"
	"sportapp/internal/services"
	"sportapp/pkg/middleware"
	"sportapp/pkg/utils"
)

const (
	saveStatusSuccess = "success"
	saveStatusError   = "error"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
	log            *zap.Logger
}

func NewSessionController(sessionService services.SessionServiceInterface, log *zap.Logger) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		log:            log.Named("sessions"),
	}
}

// SessionURL is where a started session is shown.
func SessionURL(sessionID uint) string {
	return "/workouts/sessions/" + utils.FormatID(sessionID)
}

// StartSession godoc
// @Summary Start a workout session
// @Description Opens a session on the plan and redirects to it
// @Tags Sessions
// @Produce json
// @Param id path int true "Plan ID"
// @Success 303 {object} utils.APIResponse{data=response_models.StartSessionResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/{id}/start [post]
func (s *SessionController) StartSession(c *gin.Context) {
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	sessionID, err := s.sessionService.StartSession(c.Request.Context(), middleware.UserID(c), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	location := SessionURL(sessionID)
	c.Header("Location", location)
	utils.RespondWithStatus(c, http.StatusSeeOther, response_models.StartSessionResponse{
		SessionID:   sessionID,
		RedirectURL: location,
	}, "Workout session started")
}

// GetSession godoc
// @Summary Get a workout session
// @Description Session state, the plan's ordered exercises and the progress logged so far
// @Tags Sessions
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 200 {object} utils.APIResponse{data=response_models.SessionDetailResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/sessions/{session_id} [get]
func (s *SessionController) GetSession(c *gin.Context) {
	sessionID, ok := idParam(c, "session_id")
	if !ok {
		return
	}

	session, err := s.sessionService.GetSession(c.Request.Context(), middleware.UserID(c), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Workout session fetched successfully")
}

// CompleteSession godoc
// @Summary Complete a workout session
// @Description Freezes duration, completed exercises and total sets. A session completes once.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path int true "Session ID"
// @Param request body request_models.CompleteSessionRequest false "Optional rating (1-5) and notes"
// @Success 200 {object} utils.APIResponse{data=response_models.WorkoutSessionResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/sessions/{session_id}/complete [post]
func (s *SessionController) CompleteSession(c *gin.Context) {
	sessionID, ok := idParam(c, "session_id")
	if !ok {
		return
	}

	// the body is optional, an empty one completes without rating or notes
	var req request_models.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := s.sessionService.CompleteSession(c.Request.Context(), middleware.UserID(c), sessionID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Workout session completed")
}

// SaveExercise godoc
// @Summary Save exercise progress
// @Description Upserts the log of one exercise in a session. completed_reps and notes are kept when omitted.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body request_models.SaveExerciseProgressRequest true "Progress payload"
// @Success 200 {object} response_models.SaveExerciseResponse
// @Failure 400 {object} response_models.SaveExerciseResponse
// @Failure 404 {object} response_models.SaveExerciseResponse
// @Failure 409 {object} response_models.SaveExerciseResponse
// @Failure 500 {object} response_models.SaveExerciseResponse
// @Security BearerAuth
// @Router /api/save-exercise [post]
func (s *SessionController) SaveExercise(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("save exercise panicked", zap.Any("panic", r), zap.String("trace_id", c.GetString("trace_id")))
			c.AbortWithStatusJSON(http.StatusInternalServerError, response_models.SaveExerciseResponse{
				Status:  saveStatusError,
				Message: "Internal server error",
			})
		}
	}()

	var req request_models.SaveExerciseProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response_models.SaveExerciseResponse{
			Status:  saveStatusError,
			Message: "Invalid request format",
		})
		return
	}

	logID, err := s.sessionService.SaveExerciseProgress(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		code, message := utils.StatusForError(err)
		if code >= http.StatusInternalServerError {
			s.log.Error("save exercise", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		}
		c.JSON(code, response_models.SaveExerciseResponse{
			Status:  saveStatusError,
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, response_models.SaveExerciseResponse{
		Status: saveStatusSuccess,
		LogID:  logID,
	})
}
