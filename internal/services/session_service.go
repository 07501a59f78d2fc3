package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"sportapp/internal/metrics"
	"sportapp/internal/models/db_models"
	"sportapp/internal/models/request_models"
	"sportapp/internal/models/response_models"
	"sportapp/internal/repositories"
	"sportapp/pkg/utils"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/session_service_mock.go -package=mocks

type SessionServiceInterface interface {
	// StartSession opens a new session on a plan and returns its id.
	StartSession(ctx context.Context, userID, planID uint) (uint, error)
	GetSession(ctx context.Context, userID, sessionID uint) (*response_models.SessionDetailResponse, error)
	// SaveExerciseProgress upserts the log of one exercise in the session and returns the log id.
	// completed_sets and weight_used are always overwritten; completed_reps and notes only when sent.
	SaveExerciseProgress(ctx context.Context, userID uint, request request_models.SaveExerciseProgressRequest) (uint, error)
	CompleteSession(ctx context.Context, userID, sessionID uint, request request_models.CompleteSessionRequest) (*response_models.WorkoutSessionResponse, error)
}

type SessionService struct {
	sessionRepo repositories.ISessionRepository
	planRepo    repositories.IPlanRepository
	metrics     *metrics.Manager
	loc         *time.Location
	log         *zap.Logger
	now         func() time.Time
}

// NewSessionService renders session timestamps in the tz zone, the same zone
// the progress views use.
func NewSessionService(
	sessionRepo repositories.ISessionRepository,
	planRepo repositories.IPlanRepository,
	metricsManager *metrics.Manager,
	tz string,
	log *zap.Logger,
) SessionServiceInterface {
	return &SessionService{
		sessionRepo: sessionRepo,
		planRepo:    planRepo,
		metrics:     metricsManager,
		loc:         utils.LoadLocationOrUTC(tz),
		log:         log.Named("sessions"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *SessionService) StartSession(ctx context.Context, userID, planID uint) (uint, error) {
	plan, err := s.planRepo.GetPlanById(ctx, planID)
	if err != nil {
		s.log.Error("get plan", zap.Uint("plan_id", planID), zap.Error(err))
		return 0, utils.ErrDatabaseError
	}
	if plan == nil || (!plan.IsPublic && plan.UserID != userID) {
		return 0, utils.ErrPlanNotFound
	}

	session := &db_models.WorkoutSession{
		UserID:        userID,
		WorkoutPlanID: plan.ID,
		StartTime:     s.now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.log.Error("create session", zap.Uint("plan_id", planID), zap.Error(err))
		return 0, utils.ErrDatabaseError
	}

	s.metrics.CounterSessionsStarted.Inc()
	return session.ID, nil
}

func (s *SessionService) GetSession(ctx context.Context, userID, sessionID uint) (*response_models.SessionDetailResponse, error) {
	session, err := s.sessionRepo.GetSessionDetail(ctx, sessionID)
	if err != nil {
		s.log.Error("get session detail", zap.Uint("session_id", sessionID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if err := s.authorize(session, userID); err != nil {
		return nil, err
	}

	return &response_models.SessionDetailResponse{
		Session:   toSessionResponse(session, s.loc),
		Exercises: toExerciseResponses(session.WorkoutPlan.Exercises),
		Logs:      toLogResponses(session.ExerciseLogs),
	}, nil
}

func (s *SessionService) SaveExerciseProgress(ctx context.Context, userID uint, request request_models.SaveExerciseProgressRequest) (uint, error) {
	if request.CompletedSets < 0 {
		return 0, fmt.Errorf("%w: completed_sets must not be negative", utils.ErrInvalidInput)
	}
	for set, reps := range request.CompletedReps {
		if reps < 0 {
			return 0, fmt.Errorf("%w: completed_reps[%s] must not be negative", utils.ErrInvalidInput, set)
		}
	}

	session, err := s.sessionRepo.GetSessionById(ctx, request.SessionID)
	if err != nil {
		s.log.Error("get session", zap.Uint("session_id", request.SessionID), zap.Error(err))
		return 0, utils.ErrDatabaseError
	}
	if err := s.authorize(session, userID); err != nil {
		return 0, err
	}
	if session.IsCompleted() {
		return 0, utils.ErrSessionCompleted
	}

	exercise, err := s.planRepo.GetExerciseById(ctx, request.ExerciseID)
	if err != nil {
		s.log.Error("get exercise", zap.Uint("exercise_id", request.ExerciseID), zap.Error(err))
		return 0, utils.ErrDatabaseError
	}
	if exercise == nil {
		return 0, utils.ErrExerciseNotFound
	}
	if exercise.WorkoutID != session.WorkoutPlanID {
		return 0, utils.ErrExerciseNotInPlan
	}

	log := &db_models.ExerciseLog{
		SessionID:     session.ID,
		ExerciseID:    exercise.ID,
		CompletedSets: request.CompletedSets,
		WeightUsed:    request.WeightUsed,
		CompletedReps: datatypes.NewJSONType(db_models.RepCounts{}),
	}
	overwrite := []string{repositories.LogColumnCompletedSets, repositories.LogColumnWeightUsed}
	if request.CompletedReps != nil {
		log.CompletedReps = datatypes.NewJSONType(db_models.RepCounts(request.CompletedReps))
		overwrite = append(overwrite, repositories.LogColumnCompletedReps)
	}
	if request.Notes != nil {
		log.Notes = *request.Notes
		overwrite = append(overwrite, repositories.LogColumnNotes)
	}

	if err := s.sessionRepo.UpsertExerciseLog(ctx, log, overwrite); err != nil {
		s.log.Error("upsert exercise log",
			zap.Uint("session_id", session.ID),
			zap.Uint("exercise_id", exercise.ID),
			zap.Error(err),
		)
		return 0, utils.ErrDatabaseError
	}

	s.metrics.CounterExerciseLogsSaved.Inc()
	return log.ID, nil
}

func (s *SessionService) CompleteSession(ctx context.Context, userID, sessionID uint, request request_models.CompleteSessionRequest) (*response_models.WorkoutSessionResponse, error) {
	if request.Rating != nil && (*request.Rating < db_models.MinSessionRating || *request.Rating > db_models.MaxSessionRating) {
		return nil, utils.ErrInvalidRating
	}

	session, err := s.sessionRepo.GetSessionById(ctx, sessionID)
	if err != nil {
		s.log.Error("get session", zap.Uint("session_id", sessionID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if err := s.authorize(session, userID); err != nil {
		return nil, err
	}

	completed, err := s.sessionRepo.CompleteSession(ctx, sessionID, func(ws *db_models.WorkoutSession, logs []db_models.ExerciseLog) error {
		// re-checked under the row lock
		if ws.IsCompleted() {
			return utils.ErrSessionCompleted
		}
		ws.Complete(s.now(), logs)
		if request.Rating != nil {
			ws.Rating = request.Rating
		}
		if request.Notes != nil {
			ws.Notes = *request.Notes
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, utils.ErrSessionCompleted) {
			return nil, err
		}
		s.log.Error("complete session", zap.Uint("session_id", sessionID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if completed == nil {
		return nil, utils.ErrSessionNotFound
	}

	s.metrics.CounterSessionsCompleted.Inc()
	completed.WorkoutPlan = session.WorkoutPlan
	out := toSessionResponse(completed, s.loc)
	return &out, nil
}

// authorize separates the two failure modes. Callers see both as not found,
// but a denial is logged.
func (s *SessionService) authorize(session *db_models.WorkoutSession, userID uint) error {
	if session == nil {
		return utils.ErrSessionNotFound
	}
	if session.UserID != userID {
		s.log.Warn("session access denied",
			zap.Uint("session_id", session.ID),
			zap.Uint("owner_id", session.UserID),
			zap.Uint("user_id", userID),
		)
		return utils.ErrSessionAccessDenied
	}
	return nil
}
