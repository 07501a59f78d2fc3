package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sportapp/internal/models/db_models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/session_repository_mock.go -package=mocks

// Columns an exercise-progress upsert may overwrite on conflict.
const (
	LogColumnCompletedSets = "completed_sets"
	LogColumnWeightUsed    = "weight_used"
	LogColumnCompletedReps = "completed_reps"
	LogColumnNotes         = "notes"
)

// CompleteFunc mutates a locked session given its current logs. Returning an
// error aborts the completion without writing anything.
type CompleteFunc func(session *db_models.WorkoutSession, logs []db_models.ExerciseLog) error

type ISessionRepository interface {
	Create(ctx context.Context, session *db_models.WorkoutSession) error
	// GetSessionById loads the session with its plan, without exercises or logs.
	GetSessionById(ctx context.Context, sessionID uint) (*db_models.WorkoutSession, error)
	// GetSessionDetail loads the session, its plan's ordered exercises and its logs.
	GetSessionDetail(ctx context.Context, sessionID uint) (*db_models.WorkoutSession, error)
	// UpsertExerciseLog inserts the log or, when (session, exercise) already
	// exists, overwrites only the given columns. log.ID is set to the stored row id.
	UpsertExerciseLog(ctx context.Context, log *db_models.ExerciseLog, overwrite []string) error
	CompleteSession(ctx context.Context, sessionID uint, apply CompleteFunc) (*db_models.WorkoutSession, error)
	CountUserCompletions(ctx context.Context, userID, planID uint) (int64, error)
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) ISessionRepository {
	return &SessionRepository{db: db}
}

func (s *SessionRepository) Create(ctx context.Context, session *db_models.WorkoutSession) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(session).Error
}

func (s *SessionRepository) GetSessionById(ctx context.Context, sessionID uint) (*db_models.WorkoutSession, error) {
	var session db_models.WorkoutSession
	err := s.db.WithContext(ctx).
		Preload("WorkoutPlan").
		First(&session, "id = ?", sessionID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (s *SessionRepository) GetSessionDetail(ctx context.Context, sessionID uint) (*db_models.WorkoutSession, error) {
	var session db_models.WorkoutSession
	err := s.db.WithContext(ctx).
		Preload("WorkoutPlan").
		Preload("WorkoutPlan.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("ExerciseLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&session, "id = ?", sessionID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (s *SessionRepository) UpsertExerciseLog(ctx context.Context, log *db_models.ExerciseLog, overwrite []string) error {
	columns := append([]string{"updated_at"}, overwrite...)
	return s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "exercise_id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(log).Error
}

func (s *SessionRepository) CompleteSession(ctx context.Context, sessionID uint, apply CompleteFunc) (*db_models.WorkoutSession, error) {
	var session db_models.WorkoutSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, "id = ?", sessionID).Error
		if err != nil {
			return err
		}

		var logs []db_models.ExerciseLog
		if err := tx.Where("session_id = ?", sessionID).Find(&logs).Error; err != nil {
			return err
		}

		if err := apply(&session, logs); err != nil {
			return err
		}

		return tx.Model(&session).
			Select("end_time", "duration_minutes", "completed_exercises", "total_sets", "rating", "notes", "updated_at").
			Updates(&session).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (s *SessionRepository) CountUserCompletions(ctx context.Context, userID, planID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&db_models.WorkoutSession{}).
		Where("user_id = ? AND workout_plan_id = ?", userID, planID).
		Count(&n).Error
	return n, err
}
