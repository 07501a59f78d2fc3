package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type SessionState string

const (
	SessionNotStarted SessionState = "not_started"
	SessionInProgress SessionState = "in_progress"
	SessionCompleted  SessionState = "completed"
)

const (
	MinSessionRating = 1
	MaxSessionRating = 5
)

type WorkoutSession struct {
	BaseModel
	UserID        uint        `gorm:"not null;index:idx_sessions_user_start,priority:1"`
	WorkoutPlanID uint        `gorm:"not null;index"`
	WorkoutPlan   WorkoutPlan `gorm:"foreignKey:WorkoutPlanID;constraint:OnDelete:CASCADE"`
	StartTime     time.Time   `gorm:"not null;index:idx_sessions_user_start,priority:2"`
	EndTime       *time.Time
	// DurationMinutes is written once, on completion, from SessionDuration.
	// Aggregates sum this column instead of recomputing the interval in SQL.
	DurationMinutes    int    `gorm:"not null;default:0"`
	CompletedExercises int    `gorm:"not null;default:0"`
	TotalSets          int    `gorm:"not null;default:0"`
	Notes              string `gorm:"type:text"`
	Rating             *int   `gorm:"check:chk_workout_sessions_rating,rating IS NULL OR (rating >= 1 AND rating <= 5)"`

	ExerciseLogs []ExerciseLog `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// SessionDuration returns the whole minutes elapsed between start and end.
// Sessions without an end, or ending before they start, last 0 minutes.
func SessionDuration(start time.Time, end *time.Time) int {
	if end == nil || !end.After(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}

// SessionEfficiency is completed exercises per minute, as a percentage.
func SessionEfficiency(completedExercises, durationMinutes int) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	return float64(completedExercises) / float64(durationMinutes) * 100
}

func (s *WorkoutSession) Duration() int {
	return SessionDuration(s.StartTime, s.EndTime)
}

func (s *WorkoutSession) Efficiency() float64 {
	return SessionEfficiency(s.CompletedExercises, s.Duration())
}

func (s *WorkoutSession) State() SessionState {
	switch {
	case s.ID == 0:
		return SessionNotStarted
	case s.EndTime != nil:
		return SessionCompleted
	default:
		return SessionInProgress
	}
}

func (s *WorkoutSession) IsCompleted() bool { return s.State() == SessionCompleted }

// Complete moves the session into its terminal state and freezes the derived totals.
func (s *WorkoutSession) Complete(end time.Time, logs []ExerciseLog) {
	s.EndTime = &end
	s.DurationMinutes = SessionDuration(s.StartTime, s.EndTime)
	s.CompletedExercises = 0
	s.TotalSets = 0
	for _, l := range logs {
		if l.CompletedSets > 0 {
			s.CompletedExercises++
		}
		s.TotalSets += l.CompletedSets
	}
}

// RepCounts maps a set number ("1", "2", ...) to the reps done in that set.
type RepCounts map[string]int

type ExerciseLog struct {
	BaseModel
	SessionID     uint                          `gorm:"not null;uniqueIndex:idx_exercise_logs_session_exercise,priority:1"`
	ExerciseID    uint                          `gorm:"not null;uniqueIndex:idx_exercise_logs_session_exercise,priority:2"`
	Exercise      Exercise                      `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE"`
	CompletedSets int                           `gorm:"not null;default:0"`
	CompletedReps datatypes.JSONType[RepCounts] `gorm:"type:jsonb;not null;default:'{}'"`
	WeightUsed    *float64
	Notes         string `gorm:"type:text"`
}
