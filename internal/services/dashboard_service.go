package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	resp "sportapp/internal/models/response_models"
	"sportapp/internal/repositories"
	"sportapp/pkg/utils"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/dashboard_service_mock.go -package=mocks

const (
	DashboardRecentSessions = 5
	DefaultHistoryLimit     = 10
	MaxHistoryLimit         = 50
	WeeklyBucketCount       = 8
	RollingWindowDays       = 30
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, userID uint) (*resp.DashboardResponse, error)
	// RecentSessions returns the newest sessions; limit is clamped to [1, MaxHistoryLimit],
	// with 0 meaning DefaultHistoryLimit.
	RecentSessions(ctx context.Context, userID uint, limit int) ([]resp.WorkoutSessionResponse, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	tz   string
	loc  *time.Location
	log  *zap.Logger
	now  func() time.Time
}

// NewDashboardService buckets weeks in the tz zone (an IANA name, UTC when empty).
func NewDashboardService(repo repositories.DashboardRepository, tz string, log *zap.Logger) DashboardService {
	loc := utils.LoadLocationOrUTC(tz)
	return &dashboardService{
		repo: repo,
		tz:   loc.String(),
		loc:  loc,
		log:  log.Named("dashboard"),
		now:  time.Now,
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, userID uint) (*resp.DashboardResponse, error) {
	overall, err := s.repo.Totals(ctx, userID, nil)
	if err != nil {
		return nil, s.dbError("overall totals", userID, err)
	}

	since := s.now().UTC().AddDate(0, 0, -RollingWindowDays)
	window, err := s.repo.Totals(ctx, userID, &since)
	if err != nil {
		return nil, s.dbError("rolling totals", userID, err)
	}

	byType, err := s.repo.ByWorkoutType(ctx, userID)
	if err != nil {
		return nil, s.dbError("type distribution", userID, err)
	}

	weeks, err := s.repo.WeeklyBuckets(ctx, userID, s.tz, WeeklyBucketCount)
	if err != nil {
		return nil, s.dbError("weekly buckets", userID, err)
	}

	recent, err := s.RecentSessions(ctx, userID, DashboardRecentSessions)
	if err != nil {
		return nil, err
	}

	out := &resp.DashboardResponse{
		Overall:        toTotals(overall),
		Last30Days:     toTotals(window),
		WorkoutTypes:   make([]resp.WorkoutTypeCount, 0, len(byType)),
		WeeklyProgress: make([]resp.WeeklyBucket, 0, len(weeks)),
		RecentSessions: recent,
		Timezone:       s.tz,
	}
	for _, row := range byType {
		out.WorkoutTypes = append(out.WorkoutTypes, resp.WorkoutTypeCount{
			WorkoutType:   string(row.WorkoutType),
			Label:         row.WorkoutType.Label(),
			Count:         row.Count,
			TotalDuration: row.TotalDuration,
		})
	}
	for _, w := range weeks {
		out.WeeklyProgress = append(out.WeeklyProgress, resp.WeeklyBucket{
			Year:          w.Year,
			Week:          w.Week,
			Workouts:      w.Workouts,
			TotalDuration: w.TotalDuration,
		})
	}
	return out, nil
}

func (s *dashboardService) RecentSessions(ctx context.Context, userID uint, limit int) ([]resp.WorkoutSessionResponse, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	sessions, err := s.repo.RecentSessions(ctx, userID, limit)
	if err != nil {
		return nil, s.dbError("recent sessions", userID, err)
	}

	out := make([]resp.WorkoutSessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, toSessionResponse(&sessions[i], s.loc))
	}
	return out, nil
}

func (s *dashboardService) dbError(what string, userID uint, err error) error {
	s.log.Error(what, zap.Uint("user_id", userID), zap.Error(err))
	return utils.ErrDatabaseError
}

func toTotals(row repositories.TotalsRow) resp.ProgressTotals {
	return resp.ProgressTotals{
		TotalWorkouts: row.TotalWorkouts,
		TotalMinutes:  row.TotalMinutes,
		AvgRating:     row.AvgRating,
		TotalCalories: row.TotalCalories,
	}
}
