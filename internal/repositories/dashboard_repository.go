package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "sportapp/internal/models/db_models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/dashboard_repository_mock.go -package=mocks

// DashboardRepository holds the read-only aggregates behind the progress page.
// Every aggregate sums the persisted duration_minutes column, never the
// start/end interval, so SQL totals match WorkoutSession.Duration.
type DashboardRepository interface {
	// Totals aggregates the user's sessions, optionally only those started at or after since.
	Totals(ctx context.Context, userID uint, since *time.Time) (TotalsRow, error)
	ByWorkoutType(ctx context.Context, userID uint) ([]WorkoutTypeRow, error)
	// WeeklyBuckets groups by ISO year and week of start_time in the tz zone, newest first.
	WeeklyBuckets(ctx context.Context, userID uint, tz string, limit int) ([]WeekRow, error)
	RecentSessions(ctx context.Context, userID uint, limit int) ([]dbm.WorkoutSession, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type TotalsRow struct {
	TotalWorkouts int64   `gorm:"column:total_workouts"`
	TotalMinutes  int64   `gorm:"column:total_minutes"`
	AvgRating     float64 `gorm:"column:avg_rating"`
	TotalCalories int64   `gorm:"column:total_calories"`
}

type WorkoutTypeRow struct {
	WorkoutType   dbm.WorkoutType `gorm:"column:workout_type"`
	Count         int64           `gorm:"column:count"`
	TotalDuration int64           `gorm:"column:total_duration"`
}

type WeekRow struct {
	Year          int   `gorm:"column:year"`
	Week          int   `gorm:"column:week"`
	Workouts      int64 `gorm:"column:workouts"`
	TotalDuration int64 `gorm:"column:total_duration"`
}

func (r *dashboardRepository) userSessions(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("workout_sessions ws").
		Joins("JOIN workout_plans wp ON wp.id = ws.workout_plan_id").
		Where("ws.user_id = ?", userID)
}

// ---------- Aggregates ----------
func (r *dashboardRepository) Totals(ctx context.Context, userID uint, since *time.Time) (TotalsRow, error) {
	var row TotalsRow
	tx := r.userSessions(ctx, userID).
		Select(`COUNT(*) AS total_workouts,
			COALESCE(SUM(ws.duration_minutes), 0) AS total_minutes,
			COALESCE(AVG(ws.rating), 0) AS avg_rating,
			COALESCE(SUM(wp.calories_burned), 0) AS total_calories`)
	if since != nil {
		tx = tx.Where("ws.start_time >= ?", *since)
	}
	err := tx.Scan(&row).Error
	return row, err
}

func (r *dashboardRepository) ByWorkoutType(ctx context.Context, userID uint) ([]WorkoutTypeRow, error) {
	var rows []WorkoutTypeRow
	err := r.userSessions(ctx, userID).
		Select("wp.workout_type AS workout_type, COUNT(*) AS count, COALESCE(SUM(ws.duration_minutes), 0) AS total_duration").
		Group("wp.workout_type").
		Order("count DESC").
		Order("wp.workout_type ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) WeeklyBuckets(ctx context.Context, userID uint, tz string, limit int) ([]WeekRow, error) {
	if tz == "" {
		tz = "UTC"
	}
	var rows []WeekRow
	err := r.userSessions(ctx, userID).
		Select(`EXTRACT(ISOYEAR FROM ws.start_time AT TIME ZONE ?)::int AS year,
			EXTRACT(WEEK FROM ws.start_time AT TIME ZONE ?)::int AS week,
			COUNT(*) AS workouts,
			COALESCE(SUM(ws.duration_minutes), 0) AS total_duration`, tz, tz).
		Group("year, week").
		Order("year DESC, week DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ---------- Recent ----------
func (r *dashboardRepository) RecentSessions(ctx context.Context, userID uint, limit int) ([]dbm.WorkoutSession, error) {
	var sessions []dbm.WorkoutSession
	err := r.db.WithContext(ctx).
		Preload("WorkoutPlan").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Order("id DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
