package response_models

type ProgressTotals struct {
	TotalWorkouts int64   `json:"total_workouts"`
	TotalMinutes  int64   `json:"total_minutes"`
	AvgRating     float64 `json:"avg_rating"`
	TotalCalories int64   `json:"total_calories"`
}

type WorkoutTypeCount struct {
	WorkoutType   string `json:"workout_type"`
	Label         string `json:"label"`
	Count         int64  `json:"count"`
	TotalDuration int64  `json:"total_duration"`
}

type WeeklyBucket struct {
	Year          int   `json:"year"` // ISO year
	Week          int   `json:"week"` // ISO week
	Workouts      int64 `json:"workouts"`
	TotalDuration int64 `json:"total_duration"`
}

type DashboardResponse struct {
	Overall        ProgressTotals           `json:"overall"`
	Last30Days     ProgressTotals           `json:"last_30_days"`
	WorkoutTypes   []WorkoutTypeCount       `json:"workout_types"`
	WeeklyProgress []WeeklyBucket           `json:"weekly_progress"`
	RecentSessions []WorkoutSessionResponse `json:"recent_sessions"`
	Timezone       string                   `json:"timezone"`
}
