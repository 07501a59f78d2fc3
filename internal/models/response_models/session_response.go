package response_models

type ExerciseLogResponse struct {
	ID            uint           `json:"id"`
	ExerciseID    uint           `json:"exercise_id"`
	CompletedSets int            `json:"completed_sets"`
	CompletedReps map[string]int `json:"completed_reps"`
	WeightUsed    *float64       `json:"weight_used"`
	Notes         string         `json:"notes,omitempty"`
}

type WorkoutSessionResponse struct {
	ID                 uint    `json:"id"`
	WorkoutPlanID      uint    `json:"workout_plan_id"`
	WorkoutPlanName    string  `json:"workout_plan_name"`
	WorkoutType        string  `json:"workout_type"`
	State              string  `json:"state"`
	StartTime          string  `json:"start_time"`
	EndTime            *string `json:"end_time"`
	Duration           int     `json:"duration"` // minutes
	CompletedExercises int     `json:"completed_exercises"`
	TotalSets          int     `json:"total_sets"`
	Efficiency         float64 `json:"efficiency"`
	Rating             *int    `json:"rating"`
	Notes              string  `json:"notes,omitempty"`
}

// SessionDetailResponse feeds the workout timer: the session, its plan's
// ordered exercises and whatever has been logged so far.
type SessionDetailResponse struct {
	Session   WorkoutSessionResponse `json:"session"`
	Exercises []ExerciseResponse     `json:"exercises"`
	Logs      []ExerciseLogResponse  `json:"logs"`
}

type StartSessionResponse struct {
	SessionID   uint   `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

// SaveExerciseResponse is the payload of /api/save-exercise. It does not use
// the APIResponse envelope.
type SaveExerciseResponse struct {
	Status  string `json:"status"`
	LogID   uint   `json:"log_id,omitempty"`
	Message string `json:"message,omitempty"`
}
