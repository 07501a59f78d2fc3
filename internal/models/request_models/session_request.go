package request_models

// SaveExerciseProgressRequest is posted by the workout timer after every set.
type SaveExerciseProgressRequest struct {
	SessionID     uint           `json:"session_id" binding:"required"`
	ExerciseID    uint           `json:"exercise_id" binding:"required"`
	CompletedSets int            `json:"completed_sets" binding:"gte=0"`
	WeightUsed    *float64       `json:"weight_used" binding:"omitempty,gte=0"`
	CompletedReps map[string]int `json:"completed_reps"`
	Notes         *string        `json:"notes"`
}

type CompleteSessionRequest struct {
	Rating *int    `json:"rating"`
	Notes  *string `json:"notes"`
}
