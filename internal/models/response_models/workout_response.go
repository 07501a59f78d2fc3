package response_models

type ExerciseResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Sets             int    `json:"sets"`
	Reps             string `json:"reps"`
	RestTime         int    `json:"rest_time"`
	Equipment        string `json:"equipment"`
	EquipmentLabel   string `json:"equipment_label"`
	DemonstrationURL string `json:"demonstration_url,omitempty"`
	Order            int    `json:"order"`
	TargetMuscles    string `json:"target_muscles"`
}

type WorkoutPlanResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	WorkoutType      string `json:"workout_type"`
	WorkoutTypeLabel string `json:"workout_type_label"`
	Difficulty       string `json:"difficulty"`
	DifficultyLabel  string `json:"difficulty_label"`
	Description      string `json:"description"`
	Duration         int    `json:"duration"`
	CaloriesBurned   int    `json:"calories_burned"`
	IsPublic         bool   `json:"is_public"`
	CreatedAt        string `json:"created_at"` // RFC3339
}

type CatalogStats struct {
	TotalWorkouts int64 `json:"total_workouts"`
	HomeWorkouts  int64 `json:"home_workouts"`
	GymWorkouts   int64 `json:"gym_workouts"`
}

type CatalogFilters struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	Equipment  string `json:"equipment"`
}

type CatalogResponse struct {
	Workouts       []WorkoutPlanResponse `json:"workouts"`
	Stats          CatalogStats          `json:"stats"`
	CurrentFilters CatalogFilters        `json:"current_filters"`
}

type WorkoutPlanDetailResponse struct {
	WorkoutPlanResponse
	ImageURL        string             `json:"image_url,omitempty"`
	Exercises       []ExerciseResponse `json:"exercises"`
	UserCompletions int64              `json:"user_completions"`
}

type ImageUploadResponse struct {
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
