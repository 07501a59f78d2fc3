package request_models

// CatalogFilter holds the optional catalog query parameters. An empty value
// means no restriction on that axis.
type CatalogFilter struct {
	WorkoutType string `form:"type" json:"type"`
	Difficulty  string `form:"difficulty" json:"difficulty"`
	Equipment   string `form:"equipment" json:"equipment"`
}

func (f CatalogFilter) IsEmpty() bool {
	return f.WorkoutType == "" && f.Difficulty == "" && f.Equipment == ""
}

type CreateExerciseRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	Description      string `json:"description"`
	Sets             int    `json:"sets"`
	Reps             string `json:"reps" binding:"max=50"`
	RestTime         *int   `json:"rest_time"`
	Equipment        string `json:"equipment"`
	DemonstrationURL string `json:"demonstration_url" binding:"omitempty,url,max=200"`
	Order            int    `json:"order"`
	TargetMuscles    string `json:"target_muscles" binding:"max=200"`
}

type CreatePlanRequest struct {
	Name           string                  `json:"name" binding:"required,max=200"`
	WorkoutType    string                  `json:"workout_type" binding:"required"`
	Difficulty     string                  `json:"difficulty" binding:"required"`
	Description    string                  `json:"description"`
	Duration       int                     `json:"duration" binding:"gte=0"`
	CaloriesBurned int                     `json:"calories_burned" binding:"gte=0"`
	IsPublic       *bool                   `json:"is_public"`
	Exercises      []CreateExerciseRequest `json:"exercises" binding:"dive"`
}

type ImageUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}
