package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	Height             *float64 `json:"height" binding:"omitempty,gt=0"`
	Weight             *float64 `json:"weight" binding:"omitempty,gt=0"`
	FitnessGoal        *string  `json:"fitness_goal"`
	ExperienceLevel    *string  `json:"experience_level"`
	DailyCalorieTarget *int     `json:"daily_calorie_target" binding:"omitempty,gt=0"`
	ProteinTarget      *int     `json:"protein_target" binding:"omitempty,gt=0"`
}
