package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type AccountResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProfileResponse struct {
	UserID               uint     `json:"user_id"`
	Username             string   `json:"username"`
	Height               *float64 `json:"height"`
	Weight               *float64 `json:"weight"`
	FitnessGoal          string   `json:"fitness_goal"`
	FitnessGoalLabel     string   `json:"fitness_goal_label"`
	ExperienceLevel      string   `json:"experience_level"`
	ExperienceLevelLabel string   `json:"experience_level_label"`
	DailyCalorieTarget   int      `json:"daily_calorie_target"`
	ProteinTarget        int      `json:"protein_target"`
}
