package db_models

type User struct {
	BaseModel
	Username     string `gorm:"size:150;not null;uniqueIndex"`
	Email        string `gorm:"size:254;not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`

	Profile         *UserProfile     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	WorkoutPlans    []WorkoutPlan    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	WorkoutSessions []WorkoutSession `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

const (
	DefaultDailyCalorieTarget = 2000
	DefaultProteinTarget      = 150
)

type UserProfile struct {
	BaseModel
	UserID             uint        `gorm:"not null;uniqueIndex"`
	Height             *float64    // cm
	Weight             *float64    // kg
	FitnessGoal        FitnessGoal `gorm:"size:20;not null"`
	ExperienceLevel    Difficulty  `gorm:"size:20;not null"`
	DailyCalorieTarget int         `gorm:"not null"`
	ProteinTarget      int         `gorm:"not null"` // grams per day
}

// NewDefaultProfile builds the profile every new user starts with.
func NewDefaultProfile(userID uint) *UserProfile {
	return &UserProfile{
		UserID:             userID,
		FitnessGoal:        GoalGeneralFitness,
		ExperienceLevel:    DifficultyBeginner,
		DailyCalorieTarget: DefaultDailyCalorieTarget,
		ProteinTarget:      DefaultProteinTarget,
	}
}
