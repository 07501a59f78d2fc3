package db_models

import "time"

type WorkoutPlan struct {
	ID             uint        `gorm:"primaryKey"`
	UserID         uint        `gorm:"not null;index"`
	Name           string      `gorm:"size:200;not null"`
	WorkoutType    WorkoutType `gorm:"size:20;not null;index:idx_plans_type_difficulty,priority:1"`
	Difficulty     Difficulty  `gorm:"size:20;not null;index:idx_plans_type_difficulty,priority:2"`
	Description    string      `gorm:"type:text"`
	Duration       int         `gorm:"not null"` // minutes
	CaloriesBurned int         `gorm:"not null;default:0"`
	ImageKey       string      `gorm:"size:255"`
	IsPublic       bool        `gorm:"not null;index:idx_plans_public_created,priority:1"`
	CreatedAt      time.Time   `gorm:"autoCreateTime;index:idx_plans_public_created,priority:2"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime"`

	Exercises []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}

func (p *WorkoutPlan) HasImage() bool { return p.ImageKey != "" }

type Exercise struct {
	BaseModel
	WorkoutID        uint      `gorm:"not null;uniqueIndex:idx_exercises_workout_order,priority:1"`
	Name             string    `gorm:"size:100;not null"`
	Description      string    `gorm:"type:text"`
	Sets             int       `gorm:"not null;default:3;check:chk_exercises_sets,sets >= 1 AND sets <= 10"`
	Reps             string    `gorm:"size:50"`  // free text, e.g. "10-12" or "30 seconds"
	RestTime         int       `gorm:"not null"` // seconds
	Equipment        Equipment `gorm:"size:20;not null;default:'none';index"`
	DemonstrationURL string    `gorm:"size:200"`
	Order            int       `gorm:"column:sort_order;not null;default:0;uniqueIndex:idx_exercises_workout_order,priority:2"`
	TargetMuscles    string    `gorm:"size:200"`
}

const (
	MinExerciseSets     = 1
	MaxExerciseSets     = 10
	DefaultExerciseSets = 3
	DefaultRestTime     = 60
)
