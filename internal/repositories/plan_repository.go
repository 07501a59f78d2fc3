package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sportapp/internal/models/db_models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/plan_repository_mock.go -package=mocks

// PlanFilter narrows the public catalog. Empty fields do not restrict.
type PlanFilter struct {
	WorkoutType string
	Difficulty  string
	Equipment   string
}

type CatalogCounts struct {
	Total int64 `gorm:"column:total"`
	Home  int64 `gorm:"column:home"`
	Gym   int64 `gorm:"column:gym"`
}

type IPlanRepository interface {
	ListPublic(ctx context.Context, filter PlanFilter) ([]db_models.WorkoutPlan, error)
	CountPublic(ctx context.Context, filter PlanFilter) (CatalogCounts, error)
	// GetPlanById loads the plan with its exercises in display order.
	GetPlanById(ctx context.Context, planID uint) (*db_models.WorkoutPlan, error)
	GetExerciseById(ctx context.Context, exerciseID uint) (*db_models.Exercise, error)
	CreateWithExercises(ctx context.Context, plan *db_models.WorkoutPlan) error
	Delete(ctx context.Context, planID uint) error
	SetImageKey(ctx context.Context, planID uint, key string) error
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

// publicCatalog is the shared scope of the listing and its counters.
func publicCatalog(filter PlanFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("workout_plans.is_public = ?", true)
		if filter.WorkoutType != "" {
			db = db.Where("workout_plans.workout_type = ?", filter.WorkoutType)
		}
		if filter.Difficulty != "" {
			db = db.Where("workout_plans.difficulty = ?", filter.Difficulty)
		}
		if filter.Equipment != "" {
			// a subquery instead of a join keeps one row per plan
			db = db.Where("workout_plans.id IN (?)",
				db.Session(&gorm.Session{NewDB: true}).
					Model(&db_models.Exercise{}).
					Select("workout_id").
					Where("equipment = ?", filter.Equipment),
			)
		}
		return db
	}
}

func (p PlanRepository) ListPublic(ctx context.Context, filter PlanFilter) ([]db_models.WorkoutPlan, error) {
	var plans []db_models.WorkoutPlan
	err := p.db.WithContext(ctx).
		Scopes(publicCatalog(filter)).
		Order("workout_plans.created_at DESC").
		Order("workout_plans.id DESC").
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p PlanRepository) CountPublic(ctx context.Context, filter PlanFilter) (CatalogCounts, error) {
	var counts CatalogCounts
	err := p.db.WithContext(ctx).
		Model(&db_models.WorkoutPlan{}).
		Scopes(publicCatalog(filter)).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN workout_plans.workout_type LIKE ? THEN 1 ELSE 0 END), 0) AS home,
			COALESCE(SUM(CASE WHEN workout_plans.workout_type LIKE ? THEN 1 ELSE 0 END), 0) AS gym`,
			db_models.HomeWorkoutPrefix+"%", db_models.GymWorkoutPrefix+"%").
		Scan(&counts).Error
	return counts, err
}

func (p PlanRepository) GetPlanById(ctx context.Context, planID uint) (*db_models.WorkoutPlan, error) {
	var plan db_models.WorkoutPlan
	err := p.db.WithContext(ctx).
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p PlanRepository) GetExerciseById(ctx context.Context, exerciseID uint) (*db_models.Exercise, error) {
	var exercise db_models.Exercise
	err := p.db.WithContext(ctx).First(&exercise, "id = ?", exerciseID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &exercise, nil
}

func (p PlanRepository) CreateWithExercises(ctx context.Context, plan *db_models.WorkoutPlan) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exercises := plan.Exercises
		plan.Exercises = nil
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range exercises {
			exercises[i].WorkoutID = plan.ID
		}
		if len(exercises) > 0 {
			if err := tx.Create(&exercises).Error; err != nil {
				return err
			}
		}
		plan.Exercises = exercises
		return nil
	})
}

// Delete removes the plan; exercises, sessions and their logs cascade.
func (p PlanRepository) Delete(ctx context.Context, planID uint) error {
	res := p.db.WithContext(ctx).Delete(&db_models.WorkoutPlan{}, planID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (p PlanRepository) SetImageKey(ctx context.Context, planID uint, key string) error {
	res := p.db.WithContext(ctx).
		Model(&db_models.WorkoutPlan{}).
		Where("id = ?", planID).
		Update("image_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
