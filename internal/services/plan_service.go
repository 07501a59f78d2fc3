package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportapp/internal/models/db_models"
	"sportapp/internal/models/request_models"
	"sportapp/internal/models/response_models"
	"sportapp/internal/repositories"
	"sportapp/internal/storage"
	"sportapp/pkg/utils"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/plan_service_mock.go -package=mocks

type PlanServiceInterface interface {
	// ListCatalog returns the public plans matching every non-empty filter, with counters.
	ListCatalog(ctx context.Context, filter request_models.CatalogFilter) (*response_models.CatalogResponse, error)
	GetPlanDetail(ctx context.Context, userID, planID uint) (*response_models.WorkoutPlanDetailResponse, error)
	CreatePlan(ctx context.Context, userID uint, request request_models.CreatePlanRequest) (*response_models.WorkoutPlanDetailResponse, error)
	DeletePlan(ctx context.Context, userID, planID uint) error
	RequestImageUpload(ctx context.Context, userID, planID uint, request request_models.ImageUploadRequest) (*response_models.ImageUploadResponse, error)
}

type PlanService struct {
	planRepo      repositories.IPlanRepository
	sessionRepo   repositories.ISessionRepository
	files         storage.FileStorage
	presignExpiry time.Duration
	log           *zap.Logger
}

func NewPlanService(
	planRepo repositories.IPlanRepository,
	sessionRepo repositories.ISessionRepository,
	files storage.FileStorage,
	presignExpiry time.Duration,
	log *zap.Logger,
) PlanServiceInterface {
	if presignExpiry <= 0 {
		presignExpiry = storage.DefaultPresignedURLExpiry
	}
	return &PlanService{
		planRepo:      planRepo,
		sessionRepo:   sessionRepo,
		files:         files,
		presignExpiry: presignExpiry,
		log:           log.Named("plans"),
	}
}

func (p *PlanService) ListCatalog(ctx context.Context, filter request_models.CatalogFilter) (*response_models.CatalogResponse, error) {
	repoFilter := repositories.PlanFilter{
		WorkoutType: filter.WorkoutType,
		Difficulty:  filter.Difficulty,
		Equipment:   filter.Equipment,
	}

	plans, err := p.planRepo.ListPublic(ctx, repoFilter)
	if err != nil {
		p.log.Error("list public plans", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	counts, err := p.planRepo.CountPublic(ctx, repoFilter)
	if err != nil {
		p.log.Error("count public plans", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.CatalogResponse{
		Workouts: make([]response_models.WorkoutPlanResponse, 0, len(plans)),
		Stats: response_models.CatalogStats{
			TotalWorkouts: counts.Total,
			HomeWorkouts:  counts.Home,
			GymWorkouts:   counts.Gym,
		},
		CurrentFilters: response_models.CatalogFilters{
			Type:       filter.WorkoutType,
			Difficulty: filter.Difficulty,
			Equipment:  filter.Equipment,
		},
	}
	for i := range plans {
		out.Workouts = append(out.Workouts, toPlanResponse(&plans[i]))
	}
	return out, nil
}

func (p *PlanService) GetPlanDetail(ctx context.Context, userID, planID uint) (*response_models.WorkoutPlanDetailResponse, error) {
	plan, err := p.visiblePlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	completions, err := p.sessionRepo.CountUserCompletions(ctx, userID, planID)
	if err != nil {
		p.log.Error("count user completions", zap.Uint("plan_id", planID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := p.detail(plan)
	out.UserCompletions = completions
	if plan.HasImage() {
		url, err := p.files.GeneratePresignedDownloadURL(ctx, plan.ImageKey, p.presignExpiry)
		if err != nil {
			// the page is still useful without its picture
			p.log.Warn("presign plan image", zap.Uint("plan_id", planID), zap.Error(err))
		} else {
			out.ImageURL = url
		}
	}
	return out, nil
}

func (p *PlanService) CreatePlan(ctx context.Context, userID uint, request request_models.CreatePlanRequest) (*response_models.WorkoutPlanDetailResponse, error) {
	plan, err := buildPlan(userID, request)
	if err != nil {
		return nil, err
	}

	if err := p.planRepo.CreateWithExercises(ctx, plan); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateExerciseOrder
		}
		if errors.Is(err, gorm.ErrCheckConstraintViolated) {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
		}
		p.log.Error("create plan", zap.Uint("user_id", userID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	p.log.Info("plan created", zap.Uint("plan_id", plan.ID), zap.Uint("user_id", userID))
	return p.detail(plan), nil
}

func (p *PlanService) DeletePlan(ctx context.Context, userID, planID uint) error {
	plan, err := p.ownedPlan(ctx, userID, planID)
	if err != nil {
		return err
	}

	if err := p.planRepo.Delete(ctx, planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrPlanNotFound
		}
		p.log.Error("delete plan", zap.Uint("plan_id", planID), zap.Error(err))
		return utils.ErrDatabaseError
	}

	if plan.HasImage() {
		p.removeObject(ctx, plan.ImageKey)
	}
	return nil
}

func (p *PlanService) RequestImageUpload(ctx context.Context, userID, planID uint, request request_models.ImageUploadRequest) (*response_models.ImageUploadResponse, error) {
	if !storage.IsSupportedImageType(request.ContentType) {
		return nil, fmt.Errorf("%w: unsupported content_type %q", utils.ErrInvalidInput, request.ContentType)
	}

	plan, err := p.ownedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	key, err := storage.PlanImageKey(planID, request.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	uploadURL, err := p.files.GeneratePresignedUploadURL(ctx, key, request.ContentType, p.presignExpiry)
	if err != nil {
		if errors.Is(err, storage.ErrStorageDisabled) {
			return nil, utils.ErrStorageUnavailable
		}
		p.log.Error("presign upload", zap.Uint("plan_id", planID), zap.Error(err))
		return nil, utils.ErrStorageUnavailable
	}

	if err := p.planRepo.SetImageKey(ctx, planID, key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrPlanNotFound
		}
		p.log.Error("set image key", zap.Uint("plan_id", planID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if plan.HasImage() {
		p.removeObject(ctx, plan.ImageKey)
	}

	return &response_models.ImageUploadResponse{
		UploadURL: uploadURL,
		ObjectKey: key,
		ExpiresIn: int(p.presignExpiry / time.Second),
	}, nil
}

// visiblePlan loads a plan the user may see: any public plan, or a private plan they own.
func (p *PlanService) visiblePlan(ctx context.Context, userID, planID uint) (*db_models.WorkoutPlan, error) {
	plan, err := p.planRepo.GetPlanById(ctx, planID)
	if err != nil {
		p.log.Error("get plan", zap.Uint("plan_id", planID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || (!plan.IsPublic && plan.UserID != userID) {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (p *PlanService) ownedPlan(ctx context.Context, userID, planID uint) (*db_models.WorkoutPlan, error) {
	plan, err := p.visiblePlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		p.log.Warn("plan ownership check failed", zap.Uint("plan_id", planID), zap.Uint("user_id", userID))
		return nil, utils.ErrForbidden
	}
	return plan, nil
}

func (p *PlanService) removeObject(ctx context.Context, key string) {
	if err := p.files.DeleteObject(ctx, key); err != nil && !errors.Is(err, storage.ErrStorageDisabled) {
		p.log.Warn("delete plan image", zap.String("key", key), zap.Error(err))
	}
}

func (p *PlanService) detail(plan *db_models.WorkoutPlan) *response_models.WorkoutPlanDetailResponse {
	return &response_models.WorkoutPlanDetailResponse{
		WorkoutPlanResponse: toPlanResponse(plan),
		Exercises:           toExerciseResponses(plan.Exercises),
	}
}

// buildPlan validates the request and applies field defaults. Exercises
// without an explicit order take their position in the request.
func buildPlan(userID uint, request request_models.CreatePlanRequest) (*db_models.WorkoutPlan, error) {
	wt := db_models.WorkoutType(request.WorkoutType)
	if !wt.IsValid() {
		return nil, fmt.Errorf("%w: unknown workout_type %q", utils.ErrInvalidInput, request.WorkoutType)
	}
	difficulty := db_models.Difficulty(request.Difficulty)
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", utils.ErrInvalidInput, request.Difficulty)
	}

	plan := &db_models.WorkoutPlan{
		UserID:         userID,
		Name:           request.Name,
		WorkoutType:    wt,
		Difficulty:     difficulty,
		Description:    request.Description,
		Duration:       request.Duration,
		CaloriesBurned: request.CaloriesBurned,
		IsPublic:       true,
		Exercises:      make([]db_models.Exercise, 0, len(request.Exercises)),
	}
	if request.IsPublic != nil {
		plan.IsPublic = *request.IsPublic
	}

	seen := make(map[int]bool, len(request.Exercises))
	for i, er := range request.Exercises {
		ex := db_models.Exercise{
			Name:             er.Name,
			Description:      er.Description,
			Sets:             er.Sets,
			Reps:             er.Reps,
			RestTime:         db_models.DefaultRestTime,
			Equipment:        db_models.Equipment(er.Equipment),
			DemonstrationURL: er.DemonstrationURL,
			Order:            er.Order,
			TargetMuscles:    er.TargetMuscles,
		}
		if ex.Sets == 0 {
			ex.Sets = db_models.DefaultExerciseSets
		}
		if ex.Sets < db_models.MinExerciseSets || ex.Sets > db_models.MaxExerciseSets {
			return nil, fmt.Errorf("%w: exercise %d: sets must be between %d and %d",
				utils.ErrInvalidInput, i+1, db_models.MinExerciseSets, db_models.MaxExerciseSets)
		}
		if er.RestTime != nil {
			if *er.RestTime < 0 {
				return nil, fmt.Errorf("%w: exercise %d: rest_time must not be negative", utils.ErrInvalidInput, i+1)
			}
			ex.RestTime = *er.RestTime
		}
		if ex.Equipment == "" {
			ex.Equipment = db_models.EquipmentNone
		}
		if !ex.Equipment.IsValid() {
			return nil, fmt.Errorf("%w: exercise %d: unknown equipment %q", utils.ErrInvalidInput, i+1, er.Equipment)
		}
		if ex.Order == 0 {
			ex.Order = i + 1
		}
		if seen[ex.Order] {
			return nil, utils.ErrDuplicateExerciseOrder
		}
		seen[ex.Order] = true
		plan.Exercises = append(plan.Exercises, ex)
	}
	return plan, nil
}
