package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportapp/internal/metrics"
	"sportapp/internal/models/db_models"
	"sportapp/internal/models/request_models"
	"sportapp/internal/models/response_models"
	"sportapp/internal/repositories"
	"sportapp/pkg/utils"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/account_service_mock.go -package=mocks

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	DeleteAccount(ctx context.Context, userID uint) error
	// GetProfile returns the user's profile, provisioning the default one for
	// users created before profiles existed.
	GetProfile(ctx context.Context, userID uint) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	tokens      *utils.TokenIssuer
	metrics     *metrics.Manager
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	tokens *utils.TokenIssuer,
	metricsManager *metrics.Manager,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		metrics:     metricsManager,
		log:         log.Named("accounts"),
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))
	username := strings.TrimSpace(request.Username)

	exists, err := a.accountRepo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		a.log.Error("check existing account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &db_models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := a.accountRepo.CreateWithProfile(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		a.log.Error("create account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	a.metrics.CounterRegistrations.Inc()
	a.log.Info("account registered", zap.Uint("user_id", user.ID))

	return &response_models.AccountResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	user, err := a.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		a.log.Error("find account by email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.CreateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: utils.FormatRFC3339In(expiresAt, time.UTC),
	}, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := a.accountRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrAccountNotFound
		}
		a.log.Error("delete account", zap.Uint("user_id", userID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	a.log.Info("account deleted", zap.Uint("user_id", userID))
	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uint) (*response_models.ProfileResponse, error) {
	user, err := a.loadUserWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(user, user.Profile), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID uint, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	user, err := a.loadUserWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	if request.Height != nil {
		profile.Height = request.Height
	}
	if request.Weight != nil {
		profile.Weight = request.Weight
	}
	if request.FitnessGoal != nil {
		goal := db_models.FitnessGoal(*request.FitnessGoal)
		if !goal.IsValid() {
			return nil, fmt.Errorf("%w: unknown fitness_goal %q", utils.ErrInvalidInput, *request.FitnessGoal)
		}
		profile.FitnessGoal = goal
	}
	if request.ExperienceLevel != nil {
		level := db_models.Difficulty(*request.ExperienceLevel)
		if !level.IsValid() {
			return nil, fmt.Errorf("%w: unknown experience_level %q", utils.ErrInvalidInput, *request.ExperienceLevel)
		}
		profile.ExperienceLevel = level
	}
	if request.DailyCalorieTarget != nil {
		profile.DailyCalorieTarget = *request.DailyCalorieTarget
	}
	if request.ProteinTarget != nil {
		profile.ProteinTarget = *request.ProteinTarget
	}

	if err := a.accountRepo.SaveUser(ctx, user); err != nil {
		a.log.Error("save user", zap.Uint("user_id", userID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toProfileResponse(user, user.Profile), nil
}

func (a *AccountService) loadUserWithProfile(ctx context.Context, userID uint) (*db_models.User, error) {
	user, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		a.log.Error("find account", zap.Uint("user_id", userID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	if user.Profile == nil {
		profile, err := a.profileRepo.EnsureProfile(ctx, userID)
		if err != nil {
			a.log.Error("ensure profile", zap.Uint("user_id", userID), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		user.Profile = profile
	}
	return user, nil
}
