package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sportapp/internal/models/db_models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/profile_repository_mock.go -package=mocks

type ProfileRepository interface {
	// EnsureProfile returns the user's profile, creating the default one if missing.
	// Concurrent calls for the same user never produce two rows.
	EnsureProfile(ctx context.Context, userID uint) (*db_models.UserProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) EnsureProfile(ctx context.Context, userID uint) (*db_models.UserProfile, error) {
	var profile *db_models.UserProfile
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		profile, err = ensureProfile(tx, userID)
		return err
	})
	return profile, err
}

// ensureProfile inserts the default profile unless one exists, then reads back
// whichever row won.
func ensureProfile(tx *gorm.DB, userID uint) (*db_models.UserProfile, error) {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(db_models.NewDefaultProfile(userID)).Error
	if err != nil {
		return nil, err
	}

	var profile db_models.UserProfile
	if err := tx.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
