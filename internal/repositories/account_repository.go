package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sportapp/internal/models/db_models"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/account_repository_mock.go -package=mocks

type AccountRepository interface {
	// CreateWithProfile inserts the user and its default profile in one transaction.
	CreateWithProfile(ctx context.Context, user *db_models.User) error
	// SaveUser persists user changes and re-saves the profile in the same transaction.
	SaveUser(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uint) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) CreateWithProfile(ctx context.Context, user *db_models.User) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		profile, err := ensureProfile(tx, user.ID)
		if err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
}

func (a *accountRepository) SaveUser(ctx context.Context, user *db_models.User) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(user).Error; err != nil {
			return err
		}
		if user.Profile == nil {
			profile, err := ensureProfile(tx, user.ID)
			if err != nil {
				return err
			}
			user.Profile = profile
			return nil
		}
		user.Profile.UserID = user.ID
		return tx.Save(user.Profile).Error
	})
}

func (a *accountRepository) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).Preload("Profile").First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var n int64
	err := a.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&n).Error
	return n > 0, err
}

// Delete removes the user; profile, plans and sessions go with it through ON DELETE CASCADE.
func (a *accountRepository) Delete(ctx context.Context, id uint) error {
	res := a.db.WithContext(ctx).Delete(&db_models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
