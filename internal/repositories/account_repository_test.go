package repositories

import (
	"sync"

	"sportapp/internal/models/db_models"
)

func (s *RepositorySuite) TestCreateWithProfile_ProvisionsDefaultProfileOnce() {
	user := s.createUser()

	s.Require().NotNil(user.Profile)
	s.Equal(db_models.GoalGeneralFitness, user.Profile.FitnessGoal)
	s.Equal(db_models.DifficultyBeginner, user.Profile.ExperienceLevel)
	s.Equal(2000, user.Profile.DailyCalorieTarget)
	s.Equal(150, user.Profile.ProteinTarget)

	var n int64
	s.Require().NoError(s.db.Model(&db_models.UserProfile{}).Where("user_id = ?", user.ID).Count(&n).Error)
	s.EqualValues(1, n)
}

func (s *RepositorySuite) TestEnsureProfile_ConcurrentCallsKeepOneRow() {
	user := s.createUser()
	repo := NewProfileRepository(s.db)

	var wg sync.WaitGroup
	ids := make([]uint, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := repo.EnsureProfile(s.ctx, user.ID)
			s.NoError(err)
			if p != nil {
				ids[i] = p.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		s.Equal(user.Profile.ID, id)
	}
	var n int64
	s.Require().NoError(s.db.Model(&db_models.UserProfile{}).Where("user_id = ?", user.ID).Count(&n).Error)
	s.EqualValues(1, n)
}

func (s *RepositorySuite) TestSaveUser_ResavesProfile() {
	repo := NewAccountRepository(s.db)
	user := s.createUser()

	user.Username = "renamed"
	user.Profile.ProteinTarget = 180
	s.Require().NoError(repo.SaveUser(s.ctx, user))

	got, err := repo.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("renamed", got.Username)
	s.Require().NotNil(got.Profile)
	s.Equal(180, got.Profile.ProteinTarget)

	// a user loaded without its profile still ends up with exactly one
	bare, err := repo.FindByEmail(s.ctx, user.Email)
	s.Require().NoError(err)
	s.Require().NoError(repo.SaveUser(s.ctx, bare))
	s.Equal(user.Profile.ID, bare.Profile.ID)
}

func (s *RepositorySuite) TestFindByEmail_Missing() {
	got, err := NewAccountRepository(s.db).FindByEmail(s.ctx, "nobody@example.com")
	s.NoError(err)
	s.Nil(got)
}

func (s *RepositorySuite) TestExistsByEmailOrUsername() {
	repo := NewAccountRepository(s.db)
	user := s.createUser()

	exists, err := repo.ExistsByEmailOrUsername(s.ctx, "other@example.com", user.Username)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = repo.ExistsByEmailOrUsername(s.ctx, "other@example.com", "other")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RepositorySuite) TestDeleteUser_Cascades() {
	repo := NewAccountRepository(s.db)
	user := s.createUser()
	plan := s.createPlan(user.ID, db_models.WorkoutYoga, true, db_models.EquipmentYogaMat)
	s.createSession(user.ID, plan, plan.CreatedAt, 20, nil)

	s.Require().NoError(repo.Delete(s.ctx, user.ID))

	for _, model := range []any{&db_models.UserProfile{}, &db_models.WorkoutPlan{}, &db_models.Exercise{}, &db_models.WorkoutSession{}} {
		var n int64
		s.Require().NoError(s.db.Model(model).Count(&n).Error)
		s.Zero(n)
	}
	s.Error(repo.Delete(s.ctx, user.ID))
}
