package repositories

import (
	"errors"

	"gorm.io/gorm"

	"sportapp/internal/models/db_models"
)

func (s *RepositorySuite) seedCatalog() (owner *db_models.User, plans []*db_models.WorkoutPlan) {
	owner = s.createUser()
	plans = []*db_models.WorkoutPlan{
		// two dumbbell exercises on one plan: the equipment filter must still return it once
		s.createPlan(owner.ID, db_models.WorkoutHomeStrength, true, db_models.EquipmentDumbbells, db_models.EquipmentDumbbells),
		s.createPlan(owner.ID, db_models.WorkoutHomeCardio, true, db_models.EquipmentNone),
		s.createPlan(owner.ID, db_models.WorkoutGymStrength, true, db_models.EquipmentBarbell, db_models.EquipmentDumbbells),
		s.createPlan(owner.ID, db_models.WorkoutGymCardio, false, db_models.EquipmentMachine),
	}
	return owner, plans
}

func (s *RepositorySuite) TestListPublic_Unfiltered() {
	_, plans := s.seedCatalog()
	repo := NewPlanRepository(s.db)

	got, err := repo.ListPublic(s.ctx, PlanFilter{})
	s.Require().NoError(err)
	s.Len(got, 3)
	// newest first
	s.Equal(plans[2].ID, got[0].ID)

	counts, err := repo.CountPublic(s.ctx, PlanFilter{})
	s.Require().NoError(err)
	s.Equal(CatalogCounts{Total: 3, Home: 2, Gym: 1}, counts)
}

func (s *RepositorySuite) TestListPublic_TypeNotPresent() {
	s.seedCatalog()
	repo := NewPlanRepository(s.db)

	filter := PlanFilter{WorkoutType: string(db_models.WorkoutYoga)}
	got, err := repo.ListPublic(s.ctx, filter)
	s.Require().NoError(err)
	s.Empty(got)

	counts, err := repo.CountPublic(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal(CatalogCounts{}, counts)
}

func (s *RepositorySuite) TestListPublic_EquipmentIsSubsetAndDeduplicated() {
	_, plans := s.seedCatalog()
	repo := NewPlanRepository(s.db)

	all, err := repo.ListPublic(s.ctx, PlanFilter{})
	s.Require().NoError(err)
	allIDs := map[uint]bool{}
	for _, p := range all {
		allIDs[p.ID] = true
	}

	got, err := repo.ListPublic(s.ctx, PlanFilter{Equipment: string(db_models.EquipmentDumbbells)})
	s.Require().NoError(err)
	s.Len(got, 2)
	for _, p := range got {
		s.True(allIDs[p.ID])
	}

	counts, err := repo.CountPublic(s.ctx, PlanFilter{Equipment: string(db_models.EquipmentDumbbells)})
	s.Require().NoError(err)
	s.Equal(CatalogCounts{Total: 2, Home: 1, Gym: 1}, counts)

	// private plans never match, even on their own equipment
	got, err = repo.ListPublic(s.ctx, PlanFilter{Equipment: string(db_models.EquipmentMachine)})
	s.Require().NoError(err)
	s.Empty(got)
	s.NotZero(plans[3].ID)
}

func (s *RepositorySuite) TestListPublic_CombinedFilters() {
	s.seedCatalog()

	got, err := NewPlanRepository(s.db).ListPublic(s.ctx, PlanFilter{
		WorkoutType: string(db_models.WorkoutGymStrength),
		Difficulty:  string(db_models.DifficultyBeginner),
		Equipment:   string(db_models.EquipmentBarbell),
	})
	s.Require().NoError(err)
	s.Len(got, 1)

	got, err = NewPlanRepository(s.db).ListPublic(s.ctx, PlanFilter{
		WorkoutType: string(db_models.WorkoutGymStrength),
		Difficulty:  string(db_models.DifficultyAdvanced),
	})
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *RepositorySuite) TestGetPlanById_OrdersExercises() {
	owner := s.createUser()
	plan := &db_models.WorkoutPlan{
		UserID:      owner.ID,
		Name:        "Ordered",
		WorkoutType: db_models.WorkoutYoga,
		Difficulty:  db_models.DifficultyBeginner,
		Duration:    20,
		IsPublic:    true,
		Exercises: []db_models.Exercise{
			{Name: "third", Sets: 1, Equipment: db_models.EquipmentNone, Order: 3, RestTime: 30},
			{Name: "first", Sets: 1, Equipment: db_models.EquipmentNone, Order: 1, RestTime: 30},
			{Name: "second", Sets: 1, Equipment: db_models.EquipmentNone, Order: 2, RestTime: 30},
		},
	}
	repo := NewPlanRepository(s.db)
	s.Require().NoError(repo.CreateWithExercises(s.ctx, plan))

	got, err := repo.GetPlanById(s.ctx, plan.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Exercises, 3)
	s.Equal("first", got.Exercises[0].Name)
	s.Equal("second", got.Exercises[1].Name)
	s.Equal("third", got.Exercises[2].Name)

	missing, err := repo.GetPlanById(s.ctx, plan.ID+100)
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositorySuite) TestCreateWithExercises_DuplicateOrderRollsBack() {
	owner := s.createUser()
	plan := &db_models.WorkoutPlan{
		UserID:      owner.ID,
		Name:        "Broken",
		WorkoutType: db_models.WorkoutYoga,
		Difficulty:  db_models.DifficultyBeginner,
		IsPublic:    true,
		Exercises: []db_models.Exercise{
			{Name: "a", Sets: 1, Equipment: db_models.EquipmentNone, Order: 1},
			{Name: "b", Sets: 1, Equipment: db_models.EquipmentNone, Order: 1},
		},
	}

	err := NewPlanRepository(s.db).CreateWithExercises(s.ctx, plan)
	s.True(errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	var n int64
	s.Require().NoError(s.db.Model(&db_models.WorkoutPlan{}).Count(&n).Error)
	s.Zero(n)
}

func (s *RepositorySuite) TestCreateWithExercises_SetsOutOfRangeRejected() {
	owner := s.createUser()
	plan := &db_models.WorkoutPlan{
		UserID:      owner.ID,
		Name:        "Too many sets",
		WorkoutType: db_models.WorkoutYoga,
		Difficulty:  db_models.DifficultyBeginner,
		Exercises: []db_models.Exercise{
			{Name: "a", Sets: 11, Equipment: db_models.EquipmentNone, Order: 1},
		},
	}
	s.Error(NewPlanRepository(s.db).CreateWithExercises(s.ctx, plan))
}

func (s *RepositorySuite) TestDeletePlan_CascadesToSessionsAndLogs() {
	owner := s.createUser()
	plan := s.createPlan(owner.ID, db_models.WorkoutHomeCardio, true, db_models.EquipmentNone)
	session := s.createSession(owner.ID, plan, plan.CreatedAt, -1, nil)
	log := &db_models.ExerciseLog{SessionID: session.ID, ExerciseID: plan.Exercises[0].ID, CompletedSets: 1}
	s.Require().NoError(NewSessionRepository(s.db).UpsertExerciseLog(s.ctx, log, []string{LogColumnCompletedSets}))

	repo := NewPlanRepository(s.db)
	s.Require().NoError(repo.Delete(s.ctx, plan.ID))

	for _, model := range []any{&db_models.Exercise{}, &db_models.WorkoutSession{}, &db_models.ExerciseLog{}} {
		var n int64
		s.Require().NoError(s.db.Model(model).Count(&n).Error)
		s.Zero(n)
	}
	s.ErrorIs(repo.Delete(s.ctx, plan.ID), gorm.ErrRecordNotFound)
}

func (s *RepositorySuite) TestSetImageKey() {
	owner := s.createUser()
	plan := s.createPlan(owner.ID, db_models.WorkoutYoga, true)
	repo := NewPlanRepository(s.db)

	s.Require().NoError(repo.SetImageKey(s.ctx, plan.ID, "workout_images/1/x.png"))
	got, err := repo.GetPlanById(s.ctx, plan.ID)
	s.Require().NoError(err)
	s.True(got.HasImage())

	s.ErrorIs(repo.SetImageKey(s.ctx, plan.ID+1, "k"), gorm.ErrRecordNotFound)
}
