package repositories

import (
	"errors"
	"time"

	"gorm.io/datatypes"

	"sportapp/internal/models/db_models"
)

func (s *RepositorySuite) TestUpsertExerciseLog_LastWriteWins() {
	user := s.createUser()
	plan := s.createPlan(user.ID, db_models.WorkoutHomeStrength, true, db_models.EquipmentNone, db_models.EquipmentDumbbells)
	session := s.createSession(user.ID, plan, time.Now().UTC(), -1, nil)
	repo := NewSessionRepository(s.db)
	exerciseID := plan.Exercises[0].ID

	weight := 12.5
	first := &db_models.ExerciseLog{
		SessionID:     session.ID,
		ExerciseID:    exerciseID,
		CompletedSets: 3,
		WeightUsed:    &weight,
		CompletedReps: datatypes.NewJSONType(db_models.RepCounts{"1": 10, "2": 10, "3": 8}),
		Notes:         "felt heavy",
	}
	s.Require().NoError(repo.UpsertExerciseLog(s.ctx, first, []string{LogColumnCompletedSets, LogColumnWeightUsed, LogColumnCompletedReps, LogColumnNotes}))
	s.NotZero(first.ID)

	// reps and notes are not part of the second write and must survive it
	second := &db_models.ExerciseLog{
		SessionID:     session.ID,
		ExerciseID:    exerciseID,
		CompletedSets: 5,
		CompletedReps: datatypes.NewJSONType(db_models.RepCounts{}),
	}
	s.Require().NoError(repo.UpsertExerciseLog(s.ctx, second, []string{LogColumnCompletedSets, LogColumnWeightUsed}))
	s.Equal(first.ID, second.ID)

	var logs []db_models.ExerciseLog
	s.Require().NoError(s.db.Where("session_id = ?", session.ID).Find(&logs).Error)
	s.Require().Len(logs, 1)
	s.Equal(5, logs[0].CompletedSets)
	s.Nil(logs[0].WeightUsed)
	s.Equal(db_models.RepCounts{"1": 10, "2": 10, "3": 8}, logs[0].CompletedReps.Data())
	s.Equal("felt heavy", logs[0].Notes)
}

func (s *RepositorySuite) TestGetSessionDetail() {
	user := s.createUser()
	plan := s.createPlan(user.ID, db_models.WorkoutGymStrength, true, db_models.EquipmentBarbell, db_models.EquipmentMachine)
	session := s.createSession(user.ID, plan, time.Now().UTC(), -1, nil)
	repo := NewSessionRepository(s.db)

	log := &db_models.ExerciseLog{SessionID: session.ID, ExerciseID: plan.Exercises[1].ID, CompletedSets: 2,
		CompletedReps: datatypes.NewJSONType(db_models.RepCounts{})}
	s.Require().NoError(repo.UpsertExerciseLog(s.ctx, log, []string{LogColumnCompletedSets}))

	got, err := repo.GetSessionDetail(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(plan.ID, got.WorkoutPlan.ID)
	s.Require().Len(got.WorkoutPlan.Exercises, 2)
	s.Equal(1, got.WorkoutPlan.Exercises[0].Order)
	s.Require().Len(got.ExerciseLogs, 1)
	s.Equal(db_models.SessionInProgress, got.State())

	missing, err := repo.GetSessionById(s.ctx, session.ID+10)
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositorySuite) TestCompleteSession_PersistsDerivedTotals() {
	user := s.createUser()
	plan := s.createPlan(user.ID, db_models.WorkoutHomeCardio, true, db_models.EquipmentNone, db_models.EquipmentNone, db_models.EquipmentNone)
	start := time.Now().UTC().Add(-45*time.Minute - 30*time.Second)
	session := s.createSession(user.ID, plan, start, -1, nil)
	repo := NewSessionRepository(s.db)

	for i, sets := range []int{3, 0, 2} {
		l := &db_models.ExerciseLog{SessionID: session.ID, ExerciseID: plan.Exercises[i].ID, CompletedSets: sets,
			CompletedReps: datatypes.NewJSONType(db_models.RepCounts{})}
		s.Require().NoError(repo.UpsertExerciseLog(s.ctx, l, []string{LogColumnCompletedSets}))
	}

	rating := 4
	got, err := repo.CompleteSession(s.ctx, session.ID, func(ws *db_models.WorkoutSession, logs []db_models.ExerciseLog) error {
		ws.Complete(time.Now().UTC(), logs)
		ws.Rating = &rating
		return nil
	})
	s.Require().NoError(err)
	s.Equal(2, got.CompletedExercises)
	s.Equal(5, got.TotalSets)
	s.Equal(45, got.DurationMinutes)

	stored, err := repo.GetSessionById(s.ctx, session.ID)
	s.Require().NoError(err)
	s.True(stored.IsCompleted())
	s.Equal(stored.Duration(), stored.DurationMinutes)
	s.Equal(4, *stored.Rating)
}

func (s *RepositorySuite) TestCompleteSession_ApplyErrorWritesNothing() {
	user := s.createUser()
	plan := s.createPlan(user.ID, db_models.WorkoutYoga, true)
	session := s.createSession(user.ID, plan, time.Now().UTC(), -1, nil)
	repo := NewSessionRepository(s.db)
	boom := errors.New("boom")

	_, err := repo.CompleteSession(s.ctx, session.ID, func(ws *db_models.WorkoutSession, _ []db_models.ExerciseLog) error {
		ws.Complete(time.Now().UTC(), nil)
		return boom
	})
	s.ErrorIs(err, boom)

	stored, err := repo.GetSessionById(s.ctx, session.ID)
	s.Require().NoError(err)
	s.False(stored.IsCompleted())

	missing, err := repo.CompleteSession(s.ctx, session.ID+5, func(*db_models.WorkoutSession, []db_models.ExerciseLog) error { return nil })
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositorySuite) TestCountUserCompletions() {
	user := s.createUser()
	other := s.createUser()
	plan := s.createPlan(user.ID, db_models.WorkoutYoga, true)
	now := time.Now().UTC()
	s.createSession(user.ID, plan, now, 10, nil)
	s.createSession(user.ID, plan, now, -1, nil)
	s.createSession(other.ID, plan, now, 10, nil)

	n, err := NewSessionRepository(s.db).CountUserCompletions(s.ctx, user.ID, plan.ID)
	s.Require().NoError(err)
	s.EqualValues(2, n)
}
