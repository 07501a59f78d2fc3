package repositories

import (
	"time"

	"sportapp/internal/models/db_models"
)

func (s *RepositorySuite) TestDashboard_EmptyUserYieldsZeros() {
	user := s.createUser()
	repo := NewDashboardRepository(s.db)

	totals, err := repo.Totals(s.ctx, user.ID, nil)
	s.Require().NoError(err)
	s.Equal(TotalsRow{}, totals)

	byType, err := repo.ByWorkoutType(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Empty(byType)

	weeks, err := repo.WeeklyBuckets(s.ctx, user.ID, "UTC", 8)
	s.Require().NoError(err)
	s.Empty(weeks)

	recent, err := repo.RecentSessions(s.ctx, user.ID, 5)
	s.Require().NoError(err)
	s.Empty(recent)
}

func (s *RepositorySuite) TestDashboard_Aggregates() {
	user := s.createUser()
	other := s.createUser()
	cardio := s.createPlan(user.ID, db_models.WorkoutHomeCardio, true) // 200 kcal
	yoga := s.createPlan(user.ID, db_models.WorkoutYoga, true)
	repo := NewDashboardRepository(s.db)

	now := time.Now().UTC()
	old := now.AddDate(0, 0, -60)
	s.createSession(user.ID, cardio, now.Add(-2*time.Hour), 30, intPtr(4))
	s.createSession(user.ID, cardio, now.Add(-26*time.Hour), 20, intPtr(2))
	s.createSession(user.ID, yoga, old, 40, nil)
	s.createSession(user.ID, yoga, now.Add(-time.Hour), -1, nil) // still open
	s.createSession(other.ID, yoga, now, 90, intPtr(5))

	totals, err := repo.Totals(s.ctx, user.ID, nil)
	s.Require().NoError(err)
	s.EqualValues(4, totals.TotalWorkouts)
	s.EqualValues(90, totals.TotalMinutes)
	s.InDelta(3.0, totals.AvgRating, 0.0001)
	s.EqualValues(800, totals.TotalCalories)

	since := now.AddDate(0, 0, -30)
	recentTotals, err := repo.Totals(s.ctx, user.ID, &since)
	s.Require().NoError(err)
	s.EqualValues(3, recentTotals.TotalWorkouts)
	s.EqualValues(50, recentTotals.TotalMinutes)

	byType, err := repo.ByWorkoutType(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(byType, 2)
	// tie on count resolves by type name
	s.Equal(db_models.WorkoutHomeCardio, byType[0].WorkoutType)
	s.EqualValues(2, byType[0].Count)
	s.EqualValues(50, byType[0].TotalDuration)

	weeks, err := repo.WeeklyBuckets(s.ctx, user.ID, "UTC", 8)
	s.Require().NoError(err)
	s.Require().NotEmpty(weeks)
	oldYear, oldWeek := old.ISOWeek()
	last := weeks[len(weeks)-1]
	s.Equal(oldYear, last.Year)
	s.Equal(oldWeek, last.Week)
	s.EqualValues(1, last.Workouts)
	s.EqualValues(40, last.TotalDuration)
	var sum int64
	for _, w := range weeks {
		sum += w.Workouts
	}
	s.EqualValues(4, sum)

	recent, err := repo.RecentSessions(s.ctx, user.ID, 2)
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal(yoga.ID, recent[0].WorkoutPlan.ID)
	s.True(recent[0].StartTime.After(recent[1].StartTime))
}

func (s *RepositorySuite) TestDashboard_WeeklyBucketsLimit() {
	user := s.createUser()
	plan := s.createPlan(user.ID, db_models.WorkoutGymCardio, true)
	base := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		s.createSession(user.ID, plan, base.AddDate(0, 0, -7*i), 15, nil)
	}

	weeks, err := NewDashboardRepository(s.db).WeeklyBuckets(s.ctx, user.ID, "UTC", 8)
	s.Require().NoError(err)
	s.Require().Len(weeks, 8)
	y, w := base.ISOWeek()
	s.Equal(y, weeks[0].Year)
	s.Equal(w, weeks[0].Week)
	s.EqualValues(15, weeks[0].TotalDuration)
}

func (s *RepositorySuite) TestDashboard_WeeklyBucketsTimezone() {
	user := s.createUser()
	plan := s.createPlan(user.ID, db_models.WorkoutYoga, true)
	// Sunday 23:30 UTC is already Monday of the next ISO week in Tokyo
	start := time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)
	s.createSession(user.ID, plan, start, 10, nil)
	repo := NewDashboardRepository(s.db)

	utc, err := repo.WeeklyBuckets(s.ctx, user.ID, "UTC", 8)
	s.Require().NoError(err)
	tokyo, err := repo.WeeklyBuckets(s.ctx, user.ID, "Asia/Tokyo", 8)
	s.Require().NoError(err)

	s.Require().Len(utc, 1)
	s.Require().Len(tokyo, 1)
	s.Equal(10, utc[0].Week)
	s.Equal(11, tokyo[0].Week)
}
