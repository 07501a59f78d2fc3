package services

import (
	"time"

	"sportapp/internal/models/db_models"
	"sportapp/internal/models/response_models"
	"sportapp/pkg/utils"
)

func toPlanResponse(p *db_models.WorkoutPlan) response_models.WorkoutPlanResponse {
	return response_models.WorkoutPlanResponse{
		ID:               p.ID,
		Name:             p.Name,
		WorkoutType:      string(p.WorkoutType),
		WorkoutTypeLabel: p.WorkoutType.Label(),
		Difficulty:       string(p.Difficulty),
		DifficultyLabel:  p.Difficulty.Label(),
		Description:      p.Description,
		Duration:         p.Duration,
		CaloriesBurned:   p.CaloriesBurned,
		IsPublic:         p.IsPublic,
		CreatedAt:        utils.FormatRFC3339In(p.CreatedAt, time.UTC),
	}
}

func toExerciseResponses(exercises []db_models.Exercise) []response_models.ExerciseResponse {
	out := make([]response_models.ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, response_models.ExerciseResponse{
			ID:               e.ID,
			Name:             e.Name,
			Description:      e.Description,
			Sets:             e.Sets,
			Reps:             e.Reps,
			RestTime:         e.RestTime,
			Equipment:        string(e.Equipment),
			EquipmentLabel:   e.Equipment.Label(),
			DemonstrationURL: e.DemonstrationURL,
			Order:            e.Order,
			TargetMuscles:    e.TargetMuscles,
		})
	}
	return out
}

func toSessionResponse(s *db_models.WorkoutSession, loc *time.Location) response_models.WorkoutSessionResponse {
	return response_models.WorkoutSessionResponse{
		ID:                 s.ID,
		WorkoutPlanID:      s.WorkoutPlanID,
		WorkoutPlanName:    s.WorkoutPlan.Name,
		WorkoutType:        string(s.WorkoutPlan.WorkoutType),
		State:              string(s.State()),
		StartTime:          utils.FormatRFC3339In(s.StartTime, loc),
		EndTime:            utils.FormatRFC3339Ptr(s.EndTime, loc),
		Duration:           s.Duration(),
		CompletedExercises: s.CompletedExercises,
		TotalSets:          s.TotalSets,
		Efficiency:         s.Efficiency(),
		Rating:             s.Rating,
		Notes:              s.Notes,
	}
}

func toLogResponses(logs []db_models.ExerciseLog) []response_models.ExerciseLogResponse {
	out := make([]response_models.ExerciseLogResponse, 0, len(logs))
	for _, l := range logs {
		reps := l.CompletedReps.Data()
		if reps == nil {
			reps = db_models.RepCounts{}
		}
		out = append(out, response_models.ExerciseLogResponse{
			ID:            l.ID,
			ExerciseID:    l.ExerciseID,
			CompletedSets: l.CompletedSets,
			CompletedReps: reps,
			WeightUsed:    l.WeightUsed,
			Notes:         l.Notes,
		})
	}
	return out
}

func toProfileResponse(u *db_models.User, p *db_models.UserProfile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		UserID:               u.ID,
		Username:             u.Username,
		Height:               p.Height,
		Weight:               p.Weight,
		FitnessGoal:          string(p.FitnessGoal),
		FitnessGoalLabel:     p.FitnessGoal.Label(),
		ExperienceLevel:      string(p.ExperienceLevel),
		ExperienceLevelLabel: p.ExperienceLevel.Label(),
		DailyCalorieTarget:   p.DailyCalorieTarget,
		ProteinTarget:        p.ProteinTarget,
	}
}
