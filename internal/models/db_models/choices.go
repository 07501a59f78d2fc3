package db_models

import "strings"

type WorkoutType string

const (
	WorkoutHomeStrength WorkoutType = "home_strength"
	WorkoutHomeCardio   WorkoutType = "home_cardio"
	WorkoutGymStrength  WorkoutType = "gym_strength"
	WorkoutGymCardio    WorkoutType = "gym_cardio"
	WorkoutYoga         WorkoutType = "yoga"
)

// Prefixes used by the catalog counters.
const (
	HomeWorkoutPrefix = "home"
	GymWorkoutPrefix  = "gym"
)

var workoutTypeLabels = map[WorkoutType]string{
	WorkoutHomeStrength: "Home strength",
	WorkoutHomeCardio:   "Home cardio",
	WorkoutGymStrength:  "Gym strength",
	WorkoutGymCardio:    "Gym cardio",
	WorkoutYoga:         "Yoga & stretching",
}

func (w WorkoutType) IsValid() bool {
	_, ok := workoutTypeLabels[w]
	return ok
}

func (w WorkoutType) Label() string { return workoutTypeLabels[w] }

func (w WorkoutType) IsHome() bool { return strings.HasPrefix(string(w), HomeWorkoutPrefix) }

func (w WorkoutType) IsGym() bool { return strings.HasPrefix(string(w), GymWorkoutPrefix) }

// Difficulty doubles as the profile experience level; both use the same three steps.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var difficultyLabels = map[Difficulty]string{
	DifficultyBeginner:     "Beginner",
	DifficultyIntermediate: "Intermediate",
	DifficultyAdvanced:     "Advanced",
}

func (d Difficulty) IsValid() bool {
	_, ok := difficultyLabels[d]
	return ok
}

func (d Difficulty) Label() string { return difficultyLabels[d] }

type Equipment string

const (
	EquipmentNone            Equipment = "none"
	EquipmentDumbbells       Equipment = "dumbbells"
	EquipmentBarbell         Equipment = "barbell"
	EquipmentResistanceBands Equipment = "resistance_bands"
	EquipmentYogaMat         Equipment = "yoga_mat"
	EquipmentMachine         Equipment = "machine"
)

var equipmentLabels = map[Equipment]string{
	EquipmentNone:            "No equipment",
	EquipmentDumbbells:       "Dumbbells",
	EquipmentBarbell:         "Barbell",
	EquipmentResistanceBands: "Resistance bands",
	EquipmentYogaMat:         "Yoga mat",
	EquipmentMachine:         "Machine",
}

func (e Equipment) IsValid() bool {
	_, ok := equipmentLabels[e]
	return ok
}

func (e Equipment) Label() string { return equipmentLabels[e] }

type FitnessGoal string

const (
	GoalWeightLoss     FitnessGoal = "weight_loss"
	GoalMuscleGain     FitnessGoal = "muscle_gain"
	GoalEndurance      FitnessGoal = "endurance"
	GoalGeneralFitness FitnessGoal = "general_fitness"
)

var fitnessGoalLabels = map[FitnessGoal]string{
	GoalWeightLoss:     "Weight loss",
	GoalMuscleGain:     "Muscle gain",
	GoalEndurance:      "Endurance",
	GoalGeneralFitness: "General fitness",
}

func (g FitnessGoal) IsValid() bool {
	_, ok := fitnessGoalLabels[g]
	return ok
}

func (g FitnessGoal) Label() string { return fitnessGoalLabels[g] }
