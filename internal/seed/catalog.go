package seed

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"sportapp/internal/models/request_models"
)

// Catalog is the content of a seed file: the account owning the seeded plans
// and the plans themselves.
type Catalog struct {
	Owner    Owner     `toml:"owner"`
	Workouts []Workout `toml:"workout"`
}

type Owner struct {
	Username string `toml:"username"`
	Email    string `toml:"email"`
	Password string `toml:"password"`
}

type Workout struct {
	Name           string     `toml:"name"`
	Type           string     `toml:"type"`
	Difficulty     string     `toml:"difficulty"`
	Description    string     `toml:"description"`
	Duration       int        `toml:"duration"`
	CaloriesBurned int        `toml:"calories_burned"`
	Public         *bool      `toml:"public"`
	Exercises      []Exercise `toml:"exercise"`
}

type Exercise struct {
	Name             string `toml:"name"`
	Description      string `toml:"description"`
	Sets             int    `toml:"sets"`
	Reps             string `toml:"reps"`
	RestTime         *int   `toml:"rest_time"`
	Equipment        string `toml:"equipment"`
	DemonstrationURL string `toml:"demonstration_url"`
	Order            int    `toml:"order"`
	TargetMuscles    string `toml:"target_muscles"`
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a catalog and rejects unknown keys, which are almost always typos.
func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in seed catalog: %s", strings.Join(keys, ", "))
	}
	if c.Owner.Email == "" || c.Owner.Username == "" || c.Owner.Password == "" {
		return nil, fmt.Errorf("seed catalog: owner username, email and password are required")
	}
	for i, w := range c.Workouts {
		if w.Name == "" {
			return nil, fmt.Errorf("seed catalog: workout %d has no name", i+1)
		}
	}
	return &c, nil
}

func (w Workout) Request() request_models.CreatePlanRequest {
	req := request_models.CreatePlanRequest{
		Name:           w.Name,
		WorkoutType:    w.Type,
		Difficulty:     w.Difficulty,
		Description:    w.Description,
		Duration:       w.Duration,
		CaloriesBurned: w.CaloriesBurned,
		IsPublic:       w.Public,
		Exercises:      make([]request_models.CreateExerciseRequest, 0, len(w.Exercises)),
	}
	for _, e := range w.Exercises {
		req.Exercises = append(req.Exercises, request_models.CreateExerciseRequest{
			Name:             e.Name,
			Description:      e.Description,
			Sets:             e.Sets,
			Reps:             e.Reps,
			RestTime:         e.RestTime,
			Equipment:        e.Equipment,
			DemonstrationURL: e.DemonstrationURL,
			Order:            e.Order,
			TargetMuscles:    e.TargetMuscles,
		})
	}
	return req
}
