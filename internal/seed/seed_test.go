package seed_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"sportapp/internal/models/db_models"
	"sportapp/internal/models/request_models"
	"sportapp/internal/models/response_models"
	"sportapp/internal/repositories"
	repomocks "sportapp/internal/repositories/mocks"
	"sportapp/internal/seed"
	servicemocks "sportapp/internal/services/mocks"
)

const sampleCatalog = `
[owner]
username = "coach"
email = "Coach@Example.com"
password = "secret-pass"

[[workout]]
name = "Morning flow"
type = "yoga"
difficulty = "beginner"
duration = 20
public = false

  [[workout.exercise]]
  name = "Sun salutation"
  sets = 3
  rest_time = 0
  equipment = "yoga_mat"

[[workout]]
name = "Legs"
type = "gym_strength"
difficulty = "advanced"
duration = 60
`

func TestParse(t *testing.T) {
	c, err := seed.Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, "coach", c.Owner.Username)
	require.Len(t, c.Workouts, 2)

	req := c.Workouts[0].Request()
	assert.Equal(t, "yoga", req.WorkoutType)
	require.NotNil(t, req.IsPublic)
	assert.False(t, *req.IsPublic)
	require.Len(t, req.Exercises, 1)
	require.NotNil(t, req.Exercises[0].RestTime)
	assert.Equal(t, 0, *req.Exercises[0].RestTime)
	assert.Equal(t, "yoga_mat", req.Exercises[0].Equipment)

	assert.Nil(t, c.Workouts[1].Request().IsPublic)
	assert.Empty(t, c.Workouts[1].Request().Exercises)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "syntax", input: "[owner\n", want: "decode seed catalog"},
		{name: "unknown key", input: sampleCatalog + "\n[[workout]]\nname = \"x\"\nlevel = 3\n", want: "workout.level"},
		{name: "missing owner", input: "[[workout]]\nname = \"x\"\n", want: "owner"},
		{name: "unnamed workout", input: "[owner]\nusername = \"a\"\nemail = \"a@b.c\"\npassword = \"secret\"\n[[workout]]\ntype = \"yoga\"\n", want: "no name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile_ShippedCatalog(t *testing.T) {
	c, err := seed.LoadFile("../../seed/catalog.toml")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Workouts)

	types := map[db_models.WorkoutType]bool{}
	for _, w := range c.Workouts {
		wt := db_models.WorkoutType(w.Type)
		assert.True(t, wt.IsValid(), w.Name)
		assert.True(t, db_models.Difficulty(w.Difficulty).IsValid(), w.Name)
		for _, e := range w.Exercises {
			if e.Equipment != "" {
				assert.True(t, db_models.Equipment(e.Equipment).IsValid(), e.Name)
			}
		}
		types[wt] = true
	}
	assert.Len(t, types, 5)
}

func TestSeeder_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := servicemocks.NewMockAccountServiceInterface(ctrl)
	plans := servicemocks.NewMockPlanServiceInterface(ctrl)
	accountRepo := repomocks.NewMockAccountRepository(ctrl)
	planRepo := repomocks.NewMockIPlanRepository(ctrl)

	c, err := seed.Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	accountRepo.EXPECT().FindByEmail(gomock.Any(), "coach@example.com").Return(nil, nil)
	accounts.EXPECT().Register(gomock.Any(), request_models.SignUpRequest{
		Username: "coach", Email: "Coach@Example.com", Password: "secret-pass",
	}).Return(&response_models.AccountResponse{ID: 3}, nil)
	planRepo.EXPECT().ListPublic(gomock.Any(), repositories.PlanFilter{}).Return([]db_models.WorkoutPlan{
		{ID: 1, UserID: 3, Name: "Legs"},
		{ID: 2, UserID: 4, Name: "Morning flow"},
	}, nil)
	plans.EXPECT().CreatePlan(gomock.Any(), uint(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint, req request_models.CreatePlanRequest) (*response_models.WorkoutPlanDetailResponse, error) {
			assert.Equal(t, "Morning flow", req.Name)
			return &response_models.WorkoutPlanDetailResponse{
				WorkoutPlanResponse: response_models.WorkoutPlanResponse{ID: 9},
			}, nil
		})

	res, err := seed.NewSeeder(accounts, accountRepo, plans, planRepo, zap.NewNop()).Apply(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{OwnerID: 3, Created: 1, Skipped: 1}, res)
}

func TestSeeder_Apply_ExistingOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := servicemocks.NewMockAccountServiceInterface(ctrl)
	plans := servicemocks.NewMockPlanServiceInterface(ctrl)
	accountRepo := repomocks.NewMockAccountRepository(ctrl)
	planRepo := repomocks.NewMockIPlanRepository(ctrl)

	c, err := seed.Parse(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	accountRepo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
		Return(&db_models.User{BaseModel: db_models.BaseModel{ID: 3}}, nil)
	planRepo.EXPECT().ListPublic(gomock.Any(), gomock.Any()).Return(nil, nil)
	plans.EXPECT().CreatePlan(gomock.Any(), uint(3), gomock.Any()).
		Return(&response_models.WorkoutPlanDetailResponse{}, nil).Times(2)

	res, err := seed.NewSeeder(accounts, accountRepo, plans, planRepo, zap.NewNop()).Apply(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
}
