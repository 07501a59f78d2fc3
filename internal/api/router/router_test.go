package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"sportapp/internal/api/controllers"
	"sportapp/internal/api/router"
	"sportapp/internal/config"
	"sportapp/internal/metrics"
	"sportapp/internal/models/request_models"
	"sportapp/internal/models/response_models"
	"sportapp/internal/services/mocks"
	"sportapp/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

type testServer struct {
	engine    *gin.Engine
	tokens    *utils.TokenIssuer
	accounts  *mocks.MockAccountServiceInterface
	plans     *mocks.MockPlanServiceInterface
	sessions  *mocks.MockSessionServiceInterface
	dashboard *mocks.MockDashboardService
	pingErr   error
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	log := zap.NewNop()
	metricsManager, registry := metrics.NewTestManagerAndRegistry()

	s := &testServer{
		tokens:    utils.NewTokenIssuer("router-secret", time.Hour),
		accounts:  mocks.NewMockAccountServiceInterface(ctrl),
		plans:     mocks.NewMockPlanServiceInterface(ctrl),
		sessions:  mocks.NewMockSessionServiceInterface(ctrl),
		dashboard: mocks.NewMockDashboardService(ctrl),
	}
	ping := func(context.Context) error { return s.pingErr }

	s.engine = router.New(router.Params{
		Config:    &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}},
		Log:       log,
		Metrics:   metricsManager,
		Tokens:    s.tokens,
		Accounts:  controllers.NewAccountController(s.accounts),
		Workouts:  controllers.NewWorkoutController(s.plans),
		Sessions:  controllers.NewSessionController(s.sessions, log),
		Dashboard: controllers.NewDashboardController(s.dashboard),
		Health:    controllers.NewHealthController(ping, registry, log),
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any, userID uint) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		token, _, err := s.tokens.CreateToken(userID, "user")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.engine.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	routes := []struct{ method, path string }{
		{http.MethodDelete, "/accounts/me"},
		{http.MethodGet, "/profile"},
		{http.MethodPut, "/profile"},
		{http.MethodPost, "/workouts"},
		{http.MethodGet, "/workouts/1"},
		{http.MethodDelete, "/workouts/1"},
		{http.MethodPost, "/workouts/1/image-upload-url"},
		{http.MethodPost, "/workouts/1/start"},
		{http.MethodGet, "/workouts/sessions/1"},
		{http.MethodPost, "/workouts/sessions/1/complete"},
		{http.MethodGet, "/progress"},
		{http.MethodGet, "/progress/sessions"},
		{http.MethodPost, "/api/save-exercise"},
	}
	for _, r := range routes {
		rr := s.do(t, r.method, r.path, nil, 0)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", r.method, r.path)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	s.accounts.EXPECT().Register(gomock.Any(), request_models.SignUpRequest{
		Username: "jane", Email: "jane@example.com", Password: "s3cret-pass",
	}).Return(&response_models.AccountResponse{ID: 1, Username: "jane", Email: "jane@example.com"}, nil)

	rr := s.do(t, http.MethodPost, "/accounts/register", map[string]string{
		"username": "jane", "email": "jane@example.com", "password": "s3cret-pass",
	}, 0)
	require.Equal(t, http.StatusCreated, rr.Code)
	env := decode(t, rr)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.TraceID)

	rr = s.do(t, http.MethodPost, "/accounts/register", map[string]string{"email": "not-an-email"}, 0)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	s.accounts.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, utils.ErrInvalidCredentials)
	rr = s.do(t, http.MethodPost, "/accounts/login", map[string]string{
		"email": "jane@example.com", "password": "wrong-pass",
	}, 0)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", decode(t, rr).Message)
}

func TestCatalogIsPublic(t *testing.T) {
	s := newTestServer(t)

	s.plans.EXPECT().ListCatalog(gomock.Any(), request_models.CatalogFilter{WorkoutType: "yoga", Equipment: "yoga_mat"}).
		Return(&response_models.CatalogResponse{
			Workouts:       []response_models.WorkoutPlanResponse{},
			CurrentFilters: response_models.CatalogFilters{Type: "yoga", Equipment: "yoga_mat"},
		}, nil)

	rr := s.do(t, http.MethodGet, "/workouts?type=yoga&equipment=yoga_mat", nil, 0)
	require.Equal(t, http.StatusOK, rr.Code)

	var catalog response_models.CatalogResponse
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &catalog))
	assert.Empty(t, catalog.Workouts)
	assert.Equal(t, "yoga", catalog.CurrentFilters.Type)
}

func TestWorkoutDetailErrors(t *testing.T) {
	s := newTestServer(t)

	s.plans.EXPECT().GetPlanDetail(gomock.Any(), uint(7), uint(99)).Return(nil, utils.ErrPlanNotFound)
	rr := s.do(t, http.MethodGet, "/workouts/99", nil, 7)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do(t, http.MethodGet, "/workouts/abc", nil, 7)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	s.plans.EXPECT().DeletePlan(gomock.Any(), uint(7), uint(3)).Return(utils.ErrForbidden)
	rr = s.do(t, http.MethodDelete, "/workouts/3", nil, 7)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCreateWorkout(t *testing.T) {
	s := newTestServer(t)

	s.plans.EXPECT().CreatePlan(gomock.Any(), uint(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint, req request_models.CreatePlanRequest) (*response_models.WorkoutPlanDetailResponse, error) {
			require.Len(t, req.Exercises, 1)
			assert.Equal(t, "Squat", req.Exercises[0].Name)
			return &response_models.WorkoutPlanDetailResponse{
				WorkoutPlanResponse: response_models.WorkoutPlanResponse{ID: 12, Name: req.Name},
			}, nil
		})

	rr := s.do(t, http.MethodPost, "/workouts", map[string]any{
		"name":         "Legs",
		"workout_type": "gym_strength",
		"difficulty":   "advanced",
		"duration":     50,
		"exercises":    []map[string]any{{"name": "Squat", "sets": 5}},
	}, 7)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/workouts/12", rr.Header().Get("Location"))

	s.plans.EXPECT().CreatePlan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, utils.ErrDuplicateExerciseOrder)
	rr = s.do(t, http.MethodPost, "/workouts", map[string]any{
		"name": "Legs", "workout_type": "gym_strength", "difficulty": "advanced",
	}, 7)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = s.do(t, http.MethodPost, "/workouts", map[string]any{
		"name": "Legs", "workout_type": "gym_strength", "difficulty": "advanced",
		"exercises": []map[string]any{{"sets": 5}},
	}, 7)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStartSessionRedirects(t *testing.T) {
	s := newTestServer(t)
	s.sessions.EXPECT().StartSession(gomock.Any(), uint(7), uint(3)).Return(uint(41), nil)

	rr := s.do(t, http.MethodPost, "/workouts/3/start", nil, 7)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/workouts/sessions/41", rr.Header().Get("Location"))

	var started response_models.StartSessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &started))
	assert.Equal(t, uint(41), started.SessionID)
}

func TestSessionRoutes(t *testing.T) {
	s := newTestServer(t)

	s.sessions.EXPECT().GetSession(gomock.Any(), uint(8), uint(41)).Return(nil, utils.ErrSessionAccessDenied)
	rr := s.do(t, http.MethodGet, "/workouts/sessions/41", nil, 8)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Workout session not found", decode(t, rr).Message)

	rating := 5
	s.sessions.EXPECT().CompleteSession(gomock.Any(), uint(7), uint(41), request_models.CompleteSessionRequest{Rating: &rating}).
		Return(&response_models.WorkoutSessionResponse{ID: 41, State: "completed"}, nil)
	rr = s.do(t, http.MethodPost, "/workouts/sessions/41/complete", map[string]int{"rating": 5}, 7)
	assert.Equal(t, http.StatusOK, rr.Code)

	s.sessions.EXPECT().CompleteSession(gomock.Any(), uint(7), uint(41), request_models.CompleteSessionRequest{}).
		Return(nil, utils.ErrSessionCompleted)
	rr = s.do(t, http.MethodPost, "/workouts/sessions/41/complete", nil, 7)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCompleteSession_OptionalBody(t *testing.T) {
	s := newTestServer(t)
	token, _, err := s.tokens.CreateToken(7, "user")
	require.NoError(t, err)

	send := func(body io.Reader) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/workouts/sessions/41/complete", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		s.engine.ServeHTTP(rr, req)
		return rr
	}

	// a chunked request carries no Content-Length
	s.sessions.EXPECT().CompleteSession(gomock.Any(), uint(7), uint(41), request_models.CompleteSessionRequest{}).
		Return(&response_models.WorkoutSessionResponse{ID: 41, State: "completed"}, nil)
	rr := send(io.MultiReader())
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = send(strings.NewReader(`{"rating":`))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request format", decode(t, rr).Message)
}

func TestSaveExercise(t *testing.T) {
	payload := map[string]any{
		"session_id":     41,
		"exercise_id":    11,
		"completed_sets": 3,
		"weight_used":    20.5,
		"completed_reps": map[string]int{"1": 10, "2": 10, "3": 8},
	}

	testCases := []struct {
		name           string
		body           any
		serviceErr     error
		panics         bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			body:           payload,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"success","log_id":5}`,
		},
		{
			name:           "MissingIDs",
			body:           map[string]any{"completed_sets": 1},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"error","message":"Invalid request format"}`,
		},
		{
			name:           "ForeignSession",
			body:           payload,
			serviceErr:     utils.ErrSessionAccessDenied,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"error","message":"Workout session not found"}`,
		},
		{
			name:           "CompletedSession",
			body:           payload,
			serviceErr:     utils.ErrSessionCompleted,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"error","message":"Workout session already completed"}`,
		},
		{
			name:           "DatabaseFailure",
			body:           payload,
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"error","message":"Internal server error"}`,
		},
		{
			name:           "Panic",
			body:           payload,
			panics:         true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"error","message":"Internal server error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			if tc.name != "MissingIDs" {
				call := s.sessions.EXPECT().SaveExerciseProgress(gomock.Any(), uint(7), gomock.Any())
				switch {
				case tc.panics:
					call.DoAndReturn(func(context.Context, uint, request_models.SaveExerciseProgressRequest) (uint, error) {
						panic("nil map write")
					})
				case tc.serviceErr != nil:
					call.Return(uint(0), tc.serviceErr)
				default:
					call.DoAndReturn(func(_ context.Context, _ uint, req request_models.SaveExerciseProgressRequest) (uint, error) {
						assert.Equal(t, uint(41), req.SessionID)
						assert.Equal(t, map[string]int{"1": 10, "2": 10, "3": 8}, req.CompletedReps)
						assert.Nil(t, req.Notes)
						return 5, nil
					})
				}
			}

			rr := s.do(t, http.MethodPost, "/api/save-exercise", tc.body, 7)
			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestProgressRoutes(t *testing.T) {
	s := newTestServer(t)

	s.dashboard.EXPECT().BuildDashboard(gomock.Any(), uint(7)).
		Return(&response_models.DashboardResponse{Timezone: "UTC"}, nil)
	rr := s.do(t, http.MethodGet, "/progress", nil, 7)
	assert.Equal(t, http.StatusOK, rr.Code)

	s.dashboard.EXPECT().RecentSessions(gomock.Any(), uint(7), 0).Return([]response_models.WorkoutSessionResponse{}, nil)
	rr = s.do(t, http.MethodGet, "/progress/sessions", nil, 7)
	assert.Equal(t, http.StatusOK, rr.Code)

	s.dashboard.EXPECT().RecentSessions(gomock.Any(), uint(7), 25).Return([]response_models.WorkoutSessionResponse{}, nil)
	rr = s.do(t, http.MethodGet, "/progress/sessions?limit=25", nil, 7)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodGet, "/progress/sessions?limit=zero", nil, 7)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/healthz", nil, 0)
	assert.Equal(t, http.StatusOK, rr.Code)

	s.pingErr = errors.New("connection refused")
	rr = s.do(t, http.MethodGet, "/healthz", nil, 0)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = s.do(t, http.MethodGet, "/metrics", nil, 0)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `sportapp_api_requests_total{method="GET",route="/healthz",status="503"} 1`))
}
