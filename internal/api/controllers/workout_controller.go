package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportapp/internal/models/request_models"
	"sportapp/internal/services"
	"sportapp/pkg/middleware"
	"sportapp/pkg/utils"
)

type WorkoutController struct {
	planService services.PlanServiceInterface
}

func NewWorkoutController(planService services.PlanServiceInterface) *WorkoutController {
	return &WorkoutController{
		planService: planService,
	}
}

// ListWorkouts godoc
// @Summary List the public workout catalog
// @Description Filters combine; an empty filter is ignored. Stats count the filtered set.
// @Tags Workouts
// @Produce json
// @Param type       query string false "Workout type (home_strength, home_cardio, gym_strength, gym_cardio, yoga)"
// @Param difficulty query string false "beginner | intermediate | advanced"
// @Param equipment  query string false "Plans with at least one exercise using this equipment"
// @Success 200 {object} utils.APIResponse{data=response_models.CatalogResponse}
// @Router /workouts [get]
func (w *WorkoutController) ListWorkouts(c *gin.Context) {
	var filter request_models.CatalogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	catalog, err := w.planService.ListCatalog(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, catalog, "Workouts fetched successfully")
}

// CreateWorkout godoc
// @Summary Create a workout plan
// @Tags Workouts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlanRequest true "Plan with its exercises"
// @Success 201 {object} utils.APIResponse{data=response_models.WorkoutPlanDetailResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts [post]
func (w *WorkoutController) CreateWorkout(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := w.planService.CreatePlan(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Location", "/workouts/"+utils.FormatID(plan.ID))
	utils.RespondWithStatus(c, http.StatusCreated, plan, "Workout created successfully")
}

// GetWorkout godoc
// @Summary Get a workout plan
// @Description Plan with its ordered exercises and how many sessions the caller ran on it
// @Tags Workouts
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse{data=response_models.WorkoutPlanDetailResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/{id} [get]
func (w *WorkoutController) GetWorkout(c *gin.Context) {
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	plan, err := w.planService.GetPlanDetail(c.Request.Context(), middleware.UserID(c), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Workout fetched successfully")
}

// DeleteWorkout godoc
// @Summary Delete an owned workout plan
// @Tags Workouts
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/{id} [delete]
func (w *WorkoutController) DeleteWorkout(c *gin.Context) {
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := w.planService.DeletePlan(c.Request.Context(), middleware.UserID(c), planID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Workout deleted successfully")
}

// RequestImageUpload godoc
// @Summary Get a presigned URL for the plan image
// @Description The client PUTs the image to upload_url with the same Content-Type
// @Tags Workouts
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param request body request_models.ImageUploadRequest true "Image content type"
// @Success 200 {object} utils.APIResponse{data=response_models.ImageUploadResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workouts/{id}/image-upload-url [post]
func (w *WorkoutController) RequestImageUpload(c *gin.Context) {
	planID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req request_models.ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	upload, err := w.planService.RequestImageUpload(c.Request.Context(), middleware.UserID(c), planID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, upload, "Upload URL generated")
}
