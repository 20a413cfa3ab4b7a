package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traincore/coaching-api/internal/core/ports"
)

// WorkoutHandler handles workout plans and their nested exercises and sets.
type WorkoutHandler struct {
	service ports.WorkoutService
}

func NewWorkoutHandler(service ports.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

// CreatePlan handles POST /workouts (admin only).
//
// @Summary      Create a workout plan for a client
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkoutPlanRequest  true  "Plan details"
// @Success      201   {object}  domain.WorkoutPlan
// @Router       /workouts [post]
func (h *WorkoutHandler) CreatePlan(c echo.Context) error {
	var req createWorkoutPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.service.CreatePlan(c.Request().Context(), ports.CreatePlanInput{
		ClientID:  req.ClientID,
		Title:     req.Title,
		Notes:     req.Notes,
		Exercises: mapExerciseInputs(req.Exercises),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// GetPlan handles GET /workouts/:id (admin or owning client).
//
// @Summary      Get a workout plan
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Plan id"
// @Success      200  {object}  domain.WorkoutPlan
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workouts/{id} [get]
func (h *WorkoutHandler) GetPlan(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	plan, err := h.service.GetPlan(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// ListClientPlans handles GET /workouts/client/:clientId (admin or that client).
//
// @Summary      List a client's workout plans
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {array}   domain.WorkoutPlan
// @Failure      403       {object}  map[string]string
// @Router       /workouts/client/{clientId} [get]
func (h *WorkoutHandler) ListClientPlans(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	plans, err := h.service.ListClientPlans(c.Request().Context(), caller, c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// UpdatePlan handles PATCH /workouts/:id (admin only).
func (h *WorkoutHandler) UpdatePlan(c echo.Context) error {
	var req updateWorkoutPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	plan, err := h.service.UpdatePlan(c.Request().Context(), c.Param("id"), ports.UpdatePlanInput{
		Title: req.Title,
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /workouts/:id (admin only).
func (h *WorkoutHandler) DeletePlan(c echo.Context) error {
	if err := h.service.DeletePlan(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListExercises handles GET /exercises/plan/:planId (admin or owning client).
//
// @Summary      List the exercises of a workout plan
// @Tags         exercises
// @Produce      json
// @Security     BearerAuth
// @Param        planId  path      string  true  "Plan id"
// @Success      200     {array}   domain.Exercise
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /exercises/plan/{planId} [get]
func (h *WorkoutHandler) ListExercises(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	exercises, err := h.service.ListExercises(c.Request().Context(), caller, c.Param("planId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exercises)
}

// AddExercise handles POST /workouts/:id/exercises (admin only).
func (h *WorkoutHandler) AddExercise(c echo.Context) error {
	var req exerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exercise, err := h.service.AddExercise(c.Request().Context(), c.Param("id"), mapExerciseInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, exercise)
}

// UpdateExercise handles PATCH /exercises/:exerciseId (admin only).
func (h *WorkoutHandler) UpdateExercise(c echo.Context) error {
	var req updateExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	exercise, err := h.service.UpdateExercise(c.Request().Context(), c.Param("exerciseId"), ports.UpdateExerciseInput{
		Name:        req.Name,
		MuscleGroup: req.MuscleGroup,
		Day:         req.Day,
		Position:    req.Position,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exercise)
}

// DeleteExercise handles DELETE /exercises/:exerciseId (admin only).
func (h *WorkoutHandler) DeleteExercise(c echo.Context) error {
	if err := h.service.DeleteExercise(c.Request().Context(), c.Param("exerciseId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddSet handles POST /exercises/:exerciseId/sets (admin only).
func (h *WorkoutHandler) AddSet(c echo.Context) error {
	var req setRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	set, err := h.service.AddSet(c.Request().Context(), c.Param("exerciseId"), ports.SetInput{
		TargetReps: req.TargetReps,
		ActualReps: req.ActualReps,
		WeightKg:   req.WeightKg,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, set)
}

// UpdateSet handles PATCH /exercises/sets/:setId (admin or owning client).
// This is how clients log their performed reps and weight; the volume is
// recomputed from the resulting values.
//
// @Summary      Update an exercise set
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        setId  path      string            true  "Set id"
// @Param        body   body      updateSetRequest  true  "Fields to change"
// @Success      200    {object}  domain.ExerciseSet
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /exercises/sets/{setId} [patch]
func (h *WorkoutHandler) UpdateSet(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateSetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	set, err := h.service.UpdateSet(c.Request().Context(), caller, c.Param("setId"), ports.UpdateSetInput{
		TargetReps: req.TargetReps,
		ActualReps: req.ActualReps,
		WeightKg:   req.WeightKg,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, set)
}

// DeleteSet handles DELETE /exercises/sets/:setId (admin only).
func (h *WorkoutHandler) DeleteSet(c echo.Context) error {
	if err := h.service.DeleteSet(c.Request().Context(), c.Param("setId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func mapExerciseInputs(reqs []exerciseRequest) []ports.ExerciseInput {
	inputs := make([]ports.ExerciseInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, mapExerciseInput(r))
	}
	return inputs
}

func mapExerciseInput(r exerciseRequest) ports.ExerciseInput {
	sets := make([]ports.SetInput, 0, len(r.Sets))
	for _, s := range r.Sets {
		sets = append(sets, ports.SetInput{
			TargetReps: s.TargetReps,
			ActualReps: s.ActualReps,
			WeightKg:   s.WeightKg,
		})
	}
	return ports.ExerciseInput{
		Name:        r.Name,
		MuscleGroup: r.MuscleGroup,
		Day:         r.Day,
		Position:    r.Position,
		Sets:        sets,
	}
}
