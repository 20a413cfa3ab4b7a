package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traincore/coaching-api/internal/core/ports"
)

// MealHandler handles meal plans and their nested meals and foods.
type MealHandler struct {
	service ports.MealService
}

func NewMealHandler(service ports.MealService) *MealHandler {
	return &MealHandler{service: service}
}

type foodRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Grams    float64 `json:"grams"    validate:"gte=0"`
	Calories float64 `json:"calories" validate:"gte=0"`
	ProteinG float64 `json:"protein_g" validate:"gte=0"`
	CarbsG   float64 `json:"carbs_g"  validate:"gte=0"`
	FatG     float64 `json:"fat_g"    validate:"gte=0"`
}

type mealRequest struct {
	Name      string        `json:"name"        validate:"required"`
	TimeOfDay string        `json:"time_of_day"`
	Foods     []foodRequest `json:"foods"       validate:"dive"`
}

type createMealPlanRequest struct {
	ClientID string        `json:"client_id" validate:"required"`
	Title    string        `json:"title"     validate:"required"`
	Notes    string        `json:"notes"`
	Meals    []mealRequest `json:"meals"     validate:"dive"`
}

type updateMealPlanRequest struct {
	Title *string `json:"title"`
	Notes *string `json:"notes"`
}

type updateMealRequest struct {
	Name      *string `json:"name"`
	TimeOfDay *string `json:"time_of_day"`
	// A non-null foods array replaces the stored foods wholesale.
	Foods []foodRequest `json:"foods" validate:"omitempty,dive"`
}

// CreatePlan handles POST /meals (admin only).
//
// @Summary      Create a meal plan for a client
// @Tags         meals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMealPlanRequest  true  "Plan details"
// @Success      201   {object}  domain.MealPlan
// @Router       /meals [post]
func (h *MealHandler) CreatePlan(c echo.Context) error {
	var req createMealPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	plan, err := h.service.CreatePlan(c.Request().Context(), ports.CreateMealPlanInput{
		ClientID: req.ClientID,
		Title:    req.Title,
		Notes:    req.Notes,
		Meals:    mapMealInputs(req.Meals),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, plan)
}

// GetPlan handles GET /meals/:id (admin or owning client).
func (h *MealHandler) GetPlan(c echo.Context) error {
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

// ListClientPlans handles GET /meals/client/:clientId (admin or that client).
func (h *MealHandler) ListClientPlans(c echo.Context) error {
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

// ListMeals handles GET /meals/plan/:planId (admin or owning client).
//
// @Summary      List the meals of a meal plan
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Param        planId  path      string  true  "Plan id"
// @Success      200     {array}   domain.Meal
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /meals/plan/{planId} [get]
func (h *MealHandler) ListMeals(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	meals, err := h.service.ListMeals(c.Request().Context(), caller, c.Param("planId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meals)
}

// UpdatePlan handles PATCH /meals/:id (admin only).
func (h *MealHandler) UpdatePlan(c echo.Context) error {
	var req updateMealPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	plan, err := h.service.UpdatePlan(c.Request().Context(), c.Param("id"), ports.UpdateMealPlanInput{
		Title: req.Title,
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /meals/:id (admin only).
func (h *MealHandler) DeletePlan(c echo.Context) error {
	if err := h.service.DeletePlan(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddMeal handles POST /meals/:id/meals (admin only).
func (h *MealHandler) AddMeal(c echo.Context) error {
	var req mealRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	meal, err := h.service.AddMeal(c.Request().Context(), c.Param("id"), mapMealInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, meal)
}

// UpdateMeal handles PATCH /meals/items/:mealId (admin only).
func (h *MealHandler) UpdateMeal(c echo.Context) error {
	var req updateMealRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateMealInput{
		Name:      req.Name,
		TimeOfDay: req.TimeOfDay,
	}
	if req.Foods != nil {
		in.Foods = mapFoodInputs(req.Foods)
	}

	meal, err := h.service.UpdateMeal(c.Request().Context(), c.Param("mealId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meal)
}

// DeleteMeal handles DELETE /meals/items/:mealId (admin only).
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	if err := h.service.DeleteMeal(c.Request().Context(), c.Param("mealId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func mapMealInputs(reqs []mealRequest) []ports.MealInput {
	inputs := make([]ports.MealInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, mapMealInput(r))
	}
	return inputs
}

func mapMealInput(r mealRequest) ports.MealInput {
	return ports.MealInput{
		Name:      r.Name,
		TimeOfDay: r.TimeOfDay,
		Foods:     mapFoodInputs(r.Foods),
	}
}

func mapFoodInputs(reqs []foodRequest) []ports.FoodInput {
	inputs := make([]ports.FoodInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, ports.FoodInput{
			Name:     r.Name,
			Grams:    r.Grams,
			Calories: r.Calories,
			ProteinG: r.ProteinG,
			CarbsG:   r.CarbsG,
			FatG:     r.FatG,
		})
	}
	return inputs
}
