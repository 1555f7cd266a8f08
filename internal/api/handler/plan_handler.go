package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fitplanner/fitness-api/internal/api/metrics"
	"github.com/fitplanner/fitness-api/internal/core/domain"
	"github.com/fitplanner/fitness-api/internal/core/ports"
)

// PlanHandler handles HTTP requests for plan operations.
type PlanHandler struct {
	service ports.PlanService
}

func NewPlanHandler(service ports.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// Create handles POST /api/plans.
//
// @Summary      Create a workout plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        body  body      createPlanRequest  true  "Plan details"
// @Success      201   {object}  createPlanResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/plans [post]
func (h *PlanHandler) Create(c echo.Context) error {
	var req createPlanRequest
	if err := c.Bind(&req); err != nil {
		req = createPlanRequest{}
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid plan data"})
	}

	items := make([]ports.PlanItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.PlanItemInput{
			Name:              it.Name,
			Quantity:          it.Quantity,
			Time:              it.Time,
			CaloriesPerMinute: it.CaloriesPerMinute,
		})
	}

	result, err := h.service.CreatePlan(c.Request().Context(), ports.CreatePlanInput{
		UserID: req.UserID,
		Name:   req.Name,
		Items:  items,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPlanData) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid plan data"})
		}
		return err
	}

	metrics.PlansCreatedTotal.Inc()
	metrics.PlanItemCount.Observe(float64(len(req.Items)))

	return c.JSON(http.StatusCreated, createPlanResponse{
		ID:            result.ID,
		TotalTime:     result.TotalTime,
		TotalCalories: result.TotalCalories,
	})
}

// List handles GET /api/plans?user_id=.
//
// @Summary      List a user's plans
// @Tags         plans
// @Produce      json
// @Param        user_id  query     int  true  "Owning user id"
// @Success      200      {array}   planResponse
// @Failure      400      {object}  errorResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c echo.Context) error {
	userID, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		// A bearer token may stand in for the query parameter.
		if authID := ctxUserID(c); authID > 0 {
			userID = authID
		} else {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
		}
	}

	plans, err := h.service.ListPlans(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserIDRequired) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
		}
		return err
	}

	out := make([]planResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, planResponse{
			ID:            p.ID,
			Name:          p.Name,
			Items:         p.Items,
			TotalTime:     p.TotalTime,
			TotalCalories: p.TotalCalories,
			CreatedAt:     p.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /api/plans/:id. The response is the same whether or
// not a plan with that id existed.
//
// @Summary      Delete a plan by id
// @Tags         plans
// @Produce      json
// @Param        id   path      int  true  "Plan id (decimal digits)"
// @Success      200  {object}  deletePlanResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/plans/{id} [delete]
func (h *PlanHandler) Delete(c echo.Context) error {
	// Only digits-only ids are routable; any other suffix is an unmatched
	// path, not a bad request.
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		return echo.ErrNotFound
	}

	if err := h.service.DeletePlan(c.Request().Context(), int64(id)); err != nil {
		return err
	}

	metrics.PlansDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deletePlanResponse{Deleted: true})
}
