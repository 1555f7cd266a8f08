package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitplanner/fitness-api/internal/core/ports"
)

// ExerciseHandler serves the read-only exercise catalog.
type ExerciseHandler struct {
	service ports.ExerciseService
}

func NewExerciseHandler(service ports.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// List handles GET /api/exercises.
//
// @Summary      List all exercises
// @Tags         exercises
// @Produce      json
// @Success      200  {array}  domain.Exercise
// @Router       /api/exercises [get]
func (h *ExerciseHandler) List(c echo.Context) error {
	exercises, err := h.service.ListExercises(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, exercises)
}
