package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-desk.com/task-desk/internal/data_models"
	middleware "task-desk.com/task-desk/internal/http/middlewares"
	"task-desk.com/task-desk/internal/http/validators"
	"task-desk.com/task-desk/internal/services"
)

type SolutionHandler struct {
	solutionService *services.SolutionService
}

func NewSolutionHandler(solutionService *services.SolutionService) *SolutionHandler {
	return &SolutionHandler{solutionService: solutionService}
}

func (h *SolutionHandler) SubmitSolution(c echo.Context) error {
	var req dto.SubmitSolutionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSubmitSolutionRequest(&req); err != nil {
		return err
	}

	actor := middleware.CurrentUserFrom(c)

	resp, err := h.solutionService.Submit(c.Request().Context(), actor, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, resp)
}
