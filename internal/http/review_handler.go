package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-desk.com/task-desk/internal/data_models"
	middleware "task-desk.com/task-desk/internal/http/middlewares"
	"task-desk.com/task-desk/internal/http/validators"
	"task-desk.com/task-desk/internal/services"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) ReviewTask(c echo.Context) error {
	var req dto.ReviewTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateReviewTaskRequest(&req); err != nil {
		return err
	}

	actor := middleware.CurrentUserFrom(c)

	resp, err := h.reviewService.Review(c.Request().Context(), actor, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, resp)
}
