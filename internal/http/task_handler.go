package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-desk.com/task-desk/internal/data_models"
	"task-desk.com/task-desk/internal/domain"
	middleware "task-desk.com/task-desk/internal/http/middlewares"
	"task-desk.com/task-desk/internal/http/validators"
	"task-desk.com/task-desk/internal/services"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	actor := middleware.CurrentUserFrom(c)

	task, err := h.taskService.Create(c.Request().Context(), actor, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) ChangePriority(c echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req dto.ChangeTaskPriorityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Priority == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "priority is required")
	}

	actor := middleware.CurrentUserFrom(c)

	resp, err := h.taskService.ChangePriority(c.Request().Context(), actor, taskID, req.Priority)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) GetOwnedTasks(c echo.Context) error {
	actor := middleware.CurrentUserFrom(c)

	query, err := pageQueryFrom(c)
	if err != nil {
		return err
	}

	ownerID := actor.UserID
	if v := c.QueryParam("user_id"); v != "" {
		ownerID = v
	}

	resp, err := h.taskService.GetOwned(c.Request().Context(), actor, ownerID, query)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) GetAssignedTasks(c echo.Context) error {
	actor := middleware.CurrentUserFrom(c)

	query, err := pageQueryFrom(c)
	if err != nil {
		return err
	}

	assigneeID := actor.UserID
	if v := c.QueryParam("user_id"); v != "" {
		assigneeID = v
	}

	resp, err := h.taskService.GetAssigned(c.Request().Context(), actor, assigneeID, query)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func pageQueryFrom(c echo.Context) (domain.PageQuery, error) {
	page := defaultPage
	size := defaultPageSize

	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domain.PageQuery{}, echo.NewHTTPError(http.StatusBadRequest, "page must be an integer")
		}
		page = parsed
	}
	if raw := c.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domain.PageQuery{}, echo.NewHTTPError(http.StatusBadRequest, "size must be an integer")
		}
		size = parsed
	}

	query, err := domain.NewPageQuery(page, size)
	if err != nil {
		return domain.PageQuery{}, httpError(err)
	}

	return query, nil
}
