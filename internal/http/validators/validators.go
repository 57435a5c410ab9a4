package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-desk.com/task-desk/internal/data_models"
)

const (
	minAdditionalDetailsLen = 10
	maxAdditionalDetailsLen = 400
)

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if r.Priority == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "priority is required")
	}
	if r.Deadline.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "deadline is required")
	}
	if len(r.AssigneeIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "assignee_ids is required")
	}
	seen := make(map[string]struct{}, len(r.AssigneeIDs))
	for _, id := range r.AssigneeIDs {
		if _, dup := seen[id]; dup {
			return echo.NewHTTPError(http.StatusBadRequest, "assignee_ids must not contain duplicates")
		}
		seen[id] = struct{}{}
	}
	return nil
}

func ValidateSubmitSolutionRequest(r *dto.SubmitSolutionRequest) error {
	if r.TaskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}
	if r.FileID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "file_id is required")
	}
	if r.AdditionalDetails != "" {
		if l := len(r.AdditionalDetails); l < minAdditionalDetailsLen || l > maxAdditionalDetailsLen {
			return echo.NewHTTPError(http.StatusBadRequest, "additional_details must be between 10 and 400 characters")
		}
	}
	return nil
}

func ValidateReviewTaskRequest(r *dto.ReviewTaskRequest) error {
	if r.SolutionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "solution_id is required")
	}
	if r.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}
	return nil
}

func ValidateRegisterFileRequest(r *dto.RegisterFileRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if r.URL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url is required")
	}
	return nil
}
