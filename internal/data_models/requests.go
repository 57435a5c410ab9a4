package dto

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type CreateTaskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Deadline    time.Time `json:"deadline"`
	AssigneeIDs []string  `json:"assignee_ids"`
}

type ChangeTaskPriorityRequest struct {
	Priority string `json:"priority"`
}

type SubmitSolutionRequest struct {
	TaskID            string `json:"task_id"`
	FileID            string `json:"file_id"`
	AdditionalDetails string `json:"additional_details,omitempty"`
}

type ReviewTaskRequest struct {
	SolutionID string `json:"solution_id"`
	Status     string `json:"status"`
	Feedback   string `json:"feedback,omitempty"`
}

type RegisterFileRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
