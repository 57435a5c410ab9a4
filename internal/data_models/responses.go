package dto

import (
	"time"

	"task-desk.com/task-desk/internal/domain"
)

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type TaskWithAssigneesResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Deadline    time.Time `json:"deadline"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	AssigneeIDs []string  `json:"assignee_ids"`
	SolutionIDs []string  `json:"solution_ids"`
	ChangedAt   time.Time `json:"changed_at"`
}

func TaskWithAssigneesFromDomain(task *domain.Task) TaskWithAssigneesResponse {
	assigneeIDs := make([]string, 0, len(task.Assignees))
	for _, a := range task.Assignees {
		assigneeIDs = append(assigneeIDs, a.ID)
	}

	solutionIDs := make([]string, 0, len(task.Solutions))
	for _, s := range task.Solutions {
		solutionIDs = append(solutionIDs, s.ID)
	}

	return TaskWithAssigneesResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Deadline:    task.Deadline.Time(),
		Status:      string(task.Status()),
		OwnerID:     task.Owner.ID,
		AssigneeIDs: assigneeIDs,
		SolutionIDs: solutionIDs,
		ChangedAt:   task.ChangedAt,
	}
}

type TaskPriorityChangedResponse struct {
	TaskID    string    `json:"task_id"`
	Priority  string    `json:"priority"`
	ChangedAt time.Time `json:"changed_at"`
}

func TaskPriorityChangedFromDomain(task *domain.Task) TaskPriorityChangedResponse {
	return TaskPriorityChangedResponse{
		TaskID:    task.ID,
		Priority:  string(task.Priority),
		ChangedAt: task.ChangedAt,
	}
}

type SolutionCreatedResponse struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	FileID     string    `json:"file_id"`
	Status     string    `json:"status"`
	TaskStatus string    `json:"task_status"`
	CreatedAt  time.Time `json:"created_at"`
}

func SolutionCreatedFromDomain(solution *domain.Solution) SolutionCreatedResponse {
	return SolutionCreatedResponse{
		ID:         solution.ID,
		TaskID:     solution.Task.ID,
		FileID:     solution.File.ID,
		Status:     string(solution.Status),
		TaskStatus: string(solution.Task.Status()),
		CreatedAt:  solution.CreatedAt,
	}
}

type ReviewCreatedResponse struct {
	ID         string    `json:"id"`
	SolutionID string    `json:"solution_id"`
	ReviewerID string    `json:"reviewer_id"`
	Status     string    `json:"status"`
	Feedback   string    `json:"feedback,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ReviewCreatedFromDomain(review *domain.Review) ReviewCreatedResponse {
	return ReviewCreatedResponse{
		ID:         review.ID,
		SolutionID: review.Solution.ID,
		ReviewerID: review.Reviewer.ID,
		Status:     string(review.Status),
		Feedback:   review.Feedback,
		CreatedAt:  review.CreatedAt,
	}
}

type TaskSummaryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	Deadline  time.Time `json:"deadline"`
	ChangedAt time.Time `json:"changed_at"`
}

type TaskPageResponse struct {
	Items []TaskSummaryResponse `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Size  int                   `json:"size"`
}

func TaskPageFromDomain(page domain.PaginatedTasks, query domain.PageQuery) TaskPageResponse {
	items := make([]TaskSummaryResponse, 0, len(page.Items))
	for _, s := range page.Items {
		items = append(items, TaskSummaryResponse{
			ID:        s.ID,
			Title:     s.Title,
			Priority:  string(s.Priority),
			Status:    string(s.Status),
			Deadline:  s.Deadline,
			ChangedAt: s.ChangedAt,
		})
	}

	return TaskPageResponse{Items: items, Total: page.Total, Page: query.Page, Size: query.Size}
}

type FileRegisteredResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FileRegisteredFromDomain(file *domain.File) FileRegisteredResponse {
	return FileRegisteredResponse{
		ID:        file.ID,
		Name:      file.Name,
		URL:       file.URL,
		OwnerID:   file.OwnerID,
		CreatedAt: file.CreatedAt,
	}
}
