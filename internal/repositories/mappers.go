package repository

import (
	"fmt"

	"task-desk.com/task-desk/internal/domain"
)

func userRowToDomain(row *UserRow) *domain.User {
	if row == nil {
		return nil
	}
	return &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
	}
}

func userToRow(user *domain.User) UserRow {
	return UserRow{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
	}
}

func fileRowToDomain(row *FileRow) *domain.File {
	if row == nil {
		return nil
	}
	return &domain.File{
		ID:        row.ID,
		Name:      row.Name,
		URL:       row.URL,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
	}
}

// taskRowToDomain rehydrates the aggregate, solutions included. The stored
// status and priority are trusted but still validated so a corrupted row
// surfaces as an error instead of a panic deeper in.
func taskRowToDomain(row *TaskRow) (*domain.Task, error) {
	status, err := domain.NewTaskStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", row.ID, err)
	}
	priority, err := domain.NewTaskPriority(row.Priority)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", row.ID, err)
	}

	assignees := make([]*domain.User, 0, len(row.Assignees))
	for i := range row.Assignees {
		assignees = append(assignees, userRowToDomain(&row.Assignees[i]))
	}

	task, err := domain.RehydrateTask(
		row.ID,
		row.Title,
		row.Description,
		priority,
		domain.DeadlineFromTime(row.Deadline),
		status,
		userRowToDomain(row.Owner),
		assignees,
		nil,
		row.ChangedAt,
		row.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("task %s: %w", row.ID, err)
	}

	solutions := make([]*domain.Solution, 0, len(row.Solutions))
	for i := range row.Solutions {
		solution, err := solutionRowToDomain(&row.Solutions[i], task)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, solution)
	}
	task.Solutions = solutions

	return task, nil
}

func solutionRowToDomain(row *SolutionRow, task *domain.Task) (*domain.Solution, error) {
	status, err := domain.NewSolutionStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("solution %s: %w", row.ID, err)
	}

	return domain.RehydrateSolution(
		row.ID,
		task,
		fileRowToDomain(row.File),
		row.CreatorID,
		row.AdditionalDetails,
		status,
		row.CreatedAt,
		row.UpdatedAt,
		row.Version,
	), nil
}

func taskToRow(task *domain.Task) TaskRow {
	assignees := make([]UserRow, 0, len(task.Assignees))
	for _, a := range task.Assignees {
		assignees = append(assignees, UserRow{ID: a.ID})
	}

	return TaskRow{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Deadline:    task.Deadline.Time(),
		Status:      string(task.Status()),
		OwnerID:     task.Owner.ID,
		Version:     1,
		ChangedAt:   task.ChangedAt,
		Assignees:   assignees,
	}
}

func solutionToRow(solution *domain.Solution) SolutionRow {
	return SolutionRow{
		ID:                solution.ID,
		TaskID:            solution.Task.ID,
		FileID:            solution.File.ID,
		CreatorID:         solution.CreatorID,
		AdditionalDetails: solution.AdditionalDetails,
		Status:            string(solution.Status),
		Version:           1,
		CreatedAt:         solution.CreatedAt,
		UpdatedAt:         solution.UpdatedAt,
	}
}

func reviewToRow(review *domain.Review) ReviewRow {
	return ReviewRow{
		ID:         review.ID,
		SolutionID: review.Solution.ID,
		ReviewerID: review.Reviewer.ID,
		Status:     string(review.Status),
		Feedback:   review.Feedback,
		CreatedAt:  review.CreatedAt,
	}
}

func fileToRow(file *domain.File) FileRow {
	return FileRow{
		ID:        file.ID,
		Name:      file.Name,
		URL:       file.URL,
		OwnerID:   file.OwnerID,
		CreatedAt: file.CreatedAt,
	}
}
