package services

import (
	"context"
	"errors"
	"log"

	dto "task-desk.com/task-desk/internal/data_models"
	"task-desk.com/task-desk/internal/domain"
	"task-desk.com/task-desk/internal/metrics"
)

type SolutionService struct {
	files     FileRepository
	tasks     TaskRepository
	solutions SolutionRepository
	tx        TransactionManager
}

func NewSolutionService(files FileRepository, tasks TaskRepository, solutions SolutionRepository, tx TransactionManager) *SolutionService {
	return &SolutionService{files: files, tasks: tasks, solutions: solutions, tx: tx}
}

// Submit records a solution for a task and moves the task to on-review.
//
// When the task turns out to be past its deadline, the flip to expired is
// persisted immediately as a single-field update and the call still fails
// with the expiry error. That partial success is deliberate: expiry is
// materialized lazily, on first touch, instead of by a background sweep.
func (s *SolutionService) Submit(ctx context.Context, actor CurrentUser, req dto.SubmitSolutionRequest) (dto.SolutionCreatedResponse, error) {
	var empty dto.SolutionCreatedResponse

	file, err := s.files.GetByID(ctx, req.FileID)
	if err != nil {
		log.Printf("submit solution: failed to fetch file %s: %v", req.FileID, err)
		return empty, fail("submit_solution", domain.ErrUnexpected)
	}
	if file == nil {
		return empty, fail("submit_solution", domain.NewFileNotFound(req.FileID))
	}

	task, err := s.tasks.GetByID(ctx, req.TaskID)
	if err != nil {
		log.Printf("submit solution: failed to fetch task %s: %v", req.TaskID, err)
		return empty, fail("submit_solution", domain.ErrUnexpected)
	}
	if task == nil {
		return empty, fail("submit_solution", domain.NewTaskNotFound(req.TaskID))
	}

	if err := task.MarkAsCompleted(); err != nil {
		if errors.Is(err, domain.ErrTaskExpired) {
			if updateErr := s.tasks.UpdateStatus(ctx, task); updateErr != nil {
				log.Printf("submit solution: failed to persist expired status for task %s: %v", task.ID, updateErr)
				return empty, fail("submit_solution", domain.ErrUnexpected)
			}
			metrics.TasksExpired.Inc()
		}
		return empty, fail("submit_solution", err)
	}

	solution := domain.NewSolution(task, file, actor.UserID, req.AdditionalDetails)

	err = s.tx.Execute(ctx, func(ctx context.Context) error {
		if err := s.tasks.UpdateStatus(ctx, task); err != nil {
			return err
		}
		return s.solutions.Create(ctx, solution)
	})
	if err != nil {
		log.Printf("submit solution: transaction failed for task %s: %v", task.ID, err)
		return empty, fail("submit_solution", domain.ErrUnexpected)
	}

	metrics.SolutionsSubmitted.Inc()
	return dto.SolutionCreatedFromDomain(solution), nil
}
