package services

import (
	"context"
	"log"

	dto "task-desk.com/task-desk/internal/data_models"
	"task-desk.com/task-desk/internal/domain"
	"task-desk.com/task-desk/internal/metrics"
)

type ReviewService struct {
	users     UserRepository
	solutions SolutionRepository
	tasks     TaskRepository
	reviews   ReviewRepository
	tx        TransactionManager
}

func NewReviewService(users UserRepository, solutions SolutionRepository, tasks TaskRepository, reviews ReviewRepository, tx TransactionManager) *ReviewService {
	return &ReviewService{users: users, solutions: solutions, tasks: tasks, reviews: reviews, tx: tx}
}

// Review evaluates a submitted solution. Accepted reviews approve the task,
// rejected ones send it back to pending; the solution is marked reviewed
// either way. Task status, solution status and the review row are written in
// one transaction.
func (s *ReviewService) Review(ctx context.Context, actor CurrentUser, req dto.ReviewTaskRequest) (dto.ReviewCreatedResponse, error) {
	var empty dto.ReviewCreatedResponse

	reviewer, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		log.Printf("review task: failed to fetch user %s: %v", actor.UserID, err)
		return empty, fail("review_task", domain.ErrUnexpected)
	}
	if reviewer == nil {
		return empty, fail("review_task", domain.NewUserNotFound(actor.UserID))
	}

	solution, err := s.solutions.GetByID(ctx, req.SolutionID)
	if err != nil {
		log.Printf("review task: failed to fetch solution %s: %v", req.SolutionID, err)
		return empty, fail("review_task", domain.ErrUnexpected)
	}
	if solution == nil {
		return empty, fail("review_task", domain.NewSolutionNotFound(req.SolutionID))
	}

	status, err := domain.NewReviewStatus(req.Status)
	if err != nil {
		return empty, fail("review_task", err)
	}

	review, err := domain.NewReview(solution, reviewer, status, req.Feedback)
	if err != nil {
		return empty, fail("review_task", err)
	}

	task := solution.Task
	if err := task.EvaluateCompletion(review); err != nil {
		return empty, fail("review_task", err)
	}

	solution.MarkAsReviewed()

	err = s.tx.Execute(ctx, func(ctx context.Context) error {
		if err := s.solutions.UpdateStatus(ctx, solution); err != nil {
			return err
		}
		if err := s.tasks.UpdateStatus(ctx, task); err != nil {
			return err
		}
		return s.reviews.Create(ctx, review)
	})
	if err != nil {
		log.Printf("review task: transaction failed for solution %s: %v", solution.ID, err)
		return empty, fail("review_task", domain.ErrUnexpected)
	}

	metrics.ReviewsCreated.Inc()
	return dto.ReviewCreatedFromDomain(review), nil
}
