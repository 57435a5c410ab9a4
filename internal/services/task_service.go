package services

import (
	"context"
	"log"
	"sync"

	dto "task-desk.com/task-desk/internal/data_models"
	"task-desk.com/task-desk/internal/domain"
	"task-desk.com/task-desk/internal/metrics"
)

type TaskService struct {
	users  UserRepository
	tasks  TaskRepository
	tx     TransactionManager
	policy TaskPolicy
}

func NewTaskService(users UserRepository, tasks TaskRepository, tx TransactionManager) *TaskService {
	return &TaskService{users: users, tasks: tasks, tx: tx}
}

// Create builds and persists a new pending task for the acting user.
func (s *TaskService) Create(ctx context.Context, actor CurrentUser, req dto.CreateTaskRequest) (dto.TaskWithAssigneesResponse, error) {
	var empty dto.TaskWithAssigneesResponse

	deadline, err := domain.NewDeadline(req.Deadline)
	if err != nil {
		return empty, fail("create_task", err)
	}

	owner, assignees, err := s.fetchOwnerAndAssignees(ctx, actor.UserID, req.AssigneeIDs)
	if err != nil {
		return empty, fail("create_task", err)
	}

	if !s.policy.CanCreateTask(owner, assignees) {
		return empty, fail("create_task", domain.ErrAssigneesMustBeLowerRole)
	}

	priority, err := domain.NewTaskPriority(req.Priority)
	if err != nil {
		return empty, fail("create_task", err)
	}

	status, err := domain.NewTaskStatus("")
	if err != nil {
		return empty, fail("create_task", err)
	}

	task, err := domain.NewTask(req.Title, req.Description, priority, deadline, status, owner, assignees)
	if err != nil {
		return empty, fail("create_task", err)
	}

	err = s.tx.Execute(ctx, func(ctx context.Context) error {
		return s.tasks.Create(ctx, task)
	})
	if err != nil {
		log.Printf("create task: transaction failed for task %s: %v", task.ID, err)
		return empty, fail("create_task", domain.ErrUnexpected)
	}

	metrics.TasksCreated.Inc()
	return dto.TaskWithAssigneesFromDomain(task), nil
}

// ChangePriority updates the priority of a pending task, gated by the task
// policy. A single-field write, no multi-entity transaction needed.
func (s *TaskService) ChangePriority(ctx context.Context, actor CurrentUser, taskID, newPriority string) (dto.TaskPriorityChangedResponse, error) {
	var empty dto.TaskPriorityChangedResponse

	_, task, err := s.fetchUserAndTask(ctx, actor.UserID, taskID)
	if err != nil {
		return empty, fail("change_task_priority", err)
	}

	if !s.policy.CanChangeTask(actor.UserID, actor.Role, task) {
		return empty, fail("change_task_priority", domain.ErrTaskCannotBeChangedByUser)
	}

	priority, err := domain.NewTaskPriority(newPriority)
	if err != nil {
		return empty, fail("change_task_priority", err)
	}

	if err := task.ChangePriority(priority); err != nil {
		return empty, fail("change_task_priority", err)
	}

	if err := s.tasks.UpdatePriority(ctx, task); err != nil {
		log.Printf("change task priority: update failed for task %s: %v", task.ID, err)
		return empty, fail("change_task_priority", domain.ErrUnexpected)
	}

	return dto.TaskPriorityChangedFromDomain(task), nil
}

// GetOwned lists tasks owned by ownerID; only the owner or an admin may ask.
func (s *TaskService) GetOwned(ctx context.Context, actor CurrentUser, ownerID string, query domain.PageQuery) (dto.TaskPageResponse, error) {
	var empty dto.TaskPageResponse

	if !s.policy.CanFetchOwned(actor.UserID, actor.Role, ownerID) {
		return empty, fail("get_owned_tasks", domain.NewTasksCannotBeFetchedByRole(actor.Role))
	}

	page, err := s.tasks.GetOwned(ctx, ownerID, query)
	if err != nil {
		log.Printf("get owned tasks: query failed for owner %s: %v", ownerID, err)
		return empty, fail("get_owned_tasks", domain.ErrUnexpected)
	}

	return dto.TaskPageFromDomain(page, query), nil
}

// GetAssigned lists tasks assigned to assigneeID; only the assignee or an
// admin may ask.
func (s *TaskService) GetAssigned(ctx context.Context, actor CurrentUser, assigneeID string, query domain.PageQuery) (dto.TaskPageResponse, error) {
	var empty dto.TaskPageResponse

	if !s.policy.CanFetchAssigned(actor.UserID, actor.Role, assigneeID) {
		return empty, fail("get_assigned_tasks", domain.NewTasksCannotBeFetchedByRole(actor.Role))
	}

	page, err := s.tasks.GetAssigned(ctx, assigneeID, query)
	if err != nil {
		log.Printf("get assigned tasks: query failed for assignee %s: %v", assigneeID, err)
		return empty, fail("get_assigned_tasks", domain.ErrUnexpected)
	}

	return dto.TaskPageFromDomain(page, query), nil
}

// fetchOwnerAndAssignees fans the two reads out concurrently; both are
// read-only and the results are combined only after the wait.
func (s *TaskService) fetchOwnerAndAssignees(ctx context.Context, ownerID string, assigneeIDs []string) (*domain.User, []*domain.User, error) {
	var (
		wg           sync.WaitGroup
		owner        *domain.User
		assignees    []*domain.User
		ownerErr     error
		assigneesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		owner, ownerErr = s.users.GetByID(ctx, ownerID)
	}()
	go func() {
		defer wg.Done()
		assignees, assigneesErr = s.users.GetMultipleByIDs(ctx, assigneeIDs)
	}()
	wg.Wait()

	if ownerErr != nil {
		log.Printf("create task: failed to fetch owner %s: %v", ownerID, ownerErr)
		return nil, nil, domain.ErrUnexpected
	}
	if assigneesErr != nil {
		log.Printf("create task: failed to fetch assignees: %v", assigneesErr)
		return nil, nil, domain.ErrUnexpected
	}

	if owner == nil {
		return nil, nil, domain.NewUserNotFound(ownerID)
	}
	if len(assignees) != len(assigneeIDs) {
		return nil, nil, domain.ErrSomeAssigneesNotFound
	}

	return owner, assignees, nil
}

func (s *TaskService) fetchUserAndTask(ctx context.Context, userID, taskID string) (*domain.User, *domain.Task, error) {
	var (
		wg      sync.WaitGroup
		user    *domain.User
		task    *domain.Task
		userErr error
		taskErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		user, userErr = s.users.GetByID(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		task, taskErr = s.tasks.GetByID(ctx, taskID)
	}()
	wg.Wait()

	if userErr != nil {
		log.Printf("fetch user %s: %v", userID, userErr)
		return nil, nil, domain.ErrUnexpected
	}
	if taskErr != nil {
		log.Printf("fetch task %s: %v", taskID, taskErr)
		return nil, nil, domain.ErrUnexpected
	}

	if user == nil {
		return nil, nil, domain.NewUserNotFound(userID)
	}
	if task == nil {
		return nil, nil, domain.NewTaskNotFound(taskID)
	}

	return user, task, nil
}

func fail(useCase string, err error) error {
	metrics.UseCaseFailures.WithLabelValues(useCase, string(domain.KindOf(err))).Inc()
	return err
}
