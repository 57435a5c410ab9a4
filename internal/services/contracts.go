package services

import (
	"context"

	"task-desk.com/task-desk/internal/domain"
)

// CurrentUser is the request-scoped identity populated by token
// verification at the HTTP edge and threaded explicitly through use cases.
type CurrentUser struct {
	UserID string
	Role   domain.Role
}

// Repository contracts. GetByID-style lookups return (nil, nil) when no row
// matches; an error always means an infrastructure failure. All methods
// honor a transaction handle carried inside the context by the
// TransactionManager.

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	UpdateStatus(ctx context.Context, task *domain.Task) error
	UpdatePriority(ctx context.Context, task *domain.Task) error
	GetOwned(ctx context.Context, ownerID string, query domain.PageQuery) (domain.PaginatedTasks, error)
	GetAssigned(ctx context.Context, assigneeID string, query domain.PageQuery) (domain.PaginatedTasks, error)
}

type SolutionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Solution, error)
	Create(ctx context.Context, solution *domain.Solution) error
	UpdateStatus(ctx context.Context, solution *domain.Solution) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetMultipleByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type FileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.File, error)
	Create(ctx context.Context, file *domain.File) error
}

// TransactionManager runs fn inside one transaction: commit on nil return,
// rollback on error.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
