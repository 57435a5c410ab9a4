package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-desk.com/task-desk/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(AllModels()...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func seedUser(t *testing.T, repo *UserRepository, role domain.Role) *domain.User {
	t.Helper()

	userCounter++
	user := domain.NewUser(fmt.Sprintf("user%d@example.com", userCounter), fmt.Sprintf("user%d", userCounter), "hash", role)
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

var userCounter int

func seedTask(t *testing.T, repo *TaskRepository, owner *domain.User, assignees []*domain.User, status domain.TaskStatus, deadline time.Time) *domain.Task {
	t.Helper()

	task, err := domain.RehydrateTask(
		newTaskID(), "title", "description",
		domain.PriorityLow, domain.DeadlineFromTime(deadline), status,
		owner, assignees, nil, time.Now().UTC(), 0,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), task))
	return task
}

var taskCounter int

func newTaskID() string {
	taskCounter++
	return fmt.Sprintf("task-%d", taskCounter)
}

func TestTaskRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, domain.RoleSupervisor)
	assignee := seedUser(t, users, domain.RoleMember)
	created := seedTask(t, tasks, owner, []*domain.User{assignee}, domain.TaskStatusPending, time.Now().Add(3*time.Hour))

	loaded, err := tasks.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, domain.TaskStatusPending, loaded.Status())
	assert.Equal(t, owner.ID, loaded.Owner.ID)
	require.Len(t, loaded.Assignees, 1)
	assert.Equal(t, assignee.ID, loaded.Assignees[0].ID)
	assert.Empty(t, loaded.Solutions)
	assert.Equal(t, uint(1), loaded.Version)
}

func TestTaskRepository_GetByID_Missing(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)

	loaded, err := tasks.GetByID(context.Background(), "no-such-task")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestTaskRepository_UpdateStatus_BumpsVersion(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, domain.RoleSupervisor)
	assignee := seedUser(t, users, domain.RoleMember)
	task := seedTask(t, tasks, owner, []*domain.User{assignee}, domain.TaskStatusPending, time.Now().Add(3*time.Hour))

	require.NoError(t, task.MarkAsCompleted())
	require.NoError(t, tasks.UpdateStatus(ctx, task))
	assert.Equal(t, uint(2), task.Version)

	loaded, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusOnReview, loaded.Status())
}

func TestTaskRepository_UpdateStatus_OptimisticConflict(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, domain.RoleSupervisor)
	assignee := seedUser(t, users, domain.RoleMember)
	task := seedTask(t, tasks, owner, []*domain.User{assignee}, domain.TaskStatusPending, time.Now().Add(3*time.Hour))

	stale, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)

	require.NoError(t, task.MarkAsCompleted())
	require.NoError(t, tasks.UpdateStatus(ctx, task))

	require.NoError(t, stale.MarkAsCompleted())
	err = tasks.UpdateStatus(ctx, stale)
	assert.True(t, errors.Is(err, ErrOptimisticLock))
}

func TestTaskRepository_Pagination(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, domain.RoleSupervisor)
	assignee := seedUser(t, users, domain.RoleMember)
	other := seedUser(t, users, domain.RoleSupervisor)

	for i := 0; i < 5; i++ {
		seedTask(t, tasks, owner, []*domain.User{assignee}, domain.TaskStatusPending, time.Now().Add(3*time.Hour))
	}
	seedTask(t, tasks, other, []*domain.User{assignee}, domain.TaskStatusPending, time.Now().Add(3*time.Hour))

	query, err := domain.NewPageQuery(1, 2)
	require.NoError(t, err)

	owned, err := tasks.GetOwned(ctx, owner.ID, query)
	require.NoError(t, err)
	assert.Equal(t, int64(5), owned.Total)
	assert.Len(t, owned.Items, 2)

	assigned, err := tasks.GetAssigned(ctx, assignee.ID, query)
	require.NoError(t, err)
	assert.Equal(t, int64(6), assigned.Total)
	assert.Len(t, assigned.Items, 2)

	lastPage, err := domain.NewPageQuery(3, 2)
	require.NoError(t, err)

	owned, err = tasks.GetOwned(ctx, owner.ID, lastPage)
	require.NoError(t, err)
	assert.Len(t, owned.Items, 1)
}

func TestSolutionRepository_GetByID_LoadsAggregate(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	solutions := NewSolutionRepository(db)
	files := NewFileRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, domain.RoleSupervisor)
	assignee := seedUser(t, users, domain.RoleMember)
	task := seedTask(t, tasks, owner, []*domain.User{assignee}, domain.TaskStatusOnReview, time.Now().Add(3*time.Hour))

	file := domain.NewFile("archive.zip", "https://files.local/archive.zip", assignee.ID)
	require.NoError(t, files.Create(ctx, file))

	solution := domain.NewSolution(task, file, assignee.ID, "solution details text")
	require.NoError(t, solutions.Create(ctx, solution))

	loaded, err := solutions.GetByID(ctx, solution.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, solution.ID, loaded.ID)
	assert.Equal(t, domain.SolutionStatusPending, loaded.Status)
	assert.Equal(t, file.ID, loaded.File.ID)

	require.NotNil(t, loaded.Task)
	assert.Equal(t, task.ID, loaded.Task.ID)
	assert.Equal(t, domain.TaskStatusOnReview, loaded.Task.Status())

	// The solution returned must be the instance held by its task, so
	// mutating one view mutates the aggregate.
	require.Len(t, loaded.Task.Solutions, 1)
	assert.Same(t, loaded, loaded.Task.Solutions[0])
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	tx := NewGormTransactionManager(db)
	ctx := context.Background()

	owner := seedUser(t, users, domain.RoleSupervisor)
	assignee := seedUser(t, users, domain.RoleMember)

	task, err := domain.RehydrateTask(
		newTaskID(), "title", "description",
		domain.PriorityLow, domain.DeadlineFromTime(time.Now().Add(3*time.Hour)), domain.TaskStatusPending,
		owner, []*domain.User{assignee}, nil, time.Now().UTC(), 0,
	)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tx.Execute(ctx, func(ctx context.Context) error {
		if err := tasks.Create(ctx, task); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	loaded, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded, "rolled back task must not be visible")
}

func TestReviewRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	reviewer := seedUser(t, users, domain.RoleAdmin)
	review, err := domain.NewReview(&domain.Solution{ID: "solution-1"}, reviewer, domain.ReviewStatusAccepted, "ship it")
	require.NoError(t, err)

	require.NoError(t, reviews.Create(ctx, review))

	var row ReviewRow
	require.NoError(t, db.First(&row, "id = ?", review.ID).Error)
	assert.Equal(t, "accepted", row.Status)
	assert.Equal(t, reviewer.ID, row.ReviewerID)
}

func TestUserRepository_GetMultipleByIDs(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	a := seedUser(t, users, domain.RoleMember)
	b := seedUser(t, users, domain.RoleMember)

	found, err := users.GetMultipleByIDs(ctx, []string{a.ID, b.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	byEmail, err := users.GetByEmail(ctx, a.Email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, a.ID, byEmail.ID)
}
