package services

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

	dto "task-desk.com/task-desk/internal/data_models"
	"task-desk.com/task-desk/internal/domain"
	repository "task-desk.com/task-desk/internal/repositories"
)

// env wires the services against a throwaway sqlite database the same way
// cmd/serve.go wires them against the real one.
type env struct {
	db        *gorm.DB
	users     *repository.UserRepository
	tasks     *TaskService
	solutions *SolutionService
	reviews   *ReviewService
	files     *FileService
	taskRepo  *repository.TaskRepository
}

func setupEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(repository.AllModels()...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	users := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	solutionRepo := repository.NewSolutionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	fileRepo := repository.NewFileRepository(db)
	tx := repository.NewGormTransactionManager(db)

	return &env{
		db:        db,
		users:     users,
		tasks:     NewTaskService(users, taskRepo, tx),
		solutions: NewSolutionService(fileRepo, taskRepo, solutionRepo, tx),
		reviews:   NewReviewService(users, solutionRepo, taskRepo, reviewRepo, tx),
		files:     NewFileService(fileRepo),
		taskRepo:  taskRepo,
	}
}

var envUserCounter int

func (e *env) addUser(t *testing.T, role domain.Role) *domain.User {
	t.Helper()

	envUserCounter++
	user := domain.NewUser(
		fmt.Sprintf("u%d@example.com", envUserCounter),
		fmt.Sprintf("u%d", envUserCounter),
		"hash", role,
	)
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *env) addFile(t *testing.T, actor *domain.User) dto.FileRegisteredResponse {
	t.Helper()

	file, err := e.files.Register(context.Background(), asActor(actor), dto.RegisterFileRequest{
		Name: "report.pdf",
		URL:  "https://files.local/report.pdf",
	})
	require.NoError(t, err)
	return file
}

func asActor(user *domain.User) CurrentUser {
	return CurrentUser{UserID: user.ID, Role: user.Role}
}

func createTaskFor(t *testing.T, e *env, owner, assignee *domain.User) dto.TaskWithAssigneesResponse {
	t.Helper()

	resp, err := e.tasks.Create(context.Background(), asActor(owner), dto.CreateTaskRequest{
		Title:       "quarterly report",
		Description: "compile the quarterly numbers",
		Priority:    "medium",
		Deadline:    time.Now().Add(48 * time.Hour),
		AssigneeIDs: []string{assignee.ID},
	})
	require.NoError(t, err)
	return resp
}

func TestTaskLifecycle_Approval(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	supervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)

	created := createTaskFor(t, e, supervisor, member)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, supervisor.ID, created.OwnerID)
	assert.Equal(t, []string{member.ID}, created.AssigneeIDs)

	file := e.addFile(t, member)
	submitted, err := e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID:            created.ID,
		FileID:            file.ID,
		AdditionalDetails: "all sections are filled in, see the attached archive",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", submitted.Status)
	assert.Equal(t, "on-review", submitted.TaskStatus)

	reviewed, err := e.reviews.Review(ctx, asActor(supervisor), dto.ReviewTaskRequest{
		SolutionID: submitted.ID,
		Status:     "accepted",
		Feedback:   "good work",
	})
	require.NoError(t, err)
	assert.Equal(t, "accepted", reviewed.Status)
	assert.Equal(t, supervisor.ID, reviewed.ReviewerID)

	task, err := e.taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusApproved, task.Status())
	require.Len(t, task.Solutions, 1)
	assert.Equal(t, domain.SolutionStatusReviewed, task.Solutions[0].Status)
}

func TestTaskLifecycle_RejectionReopens(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	supervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)

	created := createTaskFor(t, e, supervisor, member)
	file := e.addFile(t, member)

	first, err := e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID: created.ID, FileID: file.ID,
	})
	require.NoError(t, err)

	_, err = e.reviews.Review(ctx, asActor(supervisor), dto.ReviewTaskRequest{
		SolutionID: first.ID,
		Status:     "rejected",
		Feedback:   "numbers for march are missing",
	})
	require.NoError(t, err)

	task, err := e.taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status(), "rejection must reopen the task")

	// A fresh submission on the reopened task succeeds; the rejected
	// solution stays around as history.
	second, err := e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID: created.ID, FileID: file.ID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	task, err = e.taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusOnReview, task.Status())
	assert.Len(t, task.Solutions, 2)
}

func TestSolutionSubmit_ExpiredTaskPersisted(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	supervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)

	// Seed a pending task whose deadline already passed, bypassing the
	// creation-time deadline check the same way a row aged in storage would.
	task, err := domain.RehydrateTask(
		"aged-task", "t", "d",
		domain.PriorityLow, domain.DeadlineFromTime(time.Now().Add(-time.Hour)), domain.TaskStatusPending,
		supervisor, []*domain.User{member}, nil, time.Now().UTC(), 0,
	)
	require.NoError(t, err)
	require.NoError(t, e.taskRepo.Create(ctx, task))

	file := e.addFile(t, member)
	_, err = e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID: task.ID, FileID: file.ID,
	})
	require.True(t, errors.Is(err, domain.ErrTaskExpired))

	// The failed submission still materialized the expiry.
	loaded, err := e.taskRepo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusExpired, loaded.Status())
	assert.Empty(t, loaded.Solutions, "no solution row for a failed submission")

	// Later submissions keep failing the same way.
	_, err = e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID: task.ID, FileID: file.ID,
	})
	require.True(t, errors.Is(err, domain.ErrTaskExpired))

	loaded, err = e.taskRepo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusExpired, loaded.Status())
}

func TestTaskCreate_Authorization(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	member := e.addUser(t, domain.RoleMember)
	supervisor := e.addUser(t, domain.RoleSupervisor)
	otherSupervisor := e.addUser(t, domain.RoleSupervisor)
	admin := e.addUser(t, domain.RoleAdmin)

	submit := func(owner *domain.User, assigneeIDs []string) error {
		_, err := e.tasks.Create(ctx, asActor(owner), dto.CreateTaskRequest{
			Title: "t", Description: "d", Priority: "low",
			Deadline:    time.Now().Add(48 * time.Hour),
			AssigneeIDs: assigneeIDs,
		})
		return err
	}

	err := submit(member, []string{supervisor.ID})
	assert.True(t, errors.Is(err, domain.ErrAssigneesMustBeLowerRole))

	err = submit(supervisor, []string{otherSupervisor.ID})
	assert.True(t, errors.Is(err, domain.ErrAssigneesMustBeLowerRole))

	err = submit(admin, []string{admin.ID})
	assert.True(t, errors.Is(err, domain.ErrAssigneesMustBeLowerRole))

	assert.NoError(t, submit(admin, []string{supervisor.ID, member.ID}))

	err = submit(supervisor, []string{member.ID, "no-such-user"})
	assert.True(t, errors.Is(err, domain.ErrSomeAssigneesNotFound))
}

func TestTaskCreate_DeadlineTooSoon(t *testing.T) {
	e := setupEnv(t)

	supervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)

	_, err := e.tasks.Create(context.Background(), asActor(supervisor), dto.CreateTaskRequest{
		Title: "t", Description: "d", Priority: "low",
		Deadline:    time.Now().Add(30 * time.Minute),
		AssigneeIDs: []string{member.ID},
	})
	assert.True(t, errors.Is(err, domain.ErrDeadlineTooSoon))
}

func TestChangePriority_Authorization(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	supervisor := e.addUser(t, domain.RoleSupervisor)
	otherSupervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)
	admin := e.addUser(t, domain.RoleAdmin)

	created := createTaskFor(t, e, supervisor, member)

	_, err := e.tasks.ChangePriority(ctx, asActor(member), created.ID, "high")
	assert.True(t, errors.Is(err, domain.ErrTaskCannotBeChangedByUser))

	_, err = e.tasks.ChangePriority(ctx, asActor(otherSupervisor), created.ID, "high")
	assert.True(t, errors.Is(err, domain.ErrTaskCannotBeChangedByUser), "supervisor may only touch own tasks")

	resp, err := e.tasks.ChangePriority(ctx, asActor(supervisor), created.ID, "high")
	require.NoError(t, err)
	assert.Equal(t, "high", resp.Priority)

	resp, err = e.tasks.ChangePriority(ctx, asActor(admin), created.ID, "low")
	require.NoError(t, err)
	assert.Equal(t, "low", resp.Priority)

	_, err = e.tasks.ChangePriority(ctx, asActor(admin), "no-such-task", "low")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestChangePriority_OnlyPendingTasks(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	supervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)

	created := createTaskFor(t, e, supervisor, member)
	file := e.addFile(t, member)
	_, err := e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID: created.ID, FileID: file.ID,
	})
	require.NoError(t, err)

	_, err = e.tasks.ChangePriority(ctx, asActor(supervisor), created.ID, "high")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Contains(t, err.Error(), "on-review")
}

func TestReview_MemberForbidden(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	supervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)

	created := createTaskFor(t, e, supervisor, member)
	file := e.addFile(t, member)
	submitted, err := e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID: created.ID, FileID: file.ID,
	})
	require.NoError(t, err)

	_, err = e.reviews.Review(ctx, asActor(member), dto.ReviewTaskRequest{
		SolutionID: submitted.ID, Status: "accepted",
	})
	assert.True(t, errors.Is(err, domain.ErrReviewCannotBeCreatedByMember))

	// The rejected attempt left the aggregate untouched.
	task, err := e.taskRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusOnReview, task.Status())
	assert.Equal(t, domain.SolutionStatusPending, task.Solutions[0].Status)
}

func TestReview_RequiresOnReviewTask(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	supervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)

	created := createTaskFor(t, e, supervisor, member)
	file := e.addFile(t, member)
	submitted, err := e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID: created.ID, FileID: file.ID,
	})
	require.NoError(t, err)

	_, err = e.reviews.Review(ctx, asActor(supervisor), dto.ReviewTaskRequest{
		SolutionID: submitted.ID, Status: "accepted",
	})
	require.NoError(t, err)

	// Second review of the same solution finds an approved task.
	_, err = e.reviews.Review(ctx, asActor(supervisor), dto.ReviewTaskRequest{
		SolutionID: submitted.ID, Status: "rejected",
	})
	assert.True(t, errors.Is(err, domain.ErrTaskNotOnReview))
}

func TestGetOwnedAndAssigned(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	supervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)
	admin := e.addUser(t, domain.RoleAdmin)

	for i := 0; i < 3; i++ {
		createTaskFor(t, e, supervisor, member)
	}

	query, err := domain.NewPageQuery(1, 2)
	require.NoError(t, err)

	page, err := e.tasks.GetOwned(ctx, asActor(supervisor), supervisor.ID, query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Page)

	// Admins may read anyone's lists, others only their own.
	_, err = e.tasks.GetOwned(ctx, asActor(admin), supervisor.ID, query)
	assert.NoError(t, err)
	_, err = e.tasks.GetOwned(ctx, asActor(member), supervisor.ID, query)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	page, err = e.tasks.GetAssigned(ctx, asActor(member), member.ID, query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)

	_, err = e.tasks.GetAssigned(ctx, asActor(supervisor), member.ID, query)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestSolutionSubmit_MissingFileOrTask(t *testing.T) {
	e := setupEnv(t)
	ctx := context.Background()

	supervisor := e.addUser(t, domain.RoleSupervisor)
	member := e.addUser(t, domain.RoleMember)
	created := createTaskFor(t, e, supervisor, member)
	file := e.addFile(t, member)

	_, err := e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID: created.ID, FileID: "no-such-file",
	})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = e.solutions.Submit(ctx, asActor(member), dto.SubmitSolutionRequest{
		TaskID: "no-such-task", FileID: file.ID,
	})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
