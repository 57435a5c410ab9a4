package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-desk.com/task-desk/internal/domain"
)

// ErrOptimisticLock is returned when a versioned update matched no row,
// meaning another transaction moved the entity first.
var ErrOptimisticLock = errors.New("optimistic locking conflict")

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var row TaskRow
	err := dbFrom(ctx, r.db).
		Preload("Owner").
		Preload("Assignees").
		Preload("Solutions").
		Preload("Solutions.File").
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return taskRowToDomain(&row)
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	row := taskToRow(task)

	// Omit association upserts: assignees already exist, only the join
	// rows are written.
	if err := dbFrom(ctx, r.db).Omit("Assignees.*").Create(&row).Error; err != nil {
		return err
	}

	task.Version = row.Version
	return nil
}

// UpdateStatus writes status and changedAt guarded by the version column, so
// a concurrent transition loses cleanly instead of silently clobbering.
func (r *TaskRepository) UpdateStatus(ctx context.Context, task *domain.Task) error {
	return r.updateVersioned(ctx, task, map[string]any{
		"status":     string(task.Status()),
		"changed_at": task.ChangedAt,
	})
}

func (r *TaskRepository) UpdatePriority(ctx context.Context, task *domain.Task) error {
	return r.updateVersioned(ctx, task, map[string]any{
		"priority":   string(task.Priority),
		"changed_at": task.ChangedAt,
	})
}

func (r *TaskRepository) updateVersioned(ctx context.Context, task *domain.Task, fields map[string]any) error {
	fields["version"] = gorm.Expr("version + 1")

	res := dbFrom(ctx, r.db).Model(&TaskRow{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	task.Version++
	return nil
}

func (r *TaskRepository) GetOwned(ctx context.Context, ownerID string, query domain.PageQuery) (domain.PaginatedTasks, error) {
	base := dbFrom(ctx, r.db).Model(&TaskRow{}).Where("owner_id = ?", ownerID)
	return r.paginate(base, query)
}

func (r *TaskRepository) GetAssigned(ctx context.Context, assigneeID string, query domain.PageQuery) (domain.PaginatedTasks, error) {
	base := dbFrom(ctx, r.db).Model(&TaskRow{}).
		Joins("JOIN task_assignees ON task_assignees.task_id = tasks.id").
		Where("task_assignees.user_id = ?", assigneeID)
	return r.paginate(base, query)
}

func (r *TaskRepository) paginate(base *gorm.DB, query domain.PageQuery) (domain.PaginatedTasks, error) {
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return domain.PaginatedTasks{}, err
	}

	var rows []TaskRow
	err := base.
		Order("changed_at DESC").
		Offset(query.Offset()).
		Limit(query.Size).
		Find(&rows).Error
	if err != nil {
		return domain.PaginatedTasks{}, err
	}

	items := make([]domain.TaskSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.TaskSummary{
			ID:        row.ID,
			Title:     row.Title,
			Priority:  domain.TaskPriority(row.Priority),
			Status:    domain.TaskStatus(row.Status),
			Deadline:  row.Deadline,
			ChangedAt: row.ChangedAt,
		})
	}

	return domain.PaginatedTasks{Items: items, Total: total}, nil
}
