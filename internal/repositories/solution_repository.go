package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-desk.com/task-desk/internal/domain"
)

type SolutionRepository struct {
	db *gorm.DB
}

func NewSolutionRepository(db *gorm.DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// GetByID loads the solution together with its full parent aggregate; the
// review use case transitions the task through the solution.
func (r *SolutionRepository) GetByID(ctx context.Context, id string) (*domain.Solution, error) {
	db := dbFrom(ctx, r.db)

	var row SolutionRow
	err := db.Preload("File").First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var taskRow TaskRow
	err = db.
		Preload("Owner").
		Preload("Assignees").
		Preload("Solutions").
		Preload("Solutions.File").
		First(&taskRow, "id = ?", row.TaskID).Error
	if err != nil {
		return nil, err
	}

	task, err := taskRowToDomain(&taskRow)
	if err != nil {
		return nil, err
	}

	// The task already carries this solution in its history; return that
	// instance so task and solution share one view of the aggregate.
	for _, s := range task.Solutions {
		if s.ID == row.ID {
			return s, nil
		}
	}

	return solutionRowToDomain(&row, task)
}

func (r *SolutionRepository) Create(ctx context.Context, solution *domain.Solution) error {
	row := solutionToRow(solution)
	if err := dbFrom(ctx, r.db).Create(&row).Error; err != nil {
		return err
	}

	solution.Version = row.Version
	return nil
}

func (r *SolutionRepository) UpdateStatus(ctx context.Context, solution *domain.Solution) error {
	res := dbFrom(ctx, r.db).Model(&SolutionRow{}).
		Where("id = ? AND version = ?", solution.ID, solution.Version).
		Updates(map[string]any{
			"status":     string(solution.Status),
			"updated_at": solution.UpdatedAt,
			"version":    gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	solution.Version++
	return nil
}
