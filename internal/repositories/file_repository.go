package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-desk.com/task-desk/internal/domain"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*domain.File, error) {
	var row FileRow
	err := dbFrom(ctx, r.db).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fileRowToDomain(&row), nil
}

func (r *FileRepository) Create(ctx context.Context, file *domain.File) error {
	row := fileToRow(file)
	return dbFrom(ctx, r.db).Create(&row).Error
}
