package repository

import (
	"context"

	"gorm.io/gorm"

	"task-desk.com/task-desk/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	row := reviewToRow(review)
	return dbFrom(ctx, r.db).Create(&row).Error
}
