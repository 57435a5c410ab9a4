package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-desk.com/task-desk/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var row UserRow
	err := dbFrom(ctx, r.db).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userRowToDomain(&row), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row UserRow
	err := dbFrom(ctx, r.db).First(&row, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userRowToDomain(&row), nil
}

// GetMultipleByIDs returns only the users that exist; callers compare counts
// to detect missing ids. Duplicate ids collapse to one row.
func (r *UserRepository) GetMultipleByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []UserRow
	if err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, userRowToDomain(&rows[i]))
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	row := userToRow(user)
	return dbFrom(ctx, r.db).Create(&row).Error
}
