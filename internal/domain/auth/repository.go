package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, o *Operator) error
	GetByEmail(ctx context.Context, email string) (*Operator, error)
	GetByID(ctx context.Context, id int64) (*Operator, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Operator) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Operator, error) {
	var o Operator
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOperatorNotFound
	}
	return &o, err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Operator, error) {
	var o Operator
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOperatorNotFound
	}
	return &o, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Operator{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
