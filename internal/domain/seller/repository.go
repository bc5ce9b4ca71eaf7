package seller

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, s *Seller) error
	GetByID(ctx context.Context, id string) (*Seller, error)
	Update(ctx context.Context, s *Seller) error
	List(ctx context.Context) ([]*Seller, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Seller) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Seller, error) {
	var s Seller
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSellerNotFound
	}
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *Seller) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) List(ctx context.Context) ([]*Seller, error) {
	var sellers []*Seller
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&sellers).Error
	return sellers, err
}
