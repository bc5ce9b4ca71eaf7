package lifecycle

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListBySellerID(ctx context.Context, sellerID string) ([]*Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) ListBySellerID(ctx context.Context, sellerID string) ([]*Entry, error) {
	var entries []*Entry
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}
