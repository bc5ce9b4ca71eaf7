package note

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *InternalNote) error
	ListBySellerID(ctx context.Context, sellerID string) ([]*InternalNote, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *InternalNote) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) ListBySellerID(ctx context.Context, sellerID string) ([]*InternalNote, error) {
	var notes []*InternalNote
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&notes).Error
	return notes, err
}
