package proposal

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	ListBySellerID(ctx context.Context, sellerID string) ([]*Proposal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) ListBySellerID(ctx context.Context, sellerID string) ([]*Proposal, error) {
	var proposals []*Proposal
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&proposals).Error
	return proposals, err
}
