package document

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, id string) error
	ListBySellerID(ctx context.Context, sellerID string) ([]*Document, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Document, error) {
	var d Document
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Document{}).Error
}

func (r *repository) ListBySellerID(ctx context.Context, sellerID string) ([]*Document, error) {
	var docs []*Document
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}
