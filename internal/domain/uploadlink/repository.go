package uploadlink

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sellerdesk/internal/domain/document"
)

type Repository interface {
	Create(ctx context.Context, l *UploadLink) error
	ListBySellerID(ctx context.Context, sellerID string) ([]*UploadLink, error)
	// Consume redeems the link and creates the document as one atomic
	// unit. Exactly one caller can win for a given token.
	Consume(ctx context.Context, token string, now time.Time, doc *document.Document) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *UploadLink) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) ListBySellerID(ctx context.Context, sellerID string) ([]*UploadLink, error) {
	var links []*UploadLink
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("created_at DESC").Find(&links).Error
	return links, err
}

// Consume runs the check-then-act sequence inside one transaction.
// The guard is the conditional update on used: the row transition
// false -> true happens at most once, so concurrent redeemers are
// serialized by the storage layer, not by an in-process lock. The
// document insert shares the transaction, so either both effects
// commit or neither does.
func (r *repository) Consume(ctx context.Context, token string, now time.Time, doc *document.Document) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link UploadLink
		if err := tx.Where("token = ?", token).First(&link).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLinkNotFound
			}
			return err
		}

		if !now.Before(link.ExpiresAt) {
			return ErrLinkExpired
		}

		res := tx.Model(&UploadLink{}).
			Where("token = ? AND used = ?", token, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrLinkUsed
		}

		doc.SellerID = link.SellerID
		return tx.Create(doc).Error
	})
}
