package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sellerdesk/internal/domain/seller"
)

type RecordRequest struct {
	Marketplace string `json:"marketplace" binding:"required"`
	Stage       string `json:"stage" binding:"required"`
}

type SellerReader interface {
	GetByID(ctx context.Context, id string) (*seller.Seller, error)
}

type Service struct {
	repo    Repository
	sellers SellerReader
}

func NewService(repo Repository, sellers SellerReader) *Service {
	return &Service{repo: repo, sellers: sellers}
}

// Record appends a transition. No validation against a stage
// vocabulary: any marketplace/stage pair the operator submits is
// history.
func (s *Service) Record(ctx context.Context, sellerID string, req RecordRequest) (*Entry, error) {
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	e := &Entry{
		ID:          uuid.New().String(),
		SellerID:    sellerID,
		Marketplace: req.Marketplace,
		Stage:       req.Stage,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListBySeller(ctx context.Context, sellerID string) ([]*Entry, error) {
	return s.repo.ListBySellerID(ctx, sellerID)
}
