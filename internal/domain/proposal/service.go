package proposal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sellerdesk/internal/domain/seller"
)

type CreateProposalRequest struct {
	FileName  string `json:"file_name" binding:"required"`
	FileURL   string `json:"file_url" binding:"required"`
	Shareable bool   `json:"shareable"`
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

func (s *Service) Create(ctx context.Context, sellerID string, req CreateProposalRequest) (*Proposal, error) {
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	p := &Proposal{
		ID:        uuid.New().String(),
		SellerID:  sellerID,
		FileName:  req.FileName,
		FileURL:   req.FileURL,
		Shareable: req.Shareable,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListBySeller(ctx context.Context, sellerID string) ([]*Proposal, error) {
	return s.repo.ListBySellerID(ctx, sellerID)
}
