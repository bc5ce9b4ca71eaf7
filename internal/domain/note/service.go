package note

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sellerdesk/internal/domain/seller"
)

type CreateNoteRequest struct {
	Content       string `json:"content" binding:"required"`
	AttachmentURL string `json:"attachment_url"`
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

func (s *Service) Create(ctx context.Context, sellerID string, req CreateNoteRequest) (*InternalNote, error) {
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	n := &InternalNote{
		ID:            uuid.New().String(),
		SellerID:      sellerID,
		Content:       req.Content,
		AttachmentURL: req.AttachmentURL,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) ListBySeller(ctx context.Context, sellerID string) ([]*InternalNote, error) {
	return s.repo.ListBySellerID(ctx, sellerID)
}
