package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sellerdesk/internal/domain/audit"
	"sellerdesk/internal/domain/seller"
)

type SellerReader interface {
	GetByID(ctx context.Context, id string) (*seller.Seller, error)
}

type Service struct {
	repo    Repository
	sellers SellerReader
	audit   audit.Recorder
}

func NewService(repo Repository, sellers SellerReader, auditRec audit.Recorder) *Service {
	return &Service{repo: repo, sellers: sellers, audit: auditRec}
}

func (s *Service) Create(ctx context.Context, operatorID int64, sellerID string, req CreatePaymentRequest) (*Payment, error) {
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	p := &Payment{
		ID:             uuid.New().String(),
		SellerID:       sellerID,
		Amount:         req.Amount,
		PaymentDate:    req.PaymentDate,
		Reference:      req.Reference,
		ProofOfPayment: req.ProofOfPayment,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, operatorID, "create", "payment", p.ID, fmt.Sprintf("seller %s amount %.2f", sellerID, p.Amount))
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListBySeller(ctx context.Context, sellerID string) ([]*Payment, error) {
	return s.repo.ListBySellerID(ctx, sellerID)
}
