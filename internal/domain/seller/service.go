package seller

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sellerdesk/internal/domain/audit"
)

type Service struct {
	repo  Repository
	audit audit.Recorder
}

func NewService(repo Repository, auditRec audit.Recorder) *Service {
	return &Service{repo: repo, audit: auditRec}
}

func (s *Service) Create(ctx context.Context, operatorID int64, req CreateSellerRequest) (*Seller, error) {
	now := time.Now()
	sl := &Seller{
		ID:             uuid.New().String(),
		BusinessName:   req.BusinessName,
		ContactName:    req.ContactName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		AccountManager: req.AccountManager,
		ServiceNote:    req.ServiceNote,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, sl); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, operatorID, "create", "seller", sl.ID, sl.BusinessName)
	}
	return sl, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Seller, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Seller, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, operatorID int64, id string, req UpdateSellerRequest) (*Seller, error) {
	sl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sl.BusinessName = req.BusinessName
	sl.ContactName = req.ContactName
	sl.Email = req.Email
	sl.Phone = req.Phone
	sl.Address = req.Address
	sl.AccountManager = req.AccountManager
	sl.ServiceNote = req.ServiceNote
	sl.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, sl); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, operatorID, "update", "seller", sl.ID, sl.BusinessName)
	}
	return sl, nil
}
