package document

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sellerdesk/internal/domain/seller"
)

// SellerReader is the slice of the seller repository this service
// needs to confirm a document's owner exists.
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

// Create records document metadata for a seller. The operator path
// goes through here; the anonymous path goes through the upload-link
// redeem flow, which writes the document inside its own transaction.
func (s *Service) Create(ctx context.Context, sellerID string, req CreateDocumentRequest) (*Document, error) {
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	d := &Document{
		ID:        uuid.New().String(),
		SellerID:  sellerID,
		FileName:  req.FileName,
		FileURL:   req.FileURL,
		Tags:      req.Tags,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListBySeller(ctx context.Context, sellerID string) ([]*Document, error) {
	return s.repo.ListBySellerID(ctx, sellerID)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateDocumentRequest) (*Document, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.FileName = req.FileName
	d.FileURL = req.FileURL
	d.Tags = req.Tags

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
