package uploadlink

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sellerdesk/internal/domain/audit"
	"sellerdesk/internal/domain/document"
	"sellerdesk/internal/domain/seller"
)

const DefaultTTL = 7 * 24 * time.Hour

// tokenBytes gives 256 bits of entropy per token.
const tokenBytes = 32

type SellerReader interface {
	GetByID(ctx context.Context, id string) (*seller.Seller, error)
}

type Service struct {
	repo    Repository
	sellers SellerReader
	audit   audit.Recorder
	ttl     time.Duration
	now     func() time.Time
}

func NewService(repo Repository, sellers SellerReader, auditRec audit.Recorder, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo:    repo,
		sellers: sellers,
		audit:   auditRec,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue grants a fresh single-use link for the seller. There is no cap
// on outstanding links; each issuance is an independent capability.
func (s *Service) Issue(ctx context.Context, operatorID int64, sellerID string) (*UploadLink, error) {
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	link := &UploadLink{
		ID:        uuid.New().String(),
		SellerID:  sellerID,
		Token:     token,
		ExpiresAt: now.Add(s.ttl),
		Used:      false,
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, operatorID, "issue", "upload_link", link.ID, "seller "+sellerID)
	}
	return link, nil
}

// Redeem consumes the link and returns the created document. All
// validation and the write happen atomically in the repository; the
// service never sees a half-applied redemption.
func (s *Service) Redeem(ctx context.Context, req RedeemRequest) (*document.Document, error) {
	doc := &document.Document{
		ID:        uuid.New().String(),
		FileName:  req.FileName,
		FileURL:   req.FileURL,
		Tags:      req.Tags,
		CreatedAt: s.now(),
	}

	if err := s.repo.Consume(ctx, req.Token, s.now(), doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// List returns the seller's links newest-first with derived status.
func (s *Service) List(ctx context.Context, sellerID string) ([]LinkView, error) {
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	links, err := s.repo.ListBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]LinkView, 0, len(links))
	for _, l := range links {
		views = append(views, LinkView{
			ID:        l.ID,
			SellerID:  l.SellerID,
			Token:     l.Token,
			ExpiresAt: l.ExpiresAt,
			Status:    l.StatusAt(now),
			CreatedAt: l.CreatedAt,
		})
	}
	return views, nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate upload token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
