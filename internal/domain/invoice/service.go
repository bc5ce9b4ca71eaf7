package invoice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sellerdesk/internal/domain/audit"
	"sellerdesk/internal/domain/payment"
	"sellerdesk/internal/domain/seller"
	"sellerdesk/internal/pkg/pdf"
)

type PaymentReader interface {
	GetByID(ctx context.Context, id string) (*payment.Payment, error)
}

type SellerReader interface {
	GetByID(ctx context.Context, id string) (*seller.Seller, error)
}

type Service struct {
	repo     Repository
	payments PaymentReader
	sellers  SellerReader
	audit    audit.Recorder
	company  pdf.CompanyData
	now      func() time.Time
}

func NewService(repo Repository, payments PaymentReader, sellers SellerReader, auditRec audit.Recorder, company pdf.CompanyData) *Service {
	return &Service{
		repo:     repo,
		payments: payments,
		sellers:  sellers,
		audit:    auditRec,
		company:  company,
		now:      time.Now,
	}
}

// Generate mints a new invoice for the payment. Numbers are date
// stamped with a crypto-random suffix and carry a unique index, so
// rapid repeated calls cannot collide the way a bare timestamp would.
func (s *Service) Generate(ctx context.Context, operatorID int64, paymentID string) (*Invoice, error) {
	if _, err := s.payments.GetByID(ctx, paymentID); err != nil {
		return nil, err
	}

	number, err := s.newInvoiceNumber()
	if err != nil {
		return nil, err
	}

	inv := &Invoice{
		ID:            uuid.New().String(),
		PaymentID:     paymentID,
		InvoiceNumber: number,
		PDFURL:        fmt.Sprintf("/invoices/%s.pdf", number),
		CreatedAt:     s.now(),
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	if s.audit != nil {
		s.audit.Record(ctx, operatorID, "generate", "invoice", inv.ID, number)
	}
	return inv, nil
}

func (s *Service) ListByPayment(ctx context.Context, paymentID string) ([]*Invoice, error) {
	return s.repo.ListByPaymentID(ctx, paymentID)
}

// Render produces the invoice PDF bytes plus the invoice itself for
// the download filename. Rendering has no side effects; the same
// invoice always renders the same content.
func (s *Service) Render(ctx context.Context, invoiceID string) (*Invoice, []byte, error) {
	inv, err := s.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}

	pay, err := s.payments.GetByID(ctx, inv.PaymentID)
	if err != nil {
		return nil, nil, err
	}

	sl, err := s.sellers.GetByID(ctx, pay.SellerID)
	if err != nil {
		return nil, nil, err
	}

	out, err := pdf.Invoice(pdf.InvoiceData{
		InvoiceNumber: inv.InvoiceNumber,
		IssuedAt:      inv.CreatedAt,
		PaymentDate:   pay.PaymentDate,
		Amount:        pay.Amount,
		Reference:     pay.Reference,
		Company:       s.company,
		Seller: pdf.SellerData{
			BusinessName: sl.BusinessName,
			ContactName:  sl.ContactName,
			Email:        sl.Email,
			Phone:        sl.Phone,
			Address:      sl.Address,
		},
	})
	if err != nil {
		return nil, nil, err
	}
	return inv, out, nil
}

func (s *Service) newInvoiceNumber() (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%s-%s", s.now().UTC().Format("20060102"), hex.EncodeToString(suffix)), nil
}
