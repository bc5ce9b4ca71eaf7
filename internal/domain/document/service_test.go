package document

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"sellerdesk/internal/domain/seller"
)

type mockDocRepo struct {
	docs map[string]*Document
}

func newMockDocRepo() *mockDocRepo {
	return &mockDocRepo{docs: map[string]*Document{}}
}

func (m *mockDocRepo) Create(ctx context.Context, d *Document) error {
	m.docs[d.ID] = d
	return nil
}

func (m *mockDocRepo) GetByID(ctx context.Context, id string) (*Document, error) {
	d, ok := m.docs[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return d, nil
}

func (m *mockDocRepo) Update(ctx context.Context, d *Document) error {
	m.docs[d.ID] = d
	return nil
}

func (m *mockDocRepo) Delete(ctx context.Context, id string) error {
	delete(m.docs, id)
	return nil
}

func (m *mockDocRepo) ListBySellerID(ctx context.Context, sellerID string) ([]*Document, error) {
	var out []*Document
	for _, d := range m.docs {
		if d.SellerID == sellerID {
			out = append(out, d)
		}
	}
	return out, nil
}

type mockSellerReader struct {
	known map[string]bool
}

func (m *mockSellerReader) GetByID(ctx context.Context, id string) (*seller.Seller, error) {
	if !m.known[id] {
		return nil, seller.ErrSellerNotFound
	}
	return &seller.Seller{ID: id}, nil
}

func TestCreateCarriesSellerID(t *testing.T) {
	repo := newMockDocRepo()
	svc := NewService(repo, &mockSellerReader{known: map[string]bool{"s-1": true}})

	d, err := svc.Create(context.Background(), "s-1", CreateDocumentRequest{
		FileName: "kyc.pdf",
		FileURL:  "https://x/kyc.pdf",
		Tags:     "KYC",
	})
	require.NoError(t, err)
	require.Equal(t, "s-1", d.SellerID)
	require.NotEmpty(t, d.ID)
	require.Equal(t, "KYC", d.Tags)
}

func TestCreateRejectsUnknownSeller(t *testing.T) {
	svc := NewService(newMockDocRepo(), &mockSellerReader{known: map[string]bool{}})

	_, err := svc.Create(context.Background(), "ghost", CreateDocumentRequest{
		FileName: "a.pdf",
		FileURL:  "https://x/a.pdf",
	})
	require.True(t, errors.Is(err, seller.ErrSellerNotFound))
}

func TestUpdateAndDelete(t *testing.T) {
	repo := newMockDocRepo()
	svc := NewService(repo, &mockSellerReader{known: map[string]bool{"s-1": true}})

	d, err := svc.Create(context.Background(), "s-1", CreateDocumentRequest{
		FileName: "old.pdf",
		FileURL:  "https://x/old.pdf",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), d.ID, UpdateDocumentRequest{
		FileName: "new.pdf",
		FileURL:  "https://x/new.pdf",
		Tags:     "contract",
	})
	require.NoError(t, err)
	require.Equal(t, "new.pdf", updated.FileName)
	require.Equal(t, "s-1", updated.SellerID, "ownership never changes on edit")

	require.NoError(t, svc.Delete(context.Background(), d.ID))
	err = svc.Delete(context.Background(), d.ID)
	require.True(t, errors.Is(err, ErrDocumentNotFound))
}
