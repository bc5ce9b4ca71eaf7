package uploadlink

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellerdesk/internal/domain/document"
	"sellerdesk/internal/domain/seller"
)

// mockLinkRepo mirrors the storage-level guarantee of the real
// repository: Consume is atomic, the used transition wins once.
type mockLinkRepo struct {
	mu    sync.Mutex
	links map[string]*UploadLink
	docs  []*document.Document
}

func newMockLinkRepo() *mockLinkRepo {
	return &mockLinkRepo{links: map[string]*UploadLink{}}
}

func (m *mockLinkRepo) Create(ctx context.Context, l *UploadLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[l.Token] = l
	return nil
}

func (m *mockLinkRepo) ListBySellerID(ctx context.Context, sellerID string) ([]*UploadLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*UploadLink
	for _, l := range m.links {
		if l.SellerID == sellerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockLinkRepo) Consume(ctx context.Context, token string, now time.Time, doc *document.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.links[token]
	if !ok {
		return ErrLinkNotFound
	}
	if !now.Before(l.ExpiresAt) {
		return ErrLinkExpired
	}
	if l.Used {
		return ErrLinkUsed
	}
	l.Used = true
	doc.SellerID = l.SellerID
	m.docs = append(m.docs, doc)
	return nil
}

type knownSellers map[string]bool

func (k knownSellers) GetByID(ctx context.Context, id string) (*seller.Seller, error) {
	if !k[id] {
		return nil, seller.ErrSellerNotFound
	}
	return &seller.Seller{ID: id, BusinessName: "Acme"}, nil
}

func newTestService(repo *mockLinkRepo) *Service {
	return NewService(repo, knownSellers{"acme": true}, nil, DefaultTTL)
}

func TestIssueSetsSevenDayExpiry(t *testing.T) {
	repo := newMockLinkRepo()
	svc := newTestService(repo)
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	link, err := svc.Issue(context.Background(), 1, "acme")
	require.NoError(t, err)
	assert.Equal(t, issued.Add(7*24*time.Hour), link.ExpiresAt)
	assert.False(t, link.Used)
	assert.Len(t, link.Token, 64, "32 random bytes hex-encoded")
}

func TestIssueUnknownSeller(t *testing.T) {
	svc := newTestService(newMockLinkRepo())
	_, err := svc.Issue(context.Background(), 1, "ghost")
	require.True(t, errors.Is(err, seller.ErrSellerNotFound))
}

func TestTokensDoNotCollide(t *testing.T) {
	seen := make(map[string]bool, 5000)
	for i := 0; i < 5000; i++ {
		token, err := generateToken()
		require.NoError(t, err)
		require.False(t, seen[token], "token collision at sample %d", i)
		seen[token] = true
	}
}

func TestRedeemOnceThenAlreadyUsed(t *testing.T) {
	repo := newMockLinkRepo()
	svc := newTestService(repo)

	link, err := svc.Issue(context.Background(), 1, "acme")
	require.NoError(t, err)

	doc, err := svc.Redeem(context.Background(), RedeemRequest{
		Token:    link.Token,
		FileName: "kyc.pdf",
		FileURL:  "https://x/kyc.pdf",
		Tags:     "KYC",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme", doc.SellerID)
	assert.Equal(t, "KYC", doc.Tags)

	_, err = svc.Redeem(context.Background(), RedeemRequest{
		Token:    link.Token,
		FileName: "kyc.pdf",
		FileURL:  "https://x/kyc.pdf",
	})
	require.True(t, errors.Is(err, ErrLinkUsed))
	assert.Len(t, repo.docs, 1, "second redeem must not create a document")
}

func TestRedeemExpiredLink(t *testing.T) {
	repo := newMockLinkRepo()
	svc := newTestService(repo)

	link, err := svc.Issue(context.Background(), 1, "acme")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(DefaultTTL + time.Minute) }

	_, err = svc.Redeem(context.Background(), RedeemRequest{
		Token:    link.Token,
		FileName: "late.pdf",
		FileURL:  "https://x/late.pdf",
	})
	require.True(t, errors.Is(err, ErrLinkExpired), "expired link must fail even while unused")
	assert.Empty(t, repo.docs)
}

func TestRedeemUnknownToken(t *testing.T) {
	svc := newTestService(newMockLinkRepo())
	_, err := svc.Redeem(context.Background(), RedeemRequest{
		Token:    "deadbeef",
		FileName: "a.pdf",
		FileURL:  "https://x/a.pdf",
	})
	require.True(t, errors.Is(err, ErrLinkNotFound))
}

func TestConcurrentRedeemHasExactlyOneWinner(t *testing.T) {
	repo := newMockLinkRepo()
	svc := newTestService(repo)

	link, err := svc.Issue(context.Background(), 1, "acme")
	require.NoError(t, err)

	const workers = 32
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Redeem(context.Background(), RedeemRequest{
				Token:    link.Token,
				FileName: "kyc.pdf",
				FileURL:  "https://x/kyc.pdf",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, alreadyUsed int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrLinkUsed):
			alreadyUsed++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, alreadyUsed)
	assert.Len(t, repo.docs, 1, "the token must yield exactly one document")
}

func TestListDerivesStatus(t *testing.T) {
	repo := newMockLinkRepo()
	svc := newTestService(repo)

	active, err := svc.Issue(context.Background(), 1, "acme")
	require.NoError(t, err)
	consumed, err := svc.Issue(context.Background(), 1, "acme")
	require.NoError(t, err)
	stale, err := svc.Issue(context.Background(), 1, "acme")
	require.NoError(t, err)

	_, err = svc.Redeem(context.Background(), RedeemRequest{
		Token:    consumed.Token,
		FileName: "a.pdf",
		FileURL:  "https://x/a.pdf",
	})
	require.NoError(t, err)
	repo.links[stale.Token].ExpiresAt = time.Now().Add(-time.Hour)

	views, err := svc.List(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, views, 3)

	byToken := map[string]Status{}
	for _, v := range views {
		byToken[v.Token] = v.Status
	}
	assert.Equal(t, StatusActive, byToken[active.Token])
	assert.Equal(t, StatusUsed, byToken[consumed.Token])
	assert.Equal(t, StatusExpired, byToken[stale.Token])
}
