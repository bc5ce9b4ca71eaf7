package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockOperatorRepo struct {
	operators map[string]*Operator
}

func newMockOperatorRepo() *mockOperatorRepo {
	return &mockOperatorRepo{operators: map[string]*Operator{}}
}

func (m *mockOperatorRepo) Create(ctx context.Context, o *Operator) error {
	o.ID = int64(len(m.operators) + 1)
	m.operators[o.Email] = o
	return nil
}

func (m *mockOperatorRepo) GetByEmail(ctx context.Context, email string) (*Operator, error) {
	o, ok := m.operators[email]
	if !ok {
		return nil, ErrOperatorNotFound
	}
	return o, nil
}

func (m *mockOperatorRepo) GetByID(ctx context.Context, id int64) (*Operator, error) {
	for _, o := range m.operators {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrOperatorNotFound
}

func (m *mockOperatorRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.operators[email]
	return ok, nil
}

type mockJWT struct{}

func (mockJWT) GenerateToken(operatorID int64, email string) (string, error) {
	return "token-for-test", nil
}

func TestLogin(t *testing.T) {
	repo := newMockOperatorRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.operators["ops@sellerdesk.example"] = &Operator{
		ID:           7,
		Email:        "ops@sellerdesk.example",
		PasswordHash: string(hash),
	}

	svc := NewService(repo, mockJWT{})

	operator, token, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Ops@sellerdesk.example",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), operator.ID)
	require.NotEmpty(t, token)

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "ops@sellerdesk.example",
		Password: "wrong",
	})
	require.True(t, errors.Is(err, ErrInvalidCredentials))

	_, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@sellerdesk.example",
		Password: "correct-horse",
	})
	require.True(t, errors.Is(err, ErrInvalidCredentials), "unknown email must not be distinguishable from a bad password")
}

func TestCreateOperatorRejectsDuplicateEmail(t *testing.T) {
	repo := newMockOperatorRepo()
	svc := NewService(repo, mockJWT{})

	_, err := svc.CreateOperator(context.Background(), "Dup@Example.com", "secret123", "First")
	require.NoError(t, err)

	_, err = svc.CreateOperator(context.Background(), "dup@example.com", "secret123", "Second")
	require.True(t, errors.Is(err, ErrEmailAlreadyExists))
}
