package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(operatorID int64, email string) (string, error)
}

// Service contains the operator authentication logic.
type Service struct {
	operators Repository
	jwt       jwtService
}

func NewService(operators Repository, jwt jwtService) *Service {
	return &Service{operators: operators, jwt: jwt}
}

// Login verifies credentials and returns the operator plus a signed
// access token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Operator, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	operator, err := s.operators.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(operator.ID, operator.Email)
	if err != nil {
		return nil, "", err
	}

	return operator, token, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Operator, error) {
	return s.operators.GetByID(ctx, id)
}

// CreateOperator provisions a new operator account. Used by cmd/seed;
// there is no HTTP registration route.
func (s *Service) CreateOperator(ctx context.Context, email, password, name string) (*Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.operators.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	operator := &Operator{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.operators.Create(ctx, operator); err != nil {
		return nil, err
	}
	return operator, nil
}
