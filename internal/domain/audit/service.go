package audit

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

const defaultListLimit = 200

// Recorder is the narrow interface other services depend on. Write
// failures are logged, never propagated: an audit miss must not fail
// the operation being audited.
type Recorder interface {
	Record(ctx context.Context, operatorID int64, action, entityType, entityID, details string)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, operatorID int64, action, entityType, entityID, details string) {
	entry := &Entry{
		ID:         uuid.New().String(),
		OperatorID: operatorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("audit_write_failed action=%s entity_type=%s entity_id=%s err=%v", action, entityType, entityID, err)
	}
}

func (s *Service) List(ctx context.Context) ([]*Entry, error) {
	return s.repo.List(ctx, defaultListLimit)
}
