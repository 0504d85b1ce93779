package reports

import (
	"context"
	"fmt"

	"github.com/cyberportal/api/internal/features/catalog"
	"github.com/cyberportal/api/internal/features/realtime"
	apperrors "github.com/cyberportal/api/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface the service needs. Satisfied by
// *Repository in production and by a fake in tests.
type Store interface {
	Create(ctx context.Context, report *Report) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Report, error)
	List(ctx context.Context, filter ListFilter) ([]Report, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, expectedVersion int64, statusID int) error
}

// Publisher pushes events to connected dashboards. Satisfied by
// *realtime.Hub.
type Publisher interface {
	Publish(event string, payload any)
}

// Service is the transition engine plus the publish-after-commit wiring.
// Publish happens synchronously after a successful write, on the same
// control path, so per-report event order follows commit order; a failed or
// conflicted mutation publishes nothing.
type Service struct {
	store     Store
	publisher Publisher
}

func NewService(store Store, publisher Publisher) *Service {
	return &Service{store: store, publisher: publisher}
}

// Submit creates a report (version 1, NOT_OPENED) and broadcasts the full
// joined record as report:new.
func (s *Service) Submit(ctx context.Context, req CreateReportRequest) (*Report, error) {
	if !catalog.ValidThreatTypeID(req.TypeID) {
		return nil, fmt.Errorf("%w: unknown threat type %d", apperrors.ErrValidation, req.TypeID)
	}

	report := &Report{
		ReporterName: req.Name,
		Phone:        req.Phone,
		Location:     req.Location,
		Description:  req.Description,
		TypeID:       req.TypeID,
		EvidenceURL:  req.EvidenceURL,
	}
	if err := s.store.Create(ctx, report); err != nil {
		return nil, err
	}

	full, err := s.store.GetByID(ctx, report.ID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(realtime.EventReportNew, full)
	return full, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Report, error) {
	return s.store.List(ctx, filter)
}

// Transition applies (id, expectedVersion, targetStatus). Any-to-any moves
// among the three codes are allowed; RESOLVED is not terminal. Exactly one
// of two concurrent callers with the same expected version succeeds; the
// other observes ErrConflict and nothing is broadcast for it.
func (s *Service) Transition(ctx context.Context, id string, expectedVersion int64, targetStatus string) (*Report, error) {
	statusID, ok := catalog.StatusIDByCode(targetStatus)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, targetStatus)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot name any report.
		return nil, apperrors.ErrNotFound
	}

	if err := s.store.UpdateStatus(ctx, oid, expectedVersion, statusID); err != nil {
		return nil, err
	}

	full, err := s.store.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(realtime.EventReportUpdated, full)
	return full, nil
}

// Resolve is Transition with the target fixed to RESOLVED.
func (s *Service) Resolve(ctx context.Context, id string, expectedVersion int64) (*Report, error) {
	return s.Transition(ctx, id, expectedVersion, catalog.StatusResolved)
}
