package reports

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/cyberportal/api/internal/features/catalog"
	"github.com/cyberportal/api/internal/features/realtime"
	apperrors "github.com/cyberportal/api/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore mirrors the store's conditional-write semantics in memory: the
// version check and the mutation happen under one lock, so two callers with
// the same expected version can never both succeed.
type fakeStore struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]*Report
	err  error // when set, every call fails with it
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[primitive.ObjectID]*Report)}
}

func (f *fakeStore) Create(_ context.Context, report *Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}

	report.ID = primitive.NewObjectID()
	report.Version = 1
	report.StatusID, _ = catalog.StatusIDByCode(catalog.StatusNotOpened)
	stored := *report
	f.docs[report.ID] = &stored
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id primitive.ObjectID) (*Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	doc, ok := f.docs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return joined(doc), nil
}

func (f *fakeStore) List(_ context.Context, filter ListFilter) ([]Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	results := make([]Report, 0, len(f.docs))
	for _, doc := range f.docs {
		if !matchesFilter(doc, filter) {
			continue
		}
		results = append(results, *joined(doc))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id primitive.ObjectID, expectedVersion int64, statusID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}

	doc, ok := f.docs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if doc.Version != expectedVersion {
		return apperrors.ErrConflict
	}
	doc.StatusID = statusID
	doc.Version++
	return nil
}

// matchesFilter applies the listing filter the way the store's query does:
// an exact status code (unknown codes match nothing) ANDed with a
// case-insensitive substring over name, phone and location.
func matchesFilter(doc *Report, filter ListFilter) bool {
	if filter.StatusCode != "" {
		id, ok := catalog.StatusIDByCode(filter.StatusCode)
		if !ok || doc.StatusID != id {
			return false
		}
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(doc.ReporterName), needle) &&
			!strings.Contains(strings.ToLower(doc.Phone), needle) &&
			!strings.Contains(strings.ToLower(doc.Location), needle) {
			return false
		}
	}
	return true
}

// joined copies a stored document and fills in the catalog display fields,
// like the production aggregation does.
func joined(doc *Report) *Report {
	out := *doc
	for _, s := range catalog.DefaultStatuses {
		if s.ID == out.StatusID {
			out.StatusCode = s.Code
		}
	}
	for _, t := range catalog.DefaultThreatTypes {
		if t.ID == out.TypeID {
			out.ThreatType = t.Name
		}
	}
	return &out
}

type fakePublisher struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (f *fakePublisher) Publish(name string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, realtime.Event{Name: name, Payload: payload})
}

func (f *fakePublisher) snapshot() []realtime.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]realtime.Event(nil), f.events...)
}

func submitOne(t *testing.T, svc *Service) *Report {
	t.Helper()
	report, err := svc.Submit(context.Background(), CreateReportRequest{
		Name:        "Asha Verma",
		Phone:       "+91-9000000001",
		Location:    "Jaipur, Rajasthan",
		TypeID:      2,
		Description: "Phishing mail impersonating my bank",
	})
	require.NoError(t, err)
	return report
}

func TestSubmitStartsAtVersionOneNotOpened(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := NewService(store, pub)

	report := submitOne(t, svc)

	require.False(t, report.ID.IsZero())
	require.Equal(t, int64(1), report.Version)
	require.Equal(t, catalog.StatusNotOpened, report.StatusCode)
	require.Equal(t, "Phishing", report.ThreatType)
	require.Equal(t, 0, report.Priority)

	events := pub.snapshot()
	require.Len(t, events, 1)
	require.Equal(t, realtime.EventReportNew, events[0].Name)
	require.Equal(t, report, events[0].Payload)
}

func TestSubmitUnknownThreatTypeRejected(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := NewService(store, pub)

	_, err := svc.Submit(context.Background(), CreateReportRequest{
		Name:        "Asha Verma",
		Phone:       "+91-9000000001",
		Location:    "Jaipur",
		TypeID:      42,
		Description: "Something odd",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Empty(t, pub.snapshot())
	require.Empty(t, store.docs)
}

func TestTransitionBumpsVersionAndBroadcastsOnce(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := NewService(store, pub)
	created := submitOne(t, svc)

	updated, err := svc.Transition(context.Background(), created.ID.Hex(), 1, catalog.StatusUnderProcess)
	require.NoError(t, err)
	require.Equal(t, int64(2), updated.Version)
	require.Equal(t, catalog.StatusUnderProcess, updated.StatusCode)

	// Read-after-write sees the new state.
	got, err := store.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version)
	require.Equal(t, catalog.StatusUnderProcess, got.StatusCode)

	events := pub.snapshot()
	require.Len(t, events, 2) // one report:new, one report:updated
	require.Equal(t, realtime.EventReportUpdated, events[1].Name)
	require.Equal(t, updated, events[1].Payload)
}

func TestStaleVersionConflictLeavesStateUntouched(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := NewService(store, pub)
	created := submitOne(t, svc)

	_, err := svc.Transition(context.Background(), created.ID.Hex(), 1, catalog.StatusUnderProcess)
	require.NoError(t, err)

	// Retrying the same call without re-reading must conflict.
	_, err = svc.Transition(context.Background(), created.ID.Hex(), 1, catalog.StatusUnderProcess)
	require.ErrorIs(t, err, apperrors.ErrConflict)

	got, err := store.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version)
	require.Equal(t, catalog.StatusUnderProcess, got.StatusCode)

	// The rejected transition broadcast nothing.
	require.Len(t, pub.snapshot(), 2)
}

func TestTransitionUnknownReportNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), &fakePublisher{})

	_, err := svc.Transition(context.Background(), primitive.NewObjectID().Hex(), 1, catalog.StatusResolved)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// A malformed id cannot name any report either.
	_, err = svc.Transition(context.Background(), "not-an-id", 1, catalog.StatusResolved)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransitionUnknownStatusRejected(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := NewService(store, pub)
	created := submitOne(t, svc)

	_, err := svc.Transition(context.Background(), created.ID.Hex(), 1, "CLOSED")
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Len(t, pub.snapshot(), 1)
}

func TestResolvedIsNotTerminal(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakePublisher{})
	created := submitOne(t, svc)

	resolved, err := svc.Resolve(context.Background(), created.ID.Hex(), 1)
	require.NoError(t, err)
	require.Equal(t, catalog.StatusResolved, resolved.StatusCode)

	reopened, err := svc.Transition(context.Background(), created.ID.Hex(), 2, catalog.StatusNotOpened)
	require.NoError(t, err)
	require.Equal(t, catalog.StatusNotOpened, reopened.StatusCode)
	require.Equal(t, int64(3), reopened.Version)
}

func TestConcurrentSameVersionExactlyOneWins(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := NewService(store, pub)
	created := submitOne(t, svc)

	const workers = 8
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Transition(context.Background(), created.ID.Hex(), 1, catalog.StatusUnderProcess)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case err == apperrors.ErrConflict:
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, wins)
	require.Equal(t, workers-1, conflicts)

	got, err := store.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.Version) // expectedVersion+1, never skipped

	require.Len(t, pub.snapshot(), 2) // one create, one update
}

func TestTransientFailurePublishesNothing(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := NewService(store, pub)
	created := submitOne(t, svc)

	store.err = apperrors.ErrTransient
	_, err := svc.Transition(context.Background(), created.ID.Hex(), 1, catalog.StatusResolved)
	require.ErrorIs(t, err, apperrors.ErrTransient)
	require.Len(t, pub.snapshot(), 1)

	store.err = nil
	got, err := store.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Version)
}

func TestListFilterCombinesStatusAndSearch(t *testing.T) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := NewService(store, pub)

	_, err := svc.Submit(context.Background(), CreateReportRequest{
		Name:        "Ravi Kumar",
		Phone:       "+91-9000000002",
		Location:    "Mumbai, Maharashtra",
		TypeID:      1,
		Description: "Fraudulent UPI collect requests",
	})
	require.NoError(t, err)

	resolved := submitOne(t, svc) // "Asha Verma", Jaipur
	_, err = svc.Resolve(context.Background(), resolved.ID.Hex(), 1)
	require.NoError(t, err)

	// Status and search are ANDed: only the resolved Jaipur report matches.
	got, err := svc.List(context.Background(), ListFilter{StatusCode: catalog.StatusResolved, Search: "Jai"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, resolved.ID, got[0].ID)
	require.Equal(t, catalog.StatusResolved, got[0].StatusCode)

	// Same search under a status the report no longer has matches nothing.
	got, err = svc.List(context.Background(), ListFilter{StatusCode: catalog.StatusNotOpened, Search: "Jai"})
	require.NoError(t, err)
	require.Empty(t, got)

	// Search is case-insensitive and spans phone too.
	got, err = svc.List(context.Background(), ListFilter{Search: "9000000002"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Ravi Kumar", got[0].ReporterName)
}
