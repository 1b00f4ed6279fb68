package requests_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sekolahku/inventaris-api/internal/application/dto"
	"github.com/sekolahku/inventaris-api/internal/application/requests"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/internal/domain/repository"
	"github.com/sekolahku/inventaris-api/internal/domain/workflow"
)

// In-memory store shared by the fake repositories. The fake TxRunner
// snapshots it before running the callback and restores the snapshot on
// error, mirroring the all-or-nothing commit of the real transaction.
type fakeStore struct {
	items       map[string]entity.Item
	consumables map[string]entity.ConsumableRequest
	borrows     map[string]entity.BorrowRequest
	returns     map[string]entity.ReturnRequest
	events      []entity.TransitionEvent
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:       make(map[string]entity.Item),
		consumables: make(map[string]entity.ConsumableRequest),
		borrows:     make(map[string]entity.BorrowRequest),
		returns:     make(map[string]entity.ReturnRequest),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.consumables {
		c.consumables[k] = v
	}
	for k, v := range s.borrows {
		c.borrows[k] = v
	}
	for k, v := range s.returns {
		c.returns[k] = v
	}
	c.events = append(c.events, s.events...)
	return c
}

type fakeItemRepo struct{ s *fakeStore }

func (r fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.s.items[item.ID] = *item
	return nil
}

func (r fakeItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r fakeItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r fakeItemRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	item := r.s.items[id]
	item.Quantity = quantity
	r.s.items[id] = item
	return nil
}

func (r fakeItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.s.items[item.ID] = *item
	return nil
}

func (r fakeItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.s.items {
		item := item
		out = append(out, &item)
	}
	return out, nil
}

func (r fakeItemRepo) Delete(_ context.Context, id string) error {
	delete(r.s.items, id)
	return nil
}

type fakeConsumableRepo struct{ s *fakeStore }

func (r fakeConsumableRepo) Create(_ context.Context, req *entity.ConsumableRequest) error {
	r.s.consumables[req.ID] = *req
	return nil
}

func (r fakeConsumableRepo) GetByID(_ context.Context, id string) (*entity.ConsumableRequest, error) {
	req, ok := r.s.consumables[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r fakeConsumableRepo) GetForUpdate(ctx context.Context, id string) (*entity.ConsumableRequest, error) {
	return r.GetByID(ctx, id)
}

func (r fakeConsumableRepo) Update(_ context.Context, req *entity.ConsumableRequest) error {
	r.s.consumables[req.ID] = *req
	return nil
}

func (r fakeConsumableRepo) List(_ context.Context) ([]*entity.ConsumableRequest, error) {
	var out []*entity.ConsumableRequest
	for _, req := range r.s.consumables {
		req := req
		out = append(out, &req)
	}
	return out, nil
}

func (r fakeConsumableRepo) ListByRequester(_ context.Context, requesterID string) ([]*entity.ConsumableRequest, error) {
	var out []*entity.ConsumableRequest
	for _, req := range r.s.consumables {
		if req.RequesterID == requesterID {
			req := req
			out = append(out, &req)
		}
	}
	return out, nil
}

type fakeBorrowRepo struct{ s *fakeStore }

func (r fakeBorrowRepo) Create(_ context.Context, req *entity.BorrowRequest) error {
	r.s.borrows[req.ID] = *req
	return nil
}

func (r fakeBorrowRepo) GetByID(_ context.Context, id string) (*entity.BorrowRequest, error) {
	req, ok := r.s.borrows[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r fakeBorrowRepo) GetForUpdate(ctx context.Context, id string) (*entity.BorrowRequest, error) {
	return r.GetByID(ctx, id)
}

func (r fakeBorrowRepo) Update(_ context.Context, req *entity.BorrowRequest) error {
	r.s.borrows[req.ID] = *req
	return nil
}

func (r fakeBorrowRepo) List(_ context.Context) ([]*entity.BorrowRequest, error) {
	var out []*entity.BorrowRequest
	for _, req := range r.s.borrows {
		req := req
		out = append(out, &req)
	}
	return out, nil
}

func (r fakeBorrowRepo) ListByRequester(_ context.Context, requesterID string) ([]*entity.BorrowRequest, error) {
	var out []*entity.BorrowRequest
	for _, req := range r.s.borrows {
		if req.RequesterID == requesterID {
			req := req
			out = append(out, &req)
		}
	}
	return out, nil
}

func (r fakeBorrowRepo) SumOutstandingByItem(_ context.Context) (map[string]int, error) {
	out := make(map[string]int)
	for _, req := range r.s.borrows {
		if req.Status == workflow.StatusDiproses {
			out[req.ItemID] += req.RemainingQuantity
		}
	}
	return out, nil
}

type fakeReturnRepo struct{ s *fakeStore }

func (r fakeReturnRepo) Create(_ context.Context, req *entity.ReturnRequest) error {
	r.s.returns[req.ID] = *req
	return nil
}

func (r fakeReturnRepo) GetByID(_ context.Context, id string) (*entity.ReturnRequest, error) {
	req, ok := r.s.returns[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r fakeReturnRepo) GetForUpdate(ctx context.Context, id string) (*entity.ReturnRequest, error) {
	return r.GetByID(ctx, id)
}

func (r fakeReturnRepo) Update(_ context.Context, req *entity.ReturnRequest) error {
	r.s.returns[req.ID] = *req
	return nil
}

func (r fakeReturnRepo) List(_ context.Context) ([]*entity.ReturnRequest, error) {
	var out []*entity.ReturnRequest
	for _, req := range r.s.returns {
		req := req
		out = append(out, &req)
	}
	return out, nil
}

func (r fakeReturnRepo) ListByRequester(_ context.Context, requesterID string) ([]*entity.ReturnRequest, error) {
	var out []*entity.ReturnRequest
	for _, req := range r.s.returns {
		if req.RequesterID == requesterID {
			req := req
			out = append(out, &req)
		}
	}
	return out, nil
}

type fakeLogRepo struct{ s *fakeStore }

func (r fakeLogRepo) Append(_ context.Context, event *entity.TransitionEvent) error {
	r.s.events = append(r.s.events, *event)
	return nil
}

func (r fakeLogRepo) ListByRequest(_ context.Context, kind, requestID string) ([]*entity.TransitionEvent, error) {
	var out []*entity.TransitionEvent
	for _, ev := range r.s.events {
		if ev.RequestKind == kind && ev.RequestID == requestID {
			ev := ev
			out = append(out, &ev)
		}
	}
	return out, nil
}

// fakeTxRunner restores the pre-call snapshot when the callback fails, so
// a failed transition leaves the store exactly as it was.
type fakeTxRunner struct{ s *fakeStore }

func (t fakeTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	consumableRepo repository.ConsumableRequestRepository,
	borrowRepo repository.BorrowRequestRepository,
	returnRepo repository.ReturnRequestRepository,
	logRepo repository.TransitionLogRepository,
) error) error {
	snapshot := t.s.clone()
	err := fn(
		fakeItemRepo{t.s},
		fakeConsumableRepo{t.s},
		fakeBorrowRepo{t.s},
		fakeReturnRepo{t.s},
		fakeLogRepo{t.s},
	)
	if err != nil {
		*t.s = *snapshot
		return err
	}
	return nil
}

// recordingNotifier captures the events published after commit.
type recordingNotifier struct {
	events []*entity.TransitionEvent
}

func (n *recordingNotifier) RequestTransitioned(_ context.Context, event *entity.TransitionEvent) {
	n.events = append(n.events, event)
}

// fixture wires the engine over the in-memory store.
type fixture struct {
	store    *fakeStore
	notifier *recordingNotifier
	uc       *requests.UseCase
}

func newFixture() *fixture {
	store := newFakeStore()
	notifier := &recordingNotifier{}
	uc := requests.NewUseCase(
		fakeTxRunner{store},
		fakeItemRepo{store},
		fakeConsumableRepo{store},
		fakeBorrowRepo{store},
		fakeReturnRepo{store},
		fakeLogRepo{store},
		notifier,
	)
	return &fixture{store: store, notifier: notifier, uc: uc}
}

func (f *fixture) addItem(id, itemType string, quantity int) {
	f.store.items[id] = entity.Item{ID: id, Name: "item " + id, Quantity: quantity, Type: itemType}
}

func (f *fixture) itemQuantity(id string) int {
	return f.store.items[id].Quantity
}

// activeLoan submits a borrow request for the actor and walks it through
// approval and handover, returning the borrow request id.
func (f *fixture) activeLoan(t *testing.T, actor requests.Actor, itemID string, quantity int) string {
	t.Helper()
	ctx := context.Background()
	start := time.Now()
	id, err := f.uc.CreateBorrow(ctx, actor, dto.CreateBorrowRequest{
		ItemID: itemID, Quantity: quantity, BorrowStartDate: start, DueDate: start.AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	require.NoError(t, f.uc.Transition(ctx, workflow.KindBorrow, id, headmaster, workflow.StatusDisetujui, ""))
	require.NoError(t, f.uc.Transition(ctx, workflow.KindBorrow, id, admin, workflow.StatusDiproses, ""))
	return id
}

var (
	admin      = requests.Actor{ID: "admin-1", Role: entity.RoleAdmin}
	headmaster = requests.Actor{ID: "kepsek-1", Role: entity.RoleHeadmaster}
	pengguna   = requests.Actor{ID: "user-1", Role: entity.RolePengguna}
)
