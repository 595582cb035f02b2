package repomanager

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/server/models"
)

// InMemoryRepositoryManager keeps the whole store in process memory. It backs
// tests and throwaway demo authorities; nothing survives a restart.
type InMemoryRepositoryManager struct {
	mu sync.Mutex
	st *memState
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{st: newMemState()}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Repositories() Repositories {
	return m.st.repos(func() func() {
		m.mu.Lock()
		return m.mu.Unlock
	})
}

// WithTx holds the store lock for the whole of fn and restores the previous
// state when fn fails.
func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.st.clone()
	if err := fn(ctx, m.st.repos(func() func() { return func() {} })); err != nil {
		*m.st = *snapshot
		return err
	}
	return nil
}

type memKey struct {
	event string
	id    int64
}

type secretKey struct {
	event  string
	secret string
}

type memState struct {
	events    map[string]models.Event
	items     map[memKey]models.Item
	lists     map[memKey]models.CheckInList
	revoked   map[secretKey]models.RevokedSecret
	positions map[memKey]models.OrderPosition
	checkins  []models.CheckIn
	lastID    int64
}

func newMemState() *memState {
	return &memState{
		events:    make(map[string]models.Event),
		items:     make(map[memKey]models.Item),
		lists:     make(map[memKey]models.CheckInList),
		revoked:   make(map[secretKey]models.RevokedSecret),
		positions: make(map[memKey]models.OrderPosition),
	}
}

func (s *memState) clone() *memState {
	return &memState{
		events:    maps.Clone(s.events),
		items:     maps.Clone(s.items),
		lists:     maps.Clone(s.lists),
		revoked:   maps.Clone(s.revoked),
		positions: maps.Clone(s.positions),
		checkins:  slices.Clone(s.checkins),
		lastID:    s.lastID,
	}
}

func (s *memState) nextID() int64 {
	s.lastID++
	return s.lastID
}

func (s *memState) repos(lock func() func()) Repositories {
	return Repositories{
		Events:       &memEvents{s, lock},
		Items:        &memItems{s, lock},
		CheckInLists: &memLists{s, lock},
		Revoked:      &memRevoked{s, lock},
		Positions:    &memPositions{s, lock},
		CheckIns:     &memCheckIns{s, lock},
	}
}

// page applies f to rows of one event, already sorted by id.
func page[T any](rows []T, updated func(T) time.Time, f models.Filter) (out []T, total int) {
	var matched []T
	for _, r := range rows {
		if f.ModifiedSince != nil && updated(r).Before(*f.ModifiedSince) {
			continue
		}
		matched = append(matched, r)
	}
	total = len(matched)
	if f.Offset >= total {
		return nil, total
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < end {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], total
}

func byEvent[T any](m map[memKey]T, event string) []T {
	keys := make([]memKey, 0, len(m))
	for k := range m {
		if k.event == event {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].id < keys[j].id })
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

type memEvents struct {
	s    *memState
	lock func() func()
}

func (r *memEvents) Upsert(_ context.Context, ev *models.Event) error {
	defer r.lock()()
	r.s.events[ev.Slug] = *ev
	return nil
}

func (r *memEvents) Get(_ context.Context, slug string) (*models.Event, error) {
	defer r.lock()()
	ev, ok := r.s.events[slug]
	if !ok {
		return nil, nil
	}
	return &ev, nil
}

type memItems struct {
	s    *memState
	lock func() func()
}

func (r *memItems) Upsert(_ context.Context, it *models.Item) error {
	defer r.lock()()
	r.s.items[memKey{it.EventSlug, it.ID}] = *it
	return nil
}

func (r *memItems) Get(_ context.Context, event string, id int64) (*models.Item, error) {
	defer r.lock()()
	it, ok := r.s.items[memKey{event, id}]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func itemUpdated(it models.Item) time.Time { return it.UpdatedAt }

func (r *memItems) List(_ context.Context, f models.Filter) ([]models.Item, error) {
	defer r.lock()()
	out, _ := page(byEvent(r.s.items, f.Event), itemUpdated, f)
	return out, nil
}

func (r *memItems) Count(_ context.Context, f models.Filter) (int, error) {
	defer r.lock()()
	_, n := page(byEvent(r.s.items, f.Event), itemUpdated, models.Filter{ModifiedSince: f.ModifiedSince})
	return n, nil
}

type memLists struct {
	s    *memState
	lock func() func()
}

func (r *memLists) Upsert(_ context.Context, l *models.CheckInList) error {
	defer r.lock()()
	r.s.lists[memKey{l.EventSlug, l.ID}] = *l
	return nil
}

func (r *memLists) Get(_ context.Context, event string, id int64) (*models.CheckInList, error) {
	defer r.lock()()
	l, ok := r.s.lists[memKey{event, id}]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func listUpdated(l models.CheckInList) time.Time { return l.UpdatedAt }

func (r *memLists) List(_ context.Context, f models.Filter) ([]models.CheckInList, error) {
	defer r.lock()()
	out, _ := page(byEvent(r.s.lists, f.Event), listUpdated, f)
	return out, nil
}

func (r *memLists) Count(_ context.Context, f models.Filter) (int, error) {
	defer r.lock()()
	_, n := page(byEvent(r.s.lists, f.Event), listUpdated, models.Filter{ModifiedSince: f.ModifiedSince})
	return n, nil
}

type memRevoked struct {
	s    *memState
	lock func() func()
}

func (r *memRevoked) Upsert(_ context.Context, s *models.RevokedSecret) error {
	defer r.lock()()
	k := secretKey{s.EventSlug, s.Secret}
	if prev, ok := r.s.revoked[k]; ok {
		s.ID = prev.ID
	} else {
		s.ID = r.s.nextID()
	}
	r.s.revoked[k] = *s
	return nil
}

func (r *memRevoked) IsRevoked(_ context.Context, event, secret string) (bool, error) {
	defer r.lock()()
	_, ok := r.s.revoked[secretKey{event, secret}]
	return ok, nil
}

func (r *memRevoked) rows(event string) []models.RevokedSecret {
	var out []models.RevokedSecret
	for k, v := range r.s.revoked {
		if k.event == event {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func revokedUpdated(s models.RevokedSecret) time.Time { return s.UpdatedAt }

func (r *memRevoked) List(_ context.Context, f models.Filter) ([]models.RevokedSecret, error) {
	defer r.lock()()
	out, _ := page(r.rows(f.Event), revokedUpdated, f)
	return out, nil
}

func (r *memRevoked) Count(_ context.Context, f models.Filter) (int, error) {
	defer r.lock()()
	_, n := page(r.rows(f.Event), revokedUpdated, models.Filter{ModifiedSince: f.ModifiedSince})
	return n, nil
}

type memPositions struct {
	s    *memState
	lock func() func()
}

func (r *memPositions) Upsert(_ context.Context, p *models.OrderPosition) error {
	defer r.lock()()
	stored := *p
	stored.CheckIns = nil
	r.s.positions[memKey{p.EventSlug, p.ID}] = stored
	return nil
}

func (r *memPositions) GetBySecret(_ context.Context, event, secret string) (*models.OrderPosition, error) {
	defer r.lock()()
	for k, p := range r.s.positions {
		if k.event == event && p.Secret == secret {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memPositions) Touch(_ context.Context, event string, id int64, at time.Time) error {
	defer r.lock()()
	k := memKey{event, id}
	if p, ok := r.s.positions[k]; ok {
		p.UpdatedAt = at
		r.s.positions[k] = p
	}
	return nil
}

func positionUpdated(p models.OrderPosition) time.Time { return p.UpdatedAt }

func (r *memPositions) List(_ context.Context, f models.Filter) ([]models.OrderPosition, error) {
	defer r.lock()()
	out, _ := page(byEvent(r.s.positions, f.Event), positionUpdated, f)
	return out, nil
}

func (r *memPositions) Count(_ context.Context, f models.Filter) (int, error) {
	defer r.lock()()
	_, n := page(byEvent(r.s.positions, f.Event), positionUpdated, models.Filter{ModifiedSince: f.ModifiedSince})
	return n, nil
}

type memCheckIns struct {
	s    *memState
	lock func() func()
}

func (r *memCheckIns) Insert(_ context.Context, c *models.CheckIn) (bool, error) {
	defer r.lock()()
	if c.Nonce != "" && slices.ContainsFunc(r.s.checkins, func(x models.CheckIn) bool { return x.Nonce == c.Nonce }) {
		return false, nil
	}
	c.ID = r.s.nextID()
	r.s.checkins = append(r.s.checkins, *c)
	return true, nil
}

func (r *memCheckIns) GetByNonce(_ context.Context, nonce string) (*models.CheckIn, error) {
	if nonce == "" {
		return nil, nil
	}
	defer r.lock()()
	for _, c := range r.s.checkins {
		if c.Nonce == nonce {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCheckIns) ListByPosition(ctx context.Context, event string, positionID int64) ([]models.CheckIn, error) {
	return r.ListByPositionRange(ctx, event, positionID, positionID)
}

func (r *memCheckIns) ListByPositionRange(_ context.Context, event string, fromID, toID int64) ([]models.CheckIn, error) {
	defer r.lock()()
	var out []models.CheckIn
	for _, c := range r.s.checkins {
		if c.EventSlug == event && c.PositionID >= fromID && c.PositionID <= toID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PositionID != out[j].PositionID {
			return out[i].PositionID < out[j].PositionID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
