package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophscan/internal/clock"
	"github.com/dmitrijs2005/gophscan/internal/server/models"
	"github.com/dmitrijs2005/gophscan/internal/server/repositories/repomanager"
)

// ListQuery selects one page of a listing. Page counts from 1, zero meaning
// the first page. ModifiedSince is the GeneratedAt of an earlier listing.
type ListQuery struct {
	Event         string
	Page          int
	ModifiedSince string
}

// Page is one page of a listing. GeneratedAt is taken before the page's rows
// are read. A client walking several pages keeps the first page's value as
// its next modified_since, so rows changed while later pages were fetched
// show up again in the next listing.
type Page[T any] struct {
	Results     []T
	Count       int
	HasNext     bool
	HasPrevious bool
	GeneratedAt string
}

type lister[T any] interface {
	List(ctx context.Context, f models.Filter) ([]T, error)
	Count(ctx context.Context, f models.Filter) (int, error)
}

// CatalogService serves what scanners download.
type CatalogService struct {
	repos    repomanager.RepositoryManager
	clk      clock.Clock
	pageSize int
}

func NewCatalogService(repos repomanager.RepositoryManager, clk clock.Clock, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &CatalogService{repos: repos, clk: clk, pageSize: pageSize}
}

func (s *CatalogService) GetEvent(ctx context.Context, slug string) (*models.Event, error) {
	ev, err := s.repos.Repositories().Events.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, slug)
	}
	return ev, nil
}

func (s *CatalogService) filter(q ListQuery) (models.Filter, error) {
	if q.Page < 0 {
		return models.Filter{}, fmt.Errorf("%w: page %d", ErrInvalidRequest, q.Page)
	}
	page := max(q.Page, 1)
	f := models.Filter{Event: q.Event, Limit: s.pageSize, Offset: (page - 1) * s.pageSize}
	if q.ModifiedSince != "" {
		since, err := time.Parse(time.RFC3339Nano, q.ModifiedSince)
		if err != nil {
			return models.Filter{}, fmt.Errorf("%w: modified_since %q", ErrInvalidRequest, q.ModifiedSince)
		}
		f.ModifiedSince = &since
	}
	return f, nil
}

func list[T any](ctx context.Context, s *CatalogService, q ListQuery, pick func(repomanager.Repositories) lister[T], fill func(context.Context, repomanager.Repositories, []T) error) (*Page[T], error) {
	generatedAt := s.clk.Now()
	f, err := s.filter(q)
	if err != nil {
		return nil, err
	}

	out := &Page[T]{GeneratedAt: generatedAt.UTC().Format(time.RFC3339Nano), HasPrevious: f.Offset > 0}
	err = s.repos.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		ev, err := r.Events.Get(ctx, q.Event)
		if err != nil {
			return err
		}
		if ev == nil {
			return fmt.Errorf("%w: %s", ErrEventNotFound, q.Event)
		}

		l := pick(r)
		if out.Count, err = l.Count(ctx, f); err != nil {
			return err
		}
		if out.Results, err = l.List(ctx, f); err != nil {
			return err
		}
		if fill != nil && len(out.Results) > 0 {
			return fill(ctx, r, out.Results)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.HasNext = f.Offset+len(out.Results) < out.Count
	return out, nil
}

func (s *CatalogService) ListItems(ctx context.Context, q ListQuery) (*Page[models.Item], error) {
	return list(ctx, s, q, func(r repomanager.Repositories) lister[models.Item] { return r.Items }, nil)
}

func (s *CatalogService) ListCheckInLists(ctx context.Context, q ListQuery) (*Page[models.CheckInList], error) {
	return list(ctx, s, q, func(r repomanager.Repositories) lister[models.CheckInList] { return r.CheckInLists }, nil)
}

func (s *CatalogService) ListRevokedSecrets(ctx context.Context, q ListQuery) (*Page[models.RevokedSecret], error) {
	return list(ctx, s, q, func(r repomanager.Repositories) lister[models.RevokedSecret] { return r.Revoked }, nil)
}

// ListOrderPositions lists positions with their full check-in history.
func (s *CatalogService) ListOrderPositions(ctx context.Context, q ListQuery) (*Page[models.OrderPosition], error) {
	return list(ctx, s, q,
		func(r repomanager.Repositories) lister[models.OrderPosition] { return r.Positions },
		attachCheckIns)
}

func attachCheckIns(ctx context.Context, r repomanager.Repositories, ps []models.OrderPosition) error {
	event := ps[0].EventSlug
	history, err := r.CheckIns.ListByPositionRange(ctx, event, ps[0].ID, ps[len(ps)-1].ID)
	if err != nil {
		return err
	}
	byPos := make(map[int64][]models.CheckIn, len(ps))
	for _, c := range history {
		byPos[c.PositionID] = append(byPos[c.PositionID], c)
	}
	for i := range ps {
		ps[i].CheckIns = byPos[ps[i].ID]
	}
	return nil
}
