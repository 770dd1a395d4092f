package repofake

import (
	"context"
	"sort"
	"sync"

	"github.com/Avangel08/furniro-sub001/internal/domain"
	"github.com/Avangel08/furniro-sub001/internal/repository"
)

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo is an in-memory BannerRepository.
type BannerRepo struct {
	mu      sync.RWMutex
	banners map[string]*domain.Banner

	Err error
}

// NewBannerRepo seeds the repo with banners.
func NewBannerRepo(banners ...domain.Banner) *BannerRepo {
	r := &BannerRepo{banners: map[string]*domain.Banner{}}
	for i := range banners {
		b := banners[i]
		r.banners[b.ID] = &b
	}
	return r
}

func (r *BannerRepo) ListScheduled(_ context.Context) ([]domain.Banner, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Banner
	for _, b := range r.banners {
		if b.StartDate != nil || b.EndDate != nil {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *BannerRepo) SetActive(_ context.Context, id string, active bool) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.banners[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Active = active
	return nil
}

// Get returns a copy of a stored banner.
func (r *BannerRepo) Get(id string) (domain.Banner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.banners[id]
	if !ok {
		return domain.Banner{}, false
	}
	return *b, true
}
