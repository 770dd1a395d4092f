package repofake

import (
	"context"
	"sync"
	"time"

	"github.com/Avangel08/furniro-sub001/internal/repository"
)

var _ repository.TokenDenylist = (*Denylist)(nil)

// Denylist is an in-memory TokenDenylist.
type Denylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time

	// Now defaults to time.Now.
	Now func() time.Time
	// BeforeClaim, when set, runs before the mutex is taken.
	BeforeClaim func()
}

// NewDenylist returns an empty denylist.
func NewDenylist() *Denylist {
	return &Denylist{revoked: map[string]time.Time{}}
}

func (d *Denylist) TryRevoke(_ context.Context, jti string, expiresAt time.Time) (bool, error) {
	if d.BeforeClaim != nil {
		d.BeforeClaim()
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if !expiresAt.After(now()) {
		return false, nil
	}
	if _, ok := d.revoked[jti]; ok {
		return false, nil
	}
	d.revoked[jti] = expiresAt
	return true, nil
}

// Len reports how many ids are revoked.
func (d *Denylist) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.revoked)
}
