package repofake

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Avangel08/furniro-sub001/internal/domain"
	"github.com/Avangel08/furniro-sub001/internal/repository"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo is an in-memory StaffRepository.
type StaffRepo struct {
	mu      sync.RWMutex
	byID    map[string]*domain.StaffUser
	emailID map[string]string

	// Err, when set, is returned by every call.
	Err error
}

// NewStaffRepo returns an empty repo.
func NewStaffRepo() *StaffRepo {
	return &StaffRepo{byID: map[string]*domain.StaffUser{}, emailID: map[string]string{}}
}

func (r *StaffRepo) Create(_ context.Context, staff *domain.StaffUser) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	staff.Email = strings.ToLower(strings.TrimSpace(staff.Email))
	if _, exists := r.emailID[staff.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	now := time.Now()
	staff.CreatedAt, staff.UpdatedAt = now, now

	stored := *staff
	r.byID[staff.ID] = &stored
	r.emailID[staff.Email] = staff.ID
	return nil
}

func (r *StaffRepo) GetByID(_ context.Context, id string) (*domain.StaffUser, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	staff, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *staff
	return &out, nil
}

func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	id, ok := r.emailID[strings.ToLower(strings.TrimSpace(email))]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *StaffRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	staff, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	staff.LastLogin = &at
	return nil
}

// SetActive toggles the active flag of a stored staff user.
func (r *StaffRepo) SetActive(id string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if staff, ok := r.byID[id]; ok {
		staff.Active = active
	}
}

// Delete removes a staff user.
func (r *StaffRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if staff, ok := r.byID[id]; ok {
		delete(r.emailID, staff.Email)
		delete(r.byID, id)
	}
}
