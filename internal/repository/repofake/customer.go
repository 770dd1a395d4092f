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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo is an in-memory CustomerRepository.
type CustomerRepo struct {
	mu        sync.RWMutex
	byID      map[string]*domain.Customer
	emailID   map[string]string
	addresses map[string][]domain.Address

	Err error
}

// NewCustomerRepo returns an empty repo.
func NewCustomerRepo() *CustomerRepo {
	return &CustomerRepo{
		byID:      map[string]*domain.Customer{},
		emailID:   map[string]string{},
		addresses: map[string][]domain.Address{},
	}
}

func (r *CustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	if _, exists := r.emailID[customer.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	now := time.Now()
	customer.CreatedAt, customer.UpdatedAt = now, now

	stored := *customer
	r.byID[customer.ID] = &stored
	r.emailID[customer.Email] = customer.ID
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *customer
	return &out, nil
}

func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
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

func (r *CustomerRepo) ListAddresses(_ context.Context, customerID string) ([]domain.Address, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Address(nil), r.addresses[customerID]...), nil
}

// AddAddress attaches an address to a customer.
func (r *CustomerRepo) AddAddress(addr domain.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if addr.ID == "" {
		addr.ID = uuid.NewString()
	}
	r.addresses[addr.CustomerID] = append(r.addresses[addr.CustomerID], addr)
}

// SetActive toggles the active flag of a stored customer.
func (r *CustomerRepo) SetActive(id string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if customer, ok := r.byID[id]; ok {
		customer.Active = active
	}
}

// Delete removes a customer.
func (r *CustomerRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if customer, ok := r.byID[id]; ok {
		delete(r.emailID, customer.Email)
		delete(r.byID, id)
	}
}
