package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

// CustomerRepository handles persistence for storefront customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	ListAddresses(ctx context.Context, customerID string) ([]domain.Address, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

const customerColumns = `id, name, email, password_hash, phone, is_active, created_at, updated_at`

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (name, email, password_hash, phone, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	err := r.pool.QueryRow(ctx, query,
		customer.Name,
		customer.Email,
		customer.PasswordHash,
		customer.Phone,
		customer.Active,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	return mapError(err)
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email=$1`
	return r.scanOne(ctx, query, strings.ToLower(strings.TrimSpace(email)))
}

func (r *customerRepository) ListAddresses(ctx context.Context, customerID string) ([]domain.Address, error) {
	const query = `
        SELECT id, customer_id, full_name, line1, line2, city, state, postal_code, country, phone,
               is_default_shipping, is_default_billing, created_at
        FROM customer_addresses WHERE customer_id=$1
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		var addr domain.Address
		if err := rows.Scan(
			&addr.ID,
			&addr.CustomerID,
			&addr.FullName,
			&addr.Line1,
			&addr.Line2,
			&addr.City,
			&addr.State,
			&addr.PostalCode,
			&addr.Country,
			&addr.Phone,
			&addr.IsDefaultShipping,
			&addr.IsDefaultBilling,
			&addr.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, addr)
	}
	return result, rows.Err()
}

func (r *customerRepository) scanOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.PasswordHash,
		&customer.Phone,
		&customer.Active,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &customer, nil
}
