package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

// StaffRepository handles persistence for back-office users.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffUser) error
	GetByID(ctx context.Context, id string) (*domain.StaffUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

const staffColumns = `id, name, email, password_hash, role, is_active, last_login, created_at, updated_at`

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffUser) error {
	const query = `
        INSERT INTO staff_users (name, email, password_hash, role, is_active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`

	staff.Email = strings.ToLower(strings.TrimSpace(staff.Email))
	err := r.pool.QueryRow(ctx, query,
		staff.Name,
		staff.Email,
		staff.PasswordHash,
		staff.Role,
		staff.Active,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
	return mapError(err)
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_users WHERE id=$1`
	return r.scanOne(ctx, query, id)
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_users WHERE email=$1`
	return r.scanOne(ctx, query, strings.ToLower(strings.TrimSpace(email)))
}

func (r *staffRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE staff_users SET last_login=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, at, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *staffRepository) scanOne(ctx context.Context, query string, arg any) (*domain.StaffUser, error) {
	var staff domain.StaffUser
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.Name,
		&staff.Email,
		&staff.PasswordHash,
		&staff.Role,
		&staff.Active,
		&staff.LastLogin,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, mapError(err)
	}
	return &staff, nil
}
