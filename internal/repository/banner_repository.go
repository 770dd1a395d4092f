package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

// BannerRepository exposes the banner queries the scheduler needs.
type BannerRepository interface {
	ListScheduled(ctx context.Context) ([]domain.Banner, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type bannerRepository struct {
	pool *pgxpool.Pool
}

// NewBannerRepository constructs repository.
func NewBannerRepository(pool *pgxpool.Pool) BannerRepository {
	return &bannerRepository{pool: pool}
}

// ListScheduled returns banners that have at least one window bound.
// Unbounded banners are switched on and off by hand and never returned.
func (r *bannerRepository) ListScheduled(ctx context.Context) ([]domain.Banner, error) {
	const query = `
        SELECT id, title, image_url, link, start_date, end_date, is_active, created_at, updated_at
        FROM banners
        WHERE start_date IS NOT NULL OR end_date IS NOT NULL
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Banner
	for rows.Next() {
		var b domain.Banner
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.ImageURL,
			&b.Link,
			&b.StartDate,
			&b.EndDate,
			&b.Active,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *bannerRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE banners SET is_active=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, active, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
