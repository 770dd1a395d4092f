package domain

import "time"

// Banner is a storefront promotional banner with an optional display window.
type Banner struct {
	ID        string
	Title     string
	ImageURL  string
	Link      *string
	StartDate *time.Time
	EndDate   *time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShouldBeActive reports whether the banner's window contains now.
// Open-ended bounds are treated as unbounded.
func (b Banner) ShouldBeActive(now time.Time) bool {
	if b.StartDate != nil && now.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}
	return true
}
