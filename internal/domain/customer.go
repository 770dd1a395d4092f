package domain

import "time"

// Customer is a storefront shopper.
type Customer struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Address is a saved customer address.
type Address struct {
	ID                string
	CustomerID        string
	FullName          string
	Line1             string
	Line2             *string
	City              string
	State             *string
	PostalCode        string
	Country           string
	Phone             *string
	IsDefaultShipping bool
	IsDefaultBilling  bool
	CreatedAt         time.Time
}

// DefaultShipping returns the address flagged as default shipping, if any.
func DefaultShipping(addresses []Address) *Address {
	for i := range addresses {
		if addresses[i].IsDefaultShipping {
			return &addresses[i]
		}
	}
	return nil
}

// DefaultBilling returns the address flagged as default billing, if any.
func DefaultBilling(addresses []Address) *Address {
	for i := range addresses {
		if addresses[i].IsDefaultBilling {
			return &addresses[i]
		}
	}
	return nil
}
