package dto

import (
	"time"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

// LoginRequest payload shared by staff and customer login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the access token and the principal summary.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
	User        any    `json:"user"`
}

// RefreshResponse carries the rotated access token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// MeResponse wraps the principal summary.
type MeResponse struct {
	User any `json:"user"`
}

// StaffUserResponse is a staff user without credentials.
type StaffUserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
	LastLogin *time.Time  `json:"lastLogin,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// CustomerResponse is a customer without credentials.
type CustomerResponse struct {
	ID                     string            `json:"id"`
	Name                   string            `json:"name"`
	Email                  string            `json:"email"`
	Phone                  *string           `json:"phone,omitempty"`
	Role                   domain.Role       `json:"role"`
	IsActive               bool              `json:"isActive"`
	CreatedAt              time.Time         `json:"createdAt"`
	UpdatedAt              time.Time         `json:"updatedAt"`
	Addresses              []AddressResponse `json:"addresses,omitempty"`
	DefaultShippingAddress *AddressResponse  `json:"defaultShippingAddress,omitempty"`
	DefaultBillingAddress  *AddressResponse  `json:"defaultBillingAddress,omitempty"`
}

// AddressResponse is a saved customer address.
type AddressResponse struct {
	ID                string  `json:"id"`
	FullName          string  `json:"fullName"`
	Line1             string  `json:"line1"`
	Line2             *string `json:"line2,omitempty"`
	City              string  `json:"city"`
	State             *string `json:"state,omitempty"`
	PostalCode        string  `json:"postalCode"`
	Country           string  `json:"country"`
	Phone             *string `json:"phone,omitempty"`
	IsDefaultShipping bool    `json:"isDefaultShipping"`
	IsDefaultBilling  bool    `json:"isDefaultBilling"`
}

// NewStaffUserResponse strips credentials from a staff user.
func NewStaffUserResponse(u *domain.StaffUser) StaffUserResponse {
	return StaffUserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.Active,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewCustomerResponse strips credentials from a customer.
func NewCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Role:      domain.RoleCustomer,
		IsActive:  c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewAddressResponse converts an address.
func NewAddressResponse(a *domain.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		ID:                a.ID,
		FullName:          a.FullName,
		Line1:             a.Line1,
		Line2:             a.Line2,
		City:              a.City,
		State:             a.State,
		PostalCode:        a.PostalCode,
		Country:           a.Country,
		Phone:             a.Phone,
		IsDefaultShipping: a.IsDefaultShipping,
		IsDefaultBilling:  a.IsDefaultBilling,
	}
}
