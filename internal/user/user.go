package user

import "github.com/userhub/users-api/internal/timeutil"

// User is a stored user profile. Email is the natural key: the store holds
// at most one record per email, an invariant maintained by the service
// layer rather than the store itself.
type User struct {
	Email       string
	FirstName   string
	LastName    string
	DateOfBirth timeutil.Date
	Address     string
	PhoneNumber string
}

// Update carries a sparse set of field changes for a partial update.
// Nil means "leave unchanged"; unknown fields cannot be expressed at all,
// so the silently-ignored-key case of a generic map never arises.
type Update struct {
	Email       *string
	FirstName   *string
	LastName    *string
	DateOfBirth *timeutil.Date
	Address     *string
	PhoneNumber *string
}
