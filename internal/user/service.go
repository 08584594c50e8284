package user

import (
	"context"

	appmiddleware "github.com/userhub/users-api/internal/middleware"
	"github.com/userhub/users-api/internal/timeutil"
)

// Service defines the user management operations exposed to the transport
// layer. Every method completes synchronously; errors are the typed domain
// errors from this package.
type Service interface {
	AddUser(ctx context.Context, u User) (User, error)
	FindAllUsers(ctx context.Context) []User
	FindUserByEmail(ctx context.Context, email string) (User, error)
	FindUsersByBirthDateRange(ctx context.Context, from, to timeutil.Date) ([]User, error)
	UpdateUser(ctx context.Context, email string, update Update) (User, error)
	ReplaceUser(ctx context.Context, email string, newUser User) (User, error)
	DeleteUser(ctx context.Context, email string) error
}

type service struct {
	store      *Store
	minimumAge int
}

// NewService creates a Service enforcing the given minimum age (whole
// years) on every write that sets a date of birth.
func NewService(store *Store, minimumAge int) Service {
	return &service{store: store, minimumAge: minimumAge}
}

// AddUser validates the date of birth against the minimum-age rule and
// stores the user. It does not check for a pre-existing email; duplicate
// prevention is the caller's concern on the create path.
func (s *service) AddUser(ctx context.Context, u User) (User, error) {
	if err := s.validateDateOfBirth(u.DateOfBirth); err != nil {
		appmiddleware.LogAuditEvent(ctx, "create", "user", u.Email, "failure", nil)
		return User{}, err
	}

	saved := s.store.Save(u)
	appmiddleware.LogAuditEvent(ctx, "create", "user", saved.Email, "success", nil)
	return saved, nil
}

// FindAllUsers returns all stored users in insertion order.
func (s *service) FindAllUsers(_ context.Context) []User {
	return s.store.FindAll()
}

// FindUserByEmail returns the user with the given email.
func (s *service) FindUserByEmail(_ context.Context, email string) (User, error) {
	u, ok := s.store.FindByEmail(email)
	if !ok {
		return User{}, &NotFoundError{Email: email}
	}
	return u, nil
}

// FindUsersByBirthDateRange returns every user born strictly between from
// and to. Both bounds are exclusive: a user born exactly on either date is
// not included. Results keep the store's insertion order.
func (s *service) FindUsersByBirthDateRange(_ context.Context, from, to timeutil.Date) ([]User, error) {
	if from.After(to) {
		return nil, ErrInvalidDateRange
	}

	matched := []User{}
	for _, u := range s.store.FindAll() {
		if u.DateOfBirth.After(from) && u.DateOfBirth.Before(to) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// UpdateUser applies a sparse field update to the user stored under email.
// A changed date of birth is re-validated against the minimum-age rule;
// other fields, including a changed email, are applied as-is. The merged
// record is written back under the original email, so changing the email
// does not re-key the record.
func (s *service) UpdateUser(ctx context.Context, email string, update Update) (User, error) {
	current, ok := s.store.FindByEmail(email)
	if !ok {
		appmiddleware.LogAuditEvent(ctx, "update", "user", email, "failure", nil)
		return User{}, &NotFoundError{Email: email}
	}

	merged := current
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.FirstName != nil {
		merged.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		merged.LastName = *update.LastName
	}
	if update.DateOfBirth != nil {
		if err := s.validateDateOfBirth(*update.DateOfBirth); err != nil {
			appmiddleware.LogAuditEvent(ctx, "update", "user", email, "failure", nil)
			return User{}, err
		}
		merged.DateOfBirth = *update.DateOfBirth
	}
	if update.Address != nil {
		merged.Address = *update.Address
	}
	if update.PhoneNumber != nil {
		merged.PhoneNumber = *update.PhoneNumber
	}

	updated := s.store.Update(email, merged)
	appmiddleware.LogAuditEvent(ctx, "update", "user", email, "success", nil)
	return updated, nil
}

// ReplaceUser overwrites the user stored under email with newUser, or
// creates it when absent. The replacement's date of birth is always
// re-validated. On a miss the new record carries newUser's own email, so
// callers must treat the operation as create-or-replace, not key rename.
func (s *service) ReplaceUser(ctx context.Context, email string, newUser User) (User, error) {
	if err := s.validateDateOfBirth(newUser.DateOfBirth); err != nil {
		appmiddleware.LogAuditEvent(ctx, "replace", "user", email, "failure", nil)
		return User{}, err
	}

	replaced := s.store.Update(email, newUser)
	appmiddleware.LogAuditEvent(ctx, "replace", "user", email, "success", nil)
	return replaced, nil
}

// DeleteUser removes the user stored under email.
func (s *service) DeleteUser(ctx context.Context, email string) error {
	if !s.store.DeleteByEmail(email) {
		appmiddleware.LogAuditEvent(ctx, "delete", "user", email, "failure", nil)
		return &NotFoundError{Email: email}
	}
	appmiddleware.LogAuditEvent(ctx, "delete", "user", email, "success", nil)
	return nil
}

// validateDateOfBirth fails when the subject is younger than the
// configured minimum age as of today.
func (s *service) validateDateOfBirth(dateOfBirth timeutil.Date) error {
	cutoff := timeutil.Today().AddYears(-s.minimumAge)
	if dateOfBirth.After(cutoff) {
		return &MinimumAgeError{MinimumAge: s.minimumAge}
	}
	return nil
}
