package user

import (
	"slices"
	"sync"
)

// Store is the authoritative in-memory collection of user records, kept in
// insertion order and keyed by email. All mutations are serialized by a
// single lock; reads hand out copies, never internal references.
//
// The store does not validate and does not reject duplicate keys: callers
// (the service layer) are responsible for both before every write.
type Store struct {
	mu    sync.RWMutex
	users []User
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Save appends a record and returns it unchanged. No duplicate-key check
// is performed here; uniqueness per email is maintained upstream.
func (s *Store) Save(u User) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, u)
	return u
}

// FindAll returns a snapshot of all records in insertion order. Mutating
// the result does not affect the store.
func (s *Store) FindAll() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.users)
}

// FindByEmail returns the record with the given email, if present.
func (s *Store) FindByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(email)
	if i < 0 {
		return User{}, false
	}
	return s.users[i], true
}

// Update overwrites every field of the record stored under email with
// newUser, keeping its position in insertion order. If no record matches,
// newUser is appended as a new record instead. This insert-on-miss branch
// is load-bearing: PUT-as-upsert above the service depends on it.
func (s *Store) Update(email string, newUser User) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(email)
	if i < 0 {
		s.users = append(s.users, newUser)
		return newUser
	}
	s.users[i] = newUser
	return newUser
}

// DeleteByEmail removes the record with the given email and reports
// whether a removal occurred. Absence is not an error at this layer.
func (s *Store) DeleteByEmail(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(email)
	if i < 0 {
		return false
	}
	s.users = slices.Delete(s.users, i, i+1)
	return true
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(email string) int {
	return slices.IndexFunc(s.users, func(u User) bool {
		return u.Email == email
	})
}
