package users

import (
	"github.com/userhub/users-api/internal/timeutil"
	usersvc "github.com/userhub/users-api/internal/user"
)

// User is the wire representation of a stored user.
type User struct {
	Email       string        `json:"email"                 doc:"Email address (natural key)" example:"john@example.com"`
	FirstName   string        `json:"firstName"             doc:"First name" example:"John"`
	LastName    string        `json:"lastName"              doc:"Last name" example:"Doe"`
	DateOfBirth timeutil.Date `json:"dateOfBirth"           doc:"Date of birth (YYYY-MM-DD)" example:"1990-06-15"`
	Address     string        `json:"address,omitempty"     doc:"Postal address" example:"221B Baker Street"`
	PhoneNumber string        `json:"phoneNumber,omitempty" doc:"Phone number" example:"+358401234567"`
}

// ListData is the response body for collection endpoints.
type ListData struct {
	Users []User `json:"users" doc:"Users in insertion order"`
	Total int    `json:"total" doc:"Number of users returned" example:"3"`
}

func toHTTPUser(u usersvc.User) User {
	return User{
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
	}
}

func toHTTPUsers(us []usersvc.User) []User {
	out := make([]User, 0, len(us))
	for _, u := range us {
		out = append(out, toHTTPUser(u))
	}
	return out
}

func fromPayload(p UserPayload) usersvc.User {
	return usersvc.User{
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Address:     p.Address,
		PhoneNumber: p.PhoneNumber,
	}
}
