package users

import "github.com/userhub/users-api/internal/timeutil"

// UserPayload is the request body shared by create (POST) and replace (PUT).
type UserPayload struct {
	Email       string        `json:"email"                 format:"email" required:"true" doc:"Email address (natural key)" example:"john@example.com"`
	FirstName   string        `json:"firstName"             minLength:"1" maxLength:"100" required:"true" doc:"First name" example:"John"`
	LastName    string        `json:"lastName"              minLength:"1" maxLength:"100" required:"true" doc:"Last name" example:"Doe"`
	DateOfBirth timeutil.Date `json:"dateOfBirth"           required:"true" doc:"Date of birth (YYYY-MM-DD)" example:"1990-06-15"`
	Address     string        `json:"address,omitempty"     doc:"Postal address" example:"221B Baker Street"`
	PhoneNumber string        `json:"phoneNumber,omitempty" doc:"Phone number" example:"+358401234567"`
}

// UserCreateInput for POST /users.
type UserCreateInput struct {
	Body UserPayload
}

// UserListInput for GET /users (no parameters).
type UserListInput struct{}

// UserGetInput for GET /users/{email}.
type UserGetInput struct {
	Email string `path:"email" doc:"Email of the user" example:"john@example.com"`
}

// UsersByBirthDateRangeInput for GET /users/by-birthdate-range.
// The bounds arrive as strings and are parsed in the handler so a malformed
// date yields a 400 pointing at the expected ISO format.
type UsersByBirthDateRangeInput struct {
	From string `query:"from" required:"true" doc:"Exclusive lower bound (YYYY-MM-DD)" example:"1990-01-01"`
	To   string `query:"to"   required:"true" doc:"Exclusive upper bound (YYYY-MM-DD)" example:"2000-12-31"`
}

// UserUpdateInput for PATCH /users/{email}. Absent fields are left
// unchanged; unrecognized keys are ignored rather than rejected.
type UserUpdateInput struct {
	Email string `path:"email" doc:"Email of the user to update" example:"john@example.com"`
	Body  struct {
		_           struct{}       `json:"-" additionalProperties:"true"`
		Email       *string        `json:"email,omitempty"       format:"email" doc:"New email (does not re-key the record)" example:"john@example.com"`
		FirstName   *string        `json:"firstName,omitempty"   minLength:"1" maxLength:"100" doc:"First name" example:"Jane"`
		LastName    *string        `json:"lastName,omitempty"    minLength:"1" maxLength:"100" doc:"Last name" example:"Doe"`
		DateOfBirth *timeutil.Date `json:"dateOfBirth,omitempty" doc:"Date of birth (YYYY-MM-DD)" example:"1990-06-15"`
		Address     *string        `json:"address,omitempty"     doc:"Postal address" example:"221B Baker Street"`
		PhoneNumber *string        `json:"phoneNumber,omitempty" doc:"Phone number" example:"+358401234567"`
	}
}

// UserReplaceInput for PUT /users/{email}.
type UserReplaceInput struct {
	Email string `path:"email" doc:"Email of the user to replace" example:"john@example.com"`
	Body  UserPayload
}

// UserDeleteInput for DELETE /users/{email}.
type UserDeleteInput struct {
	Email string `path:"email" doc:"Email of the user to delete" example:"john@example.com"`
}
