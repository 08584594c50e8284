package users

// UserCreateOutput for POST /users (201 Created).
type UserCreateOutput struct {
	Location string `header:"Location" doc:"URL of the created user"`
	Link     string `header:"Link"     doc:"RFC 8288 resource links"`
	Body     User
}

// UserListOutput for GET /users.
type UserListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 resource links"`
	Body ListData
}

// UserGetOutput for GET /users/{email}.
type UserGetOutput struct {
	Link string `header:"Link" doc:"RFC 8288 resource links"`
	Body User
}

// UserUpdateOutput for PATCH /users/{email}.
type UserUpdateOutput struct {
	Location string `header:"Location" doc:"URL of the updated user"`
	Link     string `header:"Link"     doc:"RFC 8288 resource links"`
	Body     User
}

// UserReplaceOutput for PUT /users/{email} (201 Created).
type UserReplaceOutput struct {
	Location string `header:"Location" doc:"URL of the replaced or created user"`
	Link     string `header:"Link"     doc:"RFC 8288 resource links"`
	Body     User
}
