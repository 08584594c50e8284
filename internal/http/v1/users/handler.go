package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/userhub/users-api/internal/timeutil"
	usersvc "github.com/userhub/users-api/internal/user"
)

const isoDateHint = "Please use ISO date format (YYYY-MM-DD)."

// Register registers the user management endpoints.
func Register(api huma.API, svc usersvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Create a new user",
		Description:   "Creates a user after checking the minimum-age requirement.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *UserCreateInput) (*UserCreateOutput, error) {
		created, err := svc.AddUser(ctx, fromPayload(input.Body))
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &UserCreateOutput{
			Location: resourcePath(prefix, created.Email),
			Link:     resourceLinks(prefix, created.Email),
			Body:     toHTTPUser(created),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List all users",
		Description: "Returns every registered user in insertion order.",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, _ *UserListInput) (*UserListOutput, error) {
		all := svc.FindAllUsers(ctx)
		return &UserListOutput{
			Link: collectionLinks(prefix),
			Body: ListData{Users: toHTTPUsers(all), Total: len(all)},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-users-by-birthdate-range",
		Method:      http.MethodGet,
		Path:        "/users/by-birthdate-range",
		Summary:     "List users born within a date range",
		Description: "Returns users whose date of birth falls strictly between from and to; both bounds are exclusive.",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *UsersByBirthDateRangeInput) (*UserListOutput, error) {
		from, err := timeutil.ParseDate(input.From)
		if err != nil {
			return nil, huma.Error400BadRequest(isoDateHint)
		}
		to, err := timeutil.ParseDate(input.To)
		if err != nil {
			return nil, huma.Error400BadRequest(isoDateHint)
		}

		matched, err := svc.FindUsersByBirthDateRange(ctx, from, to)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &UserListOutput{
			Link: collectionLinks(prefix),
			Body: ListData{Users: toHTTPUsers(matched), Total: len(matched)},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/users/{email}",
		Summary:     "Get a user by email",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *UserGetInput) (*UserGetOutput, error) {
		found, err := svc.FindUserByEmail(ctx, input.Email)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &UserGetOutput{
			Link: resourceLinks(prefix, found.Email),
			Body: toHTTPUser(found),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPatch,
		Path:        "/users/{email}",
		Summary:     "Partially update a user",
		Description: "Applies the provided fields to the stored user. A new date of birth is re-validated against the minimum-age requirement; a new email does not re-key the record.",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *UserUpdateInput) (*UserUpdateOutput, error) {
		updated, err := svc.UpdateUser(ctx, input.Email, usersvc.Update{
			Email:       input.Body.Email,
			FirstName:   input.Body.FirstName,
			LastName:    input.Body.LastName,
			DateOfBirth: input.Body.DateOfBirth,
			Address:     input.Body.Address,
			PhoneNumber: input.Body.PhoneNumber,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &UserUpdateOutput{
			Location: resourcePath(prefix, input.Email),
			Link:     resourceLinks(prefix, input.Email),
			Body:     toHTTPUser(updated),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "replace-user",
		Method:        http.MethodPut,
		Path:          "/users/{email}",
		Summary:       "Replace or create a user",
		Description:   "Fully overwrites the user stored under the given email, or creates a new record from the payload when none exists.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *UserReplaceInput) (*UserReplaceOutput, error) {
		replaced, err := svc.ReplaceUser(ctx, input.Email, fromPayload(input.Body))
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &UserReplaceOutput{
			Location: resourcePath(prefix, replaced.Email),
			Link:     resourceLinks(prefix, replaced.Email),
			Body:     toHTTPUser(replaced),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-user",
		Method:        http.MethodDelete,
		Path:          "/users/{email}",
		Summary:       "Delete a user by email",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *UserDeleteInput) (*struct{}, error) {
		if err := svc.DeleteUser(ctx, input.Email); err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})
}

// mapServiceError translates domain errors to transport status codes:
// missing records answer 404, rule violations answer 400.
func mapServiceError(err error) error {
	var notFound *usersvc.NotFoundError
	var tooYoung *usersvc.MinimumAgeError
	switch {
	case errors.As(err, &notFound):
		return huma.Error404NotFound(notFound.Error())
	case errors.As(err, &tooYoung):
		return huma.Error400BadRequest(tooYoung.Error())
	case errors.Is(err, usersvc.ErrInvalidDateRange):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
