package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/userhub/users-api/internal/http/v1/users"
	usersvc "github.com/userhub/users-api/internal/user"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, userService usersvc.Service) {
	prefix := apiPrefix(api)

	users.Register(api, userService, prefix)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
