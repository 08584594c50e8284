package routes

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/userhub/users-api/internal/respond"
	"github.com/userhub/users-api/internal/user"
)

func TestRegisterExposesAllOperations(t *testing.T) {
	respond.Install()
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))

	store := user.NewStore()
	Register(api, user.NewService(store, 18))

	operations := map[string]bool{}
	for _, pathItem := range api.OpenAPI().Paths {
		for _, op := range []*huma.Operation{
			pathItem.Get, pathItem.Post, pathItem.Put, pathItem.Patch, pathItem.Delete,
		} {
			if op != nil {
				operations[op.OperationID] = true
			}
		}
	}

	for _, id := range []string{
		"create-user",
		"list-users",
		"list-users-by-birthdate-range",
		"get-user",
		"update-user",
		"replace-user",
		"delete-user",
	} {
		if !operations[id] {
			t.Errorf("operation %s not registered", id)
		}
	}
}

func TestAPIPrefixDefaultsToEmpty(t *testing.T) {
	api := humachi.New(chi.NewRouter(), huma.DefaultConfig("RoutesTest", "test"))
	if got := apiPrefix(api); got != "" {
		t.Errorf("expected empty prefix, got %q", got)
	}
}
