package users

import (
	"strings"
	"testing"
)

func TestResourcePathEscapesEmail(t *testing.T) {
	if got := resourcePath("/v1", "john@example.com"); got != "/v1/users/john%40example.com" {
		t.Errorf("unexpected path %q", got)
	}
}

func TestResourceLinks(t *testing.T) {
	link := resourceLinks("", "john@example.com")

	for _, want := range []string{
		`</users/john%40example.com>; rel="self"`,
		`</users>; rel="users"`,
		`</users/john%40example.com>; rel="update"`,
		`</users/john%40example.com>; rel="replace"`,
		`</users/john%40example.com>; rel="delete"`,
	} {
		if !strings.Contains(link, want) {
			t.Errorf("Link header missing %q: %q", want, link)
		}
	}
}

func TestCollectionLinks(t *testing.T) {
	if got := collectionLinks("/v1"); got != `</v1/users>; rel="self"` {
		t.Errorf("unexpected link %q", got)
	}
}
