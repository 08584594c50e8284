package users

import (
	"fmt"
	"net/url"
	"strings"
)

// resourcePath returns the canonical URL path of a single user.
func resourcePath(prefix, email string) string {
	return fmt.Sprintf("%s/users/%s", prefix, url.PathEscape(email))
}

// resourceLinks builds an RFC 8288 Link header for a single user, exposing
// the same relations the API supports on the resource: itself, the
// collection, and the update/replace/delete operations.
func resourceLinks(prefix, email string) string {
	self := resourcePath(prefix, email)
	rels := []struct {
		target string
		rel    string
	}{
		{self, "self"},
		{prefix + "/users", "users"},
		{self, "update"},
		{self, "replace"},
		{self, "delete"},
	}

	links := make([]string, 0, len(rels))
	for _, r := range rels {
		links = append(links, fmt.Sprintf("<%s>; rel=%q", r.target, r.rel))
	}
	return strings.Join(links, ", ")
}

// collectionLinks builds the Link header for collection responses.
func collectionLinks(prefix string) string {
	return fmt.Sprintf("<%s/users>; rel=%q", prefix, "self")
}
