// Package user resolves the "me" shorthand accepted by assignee flags
package user

import (
	"os"
	"os/user"
	"strings"
)

// Me is the assignee shorthand for the current user
const Me = "me"

// CurrentUsername returns the DOTOO_USER override, the OS username, the
// USER environment variable, or "unknown", in that order
func CurrentUsername() string {
	if name := os.Getenv("DOTOO_USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

// ResolveAssignee expands "me" or "@me" to CurrentUsername and trims
// anything else
func ResolveAssignee(name string) string {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, Me) || strings.EqualFold(name, "@"+Me) {
		return CurrentUsername()
	}
	return name
}
