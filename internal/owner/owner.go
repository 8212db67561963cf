// Package owner resolves the identity that intake records belong to.
package owner

import (
	"errors"
	"os"
	"os/user"
	"strings"
	"unicode"
)

// EnvVar names the environment variable consulted when no flag is given.
const EnvVar = "AQUA_OWNER"

// Fallback is used when no other source yields an identity.
const Fallback = "local"

// Options contains the explicit sources for an owner id.
type Options struct {
	Flag string
}

// Resolve picks the owner id from the flag, then AQUA_OWNER, then the OS
// user name, then Fallback, and validates the result.
func Resolve(opts Options) (string, error) {
	id := strings.TrimSpace(opts.Flag)
	if id == "" {
		id = strings.TrimSpace(os.Getenv(EnvVar))
	}
	if id == "" {
		if u, err := user.Current(); err == nil {
			id = strings.TrimSpace(u.Username)
		}
	}
	if id == "" {
		id = Fallback
	}

	if err := Validate(id); err != nil {
		return "", err
	}
	return id, nil
}

// Validate rejects empty ids and ids containing whitespace or control characters.
func Validate(id string) error {
	if id == "" {
		return errors.New("owner id must not be empty")
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return errors.New("owner id must not contain whitespace or control characters")
		}
	}
	return nil
}
