// Package session resolves the bearer credential issued to the user at
// login. The token is stored outside this module; a Source only reads it.
package session

import (
	"os"
	"strings"
)

type Source interface {
	Token() string
}

// Resolve returns the token with surrounding whitespace removed.
// ok is false when the source holds no usable token; callers must not
// issue any request in that case.
func Resolve(src Source) (token string, ok bool) {
	token = strings.TrimSpace(src.Token())
	return token, token != ""
}

// EnvSource reads the token from an environment variable on every call,
// so a token exported after startup is still picked up.
type EnvSource struct {
	Key string
}

func (s EnvSource) Token() string {
	return os.Getenv(s.Key)
}

// StaticSource holds a fixed token.
type StaticSource string

func (s StaticSource) Token() string {
	return string(s)
}
