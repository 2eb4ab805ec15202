package domain

import (
	"fmt"

	apperrors "github.com/shhac/postie/internal/errors"
)

// Environment names a deployment target with its own saved base URL.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Environments lists the known environments in display order.
var Environments = []Environment{EnvDevelopment, EnvProduction}

// ParseEnvironment rejects names other than the known environments.
func ParseEnvironment(s string) (Environment, error) {
	for _, env := range Environments {
		if string(env) == s {
			return env, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownEnvironment, s)
}

// EnvironmentURLs maps every known environment to its saved base URL.
type EnvironmentURLs map[Environment]string

// NewEnvironmentURLs returns a map with an empty URL for each environment.
func NewEnvironmentURLs() EnvironmentURLs {
	urls := make(EnvironmentURLs, len(Environments))
	for _, env := range Environments {
		urls[env] = ""
	}
	return urls
}

// Get returns the saved URL for env, or "" if none.
func (u EnvironmentURLs) Get(env Environment) string {
	return u[env]
}

// With returns a copy of u with env set to url.
func (u EnvironmentURLs) With(env Environment, url string) EnvironmentURLs {
	out := NewEnvironmentURLs()
	for _, e := range Environments {
		out[e] = u[e]
	}
	out[env] = url
	return out
}
