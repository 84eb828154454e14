package searcher

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("invalid search configuration")
	ErrNoSolution    = errors.New("no solution reachable")
)

// ConfigurationError reports a strategy identifier the agent does not know.
type ConfigurationError struct {
	Strategy string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown search strategy %q", e.Strategy)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
