package connector

import (
	"fmt"
)

// ConnectionError reports a source that could not be reached or
// authenticated to.
type ConnectionError struct {
	Source string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Source, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// LoadError reports a source that was reachable but whose content could
// not be loaded: a missing object, an invalid query, or unparseable data.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
