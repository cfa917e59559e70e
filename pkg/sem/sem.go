// Package sem holds the process-wide settings shared by the semantic
// operators. Loaders produce plain tables; operators read the configured
// language model from here when they run.
package sem

import (
	"context"
	"sync"
)

// LM is the handle to a language model. Implementations live outside
// this module; the connectors only care that one has been configured
// before semantic operators run.
type LM interface {
	// Name identifies the underlying model.
	Name() string

	// Complete sends a batch of prompts to the model and returns one
	// completion per prompt.
	Complete(ctx context.Context, prompts []string) ([]string, error)
}

// Settings is the shared configuration read by semantic operators.
type Settings struct {
	mu          sync.RWMutex
	lm          LM
	enableCache bool
}

// Option configures a Settings value.
type Option func(*Settings)

// WithLM sets the active language model.
func WithLM(lm LM) Option {
	return func(s *Settings) {
		s.lm = lm
	}
}

// WithCache enables or disables operator result caching.
func WithCache(enabled bool) Option {
	return func(s *Settings) {
		s.enableCache = enabled
	}
}

// Configure applies options to the settings.
func (s *Settings) Configure(opts ...Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, opt := range opts {
		opt(s)
	}
}

// LM returns the active language model, or nil if none is configured.
func (s *Settings) LM() LM {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lm
}

// CacheEnabled reports whether operator result caching is on.
func (s *Settings) CacheEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enableCache
}

// Default is the process-wide settings instance.
var Default = &Settings{}

// Configure applies options to the default settings.
func Configure(opts ...Option) {
	Default.Configure(opts...)
}
