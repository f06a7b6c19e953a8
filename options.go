package chash

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	// DefaultInitialCapacity is the bucket count of a freshly created table.
	DefaultInitialCapacity = 10
	// DefaultLoadFactor is the size/capacity ratio at which Insert grows the table.
	DefaultLoadFactor = 0.7
)

type config struct {
	hasher          HashFunc
	initialCapacity int
	loadFactor      float64
	maxCapacity     int
	logger          *slog.Logger
}

func defaultConfig() config {
	return config{
		hasher:          XXHash,
		initialCapacity: DefaultInitialCapacity,
		loadFactor:      DefaultLoadFactor,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Table created by New.
type Option func(*config)

// WithHasher sets the hash function used to place keys. Passing nil keeps
// the default XXHash.
func WithHasher(h HashFunc) Option {
	return func(c *config) {
		if h != nil {
			c.hasher = h
		}
	}
}

// WithInitialCapacity sets the number of buckets allocated by New.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.initialCapacity = n
	}
}

// WithLoadFactor sets the threshold checked before every insert. It must be
// in (0, 1].
func WithLoadFactor(lf float64) Option {
	return func(c *config) {
		c.loadFactor = lf
	}
}

// WithMaxCapacity caps the bucket array. An insert that would need to grow
// past n fails with ErrAllocationFailure. Zero means no limit beyond what
// an int can address.
func WithMaxCapacity(n int) Option {
	return func(c *config) {
		c.maxCapacity = n
	}
}

// WithLogger routes resize diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func (c config) validate() error {
	if c.initialCapacity <= 0 {
		return fmt.Errorf("%w: initial capacity %d must be positive", ErrInvalidConfig, c.initialCapacity)
	}
	if !(c.loadFactor > 0 && c.loadFactor <= 1) {
		return fmt.Errorf("%w: load factor %v must be in (0, 1]", ErrInvalidConfig, c.loadFactor)
	}
	if c.maxCapacity < 0 || (c.maxCapacity > 0 && c.maxCapacity < c.initialCapacity) {
		return fmt.Errorf("%w: max capacity %d is below initial capacity %d",
			ErrInvalidConfig, c.maxCapacity, c.initialCapacity)
	}
	return nil
}
