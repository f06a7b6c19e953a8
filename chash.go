package chash

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

var (
	// ErrNotFound is returned by Remove when the key is absent.
	ErrNotFound = errors.New("key not found")
	// ErrAllocationFailure is returned when a bucket array cannot be obtained.
	ErrAllocationFailure = errors.New("bucket allocation failed")
	// ErrInvalidConfig is returned by New for unusable options.
	ErrInvalidConfig = errors.New("invalid table configuration")
	// ErrDestroyed is returned by Insert after Destroy.
	ErrDestroyed = errors.New("table destroyed")
)

type node[V any] struct {
	key   string
	value V
	next  *node[V]
}

// Entry is a key/value pair returned by Entries.
type Entry[V any] struct {
	Key   string
	Value V
}

// Table is a hash table with separate chaining. The zero value is not
// usable; create tables with New. A Table must not be used concurrently
// without external locking.
type Table[V any] struct {
	buckets  []*node[V]
	size     int
	capacity int

	hasher      HashFunc
	loadFactor  float64
	maxCapacity int
	logger      *slog.Logger
}

// New creates an empty table with DefaultInitialCapacity buckets unless
// overridden by options.
func New[V any](opts ...Option) (*Table[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	buckets, err := allocBuckets[V](cfg.initialCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &Table[V]{
		buckets:     buckets,
		capacity:    cfg.initialCapacity,
		hasher:      cfg.hasher,
		loadFactor:  cfg.loadFactor,
		maxCapacity: cfg.maxCapacity,
		logger:      cfg.logger,
	}, nil
}

// allocBuckets converts a runtime refusal to allocate into an error.
func allocBuckets[V any](n int) (buckets []*node[V], err error) {
	defer func() {
		if r := recover(); r != nil {
			buckets = nil
			err = fmt.Errorf("%w: %d buckets: %v", ErrAllocationFailure, n, r)
		}
	}()
	return make([]*node[V], n), nil
}

// index maps key to a bucket in an array of the given capacity.
func (t *Table[V]) index(key string, capacity int) int {
	return int(t.hasher(key) % uint64(capacity))
}

func (t *Table[V]) needGrow() bool {
	return float64(t.size)/float64(t.capacity) >= t.loadFactor
}

// Len returns the number of entries in the table.
func (t *Table[V]) Len() int {
	return t.size
}

// Cap returns the current number of buckets.
func (t *Table[V]) Cap() int {
	return t.capacity
}

// Insert adds key with value, or replaces the value if key is already
// present. If the table is at its load factor it grows first; when that
// growth cannot be allocated the error wraps ErrAllocationFailure and the
// table is left unchanged.
func (t *Table[V]) Insert(key string, value V) error {
	if t.buckets == nil {
		return ErrDestroyed
	}

	if t.needGrow() {
		if err := t.grow(); err != nil {
			return fmt.Errorf("insert %q: %w", key, err)
		}
	}

	i := t.index(key, t.capacity)
	n := t.buckets[i]
	if n == nil {
		t.buckets[i] = &node[V]{key: strings.Clone(key), value: value}
		t.size++
		return nil
	}

	for {
		if n.key == key {
			n.value = value
			return nil
		}
		if n.next == nil {
			break
		}
		n = n.next
	}

	n.next = &node[V]{key: strings.Clone(key), value: value}
	t.size++
	return nil
}

// InsertBytes is Insert for a key held in a byte slice. The table keeps its
// own copy of the key, so the caller may reuse the buffer.
func (t *Table[V]) InsertBytes(key []byte, value V) error {
	return t.Insert(string(key), value)
}

// Lookup returns the value stored under key.
func (t *Table[V]) Lookup(key string) (V, bool) {
	var zero V
	if t.buckets == nil {
		return zero, false
	}

	for n := t.buckets[t.index(key, t.capacity)]; n != nil; n = n.next {
		if n.key == key {
			return n.value, true
		}
	}
	return zero, false
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Remove deletes key from the table, returning ErrNotFound if it is absent.
func (t *Table[V]) Remove(key string) error {
	if t.buckets == nil {
		return ErrNotFound
	}

	// link points at the slot or next field that references n.
	link := &t.buckets[t.index(key, t.capacity)]
	for n := *link; n != nil; n = *link {
		if n.key == key {
			*link = n.next
			n.next = nil
			t.size--
			return nil
		}
		link = &n.next
	}
	return ErrNotFound
}

// grow doubles the bucket array and moves every node into its bucket under
// the new capacity. Both arrays it needs are allocated before any node is
// touched.
func (t *Table[V]) grow() error {
	oldCapacity := t.capacity
	if oldCapacity > math.MaxInt/2 {
		return fmt.Errorf("%w: capacity %d cannot be doubled", ErrAllocationFailure, oldCapacity)
	}
	newCapacity := oldCapacity * 2
	if t.maxCapacity > 0 && newCapacity > t.maxCapacity {
		t.logger.Warn("resize refused",
			"old_capacity", oldCapacity, "new_capacity", newCapacity, "max_capacity", t.maxCapacity)
		return fmt.Errorf("%w: capacity %d exceeds limit %d", ErrAllocationFailure, newCapacity, t.maxCapacity)
	}

	buckets, err := allocBuckets[V](newCapacity)
	if err != nil {
		t.logger.Warn("resize failed", "old_capacity", oldCapacity, "error", err)
		return err
	}
	tails, err := allocBuckets[V](newCapacity)
	if err != nil {
		t.logger.Warn("resize failed", "old_capacity", oldCapacity, "error", err)
		return err
	}

	t.logger.Debug("resize started", "old_capacity", oldCapacity, "new_capacity", newCapacity, "size", t.size)

	for i, head := range t.buckets {
		t.buckets[i] = nil
		for n := head; n != nil; {
			next := n.next
			n.next = nil

			j := t.index(n.key, newCapacity)
			if tails[j] == nil {
				buckets[j] = n
			} else {
				tails[j].next = n
			}
			tails[j] = n

			n = next
		}
	}

	t.buckets = buckets
	t.capacity = newCapacity

	t.logger.Debug("resize complete", "capacity", t.capacity, "size", t.size)
	return nil
}

// Entries returns a snapshot of every entry in unspecified order. The
// returned slice does not change when the table is mutated afterwards, so
// it can be traversed any number of times.
func (t *Table[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, t.size)
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			entries = append(entries, Entry[V]{Key: n.key, Value: n.value})
		}
	}
	return entries
}

// Keys returns a snapshot of every key in unspecified order.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			keys = append(keys, n.key)
		}
	}
	return keys
}

// Range calls fn for each entry until fn returns false. Unlike Entries it
// walks the live chains, so fn must not modify the table.
func (t *Table[V]) Range(fn func(key string, value V) bool) {
	for _, head := range t.buckets {
		for n := head; n != nil; n = n.next {
			if !fn(n.key, n.value) {
				return
			}
		}
	}
}

// Stats describes how entries are spread over the buckets.
type Stats struct {
	Size         int
	Capacity     int
	UsedBuckets  int
	LongestChain int
	LoadFactor   float64
}

// Stats walks the table and reports its chain distribution.
func (t *Table[V]) Stats() Stats {
	s := Stats{Size: t.size, Capacity: t.capacity}
	if t.capacity > 0 {
		s.LoadFactor = float64(t.size) / float64(t.capacity)
	}
	for _, head := range t.buckets {
		if head == nil {
			continue
		}
		s.UsedBuckets++
		length := 0
		for n := head; n != nil; n = n.next {
			length++
		}
		if length > s.LongestChain {
			s.LongestChain = length
		}
	}
	return s
}

// Destroy unlinks every node and releases the bucket array. Values are
// dropped from the table but otherwise left alone. After Destroy, Insert
// returns ErrDestroyed and lookups find nothing.
func (t *Table[V]) Destroy() {
	var zero V
	for i, head := range t.buckets {
		for n := head; n != nil; {
			next := n.next
			n.next = nil
			n.value = zero
			n = next
		}
		t.buckets[i] = nil
	}
	t.buckets = nil
	t.size = 0
	t.capacity = 0
}
