// Package kv provides the ordered string dictionary that carries camera
// parameters between the application and the parameter engine, plus the
// staged change set merged into it after a successful commit.
//
// A Map flattens to "k1=v1;k2=v2" in insertion order. Keys may not contain
// '=' or ';' and values may not contain ';', so Unflatten(Flatten(m)) always
// reproduces m.
package kv

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

const (
	pairSep = ";"
	kvSep   = "="
)

var (
	// ErrInvalidKey is returned for an empty key or one containing a delimiter.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidValue is returned for a value containing the pair delimiter.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMalformed is returned when a flattened string cannot be parsed.
	ErrMalformed = errors.New("malformed flattened map")
)

// Map is an insertion-ordered string to string dictionary.
// The zero value is an empty map ready to use.
type Map struct {
	keys   []string
	values map[string]string
}

// New returns an empty map.
func New() *Map {
	return &Map{values: make(map[string]string)}
}

// FromPairs builds a map from alternating key, value arguments.
// It panics on an odd argument count or an invalid pair.
func FromPairs(kv ...string) *Map {
	if len(kv)%2 != 0 {
		panic("kv: odd number of arguments to FromPairs")
	}
	m := New()
	for i := 0; i < len(kv); i += 2 {
		if err := m.Set(kv[i], kv[i+1]); err != nil {
			panic(err)
		}
	}
	return m
}

// ValidateKey reports whether key can be stored.
func ValidateKey(key string) error {
	if key == "" || strings.ContainsAny(key, kvSep+pairSep) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// ValidateValue reports whether value can be stored.
func ValidateValue(value string) error {
	if strings.Contains(value, pairSep) {
		return fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}
	return nil
}

// Get returns the value for key.
func (m *Map) Get(key string) (string, bool) {
	if m == nil || m.values == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Value returns the value for key, or "" when absent.
func (m *Map) Value(key string) string {
	v, _ := m.Get(key)
	return v
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (m *Map) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := ValidateValue(value); err != nil {
		return err
	}
	m.set(key, value)
	return nil
}

func (m *Map) set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Remove deletes key and reports whether it was present.
func (m *Map) Remove(key string) bool {
	if _, ok := m.Get(key); !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates key/value pairs in insertion order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Reset removes every key.
func (m *Map) Reset() {
	m.keys = nil
	m.values = make(map[string]string)
}

// Clone returns an independent copy.
func (m *Map) Clone() *Map {
	c := New()
	for k, v := range m.All() {
		c.set(k, v)
	}
	return c
}

// Equal reports whether both maps hold the same pairs in the same order.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k || o.values[k] != m.values[k] {
			return false
		}
	}
	return true
}

// Flatten serializes the map as "k1=v1;k2=v2" in insertion order.
func (m *Map) Flatten() string {
	var b strings.Builder
	for k, v := range m.All() {
		if b.Len() > 0 {
			b.WriteString(pairSep)
		}
		b.WriteString(k)
		b.WriteString(kvSep)
		b.WriteString(v)
	}
	return b.String()
}

// Unflatten parses a string produced by Flatten. An empty string yields an
// empty map. A repeated key keeps its first position and its last value.
func Unflatten(s string) (*Map, error) {
	m := New()
	if s == "" {
		return m, nil
	}
	for i, pair := range strings.Split(s, pairSep) {
		k, v, ok := strings.Cut(pair, kvSep)
		if !ok {
			return nil, fmt.Errorf("%w: pair %d %q has no '='", ErrMalformed, i, pair)
		}
		if err := ValidateKey(k); err != nil {
			return nil, fmt.Errorf("%w: pair %d: %w", ErrMalformed, i, err)
		}
		m.set(k, v)
	}
	return m, nil
}

// String implements fmt.Stringer.
func (m *Map) String() string {
	return m.Flatten()
}
