package kv

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSetGet(t *testing.T) {
	m := New()
	require.NoError(t, m.Set("preview-size", "640x480"))
	require.NoError(t, m.Set("jpeg-quality", "85"))
	require.NoError(t, m.Set("preview-size", "320x240"))

	v, ok := m.Get("preview-size")
	assert.True(t, ok)
	assert.Equal(t, "320x240", v)
	assert.Equal(t, []string{"preview-size", "jpeg-quality"}, m.Keys(), "overwrite keeps position")

	_, ok = m.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", m.Value("missing"))
}

func TestMapZeroValue(t *testing.T) {
	var m Map
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "", m.Flatten())
	require.NoError(t, m.Set("a", "1"))
	assert.Equal(t, "a=1", m.Flatten())
}

func TestMapSetRejectsDelimiters(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{"empty key", "", "v", ErrInvalidKey},
		{"equals in key", "a=b", "v", ErrInvalidKey},
		{"semicolon in key", "a;b", "v", ErrInvalidKey},
		{"semicolon in value", "k", "1;2", ErrInvalidValue},
		{"equals in value ok", "k", "a=b", nil},
		{"empty value ok", "k", "", nil},
		{"comma list ok", "k", "(0,0,0,0,0),(1,1,1,1,1)", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			err := m.Set(tt.key, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil && m.Len() != 0 {
				t.Errorf("expected map unchanged, got %q", m.Flatten())
			}
		})
	}
}

func TestMapRemove(t *testing.T) {
	m := FromPairs("a", "1", "b", "2", "c", "3")

	assert.True(t, m.Remove("b"))
	assert.False(t, m.Remove("b"))
	assert.Equal(t, "a=1;c=3", m.Flatten())

	require.NoError(t, m.Set("b", "4"))
	assert.Equal(t, "a=1;c=3;b=4", m.Flatten(), "re-added key goes to the end")
}

func TestFlatten(t *testing.T) {
	m := FromPairs("k1", "v1", "k2", "", "k3", "a=b")
	assert.Equal(t, "k1=v1;k2=;k3=a=b", m.Flatten())
	assert.Equal(t, "", New().Flatten())
}

func TestUnflatten(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"single", "a=1", "a=1", false},
		{"value with equals", "a=x=y", "a=x=y", false},
		{"empty value", "a=;b=2", "a=;b=2", false},
		{"duplicate key", "a=1;b=2;a=3", "a=3;b=2", false},
		{"missing equals", "a=1;b", "", true},
		{"empty key", "=1", "", true},
		{"trailing separator", "a=1;", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Unflatten(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("expected ErrMalformed, got %v", err)
				}
				return
			}
			require.NoError(t, err)
			if got := m.Flatten(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFlattenRoundTrip(t *testing.T) {
	const alphabet = "abcxyz0129-_.,()x =" // no ';'

	for seed := uint64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*31))
		m := New()
		n := rng.IntN(20)
		for i := 0; i < n; i++ {
			key := fmt.Sprintf("key-%d", rng.IntN(30))
			val := make([]byte, rng.IntN(12))
			for j := range val {
				val[j] = alphabet[rng.IntN(len(alphabet))]
			}
			require.NoError(t, m.Set(key, string(val)))
		}

		back, err := Unflatten(m.Flatten())
		require.NoError(t, err)
		if !m.Equal(back) {
			t.Errorf("seed %d: expected %q, got %q", seed, m.Flatten(), back.Flatten())
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := FromPairs("a", "1")
	c := m.Clone()
	require.NoError(t, c.Set("a", "2"))
	require.NoError(t, c.Set("b", "3"))

	assert.Equal(t, "a=1", m.Flatten())
	assert.Equal(t, "a=2;b=3", c.Flatten())
}

func TestEqual(t *testing.T) {
	assert.True(t, FromPairs("a", "1", "b", "2").Equal(FromPairs("a", "1", "b", "2")))
	assert.False(t, FromPairs("a", "1", "b", "2").Equal(FromPairs("b", "2", "a", "1")), "order matters")
	assert.False(t, FromPairs("a", "1").Equal(FromPairs("a", "2")))
	assert.True(t, New().Equal(nil))
}

func TestAllStopsEarly(t *testing.T) {
	m := FromPairs("a", "1", "b", "2", "c", "3")
	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestPendingMergeLastWriterWins(t *testing.T) {
	canonical := FromPairs("a", "1", "gps-latitude", "10.0", "c", "3")

	var p Pending
	require.NoError(t, p.Set("a", "2"))
	require.NoError(t, p.Remove("gps-latitude"))
	require.NoError(t, p.Set("d", "4"))
	require.NoError(t, p.Set("a", "5"))
	require.NoError(t, p.Remove("d"))

	c, ok := p.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, Change{Key: "a", Value: "5"}, c)

	c, ok = p.Lookup("d")
	assert.True(t, ok)
	assert.True(t, c.Remove)

	p.Merge(canonical)
	assert.Equal(t, "a=5;c=3", canonical.Flatten())
}

func TestPendingRejectsInvalid(t *testing.T) {
	var p Pending
	assert.ErrorIs(t, p.Set("a;b", "1"), ErrInvalidKey)
	assert.ErrorIs(t, p.Set("a", "1;2"), ErrInvalidValue)
	assert.ErrorIs(t, p.Remove(""), ErrInvalidKey)
	assert.Equal(t, 0, p.Len())
}

func TestPendingReset(t *testing.T) {
	var p Pending
	require.NoError(t, p.Set("a", "1"))
	p.Reset()

	assert.Equal(t, 0, p.Len())
	_, ok := p.Lookup("a")
	assert.False(t, ok)

	m := FromPairs("a", "0")
	p.Merge(m)
	assert.Equal(t, "a=0", m.Flatten())
}
