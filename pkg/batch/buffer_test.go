package batch

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferIsEmpty(t *testing.T) {
	b := New()

	assert.True(t, b.Empty())
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Slots())
	assert.False(t, b.Contains(ParamZoom))
	assert.Nil(t, b.Payload(ParamZoom))
}

func TestInsertKeepsAscendingOrder(t *testing.T) {
	tests := []struct {
		name   string
		insert []ParamType
		want   []ParamType
	}{
		{
			name:   "ascending",
			insert: []ParamType{ParamHFR, ParamZoom, ParamISO},
			want:   []ParamType{ParamHFR, ParamZoom, ParamISO},
		},
		{
			name:   "descending",
			insert: []ParamType{ParamHDR, ParamISO, ParamHFR},
			want:   []ParamType{ParamHFR, ParamISO, ParamHDR},
		},
		{
			name:   "middle splice",
			insert: []ParamType{ParamZoom, ParamHDR, ParamContrast, ParamAFROI},
			want:   []ParamType{ParamZoom, ParamContrast, ParamAFROI, ParamHDR},
		},
		{
			name:   "last slot",
			insert: []ParamType{ParamSetBundle, ParamHFR},
			want:   []ParamType{ParamHFR, ParamSetBundle},
		},
		{
			name:   "duplicates",
			insert: []ParamType{ParamISO, ParamZoom, ParamISO, ParamZoom},
			want:   []ParamType{ParamZoom, ParamISO},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for _, p := range tt.insert {
				require.NoError(t, b.Insert(p, []byte{byte(p)}))
			}
			if got := b.Slots(); !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			assert.Equal(t, len(tt.want), b.Len())
		})
	}
}

func TestInsertRandomOrderMatchesSet(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		r := rand.New(rand.NewPCG(seed, seed*7))
		b := New()
		want := map[ParamType]bool{}

		n := r.IntN(int(ParamMax) * 2)
		for range n {
			p := ParamType(r.IntN(int(ParamMax)))
			require.NoError(t, b.Insert(p, []byte{byte(p), 0xAA}))
			want[p] = true
		}

		got := b.Slots()
		for i := 1; i < len(got); i++ {
			if got[i-1] >= got[i] {
				t.Fatalf("seed %d: list not strictly ascending: %v", seed, got)
			}
		}
		if len(got) != len(want) {
			t.Fatalf("seed %d: expected %d slots, got %d", seed, len(want), len(got))
		}
		for _, p := range got {
			if !want[p] {
				t.Errorf("seed %d: unexpected slot %s", seed, p)
			}
		}
	}
}

func TestInsertOverwritesPayload(t *testing.T) {
	b := New()
	require.NoError(t, b.Insert(ParamContrast, []byte{1, 2, 3, 4}))
	require.NoError(t, b.Insert(ParamContrast, []byte{9}))

	assert.Equal(t, []byte{9}, b.Payload(ParamContrast))
	assert.Equal(t, 1, b.Len())
}

func TestInsertOverflow(t *testing.T) {
	b := New()
	err := b.Insert(ParamAFROI, make([]byte, MaxEntrySize+1))

	if !errors.Is(err, ErrBatchOverflow) {
		t.Fatalf("expected ErrBatchOverflow, got %v", err)
	}
	assert.False(t, b.Contains(ParamAFROI), "rejected payload must not link the slot")
	assert.True(t, b.Empty())

	require.NoError(t, b.Insert(ParamAFROI, make([]byte, MaxEntrySize)))
}

func TestInsertInvalidSlot(t *testing.T) {
	b := New()
	err := b.Insert(ParamMax, []byte{1})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	err = b.Flag(ParamMax + 3)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestFlagLinksWithoutPayload(t *testing.T) {
	b := New()
	require.NoError(t, b.Flag(ParamISO))
	require.NoError(t, b.Insert(ParamZoom, []byte{5}))

	assert.Equal(t, []ParamType{ParamZoom, ParamISO}, b.Slots())
	assert.Equal(t, []byte{}, b.Payload(ParamISO))
}

func TestReset(t *testing.T) {
	b := New()
	require.NoError(t, b.Insert(ParamZoom, []byte{1}))
	require.NoError(t, b.Insert(ParamHDR, []byte{2}))

	b.Reset()

	assert.True(t, b.Empty())
	assert.Nil(t, b.Payload(ParamZoom))

	require.NoError(t, b.Insert(ParamISO, []byte{3}))
	assert.Equal(t, []ParamType{ParamISO}, b.Slots())
}

func TestAllStopsEarly(t *testing.T) {
	b := New()
	for _, p := range []ParamType{ParamHFR, ParamZoom, ParamISO} {
		require.NoError(t, b.Insert(p, nil))
	}

	var seen []ParamType
	for p := range b.All() {
		seen = append(seen, p)
		if p == ParamZoom {
			break
		}
	}
	assert.Equal(t, []ParamType{ParamHFR, ParamZoom}, seen)
}

func TestInsertValueAndDecode(t *testing.T) {
	b := New()
	require.NoError(t, b.InsertValue(ParamBrightness, int32(3)))

	var v int32
	require.NoError(t, b.Decode(ParamBrightness, &v))
	assert.Equal(t, int32(3), v)

	assert.ErrorIs(t, b.Decode(ParamSharpness, &v), ErrInvalidSlot)
}

func TestFrameRoundTrip(t *testing.T) {
	b := New()
	require.NoError(t, b.InsertValue(ParamWhiteBalance, int32(1)))
	require.NoError(t, b.InsertValue(ParamZoom, int32(150)))
	require.NoError(t, b.Flag(ParamHistogram))

	data, err := b.MarshalFrame()
	require.NoError(t, err)

	decoded, err := UnmarshalFrame(data)
	require.NoError(t, err)

	assert.Equal(t, b.Slots(), decoded.Slots())
	for slot, payload := range b.All() {
		assert.Equal(t, payload, decoded.Payload(slot), "slot %s", slot)
	}
}

func TestUnmarshalFrameInvalid(t *testing.T) {
	_, err := UnmarshalFrame([]byte{0xff, 0x00})
	assert.Error(t, err)
}

func TestParamTypeString(t *testing.T) {
	tests := []struct {
		p    ParamType
		want string
	}{
		{ParamHFR, "HFR"},
		{ParamBestshotMode, "BESTSHOT_MODE"},
		{ParamSetBundle, "SET_BUNDLE"},
		{ParamMax, "MAX"},
		{ParamMax + 1, "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestParseParamType(t *testing.T) {
	for p := ParamType(0); p < ParamMax; p++ {
		got, ok := ParseParamType(p.String())
		require.True(t, ok, "slot %d", p)
		assert.Equal(t, p, got)
	}

	_, ok := ParseParamType("NOPE")
	assert.False(t, ok)
}
