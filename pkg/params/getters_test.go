package params

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camparam/camparam-go/pkg/attr"
	"github.com/camparam/camparam-go/pkg/capability"
)

func TestStreamTypeString(t *testing.T) {
	for s := StreamDefault; s <= StreamVideo; s++ {
		got, ok := ParseStreamType(s.String())
		if !ok || got != s {
			t.Errorf("expected %s to parse back, got %v %v", s, got, ok)
		}
	}
	assert.Equal(t, "unknown", StreamType(99).String())
	_, ok := ParseStreamType("thumbnail")
	assert.False(t, ok)
}

func TestStreamDimension(t *testing.T) {
	p, _ := newTestParams(t, "default")

	tests := []struct {
		stream  StreamType
		want    capability.Size
		wantErr error
	}{
		{StreamPreview, capability.Size{Width: 640, Height: 480}, nil},
		{StreamPostview, capability.Size{Width: 640, Height: 480}, nil},
		{StreamSnapshot, capability.Size{Width: 3264, Height: 2448}, nil},
		{StreamOfflineProc, capability.Size{Width: 3264, Height: 2448}, nil},
		{StreamVideo, capability.Size{Width: 1280, Height: 720}, nil},
		{StreamRaw, capability.Size{Width: 3264, Height: 2448}, nil},
		{StreamMetadata, capability.Size{Width: MetadataBufferSize, Height: 1}, nil},
		{StreamDefault, capability.Size{}, ErrUnsupportedStream},
	}
	for _, tt := range tests {
		t.Run(tt.stream.String(), func(t *testing.T) {
			got, err := p.StreamDimension(tt.stream)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestStreamFormat(t *testing.T) {
	p, _ := newTestParams(t, "default")

	tests := []struct {
		stream  StreamType
		want    int
		wantErr error
	}{
		{StreamPreview, attr.FormatYUV420NV21, nil},
		{StreamSnapshot, attr.FormatYUV420NV21, nil},
		{StreamOfflineProc, attr.FormatYUV420NV21, nil},
		{StreamVideo, attr.FormatYUV420NV12, nil},
		{StreamRaw, 0, ErrInvalidValue},
		{StreamMetadata, 0, ErrUnsupportedStream},
	}
	for _, tt := range tests {
		t.Run(tt.stream.String(), func(t *testing.T) {
			got, err := p.StreamFormat(tt.stream)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestStreamFormatFollowsCommittedState(t *testing.T) {
	p, _ := newTestParams(t, "default")

	apply(t, p, KeyPreviewFormat, "nv12", KeyPictureFormat, "yuv-raw8")

	got, err := p.StreamFormat(StreamPreview)
	require.NoError(t, err)
	assert.Equal(t, attr.FormatYUV420NV12, got)

	got, err = p.StreamFormat(StreamRaw)
	require.NoError(t, err)
	assert.Equal(t, attr.FormatYUVRaw8Bit, got)
}

func TestStreamDimensionFollowsCommit(t *testing.T) {
	p, sim := newTestParams(t, "default")

	_, err := p.Update(request(p, KeyPictureSize, "1600x1200"))
	require.NoError(t, err)
	got, _ := p.StreamDimension(StreamSnapshot)
	assert.Equal(t, capability.Size{Width: 3264, Height: 2448}, got, "staged size must not be visible")

	sim.FailNext(nil)
	require.Error(t, p.Commit(context.Background()))
	got, _ = p.StreamDimension(StreamSnapshot)
	assert.Equal(t, capability.Size{Width: 3264, Height: 2448}, got)

	apply(t, p, KeyPictureSize, "1600x1200")
	got, _ = p.StreamDimension(StreamSnapshot)
	assert.Equal(t, capability.Size{Width: 1600, Height: 1200}, got)
}

func TestGetters(t *testing.T) {
	p, _ := newTestParams(t, "default")

	assert.Equal(t, capability.Size{Width: 512, Height: 288}, p.ThumbnailSize())
	assert.Equal(t, 85, p.JPEGQuality())
	assert.Equal(t, 0, p.JPEGRotation())
	assert.Equal(t, 1, p.NumSnapshots())
	assert.Equal(t, 1, p.ZSLBurstInterval())
	assert.Equal(t, 2, p.ZSLBackLookCount())
	assert.Equal(t, 2, p.ZSLQueueDepth())
	assert.False(t, p.IsZSL())
	assert.False(t, p.IsRecordingHint())
	assert.False(t, p.IsNoDisplay())
	assert.False(t, p.IsWaveletDenoise())
	assert.False(t, p.IsHistogramEnabled())
	assert.False(t, p.IsFaceDetectionEnabled())

	apply(t, p,
		KeyJPEGQuality, "70",
		KeyRotation, "180",
		KeyNumSnapshots, "3",
		KeyZSL, "on",
		KeyRecordingHint, "true",
		KeyNoDisplayMode, "1")

	assert.Equal(t, 70, p.JPEGQuality())
	assert.Equal(t, 180, p.JPEGRotation())
	assert.Equal(t, 3, p.NumSnapshots())
	assert.True(t, p.IsZSL())
	assert.True(t, p.IsRecordingHint())
	assert.True(t, p.IsNoDisplay())
}

func TestNumSnapshotsFallback(t *testing.T) {
	p, _ := newTestParams(t, "default")

	apply(t, p, KeyNumSnapshots, "-4")
	assert.Equal(t, 1, p.NumSnapshots())
}

func TestTouchIndex(t *testing.T) {
	p, _ := newTestParams(t, "default")

	x, y := p.TouchIndexAF()
	assert.Equal(t, -1, x)
	assert.Equal(t, -1, y)

	require.NoError(t, p.SetTouchIndexAF(120, 80))
	require.NoError(t, p.SetTouchIndexAEC(10, 20))
	x, _ = p.TouchIndexAF()
	assert.Equal(t, -1, x, "staged index must not be visible before commit")

	require.NoError(t, p.Commit(context.Background()))
	x, y = p.TouchIndexAF()
	assert.Equal(t, 120, x)
	assert.Equal(t, 80, y)
	x, y = p.TouchIndexAEC()
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)
}

func TestTouchIndexDroppedByUpdate(t *testing.T) {
	p, _ := newTestParams(t, "default")

	require.NoError(t, p.SetTouchIndexAEC(10, 20))
	_, err := p.Update(p.Canonical())
	require.NoError(t, err)
	require.NoError(t, p.Commit(context.Background()))

	x, y := p.TouchIndexAEC()
	assert.Equal(t, -1, x)
	assert.Equal(t, -1, y)
}
