package params

import (
	"fmt"
	"strconv"

	"github.com/camparam/camparam-go/pkg/attr"
	"github.com/camparam/camparam-go/pkg/batch"
	"github.com/camparam/camparam-go/pkg/capability"
)

// StreamType identifies a pipeline stream.
type StreamType uint8

const (
	StreamDefault StreamType = iota
	StreamPreview
	StreamPostview
	StreamMetadata
	StreamSnapshot
	StreamOfflineProc
	StreamRaw
	StreamVideo
)

// String returns the stream name.
func (s StreamType) String() string {
	switch s {
	case StreamDefault:
		return "default"
	case StreamPreview:
		return "preview"
	case StreamPostview:
		return "postview"
	case StreamMetadata:
		return "metadata"
	case StreamSnapshot:
		return "snapshot"
	case StreamOfflineProc:
		return "offline"
	case StreamRaw:
		return "raw"
	case StreamVideo:
		return "video"
	default:
		return "unknown"
	}
}

// ParseStreamType parses a stream name as printed by String.
func ParseStreamType(name string) (StreamType, bool) {
	for s := StreamDefault; s <= StreamVideo; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// MetadataBufferSize is the width of the metadata stream: one full slot
// per parameter.
const MetadataBufferSize = batch.MaxEntrySize * int(batch.ParamMax)

// StreamDimension returns the frame size of a stream.
func (p *Parameters) StreamDimension(s StreamType) (capability.Size, error) {
	switch s {
	case StreamPreview, StreamPostview:
		return p.committedSize(KeyPreviewSize), nil
	case StreamSnapshot, StreamOfflineProc:
		return p.committedSize(KeyPictureSize), nil
	case StreamVideo:
		return p.committedSize(KeyVideoSize), nil
	case StreamRaw:
		return p.cap.RawDim, nil
	case StreamMetadata:
		return capability.Size{Width: MetadataBufferSize, Height: 1}, nil
	default:
		return capability.Size{}, fmt.Errorf("%w: %s has no dimension", ErrUnsupportedStream, s)
	}
}

// StreamFormat returns the pixel format code of a stream.
func (p *Parameters) StreamFormat(s StreamType) (int, error) {
	switch s {
	case StreamPreview, StreamPostview:
		code := attr.Lookup(attr.PreviewFormats, p.canonical.Value(KeyPreviewFormat))
		if code == attr.NotFound {
			return attr.FormatYUV420NV21, nil
		}
		return code, nil
	case StreamSnapshot, StreamOfflineProc:
		return attr.FormatYUV420NV21, nil
	case StreamVideo:
		return attr.FormatYUV420NV12, nil
	case StreamRaw:
		code := attr.Lookup(attr.PictureTypes, p.canonical.Value(KeyPictureFormat))
		if code < attr.FormatYUVRaw8Bit {
			return 0, fmt.Errorf("%w: picture format %q is not raw",
				ErrInvalidValue, p.canonical.Value(KeyPictureFormat))
		}
		return code, nil
	default:
		return 0, fmt.Errorf("%w: %s has no format", ErrUnsupportedStream, s)
	}
}

// intValue returns the committed integer value of key, or def when it is
// missing, malformed or negative.
func (p *Parameters) intValue(key string, def int) int {
	n, err := strconv.Atoi(p.canonical.Value(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}

// ThumbnailSize returns the committed JPEG thumbnail size.
func (p *Parameters) ThumbnailSize() capability.Size {
	return capability.Size{
		Width:  p.intValue(KeyThumbnailWidth, 0),
		Height: p.intValue(KeyThumbnailHeight, 0),
	}
}

// JPEGQuality returns the committed JPEG quality, 85 if unset.
func (p *Parameters) JPEGQuality() int {
	return p.intValue(KeyJPEGQuality, 85)
}

// JPEGRotation returns the committed JPEG rotation in degrees.
func (p *Parameters) JPEGRotation() int {
	return p.intValue(KeyRotation, 0)
}

// NumSnapshots returns the number of pictures per shutter press.
func (p *Parameters) NumSnapshots() int {
	return p.intValue(KeyNumSnapshots, 1)
}

// ZSLBurstInterval returns the ZSL burst interval.
func (p *Parameters) ZSLBurstInterval() int {
	return p.intValue(KeyZSLBurstInterval, p.config.ZSLBurstInterval)
}

// ZSLBackLookCount returns the number of retroactive ZSL frames.
func (p *Parameters) ZSLBackLookCount() int {
	return p.intValue(KeyZSLBurstLookback, p.config.ZSLBackLookCount)
}

// ZSLQueueDepth returns the ZSL queue depth.
func (p *Parameters) ZSLQueueDepth() int {
	return p.intValue(KeyZSLQueueDepth, p.config.ZSLQueueDepth)
}

// IsZSL reports whether ZSL is committed on.
func (p *Parameters) IsZSL() bool {
	return attr.Lookup(attr.OnOff, p.canonical.Value(KeyZSL)) == 1
}

// IsRecordingHint reports whether the recording hint is committed.
func (p *Parameters) IsRecordingHint() bool {
	return attr.Lookup(attr.TrueFalse, p.canonical.Value(KeyRecordingHint)) == 1
}

// IsNoDisplay reports whether no-display mode is committed on.
func (p *Parameters) IsNoDisplay() bool {
	n, err := strconv.Atoi(p.canonical.Value(KeyNoDisplayMode))
	return err == nil && n > 0
}

// IsWaveletDenoise reports whether wavelet denoise is committed on.
func (p *Parameters) IsWaveletDenoise() bool {
	return attr.Lookup(attr.Denoise, p.canonical.Value(KeyDenoise)) == 1
}

// IsHistogramEnabled reports the last state accepted by the device.
func (p *Parameters) IsHistogramEnabled() bool {
	return p.histogram
}

// IsFaceDetectionEnabled reports the last state accepted by the device.
func (p *Parameters) IsFaceDetectionEnabled() bool {
	return p.faceDetection
}

// SetTouchIndexAEC stages the touch AEC position for the next Commit. A
// following Update starts a new cycle and drops it.
func (p *Parameters) SetTouchIndexAEC(x, y int) error {
	return p.setTouchIndex(KeyTouchIndexAEC, x, y)
}

// TouchIndexAEC returns the committed touch AEC position, or (-1,-1).
func (p *Parameters) TouchIndexAEC() (int, int) {
	return p.touchIndex(KeyTouchIndexAEC)
}

// SetTouchIndexAF stages the touch AF position for the next Commit.
func (p *Parameters) SetTouchIndexAF(x, y int) error {
	return p.setTouchIndex(KeyTouchIndexAF, x, y)
}

// TouchIndexAF returns the committed touch AF position, or (-1,-1).
func (p *Parameters) TouchIndexAF() (int, int) {
	return p.touchIndex(KeyTouchIndexAF)
}

func (p *Parameters) setTouchIndex(key string, x, y int) error {
	if p.closed {
		return ErrClosed
	}
	return p.stage(key, fmt.Sprintf("%dx%d", x, y), noSlot, nil, false)
}

func (p *Parameters) touchIndex(key string) (int, int) {
	s, err := capability.ParseSize(p.canonical.Value(key))
	if err != nil {
		return -1, -1
	}
	return s.Width, s.Height
}
