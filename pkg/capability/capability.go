// Package capability describes what a capture device supports for one
// session and renders that description as the strings published to
// applications.
//
// A Capability is loaded once when a device is opened (from a YAML profile
// or a builtin profile) and is read-only afterwards.
package capability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/camparam/camparam-go/pkg/wire"
)

// ErrInvalidCapability is returned when a capability fails validation.
var ErrInvalidCapability = errors.New("invalid capability")

// Size is a frame dimension in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// String renders the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// ParseSize parses "WxH".
func ParseSize(s string) (Size, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return Size{}, fmt.Errorf("size %q: missing 'x' delimiter", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Size{}, fmt.Errorf("size %q: invalid width: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Size{}, fmt.Errorf("size %q: invalid height: %w", s, err)
	}
	return Size{Width: width, Height: height}, nil
}

// ParseSizeList parses "WxH,WxH,...". An empty string yields no sizes.
func ParseSizeList(s string) ([]Size, error) {
	if s == "" {
		return nil, nil
	}
	var out []Size
	for _, part := range strings.Split(s, ",") {
		sz, err := ParseSize(part)
		if err != nil {
			return nil, err
		}
		out = append(out, sz)
	}
	return out, nil
}

// ContainsSize reports whether sizes holds an exact match for s.
func ContainsSize(sizes []Size, s Size) bool {
	for _, c := range sizes {
		if c == s {
			return true
		}
	}
	return false
}

// FPSRange is a supported frame-rate window in frames per second.
type FPSRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// MilliMin returns the lower bound in milli-fps.
func (r FPSRange) MilliMin() int { return int(r.Min * 1000) }

// MilliMax returns the upper bound in milli-fps.
func (r FPSRange) MilliMax() int { return int(r.Max * 1000) }

// Range bounds a numeric attribute.
type Range struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Step    int `yaml:"step"`
	Default int `yaml:"default"`
}

// Contains reports whether min <= v <= max.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// HFRInfo pairs a high frame rate mode code with its maximum size.
type HFRInfo struct {
	Mode int
	Size Size
}

// Capability is the read-only snapshot of what the device supports.
type Capability struct {
	Name string

	PreviewSizes []Size
	VideoSizes   []Size
	PictureSizes []Size
	RawDim       Size

	FPSRanges []FPSRange
	HFR       []HFRInfo

	PreviewFormats []int
	RawFormats     []int
	FocusModes     []int
	AECModes       []int
	Antibandings   []int
	Effects        []int
	WhiteBalances  []int
	FlashModes     []int
	SceneModes     []int
	ISOModes       []int
	FocusAlgos     []int

	Brightness Range
	Sharpness  Range
	Contrast   Range
	Saturation Range
	SCEFactor  Range

	ExposureCompensation     Range
	ExposureCompensationStep float64

	ZoomSupported       bool
	SmoothZoomSupported bool
	ZoomRatios          []int

	MaxFocusAreas    int
	MaxMeteringAreas int
	MaxNumROI        int

	VideoSnapshotSupported      bool
	VideoStabilizationSupported bool
	AutoExposureLockSupported   bool
	AutoWBLockSupported         bool
	FeatureMask                 uint32

	FocalLength         float64
	HorizontalViewAngle float64
	VerticalViewAngle   float64
}

// HasZoom reports whether zoom requests can be honoured.
func (c *Capability) HasZoom() bool {
	return c.ZoomSupported && len(c.ZoomRatios) > 0
}

// HFRSizes returns the maximum size of every HFR entry.
func (c *Capability) HFRSizes() []Size {
	out := make([]Size, 0, len(c.HFR))
	for _, h := range c.HFR {
		out = append(out, h.Size)
	}
	return out
}

// Validate checks the snapshot for internal consistency.
func (c *Capability) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCapability)
	}
	if len(c.PreviewSizes) == 0 {
		return fmt.Errorf("%w: at least one preview size is required", ErrInvalidCapability)
	}
	for _, list := range [][]Size{c.PreviewSizes, c.VideoSizes, c.PictureSizes} {
		for _, s := range list {
			if s.Width <= 0 || s.Height <= 0 {
				return fmt.Errorf("%w: size %s must be positive", ErrInvalidCapability, s)
			}
		}
	}
	for _, r := range c.FPSRanges {
		if r.Min <= 0 || r.Min > r.Max {
			return fmt.Errorf("%w: fps range (%g,%g)", ErrInvalidCapability, r.Min, r.Max)
		}
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"brightness", c.Brightness},
		{"sharpness", c.Sharpness},
		{"contrast", c.Contrast},
		{"saturation", c.Saturation},
		{"sce-factor", c.SCEFactor},
		{"exposure-compensation", c.ExposureCompensation},
	}
	for _, nr := range ranges {
		if nr.r.Min > nr.r.Max {
			return fmt.Errorf("%w: %s min %d > max %d", ErrInvalidCapability, nr.name, nr.r.Min, nr.r.Max)
		}
		if !nr.r.Contains(nr.r.Default) {
			return fmt.Errorf("%w: %s default %d outside [%d,%d]",
				ErrInvalidCapability, nr.name, nr.r.Default, nr.r.Min, nr.r.Max)
		}
	}

	if c.MaxFocusAreas < 0 || c.MaxFocusAreas > wire.MaxROI {
		return fmt.Errorf("%w: max focus areas %d outside [0,%d]", ErrInvalidCapability, c.MaxFocusAreas, wire.MaxROI)
	}
	if c.MaxMeteringAreas < 0 || c.MaxMeteringAreas > wire.MaxROI {
		return fmt.Errorf("%w: max metering areas %d outside [0,%d]", ErrInvalidCapability, c.MaxMeteringAreas, wire.MaxROI)
	}
	if c.MaxNumROI < 0 {
		return fmt.Errorf("%w: max face count %d", ErrInvalidCapability, c.MaxNumROI)
	}
	return nil
}
