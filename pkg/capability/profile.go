package capability

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/camparam/camparam-go/pkg/attr"
)

//go:embed profiles/*.yaml
var profileFS embed.FS

// LoadError provides details about a profile loading error.
type LoadError struct {
	// File is the path of the profile (empty for in-memory data).
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File == "" {
		return msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// profile is the YAML form of a Capability. Mode lists are written as
// published tokens; an integer that is not a token is taken as a raw
// device code.
type profile struct {
	Name string `yaml:"name"`

	PreviewSizes []string `yaml:"preview-sizes"`
	VideoSizes   []string `yaml:"video-sizes"`
	PictureSizes []string `yaml:"picture-sizes"`
	RawDim       string   `yaml:"raw-dim"`

	FPSRanges []FPSRange `yaml:"fps-ranges"`
	HFR       []struct {
		Mode string `yaml:"mode"`
		Size string `yaml:"size"`
	} `yaml:"hfr"`

	PreviewFormats []string `yaml:"preview-formats"`
	RawFormats     []string `yaml:"raw-formats"`
	FocusModes     []string `yaml:"focus-modes"`
	AECModes       []string `yaml:"auto-exposure"`
	Antibandings   []string `yaml:"antibanding"`
	Effects        []string `yaml:"effects"`
	WhiteBalances  []string `yaml:"white-balance"`
	FlashModes     []string `yaml:"flash-modes"`
	SceneModes     []string `yaml:"scene-modes"`
	ISOModes       []string `yaml:"iso-modes"`
	FocusAlgos     []string `yaml:"focus-algos"`

	Brightness Range `yaml:"brightness"`
	Sharpness  Range `yaml:"sharpness"`
	Contrast   Range `yaml:"contrast"`
	Saturation Range `yaml:"saturation"`
	SCEFactor  Range `yaml:"sce-factor"`

	ExposureCompensation     Range   `yaml:"exposure-compensation"`
	ExposureCompensationStep float64 `yaml:"exposure-compensation-step"`

	Zoom struct {
		Supported       bool  `yaml:"supported"`
		SmoothSupported bool  `yaml:"smooth"`
		Ratios          []int `yaml:"ratios"`
	} `yaml:"zoom"`

	MaxFocusAreas    int `yaml:"max-focus-areas"`
	MaxMeteringAreas int `yaml:"max-metering-areas"`
	MaxNumROI        int `yaml:"max-faces"`

	VideoSnapshotSupported      bool   `yaml:"video-snapshot"`
	VideoStabilizationSupported bool   `yaml:"video-stabilization"`
	AutoExposureLockSupported   bool   `yaml:"ae-lock"`
	AutoWBLockSupported         bool   `yaml:"awb-lock"`
	FeatureMask                 uint32 `yaml:"feature-mask"`

	FocalLength         float64 `yaml:"focal-length"`
	HorizontalViewAngle float64 `yaml:"horizontal-view-angle"`
	VerticalViewAngle   float64 `yaml:"vertical-view-angle"`
}

// Parse parses and validates a capability profile from YAML bytes.
func Parse(data []byte) (*Capability, error) {
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}

	c, err := p.resolve()
	if err != nil {
		return nil, &LoadError{Message: "failed to resolve profile", Cause: err}
	}
	if err := c.Validate(); err != nil {
		return nil, &LoadError{Message: "profile is inconsistent", Cause: err}
	}
	return c, nil
}

// LoadFile loads a capability profile from a file.
func LoadFile(path string) (*Capability, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	c, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return c, nil
}

func (p *profile) resolve() (*Capability, error) {
	c := &Capability{
		Name:                        p.Name,
		FPSRanges:                   p.FPSRanges,
		Brightness:                  p.Brightness,
		Sharpness:                   p.Sharpness,
		Contrast:                    p.Contrast,
		Saturation:                  p.Saturation,
		SCEFactor:                   p.SCEFactor,
		ExposureCompensation:        p.ExposureCompensation,
		ExposureCompensationStep:    p.ExposureCompensationStep,
		ZoomSupported:               p.Zoom.Supported,
		SmoothZoomSupported:         p.Zoom.SmoothSupported,
		ZoomRatios:                  p.Zoom.Ratios,
		MaxFocusAreas:               p.MaxFocusAreas,
		MaxMeteringAreas:            p.MaxMeteringAreas,
		MaxNumROI:                   p.MaxNumROI,
		VideoSnapshotSupported:      p.VideoSnapshotSupported,
		VideoStabilizationSupported: p.VideoStabilizationSupported,
		AutoExposureLockSupported:   p.AutoExposureLockSupported,
		AutoWBLockSupported:         p.AutoWBLockSupported,
		FeatureMask:                 p.FeatureMask,
		FocalLength:                 p.FocalLength,
		HorizontalViewAngle:         p.HorizontalViewAngle,
		VerticalViewAngle:           p.VerticalViewAngle,
	}

	var err error
	if c.PreviewSizes, err = parseSizes("preview-sizes", p.PreviewSizes); err != nil {
		return nil, err
	}
	if c.VideoSizes, err = parseSizes("video-sizes", p.VideoSizes); err != nil {
		return nil, err
	}
	if c.PictureSizes, err = parseSizes("picture-sizes", p.PictureSizes); err != nil {
		return nil, err
	}
	if p.RawDim != "" {
		if c.RawDim, err = ParseSize(p.RawDim); err != nil {
			return nil, fmt.Errorf("raw-dim: %w", err)
		}
	}

	for i, h := range p.HFR {
		mode, err := resolveCode(h.Mode, attr.HFRModes)
		if err != nil {
			return nil, fmt.Errorf("hfr[%d]: %w", i, err)
		}
		size, err := ParseSize(h.Size)
		if err != nil {
			return nil, fmt.Errorf("hfr[%d]: %w", i, err)
		}
		c.HFR = append(c.HFR, HFRInfo{Mode: mode, Size: size})
	}

	lists := []struct {
		key   string
		in    []string
		table attr.Table
		out   *[]int
	}{
		{"preview-formats", p.PreviewFormats, attr.PreviewFormats, &c.PreviewFormats},
		{"raw-formats", p.RawFormats, attr.PictureTypes, &c.RawFormats},
		{"focus-modes", p.FocusModes, attr.FocusModes, &c.FocusModes},
		{"auto-exposure", p.AECModes, attr.AutoExposure, &c.AECModes},
		{"antibanding", p.Antibandings, attr.Antibanding, &c.Antibandings},
		{"effects", p.Effects, attr.Effects, &c.Effects},
		{"white-balance", p.WhiteBalances, attr.WhiteBalance, &c.WhiteBalances},
		{"flash-modes", p.FlashModes, attr.FlashModes, &c.FlashModes},
		{"scene-modes", p.SceneModes, attr.SceneModes, &c.SceneModes},
		{"iso-modes", p.ISOModes, attr.ISOModes, &c.ISOModes},
		{"focus-algos", p.FocusAlgos, attr.FocusAlgorithms, &c.FocusAlgos},
	}
	for _, l := range lists {
		for _, tok := range l.in {
			code, err := resolveCode(tok, l.table)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", l.key, err)
			}
			*l.out = append(*l.out, code)
		}
	}
	return c, nil
}

func parseSizes(key string, in []string) ([]Size, error) {
	out := make([]Size, 0, len(in))
	for _, s := range in {
		sz, err := ParseSize(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, sz)
	}
	return out, nil
}

func resolveCode(tok string, t attr.Table) (int, error) {
	if code := attr.Lookup(t, tok); code != attr.NotFound {
		return code, nil
	}
	if n, err := strconv.Atoi(tok); err == nil {
		return n, nil
	}
	return 0, fmt.Errorf("unknown token %q", tok)
}

// ---------------------------------------------------------------------------
// Builtin profiles
// ---------------------------------------------------------------------------

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Capability)
)

// Builtin returns the embedded profile with the given name. The returned
// value is shared; callers must not modify it.
func Builtin(name string) (*Capability, error) {
	cacheMu.RLock()
	if c, ok := cache[name]; ok {
		cacheMu.RUnlock()
		return c, nil
	}
	cacheMu.RUnlock()

	data, err := profileFS.ReadFile("profiles/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("builtin profile %q not found: %w", name, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing builtin profile %q: %w", name, err)
	}

	cacheMu.Lock()
	cache[name] = c
	cacheMu.Unlock()

	return c, nil
}

// BuiltinNames returns the names of all embedded profiles, sorted.
func BuiltinNames() ([]string, error) {
	entries, err := profileFS.ReadDir("profiles")
	if err != nil {
		return nil, fmt.Errorf("reading profiles directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
