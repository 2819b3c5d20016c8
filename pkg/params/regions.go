package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/camparam/camparam-go/pkg/batch"
	"github.com/camparam/camparam-go/pkg/capability"
	"github.com/camparam/camparam-go/pkg/kv"
	"github.com/camparam/camparam-go/pkg/wire"
)

// Region coordinates are normalised to [-1000,1000] on both axes, with
// (-1000,-1000) the top-left corner of the preview frame.
const (
	RegionMin = -1000
	RegionMax = 1000
)

// Region is one focus or metering area.
type Region struct {
	Left, Top, Right, Bottom int
	Weight                   int
}

// Width returns Right-Left.
func (r Region) Width() int { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Region) Height() int { return r.Bottom - r.Top }

// IsZero reports whether every field is zero.
func (r Region) IsZero() bool { return r == Region{} }

// Valid reports whether r lies inside the normalised space and is not
// inverted.
func (r Region) Valid() bool {
	return r.Left >= RegionMin && r.Top >= RegionMin &&
		r.Right <= RegionMax && r.Bottom <= RegionMax &&
		r.Width() >= 0 && r.Height() >= 0
}

// Rect maps r onto a frame of the given size.
func (r Region) Rect(frame capability.Size) wire.Rect {
	return wire.Rect{
		Left:   int32((r.Left - RegionMin) * frame.Width / 2000),
		Top:    int32((r.Top - RegionMin) * frame.Height / 2000),
		Width:  int32(r.Width() * frame.Width / 2000),
		Height: int32(r.Height() * frame.Height / 2000),
	}
}

// Center maps the centre of r onto a frame of the given size.
func (r Region) Center(frame capability.Size) wire.Point {
	cx := r.Left + r.Width()/2
	cy := r.Top + r.Height()/2
	return wire.Point{
		X: uint32((cx - RegionMin) * frame.Width / 2000),
		Y: uint32((cy - RegionMin) * frame.Height / 2000),
	}
}

var errRegionSyntax = errors.New("malformed region list")

// ParseRegions parses "(x1,y1,x2,y2,w),(x1,y1,x2,y2,w),..." holding at
// most limit regions. Whitespace around numbers is ignored. The list must
// start with '('; text between or after regions is skipped up to the next
// '('.
func ParseRegions(s string, limit int) ([]Region, error) {
	var out []Region
	rest := s
	for {
		if !strings.HasPrefix(rest, "(") {
			return nil, fmt.Errorf("%w: expected '(' in %q", errRegionSyntax, s)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, fmt.Errorf("%w: missing ')' in %q", errRegionSyntax, s)
		}
		fields := strings.Split(rest[1:end], ",")
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: region %q needs 5 values", errRegionSyntax, rest[:end+1])
		}
		var v [5]int
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: region %q: %v", errRegionSyntax, rest[:end+1], err)
			}
			v[i] = n
		}
		if len(out) >= limit {
			return nil, fmt.Errorf("%w: more than %d regions", errRegionSyntax, limit)
		}
		out = append(out, Region{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3], Weight: v[4]})

		next := strings.IndexByte(rest[end+1:], '(')
		if next < 0 {
			return out, nil
		}
		rest = rest[end+1+next:]
	}
}

// allZero reports whether regions is the published default area list.
func allZero(regions []Region) bool {
	for _, r := range regions {
		if !r.IsZero() {
			return false
		}
	}
	return true
}

func (p *Parameters) parseAreas(key, v string, limit int) ([]Region, error) {
	regions, err := ParseRegions(v, limit)
	if err != nil {
		return nil, p.reject(key, v, "%v", err)
	}
	for _, r := range regions {
		if !r.Valid() {
			return nil, p.reject(key, v, "region outside [%d,%d] or inverted", RegionMin, RegionMax)
		}
	}
	return regions, nil
}

// setFocusAreas is skipped on devices without focus areas.
func (p *Parameters) setFocusAreas(req *kv.Map) error {
	if p.cap.MaxFocusAreas == 0 {
		return nil
	}
	v, ok := p.requested(req, KeyFocusAreas)
	if !ok {
		return nil
	}
	return p.stageFocusAreas(v)
}

func (p *Parameters) stageFocusAreas(v string) error {
	regions, err := p.parseAreas(KeyFocusAreas, v, p.cap.MaxFocusAreas)
	if err != nil {
		return err
	}
	preview := p.effectiveSize(KeyPreviewSize)
	roi := wire.ROIInfo{NumROI: uint8(len(regions))}
	for _, r := range regions {
		roi.ROI = append(roi.ROI, r.Rect(preview))
	}
	return p.stage(KeyFocusAreas, v, batch.ParamAFROI, roi, false)
}

// setMeteringAreas is skipped on devices without metering areas.
func (p *Parameters) setMeteringAreas(req *kv.Map) error {
	if p.cap.MaxMeteringAreas == 0 {
		return nil
	}
	v, ok := p.requested(req, KeyMeteringAreas)
	if !ok {
		return nil
	}
	return p.stageMeteringAreas(v)
}

func (p *Parameters) stageMeteringAreas(v string) error {
	regions, err := p.parseAreas(KeyMeteringAreas, v, p.cap.MaxMeteringAreas)
	if err != nil {
		return err
	}
	payload := wire.AECROI{Type: wire.AECROIByCoordinate}
	if len(regions) > 0 && !allZero(regions) {
		payload.Enable = true
		preview := p.effectiveSize(KeyPreviewSize)
		for _, r := range regions {
			payload.Points = append(payload.Points, r.Center(preview))
		}
	}
	return p.stage(KeyMeteringAreas, v, batch.ParamAECROI, payload, false)
}
