package wire

// MaxROI is the largest number of regions a single ROI payload can carry.
const MaxROI = 10

// MaxExpBracketingLength is the largest exposure-list string carried by an
// exposure bracketing payload. Longer lists are truncated.
const MaxExpBracketingLength = 32

// FPSRange is the preview frame-rate window in frames per second.
type FPSRange struct {
	MinFPS float32 `cbor:"1,keyasint"`
	MaxFPS float32 `cbor:"2,keyasint"`
}

// Rect is a rectangle in device pixel coordinates.
type Rect struct {
	_      struct{} `cbor:",toarray"`
	Left   int32
	Top    int32
	Width  int32
	Height int32
}

// ROIInfo carries the focus regions of interest.
type ROIInfo struct {
	NumROI uint8  `cbor:"1,keyasint"`
	ROI    []Rect `cbor:"2,keyasint,omitempty"`
}

// Point is a pixel coordinate.
type Point struct {
	_ struct{} `cbor:",toarray"`
	X uint32
	Y uint32
}

// AECROIType selects how AEC regions are addressed.
type AECROIType uint8

const (
	// AECROIByIndex addresses regions by grid index.
	AECROIByIndex AECROIType = 0
	// AECROIByCoordinate addresses regions by centre point.
	AECROIByCoordinate AECROIType = 1
)

// String returns the addressing mode name.
func (t AECROIType) String() string {
	switch t {
	case AECROIByIndex:
		return "BY_INDEX"
	case AECROIByCoordinate:
		return "BY_COORDINATE"
	default:
		return "UNKNOWN"
	}
}

// AECROI carries the metering regions as centre points.
type AECROI struct {
	Enable bool       `cbor:"1,keyasint"`
	Type   AECROIType `cbor:"2,keyasint"`
	Points []Point    `cbor:"3,keyasint,omitempty"`
}

// ExpBracketing carries the HDR / exposure bracketing mode.
// Values is only set for explicit exposure bracketing.
type ExpBracketing struct {
	Mode   int32  `cbor:"1,keyasint"`
	Values string `cbor:"2,keyasint,omitempty"`
}

// DenoisePlates selects which image planes wavelet denoise processes.
type DenoisePlates uint8

const (
	DenoiseYCbCrPlane      DenoisePlates = 0
	DenoiseCbCrOnly        DenoisePlates = 1
	DenoiseStreamlineYCbCr DenoisePlates = 2
	DenoiseStreamlinedCbCr DenoisePlates = 3
)

// String returns the plate selection name.
func (p DenoisePlates) String() string {
	switch p {
	case DenoiseYCbCrPlane:
		return "YCBCR_PLANE"
	case DenoiseCbCrOnly:
		return "CBCR_ONLY"
	case DenoiseStreamlineYCbCr:
		return "STREAMLINE_YCBCR"
	case DenoiseStreamlinedCbCr:
		return "STREAMLINED_CBCR"
	default:
		return "UNKNOWN"
	}
}

// DenoiseParam carries the wavelet denoise setting.
type DenoiseParam struct {
	Enable bool          `cbor:"1,keyasint"`
	Plates DenoisePlates `cbor:"2,keyasint"`
}

// FaceDetectParam carries the face detection setting.
type FaceDetectParam struct {
	Enable bool  `cbor:"1,keyasint"`
	NumFD  int32 `cbor:"2,keyasint"`
}

// BundleConfig groups streams that the pipeline must start together.
type BundleConfig struct {
	BundleID uint32   `cbor:"1,keyasint"`
	Streams  []uint32 `cbor:"2,keyasint"`
}
