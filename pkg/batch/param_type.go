package batch

// ParamType identifies one device-level parameter slot.
// Slots are dense and ordered; a batch lists populated slots in this order.
type ParamType uint8

const (
	ParamHFR ParamType = iota
	ParamZoom
	ParamLEDMode
	ParamWhiteBalance
	ParamAntibanding
	ParamEffect
	ParamExposureCompensation
	ParamBrightness
	ParamSharpness
	ParamContrast
	ParamSaturation
	ParamISO
	ParamAECLock
	ParamAWBLock
	ParamAECAlgoType
	ParamFocusMode
	ParamFocusAlgoType
	ParamBestshotMode
	ParamSCEFactor
	ParamFPSRange
	ParamAFROI
	ParamAECROI
	ParamHistogram
	ParamFaceDetect
	ParamRollOff
	ParamMCE
	ParamRedeyeReduction
	ParamASDEnable
	ParamRecordingHint
	ParamHDR
	ParamWaveletDenoise
	ParamSetBundle

	// ParamMax is the slot count and the end-of-list sentinel.
	ParamMax
)

// String returns the slot name.
func (p ParamType) String() string {
	switch p {
	case ParamHFR:
		return "HFR"
	case ParamZoom:
		return "ZOOM"
	case ParamLEDMode:
		return "LED_MODE"
	case ParamWhiteBalance:
		return "WHITE_BALANCE"
	case ParamAntibanding:
		return "ANTIBANDING"
	case ParamEffect:
		return "EFFECT"
	case ParamExposureCompensation:
		return "EXPOSURE_COMPENSATION"
	case ParamBrightness:
		return "BRIGHTNESS"
	case ParamSharpness:
		return "SHARPNESS"
	case ParamContrast:
		return "CONTRAST"
	case ParamSaturation:
		return "SATURATION"
	case ParamISO:
		return "ISO"
	case ParamAECLock:
		return "AEC_LOCK"
	case ParamAWBLock:
		return "AWB_LOCK"
	case ParamAECAlgoType:
		return "AEC_ALGO_TYPE"
	case ParamFocusMode:
		return "FOCUS_MODE"
	case ParamFocusAlgoType:
		return "FOCUS_ALGO_TYPE"
	case ParamBestshotMode:
		return "BESTSHOT_MODE"
	case ParamSCEFactor:
		return "SCE_FACTOR"
	case ParamFPSRange:
		return "FPS_RANGE"
	case ParamAFROI:
		return "AF_ROI"
	case ParamAECROI:
		return "AEC_ROI"
	case ParamHistogram:
		return "HISTOGRAM"
	case ParamFaceDetect:
		return "FACE_DETECT"
	case ParamRollOff:
		return "ROLLOFF"
	case ParamMCE:
		return "MCE"
	case ParamRedeyeReduction:
		return "REDEYE_REDUCTION"
	case ParamASDEnable:
		return "ASD_ENABLE"
	case ParamRecordingHint:
		return "RECORDING_HINT"
	case ParamHDR:
		return "HDR"
	case ParamWaveletDenoise:
		return "WAVELET_DENOISE"
	case ParamSetBundle:
		return "SET_BUNDLE"
	case ParamMax:
		return "MAX"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether p names a real slot.
func (p ParamType) Valid() bool {
	return p < ParamMax
}

// ParseParamType resolves a slot name as returned by String.
func ParseParamType(name string) (ParamType, bool) {
	for p := ParamType(0); p < ParamMax; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return ParamMax, false
}
