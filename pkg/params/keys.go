package params

// Request and state keys.
const (
	KeyPreviewSize          = "preview-size"
	KeyVideoSize            = "video-size"
	KeyPictureSize          = "picture-size"
	KeyPreviewFormat        = "preview-format"
	KeyPictureFormat        = "picture-format"
	KeyVideoFrameFormat     = "video-frame-format"
	KeyThumbnailWidth       = "jpeg-thumbnail-width"
	KeyThumbnailHeight      = "jpeg-thumbnail-height"
	KeyJPEGQuality          = "jpeg-quality"
	KeyThumbnailQuality     = "jpeg-thumbnail-quality"
	KeyOrientation          = "orientation"
	KeyRotation             = "rotation"
	KeyNoDisplayMode        = "no-display-mode"
	KeyZSL                  = "zsl"
	KeyZSLBurstInterval     = "capture-burst-interval"
	KeyZSLBurstLookback     = "capture-burst-retroactive"
	KeyZSLQueueDepth        = "capture-burst-queue-depth"
	KeyCameraMode           = "camera-mode"
	KeyRecordingHint        = "recording-hint"
	KeyPreviewFPSRange      = "preview-fps-range"
	KeyPreviewFrameRate     = "preview-frame-rate"
	KeyAutoExposure         = "auto-exposure"
	KeyEffect               = "effect"
	KeyBrightness           = "luma-adaptation"
	KeyZoom                 = "zoom"
	KeySharpness            = "sharpness"
	KeySaturation           = "saturation"
	KeyContrast             = "contrast"
	KeyFocusMode            = "focus-mode"
	KeyISO                  = "iso"
	KeySkinToneEnhancement  = "skinToneEnhancement"
	KeyFlashMode            = "flash-mode"
	KeyAutoExposureLock     = "auto-exposure-lock"
	KeyAutoWBLock           = "auto-whitebalance-lock"
	KeyLensShade            = "lensshade"
	KeyMCE                  = "mce"
	KeyVideoHFR             = "video-hfr"
	KeyAntibanding          = "antibanding"
	KeyExposureCompensation = "exposure-compensation"
	KeyWhiteBalance         = "whitebalance"
	KeySceneMode            = "scene-mode"
	KeyFocusAreas           = "focus-areas"
	KeyMeteringAreas        = "metering-areas"
	KeySelectableZoneAF     = "selectable-zone-af"
	KeyRedeyeReduction      = "redeye-reduction"
	KeyAEBracketHDR         = "ae-bracket-hdr"
	KeyCaptureBurstExposure = "capture-burst-exposures"
	KeyNumSnapshots         = "num-snaps-per-shutter"
	KeyDenoise              = "denoise"
	KeySceneDetect          = "scene-detect"
	KeyHistogram            = "histogram"
	KeyFaceDetection        = "face-detection"
	KeyTouchAFAEC           = "touch-af-aec"
	KeyTouchIndexAEC        = "touch-index-aec"
	KeyTouchIndexAF         = "touch-index-af"
	KeyRawSize              = "raw-size"

	KeyGPSProcessingMethod = "gps-processing-method"
	KeyGPSLatitude         = "gps-latitude"
	KeyGPSLatitudeRef      = "gps-latitude-ref"
	KeyGPSLongitude        = "gps-longitude"
	KeyGPSLongitudeRef     = "gps-longitude-ref"
	KeyGPSAltitude         = "gps-altitude"
	KeyGPSAltitudeRef      = "gps-altitude-ref"
	KeyGPSStatus           = "gps-status"
	KeyGPSTimestamp        = "gps-timestamp"
)

// Published capability keys. These are written once when the session opens
// and are read-only for applications.
const (
	KeySmoothZoomSupported         = "smooth-zoom-supported"
	KeyZoomSupported               = "zoom-supported"
	KeyVideoSnapshotSupported      = "video-snapshot-supported"
	KeyVideoStabilizationSupported = "video-stabilization-supported"
	KeyAELockSupported             = "auto-exposure-lock-supported"
	KeyAWBLockSupported            = "auto-whitebalance-lock-supported"
	KeyCameraFeatures              = "qc-camera-features"
	KeyMaxFacesHW                  = "max-num-detected-faces-hw"
	KeyMaxFacesSW                  = "max-num-detected-faces-sw"
	KeyMaxRequestedFaces           = "qc-max-num-requested-faces"
	KeyFocalLength                 = "focal-length"
	KeyHorizontalViewAngle         = "horizontal-view-angle"
	KeyVerticalViewAngle           = "vertical-view-angle"
	KeyPreviewSizeValues           = "preview-size-values"
	KeyVideoSizeValues             = "video-size-values"
	KeyPreferredPreviewForVideo    = "preferred-preview-size-for-video"
	KeyPictureSizeValues           = "picture-size-values"
	KeyThumbnailSizeValues         = "jpeg-thumbnail-size-values"
	KeyPreviewFormatValues         = "preview-format-values"
	KeyPictureFormatValues         = "picture-format-values"
	KeyPreviewFPSRangeValues       = "preview-fps-range-values"
	KeyPreviewFrameRateValues      = "preview-frame-rate-values"
	KeyFocusModeValues             = "focus-mode-values"
	KeyMaxFocusAreas               = "max-num-focus-areas"
	KeyMaxMeteringAreas            = "max-num-metering-areas"
	KeyMinSaturation               = "min-saturation"
	KeyMaxSaturation               = "max-saturation"
	KeySaturationStep              = "saturation-step"
	KeyMinSharpness                = "min-sharpness"
	KeyMaxSharpness                = "max-sharpness"
	KeySharpnessStep               = "sharpness-step"
	KeyMinContrast                 = "min-contrast"
	KeyMaxContrast                 = "max-contrast"
	KeyContrastStep                = "contrast-step"
	KeyMinSCEFactor                = "min-sce-factor"
	KeyMaxSCEFactor                = "max-sce-factor"
	KeySCEFactorStep               = "sce-factor-step"
	KeyMinBrightness               = "min-brightness"
	KeyMaxBrightness               = "max-brightness"
	KeyBrightnessStep              = "brightness-step"
	KeyAutoExposureValues          = "auto-exposure-values"
	KeyMaxExposureCompensation     = "max-exposure-compensation"
	KeyMinExposureCompensation     = "min-exposure-compensation"
	KeyExposureCompensationStep    = "exposure-compensation-step"
	KeyAntibandingValues           = "antibanding-values"
	KeyEffectValues                = "effect-values"
	KeyWhiteBalanceValues          = "whitebalance-values"
	KeyFlashModeValues             = "flash-mode-values"
	KeySceneModeValues             = "scene-mode-values"
	KeyISOValues                   = "iso-values"
	KeyVideoHFRValues              = "video-hfr-values"
	KeyHFRSizeValues               = "hfr-size-values"
	KeySelectableZoneAFValues      = "selectable-zone-af-values"
	KeyZoomRatios                  = "zoom-ratios"
	KeyMaxZoom                     = "max-zoom"
	KeyAEBracketHDRValues          = "ae-bracket-hdr-values"
	KeyDenoiseValues               = "denoise-values"
	KeyLensShadeValues             = "lensshade-values"
	KeyMCEValues                   = "mce-values"
	KeyHistogramValues             = "histogram-values"
	KeyRedeyeReductionValues       = "redeye-reduction-values"
	KeySceneDetectValues           = "scene-detect-values"
	KeyFaceDetectionValues         = "face-detection-values"
	KeyZSLValues                   = "zsl-values"
	KeyTouchAFAECValues            = "touch-af-aec-values"
)

// gpsKeys are copied verbatim from a request, or removed when absent.
var gpsKeys = []string{
	KeyGPSProcessingMethod,
	KeyGPSLatitude,
	KeyGPSLatitudeRef,
	KeyGPSLongitude,
	KeyGPSLongitudeRef,
	KeyGPSAltitudeRef,
	KeyGPSAltitude,
	KeyGPSStatus,
	KeyGPSTimestamp,
}

// defaultArea is the focus and metering area published at session open.
const defaultArea = "(0, 0, 0, 0, 0)"
