package attr

// Auto exposure metering modes.
const (
	AECFrameAverage = iota
	AECCenterWeighted
	AECSpotMetering
	AECSmartMetering
	AECUserMetering
	AECSpotMeteringAdv
	AECCenterWeightedAdv
)

// Pixel formats. Picture formats at or above FormatYUVRaw8Bit are raw.
const (
	PictureTypeJPEG        = 0
	FormatYUV420NV12       = 1
	FormatYUV420NV21       = 2
	FormatYUV420NV21Adreno = 3
	FormatYUV420YV12       = 4
	FormatYUV422NV16       = 5
	FormatYUV422NV61       = 6
	FormatYUVRaw8Bit       = 16
	// FormatBayerBase is the first code of the bayer raw family; see
	// PictureTypes for the layout.
	FormatBayerBase = 17
)

// Focus modes.
const (
	FocusAuto = iota
	FocusInfinity
	FocusMacro
	FocusFixed
	FocusEDOF
	FocusContinuousPicture
	FocusContinuousVideo
)

// Effects.
const (
	EffectOff = iota
	EffectMono
	EffectNegative
	EffectSolarize
	EffectSepia
	EffectPosterize
	EffectWhiteboard
	EffectBlackboard
	EffectAqua
	EffectEmboss
	EffectSketch
	EffectNeon
)

// Scene (bestshot) modes.
const (
	SceneOff = iota
	SceneAuto
	SceneLandscape
	SceneSnow
	SceneBeach
	SceneSunset
	SceneNight
	ScenePortrait
	SceneBacklight
	SceneSports
	SceneAntishake
	SceneFlowers
	SceneCandlelight
	SceneFireworks
	SceneParty
	SceneNightPortrait
	SceneTheatre
	SceneAction
	SceneAR
)

// Flash (LED) modes.
const (
	FlashOff = iota
	FlashAuto
	FlashOn
	FlashTorch
)

// Focus algorithms.
const (
	FocusAlgoAuto = iota
	FocusAlgoSpot
	FocusAlgoCenterWeighted
	FocusAlgoAverage
)

// White balance modes.
const (
	WBAuto = iota
	WBIncandescent
	WBFluorescent
	WBWarmFluorescent
	WBDaylight
	WBCloudyDaylight
	WBTwilight
	WBShade
)

// Antibanding modes.
const (
	AntibandingOff = iota
	AntibandingHz60
	AntibandingHz50
	AntibandingAuto
)

// ISO modes.
const (
	ISOAuto = iota
	ISODeblur
	ISO100
	ISO200
	ISO400
	ISO800
	ISO1600
)

// High frame rate modes.
const (
	HFROff = iota
	HFR60
	HFR90
	HFR120
	HFR150
)

// HDR / exposure bracketing modes.
const (
	BracketOff = iota
	BracketHDR
	BracketExposure
)
