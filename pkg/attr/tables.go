package attr

import "fmt"

// AutoExposure lists the metering modes.
var AutoExposure = Table{
	{"frame-average", AECFrameAverage},
	{"center-weighted", AECCenterWeighted},
	{"spot-metering", AECSpotMetering},
	{"smart-metering", AECSmartMetering},
	{"user-metering", AECUserMetering},
	{"spot-metering-adv", AECSpotMeteringAdv},
	{"center-weighted-adv", AECCenterWeightedAdv},
}

// PreviewFormats lists the preview pixel formats.
var PreviewFormats = Table{
	{"yuv420sp", FormatYUV420NV21},
	{"yuv420p", FormatYUV420YV12},
	{"yuv420sp-adreno", FormatYUV420NV21Adreno},
	{"nv12", FormatYUV420NV12},
}

// PictureTypes lists jpeg, yuv raw and the bayer raw family.
var PictureTypes = buildPictureTypes()

// bayerPackings lists the raw packing names with the bit depths each one
// supports. Codes are assigned sequentially from FormatBayerBase in this
// order, depth-major, then by colour order.
var bayerPackings = []struct {
	name   string
	depths []int
}{
	{"qcom", []int{8, 10, 12}},
	{"mipi", []int{8, 10, 12}},
	{"ideal-qcom", []int{8, 10, 12}},
	{"ideal-mipi", []int{8, 10, 12}},
	{"ideal-plain8", []int{8}},
	{"ideal-plain16", []int{8, 10, 12}},
}

var bayerOrders = []string{"gbrg", "grbg", "rggb", "bggr"}

func buildPictureTypes() Table {
	t := Table{
		{"jpeg", PictureTypeJPEG},
		{"yuv-raw8", FormatYUVRaw8Bit},
	}
	code := FormatBayerBase
	for _, p := range bayerPackings {
		for _, d := range p.depths {
			for _, o := range bayerOrders {
				t = append(t, Entry{fmt.Sprintf("bayer-%s-%d%s", p.name, d, o), code})
				code++
			}
		}
	}
	return t
}

// FocusModes lists the focus modes the pipeline currently accepts.
var FocusModes = Table{
	{"infinity", FocusInfinity},
}

// Effects lists the colour effects.
var Effects = Table{
	{"none", EffectOff},
	{"mono", EffectMono},
	{"negative", EffectNegative},
	{"solarize", EffectSolarize},
	{"sepia", EffectSepia},
	{"posterize", EffectPosterize},
	{"whiteboard", EffectWhiteboard},
	{"blackboard", EffectBlackboard},
	{"aqua", EffectAqua},
	{"emboss", EffectEmboss},
	{"sketch", EffectSketch},
	{"neon", EffectNeon},
}

// SceneModes lists the scene modes. "asd" selects automatic scene detection.
var SceneModes = Table{
	{"auto", SceneOff},
	{"action", SceneAction},
	{"portrait", ScenePortrait},
	{"landscape", SceneLandscape},
	{"night", SceneNight},
	{"night-portrait", SceneNightPortrait},
	{"theatre", SceneTheatre},
	{"beach", SceneBeach},
	{"snow", SceneSnow},
	{"sunset", SceneSunset},
	{"steadyphoto", SceneAntishake},
	{"fireworks", SceneFireworks},
	{"sports", SceneSports},
	{"party", SceneParty},
	{"candlelight", SceneCandlelight},
	{"asd", SceneAuto},
	{"backlight", SceneBacklight},
	{"flowers", SceneFlowers},
	{"AR", SceneAR},
}

// FlashModes lists the flash modes.
var FlashModes = Table{
	{"off", FlashOff},
	{"auto", FlashAuto},
	{"on", FlashOn},
	{"torch", FlashTorch},
}

// FocusAlgorithms lists the selectable zone AF algorithms.
var FocusAlgorithms = Table{
	{"auto", FocusAlgoAuto},
	{"spot-metering", FocusAlgoSpot},
	{"center-weighted", FocusAlgoCenterWeighted},
	{"frame-average", FocusAlgoAverage},
}

// WhiteBalance lists the white balance modes.
var WhiteBalance = Table{
	{"auto", WBAuto},
	{"incandescent", WBIncandescent},
	{"fluorescent", WBFluorescent},
	{"warm-fluorescent", WBWarmFluorescent},
	{"daylight", WBDaylight},
	{"cloudy-daylight", WBCloudyDaylight},
	{"twilight", WBTwilight},
	{"shade", WBShade},
}

// Antibanding lists the antibanding modes.
var Antibanding = Table{
	{"off", AntibandingOff},
	{"50hz", AntibandingHz50},
	{"60hz", AntibandingHz60},
	{"auto", AntibandingAuto},
}

// ISOModes lists the ISO modes.
var ISOModes = Table{
	{"auto", ISOAuto},
	{"ISO_HJR", ISODeblur},
	{"ISO100", ISO100},
	{"ISO200", ISO200},
	{"ISO400", ISO400},
	{"ISO800", ISO800},
	{"ISO1600", ISO1600},
}

// HFRModes lists the video high frame rate modes.
var HFRModes = Table{
	{"off", HFROff},
	{"60", HFR60},
	{"90", HFR90},
	{"120", HFR120},
	{"150", HFR150},
}

// BracketingModes lists the HDR / exposure bracketing modes.
var BracketingModes = Table{
	{"Off", BracketOff},
	{"HDR", BracketHDR},
	{"AE-Bracket", BracketExposure},
}

// OnOff is the generic on/off toggle.
var OnOff = Table{
	{"off", 0},
	{"on", 1},
}

// EnableDisable is the generic enable/disable toggle.
var EnableDisable = Table{
	{"enable", 1},
	{"disable", 0},
}

// Denoise lists the wavelet denoise toggle tokens.
var Denoise = Table{
	{"denoise-off", 0},
	{"denoise-on", 1},
}

// TrueFalse is the generic boolean toggle.
var TrueFalse = Table{
	{"false", 0},
	{"true", 1},
}

// Orientations lists the sensor orientations an application may report.
var Orientations = Table{
	{"portrait", 0},
	{"landscape", 1},
}
