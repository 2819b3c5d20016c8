package params

import (
	"strconv"
	"strings"

	"github.com/camparam/camparam-go/pkg/attr"
	"github.com/camparam/camparam-go/pkg/batch"
	"github.com/camparam/camparam-go/pkg/capability"
	"github.com/camparam/camparam-go/pkg/kv"
	"github.com/camparam/camparam-go/pkg/wire"
)

// enumAttr is an attribute whose value must be a token of table.
type enumAttr struct {
	key     string
	table   attr.Table
	slot    batch.ParamType
	restart bool
}

var (
	previewFormatAttr = enumAttr{key: KeyPreviewFormat, table: attr.PreviewFormats, slot: noSlot}
	pictureFormatAttr = enumAttr{key: KeyPictureFormat, table: attr.PictureTypes, slot: noSlot}
	orientationAttr   = enumAttr{key: KeyOrientation, table: attr.Orientations, slot: noSlot}
	zslAttr           = enumAttr{key: KeyZSL, table: attr.OnOff, slot: noSlot, restart: true}
	recordingHintAttr = enumAttr{key: KeyRecordingHint, table: attr.TrueFalse, slot: batch.ParamRecordingHint}
	autoExposureAttr  = enumAttr{key: KeyAutoExposure, table: attr.AutoExposure, slot: batch.ParamAECAlgoType}
	effectAttr        = enumAttr{key: KeyEffect, table: attr.Effects, slot: batch.ParamEffect}
	focusModeAttr     = enumAttr{key: KeyFocusMode, table: attr.FocusModes, slot: batch.ParamFocusMode}
	isoAttr           = enumAttr{key: KeyISO, table: attr.ISOModes, slot: batch.ParamISO}
	flashAttr         = enumAttr{key: KeyFlashMode, table: attr.FlashModes, slot: batch.ParamLEDMode}
	aeLockAttr        = enumAttr{key: KeyAutoExposureLock, table: attr.TrueFalse, slot: batch.ParamAECLock}
	awbLockAttr       = enumAttr{key: KeyAutoWBLock, table: attr.TrueFalse, slot: batch.ParamAWBLock}
	lensShadeAttr     = enumAttr{key: KeyLensShade, table: attr.EnableDisable, slot: batch.ParamRollOff}
	mceAttr           = enumAttr{key: KeyMCE, table: attr.EnableDisable, slot: batch.ParamMCE}
	hfrAttr           = enumAttr{key: KeyVideoHFR, table: attr.HFRModes, slot: batch.ParamHFR, restart: true}
	antibandingAttr   = enumAttr{key: KeyAntibanding, table: attr.Antibanding, slot: batch.ParamAntibanding}
	whiteBalanceAttr  = enumAttr{key: KeyWhiteBalance, table: attr.WhiteBalance, slot: batch.ParamWhiteBalance}
	sceneModeAttr     = enumAttr{key: KeySceneMode, table: attr.SceneModes, slot: batch.ParamBestshotMode}
	zoneAFAttr        = enumAttr{key: KeySelectableZoneAF, table: attr.FocusAlgorithms, slot: batch.ParamFocusAlgoType}
	redeyeAttr        = enumAttr{key: KeyRedeyeReduction, table: attr.EnableDisable, slot: batch.ParamRedeyeReduction}
	sceneDetectAttr   = enumAttr{key: KeySceneDetect, table: attr.OnOff, slot: batch.ParamASDEnable}
)

// rangeAttr is a bounded integer attribute.
type rangeAttr struct {
	key   string
	slot  batch.ParamType
	bound func(*capability.Capability) capability.Range
}

var (
	brightnessAttr = rangeAttr{KeyBrightness, batch.ParamBrightness,
		func(c *capability.Capability) capability.Range { return c.Brightness }}
	sharpnessAttr = rangeAttr{KeySharpness, batch.ParamSharpness,
		func(c *capability.Capability) capability.Range { return c.Sharpness }}
	saturationAttr = rangeAttr{KeySaturation, batch.ParamSaturation,
		func(c *capability.Capability) capability.Range { return c.Saturation }}
	contrastAttr = rangeAttr{KeyContrast, batch.ParamContrast,
		func(c *capability.Capability) capability.Range { return c.Contrast }}
	sceFactorAttr = rangeAttr{KeySkinToneEnhancement, batch.ParamSCEFactor,
		func(c *capability.Capability) capability.Range { return c.SCEFactor }}
	exposureCompAttr = rangeAttr{KeyExposureCompensation, batch.ParamExposureCompensation,
		func(c *capability.Capability) capability.Range { return c.ExposureCompensation }}
)

// updateSetters runs in this order on every Update. Later setters observe
// values staged by earlier ones (the focus and metering transforms use the
// preview size staged in the same cycle).
var updateSetters = []setterFunc{
	(*Parameters).setPreviewSize,
	(*Parameters).setVideoSize,
	(*Parameters).setPictureSize,
	enumSetter(previewFormatAttr),
	enumSetter(pictureFormatAttr),
	(*Parameters).setThumbnailSize,
	(*Parameters).setJPEGQuality,
	enumSetter(orientationAttr),
	(*Parameters).setRotation,
	(*Parameters).setNoDisplayMode,
	enumSetter(zslAttr),
	(*Parameters).setZSLAttributes,
	(*Parameters).setCameraMode,
	enumSetter(recordingHintAttr),
	(*Parameters).setPreviewFPSRange,
	(*Parameters).setPreviewFrameRate,
	enumSetter(autoExposureAttr),
	enumSetter(effectAttr),
	rangeSetter(brightnessAttr),
	(*Parameters).setZoom,
	rangeSetter(sharpnessAttr),
	rangeSetter(saturationAttr),
	rangeSetter(contrastAttr),
	enumSetter(focusModeAttr),
	enumSetter(isoAttr),
	rangeSetter(sceFactorAttr),
	enumSetter(flashAttr),
	enumSetter(aeLockAttr),
	enumSetter(awbLockAttr),
	enumSetter(lensShadeAttr),
	enumSetter(mceAttr),
	enumSetter(hfrAttr),
	enumSetter(antibandingAttr),
	rangeSetter(exposureCompAttr),
	enumSetter(whiteBalanceAttr),
	enumSetter(sceneModeAttr),
	(*Parameters).setFocusAreas,
	(*Parameters).setMeteringAreas,
	enumSetter(zoneAFAttr),
	enumSetter(redeyeAttr),
	(*Parameters).setAEBracket,
	(*Parameters).setGPS,
	(*Parameters).setNumSnapshots,
	(*Parameters).setDenoise,
	enumSetter(sceneDetectAttr),
}

func enumSetter(a enumAttr) setterFunc {
	return func(p *Parameters, req *kv.Map) error {
		v, ok := p.requested(req, a.key)
		if !ok {
			return nil
		}
		return p.stageEnum(a, v)
	}
}

func (p *Parameters) stageEnum(a enumAttr, v string) error {
	code := attr.Lookup(a.table, v)
	if code == attr.NotFound {
		return p.reject(a.key, v, "expected one of %s", attr.Describe(a.table))
	}
	return p.stage(a.key, v, a.slot, int32(code), a.restart)
}

func rangeSetter(a rangeAttr) setterFunc {
	return func(p *Parameters, req *kv.Map) error {
		v, ok := p.requested(req, a.key)
		if !ok {
			return nil
		}
		return p.stageRange(a, v)
	}
}

func (p *Parameters) stageRange(a rangeAttr, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return p.reject(a.key, v, "not an integer")
	}
	r := a.bound(p.cap)
	if !r.Contains(n) {
		return p.reject(a.key, v, "outside [%d,%d]", r.Min, r.Max)
	}
	return p.stage(a.key, v, a.slot, int32(n), false)
}

func (p *Parameters) setPreviewSize(req *kv.Map) error {
	v, ok := p.requested(req, KeyPreviewSize)
	if !ok {
		return nil
	}
	return p.stagePreviewSize(v)
}

func (p *Parameters) stagePreviewSize(v string) error {
	size, err := capability.ParseSize(v)
	if err != nil {
		return p.reject(KeyPreviewSize, v, "malformed size")
	}
	if !capability.ContainsSize(p.cap.PreviewSizes, size) {
		return p.reject(KeyPreviewSize, v, "unsupported preview size")
	}
	restart := size != p.committedSize(KeyPreviewSize)
	return p.stage(KeyPreviewSize, size.String(), noSlot, nil, restart)
}

func (p *Parameters) setVideoSize(req *kv.Map) error {
	v, ok := p.requested(req, KeyVideoSize)
	if !ok {
		return nil
	}
	return p.stageVideoSize(v)
}

func (p *Parameters) stageVideoSize(v string) error {
	size, err := capability.ParseSize(v)
	if err != nil {
		return p.reject(KeyVideoSize, v, "malformed size")
	}
	if !capability.ContainsSize(p.cap.VideoSizes, size) {
		return p.reject(KeyVideoSize, v, "unsupported video size")
	}
	restart := p.recordingHint() && size != p.committedSize(KeyVideoSize)
	return p.stage(KeyVideoSize, size.String(), noSlot, nil, restart)
}

func (p *Parameters) setPictureSize(req *kv.Map) error {
	v, ok := p.requested(req, KeyPictureSize)
	if !ok {
		return nil
	}
	return p.stagePictureSize(v)
}

func (p *Parameters) stagePictureSize(v string) error {
	size, err := capability.ParseSize(v)
	if err != nil {
		return p.reject(KeyPictureSize, v, "malformed size")
	}
	if !capability.ContainsSize(p.cap.PictureSizes, size) {
		return p.reject(KeyPictureSize, v, "unsupported picture size")
	}
	restart := (p.zsl() || p.recordingHint()) && size != p.committedSize(KeyPictureSize)
	return p.stage(KeyPictureSize, size.String(), noSlot, nil, restart)
}

// setThumbnailSize accepts the width and height keys as a pair. A missing
// half is taken from the committed state.
func (p *Parameters) setThumbnailSize(req *kv.Map) error {
	w, hasW := req.Get(KeyThumbnailWidth)
	h, hasH := req.Get(KeyThumbnailHeight)
	if !hasW && !hasH {
		return nil
	}
	if !hasW {
		w = p.canonical.Value(KeyThumbnailWidth)
	}
	if !hasH {
		h = p.canonical.Value(KeyThumbnailHeight)
	}
	if w == p.canonical.Value(KeyThumbnailWidth) && h == p.canonical.Value(KeyThumbnailHeight) {
		return nil
	}
	return p.stageThumbnailSize(w, h)
}

func (p *Parameters) stageThumbnailSize(w, h string) error {
	value := w + "x" + h
	size, err := capability.ParseSize(value)
	if err != nil {
		return p.reject(KeyThumbnailWidth, value, "malformed thumbnail size")
	}
	if !capability.ContainsSize(capability.ThumbnailSizes, size) {
		return p.reject(KeyThumbnailWidth, value, "unsupported thumbnail size")
	}
	if err := p.stage(KeyThumbnailWidth, strconv.Itoa(size.Width), noSlot, nil, false); err != nil {
		return err
	}
	return p.stage(KeyThumbnailHeight, strconv.Itoa(size.Height), noSlot, nil, false)
}

func (p *Parameters) setJPEGQuality(req *kv.Map) error {
	var last error
	for _, key := range []string{KeyJPEGQuality, KeyThumbnailQuality} {
		v, ok := p.requested(req, key)
		if !ok {
			continue
		}
		if err := p.stageQuality(key, v); err != nil {
			last = err
		}
	}
	return last
}

func (p *Parameters) stageQuality(key, v string) error {
	q, err := strconv.Atoi(v)
	if err != nil || q < 0 || q > 100 {
		return p.reject(key, v, "quality must be an integer in [0,100]")
	}
	return p.stage(key, v, noSlot, nil, false)
}

func (p *Parameters) setRotation(req *kv.Map) error {
	v, ok := p.requested(req, KeyRotation)
	if !ok {
		return nil
	}
	r, err := strconv.Atoi(v)
	if err != nil {
		return p.reject(KeyRotation, v, "not an integer")
	}
	switch r {
	case -1:
		return nil
	case 0, 90, 180, 270:
		return p.stage(KeyRotation, v, noSlot, nil, false)
	default:
		return p.reject(KeyRotation, v, "rotation must be 0, 90, 180 or 270")
	}
}

func (p *Parameters) setNoDisplayMode(req *kv.Map) error {
	v, ok := p.requested(req, KeyNoDisplayMode)
	if !ok || v == "" {
		return nil
	}
	return p.stage(KeyNoDisplayMode, v, noSlot, nil, true)
}

// setZSLAttributes copies the burst attributes, falling back to the
// configured defaults.
func (p *Parameters) setZSLAttributes(req *kv.Map) error {
	attrs := []struct {
		key string
		def int
	}{
		{KeyZSLBurstInterval, p.config.ZSLBurstInterval},
		{KeyZSLBurstLookback, p.config.ZSLBackLookCount},
		{KeyZSLQueueDepth, p.config.ZSLQueueDepth},
	}
	for _, a := range attrs {
		v, ok := req.Get(a.key)
		if !ok {
			v = strconv.Itoa(a.def)
		}
		if err := p.stagePassthrough(a.key, v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parameters) setCameraMode(req *kv.Map) error {
	v, ok := req.Get(KeyCameraMode)
	if !ok {
		return p.stageRemoval(KeyCameraMode)
	}
	return p.stagePassthrough(KeyCameraMode, v)
}

func (p *Parameters) setGPS(req *kv.Map) error {
	for _, key := range gpsKeys {
		v, ok := req.Get(key)
		var err error
		if ok {
			err = p.stagePassthrough(key, v)
		} else {
			err = p.stageRemoval(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Parameters) setNumSnapshots(req *kv.Map) error {
	v, ok := req.Get(KeyNumSnapshots)
	if !ok {
		v = "1"
	}
	return p.stagePassthrough(KeyNumSnapshots, v)
}

func (p *Parameters) setPreviewFrameRate(req *kv.Map) error {
	v, ok := p.requested(req, KeyPreviewFrameRate)
	if !ok {
		return nil
	}
	return p.stage(KeyPreviewFrameRate, v, noSlot, nil, false)
}

// stagePassthrough stages an unvalidated value unless it is already
// committed.
func (p *Parameters) stagePassthrough(key, v string) error {
	if prev, ok := p.canonical.Get(key); ok && prev == v {
		return nil
	}
	return p.stage(key, v, noSlot, nil, false)
}

func (p *Parameters) setPreviewFPSRange(req *kv.Map) error {
	v, ok := p.requested(req, KeyPreviewFPSRange)
	if !ok {
		return nil
	}
	minFPS, maxFPS, err := parseFPSRange(v)
	if err == nil {
		prevMin, prevMax, perr := parseFPSRange(p.canonical.Value(KeyPreviewFPSRange))
		if perr == nil && prevMin == minFPS && prevMax == maxFPS {
			return nil
		}
	}
	return p.stageFPSRange(v)
}

func (p *Parameters) stageFPSRange(v string) error {
	minFPS, maxFPS, err := parseFPSRange(v)
	if err != nil {
		return p.reject(KeyPreviewFPSRange, v, "expected \"min,max\" in milli-fps")
	}
	for _, r := range p.cap.FPSRanges {
		if minFPS >= r.MilliMin() && maxFPS <= r.MilliMax() {
			payload := wire.FPSRange{
				MinFPS: float32(minFPS) / 1000,
				MaxFPS: float32(maxFPS) / 1000,
			}
			return p.stage(KeyPreviewFPSRange, v, batch.ParamFPSRange, payload, false)
		}
	}
	return p.reject(KeyPreviewFPSRange, v, "not inside a supported range %s",
		capability.DescribeFPSRanges(p.cap.FPSRanges))
}

func parseFPSRange(v string) (int, int, error) {
	lo, hi, ok := strings.Cut(v, ",")
	if !ok {
		return 0, 0, strconv.ErrSyntax
	}
	minFPS, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, err
	}
	maxFPS, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, err
	}
	if minFPS > maxFPS {
		return 0, 0, strconv.ErrRange
	}
	return minFPS, maxFPS, nil
}

// setZoom is a no-op on devices without zoom.
func (p *Parameters) setZoom(req *kv.Map) error {
	if !p.cap.HasZoom() {
		return nil
	}
	v, ok := p.requested(req, KeyZoom)
	if !ok {
		return nil
	}
	return p.stageZoom(v)
}

func (p *Parameters) stageZoom(v string) error {
	idx, err := strconv.Atoi(v)
	if err != nil {
		return p.reject(KeyZoom, v, "not an integer")
	}
	if idx < 0 || idx >= len(p.cap.ZoomRatios) {
		return p.reject(KeyZoom, v, "outside [0,%d]", len(p.cap.ZoomRatios)-1)
	}
	return p.stage(KeyZoom, v, batch.ParamZoom, int32(p.cap.ZoomRatios[idx]), false)
}

// setAEBracket stages the exposure list first so AE-Bracket sees it in the
// same cycle.
func (p *Parameters) setAEBracket(req *kv.Map) error {
	if exp, ok := req.Get(KeyCaptureBurstExposure); ok {
		if err := p.stagePassthrough(KeyCaptureBurstExposure, exp); err != nil {
			return err
		}
	} else if err := p.stageRemoval(KeyCaptureBurstExposure); err != nil {
		return err
	}

	v, ok := p.requested(req, KeyAEBracketHDR)
	if !ok {
		return nil
	}
	return p.stageAEBracket(v)
}

// stageAEBracket never rejects: unknown tokens, ZSL and a missing exposure
// list all select bracketing off. The requested token is stored as is.
func (p *Parameters) stageAEBracket(v string) error {
	payload := wire.ExpBracketing{Mode: attr.BracketOff}
	reason := ""

	if p.zsl() {
		reason = "bracketing is off in ZSL mode"
	} else {
		switch attr.Lookup(attr.BracketingModes, v) {
		case attr.BracketHDR:
			payload.Mode = attr.BracketHDR
		case attr.BracketExposure:
			exp, _ := p.effective(KeyCaptureBurstExposure)
			if exp == "" {
				reason = KeyCaptureBurstExposure + " not set"
				break
			}
			if len(exp) > wire.MaxExpBracketingLength {
				exp = exp[:wire.MaxExpBracketingLength]
			}
			payload.Mode = attr.BracketExposure
			payload.Values = exp
		case attr.BracketOff:
		default:
			reason = "unknown bracketing mode"
		}
	}

	if err := p.stage(KeyAEBracketHDR, v, batch.ParamHDR, payload, false); err != nil {
		return err
	}
	if reason != "" {
		p.logForced(KeyAEBracketHDR, v, reason)
	}
	return nil
}

func (p *Parameters) setDenoise(req *kv.Map) error {
	v, ok := p.requested(req, KeyDenoise)
	if !ok {
		return nil
	}
	return p.stageDenoise(v)
}

func (p *Parameters) stageDenoise(v string) error {
	code := attr.Lookup(attr.Denoise, v)
	if code == attr.NotFound {
		return p.reject(KeyDenoise, v, "expected one of %s", attr.Describe(attr.Denoise))
	}
	payload := wire.DenoiseParam{Enable: code != 0}
	if payload.Enable {
		payload.Plates = denoisePlates(p.config.DenoisePlates)
	}
	return p.stage(KeyDenoise, v, batch.ParamWaveletDenoise, payload, false)
}

func denoisePlates(n int) wire.DenoisePlates {
	switch n {
	case 0:
		return wire.DenoiseYCbCrPlane
	case 1:
		return wire.DenoiseCbCrOnly
	case 2:
		return wire.DenoiseStreamlineYCbCr
	case 3:
		return wire.DenoiseStreamlinedCbCr
	default:
		return wire.DenoiseStreamlineYCbCr
	}
}

// zsl reports whether ZSL is on once the staged changes merge.
func (p *Parameters) zsl() bool {
	v, _ := p.effective(KeyZSL)
	return attr.Lookup(attr.OnOff, v) == 1
}

// recordingHint reports whether the recording hint is set once the staged
// changes merge.
func (p *Parameters) recordingHint() bool {
	v, _ := p.effective(KeyRecordingHint)
	return attr.Lookup(attr.TrueFalse, v) == 1
}

// committedSize parses a committed size key. A missing or malformed value
// yields the zero size.
func (p *Parameters) committedSize(key string) capability.Size {
	s, err := capability.ParseSize(p.canonical.Value(key))
	if err != nil {
		return capability.Size{}
	}
	return s
}

// effectiveSize parses a size key as it will be once the staged changes
// merge.
func (p *Parameters) effectiveSize(key string) capability.Size {
	v, _ := p.effective(key)
	s, err := capability.ParseSize(v)
	if err != nil {
		return capability.Size{}
	}
	return s
}
