package params

import (
	"fmt"
	"strconv"

	"github.com/camparam/camparam-go/pkg/attr"
	"github.com/camparam/camparam-go/pkg/capability"
)

// initDefaults publishes the read-only capability keys and stages the
// default of every attribute. Defaults are staged even when the seed holds
// the same value, so the first batch carries every device slot.
func (p *Parameters) initDefaults() error {
	p.publish()

	steps := []func() error{
		func() error { return p.stagePreviewSize(p.cap.PreviewSizes[0].String()) },
		func() error {
			if len(p.cap.VideoSizes) == 0 {
				return nil
			}
			return p.stageVideoSize(p.cap.VideoSizes[0].String())
		},
		func() error {
			if len(p.cap.PictureSizes) == 0 {
				return nil
			}
			return p.stagePictureSize(p.cap.PictureSizes[0].String())
		},
		func() error {
			t := capability.ThumbnailSizes[0]
			return p.stageThumbnailSize(strconv.Itoa(t.Width), strconv.Itoa(t.Height))
		},
		func() error { return p.stageEnum(previewFormatAttr, "yuv420sp") },
		func() error { return p.stageEnum(pictureFormatAttr, "jpeg") },
		func() error { return p.stageQuality(KeyJPEGQuality, "85") },
		func() error { return p.stageQuality(KeyThumbnailQuality, "85") },
		func() error {
			if len(p.cap.FPSRanges) == 0 {
				return nil
			}
			r := p.cap.FPSRanges[0]
			if err := p.stageFPSRange(fmt.Sprintf("%d,%d", r.MilliMin(), r.MilliMax())); err != nil {
				return err
			}
			return p.stage(KeyPreviewFrameRate, strconv.Itoa(r.MilliMax()), noSlot, nil, false)
		},
		func() error {
			if len(p.cap.FocusModes) == 0 {
				return nil
			}
			return p.stageEnum(focusModeAttr, "infinity")
		},
		func() error {
			if p.cap.MaxFocusAreas == 0 {
				return nil
			}
			return p.stageFocusAreas(defaultArea)
		},
		func() error {
			if p.cap.MaxMeteringAreas == 0 {
				return nil
			}
			return p.stageMeteringAreas(defaultArea)
		},
		func() error { return p.stageRange(saturationAttr, strconv.Itoa(p.cap.Saturation.Default)) },
		func() error { return p.stageRange(sharpnessAttr, strconv.Itoa(p.cap.Sharpness.Default)) },
		func() error { return p.stageRange(contrastAttr, strconv.Itoa(p.cap.Contrast.Default)) },
		func() error { return p.stageRange(sceFactorAttr, strconv.Itoa(p.cap.SCEFactor.Default)) },
		func() error { return p.stageRange(brightnessAttr, strconv.Itoa(p.cap.Brightness.Default)) },
		func() error { return p.stageEnum(autoExposureAttr, "frame-average") },
		func() error {
			return p.stageRange(exposureCompAttr, strconv.Itoa(p.cap.ExposureCompensation.Default))
		},
		func() error { return p.stageEnum(antibandingAttr, "off") },
		func() error { return p.stageEnum(effectAttr, "none") },
		func() error { return p.stageEnum(whiteBalanceAttr, "auto") },
		func() error { return p.stageEnum(flashAttr, "off") },
		func() error { return p.stageEnum(sceneModeAttr, "auto") },
		func() error { return p.stageEnum(isoAttr, "auto") },
		func() error { return p.stageEnum(hfrAttr, "off") },
		func() error { return p.stageEnum(zoneAFAttr, "auto") },
		func() error {
			if !p.cap.HasZoom() {
				return nil
			}
			return p.stageZoom("0")
		},
		func() error { return p.stageAEBracket("Off") },
		func() error { return p.stageDenoise("denoise-off") },
		func() error { return p.stageEnum(lensShadeAttr, "enable") },
		func() error { return p.stageEnum(mceAttr, "enable") },
		func() error { return p.stageEnum(redeyeAttr, "disable") },
		func() error { return p.stageEnum(sceneDetectAttr, "off") },
		func() error { return p.stageEnum(aeLockAttr, "false") },
		func() error { return p.stageEnum(awbLockAttr, "false") },
		func() error { return p.stage(KeyCameraMode, "0", noSlot, nil, false) },
		func() error { return p.stage(KeyNumSnapshots, "1", noSlot, nil, false) },
		func() error {
			return p.stage(KeyZSLBurstInterval, strconv.Itoa(p.config.ZSLBurstInterval), noSlot, nil, false)
		},
		func() error {
			return p.stage(KeyZSLBurstLookback, strconv.Itoa(p.config.ZSLBackLookCount), noSlot, nil, false)
		},
		func() error {
			return p.stage(KeyZSLQueueDepth, strconv.Itoa(p.config.ZSLQueueDepth), noSlot, nil, false)
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("%w: default rejected: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// publish writes the read-only keys describing the capability straight into
// the canonical state.
func (p *Parameters) publish() {
	c := p.cap
	set := func(key, value string) {
		// Published values are generated from validated tables and never
		// contain the flatten delimiters.
		_ = p.canonical.Set(key, value)
	}
	setBool := func(key string, v bool) { set(key, strconv.FormatBool(v)) }
	setInt := func(key string, v int) { set(key, strconv.Itoa(v)) }
	setFloat := func(key string, v float64) { set(key, strconv.FormatFloat(v, 'f', -1, 64)) }

	setBool(KeySmoothZoomSupported, c.SmoothZoomSupported)
	setBool(KeyZoomSupported, c.ZoomSupported)
	setBool(KeyVideoSnapshotSupported, c.VideoSnapshotSupported)
	setBool(KeyVideoStabilizationSupported, c.VideoStabilizationSupported)
	setBool(KeyAELockSupported, c.AutoExposureLockSupported)
	setBool(KeyAWBLockSupported, c.AutoWBLockSupported)
	set(KeyCameraFeatures, strconv.FormatUint(uint64(c.FeatureMask), 10))
	setInt(KeyMaxFacesHW, 0)
	setInt(KeyMaxFacesSW, c.MaxNumROI)
	setInt(KeyMaxRequestedFaces, c.MaxNumROI)

	setFloat(KeyFocalLength, c.FocalLength)
	setFloat(KeyHorizontalViewAngle, c.HorizontalViewAngle)
	setFloat(KeyVerticalViewAngle, c.VerticalViewAngle)

	set(KeyPreviewSizeValues, capability.DescribeSizes(c.PreviewSizes))
	if len(c.VideoSizes) > 0 {
		set(KeyVideoSizeValues, capability.DescribeSizes(c.VideoSizes))
		set(KeyPreferredPreviewForVideo, c.VideoSizes[0].String())
	}
	if len(c.PictureSizes) > 0 {
		set(KeyPictureSizeValues, capability.DescribeSizes(c.PictureSizes))
	}
	set(KeyThumbnailSizeValues, capability.DescribeSizes(capability.ThumbnailSizes))

	set(KeyPreviewFormatValues, attr.DescribeCodes(c.PreviewFormats, attr.PreviewFormats))
	set(KeyVideoFrameFormat, "yuv420sp")
	pictureFormats := "jpeg"
	if raw := attr.DescribeCodes(c.RawFormats, attr.PictureTypes); raw != "" {
		pictureFormats += "," + raw
	}
	set(KeyPictureFormatValues, pictureFormats)
	set(KeyRawSize, c.RawDim.String())

	if len(c.FPSRanges) > 0 {
		set(KeyPreviewFPSRangeValues, capability.DescribeFPSRanges(c.FPSRanges))
		set(KeyPreviewFrameRateValues, capability.DescribeFPSValues(c.FPSRanges))
	}
	if len(c.FocusModes) > 0 {
		set(KeyFocusModeValues, attr.DescribeCodes(c.FocusModes, attr.FocusModes))
	}
	setInt(KeyMaxFocusAreas, c.MaxFocusAreas)
	setInt(KeyMaxMeteringAreas, c.MaxMeteringAreas)

	ranges := []struct {
		min, max, step string
		r              capability.Range
	}{
		{KeyMinSaturation, KeyMaxSaturation, KeySaturationStep, c.Saturation},
		{KeyMinSharpness, KeyMaxSharpness, KeySharpnessStep, c.Sharpness},
		{KeyMinContrast, KeyMaxContrast, KeyContrastStep, c.Contrast},
		{KeyMinSCEFactor, KeyMaxSCEFactor, KeySCEFactorStep, c.SCEFactor},
		{KeyMinBrightness, KeyMaxBrightness, KeyBrightnessStep, c.Brightness},
	}
	for _, r := range ranges {
		setInt(r.min, r.r.Min)
		setInt(r.max, r.r.Max)
		setInt(r.step, r.r.Step)
	}

	set(KeyAutoExposureValues, attr.DescribeCodes(c.AECModes, attr.AutoExposure))
	setInt(KeyMaxExposureCompensation, c.ExposureCompensation.Max)
	setInt(KeyMinExposureCompensation, c.ExposureCompensation.Min)
	setFloat(KeyExposureCompensationStep, c.ExposureCompensationStep)

	set(KeyAntibandingValues, attr.DescribeCodes(c.Antibandings, attr.Antibanding))
	set(KeyEffectValues, attr.DescribeCodes(c.Effects, attr.Effects))
	set(KeyWhiteBalanceValues, attr.DescribeCodes(c.WhiteBalances, attr.WhiteBalance))
	set(KeyFlashModeValues, attr.DescribeCodes(c.FlashModes, attr.FlashModes))
	set(KeySceneModeValues, attr.DescribeCodes(c.SceneModes, attr.SceneModes))
	set(KeyISOValues, attr.DescribeCodes(c.ISOModes, attr.ISOModes))
	set(KeyVideoHFRValues, capability.DescribeHFRModes(c.HFR, attr.HFRModes))
	set(KeyHFRSizeValues, capability.DescribeHFRSizes(c.HFR))
	set(KeySelectableZoneAFValues, attr.DescribeCodes(c.FocusAlgos, attr.FocusAlgorithms))

	if c.HasZoom() {
		set(KeyZoomRatios, capability.DescribeZoomRatios(c.ZoomRatios))
		setInt(KeyMaxZoom, len(c.ZoomRatios)-1)
	}

	set(KeyAEBracketHDRValues, attr.Describe(attr.BracketingModes))
	set(KeyDenoiseValues, attr.Describe(attr.Denoise))

	enableDisable := attr.Describe(attr.EnableDisable)
	set(KeyLensShadeValues, enableDisable)
	set(KeyMCEValues, enableDisable)
	set(KeyHistogramValues, enableDisable)
	set(KeyHistogram, "disable")
	set(KeyRedeyeReductionValues, enableDisable)

	onOff := attr.Describe(attr.OnOff)
	set(KeySceneDetectValues, onOff)
	set(KeyFaceDetectionValues, onOff)
	set(KeyFaceDetection, "off")
	set(KeyZSLValues, onOff)
	set(KeyTouchAFAECValues, onOff)
	set(KeyTouchAFAEC, "off")
}
