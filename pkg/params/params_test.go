package params

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camparam/camparam-go/pkg/batch"
	"github.com/camparam/camparam-go/pkg/capability"
	"github.com/camparam/camparam-go/pkg/device"
	"github.com/camparam/camparam-go/pkg/kv"
	"github.com/camparam/camparam-go/pkg/log"
	"github.com/camparam/camparam-go/pkg/wire"
)

// eventRecorder collects session events for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *eventRecorder) Log(e log.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *eventRecorder) attributes(outcome log.Outcome) []log.AttributeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.AttributeEvent
	for _, e := range r.events {
		if e.Attribute != nil && e.Attribute.Outcome == outcome {
			out = append(out, *e.Attribute)
		}
	}
	return out
}

func builtin(t *testing.T, name string) *capability.Capability {
	t.Helper()
	c, err := capability.Builtin(name)
	require.NoError(t, err)
	return c
}

func newTestParams(t *testing.T, profile string) (*Parameters, *device.Sim) {
	t.Helper()
	return newTestParamsWithConfig(t, profile, DefaultConfig())
}

func newTestParamsWithConfig(t *testing.T, profile string, cfg Config) (*Parameters, *device.Sim) {
	t.Helper()
	sim := device.NewSim(device.SimConfig{Name: profile})
	p, err := New(context.Background(), builtin(t, profile), sim, cfg)
	require.NoError(t, err)
	return p, sim
}

// apply runs one successful update cycle on top of the committed state.
func apply(t *testing.T, p *Parameters, pairs ...string) bool {
	t.Helper()
	restart, err := p.Update(request(p, pairs...))
	require.NoError(t, err)
	require.NoError(t, p.Commit(context.Background()))
	return restart
}

// request builds a full request: the committed state with pairs applied on
// top, the way a client edits the flattened parameters it last read.
func request(p *Parameters, pairs ...string) *kv.Map {
	req := p.Canonical()
	for i := 0; i < len(pairs); i += 2 {
		_ = req.Set(pairs[i], pairs[i+1])
	}
	return req
}

func decodeSim[T any](t *testing.T, sim *device.Sim, slot batch.ParamType) T {
	t.Helper()
	data, ok := sim.Payload(slot)
	require.True(t, ok, "slot %s never applied", slot)
	var v T
	require.NoError(t, wire.Unmarshal(data, &v))
	return v
}

func decodeStaged[T any](t *testing.T, p *Parameters, slot batch.ParamType) T {
	t.Helper()
	var v T
	require.NoError(t, p.buf.Decode(slot, &v))
	return v
}

func TestNewCommitsDefaults(t *testing.T) {
	p, sim := newTestParams(t, "default")

	if sim.Applied() != 1 {
		t.Errorf("expected 1 applied batch, got %d", sim.Applied())
	}
	assert.False(t, p.NeedsRestart())
	assert.NotEmpty(t, p.SessionID())

	tests := []struct {
		key  string
		want string
	}{
		{KeyPreviewSize, "640x480"},
		{KeyVideoSize, "1280x720"},
		{KeyPictureSize, "3264x2448"},
		{KeyThumbnailWidth, "512"},
		{KeyThumbnailHeight, "288"},
		{KeyPreviewFormat, "yuv420sp"},
		{KeyPictureFormat, "jpeg"},
		{KeyJPEGQuality, "85"},
		{KeyThumbnailQuality, "85"},
		{KeyPreviewFPSRange, "7500,30000"},
		{KeyPreviewFrameRate, "30000"},
		{KeyFocusMode, "infinity"},
		{KeyFocusAreas, defaultArea},
		{KeyMeteringAreas, defaultArea},
		{KeyBrightness, "3"},
		{KeySharpness, "12"},
		{KeyContrast, "5"},
		{KeySaturation, "5"},
		{KeySkinToneEnhancement, "0"},
		{KeyExposureCompensation, "0"},
		{KeyAutoExposure, "frame-average"},
		{KeyAntibanding, "off"},
		{KeyEffect, "none"},
		{KeyWhiteBalance, "auto"},
		{KeyFlashMode, "off"},
		{KeySceneMode, "auto"},
		{KeyISO, "auto"},
		{KeyVideoHFR, "off"},
		{KeySelectableZoneAF, "auto"},
		{KeyZoom, "0"},
		{KeyAEBracketHDR, "Off"},
		{KeyDenoise, "denoise-off"},
		{KeyLensShade, "enable"},
		{KeyMCE, "enable"},
		{KeyRedeyeReduction, "disable"},
		{KeySceneDetect, "off"},
		{KeyAutoExposureLock, "false"},
		{KeyAutoWBLock, "false"},
		{KeyCameraMode, "0"},
		{KeyNumSnapshots, "1"},
		{KeyZSLBurstInterval, "1"},
		{KeyZSLBurstLookback, "2"},
		{KeyZSLQueueDepth, "2"},

		{KeyPreviewSizeValues, "640x480,1280x720,800x480,720x480,352x288,320x240,176x144"},
		{KeyPictureFormatValues, "jpeg,yuv-raw8,bayer-mipi-10bggr"},
		{KeyPreviewFPSRangeValues, "(7500,30000),(15000,30000),(30000,30000)"},
		{KeyMaxZoom, "15"},
		{KeyZoomSupported, "true"},
		{KeyMinSharpness, "0"},
		{KeyMaxSharpness, "36"},
		{KeySharpnessStep, "6"},
		{KeyMaxFocusAreas, "1"},
		{KeyMaxRequestedFaces, "5"},
		{KeyHistogram, "disable"},
		{KeyFaceDetection, "off"},
		{KeyRawSize, "3264x2448"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := p.Get(tt.key)
			if !ok {
				t.Fatalf("expected %s to be set", tt.key)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	assert.Equal(t, int32(100), decodeSim[int32](t, sim, batch.ParamZoom))
	assert.Equal(t, int32(3), decodeSim[int32](t, sim, batch.ParamBrightness))
	assert.Equal(t, wire.FPSRange{MinFPS: 7.5, MaxFPS: 30}, decodeSim[wire.FPSRange](t, sim, batch.ParamFPSRange))

	aec := decodeSim[wire.AECROI](t, sim, batch.ParamAECROI)
	assert.False(t, aec.Enable, "all-zero default area must leave metering off")
}

func TestNewMinimalProfile(t *testing.T) {
	p, sim := newTestParams(t, "minimal")

	assert.Equal(t, 1, sim.Applied())
	assert.Equal(t, "jpeg", p.Canonical().Value(KeyPictureFormatValues))

	for _, key := range []string{KeyZoom, KeyMaxZoom, KeyFocusAreas, KeyMeteringAreas} {
		if p.Canonical().Has(key) {
			t.Errorf("expected %s to be absent on minimal profile", key)
		}
	}
	_, ok := sim.Payload(batch.ParamZoom)
	assert.False(t, ok)
	_, ok = sim.Payload(batch.ParamAFROI)
	assert.False(t, ok)
}

func TestNewRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	c := builtin(t, "default")
	sim := device.NewSim(device.SimConfig{})

	broken := *c
	broken.PreviewSizes = nil

	negative := DefaultConfig()
	negative.ZSLQueueDepth = -1

	badSeed := DefaultConfig()
	badSeed.Seed = "novalue"

	tests := []struct {
		name string
		c    *capability.Capability
		dev  device.Device
		cfg  Config
	}{
		{"nil capability", nil, sim, DefaultConfig()},
		{"nil device", c, nil, DefaultConfig()},
		{"invalid capability", &broken, sim, DefaultConfig()},
		{"negative zsl depth", c, sim, negative},
		{"malformed seed", c, sim, badSeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(ctx, tt.c, tt.dev, tt.cfg)
			assert.Nil(t, p)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewFailsWhenDeviceRejectsDefaults(t *testing.T) {
	sim := device.NewSim(device.SimConfig{})
	sim.FailNext(nil)

	p, err := New(context.Background(), builtin(t, "default"), sim, DefaultConfig())
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrDeviceApply)
	assert.ErrorIs(t, err, device.ErrApplyRejected)
}

func TestNewKeepsSeedKeys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = "vendor-key=x;preview-size=320x240"

	p, _ := newTestParamsWithConfig(t, "default", cfg)

	assert.Equal(t, "x", p.Canonical().Value("vendor-key"))
	// Defaults override seeded attributes.
	assert.Equal(t, "640x480", p.Canonical().Value(KeyPreviewSize))
}

func TestUpdateWithCommittedStateIsNoop(t *testing.T) {
	p, sim := newTestParams(t, "default")
	before := p.Flatten()

	restart, err := p.Update(p.Canonical())
	require.NoError(t, err)
	assert.False(t, restart)
	assert.Equal(t, 0, p.pending.Len())
	assert.True(t, p.buf.Empty())

	require.NoError(t, p.Commit(context.Background()))
	assert.Equal(t, 1, sim.Applied(), "nothing staged must not reach the device")
	assert.Equal(t, before, p.Flatten())
}

func TestUpdateStagesUntilCommit(t *testing.T) {
	p, _ := newTestParams(t, "default")

	_, err := p.Update(request(p, KeyBrightness, "5"))
	require.NoError(t, err)
	assert.Equal(t, "3", p.Canonical().Value(KeyBrightness))

	require.NoError(t, p.Commit(context.Background()))
	assert.Equal(t, "5", p.Canonical().Value(KeyBrightness))
}

func TestFailedCommitLeavesStateUntouched(t *testing.T) {
	p, sim := newTestParams(t, "default")
	before := p.Flatten()

	_, err := p.Update(request(p,
		KeyBrightness, "5",
		KeyZoom, "4",
		KeyPreviewSize, "1280x720",
		KeyGPSLatitude, "48.1"))
	require.NoError(t, err)

	sim.FailNext(nil)
	err = p.Commit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeviceApply)
	assert.ErrorIs(t, err, device.ErrApplyRejected)

	if got := p.Flatten(); got != before {
		t.Errorf("expected canonical state unchanged, got %q", got)
	}
	assert.Equal(t, int32(100), decodeSim[int32](t, sim, batch.ParamZoom))

	// The staging area is cleared; a second commit has nothing to send.
	require.NoError(t, p.Commit(context.Background()))
	assert.Equal(t, 1, sim.Applied())
}

func TestCycleErrorCollectsEveryRejection(t *testing.T) {
	p, _ := newTestParams(t, "default")

	_, err := p.Update(request(p,
		KeyEffect, "bogus",
		KeyBrightness, "99",
		KeySharpness, "6",
		KeyContrast, "-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	var ce *CycleError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{KeyEffect, KeyBrightness, KeyContrast}, ce.Keys())
	assert.Equal(t, ce.Failures[2].Error(), ce.Error())

	// Accepted attributes stay staged.
	require.NoError(t, p.Commit(context.Background()))
	assert.Equal(t, "6", p.Canonical().Value(KeySharpness))
	assert.Equal(t, "3", p.Canonical().Value(KeyBrightness))
	assert.Equal(t, "none", p.Canonical().Value(KeyEffect))
}

func TestUpdateDiscardsUncommittedCycle(t *testing.T) {
	p, _ := newTestParams(t, "default")

	_, err := p.Update(request(p, KeyBrightness, "5"))
	require.NoError(t, err)
	_, err = p.Update(p.Canonical())
	require.NoError(t, err)

	require.NoError(t, p.Commit(context.Background()))
	assert.Equal(t, "3", p.Canonical().Value(KeyBrightness))
}

func TestUpdateNilRequest(t *testing.T) {
	p, _ := newTestParams(t, "default")

	restart, err := p.Update(nil)
	require.NoError(t, err)
	assert.False(t, restart)

	// An empty request drops the keys that must be resent on every update.
	require.NoError(t, p.Commit(context.Background()))
	assert.False(t, p.Canonical().Has(KeyCameraMode))
	assert.Equal(t, "640x480", p.Canonical().Value(KeyPreviewSize))
}

func TestRejectKeepsPercentInReason(t *testing.T) {
	p, _ := newTestParams(t, "default")

	err := p.reject(KeyCameraMode, "1", "%v", errors.New("100% busy (%d)"))
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
	if ve.Reason != "100% busy (%d)" {
		t.Errorf("expected reason copied verbatim, got %q", ve.Reason)
	}
}

func TestClose(t *testing.T) {
	rec := &eventRecorder{}
	cfg := DefaultConfig()
	cfg.EventLogger = rec
	p, _ := newTestParamsWithConfig(t, "default", cfg)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	ctx := context.Background()
	_, err := p.Update(kv.New())
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, p.Commit(ctx), ErrClosed)
	assert.ErrorIs(t, p.SetHistogram(ctx, true), ErrClosed)
	assert.ErrorIs(t, p.SetTouchIndexAF(1, 1), ErrClosed)
	_, err = p.Query(ctx, batch.ParamZoom)
	assert.ErrorIs(t, err, ErrClosed)
	assert.Empty(t, p.Flatten())

	last := rec.events[len(rec.events)-1]
	require.NotNil(t, last.Lifecycle)
	assert.Equal(t, "closed", last.Lifecycle.State)
}

func TestEventLogging(t *testing.T) {
	rec := &eventRecorder{}
	cfg := DefaultConfig()
	cfg.EventLogger = rec
	p, _ := newTestParamsWithConfig(t, "default", cfg)

	_, err := p.Update(request(p, KeyEffect, "bogus", KeyBrightness, "4"))
	require.Error(t, err)
	require.NoError(t, p.Commit(context.Background()))

	var commits, lifecycle int
	for _, e := range rec.events {
		if e.SessionID != p.SessionID() {
			t.Errorf("expected session %s, got %s", p.SessionID(), e.SessionID)
		}
		if e.Device != "default" {
			t.Errorf("expected device default, got %s", e.Device)
		}
		switch {
		case e.Commit != nil:
			commits++
			assert.Equal(t, log.CommitKindUpdate, e.Commit.Kind)
			assert.True(t, e.Commit.Success)
			assert.NotEmpty(t, e.Commit.Slots)
		case e.Lifecycle != nil:
			lifecycle++
			assert.Equal(t, "open", e.Lifecycle.State)
		}
	}
	assert.Equal(t, 2, commits)
	assert.Equal(t, 1, lifecycle)

	rejected := rec.attributes(log.OutcomeRejected)
	require.Len(t, rejected, 1)
	assert.Equal(t, KeyEffect, rejected[0].Key)
	assert.Equal(t, "bogus", rejected[0].Value)
	assert.NotEmpty(t, rejected[0].Reason)

	var staged bool
	for _, a := range rec.attributes(log.OutcomeStaged) {
		if a.Key == KeyBrightness && a.Value == "4" {
			staged = true
			assert.Equal(t, batch.ParamBrightness.String(), a.Slot)
		}
	}
	assert.True(t, staged, "expected a staged event for brightness")
	assert.NotEmpty(t, rec.attributes(log.OutcomeNoop))
}
