package params

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/camparam/camparam-go/pkg/batch"
	"github.com/camparam/camparam-go/pkg/log"
	"github.com/camparam/camparam-go/pkg/wire"
)

// One-shot setters build their own single-slot batch and commit it at
// once. They do not touch the batch or the pending changes of an update
// cycle in progress.

// SetHistogram turns histogram statistics on or off. Requesting the current
// state is a no-op.
func (p *Parameters) SetHistogram(ctx context.Context, enabled bool) error {
	if p.closed {
		return ErrClosed
	}
	if p.histogram == enabled {
		return nil
	}
	if err := p.oneShot(ctx, batch.ParamHistogram, enabled); err != nil {
		return err
	}
	p.histogram = enabled
	p.logger.Debug("histogram changed", "enabled", enabled)
	return nil
}

// SetFaceDetection turns face detection on or off. The requested face count
// is the published maximum. Requesting the current state is a no-op.
func (p *Parameters) SetFaceDetection(ctx context.Context, enabled bool) error {
	if p.closed {
		return ErrClosed
	}
	if p.faceDetection == enabled {
		return nil
	}
	faces, err := strconv.Atoi(p.canonical.Value(KeyMaxRequestedFaces))
	if err != nil {
		faces = p.cap.MaxNumROI
	}
	payload := wire.FaceDetectParam{Enable: enabled, NumFD: int32(faces)}
	if err := p.oneShot(ctx, batch.ParamFaceDetect, payload); err != nil {
		return err
	}
	p.faceDetection = enabled
	p.logger.Debug("face detection changed", "enabled", enabled, "faces", faces)
	return nil
}

// SetBundleInfo tells the device which streams start together.
func (p *Parameters) SetBundleInfo(ctx context.Context, bundle wire.BundleConfig) error {
	if p.closed {
		return ErrClosed
	}
	return p.oneShot(ctx, batch.ParamSetBundle, bundle)
}

func (p *Parameters) oneShot(ctx context.Context, slot batch.ParamType, payload any) error {
	b := batch.New()
	if err := b.InsertValue(slot, payload); err != nil {
		return err
	}

	start := time.Now()
	err := p.dev.Apply(ctx, b)
	p.logCommit(log.CommitKindOneShot, b, 0, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDeviceApply, slot, err)
	}
	return nil
}

// Query reads the current device payload of every slot. Slots the device
// does not report come back linked but empty.
func (p *Parameters) Query(ctx context.Context, slots ...batch.ParamType) (*batch.Buffer, error) {
	if p.closed {
		return nil, ErrClosed
	}
	b := batch.New()
	for _, slot := range slots {
		if err := b.Flag(slot); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	err := p.dev.Fetch(ctx, b)
	p.logCommit(log.CommitKindQuery, b, 0, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return b, nil
}
