// Package device defines the collaborator that applies a staged batch to
// the capture pipeline, and a simulated implementation of it.
package device

import (
	"context"
	"errors"

	"github.com/camparam/camparam-go/pkg/batch"
)

// ErrApplyRejected is returned by Sim when it was told to fail.
var ErrApplyRejected = errors.New("device rejected batch")

// Device applies and queries parameter batches.
//
// Apply hands the whole batch to the pipeline and returns once it has been
// applied or rejected; a rejected batch leaves the device unchanged.
// Fetch fills every linked slot of b with the device's current payload.
type Device interface {
	Apply(ctx context.Context, b *batch.Buffer) error
	Fetch(ctx context.Context, b *batch.Buffer) error
}
