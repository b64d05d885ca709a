package mock

import "github.com/fwojciec/termclip"

// Compile-time interface verification.
var _ termclip.Detector = (*Detector)(nil)

// Detector is a mock implementation of termclip.Detector.
type Detector struct {
	SupportedFn func() bool
}

func (d *Detector) Supported() bool {
	return d.SupportedFn()
}
