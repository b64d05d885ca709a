// Package mock provides test doubles for termclip interfaces.
package mock

import "github.com/fwojciec/termclip"

// Compile-time interface verification.
var _ termclip.Transport = (*Transport)(nil)

// Transport is a mock implementation of termclip.Transport.
type Transport struct {
	SetClipboardFn func(target termclip.SelectionTarget, payload []byte) bool
	IsSupportedFn  func() bool
}

func (t *Transport) SetClipboard(target termclip.SelectionTarget, payload []byte) bool {
	return t.SetClipboardFn(target, payload)
}

func (t *Transport) IsSupported() bool {
	return t.IsSupportedFn()
}
