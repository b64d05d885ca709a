package termclip

// Compile-time interface verification.
var _ Transport = (*Fallback)(nil)

// Fallback is a Transport that uses Primary while it reports support and
// Secondary otherwise. Support is re-checked on every call.
type Fallback struct {
	Primary   Transport
	Secondary Transport
}

// IsSupported reports whether either transport is supported.
func (f *Fallback) IsSupported() bool {
	return f.Primary.IsSupported() || f.Secondary.IsSupported()
}

// SetClipboard writes through the first supported transport.
func (f *Fallback) SetClipboard(target SelectionTarget, payload []byte) bool {
	if f.Primary.IsSupported() {
		return f.Primary.SetClipboard(target, payload)
	}
	if f.Secondary.IsSupported() {
		return f.Secondary.SetClipboard(target, payload)
	}
	return false
}
